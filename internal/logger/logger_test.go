package logger_test

import (
	"strings"
	"testing"

	"github.com/aiSzzPL77/virtualc64/internal/logger"
)

func TestTailReturnsMostRecent(t *testing.T) {
	logger.Clear()
	logger.Log(logger.CPU, "first")
	logger.Log(logger.VIC, "second")
	logger.Log(logger.Bus, "third")

	var out strings.Builder
	logger.Tail(&out, 2)

	got := out.String()
	if strings.Contains(got, "first") {
		t.Errorf("Tail(2) should not include the oldest entry, got %q", got)
	}
	if !strings.Contains(got, "second") || !strings.Contains(got, "third") {
		t.Errorf("Tail(2) missing expected entries, got %q", got)
	}
}

func TestRepeatedEntriesCollapse(t *testing.T) {
	logger.Clear()
	logger.Logf(logger.Config, "open bus read at $%04x", 0xd02f)
	logger.Logf(logger.Config, "open bus read at $%04x", 0xd02f)

	var out strings.Builder
	logger.Write(&out)

	if strings.Count(out.String(), "open bus read") != 1 {
		t.Errorf("identical consecutive entries should collapse into one line, got %q", out.String())
	}
	if !strings.Contains(out.String(), "repeat x2") {
		t.Errorf("collapsed entry should report its repeat count, got %q", out.String())
	}
}

func TestClearEmptiesLog(t *testing.T) {
	logger.Log(logger.Reset, "poweron")
	logger.Clear()

	var out strings.Builder
	logger.Write(&out)
	if out.String() != "" {
		t.Errorf("Write after Clear = %q, want empty", out.String())
	}
}
