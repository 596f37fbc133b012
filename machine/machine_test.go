package machine_test

import (
	"testing"

	"github.com/aiSzzPL77/virtualc64/internal/instance"
	"github.com/aiSzzPL77/virtualc64/machine"
)

func newTestMachine(t *testing.T) *machine.Machine {
	t.Helper()
	inst := instance.NewInstance()
	inst.Normalise()
	m := machine.New(inst, machine.ROMImages{})
	if err := m.Reset(); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	return m
}

func TestNewMachineWiresVICIntoBus(t *testing.T) {
	m := newTestMachine(t)

	w, h := m.FrameSize()
	if w <= 0 || h <= 0 {
		t.Fatalf("FrameSize() = %d,%d, want positive dimensions", w, h)
	}

	fb := m.StableFramebuffer()
	if len(fb) != w*h {
		t.Errorf("len(StableFramebuffer()) = %d, want %d (w*h)", len(fb), w*h)
	}
}

// TestStepAdvancesWithoutError exercises a few hundred cycles of the fixed
// Phi1/CPU/Phi2 order without asserting any specific raster position or
// instruction outcome; no ROMs are supplied, so the CPU runs whatever the
// poweron $00/$FF RAM pattern decodes to from the reset vector ($FFFF), and
// this is mainly a check that the wiring between VIC RDY, CPU stalling, and
// the sequencer doesn't panic or deadlock across a bad line.
func TestStepAdvancesWithoutError(t *testing.T) {
	m := newTestMachine(t)

	for i := 0; i < 500; i++ {
		if err := m.Step(); err != nil {
			t.Fatalf("Step() failed at cycle %d: %v", i, err)
		}
	}
}

func TestSnapshotRoundtripsFramePosition(t *testing.T) {
	m := newTestMachine(t)
	for i := 0; i < 20; i++ {
		if err := m.Step(); err != nil {
			t.Fatalf("Step(): %v", err)
		}
	}

	buf := make([]byte, m.StateSize())
	n := m.Save(buf)
	if n != len(buf) {
		t.Fatalf("Save() wrote %d bytes, want %d (StateSize)", n, len(buf))
	}

	other := newTestMachine(t)
	if !other.Load(buf) {
		t.Fatal("Load() reported failure on a buffer produced by Save()")
	}
	for _, reg := range []uint8{0x11, 0x12} {
		if got, want := other.VIC().Read(reg), m.VIC().Read(reg); got != want {
			t.Errorf("after Load, VIC register $D0%02X = $%02X, want $%02X", reg, got, want)
		}
	}
}
