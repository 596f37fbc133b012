package cpu_test

import (
	"testing"

	"github.com/aiSzzPL77/virtualc64/cpu"
	"github.com/aiSzzPL77/virtualc64/internal/instance"
)

type mockMem struct {
	internal [0x10000]uint8
}

func (m *mockMem) put(origin uint16, bytes ...uint8) {
	for i, b := range bytes {
		m.internal[origin+uint16(i)] = b
	}
}

func (m *mockMem) Read(address uint16) (uint8, error) {
	return m.internal[address], nil
}

func (m *mockMem) Write(address uint16, data uint8) error {
	m.internal[address] = data
	return nil
}

func newTestCPU() (*cpu.CPU, *mockMem) {
	inst := instance.NewInstance()
	inst.Normalise()
	mem := &mockMem{}
	mc := cpu.NewCPU(inst, mem)
	mc.Reset()
	mc.PC.Load(0x0400)
	return mc, mem
}

// runInstruction steps mc until the instruction fetched at the current PC has
// fully retired.
func runInstruction(t *testing.T, mc *cpu.CPU) {
	t.Helper()
	for i := 0; i < 20; i++ {
		if err := mc.Step(); err != nil {
			t.Fatal(err)
		}
		if mc.Result.Final {
			return
		}
	}
	t.Fatal("instruction did not retire within 20 cycles")
}

func TestLDAImmediate(t *testing.T) {
	mc, mem := newTestCPU()
	mem.put(0x0400, 0xa9, 0x42)

	runInstruction(t, mc)

	if mc.A.Value() != 0x42 {
		t.Errorf("A = $%02x, want $42", mc.A.Value())
	}
	if mc.Result.ActualCycles != 2 {
		t.Errorf("ActualCycles = %d, want 2", mc.Result.ActualCycles)
	}
}

// TestDecimalADC exercises the scenario spec.md §8 calls out: A=$15, carry
// set, decimal mode, operand $27, expecting A=$43 with carry clear.
func TestDecimalADC(t *testing.T) {
	mc, mem := newTestCPU()
	mem.put(0x0400, 0x69, 0x27) // ADC #$27

	mc.A.Load(0x15)
	mc.Status.Carry = true
	mc.Status.DecimalMode = true

	runInstruction(t, mc)

	if mc.A.Value() != 0x43 {
		t.Errorf("A = $%02x, want $43", mc.A.Value())
	}
	if mc.Status.Carry {
		t.Error("carry set, want clear")
	}
}

func TestJmpIndirectPageBoundaryBug(t *testing.T) {
	mc, mem := newTestCPU()
	mem.put(0x0400, 0x6c, 0xff, 0x02) // JMP ($02FF)
	mem.put(0x02ff, 0x00)
	mem.put(0x0200, 0x80) // the buggy fetch wraps to $0200, not $0300

	runInstruction(t, mc)

	if mc.PC.Address() != 0x8000 {
		t.Errorf("PC = $%04x, want $8000 (indirect JMP page wrap)", mc.PC.Address())
	}
	if mc.Result.Bug != "indirect JMP page boundary bug" {
		t.Errorf("Bug = %q, want the page boundary bug", mc.Result.Bug)
	}
}

// TestBrkNmiHijack reproduces the documented race: an NMI asserted during
// BRK's own sequence hijacks it, vectoring through $FFFA instead of $FFFE
// and clearing the pushed B flag.
func TestBrkNmiHijack(t *testing.T) {
	mc, mem := newTestCPU()
	mem.put(0x0400, 0x00, 0x00) // BRK
	mem.put(0xfffe, 0x00, 0x90) // IRQ/BRK vector -> $9000
	mem.put(0xfffa, 0x00, 0xa0) // NMI vector -> $a000

	for i := 0; i < 20; i++ {
		if i == 2 {
			mc.PullDownNMI(cpu.EXP)
		}
		if err := mc.Step(); err != nil {
			t.Fatal(err)
		}
		if mc.Result.Final {
			break
		}
	}

	if mc.PC.Address() != 0xa000 {
		t.Errorf("PC = $%04x, want $a000 (hijacked to NMI vector)", mc.PC.Address())
	}
	if mc.Result.Bug != "BRK hijacked by coincident NMI" {
		t.Errorf("Bug = %q, want the hijack bug", mc.Result.Bug)
	}

	pushed, _ := mem.Read(mc.SP.Address() + 1)
	if pushed&0x10 != 0 {
		t.Error("pushed status has B set, want clear on a hijacked BRK")
	}
}

// TestPageCrossCycleIsNotStale guards against a build-time evaluation of
// the conditional page-crossing cycle: the extra cycle must be decided by
// *this* instruction's own indexed address, not left over from whichever
// indexed instruction executed right before it.
func TestPageCrossCycleIsNotStale(t *testing.T) {
	mc, mem := newTestCPU()
	// LDA $04FF,X with X=1 crosses from page $04 to $05: 5 cycles.
	mem.put(0x0400, 0xbd, 0xff, 0x04)
	mem.put(0x0500, 0x11)
	// LDA $0500,X with X=1 stays on page $05: 4 cycles, immediately after.
	mem.put(0x0403, 0xbd, 0x00, 0x05)
	mem.put(0x0501, 0x22)
	mc.X.Load(1)

	runInstruction(t, mc)
	if mc.Result.ActualCycles != 5 {
		t.Fatalf("first LDA (page-crossing) ActualCycles = %d, want 5", mc.Result.ActualCycles)
	}
	if mc.A.Value() != 0x11 {
		t.Fatalf("first LDA A = $%02x, want $11", mc.A.Value())
	}

	runInstruction(t, mc)
	if mc.Result.ActualCycles != 4 {
		t.Errorf("second LDA (same page) ActualCycles = %d, want 4 -- got a stale page-cross cycle from the previous instruction", mc.Result.ActualCycles)
	}
	if mc.A.Value() != 0x22 {
		t.Errorf("second LDA A = $%02x, want $22", mc.A.Value())
	}
}

func TestRandomStatePowerOnUsesInstanceRandom(t *testing.T) {
	inst := instance.NewInstance()
	inst.Prefs.RandomState = true
	mem := &mockMem{}
	mc := cpu.NewCPU(inst, mem)
	mc.Reset()
	_ = mc // the concrete random byte isn't asserted; this just exercises the path.
}
