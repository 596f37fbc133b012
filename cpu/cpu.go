// This file is part of virtualc64.
//
// virtualc64 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// virtualc64 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with virtualc64.  If not, see <https://www.gnu.org/licenses/>.

// Package cpu implements the MOS 6510 micro-cycle engine: instruction
// decode, the addressing-mode/operator dispatch, interrupt edge/level
// detection, and RDY-gated bus stalling.
package cpu

import (
	"fmt"

	"github.com/aiSzzPL77/virtualc64/cpu/execution"
	"github.com/aiSzzPL77/virtualc64/cpu/instructions"
	"github.com/aiSzzPL77/virtualc64/cpu/registers"
	"github.com/aiSzzPL77/virtualc64/internal/instance"
	"github.com/aiSzzPL77/virtualc64/internal/logger"
	"github.com/aiSzzPL77/virtualc64/memory"
)

// microOp is one queued cycle of work. read marks a cycle that performs a
// bus read and is therefore subject to RDY stalling; fn performs the
// cycle's actual work and is called exactly once, on the cycle it is
// allowed to run.
type microOp struct {
	read bool
	fn   func() error
}

// CPU implements the 6510 found in the Commodore 64.
type CPU struct {
	instance *instance.Instance
	mem      memory.CPUBus
	defs     *[256]instructions.Definition

	A      registers.Register
	X      registers.Register
	Y      registers.Register
	SP     registers.StackPointer
	PC     registers.ProgramCounter
	Status registers.StatusRegister

	// pc0 is the address of the opcode byte of the instruction currently
	// executing. Stable across all of that instruction's microcycles.
	pc0 uint16

	// scratch executor-local latches (spec.md §3).
	addrLo, addrHi uint8
	idl            uint8 // indirect data latch
	data           uint8
	pageCrossed    bool
	ptr            uint8  // zero-page pointer scratch for indexed-indirect forms
	effAddr        uint16 // resolved operand address for the current instruction
	branchOffset   uint8

	queue []microOp

	rdy          bool
	rdyLineDown  int
	rdyLineUp    int

	irq levelDetector
	nmi edgeDetector

	halted bool

	// vector and hijacked are scratch state shared between the push-P and
	// fetch-vector microops of an interrupt/BRK sequence.
	vector   uint16
	hijacked bool

	Result execution.Result
}

// NewCPU creates a 6510 wired to the given bus, with A/X/Y zeroed and SP at
// $FF; call Reset to bring the status register and interrupt lines to their
// poweron state as well.
func NewCPU(inst *instance.Instance, mem memory.CPUBus) *CPU {
	mc := &CPU{
		instance: inst,
		mem:      mem,
		defs:     instructions.GetDefinitions(),
		A:        registers.New(0, "A"),
		X:        registers.New(0, "X"),
		Y:        registers.New(0, "Y"),
		SP:       registers.NewStackPointer(0xff),
		PC:       registers.NewProgramCounter(0),
	}
	mc.rdy = true
	return mc
}

func (mc *CPU) String() string {
	return fmt.Sprintf("PC=%s A=%s X=%s Y=%s SP=%s P=%s",
		mc.PC, mc.A, mc.X, mc.Y, mc.SP, mc.Status)
}

// Reset reinitialises every register to its documented poweron state,
// except the processor port, which the PLA drives independently of the
// CPU. It does not load the reset vector; call LoadResetVector for that.
func (mc *CPU) Reset() {
	mc.halted = false
	mc.queue = nil
	mc.rdy = true
	mc.irq = levelDetector{}
	mc.nmi = edgeDetector{}

	random := mc.instance != nil && mc.instance.Prefs.RandomState
	if random {
		mc.A.Load(uint8(mc.instance.Random.Intn(0x100)))
		mc.X.Load(uint8(mc.instance.Random.Intn(0x100)))
		mc.Y.Load(uint8(mc.instance.Random.Intn(0x100)))
		mc.SP.Load(uint8(mc.instance.Random.Intn(0x100)))
	} else {
		mc.A.Load(0)
		mc.X.Load(0)
		mc.Y.Load(0)
		mc.SP.Load(0xff)
	}
	mc.Status.Reset()
	mc.Result = execution.Result{}
}

// LoadResetVector loads PC from $FFFC/$FFFD, per spec.md §4.5.
func (mc *CPU) LoadResetVector() error {
	lo, err := mc.mem.Read(0xfffc)
	if err != nil {
		return err
	}
	hi, err := mc.mem.Read(0xfffd)
	if err != nil {
		return err
	}
	mc.PC.Load(uint16(hi)<<8 | uint16(lo))
	return nil
}

// IsHalted reports whether the CPU is stuck in a KIL/JAM opcode.
func (mc *CPU) IsHalted() bool { return mc.halted }

// PC0 returns the address of the opcode byte currently executing.
func (mc *CPU) PC0() uint16 { return mc.pc0 }

// SetRDY drives the RDY input. When false, the next queued read cycle
// repeats instead of advancing.
func (mc *CPU) SetRDY(rdy bool) {
	if mc.rdy && !rdy {
		mc.rdyLineDown++
	} else if !mc.rdy && rdy {
		mc.rdyLineUp++
	}
	mc.rdy = rdy
}

// PullDownIRQ asserts the IRQ line on behalf of source.
func (mc *CPU) PullDownIRQ(source InterruptSource) { mc.irq.pullDown(source) }

// ReleaseIRQ deasserts the IRQ line on behalf of source.
func (mc *CPU) ReleaseIRQ(source InterruptSource) { mc.irq.release(source) }

// PullDownNMI asserts the NMI line on behalf of source.
func (mc *CPU) PullDownNMI(source InterruptSource) { mc.nmi.pullDown(source) }

// ReleaseNMI deasserts the NMI line on behalf of source.
func (mc *CPU) ReleaseNMI(source InterruptSource) { mc.nmi.release(source) }

// Step advances the CPU by exactly one master clock cycle. It is a no-op
// if the CPU has executed a KIL/JAM opcode.
func (mc *CPU) Step() error {
	if mc.halted {
		return nil
	}

	mc.irq.sample()
	mc.nmi.sample()

	if len(mc.queue) == 0 {
		mc.queue = mc.nextEntry()
	}

	op := mc.queue[0]
	if op.read && !mc.rdy {
		return nil
	}
	mc.queue = mc.queue[1:]

	if err := op.fn(); err != nil {
		return err
	}

	if mc.Result.Defn != nil {
		mc.Result.ActualCycles++
	}

	if len(mc.queue) == 0 && mc.Result.Defn != nil {
		mc.Result.Final = true
	}

	return nil
}

// nextEntry decides what the CPU does once the previous instruction (if
// any) has fully retired: service a pending NMI, service a pending IRQ, or
// fetch the next opcode. NMI wins over IRQ; a coincident IRQ is simply
// re-sampled on a later cycle, never queued (spec.md §4.1).
func (mc *CPU) nextEntry() []microOp {
	if mc.nmi.asserted() {
		mc.nmi.consume()
		return mc.buildInterruptSequence(0xfffa)
	}
	if mc.irq.asserted() && !mc.Status.InterruptDisable {
		return mc.buildInterruptSequence(0xfffe)
	}
	return []microOp{{read: true, fn: mc.opFetch}}
}

// opFetch is the entry microcode: read the opcode byte, freeze pc0, decode,
// and build the queue for the rest of the instruction.
func (mc *CPU) opFetch() error {
	opcode, err := mc.mem.Read(mc.PC.Address())
	if err != nil {
		return err
	}
	mc.pc0 = mc.PC.Address()
	mc.PC.Add(1)

	def := mc.defs[opcode]
	mc.Result = execution.Result{Address: mc.pc0, Defn: &def}

	if def.Operator == instructions.KIL {
		logger.Logf(logger.CPU, "KIL/JAM opcode $%02x at $%04x", opcode, mc.pc0)
		mc.halted = true
		mc.Result.Final = true
		return nil
	}

	mc.queue = mc.build(def)
	return nil
}
