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

// Package execution records the outcome of a single CPU instruction as it is
// stepped through cycle by cycle.
package execution

import (
	"fmt"

	"github.com/aiSzzPL77/virtualc64/cpu/instructions"
)

// Bug names a known, documented quirk of the real 6510 that this core
// reproduces deliberately rather than by accident.
type Bug string

// The bugs this core is known to reproduce faithfully.
const (
	NoBug                        Bug = ""
	JmpIndirectPageBoundaryBug   Bug = "indirect JMP page boundary bug"
	IndexedIndirectAddressingBug Bug = "zero page (ind,x) wraparound"
	ZeroPageIndexWrapBug         Bug = "zero page index wraparound"
	BrkNmiHijack                 Bug = "BRK hijacked by coincident NMI"
)

// Result accumulates the observable facts about one instruction as its
// micro-ops are stepped. Final is false until the instruction's last cycle
// has been stepped; fields other than Address and Defn are undefined until
// then.
type Result struct {
	// Address of the opcode byte (cpu.PC0 at the time of FETCH).
	Address uint16

	// Defn is nil until FETCH has decoded the opcode.
	Defn *instructions.Definition

	// InstructionData is reserved for the instruction's operand; the CPU
	// does not fill it in, so it stays nil.
	InstructionData interface{}

	// Final reports whether the instruction has completed all its cycles.
	Final bool

	// ActualCycles may differ from Defn.Cycles because of a page-crossing
	// or a branch taken to a different page.
	ActualCycles int

	// PageFault records whether an extra cycle was spent on a page cross.
	PageFault bool

	// Bug names the recorded hardware quirk triggered by this instruction,
	// or NoBug. The CPU records JmpIndirectPageBoundaryBug and BrkNmiHijack;
	// zero-page wraparounds are reproduced but never recorded here.
	Bug Bug
}

func (r Result) String() string {
	if r.Defn == nil {
		return fmt.Sprintf("$%04x ???", r.Address)
	}
	s := fmt.Sprintf("$%04x %s", r.Address, r.Defn.Mnemonic)
	if r.Final {
		s += fmt.Sprintf(" [%d]", r.ActualCycles)
	} else {
		s += " [.]"
	}
	if r.PageFault {
		s += " page-fault"
	}
	if r.Bug != NoBug {
		s += fmt.Sprintf(" *%s*", r.Bug)
	}
	return s
}
