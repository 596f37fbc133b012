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

package cpu

import (
	"github.com/aiSzzPL77/virtualc64/cpu/execution"
	"github.com/aiSzzPL77/virtualc64/cpu/instructions"
)

// buildPush handles PHA/PHP: one dummy internal read cycle (the real 6502
// spends this cycle before the stack write becomes visible), then the
// stack write itself.
func (mc *CPU) buildPush(def instructions.Definition) []microOp {
	return []microOp{
		{read: true, fn: func() error {
			_, err := mc.mem.Read(mc.PC.Address())
			return err
		}},
		{read: false, fn: func() error {
			addr := mc.SP.Push()
			var v uint8
			if def.Operator == instructions.Pha {
				v = mc.A.Value()
			} else {
				v = mc.Status.Value() | 0x10 // B always pushed set by PHP
			}
			return mc.mem.Write(addr, v)
		}},
	}
}

// buildPull handles PLA/PLP: one dummy internal read, one dummy read at the
// pre-increment stack address, then the real pull.
func (mc *CPU) buildPull(def instructions.Definition) []microOp {
	return []microOp{
		{read: true, fn: func() error {
			_, err := mc.mem.Read(mc.PC.Address())
			return err
		}},
		{read: true, fn: func() error {
			_, err := mc.mem.Read(mc.SP.Address())
			return err
		}},
		{read: true, fn: func() error {
			v, err := mc.mem.Read(mc.SP.Pull())
			if def.Operator == instructions.Pla {
				mc.A.Load(v)
				mc.setNZ(mc.A.Value())
			} else {
				mc.Status.Load(v)
			}
			return err
		}},
	}
}

// buildJSR: fetch target low, internal cycle, push PCH, push PCL, fetch
// target high and jump. This ordering (push happens before the high byte is
// fetched) is why JSR's stacked return address is famously "PC-1" rather
// than the address of the following instruction.
func (mc *CPU) buildJSR() []microOp {
	return []microOp{
		{read: true, fn: func() error {
			b, err := mc.mem.Read(mc.PC.Address())
			mc.PC.Add(1)
			mc.addrLo = b
			return err
		}},
		{read: true, fn: func() error {
			// internal delay cycle, reads the top of stack without using it.
			_, err := mc.mem.Read(mc.SP.Address())
			return err
		}},
		{read: false, fn: func() error {
			return mc.mem.Write(mc.SP.Push(), uint8(mc.PC.Address()>>8))
		}},
		{read: false, fn: func() error {
			return mc.mem.Write(mc.SP.Push(), uint8(mc.PC.Address()))
		}},
		{read: true, fn: func() error {
			b, err := mc.mem.Read(mc.PC.Address())
			mc.addrHi = b
			mc.PC.Load(uint16(mc.addrHi)<<8 | uint16(mc.addrLo))
			return err
		}},
	}
}

// buildRTS: internal cycle, dummy stack read, pull PCL, pull PCH, then a
// final cycle that increments PC past the JSR operand.
func (mc *CPU) buildRTS() []microOp {
	return []microOp{
		{read: true, fn: func() error {
			_, err := mc.mem.Read(mc.PC.Address())
			return err
		}},
		{read: true, fn: func() error {
			_, err := mc.mem.Read(mc.SP.Address())
			return err
		}},
		{read: true, fn: func() error {
			b, err := mc.mem.Read(mc.SP.Pull())
			mc.addrLo = b
			return err
		}},
		{read: true, fn: func() error {
			b, err := mc.mem.Read(mc.SP.Pull())
			mc.addrHi = b
			return err
		}},
		{read: true, fn: func() error {
			_, err := mc.mem.Read(uint16(mc.addrHi)<<8 | uint16(mc.addrLo))
			mc.PC.Load(uint16(mc.addrHi)<<8 | uint16(mc.addrLo) + 1)
			return err
		}},
	}
}

// PeekRTS predicts the address an RTS at the given address would return to,
// without altering CPU state -- used by disassembly/debugger collaborators
// that need to follow subroutine returns speculatively (spec.md §12).
func (mc *CPU) PeekRTS(peek func(address uint16) (uint8, error)) (uint16, error) {
	lo, err := peek(mc.SP.Address() + 1)
	if err != nil {
		return 0, err
	}
	hi, err := peek(mc.SP.Address() + 2)
	if err != nil {
		return 0, err
	}
	return uint16(hi)<<8 | uint16(lo) + 1, nil
}

// buildRTI: internal cycle, dummy stack read, pull P, pull PCL, pull PCH.
// Unlike RTS there is no extra +1 cycle: the pushed PC already points at
// the correct resume address.
func (mc *CPU) buildRTI() []microOp {
	return []microOp{
		{read: true, fn: func() error {
			_, err := mc.mem.Read(mc.PC.Address())
			return err
		}},
		{read: true, fn: func() error {
			_, err := mc.mem.Read(mc.SP.Address())
			return err
		}},
		{read: true, fn: func() error {
			v, err := mc.mem.Read(mc.SP.Pull())
			mc.Status.Load(v)
			return err
		}},
		{read: true, fn: func() error {
			b, err := mc.mem.Read(mc.SP.Pull())
			mc.addrLo = b
			return err
		}},
		{read: true, fn: func() error {
			b, err := mc.mem.Read(mc.SP.Pull())
			mc.addrHi = b
			mc.PC.Load(uint16(mc.addrHi)<<8 | uint16(mc.addrLo))
			return err
		}},
	}
}

// buildJMP handles both JMP absolute and JMP indirect, including the
// well-known page-boundary bug: if the pointer's low byte is $FF, the high
// byte is fetched from the start of the same page rather than the next one.
func (mc *CPU) buildJMP(def instructions.Definition) []microOp {
	if def.AddressingMode == instructions.Absolute {
		return []microOp{
			{read: true, fn: func() error {
				b, err := mc.mem.Read(mc.PC.Address())
				mc.PC.Add(1)
				mc.addrLo = b
				return err
			}},
			{read: true, fn: func() error {
				b, err := mc.mem.Read(mc.PC.Address())
				mc.addrHi = b
				mc.PC.Load(uint16(mc.addrHi)<<8 | uint16(mc.addrLo))
				return err
			}},
		}
	}

	return []microOp{
		{read: true, fn: func() error {
			b, err := mc.mem.Read(mc.PC.Address())
			mc.PC.Add(1)
			mc.addrLo = b
			return err
		}},
		{read: true, fn: func() error {
			b, err := mc.mem.Read(mc.PC.Address())
			mc.PC.Add(1)
			mc.addrHi = b
			return err
		}},
		{read: true, fn: func() error {
			ptr := uint16(mc.addrHi)<<8 | uint16(mc.addrLo)
			b, err := mc.mem.Read(ptr)
			mc.idl = b
			return err
		}},
		{read: true, fn: func() error {
			// the page-boundary bug: wraps within the same page instead of
			// crossing into the next one.
			hiPtr := uint16(mc.addrHi)<<8 | uint16(mc.addrLo+1)
			b, err := mc.mem.Read(hiPtr)
			mc.PC.Load(uint16(b)<<8 | uint16(mc.idl))
			if mc.addrLo == 0xff {
				mc.Result.Bug = execution.JmpIndirectPageBoundaryBug
			}
			return err
		}},
	}
}

// buildBranch: one cycle that fetches the offset byte and evaluates the
// condition. A branch not taken ends there; a taken branch appends one more
// cycle, plus a further one if the branch target lies on a different page.
func (mc *CPU) buildBranch(def instructions.Definition) []microOp {
	return []microOp{
		{read: true, fn: func() error {
			offset, err := mc.mem.Read(mc.PC.Address())
			mc.PC.Add(1)
			mc.branchOffset = offset

			if !mc.branchTaken(def.Operator) {
				return err
			}

			target := mc.PC.Address()
			if offset&0x80 == 0x80 {
				target -= uint16(0x100 - uint16(offset))
			} else {
				target += uint16(offset)
			}
			mc.pageCrossed = (target & 0xff00) != (mc.PC.Address() & 0xff00)
			mc.effAddr = target

			mc.queue = append(mc.queue, mc.branchTakenOps()...)
			return err
		}},
	}
}

func (mc *CPU) branchTakenOps() []microOp {
	ops := []microOp{
		{read: true, fn: func() error {
			// dummy fetch at the not-yet-corrected PC.
			_, err := mc.mem.Read(mc.PC.Address())
			if !mc.pageCrossed {
				mc.PC.Load(mc.effAddr)
			}
			return err
		}},
	}
	if mc.pageCrossed {
		ops = append(ops, microOp{read: true, fn: func() error {
			_, err := mc.mem.Read(mc.PC.Address())
			mc.PC.Load(mc.effAddr)
			mc.Result.PageFault = true
			return err
		}})
	}
	return ops
}

func (mc *CPU) branchTaken(op instructions.Operator) bool {
	switch op {
	case instructions.Bcc:
		return !mc.Status.Carry
	case instructions.Bcs:
		return mc.Status.Carry
	case instructions.Beq:
		return mc.Status.Zero
	case instructions.Bne:
		return !mc.Status.Zero
	case instructions.Bmi:
		return mc.Status.Sign
	case instructions.Bpl:
		return !mc.Status.Sign
	case instructions.Bvc:
		return !mc.Status.Overflow
	case instructions.Bvs:
		return mc.Status.Overflow
	}
	return false
}

// buildBRKSequence implements BRK: a discarded operand byte (the reason a
// BRK "eats" the byte after it), then the standard 7-cycle software
// interrupt push/vector sequence, subject to the NMI hijack race described
// in spec.md §4.1 and exercised by scenario 6 in §8.
func (mc *CPU) buildBRKSequence() []microOp {
	return []microOp{
		{read: true, fn: func() error {
			_, err := mc.mem.Read(mc.PC.Address())
			mc.PC.Add(1)
			return err
		}},
		{read: false, fn: func() error {
			return mc.mem.Write(mc.SP.Push(), uint8(mc.PC.Address()>>8))
		}},
		{read: false, fn: func() error {
			return mc.mem.Write(mc.SP.Push(), uint8(mc.PC.Address()))
		}},
		{read: false, fn: func() error {
			mc.hijacked = mc.nmi.asserted()
			p := mc.Status.Value() | 0x20
			if mc.hijacked {
				mc.nmi.consume()
				p &^= 0x10
				mc.vector = 0xfffa
				mc.Result.Bug = execution.BrkNmiHijack
			} else {
				p |= 0x10
				mc.vector = 0xfffe
			}
			return mc.mem.Write(mc.SP.Push(), p)
		}},
		{read: true, fn: func() error {
			b, err := mc.mem.Read(mc.vector)
			mc.addrLo = b
			return err
		}},
		{read: true, fn: func() error {
			b, err := mc.mem.Read(mc.vector + 1)
			mc.addrHi = b
			mc.PC.Load(uint16(mc.addrHi)<<8 | uint16(mc.addrLo))
			mc.Status.InterruptDisable = true
			return err
		}},
	}
}

// buildInterruptSequence implements the hardware-initiated IRQ/NMI
// sequence: the same push/vector shape as BRK, but with B left clear and no
// operand byte consumed (PC is not advanced past the interrupted opcode).
func (mc *CPU) buildInterruptSequence(vector uint16) []microOp {
	return []microOp{
		{read: true, fn: func() error {
			_, err := mc.mem.Read(mc.PC.Address())
			return err
		}},
		{read: true, fn: func() error {
			_, err := mc.mem.Read(mc.PC.Address())
			return err
		}},
		{read: false, fn: func() error {
			return mc.mem.Write(mc.SP.Push(), uint8(mc.PC.Address()>>8))
		}},
		{read: false, fn: func() error {
			return mc.mem.Write(mc.SP.Push(), uint8(mc.PC.Address()))
		}},
		{read: false, fn: func() error {
			return mc.mem.Write(mc.SP.Push(), mc.Status.Value()&^0x10|0x20)
		}},
		{read: true, fn: func() error {
			b, err := mc.mem.Read(vector)
			mc.addrLo = b
			return err
		}},
		{read: true, fn: func() error {
			b, err := mc.mem.Read(vector + 1)
			mc.addrHi = b
			mc.PC.Load(uint16(mc.addrHi)<<8 | uint16(mc.addrLo))
			mc.Status.InterruptDisable = true
			return err
		}},
	}
}
