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

import "github.com/aiSzzPL77/virtualc64/cpu/instructions"

// addressingOps returns the operand-fetch microops shared by Read, Write
// and RMW instructions using this addressing mode. finalAccess is appended
// separately by the caller once the mode has resolved mc.effAddr (or, for
// Implied/Immediate, has nothing left for the caller to do beyond apply).
//
// extraOnCross controls whether an indexed mode's page-crossing cycle is
// conditional (Read effect: PageSensitive) or unconditional (Write/RMW:
// always taken, per the documented 6502 timing).
func (mc *CPU) addressingOps(mode instructions.AddressingMode, extraOnCross bool) []microOp {
	switch mode {
	case instructions.ZeroPage:
		return []microOp{
			{read: true, fn: func() error {
				b, err := mc.mem.Read(mc.PC.Address())
				mc.PC.Add(1)
				mc.effAddr = uint16(b)
				return err
			}},
		}

	case instructions.ZeroPageIndexedX:
		return mc.zeroPageIndexed(mc.X.Value)

	case instructions.ZeroPageIndexedY:
		return mc.zeroPageIndexed(mc.Y.Value)

	case instructions.Absolute:
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
				mc.effAddr = uint16(mc.addrHi)<<8 | uint16(mc.addrLo)
				return err
			}},
		}

	case instructions.AbsoluteIndexedX:
		return mc.absoluteIndexed(mc.X.Value, extraOnCross)

	case instructions.AbsoluteIndexedY:
		return mc.absoluteIndexed(mc.Y.Value, extraOnCross)

	case instructions.IndexedIndirect:
		return []microOp{
			{read: true, fn: func() error {
				b, err := mc.mem.Read(mc.PC.Address())
				mc.PC.Add(1)
				mc.ptr = b
				return err
			}},
			{read: true, fn: func() error {
				// discarded read at the pointer before X is applied.
				_, err := mc.mem.Read(uint16(mc.ptr))
				return err
			}},
			{read: true, fn: func() error {
				b, err := mc.mem.Read(uint16(mc.ptr + mc.X.Value()))
				mc.addrLo = b
				return err
			}},
			{read: true, fn: func() error {
				b, err := mc.mem.Read(uint16(mc.ptr + mc.X.Value() + 1))
				mc.addrHi = b
				mc.effAddr = uint16(mc.addrHi)<<8 | uint16(mc.addrLo)
				return err
			}},
		}

	case instructions.IndirectIndexed:
		return []microOp{
			{read: true, fn: func() error {
				b, err := mc.mem.Read(mc.PC.Address())
				mc.PC.Add(1)
				mc.ptr = b
				return err
			}},
			{read: true, fn: func() error {
				b, err := mc.mem.Read(uint16(mc.ptr))
				mc.addrLo = b
				return err
			}},
			{read: true, fn: func() error {
				b, err := mc.mem.Read(uint16(mc.ptr + 1))
				mc.addrHi = b
				base := uint16(mc.addrHi)<<8 | uint16(mc.addrLo)
				mc.effAddr = base + uint16(mc.Y.Value())
				mc.pageCrossed = (base & 0xff00) != (mc.effAddr & 0xff00)
				if extraOnCross || mc.pageCrossed {
					// prepend, not append: Step() has already popped this
					// microop off mc.queue by the time this closure runs, so
					// mc.queue here holds only what comes after -- the final
					// effAddr access. The phantom wrong-page read has to run
					// before that, not after it.
					mc.queue = append([]microOp{mc.pageCrossFixup()}, mc.queue...)
				}
				return err
			}},
		}
	}

	return nil
}

func (mc *CPU) zeroPageIndexed(index func() uint8) []microOp {
	return []microOp{
		{read: true, fn: func() error {
			b, err := mc.mem.Read(mc.PC.Address())
			mc.PC.Add(1)
			mc.addrLo = b
			return err
		}},
		{read: true, fn: func() error {
			// discarded read at the unindexed address; this is where the
			// index addition physically happens on real hardware.
			_, err := mc.mem.Read(uint16(mc.addrLo))
			mc.effAddr = uint16(mc.addrLo + index())
			return err
		}},
	}
}

func (mc *CPU) absoluteIndexed(index func() uint8, extraOnCross bool) []microOp {
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
			base := uint16(mc.addrHi)<<8 | uint16(mc.addrLo)
			mc.effAddr = base + uint16(index())
			mc.pageCrossed = (base & 0xff00) != (mc.effAddr & 0xff00)
			if extraOnCross || mc.pageCrossed {
				// prepend, not append: Step() has already popped this
				// microop off mc.queue by the time this closure runs, so
				// mc.queue here holds only what comes after -- the final
				// effAddr access. The phantom wrong-page read has to run
				// before that, not after it.
				mc.queue = append([]microOp{mc.pageCrossFixup()}, mc.queue...)
			}
			return err
		}},
	}
}

// pageCrossFixup builds the single "wrong page" phantom read cycle. The
// caller queues it itself, from inside the same microop that just computed
// mc.pageCrossed, rather than returning it as part of a statically-built
// slice: mc.pageCrossed is only known once that microop actually runs, and
// build() assembles the whole instruction's queue ahead of time in
// opFetch, before any operand microop has executed. Deciding the queue
// length at build time would read the previous instruction's leftover
// mc.pageCrossed instead of this one's (mirrors how buildBranch appends
// its own conditional cycle at run time in sequences.go).
func (mc *CPU) pageCrossFixup() microOp {
	return microOp{read: true, fn: func() error {
		// the 6502 forms this address by adding the index to the low byte
		// only; if that overflowed, the high byte hasn't been corrected
		// yet and this first guess reads the wrong page.
		wrong := uint16(mc.addrHi)<<8 | (mc.effAddr & 0x00ff)
		_, err := mc.mem.Read(wrong)
		if mc.pageCrossed {
			mc.Result.PageFault = true
		}
		return err
	}}
}
