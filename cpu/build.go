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

// build compiles the queue of remaining microops for the instruction just
// decoded by opFetch. The opcode's own fetch cycle has already run; this
// queue covers every cycle from here to the next FETCH.
func (mc *CPU) build(def instructions.Definition) []microOp {
	switch def.Operator {
	case instructions.Pha, instructions.Php:
		return mc.buildPush(def)
	case instructions.Pla, instructions.Plp:
		return mc.buildPull(def)
	case instructions.Jsr:
		return mc.buildJSR()
	case instructions.Rts:
		return mc.buildRTS()
	case instructions.Rti:
		return mc.buildRTI()
	case instructions.Brk:
		return mc.buildBRKSequence()
	case instructions.Jmp:
		return mc.buildJMP(def)
	}

	if def.IsBranch() {
		return mc.buildBranch(def)
	}

	if def.AddressingMode == instructions.Implied {
		return []microOp{{read: false, fn: func() error {
			mc.applyImplied(def.Operator)
			return nil
		}}}
	}

	switch def.Effect {
	case instructions.Read:
		return mc.buildRead(def)
	case instructions.Write:
		return mc.buildWrite(def)
	case instructions.RMW:
		return mc.buildRMW(def)
	}
	return nil
}

func (mc *CPU) buildRead(def instructions.Definition) []microOp {
	if def.AddressingMode == instructions.Immediate {
		return []microOp{{read: true, fn: func() error {
			b, err := mc.mem.Read(mc.PC.Address())
			mc.PC.Add(1)
			mc.applyRead(def.Operator, b)
			return err
		}}}
	}

	ops := mc.addressingOps(def.AddressingMode, false)
	final := microOp{read: true, fn: func() error {
		b, err := mc.mem.Read(mc.effAddr)
		mc.applyRead(def.Operator, b)
		return err
	}}
	return append(ops, final)
}

func (mc *CPU) buildWrite(def instructions.Definition) []microOp {
	ops := mc.addressingOps(def.AddressingMode, true)
	final := microOp{read: false, fn: func() error {
		return mc.mem.Write(mc.effAddr, mc.computeWrite(def.Operator))
	}}
	return append(ops, final)
}

func (mc *CPU) buildRMW(def instructions.Definition) []microOp {
	ops := mc.addressingOps(def.AddressingMode, true)
	var old uint8
	ops = append(ops,
		microOp{read: true, fn: func() error {
			b, err := mc.mem.Read(mc.effAddr)
			old = b
			return err
		}},
		microOp{read: false, fn: func() error {
			return mc.mem.Write(mc.effAddr, old)
		}},
		microOp{read: false, fn: func() error {
			return mc.mem.Write(mc.effAddr, mc.applyRMW(def.Operator, old))
		}},
	)
	return ops
}
