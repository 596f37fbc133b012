package cpu

import "github.com/aiSzzPL77/virtualc64/cpu/instructions"

func (mc *CPU) setNZ(v uint8) {
	mc.Status.Zero = v == 0
	mc.Status.Sign = v&0x80 == 0x80
}

// adc performs a binary or decimal-mode addition into A, per spec.md §4.1's
// note that decimal mode reuses the binary Z/N result but derives its own
// N/V from the half-adjusted decimal sum.
func (mc *CPU) adc(value uint8) {
	if mc.Status.DecimalMode {
		binary := mc.A
		_, _ = binary.Add(value, mc.Status.Carry)
		zero := binary.IsZero()

		carry, _, overflow, sign := mc.A.AddDecimal(value, mc.Status.Carry)
		mc.Status.Carry = carry
		mc.Status.Overflow = overflow
		mc.Status.Sign = sign
		mc.Status.Zero = zero
		return
	}
	carry, overflow := mc.A.Add(value, mc.Status.Carry)
	mc.Status.Carry = carry
	mc.Status.Overflow = overflow
	mc.setNZ(mc.A.Value())
}

func (mc *CPU) sbc(value uint8) {
	if mc.Status.DecimalMode {
		binary := mc.A
		carry, overflow := binary.Subtract(value, mc.Status.Carry)
		zero := binary.IsZero()
		sign := binary.IsNegative()

		_, _, _, _ = mc.A.SubtractDecimal(value, mc.Status.Carry)
		mc.Status.Carry = carry
		mc.Status.Overflow = overflow
		mc.Status.Zero = zero
		mc.Status.Sign = sign
		return
	}
	carry, overflow := mc.A.Subtract(value, mc.Status.Carry)
	mc.Status.Carry = carry
	mc.Status.Overflow = overflow
	mc.setNZ(mc.A.Value())
}

func (mc *CPU) compare(reg registerValue, value uint8) {
	r := reg()
	result := r - value
	mc.Status.Carry = r >= value
	mc.setNZ(result)
}

type registerValue func() uint8

// applyImplied performs an operator whose addressing mode is Implied: it
// touches only registers, never memory (including the accumulator forms of
// the shift/rotate instructions).
func (mc *CPU) applyImplied(op instructions.Operator) {
	switch op {
	case instructions.Clc:
		mc.Status.Carry = false
	case instructions.Sec:
		mc.Status.Carry = true
	case instructions.Cld:
		mc.Status.DecimalMode = false
	case instructions.Sed:
		mc.Status.DecimalMode = true
	case instructions.Cli:
		mc.Status.InterruptDisable = false
	case instructions.Sei:
		mc.Status.InterruptDisable = true
	case instructions.Clv:
		mc.Status.Overflow = false
	case instructions.Tax:
		mc.X.Load(mc.A.Value())
		mc.setNZ(mc.X.Value())
	case instructions.Tay:
		mc.Y.Load(mc.A.Value())
		mc.setNZ(mc.Y.Value())
	case instructions.Txa:
		mc.A.Load(mc.X.Value())
		mc.setNZ(mc.A.Value())
	case instructions.Tya:
		mc.A.Load(mc.Y.Value())
		mc.setNZ(mc.A.Value())
	case instructions.Tsx:
		mc.X.Load(mc.SP.Value())
		mc.setNZ(mc.X.Value())
	case instructions.Txs:
		mc.SP.Load(mc.X.Value())
	case instructions.Dex:
		mc.X.Load(mc.X.Value() - 1)
		mc.setNZ(mc.X.Value())
	case instructions.Dey:
		mc.Y.Load(mc.Y.Value() - 1)
		mc.setNZ(mc.Y.Value())
	case instructions.Inx:
		mc.X.Load(mc.X.Value() + 1)
		mc.setNZ(mc.X.Value())
	case instructions.Iny:
		mc.Y.Load(mc.Y.Value() + 1)
		mc.setNZ(mc.Y.Value())
	case instructions.Nop:
		// no effect.
	case instructions.Asl:
		mc.Status.Carry = mc.A.ASL()
		mc.setNZ(mc.A.Value())
	case instructions.Lsr:
		mc.Status.Carry = mc.A.LSR()
		mc.setNZ(mc.A.Value())
	case instructions.Rol:
		mc.Status.Carry = mc.A.ROL(mc.Status.Carry)
		mc.setNZ(mc.A.Value())
	case instructions.Ror:
		mc.Status.Carry = mc.A.ROR(mc.Status.Carry)
		mc.setNZ(mc.A.Value())
	}
}

// applyRead performs an operator that consumes a fetched byte and never
// writes to memory, covering the legal read-effect operators and their
// illegal counterparts.
func (mc *CPU) applyRead(op instructions.Operator, value uint8) {
	switch op {
	case instructions.Adc:
		mc.adc(value)
	case instructions.Sbc:
		mc.sbc(value)
	case instructions.And:
		mc.A.AND(value)
		mc.setNZ(mc.A.Value())
	case instructions.Ora:
		mc.A.ORA(value)
		mc.setNZ(mc.A.Value())
	case instructions.Eor:
		mc.A.EOR(value)
		mc.setNZ(mc.A.Value())
	case instructions.Lda:
		mc.A.Load(value)
		mc.setNZ(mc.A.Value())
	case instructions.Ldx:
		mc.X.Load(value)
		mc.setNZ(mc.X.Value())
	case instructions.Ldy:
		mc.Y.Load(value)
		mc.setNZ(mc.Y.Value())
	case instructions.Cmp:
		mc.compare(mc.A.Value, value)
	case instructions.Cpx:
		mc.compare(mc.X.Value, value)
	case instructions.Cpy:
		mc.compare(mc.Y.Value, value)
	case instructions.Bit:
		mc.Status.Zero = mc.A.Value()&value == 0
		mc.Status.Sign = value&0x80 == 0x80
		mc.Status.Overflow = value&0x40 == 0x40
	case instructions.Nop, instructions.DOP, instructions.TOP:
		// the byte is fetched and discarded.
	case instructions.LAX:
		mc.A.Load(value)
		mc.X.Load(value)
		mc.setNZ(value)
	case instructions.AAC:
		mc.A.AND(value)
		mc.setNZ(mc.A.Value())
		mc.Status.Carry = mc.A.IsNegative()
	case instructions.ASR:
		mc.A.AND(value)
		mc.Status.Carry = mc.A.LSR()
		mc.setNZ(mc.A.Value())
	case instructions.ARR:
		mc.A.AND(value)
		mc.A.ROR(mc.Status.Carry)
		mc.setNZ(mc.A.Value())
		b6 := mc.A.Value()&0x40 == 0x40
		b5 := mc.A.Value()&0x20 == 0x20
		mc.Status.Carry = b6
		mc.Status.Overflow = b6 != b5
	case instructions.ATX:
		// unstable on real silicon; this core models the commonly
		// documented "OR with $ee, AND operand" behaviour.
		mc.A.Load((mc.A.Value() | 0xee) & value)
		mc.X.Load(mc.A.Value())
		mc.setNZ(mc.A.Value())
	case instructions.LAR:
		v := mc.SP.Value() & value
		mc.A.Load(v)
		mc.X.Load(v)
		mc.SP.Load(v)
		mc.setNZ(v)
	case instructions.XAA:
		// unstable on real silicon; modeled as (A | $ee) & X & operand.
		mc.A.Load((mc.A.Value() | 0xee) & mc.X.Value() & value)
		mc.setNZ(mc.A.Value())
	}
}

// computeWrite returns the byte a write-effect instruction stores. The
// unstable illegal store operators (AXA/SXA/SYA/TAS) AND their source
// register(s) against one more than the effective address's high byte, per
// the community-documented (and unstable-on-real-hardware) behaviour.
func (mc *CPU) computeWrite(op instructions.Operator) uint8 {
	hiPlus1 := uint8(mc.effAddr>>8) + 1
	switch op {
	case instructions.Sta:
		return mc.A.Value()
	case instructions.Stx:
		return mc.X.Value()
	case instructions.Sty:
		return mc.Y.Value()
	case instructions.AAX:
		return mc.A.Value() & mc.X.Value()
	case instructions.AXA:
		return mc.A.Value() & mc.X.Value() & hiPlus1
	case instructions.SXA:
		return mc.X.Value() & hiPlus1
	case instructions.SYA:
		return mc.Y.Value() & hiPlus1
	case instructions.TAS:
		mc.SP.Load(mc.A.Value() & mc.X.Value())
		return mc.SP.Value() & hiPlus1
	case instructions.XAA:
		return (mc.A.Value() | 0xee) & mc.X.Value()
	}
	return 0
}

// applyRMW performs a read-modify-write operator and returns the new value
// to be stored. Combined operators (SLO/RLA/SRE/RRA/DCP/ISC) additionally
// fold their second half-operation (ORA/AND/EOR/ADC/CMP/SBC with A) in the
// same cycle the real 6510 does.
func (mc *CPU) applyRMW(op instructions.Operator, old uint8) uint8 {
	switch op {
	case instructions.Asl:
		mc.Status.Carry = old&0x80 == 0x80
		v := old << 1
		mc.setNZ(v)
		return v
	case instructions.Lsr:
		mc.Status.Carry = old&0x01 == 0x01
		v := old >> 1
		mc.setNZ(v)
		return v
	case instructions.Rol:
		carry := old&0x80 == 0x80
		v := old << 1
		if mc.Status.Carry {
			v |= 0x01
		}
		mc.Status.Carry = carry
		mc.setNZ(v)
		return v
	case instructions.Ror:
		carry := old&0x01 == 0x01
		v := old >> 1
		if mc.Status.Carry {
			v |= 0x80
		}
		mc.Status.Carry = carry
		mc.setNZ(v)
		return v
	case instructions.Inc:
		v := old + 1
		mc.setNZ(v)
		return v
	case instructions.Dec:
		v := old - 1
		mc.setNZ(v)
		return v
	case instructions.SLO:
		mc.Status.Carry = old&0x80 == 0x80
		v := old << 1
		mc.A.ORA(v)
		mc.setNZ(mc.A.Value())
		return v
	case instructions.RLA:
		carry := old&0x80 == 0x80
		v := old << 1
		if mc.Status.Carry {
			v |= 0x01
		}
		mc.Status.Carry = carry
		mc.A.AND(v)
		mc.setNZ(mc.A.Value())
		return v
	case instructions.SRE:
		mc.Status.Carry = old&0x01 == 0x01
		v := old >> 1
		mc.A.EOR(v)
		mc.setNZ(mc.A.Value())
		return v
	case instructions.RRA:
		carry := old&0x01 == 0x01
		v := old >> 1
		if mc.Status.Carry {
			v |= 0x80
		}
		mc.Status.Carry = carry
		mc.adc(v)
		return v
	case instructions.DCP:
		v := old - 1
		mc.compare(mc.A.Value, v)
		return v
	case instructions.ISC:
		v := old + 1
		mc.sbc(v)
		return v
	}
	return old
}
