package registers

// Decimal-mode arithmetic follows Jorge Cwik's "Flags on Decimal mode in the
// NMOS 6502" note: the Z flag is derived from the pre-adjustment binary sum,
// while N and V are derived after adjusting the low nibble but before
// adjusting the high nibble.

func addDecimalNibble(a, b uint8, carry bool) (r uint8, rcarry bool) {
	r = a + b
	if carry {
		r++
	}
	return r, r > 9
}

// AddDecimal adds val to the register as packed BCD, returning the carry,
// zero, overflow, and sign flags produced by decimal-mode ADC.
func (r *Register) AddDecimal(val uint8, carry bool) (rcarry, zero, overflow, sign bool) {
	var ucarry, tcarry bool

	runits := r.value & 0x0f
	vunits := val & 0x0f
	runits, ucarry = addDecimalNibble(runits, vunits, carry)

	rtens := (r.value & 0xf0) >> 4
	vtens := (val & 0xf0) >> 4
	rtens, tcarry = addDecimalNibble(rtens, vtens, ucarry)

	zero = runits == 0x00 && rtens == 0x00

	if ucarry {
		runits -= 10
	}

	overflow = rtens&0x04 == 0x04
	sign = rtens&0x08 == 0x08

	if tcarry {
		rtens -= 10
	}

	r.value = (rtens << 4) | (runits & 0x0f)

	return tcarry, zero, overflow, sign
}

func subtractDecimalNibble(a, b uint8, carry bool) (r uint8, rcarry bool) {
	r = a - b
	if carry {
		r--
	}
	return r, b > a || (carry && b == a)
}

// SubtractDecimal subtracts val from the register as packed BCD, returning
// the carry, zero, overflow, and sign flags produced by decimal-mode SBC.
//
// N, V and Z are derived from the equivalent binary subtraction, per Cwik's
// note that decimal mode only patches the nibble adjustment, not flag
// derivation, for SBC (unlike ADC, where N/V come from the half-adjusted
// decimal result).
func (r *Register) SubtractDecimal(val uint8, carry bool) (rcarry, zero, overflow, sign bool) {
	var ucarry, tcarry bool

	binary := *r
	rcarry, overflow = binary.Subtract(val, carry)
	zero = binary.IsZero()
	sign = binary.IsNegative()

	// the 6510 carry flag is inverted relative to a plain borrow.
	dcarry := !carry

	runits := r.value & 0x0f
	vunits := val & 0x0f
	runits, ucarry = subtractDecimalNibble(runits, vunits, dcarry)

	rtens := (r.value & 0xf0) >> 4
	vtens := (val & 0xf0) >> 4
	rtens, tcarry = subtractDecimalNibble(rtens, vtens, ucarry)

	if ucarry {
		runits += 10
	}
	if tcarry {
		rtens += 10
	}

	r.value = (rtens << 4) | (runits & 0x0f)

	return rcarry, zero, overflow, sign
}
