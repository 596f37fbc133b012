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

package instructions

// bytesFor returns the instruction length in bytes implied by an addressing
// mode. This mirrors the teacher's generator, which infers Bytes from the
// addressing mode string rather than recording it per opcode.
func bytesFor(mode AddressingMode) int {
	switch mode {
	case Implied:
		return 1
	case Immediate, Relative, ZeroPage, IndexedIndirect, IndirectIndexed,
		ZeroPageIndexedX, ZeroPageIndexedY:
		return 2
	case Absolute, Indirect, AbsoluteIndexedX, AbsoluteIndexedY:
		return 3
	}
	return 1
}

func def(op uint8, mnemonic string, operator Operator, mode AddressingMode, cycles int, effect EffectCategory, pageSensitive, illegal bool) Definition {
	return Definition{
		OpCode:         op,
		Mnemonic:       mnemonic,
		Operator:       operator,
		Bytes:          bytesFor(mode),
		Cycles:         cycles,
		AddressingMode: mode,
		PageSensitive:  pageSensitive,
		Effect:         effect,
		Illegal:        illegal,
	}
}

// table is indexed by opcode. Built once by GetDefinitions.
var table [256]Definition

// GetDefinitions returns the full 256-entry 6510 opcode table, built once
// and shared (the table is read-only after construction so sharing a single
// backing array across CPU instances is safe).
func GetDefinitions() *[256]Definition {
	return &table
}

func init() {
	// row 0x0_
	table[0x00] = def(0x00, "BRK", Brk, Implied, 7, Interrupt, false, false)
	table[0x01] = def(0x01, "ORA", Ora, IndexedIndirect, 6, Read, false, false)
	table[0x02] = def(0x02, "KIL", KIL, Implied, 2, Read, false, true)
	table[0x03] = def(0x03, "SLO", SLO, IndexedIndirect, 8, RMW, false, true)
	table[0x04] = def(0x04, "NOP", DOP, ZeroPage, 3, Read, false, true)
	table[0x05] = def(0x05, "ORA", Ora, ZeroPage, 3, Read, false, false)
	table[0x06] = def(0x06, "ASL", Asl, ZeroPage, 5, RMW, false, false)
	table[0x07] = def(0x07, "SLO", SLO, ZeroPage, 5, RMW, false, true)
	table[0x08] = def(0x08, "PHP", Php, Implied, 3, Read, false, false)
	table[0x09] = def(0x09, "ORA", Ora, Immediate, 2, Read, false, false)
	table[0x0A] = def(0x0A, "ASL", Asl, Implied, 2, Read, false, false)
	table[0x0B] = def(0x0B, "ANC", AAC, Immediate, 2, Read, false, true)
	table[0x0C] = def(0x0C, "NOP", TOP, Absolute, 4, Read, false, true)
	table[0x0D] = def(0x0D, "ORA", Ora, Absolute, 4, Read, false, false)
	table[0x0E] = def(0x0E, "ASL", Asl, Absolute, 6, RMW, false, false)
	table[0x0F] = def(0x0F, "SLO", SLO, Absolute, 6, RMW, false, true)

	// row 0x1_
	table[0x10] = def(0x10, "BPL", Bpl, Relative, 2, Flow, false, false)
	table[0x11] = def(0x11, "ORA", Ora, IndirectIndexed, 5, Read, true, false)
	table[0x12] = def(0x12, "KIL", KIL, Implied, 2, Read, false, true)
	table[0x13] = def(0x13, "SLO", SLO, IndirectIndexed, 8, RMW, false, true)
	table[0x14] = def(0x14, "NOP", DOP, ZeroPageIndexedX, 4, Read, false, true)
	table[0x15] = def(0x15, "ORA", Ora, ZeroPageIndexedX, 4, Read, false, false)
	table[0x16] = def(0x16, "ASL", Asl, ZeroPageIndexedX, 6, RMW, false, false)
	table[0x17] = def(0x17, "SLO", SLO, ZeroPageIndexedX, 6, RMW, false, true)
	table[0x18] = def(0x18, "CLC", Clc, Implied, 2, Read, false, false)
	table[0x19] = def(0x19, "ORA", Ora, AbsoluteIndexedY, 4, Read, true, false)
	table[0x1A] = def(0x1A, "NOP", Nop, Implied, 2, Read, false, true)
	table[0x1B] = def(0x1B, "SLO", SLO, AbsoluteIndexedY, 7, RMW, false, true)
	table[0x1C] = def(0x1C, "NOP", TOP, AbsoluteIndexedX, 4, Read, true, true)
	table[0x1D] = def(0x1D, "ORA", Ora, AbsoluteIndexedX, 4, Read, true, false)
	table[0x1E] = def(0x1E, "ASL", Asl, AbsoluteIndexedX, 7, RMW, false, false)
	table[0x1F] = def(0x1F, "SLO", SLO, AbsoluteIndexedX, 7, RMW, false, true)

	// row 0x2_
	table[0x20] = def(0x20, "JSR", Jsr, Absolute, 6, Subroutine, false, false)
	table[0x21] = def(0x21, "AND", And, IndexedIndirect, 6, Read, false, false)
	table[0x22] = def(0x22, "KIL", KIL, Implied, 2, Read, false, true)
	table[0x23] = def(0x23, "RLA", RLA, IndexedIndirect, 8, RMW, false, true)
	table[0x24] = def(0x24, "BIT", Bit, ZeroPage, 3, Read, false, false)
	table[0x25] = def(0x25, "AND", And, ZeroPage, 3, Read, false, false)
	table[0x26] = def(0x26, "ROL", Rol, ZeroPage, 5, RMW, false, false)
	table[0x27] = def(0x27, "RLA", RLA, ZeroPage, 5, RMW, false, true)
	table[0x28] = def(0x28, "PLP", Plp, Implied, 4, Read, false, false)
	table[0x29] = def(0x29, "AND", And, Immediate, 2, Read, false, false)
	table[0x2A] = def(0x2A, "ROL", Rol, Implied, 2, Read, false, false)
	table[0x2B] = def(0x2B, "ANC", AAC, Immediate, 2, Read, false, true)
	table[0x2C] = def(0x2C, "BIT", Bit, Absolute, 4, Read, false, false)
	table[0x2D] = def(0x2D, "AND", And, Absolute, 4, Read, false, false)
	table[0x2E] = def(0x2E, "ROL", Rol, Absolute, 6, RMW, false, false)
	table[0x2F] = def(0x2F, "RLA", RLA, Absolute, 6, RMW, false, true)

	// row 0x3_
	table[0x30] = def(0x30, "BMI", Bmi, Relative, 2, Flow, false, false)
	table[0x31] = def(0x31, "AND", And, IndirectIndexed, 5, Read, true, false)
	table[0x32] = def(0x32, "KIL", KIL, Implied, 2, Read, false, true)
	table[0x33] = def(0x33, "RLA", RLA, IndirectIndexed, 8, RMW, false, true)
	table[0x34] = def(0x34, "NOP", DOP, ZeroPageIndexedX, 4, Read, false, true)
	table[0x35] = def(0x35, "AND", And, ZeroPageIndexedX, 4, Read, false, false)
	table[0x36] = def(0x36, "ROL", Rol, ZeroPageIndexedX, 6, RMW, false, false)
	table[0x37] = def(0x37, "RLA", RLA, ZeroPageIndexedX, 6, RMW, false, true)
	table[0x38] = def(0x38, "SEC", Sec, Implied, 2, Read, false, false)
	table[0x39] = def(0x39, "AND", And, AbsoluteIndexedY, 4, Read, true, false)
	table[0x3A] = def(0x3A, "NOP", Nop, Implied, 2, Read, false, true)
	table[0x3B] = def(0x3B, "RLA", RLA, AbsoluteIndexedY, 7, RMW, false, true)
	table[0x3C] = def(0x3C, "NOP", TOP, AbsoluteIndexedX, 4, Read, true, true)
	table[0x3D] = def(0x3D, "AND", And, AbsoluteIndexedX, 4, Read, true, false)
	table[0x3E] = def(0x3E, "ROL", Rol, AbsoluteIndexedX, 7, RMW, false, false)
	table[0x3F] = def(0x3F, "RLA", RLA, AbsoluteIndexedX, 7, RMW, false, true)

	// row 0x4_
	table[0x40] = def(0x40, "RTI", Rti, Implied, 6, Interrupt, false, false)
	table[0x41] = def(0x41, "EOR", Eor, IndexedIndirect, 6, Read, false, false)
	table[0x42] = def(0x42, "KIL", KIL, Implied, 2, Read, false, true)
	table[0x43] = def(0x43, "SRE", SRE, IndexedIndirect, 8, RMW, false, true)
	table[0x44] = def(0x44, "NOP", DOP, ZeroPage, 3, Read, false, true)
	table[0x45] = def(0x45, "EOR", Eor, ZeroPage, 3, Read, false, false)
	table[0x46] = def(0x46, "LSR", Lsr, ZeroPage, 5, RMW, false, false)
	table[0x47] = def(0x47, "SRE", SRE, ZeroPage, 5, RMW, false, true)
	table[0x48] = def(0x48, "PHA", Pha, Implied, 3, Read, false, false)
	table[0x49] = def(0x49, "EOR", Eor, Immediate, 2, Read, false, false)
	table[0x4A] = def(0x4A, "LSR", Lsr, Implied, 2, Read, false, false)
	table[0x4B] = def(0x4B, "ALR", ASR, Immediate, 2, Read, false, true)
	table[0x4C] = def(0x4C, "JMP", Jmp, Absolute, 3, Flow, false, false)
	table[0x4D] = def(0x4D, "EOR", Eor, Absolute, 4, Read, false, false)
	table[0x4E] = def(0x4E, "LSR", Lsr, Absolute, 6, RMW, false, false)
	table[0x4F] = def(0x4F, "SRE", SRE, Absolute, 6, RMW, false, true)

	// row 0x5_
	table[0x50] = def(0x50, "BVC", Bvc, Relative, 2, Flow, false, false)
	table[0x51] = def(0x51, "EOR", Eor, IndirectIndexed, 5, Read, true, false)
	table[0x52] = def(0x52, "KIL", KIL, Implied, 2, Read, false, true)
	table[0x53] = def(0x53, "SRE", SRE, IndirectIndexed, 8, RMW, false, true)
	table[0x54] = def(0x54, "NOP", DOP, ZeroPageIndexedX, 4, Read, false, true)
	table[0x55] = def(0x55, "EOR", Eor, ZeroPageIndexedX, 4, Read, false, false)
	table[0x56] = def(0x56, "LSR", Lsr, ZeroPageIndexedX, 6, RMW, false, false)
	table[0x57] = def(0x57, "SRE", SRE, ZeroPageIndexedX, 6, RMW, false, true)
	table[0x58] = def(0x58, "CLI", Cli, Implied, 2, Read, false, false)
	table[0x59] = def(0x59, "EOR", Eor, AbsoluteIndexedY, 4, Read, true, false)
	table[0x5A] = def(0x5A, "NOP", Nop, Implied, 2, Read, false, true)
	table[0x5B] = def(0x5B, "SRE", SRE, AbsoluteIndexedY, 7, RMW, false, true)
	table[0x5C] = def(0x5C, "NOP", TOP, AbsoluteIndexedX, 4, Read, true, true)
	table[0x5D] = def(0x5D, "EOR", Eor, AbsoluteIndexedX, 4, Read, true, false)
	table[0x5E] = def(0x5E, "LSR", Lsr, AbsoluteIndexedX, 7, RMW, false, false)
	table[0x5F] = def(0x5F, "SRE", SRE, AbsoluteIndexedX, 7, RMW, false, true)

	// row 0x6_
	table[0x60] = def(0x60, "RTS", Rts, Implied, 6, Flow, false, false)
	table[0x61] = def(0x61, "ADC", Adc, IndexedIndirect, 6, Read, false, false)
	table[0x62] = def(0x62, "KIL", KIL, Implied, 2, Read, false, true)
	table[0x63] = def(0x63, "RRA", RRA, IndexedIndirect, 8, RMW, false, true)
	table[0x64] = def(0x64, "NOP", DOP, ZeroPage, 3, Read, false, true)
	table[0x65] = def(0x65, "ADC", Adc, ZeroPage, 3, Read, false, false)
	table[0x66] = def(0x66, "ROR", Ror, ZeroPage, 5, RMW, false, false)
	table[0x67] = def(0x67, "RRA", RRA, ZeroPage, 5, RMW, false, true)
	table[0x68] = def(0x68, "PLA", Pla, Implied, 4, Read, false, false)
	table[0x69] = def(0x69, "ADC", Adc, Immediate, 2, Read, false, false)
	table[0x6A] = def(0x6A, "ROR", Ror, Implied, 2, Read, false, false)
	table[0x6B] = def(0x6B, "ARR", ARR, Immediate, 2, Read, false, true)
	table[0x6C] = def(0x6C, "JMP", Jmp, Indirect, 5, Flow, false, false)
	table[0x6D] = def(0x6D, "ADC", Adc, Absolute, 4, Read, false, false)
	table[0x6E] = def(0x6E, "ROR", Ror, Absolute, 6, RMW, false, false)
	table[0x6F] = def(0x6F, "RRA", RRA, Absolute, 6, RMW, false, true)

	// row 0x7_
	table[0x70] = def(0x70, "BVS", Bvs, Relative, 2, Flow, false, false)
	table[0x71] = def(0x71, "ADC", Adc, IndirectIndexed, 5, Read, true, false)
	table[0x72] = def(0x72, "KIL", KIL, Implied, 2, Read, false, true)
	table[0x73] = def(0x73, "RRA", RRA, IndirectIndexed, 8, RMW, false, true)
	table[0x74] = def(0x74, "NOP", DOP, ZeroPageIndexedX, 4, Read, false, true)
	table[0x75] = def(0x75, "ADC", Adc, ZeroPageIndexedX, 4, Read, false, false)
	table[0x76] = def(0x76, "ROR", Ror, ZeroPageIndexedX, 6, RMW, false, false)
	table[0x77] = def(0x77, "RRA", RRA, ZeroPageIndexedX, 6, RMW, false, true)
	table[0x78] = def(0x78, "SEI", Sei, Implied, 2, Read, false, false)
	table[0x79] = def(0x79, "ADC", Adc, AbsoluteIndexedY, 4, Read, true, false)
	table[0x7A] = def(0x7A, "NOP", Nop, Implied, 2, Read, false, true)
	table[0x7B] = def(0x7B, "RRA", RRA, AbsoluteIndexedY, 7, RMW, false, true)
	table[0x7C] = def(0x7C, "NOP", TOP, AbsoluteIndexedX, 4, Read, true, true)
	table[0x7D] = def(0x7D, "ADC", Adc, AbsoluteIndexedX, 4, Read, true, false)
	table[0x7E] = def(0x7E, "ROR", Ror, AbsoluteIndexedX, 7, RMW, false, false)
	table[0x7F] = def(0x7F, "RRA", RRA, AbsoluteIndexedX, 7, RMW, false, true)

	// row 0x8_
	table[0x80] = def(0x80, "NOP", DOP, Immediate, 2, Read, false, true)
	table[0x81] = def(0x81, "STA", Sta, IndexedIndirect, 6, Write, false, false)
	table[0x82] = def(0x82, "NOP", DOP, Immediate, 2, Read, false, true)
	table[0x83] = def(0x83, "SAX", AAX, IndexedIndirect, 6, Write, false, true)
	table[0x84] = def(0x84, "STY", Sty, ZeroPage, 3, Write, false, false)
	table[0x85] = def(0x85, "STA", Sta, ZeroPage, 3, Write, false, false)
	table[0x86] = def(0x86, "STX", Stx, ZeroPage, 3, Write, false, false)
	table[0x87] = def(0x87, "SAX", AAX, ZeroPage, 3, Write, false, true)
	table[0x88] = def(0x88, "DEY", Dey, Implied, 2, Read, false, false)
	table[0x89] = def(0x89, "NOP", DOP, Immediate, 2, Read, false, true)
	table[0x8A] = def(0x8A, "TXA", Txa, Implied, 2, Read, false, false)
	table[0x8B] = def(0x8B, "XAA", XAA, Immediate, 2, Read, false, true)
	table[0x8C] = def(0x8C, "STY", Sty, Absolute, 4, Write, false, false)
	table[0x8D] = def(0x8D, "STA", Sta, Absolute, 4, Write, false, false)
	table[0x8E] = def(0x8E, "STX", Stx, Absolute, 4, Write, false, false)
	table[0x8F] = def(0x8F, "SAX", AAX, Absolute, 4, Write, false, true)

	// row 0x9_
	table[0x90] = def(0x90, "BCC", Bcc, Relative, 2, Flow, false, false)
	table[0x91] = def(0x91, "STA", Sta, IndirectIndexed, 6, Write, false, false)
	table[0x92] = def(0x92, "KIL", KIL, Implied, 2, Read, false, true)
	table[0x93] = def(0x93, "AHX", AXA, IndirectIndexed, 6, Write, false, true)
	table[0x94] = def(0x94, "STY", Sty, ZeroPageIndexedX, 4, Write, false, false)
	table[0x95] = def(0x95, "STA", Sta, ZeroPageIndexedX, 4, Write, false, false)
	table[0x96] = def(0x96, "STX", Stx, ZeroPageIndexedY, 4, Write, false, false)
	table[0x97] = def(0x97, "SAX", AAX, ZeroPageIndexedY, 4, Write, false, true)
	table[0x98] = def(0x98, "TYA", Tya, Implied, 2, Read, false, false)
	table[0x99] = def(0x99, "STA", Sta, AbsoluteIndexedY, 5, Write, false, false)
	table[0x9A] = def(0x9A, "TXS", Txs, Implied, 2, Read, false, false)
	table[0x9B] = def(0x9B, "TAS", TAS, AbsoluteIndexedY, 5, Write, false, true)
	table[0x9C] = def(0x9C, "SHY", SYA, AbsoluteIndexedX, 5, Write, false, true)
	table[0x9D] = def(0x9D, "STA", Sta, AbsoluteIndexedX, 5, Write, false, false)
	table[0x9E] = def(0x9E, "SHX", SXA, AbsoluteIndexedY, 5, Write, false, true)
	table[0x9F] = def(0x9F, "AHX", AXA, AbsoluteIndexedY, 5, Write, false, true)

	// row 0xA_
	table[0xA0] = def(0xA0, "LDY", Ldy, Immediate, 2, Read, false, false)
	table[0xA1] = def(0xA1, "LDA", Lda, IndexedIndirect, 6, Read, false, false)
	table[0xA2] = def(0xA2, "LDX", Ldx, Immediate, 2, Read, false, false)
	table[0xA3] = def(0xA3, "LAX", LAX, IndexedIndirect, 6, Read, false, true)
	table[0xA4] = def(0xA4, "LDY", Ldy, ZeroPage, 3, Read, false, false)
	table[0xA5] = def(0xA5, "LDA", Lda, ZeroPage, 3, Read, false, false)
	table[0xA6] = def(0xA6, "LDX", Ldx, ZeroPage, 3, Read, false, false)
	table[0xA7] = def(0xA7, "LAX", LAX, ZeroPage, 3, Read, false, true)
	table[0xA8] = def(0xA8, "TAY", Tay, Implied, 2, Read, false, false)
	table[0xA9] = def(0xA9, "LDA", Lda, Immediate, 2, Read, false, false)
	table[0xAA] = def(0xAA, "TAX", Tax, Implied, 2, Read, false, false)
	table[0xAB] = def(0xAB, "LXA", ATX, Immediate, 2, Read, false, true)
	table[0xAC] = def(0xAC, "LDY", Ldy, Absolute, 4, Read, false, false)
	table[0xAD] = def(0xAD, "LDA", Lda, Absolute, 4, Read, false, false)
	table[0xAE] = def(0xAE, "LDX", Ldx, Absolute, 4, Read, false, false)
	table[0xAF] = def(0xAF, "LAX", LAX, Absolute, 4, Read, false, true)

	// row 0xB_
	table[0xB0] = def(0xB0, "BCS", Bcs, Relative, 2, Flow, false, false)
	table[0xB1] = def(0xB1, "LDA", Lda, IndirectIndexed, 5, Read, true, false)
	table[0xB2] = def(0xB2, "KIL", KIL, Implied, 2, Read, false, true)
	table[0xB3] = def(0xB3, "LAX", LAX, IndirectIndexed, 5, Read, true, true)
	table[0xB4] = def(0xB4, "LDY", Ldy, ZeroPageIndexedX, 4, Read, false, false)
	table[0xB5] = def(0xB5, "LDA", Lda, ZeroPageIndexedX, 4, Read, false, false)
	table[0xB6] = def(0xB6, "LDX", Ldx, ZeroPageIndexedY, 4, Read, false, false)
	table[0xB7] = def(0xB7, "LAX", LAX, ZeroPageIndexedY, 4, Read, false, true)
	table[0xB8] = def(0xB8, "CLV", Clv, Implied, 2, Read, false, false)
	table[0xB9] = def(0xB9, "LDA", Lda, AbsoluteIndexedY, 4, Read, true, false)
	table[0xBA] = def(0xBA, "TSX", Tsx, Implied, 2, Read, false, false)
	table[0xBB] = def(0xBB, "LAS", LAR, AbsoluteIndexedY, 4, Read, true, true)
	table[0xBC] = def(0xBC, "LDY", Ldy, AbsoluteIndexedX, 4, Read, true, false)
	table[0xBD] = def(0xBD, "LDA", Lda, AbsoluteIndexedX, 4, Read, true, false)
	table[0xBE] = def(0xBE, "LDX", Ldx, AbsoluteIndexedY, 4, Read, true, false)
	table[0xBF] = def(0xBF, "LAX", LAX, AbsoluteIndexedY, 4, Read, true, true)

	// row 0xC_
	table[0xC0] = def(0xC0, "CPY", Cpy, Immediate, 2, Read, false, false)
	table[0xC1] = def(0xC1, "CMP", Cmp, IndexedIndirect, 6, Read, false, false)
	table[0xC2] = def(0xC2, "NOP", DOP, Immediate, 2, Read, false, true)
	table[0xC3] = def(0xC3, "DCP", DCP, IndexedIndirect, 8, RMW, false, true)
	table[0xC4] = def(0xC4, "CPY", Cpy, ZeroPage, 3, Read, false, false)
	table[0xC5] = def(0xC5, "CMP", Cmp, ZeroPage, 3, Read, false, false)
	table[0xC6] = def(0xC6, "DEC", Dec, ZeroPage, 5, RMW, false, false)
	table[0xC7] = def(0xC7, "DCP", DCP, ZeroPage, 5, RMW, false, true)
	table[0xC8] = def(0xC8, "INY", Iny, Implied, 2, Read, false, false)
	table[0xC9] = def(0xC9, "CMP", Cmp, Immediate, 2, Read, false, false)
	table[0xCA] = def(0xCA, "DEX", Dex, Implied, 2, Read, false, false)
	table[0xCB] = def(0xCB, "SBX", AXS, Immediate, 2, Read, false, true)
	table[0xCC] = def(0xCC, "CPY", Cpy, Absolute, 4, Read, false, false)
	table[0xCD] = def(0xCD, "CMP", Cmp, Absolute, 4, Read, false, false)
	table[0xCE] = def(0xCE, "DEC", Dec, Absolute, 6, RMW, false, false)
	table[0xCF] = def(0xCF, "DCP", DCP, Absolute, 6, RMW, false, true)

	// row 0xD_
	table[0xD0] = def(0xD0, "BNE", Bne, Relative, 2, Flow, false, false)
	table[0xD1] = def(0xD1, "CMP", Cmp, IndirectIndexed, 5, Read, true, false)
	table[0xD2] = def(0xD2, "KIL", KIL, Implied, 2, Read, false, true)
	table[0xD3] = def(0xD3, "DCP", DCP, IndirectIndexed, 8, RMW, false, true)
	table[0xD4] = def(0xD4, "NOP", DOP, ZeroPageIndexedX, 4, Read, false, true)
	table[0xD5] = def(0xD5, "CMP", Cmp, ZeroPageIndexedX, 4, Read, false, false)
	table[0xD6] = def(0xD6, "DEC", Dec, ZeroPageIndexedX, 6, RMW, false, false)
	table[0xD7] = def(0xD7, "DCP", DCP, ZeroPageIndexedX, 6, RMW, false, true)
	table[0xD8] = def(0xD8, "CLD", Cld, Implied, 2, Read, false, false)
	table[0xD9] = def(0xD9, "CMP", Cmp, AbsoluteIndexedY, 4, Read, true, false)
	table[0xDA] = def(0xDA, "NOP", Nop, Implied, 2, Read, false, true)
	table[0xDB] = def(0xDB, "DCP", DCP, AbsoluteIndexedY, 7, RMW, false, true)
	table[0xDC] = def(0xDC, "NOP", TOP, AbsoluteIndexedX, 4, Read, true, true)
	table[0xDD] = def(0xDD, "CMP", Cmp, AbsoluteIndexedX, 4, Read, true, false)
	table[0xDE] = def(0xDE, "DEC", Dec, AbsoluteIndexedX, 7, RMW, false, false)
	table[0xDF] = def(0xDF, "DCP", DCP, AbsoluteIndexedX, 7, RMW, false, true)

	// row 0xE_
	table[0xE0] = def(0xE0, "CPX", Cpx, Immediate, 2, Read, false, false)
	table[0xE1] = def(0xE1, "SBC", Sbc, IndexedIndirect, 6, Read, false, false)
	table[0xE2] = def(0xE2, "NOP", DOP, Immediate, 2, Read, false, true)
	table[0xE3] = def(0xE3, "ISC", ISC, IndexedIndirect, 8, RMW, false, true)
	table[0xE4] = def(0xE4, "CPX", Cpx, ZeroPage, 3, Read, false, false)
	table[0xE5] = def(0xE5, "SBC", Sbc, ZeroPage, 3, Read, false, false)
	table[0xE6] = def(0xE6, "INC", Inc, ZeroPage, 5, RMW, false, false)
	table[0xE7] = def(0xE7, "ISC", ISC, ZeroPage, 5, RMW, false, true)
	table[0xE8] = def(0xE8, "INX", Inx, Implied, 2, Read, false, false)
	table[0xE9] = def(0xE9, "SBC", Sbc, Immediate, 2, Read, false, false)
	table[0xEA] = def(0xEA, "NOP", Nop, Implied, 2, Read, false, false)
	table[0xEB] = def(0xEB, "SBC", Sbc, Immediate, 2, Read, false, true)
	table[0xEC] = def(0xEC, "CPX", Cpx, Absolute, 4, Read, false, false)
	table[0xED] = def(0xED, "SBC", Sbc, Absolute, 4, Read, false, false)
	table[0xEE] = def(0xEE, "INC", Inc, Absolute, 6, RMW, false, false)
	table[0xEF] = def(0xEF, "ISC", ISC, Absolute, 6, RMW, false, true)

	// row 0xF_
	table[0xF0] = def(0xF0, "BEQ", Beq, Relative, 2, Flow, false, false)
	table[0xF1] = def(0xF1, "SBC", Sbc, IndirectIndexed, 5, Read, true, false)
	table[0xF2] = def(0xF2, "KIL", KIL, Implied, 2, Read, false, true)
	table[0xF3] = def(0xF3, "ISC", ISC, IndirectIndexed, 8, RMW, false, true)
	table[0xF4] = def(0xF4, "NOP", DOP, ZeroPageIndexedX, 4, Read, false, true)
	table[0xF5] = def(0xF5, "SBC", Sbc, ZeroPageIndexedX, 4, Read, false, false)
	table[0xF6] = def(0xF6, "INC", Inc, ZeroPageIndexedX, 6, RMW, false, false)
	table[0xF7] = def(0xF7, "ISC", ISC, ZeroPageIndexedX, 6, RMW, false, true)
	table[0xF8] = def(0xF8, "SED", Sed, Implied, 2, Read, false, false)
	table[0xF9] = def(0xF9, "SBC", Sbc, AbsoluteIndexedY, 4, Read, true, false)
	table[0xFA] = def(0xFA, "NOP", Nop, Implied, 2, Read, false, true)
	table[0xFB] = def(0xFB, "ISC", ISC, AbsoluteIndexedY, 7, RMW, false, true)
	table[0xFC] = def(0xFC, "NOP", TOP, AbsoluteIndexedX, 4, Read, true, true)
	table[0xFD] = def(0xFD, "SBC", Sbc, AbsoluteIndexedX, 4, Read, true, false)
	table[0xFE] = def(0xFE, "INC", Inc, AbsoluteIndexedX, 7, RMW, false, false)
	table[0xFF] = def(0xFF, "ISC", ISC, AbsoluteIndexedX, 7, RMW, false, true)
}
