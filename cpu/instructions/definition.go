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

// Package instructions holds the static 6510 instruction set: addressing
// modes, effect categories, operators, and the 256-entry opcode table
// (including the widely documented illegal/undocumented opcodes).
package instructions

import "fmt"

// AddressingMode describes how an instruction locates its operand.
type AddressingMode int

// The full set of 6510 addressing modes.
const (
	Implied AddressingMode = iota
	Immediate
	Relative // branch instructions only

	Absolute
	ZeroPage
	Indirect // JMP (ind) only

	IndexedIndirect // (zp,X)
	IndirectIndexed // (zp),Y

	AbsoluteIndexedX
	AbsoluteIndexedY

	ZeroPageIndexedX
	ZeroPageIndexedY // LDX/LAX/STX/SAX zp,Y only
)

func (m AddressingMode) String() string {
	switch m {
	case Implied:
		return "implied"
	case Immediate:
		return "immediate"
	case Relative:
		return "relative"
	case Absolute:
		return "absolute"
	case ZeroPage:
		return "zeropage"
	case Indirect:
		return "indirect"
	case IndexedIndirect:
		return "(zp,x)"
	case IndirectIndexed:
		return "(zp),y"
	case AbsoluteIndexedX:
		return "absolute,x"
	case AbsoluteIndexedY:
		return "absolute,y"
	case ZeroPageIndexedX:
		return "zeropage,x"
	case ZeroPageIndexedY:
		return "zeropage,y"
	}
	return "unknown addressing mode"
}

// EffectCategory categorises how an instruction touches memory, which
// determines the bus-access shape (and cycle count) of its addressing mode.
type EffectCategory int

// The set of effect categories.
const (
	Read EffectCategory = iota
	Write
	RMW
	Flow       // branches and JMP
	Subroutine // JSR
	Interrupt  // BRK/RTI
)

func (e EffectCategory) String() string {
	switch e {
	case Read:
		return "read"
	case Write:
		return "write"
	case RMW:
		return "rmw"
	case Flow:
		return "flow"
	case Subroutine:
		return "subroutine"
	case Interrupt:
		return "interrupt"
	}
	return "unknown effect"
}

// Operator names the operation an instruction performs, independent of its
// addressing mode. Several opcodes with different addressing modes share an
// Operator (e.g. LDA immediate and LDA absolute).
type Operator int

// Legal 6510 operators.
const (
	Adc Operator = iota
	And
	Asl
	Bcc
	Bcs
	Beq
	Bit
	Bmi
	Bne
	Bpl
	Brk
	Bvc
	Bvs
	Clc
	Cld
	Cli
	Clv
	Cmp
	Cpx
	Cpy
	Dec
	Dex
	Dey
	Eor
	Inc
	Inx
	Iny
	Jmp
	Jsr
	Lda
	Ldx
	Ldy
	Lsr
	Nop
	Ora
	Pha
	Php
	Pla
	Plp
	Rol
	Ror
	Rti
	Rts
	Sbc
	Sec
	Sed
	Sei
	Sta
	Stx
	Sty
	Tax
	Tay
	Tsx
	Txa
	Txs
	Tya

	// illegal / undocumented operators, named per the community-documented
	// matrix referenced by spec.md §3.
	AAC // ANC: AND immediate, bit 7 -> carry
	AAX // SAX: (A & X) -> memory
	ASR // ALR: AND immediate then LSR A
	ARR // AND immediate then ROR A, unusual C/V derivation
	ATX // LXA/OAL: undocumented, (A | magic) & operand -> A,X
	AXA // AHX/SHA: (A & X & (high byte + 1)) -> memory
	AXS // SBX: (A & X) - operand -> X
	DCP // decrement then CMP
	ISC // increment then SBC
	KIL // JAM/HLT: locks up the CPU
	LAR // LAS: (SP & operand) -> A, X, SP
	LAX // LDA + LDX combined
	RLA // ROL then AND
	RRA // ROR then ADC
	SLO // ASL then ORA
	SRE // LSR then EOR
	SXA // SHX: (X & (high byte + 1)) -> memory
	SYA // SHY: (Y & (high byte + 1)) -> memory
	TAS // (A & X) -> SP, then SXA-style store
	XAA // undocumented, unstable magic-constant AND
	DOP // double NOP (reads and discards a byte)
	TOP // triple NOP (reads and discards a word)
)

// Definition is the static, per-opcode description of a single 6510
// instruction: its operator, addressing mode, and bus-access shape.
type Definition struct {
	OpCode         uint8
	Mnemonic       string
	Operator       Operator
	Bytes          int
	Cycles         int
	AddressingMode AddressingMode
	PageSensitive  bool
	Effect         EffectCategory
	Illegal        bool
}

func (d Definition) String() string {
	return fmt.Sprintf("%02X %s (%s, %d cycles)", d.OpCode, d.Mnemonic, d.AddressingMode, d.Cycles)
}

// IsBranch reports whether the definition is a conditional branch.
func (d Definition) IsBranch() bool {
	return d.AddressingMode == Relative && d.Effect == Flow
}
