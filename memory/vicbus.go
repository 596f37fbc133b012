package memory

// VICBus is the memory.ChipBus the VIC-II uses to perform its own c-, g-,
// p- and s-accesses: 14 address lines through the CIA2-selected 16KB bank
// window, bypassing the CPU's $0001 PLA overlay entirely (the VIC never
// sees BASIC/KERNAL/CHAR ROM through this path except CHARGEN, which sits
// in the VIC's own address space at bank offsets $1000-$1FFF/$9000-$9FFF).
type VICBus struct {
	bus     *Bus
	charRom *ROM
}

// NewVICBus wraps bus for VIC-side 14-bit addressing.
func NewVICBus(bus *Bus, charRom *ROM) *VICBus {
	return &VICBus{bus: bus, charRom: charRom}
}

// ChipRead implements memory.ChipBus. address is the VIC's own 14-bit
// address; it is combined with the bank base the bus currently exposes.
func (v *VICBus) ChipRead(address uint16) uint8 {
	full := v.bus.VICBankBase() + address

	// character ROM is visible to the VIC (independent of the CPU's
	// PLA-selected overlay at $D000) in banks 0 and 2 only, where the
	// bank-relative address falls in $1000-$1FFF ($1000 and $9000 in CPU
	// address terms).
	if v.charRom != nil && v.bus.vicBank&0x01 == 0 {
		rel := address & 0x3fff
		if rel >= 0x1000 && rel <= 0x1fff {
			b, _ := v.charRom.Read(0xd000 + (rel - 0x1000))
			return b
		}
	}

	b, err := v.bus.ram.Read(full)
	if err != nil {
		return 0xff
	}
	return b
}

// ColorNibble reads the color RAM nibble for a c-access, independent of
// the VIC's bank window (color RAM is always visible at the same 1K
// regardless of bank).
func (v *VICBus) ColorNibble(vc int) uint8 {
	return v.bus.colorRAM.ReadNibble(0xd800 + uint16(vc))
}
