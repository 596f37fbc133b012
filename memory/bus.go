package memory

// VICRegisters is the interface the VIC-II register file exposes to the
// bus, addressed as a 0-63 offset within the (mirrored) $D000-$D3FF window.
type VICRegisters interface {
	Read(offset uint8) uint8
	Write(offset uint8, data uint8)
}

// PeripheralIO is the interface CIA1/CIA2 (out-of-scope external
// collaborators per spec.md §1) present to the bus. A nil PeripheralIO
// reads back as open bus.
type PeripheralIO interface {
	Read(offset uint8) uint8
	Write(offset uint8, data uint8)
}

// Cartridge is the interface the expansion port presents to the bus, per
// spec.md §6. A nil Cartridge behaves as if no cartridge were inserted.
type Cartridge struct {
	PeekIO1  func(offset uint8) (uint8, bool)
	PokeIO1  func(offset uint8, data uint8)
	PeekIO2  func(offset uint8) (uint8, bool)
	PokeIO2  func(offset uint8, data uint8)
	PeekROML func(offset uint16) (uint8, bool)
	PeekROMH func(offset uint16) (uint8, bool)
	Mode     CartridgeMode
}

// CartridgeMode selects how a cartridge overlays the CPU address space.
type CartridgeMode int

// The cartridge overlay modes named in spec.md §6.
const (
	CartridgeOff CartridgeMode = iota
	Cartridge8K
	Cartridge16K
	CartridgeUltimax
)

// Bus is the C64 CPU-side address decoder: 64KB RAM overlaid by the
// BASIC/KERNAL/CHAR ROMs and the I/O window, selected by the processor
// port at $0000/$0001 per the published PLA truth table.
type Bus struct {
	ram      *RAM
	basic    *ROM
	kernal   *ROM
	charRom  *ROM
	colorRAM *ColorRAM

	vic  VICRegisters
	cia1 PeripheralIO
	cia2 PeripheralIO
	cart *Cartridge

	portDDR uint8
	portOut uint8

	vicBank uint8 // 0-3, driven by CIA2 PA bits 0-1 (inverted) externally
}

// NewBus assembles a fully populated C64 memory map. basic/kernal/charRom
// hold the 8KB/8KB/4KB ROM images. A nil BASIC or KERNAL image makes that
// range read the RAM beneath it; a nil character ROM reads back as $ff
// wherever CHAREN would map it in. Either way the bus is usable in tests
// that only exercise RAM behaviour.
func NewBus(basic, kernal, charRom []uint8) *Bus {
	b := &Bus{
		ram:      NewRAM(),
		colorRAM: NewColorRAM(),
		portDDR:  0x2f,
		portOut:  0x37,
	}
	if basic != nil {
		b.basic = NewROM("BASIC", 0xa000, basic)
	}
	if kernal != nil {
		b.kernal = NewROM("KERNAL", 0xe000, kernal)
	}
	if charRom != nil {
		b.charRom = NewROM("CHARGEN", 0xd000, charRom)
	}
	return b
}

// AttachVIC wires the VIC-II register file into the I/O window.
func (b *Bus) AttachVIC(vic VICRegisters) { b.vic = vic }

// AttachCIA wires the two CIA peripherals into the I/O window.
func (b *Bus) AttachCIA(cia1, cia2 PeripheralIO) {
	b.cia1 = cia1
	b.cia2 = cia2
}

// AttachCartridge wires an expansion-port collaborator into the address
// space. A nil cartridge detaches whatever was previously attached.
func (b *Bus) AttachCartridge(cart *Cartridge) { b.cart = cart }

// SetVICBank selects which of the four 16KB windows the VIC's own 14-bit
// address space is based at, driven externally by CIA2 port A bits 0-1
// (inverted, per spec.md §4.3).
func (b *Bus) SetVICBank(bank uint8) { b.vicBank = bank & 0x03 }

// VICBankBase returns the CPU address the VIC's window 0 is based at.
func (b *Bus) VICBankBase() uint16 {
	return uint16(b.vicBank) * 0x4000
}

// RAM exposes the underlying RAM area, e.g. for the VIC's ChipBus view
// (which reads through the bank window rather than the CPU's PLA overlay).
func (b *Bus) RAM() *RAM { return b.ram }

// ColorRAM exposes the color RAM area for the VIC's c-access reads.
func (b *Bus) ColorRAM() *ColorRAM { return b.colorRAM }

// CharROM exposes the character ROM area for the VIC's own ChipBus view,
// which sees it at fixed offsets within its bank window regardless of the
// CPU-side CHAREN/PLA overlay. Nil if no character ROM image was supplied.
func (b *Bus) CharROM() *ROM { return b.charRom }

func (b *Bus) loram() bool  { return b.portOut&0x01 != 0 }
func (b *Bus) hiram() bool  { return b.portOut&0x02 != 0 }
func (b *Bus) charen() bool { return b.portOut&0x04 != 0 }

// Read implements memory.CPUBus.
func (b *Bus) Read(address uint16) (uint8, error) {
	switch {
	case address == 0x0000:
		return b.portDDR, nil
	case address == 0x0001:
		return b.portOut, nil
	case address >= 0xa000 && address <= 0xbfff:
		if b.loram() && b.hiram() && b.basic != nil {
			return b.basic.Read(address)
		}
		return b.ram.Read(address)
	case address >= 0xe000:
		if b.hiram() && b.kernal != nil {
			if b.cart != nil && b.cart.Mode == CartridgeUltimax && b.cart.PeekROMH != nil {
				if v, ok := b.cart.PeekROMH(address - 0xe000); ok {
					return v, nil
				}
			}
			return b.kernal.Read(address)
		}
		return b.ram.Read(address)
	case address >= 0xd000 && address <= 0xdfff:
		return b.readIO(address)
	case b.cart != nil && b.cart.Mode != CartridgeOff && address >= 0x8000 && address <= 0x9fff:
		if v, ok := b.cart.PeekROML(address - 0x8000); ok {
			return v, nil
		}
		return b.ram.Read(address)
	default:
		return b.ram.Read(address)
	}
}

func (b *Bus) readIO(address uint16) (uint8, error) {
	if !b.charen() {
		if b.charRom != nil {
			return b.charRom.Read(address)
		}
		return 0xff, nil
	}

	if !b.loram() && !b.hiram() {
		return b.ram.Read(address)
	}

	offset := uint8(address & 0xff)
	switch {
	case address <= 0xd3ff:
		if b.vic == nil {
			return 0xff, nil
		}
		return b.vic.Read(offset & 0x3f), nil
	case address <= 0xd7ff:
		return 0xff, nil // SID: audio output is out of scope
	case address <= 0xdbff:
		return b.colorRAM.Read(address)
	case address <= 0xdcff:
		if b.cia1 == nil {
			return 0xff, nil
		}
		return b.cia1.Read(offset), nil
	case address <= 0xddff:
		if b.cia2 == nil {
			return 0xff, nil
		}
		return b.cia2.Read(offset), nil
	case address <= 0xdeff:
		if b.cart != nil && b.cart.PeekIO1 != nil {
			if v, ok := b.cart.PeekIO1(offset); ok {
				return v, nil
			}
		}
		return 0xff, nil
	default:
		if b.cart != nil && b.cart.PeekIO2 != nil {
			if v, ok := b.cart.PeekIO2(offset); ok {
				return v, nil
			}
		}
		return 0xff, nil
	}
}

// Write implements memory.CPUBus. Writes under a ROM overlay land in the RAM
// beneath it; writes to the I/O window go to the VIC, color RAM, the CIAs or
// the cartridge as mapped.
func (b *Bus) Write(address uint16, data uint8) error {
	switch {
	case address == 0x0000:
		b.portDDR = data
		return nil
	case address == 0x0001:
		b.portOut = data
		return nil
	case address >= 0xd000 && address <= 0xdfff:
		return b.writeIO(address, data)
	default:
		return b.ram.Write(address, data)
	}
}

func (b *Bus) writeIO(address uint16, data uint8) error {
	if !b.charen() {
		return b.ram.Write(address, data)
	}
	if !b.loram() && !b.hiram() {
		return b.ram.Write(address, data)
	}

	offset := uint8(address & 0xff)
	switch {
	case address <= 0xd3ff:
		if b.vic != nil {
			b.vic.Write(offset&0x3f, data)
		}
	case address <= 0xd7ff:
		// SID: out of scope, write discarded.
	case address <= 0xdbff:
		return b.colorRAM.Write(address, data)
	case address <= 0xdcff:
		if b.cia1 != nil {
			b.cia1.Write(offset, data)
		}
	case address <= 0xddff:
		if b.cia2 != nil {
			b.cia2.Write(offset, data)
		}
	case address <= 0xdeff:
		if b.cart != nil && b.cart.PokeIO1 != nil {
			b.cart.PokeIO1(offset, data)
		}
	default:
		if b.cart != nil && b.cart.PokeIO2 != nil {
			b.cart.PokeIO2(offset, data)
		}
	}
	return nil
}
