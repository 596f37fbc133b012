package memory_test

import (
	"testing"

	"github.com/aiSzzPL77/virtualc64/memory"
)

func TestBusRAMReadWrite(t *testing.T) {
	b := memory.NewBus(nil, nil, nil)
	if err := b.Write(0x0400, 0x42); err != nil {
		t.Fatal(err)
	}
	v, err := b.Read(0x0400)
	if err != nil {
		t.Fatal(err)
	}
	if v != 0x42 {
		t.Errorf("Read($0400) = $%02x, want $42", v)
	}
}

func TestBusBasicOverlay(t *testing.T) {
	basic := make([]uint8, 0x2000)
	basic[0] = 0xaa
	b := memory.NewBus(basic, nil, nil)

	// default power-on port ($37): LORAM=1, HIRAM=1, so BASIC ROM is mapped.
	v, err := b.Read(0xa000)
	if err != nil {
		t.Fatal(err)
	}
	if v != 0xaa {
		t.Errorf("Read($A000) = $%02x, want $AA (BASIC ROM visible)", v)
	}

	// dropping LORAM switches $A000-$BFFF back to RAM.
	if err := b.Write(0x0001, 0x36); err != nil {
		t.Fatal(err)
	}
	if err := b.Write(0xa000, 0x55); err != nil {
		t.Fatal(err)
	}
	v, err = b.Read(0xa000)
	if err != nil {
		t.Fatal(err)
	}
	if v != 0x55 {
		t.Errorf("Read($A000) = $%02x after dropping LORAM, want $55 (RAM)", v)
	}
}

type fakeVIC struct {
	written map[uint8]uint8
}

func (f *fakeVIC) Read(offset uint8) uint8 { return 0x99 }
func (f *fakeVIC) Write(offset uint8, data uint8) {
	if f.written == nil {
		f.written = map[uint8]uint8{}
	}
	f.written[offset] = data
}

func TestBusVICMirroring(t *testing.T) {
	b := memory.NewBus(nil, nil, nil)
	vic := &fakeVIC{}
	b.AttachVIC(vic)

	v, err := b.Read(0xd000)
	if err != nil {
		t.Fatal(err)
	}
	if v != 0x99 {
		t.Errorf("Read($D000) = $%02x, want $99 from the attached VIC", v)
	}

	// $D040 mirrors $D000 (offset masked to 0-63).
	if err := b.Write(0xd040, 0x11); err != nil {
		t.Fatal(err)
	}
	if vic.written[0x00] != 0x11 {
		t.Errorf("Write($D040) reached VIC offset %v, want offset 0 via mirroring", vic.written)
	}
}

func TestVICBankBase(t *testing.T) {
	b := memory.NewBus(nil, nil, nil)
	b.SetVICBank(2)
	if got := b.VICBankBase(); got != 0x8000 {
		t.Errorf("VICBankBase() = $%04x, want $8000 for bank 2", got)
	}
}
