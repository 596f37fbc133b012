package vic

import (
	"testing"

	"github.com/aiSzzPL77/virtualc64/cpu"
	"github.com/aiSzzPL77/virtualc64/internal/instance"
)

// fakeIRQ is a stand-in for cpu.CPU that records whether the IRQ line was
// pulled or released, enough to satisfy IRQAsserter for tests that drive
// VIC.Write without a full machine.
type fakeIRQ struct {
	pulled   bool
	released bool
}

func (f *fakeIRQ) PullDownIRQ(source cpu.InterruptSource) { f.pulled = true }
func (f *fakeIRQ) ReleaseIRQ(source cpu.InterruptSource)  { f.released = true }

func newTestVIC() *VIC {
	inst := instance.NewInstance()
	return &VIC{
		instance: inst,
		seq:      newSequencer(instance.PAL),
		pix:      newPixelEngine(),
		irq:      &fakeIRQ{},
	}
}

// TestCompositeSpritesDrawsFullSpriteWidth reproduces the truncation this
// core used to have: a sprite is 24 real pixels wide (48 expanded), not 8,
// so consuming its shift register must span more than one Phi2 call.
func TestCompositeSpritesDrawsFullSpriteWidth(t *testing.T) {
	v := newTestVIC()
	sp := &v.seq.sprites[0]
	sp.dispOn = true
	sp.reload(0xff, 0xff, 0xff) // every bit set: sprite opaque across its whole span
	sp.x = 100
	v.regs.spriteColor[0].force(0x01)

	drawn := 0
	for cycle := 1; cycle <= 20; cycle++ {
		v.seq.cycle = cycle
		v.pix.clearScratch()
		v.compositeSprites()
		for p := 0; p < 8; p++ {
			if v.pix.pixelSource[p]&1 != 0 {
				drawn++
			}
		}
	}

	if drawn != 24 {
		t.Errorf("total sprite pixels drawn across the line = %d, want 24 (the sprite's full unexpanded width)", drawn)
	}
	if sp.active() {
		t.Error("sprite shift register should be fully drained after its 24 pixels are drawn")
	}
}

// TestRasterReadbackReturnsLiveLine covers spec.md §6's datasheet readback
// table: $D012 and $D011 bit 7 return the chip's current scanline, not the
// CPU-set raster-compare latch.
func TestRasterReadbackReturnsLiveLine(t *testing.T) {
	v := newTestVIC()
	v.regs.raster = 5 // compare latch, deliberately different from the live line
	v.regs.rasterHigh1 = false
	v.seq.yCounter = 200

	if got := v.Read(0x12); got != 200 {
		t.Errorf("Read($D012) = %d, want 200 (live yCounter, not the %d compare latch)", got, v.regs.raster)
	}

	v.seq.yCounter = 0x1a3
	if got := v.Read(0x11); got&0x80 == 0 {
		t.Errorf("Read($D011) bit 7 = 0, want set for yCounter=0x%03x", v.seq.yCounter)
	}
	if got := v.Read(0x12); got != uint8(0x1a3&0xff) {
		t.Errorf("Read($D012) = %d, want the low 8 bits of yCounter (0x%03x)", got, 0x1a3)
	}
}

// TestRasterIRQFiresImmediatelyOnWrite covers spec.md §4.2: a $D011/$D012
// write that makes the compare value match the current line raises the
// raster IRR bit right away, not only at the next line's cycle-1 check.
func TestRasterIRQFiresImmediatelyOnWrite(t *testing.T) {
	v := newTestVIC()
	v.seq.cycle = 30 // mid-line, nowhere near the once-per-line cycle-1 check
	v.seq.yCounter = 100
	v.regs.imr = 0x01

	v.Write(0x12, 100)

	if v.regs.irr&0x01 == 0 {
		t.Error("expected the raster IRR bit set immediately on a matching $D012 write")
	}
	if !v.irqAsserted {
		t.Error("expected the IRQ line asserted immediately, not deferred to the next line boundary")
	}
}

// TestGrayDotArtifactIsSinglePixel covers the 6569R1 write-time artifact:
// only the first pixel of the write's own cycle glitches to $F, not all 8.
func TestGrayDotArtifactIsSinglePixel(t *testing.T) {
	v := newTestVIC()
	v.instance.Prefs.VICRevision = instance.VIC6569R1

	v.Write(0x20, 0x05)
	if !v.pix.grayDotArmed {
		t.Fatal("expected grayDotArmed after a color-register write with the gray-dot bug enabled")
	}

	v.Phi2()

	if v.pix.colBuffer[0] != 0xf {
		t.Errorf("colBuffer[0] = $%x, want $f", v.pix.colBuffer[0])
	}
	for i := 1; i < len(v.pix.colBuffer); i++ {
		if v.pix.colBuffer[i] == 0xf {
			t.Errorf("colBuffer[%d] was overridden to $f; the artifact should hit only the cycle's first pixel", i)
		}
	}
	if v.pix.grayDotArmed {
		t.Error("grayDotArmed should be consumed by Phi2, not remain set")
	}
}

// TestGrayDotDisabledLeavesColorsAlone confirms the artifact only fires when
// the configured revision reproduces it.
func TestGrayDotDisabledLeavesColorsAlone(t *testing.T) {
	v := newTestVIC()
	v.instance.Prefs.VICRevision = instance.VIC6569R3

	v.Write(0x20, 0x05)
	if v.pix.grayDotArmed {
		t.Error("did not expect grayDotArmed on a revision without the gray-dot bug")
	}
}
