package vic

import "testing"

func TestPaintDepthPriority(t *testing.T) {
	pe := newPixelEngine()
	pe.clearScratch()

	pe.paint(0, 5, depthBackground)
	pe.paint(0, 9, depthSpriteFG) // shallower depth, should win
	if pe.colBuffer[0] != 9 {
		t.Errorf("colBuffer[0] = %d, want 9 (sprite-fg over background)", pe.colBuffer[0])
	}

	pe.paint(0, 3, depthBehindBackground) // deeper depth, should not win
	if pe.colBuffer[0] != 9 {
		t.Errorf("colBuffer[0] = %d, want unchanged 9", pe.colBuffer[0])
	}
}

// TestSpriteSpriteCollision reproduces spec.md §8's collision scenario:
// sprites 0 and 1 drawing over the same pixel raise the sprite-sprite
// collision register and report the transition.
func TestSpriteSpriteCollision(t *testing.T) {
	pe := newPixelEngine()
	var r RegisterFile

	pe.clearScratch()
	pe.paintSprite(3, 0, 0x01, false)
	pe.paintSprite(3, 1, 0x02, false)

	ss, sb := pe.resolveCollisions(&r)
	if !ss {
		t.Error("expected a new sprite-sprite collision")
	}
	if sb {
		t.Error("did not expect a sprite-background collision")
	}
	if r.spriteCollision&0x03 != 0x03 {
		t.Errorf("spriteCollision = $%02x, want bits 0 and 1 set", r.spriteCollision)
	}
}

func TestSpriteBackgroundCollision(t *testing.T) {
	pe := newPixelEngine()
	var r RegisterFile

	pe.clearScratch()
	pe.pixelSource[4] = foregroundSourceBit
	pe.paintSprite(4, 2, 0x01, false)

	_, sb := pe.resolveCollisions(&r)
	if !sb {
		t.Error("expected a new sprite-background collision")
	}
	if r.backgroundColl&0x04 == 0 {
		t.Errorf("backgroundColl = $%02x, want bit 2 set", r.backgroundColl)
	}
}

// TestPaintCanvasXScrollSplicesAcrossBytes covers spec.md §4.4 step 2: the
// leading XSCROLL columns of a byte show the trailing columns of the
// *previous* byte's decoded pixels, not its own.
func TestPaintCanvasXScrollSplicesAcrossBytes(t *testing.T) {
	pe := newPixelEngine()
	var r RegisterFile
	r.ctrl2 = 3 // XSCROLL = 3
	r.bgColor[0].force(0x00)

	pe.clearScratch()
	pe.paintCanvas(&r, 0xff, 0x01, modeStdText) // first byte: solid foreground, color 1

	pe.clearScratch()
	pe.paintCanvas(&r, 0x00, 0x01, modeStdText) // second byte: solid background, color 0

	for i := 0; i < 3; i++ {
		if pe.colBuffer[i] != 1 {
			t.Errorf("colBuffer[%d] = %d, want 1 (trailing XSCROLL columns carried over from the previous byte)", i, pe.colBuffer[i])
		}
	}
	for i := 3; i < 8; i++ {
		if pe.colBuffer[i] != 0 {
			t.Errorf("colBuffer[%d] = %d, want 0 (this byte's own leading columns)", i, pe.colBuffer[i])
		}
	}
}

// TestPaintCanvasXScrollNoSpliceWithoutPrevious checks the line-start
// fallback: with no cached previous byte, XSCROLL columns show this byte's
// own decoded pixels rather than splicing in stale data.
func TestPaintCanvasXScrollNoSpliceWithoutPrevious(t *testing.T) {
	pe := newPixelEngine()
	var r RegisterFile
	r.ctrl2 = 3
	r.bgColor[0].force(0x00)

	pe.clearScratch()
	pe.paintCanvas(&r, 0x00, 0x01, modeStdText)

	for i, c := range pe.colBuffer {
		if c != 0 {
			t.Errorf("colBuffer[%d] = %d, want 0: with no cached previous byte the leading columns should not splice in anything", i, c)
		}
	}
}

func TestDecodeMode(t *testing.T) {
	cases := []struct {
		ecm, bmm, mcm bool
		want          displayMode
	}{
		{false, false, false, modeStdText},
		{false, false, true, modeMCText},
		{false, true, false, modeStdBitmap},
		{false, true, true, modeMCBitmap},
		{true, false, false, modeECMText},
	}
	for _, c := range cases {
		if got := decodeMode(c.ecm, c.bmm, c.mcm); got != c.want {
			t.Errorf("decodeMode(%v,%v,%v) = %v, want %v", c.ecm, c.bmm, c.mcm, got, c.want)
		}
	}
}
