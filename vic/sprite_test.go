package vic

import "testing"

func TestSpriteShiftMono(t *testing.T) {
	var s sprite
	s.reload(0x80, 0x00, 0x00) // top bit of chunk1 set, rest clear

	bit, ok := s.shiftMono(false)
	if !ok || !bit {
		t.Fatalf("first bit: ok=%v bit=%v, want ok=true bit=true", ok, bit)
	}

	for i := 0; i < 23; i++ {
		if _, ok := s.shiftMono(false); !ok {
			t.Fatalf("bit %d: expected ok=true while bits remain", i+1)
		}
	}
	if _, ok := s.shiftMono(false); ok {
		t.Error("expected ok=false once all 24 bits are consumed")
	}
	if s.active() {
		t.Error("sprite should no longer be active once its shift register is empty")
	}
}

// TestSpriteShiftMulti checks that a non-expanded multicolor sprite still
// spans 24 real calls (one per screen pixel) to exhaust its 24-bit shift
// register, with each 2-bit chunk held across a pair of consecutive calls
// via the mc_flop-style flip-flop, rather than draining two bits per call
// and finishing at half width.
func TestSpriteShiftMulti(t *testing.T) {
	var s sprite
	s.reload(0xc0, 0x00, 0x00) // top 2-bit pattern = 11, rest clear

	pattern, ok := s.shiftMulti(false)
	if !ok || pattern != 3 {
		t.Fatalf("call 1: pattern = %d ok=%v, want pattern=3 ok=true", pattern, ok)
	}
	pattern2, ok := s.shiftMulti(false)
	if !ok || pattern2 != pattern {
		t.Fatalf("call 2: pattern = %d ok=%v, want the held-over pattern=%d ok=true", pattern2, ok, pattern)
	}

	// The first pair already consumed 2 of the 24 elementary ticks; 22 more
	// calls exhaust the remaining 11 chunks (all zero, since the reload
	// only set the top 2 bits).
	for i := 0; i < 22; i++ {
		if _, ok := s.shiftMulti(false); !ok {
			t.Fatalf("call %d: expected ok=true", i+3)
		}
	}
	if _, ok := s.shiftMulti(false); ok {
		t.Error("expected ok=false once all 24 elementary ticks are consumed")
	}
	if s.active() {
		t.Error("sprite should no longer be active once its shift register is empty")
	}
}

// TestSpriteShiftMultiExpanded checks that x-expansion and the multicolor
// flip-flop compose: each 2-bit chunk is now held across 4 real calls (2
// expansion-held calls per elementary tick, 2 elementary ticks per chunk).
func TestSpriteShiftMultiExpanded(t *testing.T) {
	var s sprite
	s.reload(0xc0, 0x00, 0x00)

	for i := 0; i < 4; i++ {
		pattern, ok := s.shiftMulti(true)
		if !ok || pattern != 3 {
			t.Fatalf("call %d: pattern = %d ok=%v, want pattern=3 ok=true", i+1, pattern, ok)
		}
	}
	pattern, ok := s.shiftMulti(true)
	if !ok || pattern != 0 {
		t.Fatalf("call 5: pattern = %d ok=%v, want pattern=0 ok=true (next chunk)", pattern, ok)
	}
	if s.bitsLeft != 21 {
		t.Errorf("bitsLeft = %d after 5 expanded calls, want 21 (3 elementary ticks consumed)", s.bitsLeft)
	}
}

func TestSpriteXExpansionHoldsBit(t *testing.T) {
	var s sprite
	s.reload(0x80, 0x00, 0x00)

	bit1, ok1 := s.shiftMono(true)
	bit2, ok2 := s.shiftMono(true)
	if !ok1 || !ok2 || bit1 != bit2 {
		t.Fatalf("expanded sprite should repeat the same bit for two pixel-cycles, got %v then %v", bit1, bit2)
	}
	if s.bitsLeft != 23 {
		t.Errorf("bitsLeft = %d after 2 expanded pixel-cycles, want 23 (one real bit consumed)", s.bitsLeft)
	}
}

func TestSpriteTickMCWraps(t *testing.T) {
	var s sprite
	s.mc = 63
	s.tickMC()
	if s.mc != 0 {
		t.Errorf("mc = %d after wraparound tick, want 0", s.mc)
	}
}
