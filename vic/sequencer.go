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

package vic

import "github.com/aiSzzPL77/virtualc64/internal/instance"

// cyclePurpose tags what a given cycle of the raster line does, per the
// published VIC-II chip-cycle maps. The exact schedule differs between PAL
// (63 cycles/line) and NTSC (65 cycles/line); both share the same shape
// (refresh, sprite p/s-accesses, then the c/g-access window).
type cyclePurpose uint8

const (
	cIdle cyclePurpose = iota
	cRefresh
	cCG    // c-access followed immediately by g-access
	cG     // g-access only (used past cycle 14 without a paired c-access slot)
	cSpriteP
	cSpriteS
)

const (
	linesPAL  = 312
	linesNTSC = 263
	cyclesPAL = 63
	cyclesNTSC = 65
)

// schedule holds, for one raster line, what each cycle does and which
// sprite (if any) a p/s-access cycle belongs to.
type schedule struct {
	purpose []cyclePurpose
	spriteN []int // -1 when purpose isn't a sprite access
}

func buildSchedule(standard instance.Standard) schedule {
	n := cyclesPAL
	if standard == instance.NTSC {
		n = cyclesNTSC
	}
	s := schedule{purpose: make([]cyclePurpose, n+1), spriteN: make([]int, n+1)}
	for i := range s.spriteN {
		s.spriteN[i] = -1
	}

	// cycles 1-3: refresh-ish idle (matches Rx placeholder used by real
	// hardware for DRAM refresh, not separately modeled here).
	for c := 1; c <= 3; c++ {
		s.purpose[c] = cRefresh
	}

	// cycles 11-14: idle/refresh tail before the c/g window opens.
	for c := 11; c <= 14; c++ {
		s.purpose[c] = cIdle
	}

	// cycles 15-54: the 40 c/g-access pairs of the visible display window.
	for c := 15; c <= 54; c++ {
		s.purpose[c] = cCG
	}

	// sprite pointer + data fetch window, simplified here to a
	// straightforward two-cycles-per-sprite p/s pairing starting at cycle 58
	// and wrapping to the start of the line (sprites 3-7 land in cycles 1-10
	// on PAL, 1-8 on NTSC, overwriting the refresh slots above). BA for the
	// sprite window is handled separately by updateBA.
	spriteCycleBase := 58
	for i := 0; i < 8; i++ {
		p := spriteCycleBase + i*2
		if p > n {
			p -= n
		}
		sAcc := p + 1
		if sAcc > n {
			sAcc -= n
		}
		s.purpose[p] = cSpriteP
		s.spriteN[p] = i
		s.purpose[sAcc] = cSpriteS
		s.spriteN[sAcc] = i
	}

	return s
}

// Sequencer drives the raster/badline/DMA state machine: it owns the
// raster position counters, decides BA (and therefore CPU RDY), and
// performs the c-, g-, p- and s-accesses spec.md §4.3 describes.
type Sequencer struct {
	standard instance.Standard
	sched    schedule

	yCounter int
	xCounter int
	cycle    int // 1-based cycle-within-line, matching the published charts

	vc, vcbase int
	rc         int
	vmli       int

	badLine     bool
	denLatched  bool // DEN was seen set at some point during line 0x30
	displayState bool

	videoMatrix [40]uint8
	colorLine   [40]uint8

	ba bool // bus available; false asserts RDY low to the CPU

	sprites [8]sprite

	gAccessData uint8
	idleAccess  bool // true when the last g-access read the fixed idle address
}

func newSequencer(standard instance.Standard) *Sequencer {
	sq := &Sequencer{standard: standard, sched: buildSchedule(standard)}
	sq.ba = true
	return sq
}

func (sq *Sequencer) reset(standard instance.Standard) {
	*sq = Sequencer{standard: standard, sched: buildSchedule(standard)}
	sq.ba = true
}

func (sq *Sequencer) totalLines() int {
	if sq.standard == instance.NTSC {
		return linesNTSC
	}
	return linesPAL
}

func (sq *Sequencer) cyclesPerLine() int {
	if sq.standard == instance.NTSC {
		return cyclesNTSC
	}
	return cyclesPAL
}

// updateBadLine implements the badline test in spec.md §4.2 step 1.
func (sq *Sequencer) updateBadLine(regs *RegisterFile) {
	if sq.yCounter == 0x30 && regs.den() {
		sq.denLatched = true
	}
	sq.badLine = sq.yCounter >= 0x30 && sq.yCounter <= 0xf7 &&
		uint8(sq.yCounter)&0x07 == regs.yscroll() && sq.denLatched
}

// rdy reports whether the CPU may proceed with a read this cycle.
func (sq *Sequencer) rdy() bool { return sq.ba }
