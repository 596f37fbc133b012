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

// Package instance defines the parts of an emulation session that can
// legitimately vary between one running machine and another, without being
// the machine itself: preferences and the random source they gate. Keeping
// these out of the CPU/VIC/bus types lets more than one machine run in the
// same process (regression tests, A/B comparisons) without sharing state
// they shouldn't.
package instance

import "github.com/aiSzzPL77/virtualc64/internal/random"

// Standard selects the video timing standard, which governs both VIC raster
// geometry and CPU/VIC clock ratio.
type Standard int

// The two video standards this core models.
const (
	PAL Standard = iota
	NTSC
)

func (s Standard) String() string {
	if s == NTSC {
		return "NTSC"
	}
	return "PAL"
}

// VICRevision selects the specific 6569/6567 die revision being modeled,
// where that affects observable behaviour.
type VICRevision int

// Revisions this core distinguishes.
const (
	VIC6569R3 VICRevision = iota // no gray-dot bug
	VIC6569R1                    // exhibits the gray-dot bug
	VIC6567R8
)

// Preferences carries the small set of configuration values that affect
// otherwise-deterministic emulation, so that a caller (or a test) can pin
// them down explicitly rather than relying on ambient defaults.
type Preferences struct {
	// RandomState selects whether the CPU's A/X/Y/SP take pseudo-random
	// values on Reset (closer to real, variable hardware) or fixed ones.
	// Poweron RAM always takes the deterministic alternating pattern.
	RandomState bool

	// Standard is the video timing standard: PAL (312 lines, 63 cycles/line)
	// or NTSC (263 lines, 65 cycles/line).
	Standard Standard

	// VICRevision selects the die revision, which in particular determines
	// whether the gray-dot bug is reproduced.
	VICRevision VICRevision
}

// SetDefaults resets p to this core's standard defaults: deterministic
// poweron state, PAL timing, 6569R3 (no gray-dot bug).
func (p *Preferences) SetDefaults() {
	*p = Preferences{
		RandomState: false,
		Standard:    PAL,
		VICRevision: VIC6569R3,
	}
}

// GrayDotBug reports whether the configured VIC revision reproduces the
// 6569R1 gray-dot artifact.
func (p Preferences) GrayDotBug() bool {
	return p.VICRevision == VIC6569R1
}

// Instance bundles the preferences and random source for one running
// machine. More than one Instance can exist in the same process.
type Instance struct {
	Prefs  Preferences
	Random *random.Random
}

// NewInstance is the preferred method of initialisation for the Instance
// type. Preferences start at their defaults; call Prefs fields directly, or
// SetDefaults again, to change them.
func NewInstance() *Instance {
	ins := &Instance{Random: random.NewRandom()}
	ins.Prefs.SetDefaults()
	return ins
}

// Normalise pins the instance to a fully deterministic configuration,
// useful for regression tests that must produce the same result on every
// run.
func (ins *Instance) Normalise() {
	ins.Random.ZeroSeed = true
	ins.Prefs.SetDefaults()
}
