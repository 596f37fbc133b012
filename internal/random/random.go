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

// Package random provides the source used to fill undefined register and
// RAM state at poweron. It exists as its own package, rather than a bare
// call to math/rand, so that a rewind or regression-test collaborator can
// force a fixed seed without reaching into the CPU or RAM types.
package random

import (
	"math/rand"
	"time"
)

// base seed, fixed once at process start unless overridden by ZeroSeed.
var baseSeed = time.Now().UnixNano()

// Random is a small wrapper around math/rand that can be pinned to a
// deterministic seed for reproducible tests.
type Random struct {
	// ZeroSeed forces a fixed seed of 0, for regression tests that require
	// bit-for-bit reproducible poweron state.
	ZeroSeed bool

	src *rand.Rand
}

// NewRandom is the preferred method of initialisation for the Random type.
func NewRandom() *Random {
	return &Random{}
}

func (r *Random) rand() *rand.Rand {
	if r.src != nil {
		return r.src
	}
	seed := baseSeed
	if r.ZeroSeed {
		seed = 0
	}
	r.src = rand.New(rand.NewSource(seed))
	return r.src
}

// Intn returns a non-negative pseudo-random int in [0,n).
func (r *Random) Intn(n int) int {
	return r.rand().Intn(n)
}
