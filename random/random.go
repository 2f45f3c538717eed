// This file is part of Gopher2600.
//
// Gopher2600 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher2600 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher2600.  If not, see <https://www.gnu.org/licenses/>.

// Package random supplies the "undefined" values the hardware packages need
// at power-on: the RIOT's RAM content. The CPU's registers are reset to fixed
// values and do not use it. Real hardware is not random, of course, but nothing depends on
// the specific undefined value either, so a PRNG is a fine stand-in.
//
// Wiring it through a television-coordinate source (rather than calling
// time.Now()) means two Random instances fed the same coordinate sequence
// produce the same undefined values, which is essential for deterministic
// regression tests and for rewinding the emulation.
package random

import "math/rand"

// CoordSource supplies the current position of the raster beam, used to
// perturb the PRNG stream so that undefined reads at different points in a
// frame don't all return the same byte.
type CoordSource interface {
	GetCoords() Coords
}

// Coords identifies a point in the video signal stream.
type Coords struct {
	Frame    int
	Scanline int
	Clock    int
}

// Random is a seeded source of "undefined" byte values.
type Random struct {
	src CoordSource

	// ZeroSeed forces the PRNG seed to a fixed value regardless of the
	// coordinate source, for use in regression tests that need repeatable
	// results.
	ZeroSeed bool
}

// NewRandom is the preferred method of initialisation for the Random type.
func NewRandom(src CoordSource) *Random {
	return &Random{src: src}
}

func (r *Random) seed() int64 {
	if r.ZeroSeed {
		return 0
	}
	c := r.src.GetCoords()
	return int64(c.Frame)<<32 | int64(c.Scanline)<<16 | int64(c.Clock)
}

// Rewindable returns a deterministic pseudo-random byte for index n: calling
// it repeatedly with the same n, from a Random in the same state, always
// returns the same value. This is what lets a rewound emulation reproduce
// exactly the same "undefined" bytes it produced the first time.
func (r *Random) Rewindable(n int) uint8 {
	src := rand.New(rand.NewSource(r.seed() + int64(n)))
	return uint8(src.Intn(256))
}

// NoRewind returns a pseudo-random byte with no attempt at reproducibility
// across rewinds; used where undefined-ness doesn't need to be
// deterministic (eg. filling RAM at cold-start).
func (r *Random) NoRewind() uint8 {
	src := rand.New(rand.NewSource(r.seed()))
	return uint8(src.Intn(256))
}
