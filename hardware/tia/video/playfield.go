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

package video

import "math/bits"

// playfieldReflect maps playfield bit position i to the position it occupies
// once mirrored, grounding this module's reflection in the original
// source's graphics.c, which builds the same 20-entry table once at
// startup rather than reversing a word bit by bit on every pixel.
var playfieldReflect [20]uint8

func init() {
	for i := range playfieldReflect {
		playfieldReflect[i] = uint8(19 - i)
	}
}

// reverse20 mirrors the low 20 bits of v using playfieldReflect.
func reverse20(v uint32) uint32 {
	var r uint32
	for i := 0; i < 20; i++ {
		if v&(1<<uint(i)) != 0 {
			r |= 1 << uint(playfieldReflect[i])
		}
	}
	return r
}

// Playfield models the 20-bit playfield graphics, mirrored or repeated
// across the right half of the scanline depending on CTRLPF's reflect bit.
type Playfield struct {
	pf0, pf1, pf2 uint8

	reflect   bool
	scoreMode bool
	priority  bool

	normal    uint64 // 40 bits: left 20 + un-reflected right 20
	reflected uint64 // 40 bits: left 20 + mirrored right 20
}

// NewPlayfield returns a Playfield in its power-on state.
func NewPlayfield() *Playfield {
	return &Playfield{}
}

// SetControl sets CTRLPF's reflect, score-mode and playfield-priority
// bits.
func (pf *Playfield) SetControl(reflect, score, priority bool) {
	pf.reflect = reflect
	pf.scoreMode = score
	pf.priority = priority
}

// WritePF0 updates the low 4 bits of the 20-bit playfield pattern (reversed,
// from PF0's upper nibble) and recomputes the mirrored word.
func (pf *Playfield) WritePF0(v uint8) {
	pf.pf0 = v
	pf.recompute()
}

// WritePF1 updates the middle 8 bits (reflected) and recomputes.
func (pf *Playfield) WritePF1(v uint8) {
	pf.pf1 = v
	pf.recompute()
}

// WritePF2 updates the high 8 bits (straight) and recomputes.
func (pf *Playfield) WritePF2(v uint8) {
	pf.pf2 = v
	pf.recompute()
}

func (pf *Playfield) recompute() {
	var word uint32

	lo := bits.Reverse8(pf.pf0) & 0x0f
	for i := 0; i < 4; i++ {
		if lo&(1<<uint(i)) != 0 {
			word |= 1 << uint(i)
		}
	}

	mid := bits.Reverse8(pf.pf1)
	for i := 0; i < 8; i++ {
		if mid&(1<<uint(i)) != 0 {
			word |= 1 << uint(4+i)
		}
	}

	for i := 0; i < 8; i++ {
		if pf.pf2&(1<<uint(i)) != 0 {
			word |= 1 << uint(12+i)
		}
	}

	pf.normal = uint64(word) | uint64(word)<<20
	pf.reflected = uint64(word) | uint64(reverse20(word))<<20
}

// Pixel reports whether the playfield draws at scanline position p
// (0..159, measuring from the start of the visible window).
func (pf *Playfield) Pixel(p int) bool {
	word := pf.normal
	if pf.reflect {
		word = pf.reflected
	}
	bit := p >> 2
	return word&(1<<uint(bit)) != 0
}

// ScoreMode reports CTRLPF's score-mode bit.
func (pf *Playfield) ScoreMode() bool { return pf.scoreMode }

// Priority reports CTRLPF's playfield-priority-above-players bit.
func (pf *Playfield) Priority() bool { return pf.priority }
