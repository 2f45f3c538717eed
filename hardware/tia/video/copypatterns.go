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

// copyPattern is one row of the NUSIZx copy-mode table: which of the ten
// 8-color-clock sections of a scanline carry a copy of the object, and how
// much each section's width is scaled (0: normal, 1: double, 2: quad).
type copyPattern struct {
	sections [10]bool
	scale    uint
}

// copyPatterns is indexed by the low 3 bits of NUSIZ0/NUSIZ1, shared by a
// player and its companion missile.
var copyPatterns = [8]copyPattern{
	{sections: [10]bool{true}},
	{sections: [10]bool{true, false, true}},
	{sections: [10]bool{true, false, false, true}},
	{sections: [10]bool{true, false, true, false, true}},
	{sections: [10]bool{true, false, false, false, false, false, false, false, true}},
	{sections: [10]bool{true, true}, scale: 1},
	{sections: [10]bool{true, false, false, false, true, false, false, false, true}},
	{sections: [10]bool{true, true, true, true}, scale: 2},
}

// resetPosition is the position counter value every graphics object is set
// to by its RESxx strobe. Real hardware resets a few clocks early (156
// rather than 160) so the counter's natural wrap lands the object's first
// copy at the expected visible position.
const resetPosition = 156

// positionSpan is the width of the visible position-counter range.
const positionSpan = 160

// decodeMotion turns an HMxx register byte into a signed motion in
// [-8,+7]. The spec describes this as "(data>>4) XOR 8, giving signed
// motion"; XORing the top bit of a 4 bit field and re-reading it as two's
// complement is arithmetically just an offset-by-8, which is what we do
// directly here.
func decodeMotion(data uint8) int {
	return int(data>>4) - 8
}
