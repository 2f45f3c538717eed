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

package riot

// prescaler shifts selectable for the interval timer: divide the CPU clock
// by 1, 8, 64 or 1024 respectively.
var prescalerShifts = [4]uint{0, 3, 6, 10}

// timer implements the RIOT's programmable interval timer. INTIM counts
// down once every 2^shift CPU cycles; once it reaches zero it continues to
// decrement every cycle (the "free running" phase used by software to
// measure how far past zero the timer has gone) and latches the underflow
// flag.
type timer struct {
	intim     uint8
	shift     uint
	divider   uint
	underflow bool
	irqEnable bool
}

func (t *timer) reset() {
	*t = timer{}
}

// setInterval (re)starts the timer: intim is preloaded with val, divider is
// reset to 0, and shift selects the prescaler (0, 3, 6 or 10 - see
// prescalerShifts). The underflow flag is cleared.
func (t *timer) setInterval(val uint8, shiftIndex int, irqEnable bool) {
	t.intim = val
	t.shift = prescalerShifts[shiftIndex&0x03]
	t.divider = 0
	t.underflow = false
	t.irqEnable = irqEnable
}

// step advances the timer by one CPU cycle.
func (t *timer) step() {
	t.divider++
	if t.divider < (uint(1) << t.shift) {
		return
	}
	t.divider = 0

	if t.intim == 0 {
		t.underflow = true
		t.shift = 0
	}
	t.intim--
}

// readINTIM returns the current count. Once the timer has underflowed it is
// already counting at the fastest (divide-by-1) rate (see step), and reading
// INTIM keeps it there, so software can see exactly how far past zero it has
// gone.
func (t *timer) readINTIM() uint8 {
	if t.underflow {
		t.shift = 0
	}
	return t.intim
}

// readTIMINT reports the interrupt-flag register: bit 7 is set once the
// timer has underflowed (and remains set until the next setInterval),
// regardless of whether irqEnable was requested - irqEnable only matters to
// whatever drives the CPU's interrupt line from it.
func (t *timer) readTIMINT() uint8 {
	var v uint8
	if t.underflow {
		v |= 0x80
	}
	return v
}
