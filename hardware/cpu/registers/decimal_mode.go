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

package registers

// AddDecimal and SubtractDecimal return carry, zero, overflow and sign so
// that the caller can set the status register from them; this differs from
// binary Add/Subtract, which only reports carry and overflow, because BCD
// zero/sign are derived differently from the stored digit pairs.
//
// Appendix A of http://www.6502.org/tutorials/decimal_mode.html was used as
// a reference, along with the analysis of NMOS decimal-mode overflow/sign
// behaviour at https://forums.atariage.com/topic/163876.

// AddDecimal performs a BCD add, storing the BCD result in the register.
func (r *Register) AddDecimal(val uint8, carry bool) (rcarry, rzero, roverflow, rsign bool) {
	// zero flag is set as though this were a binary addition
	br := *r
	_, _ = br.Add(val, carry)
	rzero = br.IsZero()

	// Seq.1: low nibble, with decimal adjustment
	al := (r.value & 0x0f) + (val & 0x0f)
	if carry {
		al++
	}
	if al >= 0x0a {
		al = ((al + 0x06) & 0x0f) + 0x10
	}

	a1 := (uint16(r.value) & 0xf0) + (uint16(val) & 0xf0) + uint16(al)
	if a1 >= 0xa0 {
		a1 += 0x60
	}
	rcarry = a1 >= 0x100

	// Seq.2: sign/overflow computed on the adjusted low nibble before the
	// high-nibble carry-out correction
	a2 := int16(r.value&0xf0) + int16(val&0xf0) + int16(al)
	rsign = a2&0x80 == 0x80
	roverflow = ((r.value ^ uint8(a2)) & (val ^ uint8(a2)) & 0x80) != 0

	r.value = uint8(a1)

	return rcarry, rzero, roverflow, rsign
}

// SubtractDecimal performs a BCD subtract, storing the BCD result in the
// register. carry and overflow are drawn from the equivalent binary
// subtraction (NMOS 6502 behaviour); only the stored value differs.
func (r *Register) SubtractDecimal(val uint8, carry bool) (rcarry, rzero, roverflow, rsign bool) {
	br := *r
	rcarry, roverflow = br.Subtract(val, carry)
	rzero = br.IsZero()
	rsign = br.IsNegative()

	// Seq.3: low nibble, with decimal adjustment
	al := (int16(r.value) & 0x0f) - (int16(val) & 0x0f) - 1
	if carry {
		al++
	}
	if al < 0x00 {
		al = ((al - 0x06) & 0x0f) - 0x10
	}

	a := (int16(r.value) & 0xf0) - (int16(val) & 0xf0) + al
	if a < 0x00 {
		a -= 0x60
	}

	r.value = uint8(a)

	return rcarry, rzero, roverflow, rsign
}
