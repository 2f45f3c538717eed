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

package tia

// collisionLatch tracks, for every unordered pair of the six graphics
// objects, whether both members of that pair have ever drawn on the same
// color clock since the last CXCLR. Real hardware exposes these 15 pairs
// packed two-per-register across 8 read addresses (CXM0P..CXPPMM); we keep
// them as named bits and pack them on read.
type collisionLatch struct {
	m0p0, m0p1 bool
	m1p0, m1p1 bool
	p0pf, p0bl bool
	p1pf, p1bl bool
	m0pf, m0bl bool
	m1pf, m1bl bool
	blpf       bool
	p0p1       bool
	m0m1       bool
}

// update ORs in every pair whose members are both drawing this clock.
func (c *collisionLatch) update(p0, p1, m0, m1, bl, pf bool) {
	c.m0p0 = c.m0p0 || (m0 && p0)
	c.m0p1 = c.m0p1 || (m0 && p1)
	c.m1p0 = c.m1p0 || (m1 && p0)
	c.m1p1 = c.m1p1 || (m1 && p1)
	c.p0pf = c.p0pf || (p0 && pf)
	c.p0bl = c.p0bl || (p0 && bl)
	c.p1pf = c.p1pf || (p1 && pf)
	c.p1bl = c.p1bl || (p1 && bl)
	c.m0pf = c.m0pf || (m0 && pf)
	c.m0bl = c.m0bl || (m0 && bl)
	c.m1pf = c.m1pf || (m1 && pf)
	c.m1bl = c.m1bl || (m1 && bl)
	c.blpf = c.blpf || (bl && pf)
	c.p0p1 = c.p0p1 || (p0 && p1)
	c.m0m1 = c.m0m1 || (m0 && m1)
}

// clear implements CXCLR.
func (c *collisionLatch) clear() { *c = collisionLatch{} }

// read packs one of the 8 collision read registers (CXM0P, CXM1P, CXP0FB,
// CXP1FB, CXM0FB, CXM1FB, CXBLPF, CXPPMM) into bits 6 and 7 of the result,
// addressed 0x00..0x07.
func (c *collisionLatch) read(addr uint16) uint8 {
	var v uint8
	set := func(bit7, bit6 bool) {
		if bit7 {
			v |= 0x80
		}
		if bit6 {
			v |= 0x40
		}
	}
	switch addr {
	case 0x00:
		set(c.m0p1, c.m0p0)
	case 0x01:
		set(c.m1p0, c.m1p1)
	case 0x02:
		set(c.p0pf, c.p0bl)
	case 0x03:
		set(c.p1pf, c.p1bl)
	case 0x04:
		set(c.m0pf, c.m0bl)
	case 0x05:
		set(c.m1pf, c.m1bl)
	case 0x06:
		set(c.blpf, false)
	case 0x07:
		set(c.p0p1, c.m0m1)
	}
	return v
}
