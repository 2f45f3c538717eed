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

// Package memorymap decodes 6507 bus addresses into the area of the VCS that
// answers them. The 6507 only brings 13 address lines out of the package, so
// every address is first normalised modulo 0x2000; within that window bit 12
// selects the cartridge, and (for the remaining 4K) bit 7 selects between the
// TIA and the RIOT chip, with bit 9 in turn choosing between the RIOT's RAM
// and its I/O/timer registers.
package memorymap

// Mask is applied to every address before it is decoded. The 6507 exposes
// only 13 address lines (A0-A12).
const Mask = 0x1fff

// cartridgeBit, ramOrRIOTBit and riotRegisterBit are the address lines that
// drive the decoder.
const (
	cartridgeBit    = 0x1000
	ramOrRIOTBit    = 0x0080
	riotRegisterBit = 0x0200
)

// Area identifies which chip answers a given address.
type Area int

const (
	AreaTIA Area = iota
	AreaRAM
	AreaRIOT
	AreaCartridge
)

func (a Area) String() string {
	switch a {
	case AreaTIA:
		return "TIA"
	case AreaRAM:
		return "RAM"
	case AreaRIOT:
		return "RIOT"
	case AreaCartridge:
		return "Cartridge"
	}
	return "unknown area"
}

// MapAddress normalises an address to the 13 bit bus and returns which area
// answers it, along with the address as seen by that area.
func MapAddress(address uint16) (uint16, Area) {
	address &= Mask

	if address&cartridgeBit != 0 {
		return address, AreaCartridge
	}

	if address&ramOrRIOTBit == 0 {
		return address & 0x3f, AreaTIA
	}

	if address&riotRegisterBit == 0 {
		return address & 0x7f, AreaRAM
	}

	return address & 0x1f, AreaRIOT
}
