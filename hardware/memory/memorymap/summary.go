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

package memorymap

import (
	"fmt"
	"strings"
)

// blockSize is the granularity at which the TIA/RAM/RIOT decode repeats
// within the first 4K of the address space.
const blockSize = 0x80

// Summary describes the memory map as a human readable table, one line per
// contiguous block of addresses answered by the same area. Used by
// disassembly tooling and by tests to pin down the decoder's behaviour.
func Summary() string {
	var b strings.Builder

	for addr := uint16(0); addr < cartridgeBit; addr += blockSize {
		_, area := MapAddress(addr)
		fmt.Fprintf(&b, "%04x -> %04x\t%s\n", addr, addr+blockSize-1, area)
	}

	fmt.Fprintf(&b, "%04x -> %04x\t%s\n", uint16(cartridgeBit), uint16(Mask), AreaCartridge)

	return b.String()
}
