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

package cartridge

// fixed implements cartMapper for the 2 KiB and 4 KiB cartridges, neither of
// which bank-switch. A 2 KiB image is mirrored twice to fill the 4 KiB
// window, as real Atari 2600 hardware does because address line A11 isn't
// decoded by the cartridge.
type fixed struct {
	data []uint8
	mask uint16
}

func newFixed(data []uint8) *fixed {
	return &fixed{
		data: data,
		mask: uint16(len(data) - 1),
	}
}

func (cart *fixed) read(addr uint16) (uint8, error) {
	return cart.data[addr&cart.mask], nil
}

func (cart *fixed) write(addr uint16, data uint8) error {
	// writes to fixed ROM have no effect, same as a bus conflict on real
	// hardware: nothing is listening to take the value.
	return nil
}

func (cart *fixed) poke(addr uint16, data uint8) error {
	cart.data[addr&cart.mask] = data
	return nil
}

func (cart *fixed) numBanks() int { return 1 }
func (cart *fixed) getBank() int  { return 0 }
func (cart *fixed) reset()        {}
