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

// bankSize is the size of a single cartridge bank: the size of the
// cartridge's address window.
const bankSize = 4096

// bankSwitched implements cartMapper for the 8, 12, 16 and 32 KiB Atari
// bank-switching schemes. Each scheme differs only in the number of 4 KiB
// banks available and the base address of the "hotspot" range that selects
// between them; a read or write to any address in
// [hotspotBase, hotspotBase+numBanks) changes the mapped bank, whether or
// not the access is otherwise meaningful.
type bankSwitched struct {
	data        []uint8
	hotspotBase uint16
	banks       int
	bank        int
}

func newBankSwitched(data []uint8, hotspotBase uint16, banks int) *bankSwitched {
	return &bankSwitched{
		data:        data,
		hotspotBase: hotspotBase,
		banks:       banks,
	}
}

func (cart *bankSwitched) touch(addr uint16) {
	if addr < cart.hotspotBase {
		return
	}
	if n := int(addr - cart.hotspotBase); n < cart.banks {
		cart.bank = n
	}
}

func (cart *bankSwitched) read(addr uint16) (uint8, error) {
	cart.touch(addr)
	return cart.data[cart.bank*bankSize+int(addr)], nil
}

func (cart *bankSwitched) write(addr uint16, data uint8) error {
	cart.touch(addr)
	return nil
}

func (cart *bankSwitched) poke(addr uint16, data uint8) error {
	cart.data[cart.bank*bankSize+int(addr)] = data
	return nil
}

func (cart *bankSwitched) numBanks() int { return cart.banks }
func (cart *bankSwitched) getBank() int  { return cart.bank }
func (cart *bankSwitched) reset()        { cart.bank = 0 }
