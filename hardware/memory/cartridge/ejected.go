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

import "github.com/retrobus/vcs2600/errors"

// ejected is attached whenever the Cartridge has no ROM loaded. Every access
// fails; this is distinct from a hardware VCS, which has no such concept,
// but is a convenient resting state before a ROM is attached.
type ejected struct{}

func newEjected() *ejected {
	return &ejected{}
}

func (cart *ejected) read(addr uint16) (uint8, error) {
	return 0, errors.Errorf(errors.CartridgeEjected)
}

func (cart *ejected) write(addr uint16, data uint8) error {
	return errors.Errorf(errors.CartridgeEjected)
}

func (cart *ejected) poke(addr uint16, data uint8) error {
	return errors.Errorf(errors.CartridgeEjected)
}

func (cart *ejected) numBanks() int { return 0 }
func (cart *ejected) getBank() int  { return 0 }
func (cart *ejected) reset()        {}
