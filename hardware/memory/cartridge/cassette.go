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

// cassettePages is the number of 2 KiB RAM pages a Supercharger-style
// cassette cartridge exposes. Two are switchable into the lower half of the
// cartridge window; the third is always mapped into the upper half, since
// that's where the BIOS places the boot vectors it writes after loading a
// program from tape.
const cassettePages = 3
const cassettePageSize = 2048

// cassette implements cartMapper for a cassette-loaded (Supercharger-style)
// cartridge. Unlike the Atari ROM schemes, the cartridge "image" is entirely
// RAM: the cartridgeloader package fills it by demodulating an audio
// recording before the cartridge is attached, and the running program is
// free to write back into it.
type cassette struct {
	ram  [cassettePages][cassettePageSize]uint8
	page int
}

// newCassette wraps an already-decoded RAM image. data must be exactly
// cassettePages*cassettePageSize bytes.
func newCassette(data []uint8) (*cassette, error) {
	if len(data) != cassettePages*cassettePageSize {
		return nil, errors.Errorf(errors.CassetteError, "unexpected RAM image size")
	}
	cart := &cassette{}
	for i := 0; i < cassettePages; i++ {
		copy(cart.ram[i][:], data[i*cassettePageSize:(i+1)*cassettePageSize])
	}
	return cart, nil
}

func (cart *cassette) read(addr uint16) (uint8, error) {
	if addr < cassettePageSize {
		return cart.ram[cart.page][addr], nil
	}
	return cart.ram[cassettePages-1][addr-cassettePageSize], nil
}

func (cart *cassette) write(addr uint16, data uint8) error {
	// the hotspot is conventionally addressed at the top of the cartridge
	// window; writing it selects which page is visible in the lower half.
	if addr == 0x0ff8 {
		cart.page = int(data & 0x01)
		return nil
	}
	if addr < cassettePageSize {
		cart.ram[cart.page][addr] = data
		return nil
	}
	cart.ram[cassettePages-1][addr-cassettePageSize] = data
	return nil
}

func (cart *cassette) poke(addr uint16, data uint8) error {
	return cart.write(addr, data)
}

func (cart *cassette) numBanks() int { return cassettePages }
func (cart *cassette) getBank() int  { return cart.page }
func (cart *cassette) reset()        { cart.page = 0 }
