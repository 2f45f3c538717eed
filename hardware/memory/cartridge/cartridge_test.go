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

package cartridge_test

import (
	"testing"

	"github.com/retrobus/vcs2600/hardware/memory/cartridge"
	"github.com/retrobus/vcs2600/test"
)

func TestEjectedByDefault(t *testing.T) {
	cart := cartridge.NewCartridge()
	_, err := cart.Read(0x1000)
	test.ExpectFailure(t, err == nil)
}

func Test2K(t *testing.T) {
	data := make([]uint8, 2048)
	data[0] = 0xaa
	data[2047] = 0xbb

	cart := cartridge.NewCartridge()
	test.ExpectSuccess(t, cart.Attach("test.bin", data) == nil)
	test.Equate(t, cart.NumBanks(), 1)

	v, err := cart.Read(0x1000)
	test.ExpectSuccess(t, err == nil)
	test.Equate(t, v, uint8(0xaa))

	// mirrored at +0x800
	v, _ = cart.Read(0x1800)
	test.Equate(t, v, uint8(0xaa))
}

func Test8KBankSwitch(t *testing.T) {
	data := make([]uint8, 8192)
	data[0] = 0x11       // bank 0, offset 0
	data[4096] = 0x22    // bank 1, offset 0

	cart := cartridge.NewCartridge()
	test.ExpectSuccess(t, cart.Attach("test.bin", data) == nil)
	test.Equate(t, cart.NumBanks(), 2)
	test.Equate(t, cart.GetBank(), 0)

	v, _ := cart.Read(0x1000)
	test.Equate(t, v, uint8(0x11))

	// hotspot at 0x1ff9 (0xff9 within window) selects bank 1
	_, _ = cart.Read(0x1ff9)
	test.Equate(t, cart.GetBank(), 1)

	v, _ = cart.Read(0x1000)
	test.Equate(t, v, uint8(0x22))

	cart.Reset()
	test.Equate(t, cart.GetBank(), 0)
}

func TestCassette(t *testing.T) {
	ram := make([]uint8, 6144)
	ram[0] = 0x01       // page 0
	ram[2048] = 0x02    // page 1
	ram[4096] = 0x03    // fixed upper page

	cart := cartridge.NewCartridge()
	test.ExpectSuccess(t, cart.AttachCassette("test.wav", ram) == nil)
	test.Equate(t, cart.NumBanks(), 3)

	v, _ := cart.Read(0x1000)
	test.Equate(t, v, uint8(0x01))

	v, _ = cart.Read(0x1800)
	test.Equate(t, v, uint8(0x03))

	_ = cart.Write(0x1ff8, 0x01)
	v, _ = cart.Read(0x1000)
	test.Equate(t, v, uint8(0x02))
}
