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

import (
	"github.com/retrobus/vcs2600/errors"
)

// windowMask normalises an address to the 4 KiB cartridge window.
const windowMask = 0x0fff

// Cartridge is the bus area attached at the top of the 6507's address
// space. It owns a cartMapper selected by the size of the loaded ROM image,
// and is responsible for normalising addresses to that mapper's 4 KiB
// window.
type Cartridge struct {
	Filename string
	mapper   cartMapper
}

// NewCartridge returns a Cartridge with nothing attached.
func NewCartridge() *Cartridge {
	return &Cartridge{mapper: newEjected()}
}

// Attach selects and installs a mapper appropriate to the size of data. See
// the package doc for the set of supported sizes.
func (cart *Cartridge) Attach(filename string, data []uint8) error {
	switch len(data) {
	case 2048, 4096:
		cart.mapper = newFixed(data)
	case 8192:
		cart.mapper = newBankSwitched(data, 0x0ff8, 2)
	case 12288:
		cart.mapper = newBankSwitched(data, 0x0ff8, 3)
	case 16384:
		cart.mapper = newBankSwitched(data, 0x0ff6, 4)
	case 32768:
		cart.mapper = newBankSwitched(data, 0x0ff4, 8)
	default:
		return errors.Errorf(errors.CartridgeUnsupported, len(data))
	}
	cart.Filename = filename
	return nil
}

// AttachCassette installs a Supercharger-style RAM cartridge from an
// already-demodulated program image. See cartridgeloader for how a .wav/.mp3
// recording is turned into that image.
func (cart *Cartridge) AttachCassette(filename string, ram []uint8) error {
	mapper, err := newCassette(ram)
	if err != nil {
		return err
	}
	cart.mapper = mapper
	cart.Filename = filename
	return nil
}

// Eject detaches the current mapper; every subsequent access fails.
func (cart *Cartridge) Eject() {
	cart.mapper = newEjected()
	cart.Filename = ""
}

// Read implements bus.CPUBus.
func (cart *Cartridge) Read(addr uint16) (uint8, error) {
	return cart.mapper.read(addr & windowMask)
}

// Write implements bus.CPUBus.
func (cart *Cartridge) Write(addr uint16, data uint8) error {
	return cart.mapper.write(addr&windowMask, data)
}

// Peek implements bus.DebuggerBus without side effects on bank state where
// the mapper allows it; most mappers can't avoid the bank-switch side
// effect of a hotspot peek, matching real hardware.
func (cart *Cartridge) Peek(addr uint16) (uint8, error) {
	return cart.mapper.read(addr & windowMask)
}

// Poke implements bus.DebuggerBus: it writes through to the mapper's
// backing store without triggering bank-switch side effects.
func (cart *Cartridge) Poke(addr uint16, data uint8) error {
	return cart.mapper.poke(addr&windowMask, data)
}

// NumBanks returns how many banks the attached cartridge has.
func (cart *Cartridge) NumBanks() int {
	return cart.mapper.numBanks()
}

// GetBank returns the currently mapped bank.
func (cart *Cartridge) GetBank() int {
	return cart.mapper.getBank()
}

// Reset returns the cartridge to bank 0, as happens on a real console's
// reset line.
func (cart *Cartridge) Reset() {
	cart.mapper.reset()
}
