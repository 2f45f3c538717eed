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

package riot

import (
	"github.com/retrobus/vcs2600/logger"
	"github.com/retrobus/vcs2600/random"
)

// register offsets, normalised by the memory map to the 0x00-0x1f RIOT
// register window (see hardware/memory/addresses for the canonical names).
const (
	regSWCHA  = 0x00
	regSWACNT = 0x01
	regSWCHB  = 0x02
	regSWBCNT = 0x03
	regINTIM  = 0x04
	regTIMINT = 0x05

	regTIM1T  = 0x14
	regTIM8T  = 0x15
	regTIM64T = 0x16
	regT1024T = 0x17
)

const ramSize = 128

// coldStartCoords feeds random.Random a varying seed across successive
// RIOT instances without depending on any other chip; the RAM it seeds is
// undefined on real hardware regardless of where the raster beam happens to
// be, so a simple incrementing counter is all the variation it needs.
type coldStartCoords struct{ n int }

func (c *coldStartCoords) GetCoords() random.Coords {
	c.n++
	return random.Coords{Clock: c.n}
}

// RIOT emulates the 6532: 128 bytes of RAM, two 8 bit I/O ports and a
// single interval timer.
type RIOT struct {
	ram   [ramSize]uint8
	ports ports
	timer timer
}

// NewRIOT returns a RIOT in its power-on state. RAM content is undefined on
// real hardware at power-on, so it is seeded with pseudo-random bytes
// rather than left at Go's zero value.
func NewRIOT() *RIOT {
	r := &RIOT{}

	rng := random.NewRandom(&coldStartCoords{})
	for i := range r.ram {
		r.ram[i] = rng.NoRewind()
	}

	r.Reset()
	return r
}

// Reset returns the chip to its power-on state: RAM is left untouched (real
// hardware doesn't clear it either), but the ports, direction registers and
// timer are all zeroed.
func (r *RIOT) Reset() {
	r.ports.reset()
	r.timer.reset()
}

// Step advances the interval timer by one CPU cycle. Called once per CPU
// cycle by the console's master clock.
func (r *RIOT) Step() {
	r.timer.step()
}

// DriveSWCHA sets the external pin state of port A, e.g. from the joystick
// controller. See hardware/input.
func (r *RIOT) DriveSWCHA(v uint8) {
	r.ports.driveA(v)
}

// DriveSWCHB sets the external pin state of port B, e.g. from the console
// switch panel (difficulty, select, reset, colour/b&w).
func (r *RIOT) DriveSWCHB(v uint8) {
	r.ports.b.drive(v)
}

// ReadRAM reads one of the 128 bytes of general purpose RAM.
func (r *RIOT) ReadRAM(addr uint16) uint8 {
	return r.ram[addr%ramSize]
}

// WriteRAM writes one of the 128 bytes of general purpose RAM.
func (r *RIOT) WriteRAM(addr uint16, data uint8) {
	r.ram[addr%ramSize] = data
}

// ReadRegister reads one of the RIOT's registers. addr has already been
// normalised to the 0x00-0x1f RIOT register window by the memory map. An
// address this chip doesn't decode reads back as 0, logged but not fatal -
// only cartridge attachment errors are fatal in this core.
func (r *RIOT) ReadRegister(addr uint16) (uint8, error) {
	switch addr {
	case regSWCHA:
		return r.ports.readA(), nil
	case regSWACNT:
		return r.ports.a.ddr, nil
	case regSWCHB:
		return r.ports.b.read(), nil
	case regSWBCNT:
		return r.ports.b.ddr, nil
	case regINTIM:
		return r.timer.readINTIM(), nil
	case regTIMINT:
		v := r.timer.readTIMINT()
		if r.ports.pa7Flag {
			v |= 0x40
		}
		r.ports.pa7Flag = false
		return v, nil
	}
	logger.Logf("RIOT", "unrecognised register read (%#04x)", addr)
	return 0, nil
}

// WriteRegister writes one of the RIOT's registers. addr has already been
// normalised to the 0x00-0x1f RIOT register window by the memory map. An
// address this chip doesn't decode is silently ignored, logged but not
// fatal - only cartridge attachment errors are fatal in this core.
func (r *RIOT) WriteRegister(addr uint16, data uint8) error {
	switch {
	case addr == regSWCHA:
		r.ports.a.write(data)
	case addr == regSWACNT:
		r.ports.a.writeDDR(data)
	case addr == regSWCHB:
		r.ports.b.write(data)
	case addr == regSWBCNT:
		r.ports.b.writeDDR(data)
	case addr >= 0x04 && addr <= 0x07:
		r.ports.setPA7Edge(addr&0x01 != 0, addr&0x02 != 0)
	case addr >= regTIM1T && addr <= regT1024T:
		r.timer.setInterval(data, int(addr&0x03), addr&0x08 != 0)
	case addr >= 0x1c && addr <= 0x1f:
		r.timer.setInterval(data, int(addr&0x03), addr&0x08 != 0)
	default:
		logger.Logf("RIOT", "unrecognised register write (%#04x)", addr)
	}
	return nil
}
