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

package hardware

import (
	"github.com/retrobus/vcs2600/hardware/memory/cartridge"
	"github.com/retrobus/vcs2600/hardware/memory/memorymap"
	"github.com/retrobus/vcs2600/hardware/riot"
	"github.com/retrobus/vcs2600/hardware/tia"
	"github.com/retrobus/vcs2600/logger"
)

// VCSMemory implements bus.CPUBus (and the debugger's Peek/Poke) by routing
// every CPU access through memorymap.MapAddress to whichever chip or RAM
// area answers it.
type VCSMemory struct {
	tia  *tia.TIA
	riot *riot.RIOT
	cart *cartridge.Cartridge
}

func newVCSMemory(t *tia.TIA, r *riot.RIOT, c *cartridge.Cartridge) *VCSMemory {
	return &VCSMemory{tia: t, riot: r, cart: c}
}

// Read implements bus.CPUBus.
func (m *VCSMemory) Read(address uint16) (uint8, error) {
	addr, area := memorymap.MapAddress(address)
	switch area {
	case memorymap.AreaTIA:
		return m.tia.ReadRegister(addr)
	case memorymap.AreaRAM:
		return m.riot.ReadRAM(addr), nil
	case memorymap.AreaRIOT:
		return m.riot.ReadRegister(addr)
	case memorymap.AreaCartridge:
		return m.cart.Read(addr)
	}
	logger.Logf("VCSMemory", "unrecognised bus address read (%#04x)", address)
	return 0, nil
}

// Write implements bus.CPUBus.
func (m *VCSMemory) Write(address uint16, data uint8) error {
	addr, area := memorymap.MapAddress(address)
	switch area {
	case memorymap.AreaTIA:
		return m.tia.WriteRegister(addr, data)
	case memorymap.AreaRAM:
		m.riot.WriteRAM(addr, data)
		return nil
	case memorymap.AreaRIOT:
		return m.riot.WriteRegister(addr, data)
	case memorymap.AreaCartridge:
		return m.cart.Write(addr, data)
	}
	logger.Logf("VCSMemory", "unrecognised bus address write (%#04x)", address)
	return nil
}

// Peek implements bus.DebuggerBus. Like the cartridge's own Peek, reading a
// chip register this way can't always avoid the real register's side
// effects (e.g. the RIOT timer's divide-by-1 latch, or a cartridge
// hotspot) - this matches how a real debugger probe would behave too.
func (m *VCSMemory) Peek(address uint16) (uint8, error) {
	addr, area := memorymap.MapAddress(address)
	if area == memorymap.AreaCartridge {
		return m.cart.Peek(addr)
	}
	return m.Read(address)
}

// Poke implements bus.DebuggerBus.
func (m *VCSMemory) Poke(address uint16, data uint8) error {
	addr, area := memorymap.MapAddress(address)
	if area == memorymap.AreaCartridge {
		return m.cart.Poke(addr, data)
	}
	return m.Write(address, data)
}
