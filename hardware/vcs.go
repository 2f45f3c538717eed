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
	"github.com/retrobus/vcs2600/hardware/cpu"
	"github.com/retrobus/vcs2600/hardware/input"
	"github.com/retrobus/vcs2600/hardware/memory/cartridge"
	"github.com/retrobus/vcs2600/hardware/riot"
	"github.com/retrobus/vcs2600/hardware/tia"
)

// resetVector is where the 6507 loads PC from on reset. Unlike BRK, which
// this hardware wires to a fixed vector of its own (see hardware/cpu), this
// one is genuinely the reset line.
const resetVector = 0xfffc

// VCS is the root of the emulation: it owns the CPU and the three chips the
// 6507 talks to (RIOT, TIA, cartridge), and drives them in lock-step off a
// single clock.
type VCS struct {
	CPU        *cpu.CPU
	RIOT       *riot.RIOT
	TIA        *tia.TIA
	Cart       *cartridge.Cartridge
	Controller *input.Controller

	mem *VCSMemory
}

// NewVCS returns a VCS with nothing attached. videoOut, if non-nil, is
// called by the TIA once per color clock with the composed video signal;
// sync, if non-nil, is called once when horizontal or vertical sync begins,
// with a tia.SyncHorizontal/tia.SyncVertical bitmap identifying which.
func NewVCS(videoOut func(uint16), sync func(syncKind uint8)) *VCS {
	vcs := &VCS{
		CPU:  cpu.NewCPU(nil),
		RIOT: riot.NewRIOT(),
		Cart: cartridge.NewCartridge(),
	}
	vcs.TIA = tia.NewTIA(vcs.CPU, videoOut, sync)
	vcs.mem = newVCSMemory(vcs.TIA, vcs.RIOT, vcs.Cart)
	vcs.CPU.Plumb(vcs.mem)
	vcs.Controller = input.NewController(vcs.RIOT, vcs.TIA)
	return vcs
}

// AttachCartridge loads a ROM image and selects the mapper appropriate to
// its size. See hardware/memory/cartridge for supported sizes.
func (vcs *VCS) AttachCartridge(filename string, data []uint8) error {
	return vcs.Cart.Attach(filename, data)
}

// AttachCassette installs an already-demodulated Supercharger-style RAM
// cartridge. See cartridgeloader for turning a .wav/.mp3 recording into
// that image.
func (vcs *VCS) AttachCassette(filename string, ram []uint8) error {
	return vcs.Cart.AttachCassette(filename, ram)
}

// Reset puts the CPU, RIOT and cartridge back into their power-on state and
// loads PC from the cartridge's reset vector. The TIA is not reset.
func (vcs *VCS) Reset() error {
	vcs.CPU.Reset()
	vcs.RIOT.Reset()
	vcs.Cart.Reset()
	return vcs.CPU.LoadPCIndirect(resetVector)
}

// tick is the CPU's cycle callback: every CPU cycle, the TIA runs three
// times and the RIOT once, matching the console's actual clock ratios (see
// hardware/clocks).
func (vcs *VCS) tick() error {
	vcs.TIA.Step()
	vcs.TIA.Step()
	vcs.TIA.Step()
	vcs.RIOT.Step()
	return nil
}

// Step executes a single CPU instruction to completion, including any
// WSYNC stall, running the TIA and RIOT in step with every CPU cycle it
// consumes.
func (vcs *VCS) Step() error {
	return vcs.CPU.ExecuteInstruction(vcs.tick)
}

// Run calls Step in a loop until continue_ returns false, or either Step or
// continue_ returns an error. continue_ is called after every instruction,
// not every cycle - callers that need cycle-by-cycle granularity (a video
// renderer driving its own timing) should call Step directly instead.
func (vcs *VCS) Run(continue_ func() (bool, error)) error {
	for {
		if err := vcs.Step(); err != nil {
			return err
		}
		ok, err := continue_()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
	}
}
