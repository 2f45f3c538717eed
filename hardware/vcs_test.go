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

package hardware_test

import (
	"testing"

	"github.com/retrobus/vcs2600/hardware"
	"github.com/retrobus/vcs2600/test"
)

// newTestROM builds a minimal 2 KiB cartridge image: LDA #$01; STA $80;
// JMP $1004 (a tight loop), with the reset vector pointing at its first
// byte, mapped at cartridge address $1000.
func newTestROM() []uint8 {
	rom := make([]uint8, 2048)
	rom[0x000] = 0xa9 // LDA #$01
	rom[0x001] = 0x01
	rom[0x002] = 0x85 // STA $80
	rom[0x003] = 0x80
	rom[0x004] = 0x4c // JMP $1004
	rom[0x005] = 0x04
	rom[0x006] = 0x10
	rom[0x7fc] = 0x00 // reset vector low
	rom[0x7fd] = 0x10 // reset vector high -> $1000
	return rom
}

func TestResetLoadsPCFromCartridgeVector(t *testing.T) {
	vcs := hardware.NewVCS(nil, nil)
	err := vcs.AttachCartridge("test.bin", newTestROM())
	test.ExpectSuccess(t, err == nil)
	err = vcs.Reset()
	test.ExpectSuccess(t, err == nil)
	test.Equate(t, vcs.CPU.PC.Value(), uint16(0x1000))
}

func TestStepRunsInstructionsAcrossChips(t *testing.T) {
	vcs := hardware.NewVCS(nil, nil)
	err := vcs.AttachCartridge("test.bin", newTestROM())
	test.ExpectSuccess(t, err == nil)
	err = vcs.Reset()
	test.ExpectSuccess(t, err == nil)

	err = vcs.Step() // LDA #$01
	test.ExpectSuccess(t, err == nil)
	test.Equate(t, vcs.CPU.A.Value(), uint8(0x01))

	err = vcs.Step() // STA $80
	test.ExpectSuccess(t, err == nil)
	test.Equate(t, vcs.RIOT.ReadRAM(0), uint8(0x01))

	err = vcs.Step() // JMP $1004
	test.ExpectSuccess(t, err == nil)
	test.Equate(t, vcs.CPU.PC.Value(), uint16(0x1004))
}

func TestRunStopsWhenContinuationReturnsFalse(t *testing.T) {
	vcs := hardware.NewVCS(nil, nil)
	err := vcs.AttachCartridge("test.bin", newTestROM())
	test.ExpectSuccess(t, err == nil)
	err = vcs.Reset()
	test.ExpectSuccess(t, err == nil)

	steps := 0
	err = vcs.Run(func() (bool, error) {
		steps++
		return steps < 3, nil
	})
	test.ExpectSuccess(t, err == nil)
	test.Equate(t, steps, 3)
	test.Equate(t, vcs.CPU.PC.Value(), uint16(0x1004))
}
