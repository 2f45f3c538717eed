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

package riot_test

import (
	"testing"

	"github.com/retrobus/vcs2600/hardware/riot"
	"github.com/retrobus/vcs2600/test"
)

func TestRAM(t *testing.T) {
	r := riot.NewRIOT()
	r.WriteRAM(0x10, 0x42)
	test.Equate(t, r.ReadRAM(0x10), uint8(0x42))
}

func TestPortAInputDefaultsToDrivenPins(t *testing.T) {
	r := riot.NewRIOT()
	r.DriveSWCHA(0x0f) // all pins configured as input by default (DDRA=0)

	v, err := r.ReadRegister(0x00) // SWCHA
	test.ExpectSuccess(t, err == nil)
	test.Equate(t, v, uint8(0x0f))
}

func TestPortAOutputBitsReflectWrittenData(t *testing.T) {
	r := riot.NewRIOT()
	_ = r.WriteRegister(0x01, 0xff) // SWACNT: all outputs
	_ = r.WriteRegister(0x00, 0xaa) // SWCHA
	r.DriveSWCHA(0x00)              // external pins irrelevant now

	v, _ := r.ReadRegister(0x00)
	test.Equate(t, v, uint8(0xaa))
}

func TestTimerUnderflow(t *testing.T) {
	r := riot.NewRIOT()
	_ = r.WriteRegister(0x14, 2) // TIM1T, divide-by-1, count from 2

	for i := 0; i < 2; i++ {
		r.Step()
	}
	v, _ := r.ReadRegister(0x04) // INTIM
	test.Equate(t, v, uint8(0))

	flag, _ := r.ReadRegister(0x05) // TIMINT
	test.ExpectFailure(t, flag&0x80 != 0)

	r.Step()
	flag, _ = r.ReadRegister(0x05)
	test.ExpectSuccess(t, flag&0x80 != 0)
}

func TestTimerPrescaler(t *testing.T) {
	r := riot.NewRIOT()
	_ = r.WriteRegister(0x16, 1) // TIM64T: divide-by-64, count from 1

	for i := 0; i < 63; i++ {
		r.Step()
	}
	v, _ := r.ReadRegister(0x04)
	test.Equate(t, v, uint8(1))

	r.Step()
	v, _ = r.ReadRegister(0x04)
	test.Equate(t, v, uint8(0))
}

func TestTimer8TWrittenViaIRQEnabledRange(t *testing.T) {
	r := riot.NewRIOT()
	_ = r.WriteRegister(0x1d, 1) // TIM8T's IRQ-enabled alias, divide-by-8, count from 1

	for i := 0; i < 7; i++ {
		r.Step()
	}
	v, _ := r.ReadRegister(0x04)
	test.Equate(t, v, uint8(1))

	r.Step()
	v, _ = r.ReadRegister(0x04)
	test.Equate(t, v, uint8(0))
}

// TestPA7EdgeDetectFiresOnReadNotOnDrive reproduces the spec's edge-detect
// semantics: the flag latches when the CPU next reads SWCHA, not when the
// controller drives the pin.
func TestPA7EdgeDetectFiresOnReadNotOnDrive(t *testing.T) {
	r := riot.NewRIOT()
	_ = r.WriteRegister(0x05, 0) // addr 0x04-0x07: polarity=low-to-high, irqEnable=false

	r.DriveSWCHA(0x00) // pin low
	flag, _ := r.ReadRegister(0x05)
	test.ExpectFailure(t, flag&0x40 != 0)

	r.DriveSWCHA(0x80) // pin rises, but the flag doesn't latch until the read below
	flag, _ = r.ReadRegister(0x05)
	test.ExpectFailure(t, flag&0x40 != 0)

	_, _ = r.ReadRegister(0x00) // SWCHA read runs the edge-detect comparison
	flag, _ = r.ReadRegister(0x05)
	test.ExpectSuccess(t, flag&0x40 != 0)
}

// TestTIMINTReadClearsEdgeDetectFlag reproduces the spec's side effect: a
// TIMINT read clears the edge-detect flag after reporting it.
func TestTIMINTReadClearsEdgeDetectFlag(t *testing.T) {
	r := riot.NewRIOT()
	_ = r.WriteRegister(0x05, 0) // polarity=low-to-high

	r.DriveSWCHA(0x80)
	_, _ = r.ReadRegister(0x00) // latch the edge

	flag, _ := r.ReadRegister(0x05)
	test.ExpectSuccess(t, flag&0x40 != 0)

	flag, _ = r.ReadRegister(0x05)
	test.ExpectFailure(t, flag&0x40 != 0)
}

func TestUnrecognisedRegisterAccessIsNonFatal(t *testing.T) {
	r := riot.NewRIOT()
	err := r.WriteRegister(0x0a, 0) // unmapped within the RIOT's 0x00-0x1f window
	test.ExpectSuccess(t, err == nil)

	v, err := r.ReadRegister(0x0a)
	test.ExpectSuccess(t, err == nil)
	test.Equate(t, v, uint8(0))
}
