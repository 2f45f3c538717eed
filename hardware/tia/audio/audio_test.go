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

package audio_test

import (
	"testing"

	"github.com/retrobus/vcs2600/hardware/tia/audio"
	"github.com/retrobus/vcs2600/test"
)

func TestSilentChannelProducesZeroSamples(t *testing.T) {
	a := audio.NewAudio()
	a.TickScanline()
	data := a.Buffer().Data
	test.Equate(t, data[0], 0)
	test.Equate(t, data[1], 0)
}

func TestConstantToneUsesProgrammedVolume(t *testing.T) {
	a := audio.NewAudio()
	a.WriteRegister(0x15, 0x00) // AUDC0: constant tone
	a.WriteRegister(0x19, 0x0f) // AUDV0: max volume
	a.TickScanline()
	data := a.Buffer().Data
	test.Equate(t, data[0], 15)
}

func TestBufferAccumulatesOneSamplePairPerScanline(t *testing.T) {
	a := audio.NewAudio()
	for i := 0; i < 5; i++ {
		a.TickScanline()
	}
	test.Equate(t, len(a.Buffer().Data), 10)
}
