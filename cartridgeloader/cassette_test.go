// This file is part of Gopher2600.
//
// Gopher2600 is free software: you can redistribute it and/or modify
// it under the terms of the gnu general public license as published by
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

package cartridgeloader

import (
	"testing"

	"github.com/retrobus/vcs2600/test"
)

// squareWave appends cycles of a square wave with the given half-period (in
// samples) to samples, standing in for one of the two FSK tones a real
// Supercharger recording alternates between.
func squareWave(samples []int, halfPeriod, cycles int) []int {
	for c := 0; c < cycles; c++ {
		for i := 0; i < halfPeriod; i++ {
			samples = append(samples, 1000)
		}
		for i := 0; i < halfPeriod; i++ {
			samples = append(samples, -1000)
		}
	}
	return samples
}

func TestDemodulateProducesFixedSizeRAMImage(t *testing.T) {
	var samples []int
	samples = squareWave(samples, 5, 40)
	ram := demodulate(samples)
	test.Equate(t, len(ram), cassetteRAMSize)
}

func TestDemodulateShortPeriodDecodesToOnes(t *testing.T) {
	var samples []int
	samples = squareWave(samples, 5, 40) // half-period 5 < shortLongThreshold
	ram := demodulate(samples)
	test.Equate(t, ram[0], uint8(0xff))
}

func TestDemodulateLongPeriodDecodesToZeros(t *testing.T) {
	var samples []int
	samples = squareWave(samples, 60, 10) // half-period 60 > shortLongThreshold
	ram := demodulate(samples)
	test.Equate(t, ram[0], uint8(0x00))
}

func TestDemodulateShortRecordingIsZeroPadded(t *testing.T) {
	samples := []int{1000, -1000, 1000, -1000}
	ram := demodulate(samples)
	test.Equate(t, len(ram), cassetteRAMSize)
	test.Equate(t, ram[cassetteRAMSize-1], uint8(0x00))
}

func TestMonoDownAveragesChannels(t *testing.T) {
	stereo := []int{10, 20, 30, 40}
	mono := monoDown(stereo, 2)
	test.Equate(t, mono, []int{15, 35})
}
