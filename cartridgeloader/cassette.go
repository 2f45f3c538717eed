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
	"bytes"
	"io"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/hajimehoshi/go-mp3"

	"github.com/retrobus/vcs2600/errors"
)

// cassetteRAMSize is the fixed size of the RAM image hardware/memory/
// cartridge's cassette mapper expects: three 2 KiB pages.
const cassetteRAMSize = 3 * 2048

// shortLongThreshold, in samples, distinguishes the two FSK tones a
// Supercharger recording encodes its bits with: a short interval between
// zero-crossings is the high tone (bit 1), a long interval is the low tone
// (bit 0).
const shortLongThreshold = 32

// DecodeCassette turns a Supercharger-style cassette recording into the RAM
// image the cassette cartridge mapper expects. isWAV selects the container
// format; Loader.Open sets it from the file extension.
func DecodeCassette(raw []byte, isWAV bool) ([]byte, error) {
	samples, err := decodeSamples(raw, isWAV)
	if err != nil {
		return nil, err
	}
	return demodulate(samples), nil
}

// decodeSamples unpacks a .wav or .mp3 recording into a slice of mono
// samples, averaging stereo channels down to one if necessary.
func decodeSamples(raw []byte, isWAV bool) ([]int, error) {
	if isWAV {
		dec := wav.NewDecoder(bytes.NewReader(raw))
		buf, err := dec.FullPCMBuffer()
		if err != nil {
			return nil, errors.Errorf(errors.CassetteError, err)
		}
		return pcmFromBuffer(buf), nil
	}

	dec, err := mp3.NewDecoder(bytes.NewReader(raw))
	if err != nil {
		return nil, errors.Errorf(errors.CassetteError, err)
	}
	pcm, err := io.ReadAll(dec)
	if err != nil {
		return nil, errors.Errorf(errors.CassetteError, err)
	}

	// go-mp3 always decodes to 16 bit stereo PCM, little-endian.
	raw16 := make([]int, len(pcm)/2)
	for i := range raw16 {
		raw16[i] = int(int16(uint16(pcm[i*2]) | uint16(pcm[i*2+1])<<8))
	}
	return monoDown(raw16, 2), nil
}

// pcmFromBuffer flattens a decoded WAV buffer to mono samples.
func pcmFromBuffer(buf *audio.IntBuffer) []int {
	return monoDown(buf.Data, buf.Format.NumChannels)
}

func monoDown(samples []int, channels int) []int {
	if channels <= 1 {
		return samples
	}
	out := make([]int, len(samples)/channels)
	for i := range out {
		sum := 0
		for c := 0; c < channels; c++ {
			sum += samples[i*channels+c]
		}
		out[i] = sum / channels
	}
	return out
}

// demodulate recovers one bit per zero-crossing interval and packs the
// result, most significant bit first, into the cassette mapper's fixed-size
// RAM image. Recordings shorter than the full image are zero-padded;
// recordings longer than it are truncated, matching how a real Supercharger
// BIOS only ever reads as much tape as the block header says it needs.
func demodulate(samples []int) []byte {
	out := make([]byte, cassetteRAMSize)
	if len(samples) < 2 {
		return out
	}

	bitIndex := 0
	lastCrossing := 0
	for i := 1; i < len(samples) && bitIndex < cassetteRAMSize*8; i++ {
		positive := samples[i] >= 0
		wasPositive := samples[i-1] >= 0
		if positive == wasPositive {
			continue
		}

		interval := i - lastCrossing
		lastCrossing = i

		var bit uint8
		if interval < shortLongThreshold {
			bit = 1
		}

		out[bitIndex/8] |= bit << uint(7-bitIndex%8)
		bitIndex++
	}

	return out
}
