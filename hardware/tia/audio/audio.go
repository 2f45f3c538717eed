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

// Package audio emulates the TIA's two sound channels: a 4-bit volume, a
// 5-bit frequency divider and a 4-bit waveform selector per channel,
// sampled once per scanline and accumulated into a go-audio/audio buffer
// the host can play back or capture to disk as a golden fixture via
// go-audio/wav.
package audio

import (
	"github.com/go-audio/audio"
)

const sampleRate = 15700 // one sample per scanline at NTSC's scanline rate

// channel holds one of the TIA's two AUDCx/AUDFx/AUDVx register triples and
// the poly-counter state used to derive its waveform.
type channel struct {
	control uint8 // AUDCx: waveform select, low 4 bits
	divider uint8 // AUDFx: frequency divider, low 5 bits
	volume  uint8 // AUDVx: volume, low 4 bits

	clockCount uint8
	poly4      uint8
	poly5      uint8
}

func (c *channel) writeControl(v uint8) { c.control = v & 0x0f }
func (c *channel) writeDivider(v uint8) { c.divider = v & 0x1f }
func (c *channel) writeVolume(v uint8)  { c.volume = v & 0x0f }

// tick advances the channel's divider count by one, stepping the
// poly-counters once every divider+1 ticks, and returns the current sample
// level (0 or the channel's volume).
func (c *channel) tick() uint8 {
	c.clockCount++
	if c.clockCount <= c.divider {
		return c.level()
	}
	c.clockCount = 0

	bit4 := c.poly4&0x01 != 0
	feedback4 := bit4 != (c.poly4&0x02 != 0)
	c.poly4 = (c.poly4 >> 1) | boolToBit(feedback4)<<3

	bit5 := c.poly5&0x01 != 0
	feedback5 := bit5 != (c.poly5&0x04 != 0)
	c.poly5 = (c.poly5 >> 1) | boolToBit(feedback5)<<4

	return c.level()
}

func (c *channel) level() uint8 {
	var on bool
	switch c.control {
	case 0x00, 0x0b:
		on = true // constant tone
	case 0x01, 0x02, 0x03, 0x06, 0x0a:
		on = c.poly5&0x01 != 0
	case 0x04, 0x05:
		on = c.poly4&0x01 != 0
	case 0x07, 0x09, 0x0f:
		on = c.poly5&0x01 != 0 && c.poly4&0x01 != 0
	case 0x08:
		on = true
	default:
		on = c.poly4&0x01 != 0
	}
	if on {
		return c.volume
	}
	return 0
}

func boolToBit(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}

// Audio emulates the TIA's two sound channels and accumulates their output
// into a stereo int buffer for the host to consume.
type Audio struct {
	channels [2]channel
	buffer   *audio.IntBuffer
}

// NewAudio returns an Audio with an empty output buffer.
func NewAudio() *Audio {
	return &Audio{
		buffer: &audio.IntBuffer{
			Format: &audio.Format{NumChannels: 2, SampleRate: sampleRate},
		},
	}
}

// WriteRegister handles AUDC0/AUDC1 (0x15/0x16), AUDF0/AUDF1 (0x17/0x18) and
// AUDV0/AUDV1 (0x19/0x1a).
func (a *Audio) WriteRegister(addr uint16, data uint8) {
	switch addr {
	case 0x15:
		a.channels[0].writeControl(data)
	case 0x16:
		a.channels[1].writeControl(data)
	case 0x17:
		a.channels[0].writeDivider(data)
	case 0x18:
		a.channels[1].writeDivider(data)
	case 0x19:
		a.channels[0].writeVolume(data)
	case 0x1a:
		a.channels[1].writeVolume(data)
	}
}

// TickScanline advances both channels by one sample period (called once
// per completed scanline by the TIA) and appends the result to the output
// buffer.
func (a *Audio) TickScanline() {
	left := a.channels[0].tick()
	right := a.channels[1].tick()
	a.buffer.Data = append(a.buffer.Data, int(left), int(right))
}

// Buffer returns the accumulated stereo samples. The caller may reset
// Buffer().Data between reads to avoid unbounded growth.
func (a *Audio) Buffer() *audio.IntBuffer { return a.buffer }
