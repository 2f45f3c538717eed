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

package tia

import (
	"github.com/retrobus/vcs2600/hardware/tia/audio"
	"github.com/retrobus/vcs2600/hardware/tia/video"
	"github.com/retrobus/vcs2600/logger"
)

const (
	visibleStart  = 68
	scanlineTotal = 228
)

// sync_kind bitmap per spec §6: the bits the high byte of the output signal
// word carries, and the value passed to the sync callback.
const (
	SyncHorizontal uint8 = 0x01
	SyncVertical   uint8 = 0x02
)

// readinessFlag is the subset of the MPU the TIA stalls and releases via
// WSYNC and the horizontal-sync notification. The CPU implements this.
type readinessFlag interface {
	Ready() bool
	SetReady(bool)
}

// TIA emulates the television interface adaptor. Step drives its
// 228-color-clock scanline state machine; ReadRegister/WriteRegister are
// called by the bus decoder for TIA-mapped addresses.
type TIA struct {
	player0, player1   *video.Player
	missile0, missile1 *video.Missile
	ball               *video.Ball
	playfield          *video.Playfield
	audio              *audio.Audio

	colors [4]uint8 // index 0=COLUP0, 1=COLUP1, 2=COLUPF, 3=COLUBK

	colorClock      int
	blankResetClock int

	vsync      bool
	vblank     bool
	inputLatch bool // VBLANK bit 6
	inputDumped bool // VBLANK bit 7

	collision collisionLatch

	input4, input5 bool // driven by hardware/input, read back via INPT4/INPT5

	readiness readinessFlag
	videoOut  func(word uint16)
	sync      func(syncKind uint8)
}

// NewTIA returns a TIA in its power-on state. videoOut and sync may be
// nil; readiness must not be.
func NewTIA(readiness readinessFlag, videoOut func(uint16), sync func(syncKind uint8)) *TIA {
	player0 := video.NewPlayer()
	player1 := video.NewPlayer()
	return &TIA{
		player0:         player0,
		player1:         player1,
		missile0:        video.NewMissile(player0),
		missile1:        video.NewMissile(player1),
		ball:            video.NewBall(),
		playfield:       video.NewPlayfield(),
		audio:           audio.NewAudio(),
		blankResetClock: visibleStart,
		readiness:       readiness,
		videoOut:        videoOut,
		sync:            sync,
	}
}

// DriveINPT4 sets the level latched for INPT4 (joystick 0 fire), called by
// hardware/input.
func (t *TIA) DriveINPT4(level bool) { t.input4 = level }

// DriveINPT5 sets the level latched for INPT5 (joystick 1 fire).
func (t *TIA) DriveINPT5(level bool) { t.input5 = level }

// Step advances the TIA by one color clock: the per-clock procedure of
// spec §4.2. Called three times per MPU cycle by the console's master
// clock.
func (t *TIA) Step() {
	horizontalBlank := t.colorClock < t.blankResetClock

	colorIndex := uint8(3) // background while blanked
	if !horizontalBlank {
		p := t.colorClock - visibleStart

		pfDraw := t.playfield.Pixel(p)
		p0Draw := t.player0.Pixel()
		p1Draw := t.player1.Pixel()
		m0Draw := t.missile0.Pixel()
		m1Draw := t.missile1.Pixel()
		blDraw := t.ball.Pixel()

		t.collision.update(p0Draw, p1Draw, m0Draw, m1Draw, blDraw, pfDraw)
		colorIndex = t.resolvePriority(p0Draw, p1Draw, m0Draw, m1Draw, blDraw, pfDraw, p)

		t.player0.Advance()
		t.player1.Advance()
		t.missile0.Advance()
		t.missile1.Advance()
		t.ball.Advance()
	}

	if t.videoOut != nil {
		t.videoOut(t.compose(horizontalBlank, colorIndex))
	}

	t.colorClock++
	if t.colorClock >= scanlineTotal {
		t.colorClock = 0
		t.blankResetClock = visibleStart
		t.audio.TickScanline()
		if t.readiness != nil {
			t.readiness.SetReady(true)
		}
		if t.sync != nil {
			t.sync(SyncHorizontal)
		}
	}
}

func (t *TIA) resolvePriority(p0, p1, m0, m1, bl, pf bool, p int) uint8 {
	if pf && t.playfield.Priority() && !t.playfield.ScoreMode() {
		return 2
	}
	switch {
	case p0 || m0:
		return 0
	case p1 || m1:
		return 1
	case bl:
		return 2
	case pf:
		if t.playfield.ScoreMode() {
			if p < 80 {
				return 0
			}
			return 1
		}
		return 2
	default:
		return 3
	}
}

// compose builds the output signal word: bit 0 is the blank flag (bit set
// means blanked), bits 1-7 carry the palette index directly, and the high
// byte carries the sync_kind bitmap (SyncHorizontal|SyncVertical) for the
// host, in the same layout the sync callback's argument uses.
func (t *TIA) compose(horizontalBlank bool, colorIndex uint8) uint16 {
	var lo uint8
	blanked := horizontalBlank || t.vblank
	if blanked {
		lo |= 0x01
	}
	lo |= t.colors[colorIndex] << 1

	var hi uint8
	if t.colorClock == 0 {
		hi |= SyncHorizontal
	}
	if t.vsync {
		hi |= SyncVertical
	}

	return uint16(hi)<<8 | uint16(lo)
}

func (t *TIA) hmove() {
	t.blankResetClock = 76
	if t.colorClock > 69 {
		return
	}
	limit := (76 - 7 - t.colorClock) / 4
	t.player0.ApplyHMOVE(limit)
	t.player1.ApplyHMOVE(limit)
	t.missile0.ApplyHMOVE(limit)
	t.missile1.ApplyHMOVE(limit)
	t.ball.ApplyHMOVE(limit)
}

func (t *TIA) clearMotion() {
	t.player0.ClearMotion()
	t.player1.ClearMotion()
	t.missile0.ClearMotion()
	t.missile1.ClearMotion()
	t.ball.ClearMotion()
}

// WriteRegister writes one of the TIA's registers, addressed 0x00..0x3F
// (the memory map has already masked the address to this window).
func (t *TIA) WriteRegister(addr uint16, data uint8) error {
	switch addr {
	case 0x00: // VSYNC
		rising := !t.vsync && data&0x02 != 0
		t.vsync = data&0x02 != 0
		if rising && t.sync != nil {
			t.sync(SyncVertical)
		}
	case 0x01: // VBLANK
		t.vblank = data&0x02 != 0
		t.inputDumped = data&0x80 != 0
		wasLatched := t.inputLatch
		t.inputLatch = data&0x40 != 0
		if wasLatched && !t.inputLatch {
			t.input4, t.input5 = true, true
		}
	case 0x02: // WSYNC
		if t.colorClock != 0 && t.readiness != nil {
			t.readiness.SetReady(false)
		}
	case 0x03: // RSYNC
		t.colorClock = -6
	case 0x04: // NUSIZ0
		t.player0.SetNUSIZ(data)
		t.missile0.SetNUSIZ(data)
	case 0x05: // NUSIZ1
		t.player1.SetNUSIZ(data)
		t.missile1.SetNUSIZ(data)
	case 0x06: // COLUP0
		t.colors[0] = data
	case 0x07: // COLUP1
		t.colors[1] = data
	case 0x08: // COLUPF
		t.colors[2] = data
	case 0x09: // COLUBK
		t.colors[3] = data
	case 0x0a: // CTRLPF
		t.playfield.SetControl(data&0x01 != 0, data&0x02 != 0, data&0x04 != 0)
		t.ball.SetSize((data >> 4) & 0x03)
	case 0x0b: // REFP0
		t.player0.SetReflected(data&0x08 != 0)
	case 0x0c: // REFP1
		t.player1.SetReflected(data&0x08 != 0)
	case 0x0d: // PF0
		t.playfield.WritePF0(data)
	case 0x0e: // PF1
		t.playfield.WritePF1(data)
	case 0x0f: // PF2
		t.playfield.WritePF2(data)
	case 0x10: // RESP0
		t.player0.ResetPosition()
	case 0x11: // RESP1
		t.player1.ResetPosition()
	case 0x12: // RESM0
		t.missile0.ResetPosition()
	case 0x13: // RESM1
		t.missile1.ResetPosition()
	case 0x14: // RESBL
		t.ball.ResetPosition()
	case 0x1b: // GRP0
		previous := t.player0.WriteGraphics(data)
		t.player1.LatchDelayed(previous)
	case 0x1c: // GRP1
		previous := t.player1.WriteGraphics(data)
		t.player0.LatchDelayed(previous)
		t.ball.LatchDelayed()
	case 0x1d: // ENAM0
		t.missile0.SetEnabled(data&0x02 != 0)
	case 0x1e: // ENAM1
		t.missile1.SetEnabled(data&0x02 != 0)
	case 0x1f: // ENABL
		t.ball.SetEnabledCurrent(data&0x02 != 0)
	case 0x20: // HMP0
		t.player0.SetMotion(data)
	case 0x21: // HMP1
		t.player1.SetMotion(data)
	case 0x22: // HMM0
		t.missile0.SetMotion(data)
	case 0x23: // HMM1
		t.missile1.SetMotion(data)
	case 0x24: // HMBL
		t.ball.SetMotion(data)
	case 0x25: // VDELP0
		t.player0.SetVerticalDelay(data&0x01 != 0)
	case 0x26: // VDELP1
		t.player1.SetVerticalDelay(data&0x01 != 0)
	case 0x27: // VDELBL
		t.ball.SetVerticalDelay(data&0x01 != 0)
	case 0x28: // RESMP0
		t.missile0.SetResetToPlayer(data&0x02 != 0)
	case 0x29: // RESMP1
		t.missile1.SetResetToPlayer(data&0x02 != 0)
	case 0x2a: // HMOVE
		t.hmove()
	case 0x2b: // HMCLR
		t.clearMotion()
	case 0x2c: // CXCLR
		t.collision.clear()
	default:
		if addr >= 0x15 && addr <= 0x1a {
			t.audio.WriteRegister(addr, data)
			return nil
		}
		logger.Logf("TIA", "unrecognised register write (%#04x)", addr)
	}
	return nil
}

// ReadRegister reads one of the TIA's registers, addressed with the low 4
// bits of the memory-map-normalised address.
func (t *TIA) ReadRegister(addr uint16) (uint8, error) {
	addr &= 0x0f
	switch {
	case addr <= 0x07:
		return t.collision.read(addr), nil
	case addr >= 0x08 && addr <= 0x0b:
		return 0, nil // INPT0..INPT3: no paddles/dumped inputs wired up
	case addr == 0x0c:
		return t.readInput(t.input4), nil
	case addr == 0x0d:
		return t.readInput(t.input5), nil
	}
	return 0, nil
}

func (t *TIA) readInput(level bool) uint8 {
	if t.inputLatch && !level {
		return 0
	}
	if level {
		return 0x80
	}
	return 0
}
