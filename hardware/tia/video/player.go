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

package video

import "math/bits"

// Player models one of the two VCS player sprites: a position counter, a
// copy mask/scale selected by NUSIZx, reflection, and vertical delay
// between two graphics registers. Its companion missile may alias this
// player's position counter directly (see Missile's reset-to-player
// mode), making the player's own counter the single source of truth for
// both objects' positions.
type Player struct {
	Color uint8

	copyIndex uint8
	reflected bool
	vertDelay bool

	current uint8
	delayed uint8

	position     int
	resetPending bool
	motion       int
}

// NewPlayer returns a Player in its power-on state.
func NewPlayer() *Player {
	return &Player{}
}

// SetNUSIZ sets the copy mask/scale from the low 3 bits of NUSIZ0/NUSIZ1.
func (p *Player) SetNUSIZ(v uint8) { p.copyIndex = v & 0x07 }

// SetReflected sets REFP0/REFP1's reflection flag.
func (p *Player) SetReflected(v bool) { p.reflected = v }

// SetVerticalDelay sets VDELP0/VDELP1.
func (p *Player) SetVerticalDelay(v bool) { p.vertDelay = v }

// SetMotion decodes and stores an HMP0/HMP1 write.
func (p *Player) SetMotion(data uint8) { p.motion = decodeMotion(data) }

// ClearMotion implements HMCLR for this object.
func (p *Player) ClearMotion() { p.motion = 0 }

// WriteGraphics latches a GRP0/GRP1 write into the current graphics
// register and returns the value that was there before, which the caller
// (TIA) latches into the *other* player's delayed register - GRP0/GRP1
// writes have that cross-latching side effect on real hardware.
func (p *Player) WriteGraphics(v uint8) (previous uint8) {
	previous = p.current
	p.current = v
	return previous
}

// LatchDelayed sets this player's delayed graphics register, called by the
// TIA when the other player's GRP register is written.
func (p *Player) LatchDelayed(v uint8) { p.delayed = v }

// ResetPosition implements RESP0/RESP1: the position counter is set to the
// standard 156 reset value and the primary copy is suppressed until the
// counter wraps back around to zero.
func (p *Player) ResetPosition() {
	p.position = resetPosition
	p.resetPending = true
}

// ApplyHMOVE applies the extra HMOVE-time motion, per the TIA's HMOVE
// handler, clamped to the given limit.
func (p *Player) ApplyHMOVE(limit int) {
	delta := p.motion
	if delta > limit {
		delta = limit
	}
	p.position = wrapPosition(p.position + delta)
}

// positionPtr exposes this player's position counter for its companion
// missile's reset-to-player mode to alias directly.
func (p *Player) positionPtr() *int { return &p.position }

func (p *Player) pattern() uint8 {
	g := p.current
	if p.vertDelay {
		g = p.delayed
	}
	if p.reflected {
		g = bits.Reverse8(g)
	}
	return g
}

// Pixel reports whether the player draws at its current position this
// color clock.
func (p *Player) Pixel() bool {
	cp := copyPatterns[p.copyIndex]
	section := (p.position >> 3) >> cp.scale
	if section >= len(cp.sections) {
		return false
	}
	if section == 0 && p.resetPending {
		return false
	}
	if !cp.sections[section] {
		return false
	}
	bit := uint(p.position & 0x07)
	return p.pattern()>>(7-bit)&0x01 == 0x01
}

// Advance moves the position counter forward by one visible-window color
// clock. Once the counter wraps back to zero, a pending reset is cleared
// and the primary copy is re-enabled.
func (p *Player) Advance() {
	p.position = wrapPosition(p.position + 1)
	if p.position == 0 {
		p.resetPending = false
	}
}

// Position returns the player's current position counter value, 0..159.
func (p *Player) Position() int { return p.position }

func wrapPosition(v int) int {
	v %= positionSpan
	if v < 0 {
		v += positionSpan
	}
	return v
}
