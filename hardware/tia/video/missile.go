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

// Missile models one of the two VCS missile sprites. It shares its copy
// mask/scale with the player of the same number (set from the same
// NUSIZx register) and can be slaved to that player's position via
// reset-to-player mode.
type Missile struct {
	copyIndex uint8
	size      int // 1, 2, 4 or 8 color clocks wide

	enabled       bool
	resetToPlayer bool

	position int
	motion   int

	// back aliases this missile's own position field, or - while
	// reset-to-player is set - the companion player's position field
	// directly, making the player's counter the single source of truth
	// for both objects.
	back *int

	player *Player // the player this missile shares NUSIZx/reset-to-player with
}

// NewMissile returns a Missile in its power-on state, associated with the
// given player (for reset-to-player and shared copy mask).
func NewMissile(player *Player) *Missile {
	m := &Missile{size: 1, player: player}
	m.back = &m.position
	return m
}

// SetNUSIZ sets the copy mask (shared with the companion player) and the
// missile's own width from bits 4-5.
func (m *Missile) SetNUSIZ(v uint8) {
	m.copyIndex = v & 0x07
	m.size = 1 << ((v >> 4) & 0x03)
}

// SetEnabled sets ENAM0/ENAM1's enabled flag.
func (m *Missile) SetEnabled(v bool) { m.enabled = v }

// SetResetToPlayer implements RESMP0/RESMP1: while set, the missile's
// position tracks the companion player's position counter directly.
func (m *Missile) SetResetToPlayer(v bool) {
	m.resetToPlayer = v
	if v {
		m.back = m.player.positionPtr()
	} else {
		m.back = &m.position
	}
}

// SetMotion decodes and stores an HMM0/HMM1 write.
func (m *Missile) SetMotion(data uint8) { m.motion = decodeMotion(data) }

// ClearMotion implements HMCLR for this object.
func (m *Missile) ClearMotion() { m.motion = 0 }

// ResetPosition implements RESM0/RESM1.
func (m *Missile) ResetPosition() { m.position = resetPosition }

// ApplyHMOVE applies the extra HMOVE-time motion, clamped to limit.
func (m *Missile) ApplyHMOVE(limit int) {
	delta := m.motion
	if delta > limit {
		delta = limit
	}
	m.position = wrapPosition(m.position + delta)
}

// Pixel reports whether the missile draws at its effective position this
// color clock. A missile held in reset-to-player mode never draws itself;
// it exists only to let its position track the player's for collision
// and alignment purposes.
func (m *Missile) Pixel() bool {
	if !m.enabled || m.resetToPlayer {
		return false
	}
	pos := *m.back
	cp := copyPatterns[m.copyIndex]
	section := pos >> 3
	if section >= len(cp.sections) || !cp.sections[section] {
		return false
	}
	return pos&0x07 < m.size
}

// Advance moves the position counter forward by one visible-window color
// clock. While reset-to-player is set, the counter is the player's own
// field (aliased via back) and is advanced by the player itself, so there
// is nothing to do here.
func (m *Missile) Advance() {
	if m.resetToPlayer {
		return
	}
	m.position = wrapPosition(m.position + 1)
}

// Position returns the missile's effective position counter.
func (m *Missile) Position() int { return *m.back }
