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

// Package input turns the two joystick button words the frontend
// supplies into the console-level signals the RIOT and TIA actually see:
// directions on RIOT port A (SWCHA) and fire buttons on the TIA's dumped
// input latches (INPT4/INPT5). Nothing in here knows about keyboards, SDL
// events or anything else host-side; see the Console's driver entrypoint
// for that wiring.
package input

// directions bit numbering within a joystick word, from bit 0 upwards: up,
// down, left, right, fire.
const (
	Up uint8 = 1 << iota
	Down
	Left
	Right
	Fire
)

// riotPort is the subset of hardware/riot.RIOT the controller drives.
type riotPort interface {
	DriveSWCHA(v uint8)
	DriveSWCHB(v uint8)
}

// tiaInputPort is the subset of hardware/tia.TIA the controller drives.
type tiaInputPort interface {
	DriveINPT4(level bool)
	DriveINPT5(level bool)
}

// Controller couples a pair of joystick inputs to the RIOT and TIA ports
// they're wired to on real hardware.
type Controller struct {
	riot riotPort
	tia  tiaInputPort
}

// NewController returns a Controller driving the given RIOT and TIA.
func NewController(riot riotPort, tia tiaInputPort) *Controller {
	return &Controller{riot: riot, tia: tia}
}

// WriteJoysticks accepts the current button state of both joysticks (bits
// 0..3 directions, bit 4 fire - see Up/Down/Left/Right/Fire) and pushes the
// inverted result onto SWCHA and the two INPT latches. A pressed button
// reads back as a 0 bit, matching the VCS's active-low switches.
func (c *Controller) WriteJoysticks(joy0, joy1 uint8) {
	directions := ((joy0 & 0x0f) << 4) | (joy1 & 0x0f)
	c.riot.DriveSWCHA(^directions)

	c.tia.DriveINPT4(joy0&Fire == 0)
	c.tia.DriveINPT5(joy1&Fire == 0)
}

// WriteConsoleSwitches drives RIOT port B, which carries the console's
// panel switches (difficulty, select, reset, colour/b&w) rather than the
// joysticks. The spec only defines the inversion behaviour for joystick
// directions and fire buttons, so this is a direct passthrough.
func (c *Controller) WriteConsoleSwitches(v uint8) {
	c.riot.DriveSWCHB(v)
}
