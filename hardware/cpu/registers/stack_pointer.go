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

package registers

// StackPointer is the 6507's SP register. It embeds Register for Load/
// Value/IsZero etc., but its Address() is hardwired to page one.
type StackPointer struct {
	Register
}

// NewStackPointer creates a new stack pointer with the given initial
// value.
func NewStackPointer(val uint8) StackPointer {
	return StackPointer{Register: NewRegister(val, "SP")}
}

// Address returns the stack pointer's value as an address in page one
// (0x0100-0x01ff). The VCS stack is wired to this page even though the
// register itself only stores the low byte.
func (sp StackPointer) Address() uint16 {
	return 0x0100 | uint16(sp.Value())
}
