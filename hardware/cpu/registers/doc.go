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

// Package registers implements the 6507's register file: the three 8-bit
// general registers (A, X, Y), the program counter, the stack pointer and
// the status register.
//
// Register holds the arithmetic and logic operations shared by A, X and Y.
// Status is a single packed byte with named bit accessors rather than a
// struct of booleans, since it is pushed to and pulled from the stack as a
// byte and is most naturally manipulated that way.
package registers
