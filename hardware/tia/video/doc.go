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

// Package video models the six graphics objects the TIA composites onto
// each scanline: two players, two missiles, one ball and the playfield.
// Each object exposes a Pixel predicate the TIA calls once per visible
// color clock, and an Advance method that steps its own position counter
// (where it has one). The TIA owns resolving priority and collisions
// across objects; this package only knows how to draw itself.
package video
