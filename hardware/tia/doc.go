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

// Package tia emulates the Television Interface Adaptor: a 228 color-clock
// scanline state machine that composites six graphics objects (see
// hardware/tia/video), tracks their pairwise collisions, and exposes a
// register interface the bus decoder routes TIA addresses to.
//
// The TIA runs three times per MPU cycle (see hardware's master clock
// loop) and is the component that stalls and releases the MPU's readiness
// flag for WSYNC.
package tia
