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

package errors

// error messages
const (
	// cpu
	UnimplementedInstruction = "cpu error: unimplemented instruction (%#02x) at (%#04x)"
	InvalidDuringExecution   = "cpu error: invalid operation mid-instruction (%v)"

	// memory / bus
	UnknownRegisterName = "memory error: unknown register (%v)"
	UnrecognisedAddress = "memory error: unrecognised address (%#04x)"

	// cartridges
	CartridgeError       = "cartridge error: %v"
	CartridgeUnsupported = "cartridge error: unsupported cartridge type (%v)"
	CartridgeEjected     = "cartridge error: no cartridge attached"
	CartridgeNotMappable = "cartridge error: bank %d cannot be mapped to that address (%#04x)"
	CassetteError        = "cartridge error: cassette: %v"

	// input
	InputError = "input error: %v"

	// digests / wav capture
	AudioDigest = "audio digest: %v"
	WavWriter   = "wav writer: %v"
)
