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

import "strings"

// status register bit positions
const (
	bitCarry            = 0
	bitZero             = 1
	bitInterruptDisable = 2
	bitDecimalMode      = 3
	bitBreak            = 4
	// bit 5 is unused and always reads back as 1
	bitOverflow = 6
	bitNegative = 7
)

// Status is the 6507's 8 bit status register. It is modelled as a packed
// byte with named bit accessors, rather than a struct of booleans, because
// it moves to and from the stack (PHP/PLP, BRK, IRQ) as a single byte.
type Status uint8

// NewStatus returns a status register in its reset state: only the unused
// bit is set (it always reads as 1). Callers that need reset's
// interrupt-disable behaviour call SetInterruptDisable separately.
func NewStatus() Status {
	return Status(0x20)
}

func (s Status) bit(pos uint) bool {
	return uint8(s)&(1<<pos) != 0
}

func (s *Status) setBit(pos uint, v bool) {
	if v {
		*s |= Status(1 << pos)
	} else {
		*s &^= Status(1 << pos)
	}
}

// Carry returns the carry flag.
func (s Status) Carry() bool { return s.bit(bitCarry) }

// SetCarry sets the carry flag.
func (s *Status) SetCarry(v bool) { s.setBit(bitCarry, v) }

// Zero returns the zero flag.
func (s Status) Zero() bool { return s.bit(bitZero) }

// SetZero sets the zero flag.
func (s *Status) SetZero(v bool) { s.setBit(bitZero, v) }

// InterruptDisable returns the interrupt-disable flag.
func (s Status) InterruptDisable() bool { return s.bit(bitInterruptDisable) }

// SetInterruptDisable sets the interrupt-disable flag.
func (s *Status) SetInterruptDisable(v bool) { s.setBit(bitInterruptDisable, v) }

// Decimal returns the decimal-mode flag.
func (s Status) Decimal() bool { return s.bit(bitDecimalMode) }

// SetDecimal sets the decimal-mode flag.
func (s *Status) SetDecimal(v bool) { s.setBit(bitDecimalMode, v) }

// Break returns the break flag.
func (s Status) Break() bool { return s.bit(bitBreak) }

// SetBreak sets the break flag.
func (s *Status) SetBreak(v bool) { s.setBit(bitBreak, v) }

// Overflow returns the overflow flag.
func (s Status) Overflow() bool { return s.bit(bitOverflow) }

// SetOverflow sets the overflow flag.
func (s *Status) SetOverflow(v bool) { s.setBit(bitOverflow, v) }

// Negative returns the negative (sign) flag.
func (s Status) Negative() bool { return s.bit(bitNegative) }

// SetNegative sets the negative (sign) flag.
func (s *Status) SetNegative(v bool) { s.setBit(bitNegative, v) }

// SetZeroNegative is a convenience used by every load/move/logical/shift
// instruction: zero and negative are always set together, from the result.
func (s *Status) SetZeroNegative(result uint8) {
	s.SetZero(result == 0)
	s.SetNegative(result&0x80 != 0)
}

// Value returns the status register as the byte pushed to the stack by
// PHP/BRK. Bit 5 is forced high, matching real 6502 hardware.
func (s Status) Value() uint8 {
	return uint8(s) | 0x20
}

// Load sets the status register from a byte pulled from the stack (PLP,
// RTI). The break flag pulled from the stack is not meaningful in this
// core's context (the VCS's 6507 has no maskable interrupt line wired to
// the cartridge) but is still stored so that a push/pull round-trip is
// exact.
func (s *Status) Load(v uint8) {
	*s = Status(v) | 0x20
}

func (s Status) String() string {
	var b strings.Builder
	flag := func(set bool, c rune) {
		if set {
			b.WriteRune(c)
		} else {
			b.WriteRune(c + ('a' - 'A'))
		}
	}
	flag(s.Negative(), 'N')
	flag(s.Overflow(), 'V')
	b.WriteRune('-')
	flag(s.Break(), 'B')
	flag(s.Decimal(), 'D')
	flag(s.InterruptDisable(), 'I')
	flag(s.Zero(), 'Z')
	flag(s.Carry(), 'C')
	return b.String()
}
