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

package registers_test

import (
	"testing"

	"github.com/retrobus/vcs2600/hardware/cpu/registers"
	"github.com/retrobus/vcs2600/test"
)

func TestRegister(t *testing.T) {
	var carry, overflow bool

	r8 := registers.NewRegister(0, "test")
	test.Equate(t, r8.IsZero(), true)
	test.Equate(t, r8.Value(), uint8(0))

	r8.Load(127)
	test.Equate(t, r8.Value(), uint8(127))
	r8.Add(2, false)
	test.Equate(t, r8.Value(), uint8(129))

	// addition boundary
	r8.Load(255)
	test.Equate(t, r8.IsNegative(), true)
	carry, overflow = r8.Add(1, false)
	test.Equate(t, carry, true)
	test.Equate(t, overflow, false)
	test.Equate(t, r8.Value(), uint8(0))
	test.Equate(t, r8.IsZero(), true)

	// signed overflow: 0x7f + 1 = 0x80, carry clear, overflow set
	r8.Load(0x7f)
	carry, overflow = r8.Add(1, false)
	test.Equate(t, carry, false)
	test.Equate(t, overflow, true)
	test.Equate(t, r8.Value(), uint8(0x80))
}

func TestSubtract(t *testing.T) {
	r8 := registers.NewRegister(10, "test")
	carry, _ := r8.Subtract(3, true)
	test.Equate(t, r8.Value(), uint8(7))
	test.Equate(t, carry, true)

	// borrow: carry clear means a borrow occurs
	r8.Load(3)
	carry, _ = r8.Subtract(5, true)
	test.Equate(t, carry, false)
	test.Equate(t, r8.Value(), uint8(0xfe))
}

func TestShiftsAndRotates(t *testing.T) {
	r8 := registers.NewRegister(0x81, "test")
	carry := r8.ASL()
	test.Equate(t, carry, true)
	test.Equate(t, r8.Value(), uint8(0x02))

	r8.Load(0x01)
	carry = r8.LSR()
	test.Equate(t, carry, true)
	test.Equate(t, r8.Value(), uint8(0x00))

	r8.Load(0x80)
	carry = r8.ROL(true)
	test.Equate(t, carry, true)
	test.Equate(t, r8.Value(), uint8(0x01))

	r8.Load(0x01)
	carry = r8.ROR(true)
	test.Equate(t, carry, true)
	test.Equate(t, r8.Value(), uint8(0x80))
}
