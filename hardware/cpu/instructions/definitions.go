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

package instructions

// Definitions holds every documented 6502 opcode, ordered by opcode value.
var Definitions []Definition

var byOpCode map[uint8]Definition

// table mirrors the reference 6502 opcode matrix. Page-crossing penalties
// (PageSensitive) apply to indexed and (ind),Y reads; they never apply to
// the read-modify-write or store variants of the same addressing mode.
var table = []Definition{
	// ADC
	{0x69, ADC, 2, 2, Immediate, false, Read},
	{0x65, ADC, 2, 3, ZeroPage, false, Read},
	{0x75, ADC, 2, 4, ZeroPageIndexedX, false, Read},
	{0x6d, ADC, 3, 4, Absolute, false, Read},
	{0x7d, ADC, 3, 4, AbsoluteIndexedX, true, Read},
	{0x79, ADC, 3, 4, AbsoluteIndexedY, true, Read},
	{0x61, ADC, 2, 6, IndexedIndirect, false, Read},
	{0x71, ADC, 2, 5, IndirectIndexed, true, Read},

	// AND
	{0x29, AND, 2, 2, Immediate, false, Read},
	{0x25, AND, 2, 3, ZeroPage, false, Read},
	{0x35, AND, 2, 4, ZeroPageIndexedX, false, Read},
	{0x2d, AND, 3, 4, Absolute, false, Read},
	{0x3d, AND, 3, 4, AbsoluteIndexedX, true, Read},
	{0x39, AND, 3, 4, AbsoluteIndexedY, true, Read},
	{0x21, AND, 2, 6, IndexedIndirect, false, Read},
	{0x31, AND, 2, 5, IndirectIndexed, true, Read},

	// ASL
	{0x0a, ASL, 1, 2, Accumulator, false, Modify},
	{0x06, ASL, 2, 5, ZeroPage, false, Modify},
	{0x16, ASL, 2, 6, ZeroPageIndexedX, false, Modify},
	{0x0e, ASL, 3, 6, Absolute, false, Modify},
	{0x1e, ASL, 3, 7, AbsoluteIndexedX, false, Modify},

	// branches (all Relative/Flow; base 2 cycles, +1 taken, +1 more page-cross)
	{0x90, BCC, 2, 2, Relative, false, Flow},
	{0xb0, BCS, 2, 2, Relative, false, Flow},
	{0xf0, BEQ, 2, 2, Relative, false, Flow},
	{0x30, BMI, 2, 2, Relative, false, Flow},
	{0xd0, BNE, 2, 2, Relative, false, Flow},
	{0x10, BPL, 2, 2, Relative, false, Flow},
	{0x50, BVC, 2, 2, Relative, false, Flow},
	{0x70, BVS, 2, 2, Relative, false, Flow},

	// BIT
	{0x24, BIT, 2, 3, ZeroPage, false, Read},
	{0x2c, BIT, 3, 4, Absolute, false, Read},

	// BRK
	{0x00, BRK, 1, 7, Implied, false, Interrupt},

	// flag clear/set
	{0x18, CLC, 1, 2, Implied, false, Read},
	{0xd8, CLD, 1, 2, Implied, false, Read},
	{0x58, CLI, 1, 2, Implied, false, Read},
	{0xb8, CLV, 1, 2, Implied, false, Read},
	{0x38, SEC, 1, 2, Implied, false, Read},
	{0xf8, SED, 1, 2, Implied, false, Read},
	{0x78, SEI, 1, 2, Implied, false, Read},

	// CMP
	{0xc9, CMP, 2, 2, Immediate, false, Read},
	{0xc5, CMP, 2, 3, ZeroPage, false, Read},
	{0xd5, CMP, 2, 4, ZeroPageIndexedX, false, Read},
	{0xcd, CMP, 3, 4, Absolute, false, Read},
	{0xdd, CMP, 3, 4, AbsoluteIndexedX, true, Read},
	{0xd9, CMP, 3, 4, AbsoluteIndexedY, true, Read},
	{0xc1, CMP, 2, 6, IndexedIndirect, false, Read},
	{0xd1, CMP, 2, 5, IndirectIndexed, true, Read},

	// CPX / CPY
	{0xe0, CPX, 2, 2, Immediate, false, Read},
	{0xe4, CPX, 2, 3, ZeroPage, false, Read},
	{0xec, CPX, 3, 4, Absolute, false, Read},
	{0xc0, CPY, 2, 2, Immediate, false, Read},
	{0xc4, CPY, 2, 3, ZeroPage, false, Read},
	{0xcc, CPY, 3, 4, Absolute, false, Read},

	// DEC
	{0xc6, DEC, 2, 5, ZeroPage, false, Modify},
	{0xd6, DEC, 2, 6, ZeroPageIndexedX, false, Modify},
	{0xce, DEC, 3, 6, Absolute, false, Modify},
	{0xde, DEC, 3, 7, AbsoluteIndexedX, false, Modify},

	{0xca, DEX, 1, 2, Implied, false, Read},
	{0x88, DEY, 1, 2, Implied, false, Read},

	// EOR
	{0x49, EOR, 2, 2, Immediate, false, Read},
	{0x45, EOR, 2, 3, ZeroPage, false, Read},
	{0x55, EOR, 2, 4, ZeroPageIndexedX, false, Read},
	{0x4d, EOR, 3, 4, Absolute, false, Read},
	{0x5d, EOR, 3, 4, AbsoluteIndexedX, true, Read},
	{0x59, EOR, 3, 4, AbsoluteIndexedY, true, Read},
	{0x41, EOR, 2, 6, IndexedIndirect, false, Read},
	{0x51, EOR, 2, 5, IndirectIndexed, true, Read},

	// INC
	{0xe6, INC, 2, 5, ZeroPage, false, Modify},
	{0xf6, INC, 2, 6, ZeroPageIndexedX, false, Modify},
	{0xee, INC, 3, 6, Absolute, false, Modify},
	{0xfe, INC, 3, 7, AbsoluteIndexedX, false, Modify},

	{0xe8, INX, 1, 2, Implied, false, Read},
	{0xc8, INY, 1, 2, Implied, false, Read},

	// JMP / JSR
	{0x4c, JMP, 3, 3, Absolute, false, Flow},
	{0x6c, JMP, 3, 5, Indirect, false, Flow},
	{0x20, JSR, 3, 6, Absolute, false, Subroutine},

	// LDA
	{0xa9, LDA, 2, 2, Immediate, false, Read},
	{0xa5, LDA, 2, 3, ZeroPage, false, Read},
	{0xb5, LDA, 2, 4, ZeroPageIndexedX, false, Read},
	{0xad, LDA, 3, 4, Absolute, false, Read},
	{0xbd, LDA, 3, 4, AbsoluteIndexedX, true, Read},
	{0xb9, LDA, 3, 4, AbsoluteIndexedY, true, Read},
	{0xa1, LDA, 2, 6, IndexedIndirect, false, Read},
	{0xb1, LDA, 2, 5, IndirectIndexed, true, Read},

	// LDX
	{0xa2, LDX, 2, 2, Immediate, false, Read},
	{0xa6, LDX, 2, 3, ZeroPage, false, Read},
	{0xb6, LDX, 2, 4, ZeroPageIndexedY, false, Read},
	{0xae, LDX, 3, 4, Absolute, false, Read},
	{0xbe, LDX, 3, 4, AbsoluteIndexedY, true, Read},

	// LDY
	{0xa0, LDY, 2, 2, Immediate, false, Read},
	{0xa4, LDY, 2, 3, ZeroPage, false, Read},
	{0xb4, LDY, 2, 4, ZeroPageIndexedX, false, Read},
	{0xac, LDY, 3, 4, Absolute, false, Read},
	{0xbc, LDY, 3, 4, AbsoluteIndexedX, true, Read},

	// LSR
	{0x4a, LSR, 1, 2, Accumulator, false, Modify},
	{0x46, LSR, 2, 5, ZeroPage, false, Modify},
	{0x56, LSR, 2, 6, ZeroPageIndexedX, false, Modify},
	{0x4e, LSR, 3, 6, Absolute, false, Modify},
	{0x5e, LSR, 3, 7, AbsoluteIndexedX, false, Modify},

	{0xea, NOP, 1, 2, Implied, false, Read},

	// ORA
	{0x09, ORA, 2, 2, Immediate, false, Read},
	{0x05, ORA, 2, 3, ZeroPage, false, Read},
	{0x15, ORA, 2, 4, ZeroPageIndexedX, false, Read},
	{0x0d, ORA, 3, 4, Absolute, false, Read},
	{0x1d, ORA, 3, 4, AbsoluteIndexedX, true, Read},
	{0x19, ORA, 3, 4, AbsoluteIndexedY, true, Read},
	{0x01, ORA, 2, 6, IndexedIndirect, false, Read},
	{0x11, ORA, 2, 5, IndirectIndexed, true, Read},

	// stack ops
	{0x48, PHA, 1, 3, Implied, false, Write},
	{0x08, PHP, 1, 3, Implied, false, Write},
	{0x68, PLA, 1, 4, Implied, false, Read},
	{0x28, PLP, 1, 4, Implied, false, Read},

	// ROL / ROR
	{0x2a, ROL, 1, 2, Accumulator, false, Modify},
	{0x26, ROL, 2, 5, ZeroPage, false, Modify},
	{0x36, ROL, 2, 6, ZeroPageIndexedX, false, Modify},
	{0x2e, ROL, 3, 6, Absolute, false, Modify},
	{0x3e, ROL, 3, 7, AbsoluteIndexedX, false, Modify},
	{0x6a, ROR, 1, 2, Accumulator, false, Modify},
	{0x66, ROR, 2, 5, ZeroPage, false, Modify},
	{0x76, ROR, 2, 6, ZeroPageIndexedX, false, Modify},
	{0x6e, ROR, 3, 6, Absolute, false, Modify},
	{0x7e, ROR, 3, 7, AbsoluteIndexedX, false, Modify},

	{0x40, RTI, 1, 6, Implied, false, Subroutine},
	{0x60, RTS, 1, 6, Implied, false, Subroutine},

	// SBC
	{0xe9, SBC, 2, 2, Immediate, false, Read},
	{0xe5, SBC, 2, 3, ZeroPage, false, Read},
	{0xf5, SBC, 2, 4, ZeroPageIndexedX, false, Read},
	{0xed, SBC, 3, 4, Absolute, false, Read},
	{0xfd, SBC, 3, 4, AbsoluteIndexedX, true, Read},
	{0xf9, SBC, 3, 4, AbsoluteIndexedY, true, Read},
	{0xe1, SBC, 2, 6, IndexedIndirect, false, Read},
	{0xf1, SBC, 2, 5, IndirectIndexed, true, Read},

	// STA
	{0x85, STA, 2, 3, ZeroPage, false, Write},
	{0x95, STA, 2, 4, ZeroPageIndexedX, false, Write},
	{0x8d, STA, 3, 4, Absolute, false, Write},
	{0x9d, STA, 3, 5, AbsoluteIndexedX, false, Write},
	{0x99, STA, 3, 5, AbsoluteIndexedY, false, Write},
	{0x81, STA, 2, 6, IndexedIndirect, false, Write},
	{0x91, STA, 2, 6, IndirectIndexed, false, Write},

	// STX / STY
	{0x86, STX, 2, 3, ZeroPage, false, Write},
	{0x96, STX, 2, 4, ZeroPageIndexedY, false, Write},
	{0x8e, STX, 3, 4, Absolute, false, Write},
	{0x84, STY, 2, 3, ZeroPage, false, Write},
	{0x94, STY, 2, 4, ZeroPageIndexedX, false, Write},
	{0x8c, STY, 3, 4, Absolute, false, Write},

	// register transfers
	{0xaa, TAX, 1, 2, Implied, false, Read},
	{0xa8, TAY, 1, 2, Implied, false, Read},
	{0xba, TSX, 1, 2, Implied, false, Read},
	{0x8a, TXA, 1, 2, Implied, false, Read},
	{0x9a, TXS, 1, 2, Implied, false, Read},
	{0x98, TYA, 1, 2, Implied, false, Read},
}

func init() {
	Definitions = make([]Definition, len(table))
	copy(Definitions, table)

	byOpCode = make(map[uint8]Definition, len(table))
	for _, defn := range table {
		if _, clash := byOpCode[defn.OpCode]; clash {
			panic("duplicate opcode in instruction table")
		}
		byOpCode[defn.OpCode] = defn
	}

	if len(byOpCode) != 151 {
		panic("instruction table does not define all 151 documented opcodes")
	}
}
