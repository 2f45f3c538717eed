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

import "fmt"

// Operator identifies the operation an opcode performs. Several opcodes,
// each with a different addressing mode, can share the same Operator.
type Operator int

// The 56 documented 6502 mnemonics.
const (
	ADC Operator = iota
	AND
	ASL
	BCC
	BCS
	BEQ
	BIT
	BMI
	BNE
	BPL
	BRK
	BVC
	BVS
	CLC
	CLD
	CLI
	CLV
	CMP
	CPX
	CPY
	DEC
	DEX
	DEY
	EOR
	INC
	INX
	INY
	JMP
	JSR
	LDA
	LDX
	LDY
	LSR
	NOP
	ORA
	PHA
	PHP
	PLA
	PLP
	ROL
	ROR
	RTI
	RTS
	SBC
	SEC
	SED
	SEI
	STA
	STX
	STY
	TAX
	TAY
	TSX
	TXA
	TXS
	TYA
)

func (op Operator) String() string {
	switch op {
	case ADC:
		return "adc"
	case AND:
		return "and"
	case ASL:
		return "asl"
	case BCC:
		return "bcc"
	case BCS:
		return "bcs"
	case BEQ:
		return "beq"
	case BIT:
		return "bit"
	case BMI:
		return "bmi"
	case BNE:
		return "bne"
	case BPL:
		return "bpl"
	case BRK:
		return "brk"
	case BVC:
		return "bvc"
	case BVS:
		return "bvs"
	case CLC:
		return "clc"
	case CLD:
		return "cld"
	case CLI:
		return "cli"
	case CLV:
		return "clv"
	case CMP:
		return "cmp"
	case CPX:
		return "cpx"
	case CPY:
		return "cpy"
	case DEC:
		return "dec"
	case DEX:
		return "dex"
	case DEY:
		return "dey"
	case EOR:
		return "eor"
	case INC:
		return "inc"
	case INX:
		return "inx"
	case INY:
		return "iny"
	case JMP:
		return "jmp"
	case JSR:
		return "jsr"
	case LDA:
		return "lda"
	case LDX:
		return "ldx"
	case LDY:
		return "ldy"
	case LSR:
		return "lsr"
	case NOP:
		return "nop"
	case ORA:
		return "ora"
	case PHA:
		return "pha"
	case PHP:
		return "php"
	case PLA:
		return "pla"
	case PLP:
		return "plp"
	case ROL:
		return "rol"
	case ROR:
		return "ror"
	case RTI:
		return "rti"
	case RTS:
		return "rts"
	case SBC:
		return "sbc"
	case SEC:
		return "sec"
	case SED:
		return "sed"
	case SEI:
		return "sei"
	case STA:
		return "sta"
	case STX:
		return "stx"
	case STY:
		return "sty"
	case TAX:
		return "tax"
	case TAY:
		return "tay"
	case TSX:
		return "tsx"
	case TXA:
		return "txa"
	case TXS:
		return "txs"
	case TYA:
		return "tya"
	default:
		panic(fmt.Sprintf("unrecognised operator %d", op))
	}
}
