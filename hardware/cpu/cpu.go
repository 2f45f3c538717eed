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

package cpu

import (
	"fmt"

	"github.com/retrobus/vcs2600/hardware/cpu/execution"
	"github.com/retrobus/vcs2600/hardware/cpu/instructions"
	"github.com/retrobus/vcs2600/hardware/cpu/registers"
	"github.com/retrobus/vcs2600/hardware/memory/bus"
	"github.com/retrobus/vcs2600/logger"
)

// CPU implements the 6507 found in the Atari VCS. Register logic is
// implemented by the registers sub-package; decoding data is implemented by
// the instructions sub-package.
type CPU struct {
	PC     registers.ProgramCounter
	A      registers.Register
	X      registers.Register
	Y      registers.Register
	SP     registers.StackPointer
	Status registers.Status

	// scratch register used by read-modify-write operators so the real A/X/Y
	// registers aren't touched until the final store
	acc registers.Register

	mem bus.CPUBus

	// cycleCallback runs once per clock cycle of the current instruction. The
	// VCS's master clock loop uses this to run the TIA three times for every
	// CPU cycle.
	cycleCallback func() error

	// readyFlg mirrors pin 3 of the real 6507. While false ExecuteInstruction
	// does nothing but still calls cycleCallback, so the rest of the machine
	// keeps running - this is how the TIA stalls the CPU on WSYNC.
	readyFlg bool

	// LastResult records detail about the most recently executed (or
	// currently executing) instruction. See the execution package.
	LastResult execution.Result

	// NoFlowControl disables the effect of branches, jumps, subroutine calls
	// and interrupts, while still decoding and timing them correctly. Used by
	// disassemblers that need to visit every byte of a program.
	NoFlowControl bool
}

// NewCPU returns a CPU connected to mem. The CPU is not reset; call Reset
// before use.
func NewCPU(mem bus.CPUBus) *CPU {
	return &CPU{
		mem:    mem,
		PC:     registers.NewProgramCounter(0),
		A:      registers.NewRegister(0, "A"),
		X:      registers.NewRegister(0, "X"),
		Y:      registers.NewRegister(0, "Y"),
		SP:     registers.NewStackPointer(0xff),
		Status: registers.NewStatus(),
		acc:    registers.NewRegister(0, "acc"),
	}
}

// Plumb connects a new bus to the CPU, keeping register state intact.
func (mc *CPU) Plumb(mem bus.CPUBus) {
	mc.mem = mem
}

func (mc *CPU) String() string {
	return fmt.Sprintf("PC=%s A=%s X=%s Y=%s SP=%s %s", mc.PC, mc.A, mc.X, mc.Y, mc.SP, mc.Status)
}

// Reset reinitialises every register to the 6507's power-on state. It does
// not load PC with the reset vector; call LoadPCIndirect afterwards.
func (mc *CPU) Reset() {
	mc.LastResult.Reset()
	mc.PC.Load(0)
	mc.A.Load(0)
	mc.X.Load(0)
	mc.Y.Load(0)
	mc.SP.Load(0xff)
	mc.Status = registers.NewStatus()
	mc.readyFlg = true
	mc.cycleCallback = nil
}

// Ready reports whether the CPU will advance on the next call to
// ExecuteInstruction. Implements the readiness-flag half of the interface
// the TIA uses to stall/release the MPU for WSYNC.
func (mc *CPU) Ready() bool { return mc.readyFlg }

// SetReady sets the readiness flag.
func (mc *CPU) SetReady(v bool) { mc.readyFlg = v }

// HasReset reports whether the CPU has recently been reset and not yet
// executed an instruction.
func (mc *CPU) HasReset() bool {
	return mc.LastResult.Address == 0 && mc.LastResult.Defn == nil
}

// LoadPCIndirect loads the 16 bit little-endian value found at
// indirectAddress into PC. Used to honour the reset/IRQ vectors.
func (mc *CPU) LoadPCIndirect(indirectAddress uint16) error {
	lo, err := mc.mem.Read(indirectAddress)
	if err != nil {
		return err
	}
	hi, err := mc.mem.Read(indirectAddress + 1)
	if err != nil {
		return err
	}
	mc.PC.Load(uint16(hi)<<8 | uint16(lo))
	return nil
}

func (mc *CPU) tick() error {
	mc.LastResult.Cycles++
	if mc.cycleCallback == nil {
		return nil
	}
	return mc.cycleCallback()
}

func (mc *CPU) read(address uint16) (uint8, error) {
	v, err := mc.mem.Read(address)
	if err != nil {
		return 0, err
	}
	if err := mc.tick(); err != nil {
		return 0, err
	}
	return v, nil
}

func (mc *CPU) write(address uint16, v uint8) error {
	if err := mc.mem.Write(address, v); err != nil {
		return err
	}
	return mc.tick()
}

// readPC reads the byte at PC, advances PC, and counts it as a decoded byte.
func (mc *CPU) readPC() (uint8, error) {
	v, err := mc.mem.Read(mc.PC.Value())
	if err != nil {
		return 0, err
	}
	mc.PC.Add(1)
	mc.LastResult.ByteCount++
	if err := mc.tick(); err != nil {
		return 0, err
	}
	return v, nil
}

func (mc *CPU) read16(address uint16) (uint16, error) {
	lo, err := mc.read(address)
	if err != nil {
		return 0, err
	}
	hi, err := mc.read(address + 1)
	if err != nil {
		return 0, err
	}
	return uint16(hi)<<8 | uint16(lo), nil
}

// branch applies a relative-addressing offset to PC if flag is true,
// counting the extra cycle for the branch taken and for crossing a page.
func (mc *CPU) branch(flag bool, offset uint16) error {
	if mc.NoFlowControl {
		return nil
	}
	if offset&0x80 != 0 {
		offset |= 0xff00
	}
	mc.LastResult.BranchSuccess = flag
	if !flag {
		return nil
	}

	oldPC := mc.PC.Value()
	mc.PC.Add(offset)

	if err := mc.tick(); err != nil {
		return err
	}

	if oldPC&0xff00 != mc.PC.Value()&0xff00 {
		mc.LastResult.PageFault = true
		if err := mc.tick(); err != nil {
			return err
		}
	}

	return nil
}

// NilCycleCallback is a do-nothing callback for callers that don't need to
// observe individual cycles.
func NilCycleCallback() error { return nil }

// ExecuteInstruction decodes and runs a single instruction, calling
// cycleCallback once per clock cycle so the rest of the console can run in
// step.
func (mc *CPU) ExecuteInstruction(cycleCallback func() error) error {
	if !mc.readyFlg {
		return cycleCallback()
	}

	mc.cycleCallback = cycleCallback
	mc.LastResult.Reset()
	mc.LastResult.Address = mc.PC.Value()

	opcode, err := mc.readPC()
	if err != nil {
		return err
	}

	defn, ok := instructions.GetDefinition(opcode)
	if !ok {
		// an unknown opcode decodes to a 1-cycle no-op: the fetch above
		// already spent that cycle, so there's nothing left to do but log
		// it, leave the (zeroed) result record as-is, and let the next
		// ExecuteInstruction call carry on from the following byte.
		mc.LastResult.ByteCount = 1
		mc.LastResult.Final = true
		logger.Logf("CPU", "undocumented opcode (%#02x) at (%#04x)", opcode, mc.PC.Value()-1)
		return nil
	}
	mc.LastResult.Defn = &defn

	var address uint16
	var value uint8
	var zeroPage bool

	switch defn.AddressingMode {
	case instructions.Implied, instructions.Accumulator:
		if _, err := mc.read(mc.PC.Value()); err != nil {
			return err
		}

	case instructions.Immediate:
		value, err = mc.readPC()
		if err != nil {
			return err
		}

	case instructions.Relative:
		lo, err := mc.readPC()
		if err != nil {
			return err
		}
		address = uint16(lo)

	case instructions.Absolute:
		if defn.Operator != instructions.JSR {
			address, err = mc.read16PC()
			if err != nil {
				return err
			}
		}

	case instructions.ZeroPage:
		zeroPage = true
		lo, err := mc.readPC()
		if err != nil {
			return err
		}
		address = uint16(lo)

	case instructions.Indirect:
		indirect, err := mc.read16PC()
		if err != nil {
			return err
		}
		// JMP (ind) does not implement the page-wrap bug: the high byte is
		// always fetched from indirect+1, even across a page boundary.
		address, err = mc.read16(indirect)
		if err != nil {
			return err
		}

	case instructions.IndexedIndirect:
		base, err := mc.readPC()
		if err != nil {
			return err
		}
		if _, err := mc.read(uint16(base)); err != nil {
			return err
		}
		indirect := base + mc.X.Value()
		address, err = mc.read16(uint16(indirect))
		if err != nil {
			return err
		}

	case instructions.IndirectIndexed:
		base, err := mc.readPC()
		if err != nil {
			return err
		}
		indirect, err := mc.read16(uint16(base))
		if err != nil {
			return err
		}
		address = indirect + uint16(mc.Y.Value())
		pageFault := defn.PageSensitive && address&0xff00 != indirect&0xff00
		if pageFault || defn.Effect == instructions.Write || defn.Effect == instructions.Modify {
			if _, err := mc.read((indirect & 0xff00) | (address & 0x00ff)); err != nil {
				return err
			}
		}
		mc.LastResult.PageFault = pageFault

	case instructions.AbsoluteIndexedX:
		address, err = mc.absoluteIndexed(mc.X.Value(), defn)
		if err != nil {
			return err
		}

	case instructions.AbsoluteIndexedY:
		address, err = mc.absoluteIndexed(mc.Y.Value(), defn)
		if err != nil {
			return err
		}

	case instructions.ZeroPageIndexedX:
		zeroPage = true
		address, err = mc.zeroPageIndexed(mc.X.Value())
		if err != nil {
			return err
		}

	case instructions.ZeroPageIndexedY:
		zeroPage = true
		address, err = mc.zeroPageIndexed(mc.Y.Value())
		if err != nil {
			return err
		}

	default:
		return fmt.Errorf("cpu: unknown addressing mode for %s", defn.Operator)
	}

	if defn.AddressingMode != instructions.Implied && defn.AddressingMode != instructions.Accumulator && defn.AddressingMode != instructions.Immediate {
		if defn.Effect == instructions.Read || defn.Effect == instructions.Modify {
			if zeroPage {
				value, err = mc.read(address & 0x00ff)
			} else {
				value, err = mc.read(address)
			}
			if err != nil {
				return err
			}

			if defn.Effect == instructions.Modify {
				// phantom write of the unmodified value
				if err := mc.write(address, value); err != nil {
					return err
				}
			}
		}
	}

	if err := mc.execute(defn, &address, &value); err != nil {
		return err
	}

	if defn.Effect == instructions.Modify && defn.AddressingMode != instructions.Accumulator {
		if err := mc.write(address, value); err != nil {
			return err
		}
	}

	if mc.LastResult.Defn != nil {
		mc.LastResult.Final = true
	}

	return nil
}

func (mc *CPU) read16PC() (uint16, error) {
	lo, err := mc.readPC()
	if err != nil {
		return 0, err
	}
	hi, err := mc.readPC()
	if err != nil {
		return 0, err
	}
	return uint16(hi)<<8 | uint16(lo), nil
}

func (mc *CPU) absoluteIndexed(index uint8, defn instructions.Definition) (uint16, error) {
	base, err := mc.read16PC()
	if err != nil {
		return 0, err
	}
	address := base + uint16(index)
	pageFault := defn.PageSensitive && address&0xff00 != base&0xff00
	if pageFault || defn.Effect == instructions.Write || defn.Effect == instructions.Modify {
		if _, err := mc.read((base & 0xff00) | (address & 0x00ff)); err != nil {
			return 0, err
		}
	}
	mc.LastResult.PageFault = pageFault
	return address, nil
}

func (mc *CPU) zeroPageIndexed(index uint8) (uint16, error) {
	base, err := mc.readPC()
	if err != nil {
		return 0, err
	}
	if _, err := mc.read(uint16(base)); err != nil {
		return 0, err
	}
	return uint16(base + index), nil
}

// execute performs the effect of defn.Operator, reading *value and *address
// as set up by the addressing-mode switch above, and storing results back
// into them for Modify/Write instructions.
func (mc *CPU) execute(defn instructions.Definition, address *uint16, value *uint8) error {
	switch defn.Operator {
	case instructions.NOP:
		// NOP with an operand still needs to read it, which the caller
		// already did.

	case instructions.CLI:
		mc.Status.SetInterruptDisable(false)
	case instructions.SEI:
		mc.Status.SetInterruptDisable(true)
	case instructions.CLC:
		mc.Status.SetCarry(false)
	case instructions.SEC:
		mc.Status.SetCarry(true)
	case instructions.CLD:
		mc.Status.SetDecimal(false)
	case instructions.SED:
		mc.Status.SetDecimal(true)
	case instructions.CLV:
		mc.Status.SetOverflow(false)

	case instructions.PHA:
		return mc.push(mc.A.Value())
	case instructions.PHP:
		return mc.push(mc.Status.Value())
	case instructions.PLA:
		v, err := mc.pull()
		if err != nil {
			return err
		}
		mc.A.Load(v)
		mc.Status.SetZeroNegative(v)
	case instructions.PLP:
		v, err := mc.pull()
		if err != nil {
			return err
		}
		mc.Status.Load(v)

	case instructions.TAX:
		mc.X.Load(mc.A.Value())
		mc.Status.SetZeroNegative(mc.X.Value())
	case instructions.TAY:
		mc.Y.Load(mc.A.Value())
		mc.Status.SetZeroNegative(mc.Y.Value())
	case instructions.TXA:
		mc.A.Load(mc.X.Value())
		mc.Status.SetZeroNegative(mc.A.Value())
	case instructions.TYA:
		mc.A.Load(mc.Y.Value())
		mc.Status.SetZeroNegative(mc.A.Value())
	case instructions.TSX:
		mc.X.Load(mc.SP.Value())
		mc.Status.SetZeroNegative(mc.X.Value())
	case instructions.TXS:
		mc.SP.Load(mc.X.Value())

	case instructions.EOR:
		mc.A.EOR(*value)
		mc.Status.SetZeroNegative(mc.A.Value())
	case instructions.ORA:
		mc.A.ORA(*value)
		mc.Status.SetZeroNegative(mc.A.Value())
	case instructions.AND:
		mc.A.AND(*value)
		mc.Status.SetZeroNegative(mc.A.Value())

	case instructions.LDA:
		mc.A.Load(*value)
		mc.Status.SetZeroNegative(mc.A.Value())
	case instructions.LDX:
		mc.X.Load(*value)
		mc.Status.SetZeroNegative(mc.X.Value())
	case instructions.LDY:
		mc.Y.Load(*value)
		mc.Status.SetZeroNegative(mc.Y.Value())

	case instructions.STA:
		return mc.write(*address, mc.A.Value())
	case instructions.STX:
		return mc.write(*address, mc.X.Value())
	case instructions.STY:
		return mc.write(*address, mc.Y.Value())

	case instructions.INX:
		mc.X.Add(1, false)
		mc.Status.SetZeroNegative(mc.X.Value())
	case instructions.INY:
		mc.Y.Add(1, false)
		mc.Status.SetZeroNegative(mc.Y.Value())
	case instructions.DEX:
		mc.X.Add(0xff, false)
		mc.Status.SetZeroNegative(mc.X.Value())
	case instructions.DEY:
		mc.Y.Add(0xff, false)
		mc.Status.SetZeroNegative(mc.Y.Value())

	case instructions.ASL:
		r := mc.shiftTarget(defn, *value)
		mc.Status.SetCarry(r.ASL())
		mc.Status.SetZeroNegative(r.Value())
		*value = r.Value()
	case instructions.LSR:
		r := mc.shiftTarget(defn, *value)
		mc.Status.SetCarry(r.LSR())
		mc.Status.SetZeroNegative(r.Value())
		*value = r.Value()
	case instructions.ROL:
		r := mc.shiftTarget(defn, *value)
		mc.Status.SetCarry(r.ROL(mc.Status.Carry()))
		mc.Status.SetZeroNegative(r.Value())
		*value = r.Value()
	case instructions.ROR:
		r := mc.shiftTarget(defn, *value)
		mc.Status.SetCarry(r.ROR(mc.Status.Carry()))
		mc.Status.SetZeroNegative(r.Value())
		*value = r.Value()

	case instructions.INC:
		mc.acc.Load(*value)
		mc.acc.Add(1, false)
		mc.Status.SetZeroNegative(mc.acc.Value())
		*value = mc.acc.Value()
	case instructions.DEC:
		mc.acc.Load(*value)
		mc.acc.Add(0xff, false)
		mc.Status.SetZeroNegative(mc.acc.Value())
		*value = mc.acc.Value()

	case instructions.ADC:
		if mc.Status.Decimal() {
			carry, zero, overflow, sign := mc.A.AddDecimal(*value, mc.Status.Carry())
			mc.Status.SetCarry(carry)
			mc.Status.SetZero(zero)
			mc.Status.SetOverflow(overflow)
			mc.Status.SetNegative(sign)
		} else {
			carry, overflow := mc.A.Add(*value, mc.Status.Carry())
			mc.Status.SetCarry(carry)
			mc.Status.SetOverflow(overflow)
			mc.Status.SetZeroNegative(mc.A.Value())
		}
	case instructions.SBC:
		if mc.Status.Decimal() {
			carry, zero, overflow, sign := mc.A.SubtractDecimal(*value, mc.Status.Carry())
			mc.Status.SetCarry(carry)
			mc.Status.SetZero(zero)
			mc.Status.SetOverflow(overflow)
			mc.Status.SetNegative(sign)
		} else {
			carry, overflow := mc.A.Subtract(*value, mc.Status.Carry())
			mc.Status.SetCarry(carry)
			mc.Status.SetOverflow(overflow)
			mc.Status.SetZeroNegative(mc.A.Value())
		}

	case instructions.CMP:
		mc.compare(mc.A.Value(), *value)
	case instructions.CPX:
		mc.compare(mc.X.Value(), *value)
	case instructions.CPY:
		mc.compare(mc.Y.Value(), *value)

	case instructions.BIT:
		mc.Status.SetNegative(*value&0x80 != 0)
		mc.Status.SetOverflow(*value&0x40 != 0)
		mc.Status.SetZero(*value&mc.A.Value() == 0)

	case instructions.JMP:
		if !mc.NoFlowControl {
			mc.PC.Load(*address)
		}

	case instructions.BCC:
		return mc.branch(!mc.Status.Carry(), *address)
	case instructions.BCS:
		return mc.branch(mc.Status.Carry(), *address)
	case instructions.BEQ:
		return mc.branch(mc.Status.Zero(), *address)
	case instructions.BMI:
		return mc.branch(mc.Status.Negative(), *address)
	case instructions.BNE:
		return mc.branch(!mc.Status.Zero(), *address)
	case instructions.BPL:
		return mc.branch(!mc.Status.Negative(), *address)
	case instructions.BVC:
		return mc.branch(!mc.Status.Overflow(), *address)
	case instructions.BVS:
		return mc.branch(mc.Status.Overflow(), *address)

	case instructions.JSR:
		lo, err := mc.readPC()
		if err != nil {
			return err
		}
		if err := mc.tick(); err != nil { // internal operation
			return err
		}
		if err := mc.push(uint8(mc.PC.Value() >> 8)); err != nil {
			return err
		}
		if err := mc.push(uint8(mc.PC.Value())); err != nil {
			return err
		}
		hi, err := mc.readPC()
		if err != nil {
			return err
		}
		*address = uint16(hi)<<8 | uint16(lo)
		if !mc.NoFlowControl {
			mc.PC.Load(*address)
		}

	case instructions.RTS:
		vals, err := mc.pullMulti(2)
		if err != nil {
			return err
		}
		if err := mc.tick(); err != nil { // increment PC, the hardware's extra cycle
			return err
		}
		if !mc.NoFlowControl {
			mc.PC.Load(uint16(vals[1])<<8 | uint16(vals[0]))
			mc.PC.Add(1)
		}

	case instructions.BRK:
		mc.PC.Add(1) // BRK's signature byte
		if err := mc.push(uint8(mc.PC.Value() >> 8)); err != nil {
			return err
		}
		if err := mc.push(uint8(mc.PC.Value())); err != nil {
			return err
		}
		mc.Status.SetBreak(true)
		if err := mc.push(mc.Status.Value()); err != nil {
			return err
		}
		vector, err := mc.read16(brkVector)
		if err != nil {
			return err
		}
		if !mc.NoFlowControl {
			mc.PC.Load(vector)
		}

	case instructions.RTI:
		vals, err := mc.pullMulti(3)
		if err != nil {
			return err
		}
		if !mc.NoFlowControl {
			mc.Status.Load(vals[0])
			mc.PC.Load(uint16(vals[2])<<8 | uint16(vals[1]))
		}

	default:
		return fmt.Errorf("cpu: unknown operator (%s)", defn.Operator)
	}

	return nil
}

// brkVector is the reset-region address BRK reads its destination from. The
// VCS's 6507 has no maskable-interrupt line wired to the cartridge, so BRK
// on this hardware always ends up back at the reset vector's neighbour.
const brkVector = 0xfffe

func (mc *CPU) shiftTarget(defn instructions.Definition, value uint8) *registers.Register {
	if defn.AddressingMode == instructions.Accumulator {
		return &mc.A
	}
	mc.acc.Load(value)
	return &mc.acc
}

func (mc *CPU) compare(lhs, rhs uint8) {
	mc.acc.Load(lhs)
	carry, _ := mc.acc.Subtract(rhs, true)
	mc.Status.SetCarry(carry)
	mc.Status.SetZeroNegative(mc.acc.Value())
}

func (mc *CPU) push(v uint8) error {
	if err := mc.write(mc.SP.Address(), v); err != nil {
		return err
	}
	mc.SP.Add(0xff, false)
	return nil
}

func (mc *CPU) pull() (uint8, error) {
	mc.SP.Add(1, false)
	if err := mc.tick(); err != nil {
		return 0, err
	}
	return mc.read(mc.SP.Address())
}

// pullMulti pulls n consecutive bytes off the stack for RTS/RTI, which on
// real hardware spend a single cycle bumping S before reading each byte in
// turn (rather than one bump per byte, as the single-byte pull above does).
func (mc *CPU) pullMulti(n int) ([]uint8, error) {
	mc.SP.Add(1, false)
	if err := mc.tick(); err != nil {
		return nil, err
	}

	vals := make([]uint8, n)
	for i := 0; i < n; i++ {
		v, err := mc.read(mc.SP.Address())
		if err != nil {
			return nil, err
		}
		vals[i] = v
		if i < n-1 {
			mc.SP.Add(1, false)
		}
	}
	return vals, nil
}

// predictRTS is an adhoc interface exposing the Peek() function to the CPU,
// used to look ahead at what RTS would return to without executing it.
type predictRTS interface {
	Peek(address uint16) (uint8, error)
}

// PredictRTS returns the PC address that would result from running RTS at
// the current moment, without running it.
func (mc *CPU) PredictRTS() (uint16, bool) {
	predict, ok := mc.mem.(predictRTS)
	if !ok {
		return 0, false
	}

	sp := mc.SP.Value() + 1
	lo, err := predict.Peek(0x0100 | uint16(sp))
	if err != nil {
		return 0, false
	}
	hi, err := predict.Peek(0x0100 | uint16(sp+1))
	if err != nil {
		return 0, false
	}

	return (uint16(hi)<<8 | uint16(lo)) + 1, true
}
