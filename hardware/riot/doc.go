// Package riot emulates the 6532 RIOT (RAM-I/O-Timer) found in the Atari
// VCS: 128 bytes of general purpose RAM, two bidirectional 8-bit I/O ports
// used for the joystick/console switches, and a single interval timer with
// a selectable prescaler.
//
// The RAM and the chip's registers are addressed separately by the memory
// map (see hardware/memory/memorymap): RAM is read and written with
// ReadRAM/WriteRAM, and everything else goes through ReadRegister/
// WriteRegister using the 5 bit register address the memory map already
// normalises to.
package riot
