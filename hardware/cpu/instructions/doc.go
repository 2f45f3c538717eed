// Package instructions describes the 6507's instruction set: the addressing
// modes it supports, the effect each opcode has on memory and registers, and
// the static timing/encoding table used by the cpu package to decode
// opcodes fetched from the bus.
//
// Only the 151 documented opcodes of the 6502 family are defined. The 6507
// programs this core runs are well-behaved cartridge ROMs; undocumented
// opcodes are out of scope.
package instructions
