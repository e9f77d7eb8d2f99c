package cpu

import "um/internal/bitfield"

// Opcode identifies one of the UM's 14 instructions. Values outside
// 0..13 are not a valid Opcode; Decode passes them through unchanged and
// Run reports them as an UnknownOpcode fault.
type Opcode uint8

const (
	OpCMOV Opcode = iota
	OpSLOAD
	OpSSTORE
	OpADD
	OpMUL
	OpDIV
	OpNAND
	OpHALT
	OpMAP
	OpUNMAP
	OpOUT
	OpIN
	OpLOADP
	OpLV
	opCount // sentinel: one past the last valid opcode
)

// Instruction is a decoded 32-bit UM word. For three-register opcodes,
// A/B/C hold register indices 0..7 and Imm is unused. For LV, A holds the
// destination register and Imm holds the 25-bit immediate.
type Instruction struct {
	Op      Opcode
	A, B, C uint8
	Imm     uint32
}

// Decode splits word into an opcode and its operand fields, per §4.4: bits
// 28-31 are the opcode; for opcodes 0-12, bits 6-8/3-5/0-2 are A/B/C; for
// opcode 13 (LV), bits 25-27 are A and bits 0-24 are a 25-bit immediate.
func Decode(word uint32) Instruction {
	op := Opcode(bitfield.GetU(uint64(word), 4, 28))
	if op == OpLV {
		return Instruction{
			Op:  op,
			A:   uint8(bitfield.GetU(uint64(word), 3, 25)),
			Imm: uint32(bitfield.GetU(uint64(word), 25, 0)),
		}
	}
	return Instruction{
		Op: op,
		A:  uint8(bitfield.GetU(uint64(word), 3, 6)),
		B:  uint8(bitfield.GetU(uint64(word), 3, 3)),
		C:  uint8(bitfield.GetU(uint64(word), 3, 0)),
	}
}
