// Package encode builds UM instruction words, the encoder counterpart of
// internal/cpu's decoder. It is used only by test fixtures and by the
// cmd/umlab companion tool — the running VM never encodes instructions.
//
// Copyright (c) 2026 The UM Authors
//
// Permission is hereby granted, free of charge, to any person obtaining a
// copy of this software and associated documentation files (the "Software"),
// to deal in the Software without restriction, including without limitation
// the rights to use, copy, modify, merge, publish, distribute, sublicense,
// and/or sell copies of the Software, and to permit persons to whom the
// Software is furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING
// FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER
// DEALINGS IN THE SOFTWARE.
package encode

import (
	"io"

	"um/internal/bitfield"
	"um/internal/cpu"
)

// Word packs a three-register instruction: opcode in bits 28-31, A in
// bits 6-8, B in bits 3-5, C in bits 0-2 — the same layout cpu.Decode
// reads.
func Word(op cpu.Opcode, a, b, c uint8) uint32 {
	word := uint64(0)
	word, _ = bitfield.NewU(word, 4, 28, uint64(op))
	word, _ = bitfield.NewU(word, 3, 6, uint64(a))
	word, _ = bitfield.NewU(word, 3, 3, uint64(b))
	word, _ = bitfield.NewU(word, 3, 0, uint64(c))
	return uint32(word)
}

// LoadValue packs an LV instruction: opcode in bits 28-31, destination
// register in bits 25-27, a 25-bit immediate in bits 0-24. It fails with
// a *bitfield.ErrOverflow if imm does not fit in 25 bits.
func LoadValue(a uint8, imm uint32) (uint32, error) {
	word := uint64(0)
	word, err := bitfield.NewU(word, 4, 28, uint64(cpu.OpLV))
	if err != nil {
		return 0, err
	}
	word, err = bitfield.NewU(word, 3, 25, uint64(a))
	if err != nil {
		return 0, err
	}
	word, err = bitfield.NewU(word, 25, 0, uint64(imm))
	if err != nil {
		return 0, err
	}
	return uint32(word), nil
}

// Convenience wrappers, one per opcode, named after the mnemonics used by
// cmd/umlab's scenario library and interactive assembler.

func CMov(a, b, c uint8) uint32     { return Word(cpu.OpCMOV, a, b, c) }
func SLoad(a, b, c uint8) uint32    { return Word(cpu.OpSLOAD, a, b, c) }
func SStore(a, b, c uint8) uint32   { return Word(cpu.OpSSTORE, a, b, c) }
func Add(a, b, c uint8) uint32      { return Word(cpu.OpADD, a, b, c) }
func Mul(a, b, c uint8) uint32      { return Word(cpu.OpMUL, a, b, c) }
func Div(a, b, c uint8) uint32      { return Word(cpu.OpDIV, a, b, c) }
func Nand(a, b, c uint8) uint32     { return Word(cpu.OpNAND, a, b, c) }
func Halt() uint32                  { return Word(cpu.OpHALT, 0, 0, 0) }
func Map(b, c uint8) uint32         { return Word(cpu.OpMAP, 0, b, c) }
func Unmap(c uint8) uint32          { return Word(cpu.OpUNMAP, 0, 0, c) }
func Out(c uint8) uint32            { return Word(cpu.OpOUT, 0, 0, c) }
func In(c uint8) uint32             { return Word(cpu.OpIN, 0, 0, c) }
func LoadProgram(b, c uint8) uint32 { return Word(cpu.OpLOADP, 0, b, c) }

// WriteStream writes each word of program to w as 4 big-endian bytes, the
// Go counterpart of the original lab's sequence writer: high byte first.
func WriteStream(w io.Writer, program []uint32) error {
	buf := make([]byte, 4)
	for _, word := range program {
		buf[0] = byte(word >> 24)
		buf[1] = byte(word >> 16)
		buf[2] = byte(word >> 8)
		buf[3] = byte(word)
		if _, err := w.Write(buf); err != nil {
			return err
		}
	}
	return nil
}
