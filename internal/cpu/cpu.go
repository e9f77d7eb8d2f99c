// Package cpu is the Universal Machine's register file, program counter,
// decoder, and fetch-decode-dispatch loop: the execution engine.
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
package cpu

import (
	"um/internal/ioport"
	"um/internal/memory"
)

const numRegisters = 8

// Machine is one Universal Machine instance: 8 general registers, a
// program counter, the segment store, and the I/O port. There is no
// package-level singleton; cmd/um constructs one Machine per process.
type Machine struct {
	regs [numRegisters]uint32
	pc   uint32

	mem  *memory.Store
	io   *ioport.Port
	code []uint32 // cached view of segment zero's words, refreshed on LOADP
}

// New creates a Machine with the given initial program loaded at segment
// zero and the given I/O streams.
func New(mem *memory.Store, io *ioport.Port) *Machine {
	return &Machine{
		mem:  mem,
		io:   io,
		code: mem.Words(memory.ZeroSegment),
	}
}

// NewFromWords builds a Machine whose segment zero holds program, a
// convenience for tests that bypasses the big-endian file loader. Segment zero starts out
// zero-length, so program is staged into a freshly mapped segment and
// then deep-copied into place, then the staging handle is released.
func NewFromWords(program []uint32, io *ioport.Port) *Machine {
	mem := memory.NewStore()
	staging := mem.Map(uint32(len(program)))
	for i, w := range program {
		mem.Store(staging, uint32(i), w)
	}
	mem.ReplaceZero(staging)
	mem.Unmap(staging)
	return New(mem, io)
}

// Register returns the current value of register r (0..7).
func (m *Machine) Register(r uint8) uint32 {
	return m.regs[r]
}

// Registers returns a copy of the register file, for diagnostics.
func (m *Machine) Registers() []uint32 {
	regs := make([]uint32, numRegisters)
	copy(regs, m.regs[:])
	return regs
}

// PC returns the current program counter.
func (m *Machine) PC() uint32 {
	return m.pc
}
