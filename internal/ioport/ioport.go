// Package ioport is the UM's byte-oriented I/O device: one input stream,
// one output stream, EOF mapped to the all-ones sentinel.
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
package ioport

import (
	"bufio"
	"errors"
	"io"
)

// EOFSentinel is returned by Input when the host stream is exhausted.
const EOFSentinel uint32 = 0xFFFFFFFF

// Port is the UM's console: a byte reader and a byte writer, buffered the
// way a character device is in practice.
type Port struct {
	in  *bufio.Reader
	out *bufio.Writer
}

// New wraps in and out as the UM's input and output streams.
func New(in io.Reader, out io.Writer) *Port {
	return &Port{in: bufio.NewReader(in), out: bufio.NewWriter(out)}
}

// Output emits the low 8 bits of value as a single byte.
func (p *Port) Output(value uint32) error {
	return p.out.WriteByte(byte(value))
}

// Input reads one byte from the host stream, zero-extended to 32 bits.
// On EOF it returns EOFSentinel instead of an error, per the UM contract.
func (p *Port) Input() (uint32, error) {
	b, err := p.in.ReadByte()
	if errors.Is(err, io.EOF) {
		return EOFSentinel, nil
	}
	if err != nil {
		return 0, err
	}
	return uint32(b), nil
}

// Flush pushes any buffered output to the underlying writer. cmd/um calls
// this once after Run returns, so a failed buffered write is logged and
// turned into a nonzero exit rather than being silently lost at process
// exit.
func (p *Port) Flush() error {
	return p.out.Flush()
}
