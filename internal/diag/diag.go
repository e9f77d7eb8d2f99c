// Package diag formats raw instruction words and register files as hex
// text for instruction streams and register files. It has no behavior of
// its own; cmd/umlab uses it to list a stream built interactively, and
// cmd/um to dump the register file after a fault.
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
package diag

import (
	"strconv"
	"strings"
)

var hexDigits = "0123456789ABCDEF"

// FormatWord appends word to str as 8 hex digits followed by a space,
// nibble by nibble.
func FormatWord(str *strings.Builder, word uint32) {
	shift := 28
	for range 8 {
		str.WriteByte(hexDigits[(word>>shift)&0xf])
		shift -= 4
	}
	str.WriteByte(' ')
}

// FormatWords renders a whole instruction stream as space-separated hex
// words, one line per index so each can be cross-referenced against a
// listing or a fault's PC.
func FormatWords(words []uint32) string {
	var b strings.Builder
	for i, w := range words {
		b.WriteString(strconv.Itoa(i))
		b.WriteString(": ")
		FormatWord(&b, w)
		b.WriteByte('\n')
	}
	return b.String()
}

// FormatRegisters renders regs as labeled hex words, e.g. for dumping a
// Machine's register file in a diagnostic tool.
func FormatRegisters(regs []uint32) string {
	var b strings.Builder
	for i, r := range regs {
		b.WriteByte('r')
		b.WriteString(strconv.Itoa(i))
		b.WriteString(": ")
		FormatWord(&b, r)
		b.WriteByte('\n')
	}
	return b.String()
}
