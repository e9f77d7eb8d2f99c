// Package loader reads a UM program file — a sequence of 32-bit
// instructions in big-endian byte order — into words suitable for
// segment zero. It is an external collaborator: the running VM never
// loads a second program file.
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
package loader

import (
	"encoding/binary"
	"fmt"
	"io"
	"log/slog"
)

// Load reads every whole 32-bit big-endian word from r and returns them
// in file order, the initial contents of segment zero. A trailing
// partial word (file size not a multiple of 4) is dropped; Load logs a
// warning through logger rather than failing, per the decided Open
// Question on malformed program files.
func Load(r io.Reader, logger *slog.Logger) ([]uint32, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("loader: read program: %w", err)
	}

	wordCount := len(raw) / 4
	if trailing := len(raw) % 4; trailing != 0 && logger != nil {
		logger.Warn("program file size is not a multiple of 4 bytes; truncating trailing bytes",
			slog.Int("trailing_bytes", trailing))
	}

	words := make([]uint32, wordCount)
	for i := range words {
		words[i] = binary.BigEndian.Uint32(raw[i*4 : i*4+4])
	}
	return words, nil
}
