// Scenario builders for umlab's -scenario flag, one function per named
// instruction stream. These mirror the original lab's build_*_test
// functions: each assembles a stream with internal/encode and hands it to
// WriteStream for emission as a program file.
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
package main

import "um/internal/encode"

type scenario struct {
	name        string
	description string
	build       func() []uint32
}

func lv(r uint8, v uint32) uint32 {
	w, err := encode.LoadValue(r, v)
	if err != nil {
		// Every scenario below uses immediates well under 2^25; an
		// overflow here is a programming error in this file, not an
		// end-user condition.
		panic(err)
	}
	return w
}

var scenarios = []scenario{
	{
		name:        "halt",
		description: "immediately halts, producing no output",
		build: func() []uint32 {
			return []uint32{encode.Halt()}
		},
	},
	{
		name:        "halt-verbose",
		description: "outputs Bad!\\n then halts",
		build: func() []uint32 {
			return []uint32{
				lv(1, 'B'), encode.Out(1),
				lv(1, 'a'), encode.Out(1),
				lv(1, 'd'), encode.Out(1),
				lv(1, '!'), encode.Out(1),
				lv(1, '\n'), encode.Out(1),
				encode.Halt(),
			}
		},
	},
	{
		name:        "addition",
		description: "outputs '6' (48 + 6 = 54)",
		build: func() []uint32 {
			return []uint32{
				lv(1, 48), lv(2, 6),
				encode.Add(3, 1, 2),
				encode.Out(3),
				encode.Halt(),
			}
		},
	},
	{
		name:        "multiplication",
		description: "outputs '2' (2 * 25 = 50)",
		build: func() []uint32 {
			return []uint32{
				lv(1, 2), lv(2, 25),
				encode.Mul(3, 1, 2),
				encode.Out(3),
				encode.Halt(),
			}
		},
	},
	{
		name:        "division",
		description: "outputs a single byte with value 3 (99 / 33)",
		build: func() []uint32 {
			return []uint32{
				lv(1, 99), lv(2, 33),
				encode.Div(3, 1, 2),
				encode.Out(3),
				encode.Halt(),
			}
		},
	},
	{
		name:        "bitwise-nand",
		description: "outputs a single byte with value NAND(3, 5) & 0xFF",
		build: func() []uint32 {
			return []uint32{
				lv(1, 3), lv(2, 5),
				encode.Nand(3, 1, 2),
				encode.Out(3),
				encode.Halt(),
			}
		},
	},
	{
		name:        "conditional-move",
		description: "outputs PPM (see S3)",
		build: func() []uint32 {
			return []uint32{
				lv(1, 77), lv(2, 80), lv(3, 0), lv(4, 1),
				encode.Out(2),
				encode.CMov(2, 1, 3),
				encode.Out(2),
				encode.CMov(2, 1, 4),
				encode.Out(2),
				encode.Halt(),
			}
		},
	},
	{
		name:        "input",
		description: "echoes three bytes read from stdin",
		build: func() []uint32 {
			return []uint32{
				encode.In(1), encode.Out(1),
				encode.In(1), encode.Out(1),
				encode.In(1), encode.Out(1),
				encode.Halt(),
			}
		},
	},
	{
		name:        "eof-sentinel",
		description: "reads past EOF and outputs a single zero byte",
		build: func() []uint32 {
			return []uint32{
				encode.In(1),
				encode.Nand(2, 1, 1),
				encode.Out(2),
				encode.Halt(),
			}
		},
	},
	{
		name:        "map-segment",
		description: "maps a segment and halts without further output",
		build: func() []uint32 {
			return []uint32{
				lv(1, 10),
				encode.Map(2, 1),
				encode.Halt(),
			}
		},
	},
	{
		name:        "unmap-segment",
		description: "maps then unmaps a segment and halts",
		build: func() []uint32 {
			return []uint32{
				lv(1, 10),
				encode.Map(2, 1),
				encode.Unmap(2),
				encode.Halt(),
			}
		},
	},
	{
		name:        "load-store-segment",
		description: "outputs OS (see S4)",
		build: func() []uint32 {
			return []uint32{
				lv(1, 77), encode.Map(5, 1),
				lv(2, 80), encode.Map(6, 2),
				lv(3, 79), lv(4, 79), encode.SStore(6, 3, 4),
				lv(3, 0), lv(4, 83), encode.SStore(5, 3, 4),
				lv(3, 79), encode.SLoad(0, 6, 3), encode.Out(0),
				lv(3, 0), encode.SLoad(7, 5, 3), encode.Out(7),
				encode.Halt(),
			}
		},
	},
	{
		name:        "load-program",
		description: "builds a 3-word program that outputs Z, LOADPs into it (see S6)",
		build: func() []uint32 {
			inner := []uint32{lv(1, 'Z'), encode.Out(1), encode.Halt()}
			stream := []uint32{lv(2, uint32(len(inner))), encode.Map(3, 2)}
			for i, w := range inner {
				// w does not fit LV's 25-bit immediate, so r5 = (w>>16)*65536 + (w&0xFFFF).
				stream = append(stream, lv(4, uint32(i)),
					lv(5, w>>16), lv(7, 1<<16), encode.Mul(5, 5, 7),
					lv(7, w&0xFFFF), encode.Add(5, 5, 7),
					encode.SStore(3, 4, 5))
			}
			stream = append(stream, lv(6, 0), encode.LoadProgram(3, 6))
			return stream
		},
	},
}

func findScenario(name string) (scenario, bool) {
	for _, s := range scenarios {
		if s.name == name {
			return s, true
		}
	}
	return scenario{}, false
}
