// Interactive mnemonic assembler for umlab -i: a liner-driven REPL that
// appends one instruction word per line.
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

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/peterh/liner"

	"um/internal/diag"
	"um/internal/encode"
)

var mnemonics = []string{
	"cmov", "sload", "sstore", "add", "mul", "div", "nand",
	"halt", "map", "unmap", "out", "in", "loadp", "lv",
	"done", "list", "help",
}

// assembleInteractive runs a REPL that builds a stream one instruction at
// a time. "done" stops the loop and returns the accumulated stream; "list"
// echoes it so far; Ctrl-D / Ctrl-C abort with whatever was built.
func assembleInteractive(log *slog.Logger) ([]uint32, error) {
	line := liner.NewLiner()
	defer line.Close()

	line.SetCtrlCAborts(true)
	line.SetCompleter(func(partial string) []string {
		var matches []string
		for _, m := range mnemonics {
			if strings.HasPrefix(m, partial) {
				matches = append(matches, m)
			}
		}
		return matches
	})

	var stream []uint32
	for {
		text, err := line.Prompt("umlab> ")
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
				return stream, nil
			}
			return stream, fmt.Errorf("umlab: read line: %w", err)
		}
		line.AppendHistory(text)

		fields := strings.Fields(text)
		if len(fields) == 0 {
			continue
		}

		switch strings.ToLower(fields[0]) {
		case "done":
			return stream, nil
		case "list":
			fmt.Print(diag.FormatWords(stream))
			continue
		case "help":
			fmt.Println("mnemonics: cmov/sload/sstore/add/mul/div/nand ra rb rc | halt | map rb rc | unmap rc | out rc | in rc | loadp rb rc | lv ra imm")
			fmt.Println("commands: list, done")
			continue
		}

		word, err := assembleLine(fields)
		if err != nil {
			fmt.Println("error: " + err.Error())
			if log != nil {
				log.Warn("rejected instruction line", slog.String("line", text), slog.Any("err", err))
			}
			continue
		}
		stream = append(stream, word)
	}
}

func assembleLine(fields []string) (uint32, error) {
	op := strings.ToLower(fields[0])
	args := fields[1:]

	switch op {
	case "halt":
		return requireArgs(args, 0, func([]uint8) uint32 { return encode.Halt() })
	case "cmov":
		return requireArgs(args, 3, func(r []uint8) uint32 { return encode.CMov(r[0], r[1], r[2]) })
	case "sload":
		return requireArgs(args, 3, func(r []uint8) uint32 { return encode.SLoad(r[0], r[1], r[2]) })
	case "sstore":
		return requireArgs(args, 3, func(r []uint8) uint32 { return encode.SStore(r[0], r[1], r[2]) })
	case "add":
		return requireArgs(args, 3, func(r []uint8) uint32 { return encode.Add(r[0], r[1], r[2]) })
	case "mul":
		return requireArgs(args, 3, func(r []uint8) uint32 { return encode.Mul(r[0], r[1], r[2]) })
	case "div":
		return requireArgs(args, 3, func(r []uint8) uint32 { return encode.Div(r[0], r[1], r[2]) })
	case "nand":
		return requireArgs(args, 3, func(r []uint8) uint32 { return encode.Nand(r[0], r[1], r[2]) })
	case "map":
		return requireArgs(args, 2, func(r []uint8) uint32 { return encode.Map(r[0], r[1]) })
	case "unmap":
		return requireArgs(args, 1, func(r []uint8) uint32 { return encode.Unmap(r[0]) })
	case "out":
		return requireArgs(args, 1, func(r []uint8) uint32 { return encode.Out(r[0]) })
	case "in":
		return requireArgs(args, 1, func(r []uint8) uint32 { return encode.In(r[0]) })
	case "loadp":
		return requireArgs(args, 2, func(r []uint8) uint32 { return encode.LoadProgram(r[0], r[1]) })
	case "lv":
		if len(args) != 2 {
			return 0, fmt.Errorf("lv needs a register and an immediate, got %d args", len(args))
		}
		reg, err := parseRegister(args[0])
		if err != nil {
			return 0, err
		}
		imm, err := strconv.ParseUint(args[1], 0, 32)
		if err != nil {
			return 0, fmt.Errorf("bad immediate %q: %w", args[1], err)
		}
		return encode.LoadValue(reg, uint32(imm))
	default:
		return 0, fmt.Errorf("unknown mnemonic %q", op)
	}
}

func requireArgs(args []string, n int, build func([]uint8) uint32) (uint32, error) {
	if len(args) != n {
		return 0, fmt.Errorf("expected %d register(s), got %d", n, len(args))
	}
	regs := make([]uint8, n)
	for i, a := range args {
		r, err := parseRegister(a)
		if err != nil {
			return 0, err
		}
		regs[i] = r
	}
	return build(regs), nil
}

func parseRegister(s string) (uint8, error) {
	s = strings.TrimPrefix(strings.ToLower(s), "r")
	n, err := strconv.ParseUint(s, 10, 8)
	if err != nil || n > 7 {
		return 0, fmt.Errorf("bad register %q: must be r0..r7", s)
	}
	return uint8(n), nil
}
