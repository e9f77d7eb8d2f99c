// Command um runs a Universal Machine program file: a single positional
// argument, no flags, exiting 0 on a clean HALT and nonzero on any fault
// or argument error. This strict no-flags contract is why the companion
// test-stream builder, cmd/umlab, is a separate binary.
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
	"fmt"
	"log/slog"
	"os"

	"um/internal/cpu"
	"um/internal/diag"
	"um/internal/ioport"
	"um/internal/loader"
	"um/internal/logger"
	"um/internal/memory"
)

const (
	exitOK = iota
	exitUsage
	exitFileError
	exitFault
)

func main() {
	os.Exit(run(os.Args, os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin *os.File, stdout, stderr *os.File) int {
	log := logger.New(stderr)

	if len(args) != 2 {
		fmt.Fprintf(stderr, "usage: %s <program-file>\n", progName(args))
		return exitUsage
	}

	f, err := os.Open(args[1])
	if err != nil {
		log.Error("cannot open program file", slog.String("path", args[1]), slog.Any("err", err))
		return exitFileError
	}
	defer f.Close()

	program, err := loader.Load(f, log)
	if err != nil {
		log.Error("cannot load program file", slog.String("path", args[1]), slog.Any("err", err))
		return exitFileError
	}

	mem := memory.NewStore()
	staging := mem.Map(uint32(len(program)))
	for i, w := range program {
		mem.Store(staging, uint32(i), w)
	}
	mem.ReplaceZero(staging)
	mem.Unmap(staging)

	port := ioport.New(stdin, stdout)
	machine := cpu.New(mem, port)

	if fault := machine.Run(); fault != nil {
		if flushErr := port.Flush(); flushErr != nil {
			log.Error("failed to flush output after fault", slog.Any("err", flushErr))
		}
		log.Error("execution failed", slog.String("fault", fault.Error()))
		log.Debug("register file at fault", slog.String("registers", diag.FormatRegisters(machine.Registers())))
		return exitFault
	}

	if err := port.Flush(); err != nil {
		log.Error("failed to flush output", slog.Any("err", err))
		return exitFault
	}
	return exitOK
}

func progName(args []string) string {
	if len(args) == 0 {
		return "um"
	}
	return args[0]
}
