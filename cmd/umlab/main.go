// Command umlab builds Universal Machine program files for testing: named
// scenarios reproducing the emulator's literal test cases, or an
// interactive mnemonic assembler. It never runs a VM itself — that is
// cmd/um's job — so it is free to carry flags and a REPL without
// complicating the strict no-flags CLI contract.
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
	"os"

	getopt "github.com/pborman/getopt/v2"

	"um/internal/encode"
	"um/internal/logger"
)

func main() {
	optScenario := getopt.StringLong("scenario", 's', "", "Named scenario to emit (see -list)")
	optOut := getopt.StringLong("out", 'o', "", "Output file (default: stdout)")
	optInteractive := getopt.BoolLong("interactive", 'i', "Build a stream interactively instead of from a scenario")
	optList := getopt.BoolLong("list", 'l', "List available scenarios and exit")
	optHelp := getopt.BoolLong("help", 'h', "Help")
	getopt.Parse()

	log := logger.New(os.Stderr)

	if *optHelp {
		getopt.Usage()
		return
	}

	if *optList {
		for _, s := range scenarios {
			fmt.Printf("%-20s %s\n", s.name, s.description)
		}
		return
	}

	var stream []uint32
	switch {
	case *optInteractive:
		built, err := assembleInteractive(log)
		if err != nil {
			log.Error("interactive assembly failed", "err", err)
			os.Exit(1)
		}
		stream = built
	case *optScenario != "":
		s, ok := findScenario(*optScenario)
		if !ok {
			log.Error("unknown scenario", "name", *optScenario)
			os.Exit(1)
		}
		stream = s.build()
	default:
		fmt.Fprintln(os.Stderr, "usage: umlab -scenario <name> [-out <file>]  |  umlab -i [-out <file>]  |  umlab -list")
		os.Exit(2)
	}

	out := os.Stdout
	if *optOut != "" {
		f, err := os.Create(*optOut)
		if err != nil {
			log.Error("cannot create output file", "path", *optOut, "err", err)
			os.Exit(1)
		}
		defer f.Close()
		out = f
	}

	if err := encode.WriteStream(out, stream); err != nil {
		log.Error("cannot write stream", "err", err)
		os.Exit(1)
	}
}
