// Package logger wraps log/slog with a compact single-line text handler,
// the ambient logging idiom used throughout this project. Both binaries
// point it at stderr, keeping structured diagnostics separate from the
// UM's byte-oriented stdout I/O stream.
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
package logger

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"sync"
)

// Handler formats records as "<time> <LEVEL>: <message> <attrs...>" on a
// single line, the same shape the rest of the example corpus's slog
// wrappers use, rather than slog's default structured key=value layout.
type Handler struct {
	out io.Writer
	mu  *sync.Mutex
}

// New wraps out (typically os.Stderr) as a *slog.Logger using Handler.
func New(out io.Writer) *slog.Logger {
	return slog.New(&Handler{out: out, mu: &sync.Mutex{}})
}

func (h *Handler) Enabled(context.Context, slog.Level) bool { return true }

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	// Not used by this project: every call site logs a complete line in
	// one shot rather than building a logger with persistent attrs.
	return h
}

func (h *Handler) WithGroup(string) slog.Handler { return h }

func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	parts := []string{
		r.Time.Format("2006/01/02 15:04:05"),
		r.Level.String() + ":",
		r.Message,
	}
	r.Attrs(func(a slog.Attr) bool {
		parts = append(parts, a.String())
		return true
	})
	line := strings.Join(parts, " ") + "\n"

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := h.out.Write([]byte(line))
	return err
}
