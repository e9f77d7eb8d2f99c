package ioport

import (
	"bytes"
	"strings"
	"testing"
)

func TestOutputTruncatesToByte(t *testing.T) {
	var buf bytes.Buffer
	p := New(strings.NewReader(""), &buf)
	if err := p.Output(0x1FF41); err != nil {
		t.Fatalf("Output() error = %v", err)
	}
	if err := p.Flush(); err != nil {
		t.Fatalf("Flush() error = %v", err)
	}
	if got, want := buf.Bytes(), []byte{0x41}; !bytes.Equal(got, want) {
		t.Errorf("Output(0x1FF41) wrote %v, want %v", got, want)
	}
}

func TestInputReadsZeroExtendedByte(t *testing.T) {
	p := New(strings.NewReader("A"), &bytes.Buffer{})
	got, err := p.Input()
	if err != nil {
		t.Fatalf("Input() error = %v", err)
	}
	if want := uint32('A'); got != want {
		t.Errorf("Input() = %d, want %d", got, want)
	}
}

// TestInputEOFReturnsSentinel covers scenario S7.
func TestInputEOFReturnsSentinel(t *testing.T) {
	p := New(strings.NewReader(""), &bytes.Buffer{})
	got, err := p.Input()
	if err != nil {
		t.Fatalf("Input() error = %v", err)
	}
	if got != EOFSentinel {
		t.Errorf("Input() at EOF = %#x, want %#x", got, EOFSentinel)
	}
}

func TestInputEOFIsSticky(t *testing.T) {
	p := New(strings.NewReader(""), &bytes.Buffer{})
	for i := 0; i < 3; i++ {
		got, err := p.Input()
		if err != nil {
			t.Fatalf("Input() error = %v", err)
		}
		if got != EOFSentinel {
			t.Errorf("Input() call %d = %#x, want %#x", i, got, EOFSentinel)
		}
	}
}
