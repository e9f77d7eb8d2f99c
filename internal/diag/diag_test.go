package diag

import (
	"strings"
	"testing"
)

func TestFormatWordIsEightUppercaseHexDigits(t *testing.T) {
	var b strings.Builder
	FormatWord(&b, 0xDEADBEEF)
	if got, want := b.String(), "DEADBEEF "; got != want {
		t.Errorf("FormatWord() = %q, want %q", got, want)
	}
}

func TestFormatWordPadsLeadingZeros(t *testing.T) {
	var b strings.Builder
	FormatWord(&b, 5)
	if got, want := b.String(), "00000005 "; got != want {
		t.Errorf("FormatWord() = %q, want %q", got, want)
	}
}

func TestFormatWordsIndexesEachLine(t *testing.T) {
	got := FormatWords([]uint32{0x1, 0x2})
	want := "0: 00000001 \n1: 00000002 \n"
	if got != want {
		t.Errorf("FormatWords() = %q, want %q", got, want)
	}
}

func TestFormatRegistersLabelsEachRegister(t *testing.T) {
	got := FormatRegisters([]uint32{10, 20})
	want := "r0: 0000000A \nr1: 00000014 \n"
	if got != want {
		t.Errorf("FormatRegisters() = %q, want %q", got, want)
	}
}
