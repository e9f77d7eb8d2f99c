package cpu_test

import (
	"bytes"
	"strings"
	"testing"

	"um/internal/cpu"
	"um/internal/encode"
	"um/internal/ioport"
	"um/internal/memory"
)

func run(t *testing.T, program []uint32, stdin string) string {
	t.Helper()
	var out bytes.Buffer
	port := ioport.New(strings.NewReader(stdin), &out)
	m := cpu.NewFromWords(program, port)
	if fault := m.Run(); fault != nil {
		t.Fatalf("Run() fault = %v", fault)
	}
	if err := port.Flush(); err != nil {
		t.Fatalf("Flush() error = %v", err)
	}
	return out.String()
}

// TestScenarioS1HelloLikeSequence covers §8 S1.
func TestScenarioS1HelloLikeSequence(t *testing.T) {
	lv := func(r uint8, v byte) uint32 {
		w, err := encode.LoadValue(r, uint32(v))
		if err != nil {
			t.Fatalf("LoadValue() error = %v", err)
		}
		return w
	}
	program := []uint32{
		lv(1, 'B'), encode.Out(1),
		lv(1, 'a'), encode.Out(1),
		lv(1, 'd'), encode.Out(1),
		lv(1, '!'), encode.Out(1),
		lv(1, '\n'), encode.Out(1),
		encode.Halt(),
	}
	if got, want := run(t, program, ""), "Bad!\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

// TestScenarioS2Arithmetic covers §8 S2.
func TestScenarioS2Arithmetic(t *testing.T) {
	lv1, _ := encode.LoadValue(1, 48)
	lv2, _ := encode.LoadValue(2, 6)
	program := []uint32{
		lv1, lv2,
		encode.Add(3, 1, 2),
		encode.Out(3),
		encode.Halt(),
	}
	if got, want := run(t, program, ""), "6"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

// TestScenarioS3ConditionalMove covers §8 S3.
func TestScenarioS3ConditionalMove(t *testing.T) {
	lv1, _ := encode.LoadValue(1, 77)
	lv2, _ := encode.LoadValue(2, 80)
	lv3, _ := encode.LoadValue(3, 0)
	lv4, _ := encode.LoadValue(4, 1)
	program := []uint32{
		lv1, lv2, lv3, lv4,
		encode.Out(2),
		encode.CMov(2, 1, 3),
		encode.Out(2),
		encode.CMov(2, 1, 4),
		encode.Out(2),
		encode.Halt(),
	}
	if got, want := run(t, program, ""), "PPM"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

// TestScenarioS4MapStoreLoadAcrossSegments covers §8 S4.
func TestScenarioS4MapStoreLoadAcrossSegments(t *testing.T) {
	lvLenA, _ := encode.LoadValue(1, 77)
	lvLenB, _ := encode.LoadValue(2, 80)
	lvOff79, _ := encode.LoadValue(3, 79)
	lvVal79, _ := encode.LoadValue(4, 79)
	lvOff0, _ := encode.LoadValue(3, 0)
	lvVal83, _ := encode.LoadValue(4, 83)
	lvOff79Again, _ := encode.LoadValue(3, 79)
	lvOff0Again, _ := encode.LoadValue(3, 0)
	program := []uint32{
		lvLenA,
		encode.Map(5, 1), // r5 = handle A, size = r1 (77)
		lvLenB,
		encode.Map(6, 2), // r6 = handle B, size = r2 (80)
		lvOff79,
		lvVal79,
		encode.SStore(6, 3, 4), // B[79] = 79
		lvOff0,
		lvVal83,
		encode.SStore(5, 3, 4), // A[0] = 83
		lvOff79Again,
		encode.SLoad(0, 6, 3), // r0 = B[79] = 79 ('O')
		encode.Out(0),
		lvOff0Again,
		encode.SLoad(7, 5, 3), // r7 = A[0] = 83 ('S')
		encode.Out(7),
		encode.Halt(),
	}
	if got, want := run(t, program, ""), "OS"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

// TestScenarioS5HandleReuse covers §8 S5 / invariant 4.
func TestScenarioS5HandleReuse(t *testing.T) {
	mem := memory.NewStore()
	h0 := mem.Map(1)
	h1 := mem.Map(1)
	mem.Unmap(h0)
	h2 := mem.Map(1)

	if h2 != h0 {
		t.Errorf("h2 = %d, want %d", h2, h0)
	}
	if got := mem.Length(h1); got != 1 {
		t.Errorf("h1 length = %d, want 1 (untouched)", got)
	}
}

// TestScenarioS6LoadpReplacesCode covers §8 S6 and invariant 8: LOADP with
// R[B] != 0 makes the very next fetch observe the new code.
func TestScenarioS6LoadpReplacesCode(t *testing.T) {
	lv, _ := encode.LoadValue(1, 'Z')
	inner := []uint32{
		lv,
		encode.Out(1),
		encode.Halt(),
	}

	lenInner, _ := encode.LoadValue(2, uint32(len(inner)))
	program := []uint32{
		lenInner,
		encode.Map(3, 2), // r3 <- handle of freshly mapped segment, size r2
	}
	for i, w := range inner {
		offImm, _ := encode.LoadValue(4, uint32(i))
		// w does not fit LV's 25-bit immediate, so r5 = (w>>16)*65536 + (w&0xFFFF).
		hiImm, _ := encode.LoadValue(5, w>>16)
		scaleImm, _ := encode.LoadValue(7, 1<<16)
		loImm, _ := encode.LoadValue(7, w&0xFFFF)
		program = append(program, offImm, hiImm, scaleImm, encode.Mul(5, 5, 7),
			loImm, encode.Add(5, 5, 7), encode.SStore(3, 4, 5))
	}
	zero, _ := encode.LoadValue(6, 0)
	program = append(program, zero, encode.LoadProgram(3, 6))

	if got, want := run(t, program, ""), "Z"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

// TestScenarioS7EOFSentinel covers §8 S7.
func TestScenarioS7EOFSentinel(t *testing.T) {
	program := []uint32{
		encode.In(1),
		encode.Nand(2, 1, 1),
		encode.Out(2),
		encode.Halt(),
	}
	got := run(t, program, "")
	if len(got) != 1 || got[0] != 0x00 {
		t.Errorf("output = %v, want single 0x00 byte", []byte(got))
	}
}

// TestLoadpSelfReferentialWithoutReplaceIsWellDefined covers §4.4's
// self-modification edge case: LOADP with R[B] == 0 jumping to the
// instruction right after itself does not replace segment zero and does
// not hang forever when the jumped-to code halts.
func TestLoadpSelfReferentialWithoutReplaceIsWellDefined(t *testing.T) {
	zero, _ := encode.LoadValue(0, 0)
	target, _ := encode.LoadValue(1, 3) // PC of the HALT instruction below
	program := []uint32{
		zero,
		target,
		encode.LoadProgram(0, 1), // R[B]==0: jump to PC=3, no segment-0 copy
		encode.Halt(),
	}
	if fault := runRaw(t, program, ""); fault != nil {
		t.Fatalf("Run() fault = %v", fault)
	}
}

func runRaw(t *testing.T, program []uint32, stdin string) *cpu.Fault {
	t.Helper()
	var out bytes.Buffer
	port := ioport.New(strings.NewReader(stdin), &out)
	m := cpu.NewFromWords(program, port)
	return m.Run()
}

// TestDivByZeroIsFatal covers the DivByZero fault kind.
func TestDivByZeroIsFatal(t *testing.T) {
	lv1, _ := encode.LoadValue(1, 10)
	lv2, _ := encode.LoadValue(2, 0)
	program := []uint32{
		lv1, lv2,
		encode.Div(3, 1, 2),
		encode.Halt(),
	}
	fault := runRaw(t, program, "")
	if fault == nil {
		t.Fatal("Run() fault = nil, want DivByZero")
	}
	if fault.Kind != cpu.DivByZero {
		t.Errorf("fault.Kind = %v, want DivByZero", fault.Kind)
	}
}

// TestUnknownOpcodeIsFatal covers the UnknownOpcode fault kind: opcode 14
// (and above) is outside the 0..13 range §4.4 defines.
func TestUnknownOpcodeIsFatal(t *testing.T) {
	badWord := uint32(14) << 28
	program := []uint32{badWord}
	fault := runRaw(t, program, "")
	if fault == nil {
		t.Fatal("Run() fault = nil, want UnknownOpcode")
	}
	if fault.Kind != cpu.UnknownOpcode {
		t.Errorf("fault.Kind = %v, want UnknownOpcode", fault.Kind)
	}
}

// TestModularArithmetic covers invariant 5: ADD/MUL wrap modulo 2^32. Both
// operands fit comfortably in LV's 25-bit immediate, but their product
// exceeds 2^32 and must wrap rather than saturate or panic.
func TestModularArithmetic(t *testing.T) {
	const operand = 100000
	lvBase, _ := encode.LoadValue(1, operand)
	lvOther, _ := encode.LoadValue(2, operand)
	program := []uint32{
		lvBase,
		lvOther,
		encode.Mul(1, 1, 2), // r1 = 100000 * 100000 mod 2^32
	}
	result := runRawKeepMachine(t, program)
	if result.fault != nil {
		t.Fatalf("Run() fault = %v", result.fault)
	}
	want := uint32(uint64(operand) * uint64(operand) % (1 << 32))
	if got := result.machine.Register(1); got != want {
		t.Errorf("r1 = %#x, want %#x", got, want)
	}
}

type runResult struct {
	machine *cpu.Machine
	fault   *cpu.Fault
}

func runRawKeepMachine(t *testing.T, program []uint32) runResult {
	t.Helper()
	program = append(program, encode.Halt())
	var out bytes.Buffer
	port := ioport.New(strings.NewReader(""), &out)
	m := cpu.NewFromWords(program, port)
	f := m.Run()
	return runResult{machine: m, fault: f}
}
