package cpu

import "um/internal/memory"

// opHandler executes one decoded instruction. It returns the fault, if
// any, and whether the machine should keep running: HALT is the only
// handler that returns running == false with no fault.
type opHandler func(m *Machine, in Instruction) (running bool, fault *Fault)

// table is indexed by Opcode, mirroring a classic function-pointer
// dispatch: tagging the opcode and jumping straight to its handler rather
// than testing each case in sequence.
var table = [opCount]opHandler{
	OpCMOV:   (*Machine).execCMOV,
	OpSLOAD:  (*Machine).execSLOAD,
	OpSSTORE: (*Machine).execSSTORE,
	OpADD:    (*Machine).execADD,
	OpMUL:    (*Machine).execMUL,
	OpDIV:    (*Machine).execDIV,
	OpNAND:   (*Machine).execNAND,
	OpHALT:   (*Machine).execHALT,
	OpMAP:    (*Machine).execMAP,
	OpUNMAP:  (*Machine).execUNMAP,
	OpOUT:    (*Machine).execOUT,
	OpIN:     (*Machine).execIN,
	OpLOADP:  (*Machine).execLOADP,
	OpLV:     (*Machine).execLV,
}

// Run fetches, decodes, and executes instructions from segment zero,
// starting at PC 0, until HALT or a fault. On return the segment store
// has already had ReleaseAll called (on either a clean HALT or a fault),
// matching the teardown discipline of §5.
func (m *Machine) Run() *Fault {
	for {
		if int(m.pc) >= len(m.code) {
			fault := &Fault{Kind: UnknownOpcode, PC: m.pc}
			m.mem.ReleaseAll()
			return fault
		}

		word := m.code[m.pc]
		in := Decode(word)

		if in.Op >= opCount || table[in.Op] == nil {
			fault := &Fault{Kind: UnknownOpcode, PC: m.pc, Word: word}
			m.mem.ReleaseAll()
			return fault
		}

		running, fault := table[in.Op](m, in)
		if fault != nil {
			fault.PC = m.pc
			fault.Word = word
			m.mem.ReleaseAll()
			return fault
		}
		if !running {
			m.mem.ReleaseAll()
			return nil
		}

		if in.Op != OpLOADP {
			m.pc++
		}
	}
}

func (m *Machine) execCMOV(in Instruction) (bool, *Fault) {
	if m.regs[in.C] != 0 {
		m.regs[in.A] = m.regs[in.B]
	}
	return true, nil
}

func (m *Machine) execSLOAD(in Instruction) (bool, *Fault) {
	m.regs[in.A] = m.mem.Load(m.regs[in.B], m.regs[in.C])
	return true, nil
}

// execSSTORE writes through the store, not through the cached code view:
// Store mutates a segment's backing slice in place, so a write to segment
// zero is visible through m.code on the next fetch without a refresh.
func (m *Machine) execSSTORE(in Instruction) (bool, *Fault) {
	m.mem.Store(m.regs[in.A], m.regs[in.B], m.regs[in.C])
	return true, nil
}

func (m *Machine) execADD(in Instruction) (bool, *Fault) {
	m.regs[in.A] = m.regs[in.B] + m.regs[in.C]
	return true, nil
}

func (m *Machine) execMUL(in Instruction) (bool, *Fault) {
	m.regs[in.A] = m.regs[in.B] * m.regs[in.C]
	return true, nil
}

func (m *Machine) execDIV(in Instruction) (bool, *Fault) {
	if m.regs[in.C] == 0 {
		return false, &Fault{Kind: DivByZero}
	}
	m.regs[in.A] = m.regs[in.B] / m.regs[in.C]
	return true, nil
}

func (m *Machine) execNAND(in Instruction) (bool, *Fault) {
	m.regs[in.A] = ^(m.regs[in.B] & m.regs[in.C])
	return true, nil
}

func (m *Machine) execHALT(Instruction) (bool, *Fault) {
	return false, nil
}

func (m *Machine) execMAP(in Instruction) (bool, *Fault) {
	m.regs[in.B] = m.mem.Map(m.regs[in.C])
	return true, nil
}

func (m *Machine) execUNMAP(in Instruction) (bool, *Fault) {
	m.mem.Unmap(m.regs[in.C])
	return true, nil
}

func (m *Machine) execOUT(in Instruction) (bool, *Fault) {
	if err := m.io.Output(m.regs[in.C]); err != nil {
		return false, &Fault{Kind: IOError, Err: err}
	}
	return true, nil
}

func (m *Machine) execIN(in Instruction) (bool, *Fault) {
	v, err := m.io.Input()
	if err != nil {
		return false, &Fault{Kind: IOError, Err: err}
	}
	m.regs[in.C] = v
	return true, nil
}

// execLOADP implements §4.4's self-modification edge case: when R[B] == 0
// segment zero is left untouched and only the PC jumps; otherwise segment
// zero is deep-copied from R[B] before the cached code view is refreshed,
// so the very next fetch observes the new code. PC is taken from R[C]
// directly and is never incremented afterward.
func (m *Machine) execLOADP(in Instruction) (bool, *Fault) {
	if m.regs[in.B] != memory.ZeroSegment {
		m.mem.ReplaceZero(m.regs[in.B])
		m.code = m.mem.Words(memory.ZeroSegment)
	}
	m.pc = m.regs[in.C]
	return true, nil
}

func (m *Machine) execLV(in Instruction) (bool, *Fault) {
	m.regs[in.A] = in.Imm
	return true, nil
}
