package tape

import (
	"fmt"
	"io"
)

// MemorySize is the number of cells on the tape.
const MemorySize = 30000

const cellModulus = 256

// Machine executes Programs against a zeroed tape, reading and writing one
// byte at a time through the collaborators it was built with. A nil reader
// behaves as permanently exhausted input and a nil writer discards output.
//
// A Machine is not safe for concurrent use.
type Machine struct {
	memory [MemorySize]byte
	cursor int
	pc     int
	steps  int

	in  io.ByteReader
	out io.ByteWriter
}

// NewMachine constructs a Machine bound to the given input and output.
func NewMachine(in io.ByteReader, out io.ByteWriter) *Machine {
	return &Machine{in: in, out: out}
}

// Run executes p from a fresh state until the program counter passes the
// last operation. Input failures leave the current cell unchanged and are
// not reported; an output failure aborts the run with an *OutputError.
// Run imposes no step limit, so a program that never leaves a loop never
// returns.
func (m *Machine) Run(p *Program) error {
	m.reset()

	for m.pc < len(p.ops) {
		m.steps++
		switch p.ops[m.pc] {
		case OpForward:
			m.cursor = (m.cursor + 1) % MemorySize
		case OpBackward:
			m.cursor = (m.cursor - 1 + MemorySize) % MemorySize
		case OpIncrement:
			m.memory[m.cursor] = byte((int(m.memory[m.cursor]) + 1) % cellModulus)
		case OpDecrement:
			m.memory[m.cursor] = byte((int(m.memory[m.cursor]) - 1 + cellModulus) % cellModulus)
		case OpOutput:
			if err := m.write(m.memory[m.cursor]); err != nil {
				return &OutputError{Index: m.pc, Err: err}
			}
		case OpInput:
			if b, ok := m.read(); ok {
				m.memory[m.cursor] = b
			}
		case OpLoopOpen:
			if m.memory[m.cursor] == 0 {
				m.pc = p.mustJump(m.pc)
			}
		case OpLoopClose:
			if m.memory[m.cursor] != 0 {
				m.pc = p.mustJump(m.pc)
			}
		default:
			panic(fmt.Sprintf("tape: invalid operation %d at %d", p.ops[m.pc], m.pc))
		}
		m.pc++
	}
	return nil
}

func (m *Machine) reset() {
	m.memory = [MemorySize]byte{}
	m.cursor = 0
	m.pc = 0
	m.steps = 0
}

func (m *Machine) read() (byte, bool) {
	if m.in == nil {
		return 0, false
	}
	b, err := m.in.ReadByte()
	if err != nil {
		return 0, false
	}
	return b, true
}

func (m *Machine) write(b byte) error {
	if m.out == nil {
		return nil
	}
	return m.out.WriteByte(b)
}

func (p *Program) mustJump(i int) int {
	j, ok := p.jumps[i]
	if !ok {
		panic(fmt.Sprintf("tape: no jump target for %s at %d", p.ops[i], i))
	}
	return j
}

// Cursor returns the cursor position left by the last run.
func (m *Machine) Cursor() int {
	return m.cursor
}

// Cell returns the value of cell i as left by the last run. The index wraps
// around the tape.
func (m *Machine) Cell(i int) byte {
	return m.memory[wrapIndex(i)]
}

// Tape returns a copy of cells from through to-1, wrapping around the tape.
func (m *Machine) Tape(from, to int) []byte {
	if to <= from {
		return nil
	}
	out := make([]byte, 0, to-from)
	for i := from; i < to; i++ {
		out = append(out, m.memory[wrapIndex(i)])
	}
	return out
}

// Steps returns the number of operations executed by the last run.
func (m *Machine) Steps() int {
	return m.steps
}

func wrapIndex(i int) int {
	i %= MemorySize
	if i < 0 {
		i += MemorySize
	}
	return i
}
