// Package vm implements the stack machine that runs lowered expressions.
package vm

import (
	"errors"
	"fmt"
	"log"
)

var (
	// ErrStackUnderflow is returned when an instruction pops from an empty
	// stack. Programs produced by lowering an expression never do this.
	ErrStackUnderflow = errors.New("stack underflow")

	// ErrUnknownOpcode is returned for an instruction outside the
	// instruction set.
	ErrUnknownOpcode = errors.New("unknown opcode")
)

// VM executes a Program against an operand stack of int64 values. Arithmetic
// wraps on overflow (two's complement).
type VM struct {
	Program Program
	PC      int
	Halted  bool

	// Logger, when set, receives one line per executed instruction.
	Logger *log.Logger

	stack []int64
}

func New(program Program) *VM {
	return &VM{Program: program}
}

// Execute runs program on a fresh VM and returns the top of the stack.
func Execute(program Program) (int64, bool, error) {
	return New(program).Run()
}

// Reset rewinds the VM to the first instruction with an empty stack.
func (m *VM) Reset() {
	m.PC = 0
	m.Halted = false
	m.stack = m.stack[:0]
}

// Top returns the value on top of the stack, or false when it is empty.
func (m *VM) Top() (int64, bool) {
	if len(m.stack) == 0 {
		return 0, false
	}
	return m.stack[len(m.stack)-1], true
}

// Stack returns a copy of the operand stack, bottom first.
func (m *VM) Stack() []int64 {
	return append([]int64(nil), m.stack...)
}

func (m *VM) push(v int64) {
	m.stack = append(m.stack, v)
}

// pop2 removes b then a. On underflow the stack is left untouched.
func (m *VM) pop2() (a, b int64, err error) {
	n := len(m.stack)
	if n < 2 {
		return 0, 0, ErrStackUnderflow
	}
	a, b = m.stack[n-2], m.stack[n-1]
	m.stack = m.stack[:n-2]
	return a, b, nil
}

// Step executes the instruction at PC. Reaching the end of the program halts
// the VM; stepping a halted VM does nothing. An error also halts the VM and
// leaves PC on the failing instruction.
func (m *VM) Step() error {
	if m.Halted {
		return nil
	}
	if m.PC >= len(m.Program) {
		m.Halted = true
		return nil
	}

	instr := m.Program[m.PC]
	switch instr.Op {
	case OpPUSH:
		m.push(instr.Value)

	case OpPLUS:
		a, b, err := m.pop2()
		if err != nil {
			return m.fail(instr, err)
		}
		m.push(a + b)

	case OpMULT:
		a, b, err := m.pop2()
		if err != nil {
			return m.fail(instr, err)
		}
		m.push(a * b)

	default:
		return m.fail(instr, ErrUnknownOpcode)
	}

	if m.Logger != nil {
		m.Logger.Printf("pc=%-4d %-12s stack=%v", m.PC, instr, m.stack)
	}
	m.PC++
	if m.PC >= len(m.Program) {
		m.Halted = true
	}
	return nil
}

func (m *VM) fail(instr Instruction, err error) error {
	m.Halted = true
	return fmt.Errorf("pc %d (%s): %w", m.PC, instr, err)
}

// Run steps until the VM halts and returns the top of the stack. The boolean
// is false when the program leaves the stack empty.
func (m *VM) Run() (int64, bool, error) {
	for !m.Halted {
		if err := m.Step(); err != nil {
			return 0, false, err
		}
	}
	v, ok := m.Top()
	return v, ok, nil
}
