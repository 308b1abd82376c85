package vm

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Opcode is the first number of an instruction pair.
type Opcode int

// Instruction set.
const (
	Adv Opcode = iota
	Bxl
	Bst
	Jnz
	Bxc
	Out
	Bdv
	Cdv
)

var opNames = [...]string{"adv", "bxl", "bst", "jnz", "bxc", "out", "bdv", "cdv"}

func (o Opcode) String() string {
	if o < 0 || int(o) >= len(opNames) {
		return "op(" + strconv.Itoa(int(o)) + ")"
	}
	return opNames[o]
}

// Sentinel errors for execution.
var (
	// ErrReservedOperand is returned when combo operand 7 is evaluated.
	ErrReservedOperand = errors.New("vm: combo operand 7 is reserved")
	// ErrBadOpcode is returned for opcodes outside 0-7.
	ErrBadOpcode = errors.New("vm: invalid opcode")
	// ErrNegativeShift is returned when a shift amount resolves below zero.
	ErrNegativeShift = errors.New("vm: negative shift amount")
	// ErrStepLimit is returned when a run exceeds its step budget.
	ErrStepLimit = errors.New("vm: step limit exceeded")
)

// Registers is the mutable machine state besides the instruction pointer.
type Registers struct {
	A, B, C int64
}

// Program is an immutable list of 3-bit values.
type Program []int

// String renders the program as comma-separated values.
func (p Program) String() string { return Join(p) }

// Join renders values as "v0,v1,...".
func Join(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}

// Option configures Run.
type Option func(*options)

type options struct {
	stepLimit int
}

// WithStepLimit caps the number of executed instructions. n <= 0 removes
// the cap.
func WithStepLimit(n int) Option {
	return func(o *options) { o.stepLimit = n }
}

// Machine single-steps a program.
type Machine struct {
	Regs  Registers
	prog  Program
	ip    int
	out   []int
	steps int
}

// NewMachine loads prog with the given registers.
func NewMachine(regs Registers, prog Program) *Machine {
	return &Machine{Regs: regs, prog: prog}
}

// IP returns the instruction pointer.
func (m *Machine) IP() int { return m.ip }

// Steps returns the number of executed instructions.
func (m *Machine) Steps() int { return m.steps }

// Halted reports whether the pointer has run past the program.
func (m *Machine) Halted() bool {
	return m.ip < 0 || m.ip+1 >= len(m.prog)
}

// Output returns a copy of everything emitted so far.
func (m *Machine) Output() []int {
	return append([]int(nil), m.out...)
}

// Step executes one instruction. Stepping a halted machine is a no-op.
func (m *Machine) Step() error {
	if m.Halted() {
		return nil
	}
	op, arg := Opcode(m.prog[m.ip]), m.prog[m.ip+1]
	next := m.ip + 2

	switch op {
	case Adv, Bdv, Cdv:
		v, err := m.combo(arg)
		if err != nil {
			return err
		}
		if v < 0 {
			return fmt.Errorf("%w: %s %d at ip %d", ErrNegativeShift, op, v, m.ip)
		}
		r := m.Regs.A >> uint64(v)
		switch op {
		case Adv:
			m.Regs.A = r
		case Bdv:
			m.Regs.B = r
		default:
			m.Regs.C = r
		}
	case Bxl:
		m.Regs.B ^= int64(arg)
	case Bst:
		v, err := m.combo(arg)
		if err != nil {
			return err
		}
		m.Regs.B = v & 7
	case Jnz:
		if m.Regs.A != 0 {
			next = arg
		}
	case Bxc:
		m.Regs.B ^= m.Regs.C
	case Out:
		v, err := m.combo(arg)
		if err != nil {
			return err
		}
		m.out = append(m.out, int(v&7))
	default:
		return fmt.Errorf("%w: %d at ip %d", ErrBadOpcode, int(op), m.ip)
	}

	m.ip = next
	m.steps++
	return nil
}

func (m *Machine) combo(arg int) (int64, error) {
	switch arg {
	case 0, 1, 2, 3:
		return int64(arg), nil
	case 4:
		return m.Regs.A, nil
	case 5:
		return m.Regs.B, nil
	case 6:
		return m.Regs.C, nil
	}
	return 0, fmt.Errorf("%w: at ip %d", ErrReservedOperand, m.ip)
}

// Run executes prog from a fresh pointer and returns its output.
func Run(regs Registers, prog Program, opts ...Option) ([]int, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	m := NewMachine(regs, prog)
	for !m.Halted() {
		if o.stepLimit > 0 && m.steps >= o.stepLimit {
			return m.Output(), fmt.Errorf("%w: %d", ErrStepLimit, o.stepLimit)
		}
		if err := m.Step(); err != nil {
			return m.Output(), err
		}
	}
	return m.out, nil
}
