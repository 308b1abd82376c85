package vm

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrBadInput is returned for text that is not a register/program block.
var ErrBadInput = errors.New("vm: malformed program text")

// ParseProgram reads
//
//	Register A: 729
//	Register B: 0
//	Register C: 0
//
//	Program: 0,1,5,4,3,0
//
// Missing registers default to zero; the program line is required.
func ParseProgram(text string) (Registers, Program, error) {
	var (
		regs Registers
		prog Program
		seen bool
	)
	for _, line := range strings.Split(text, "\n") {
		key, val, ok := strings.Cut(strings.TrimSpace(line), ":")
		if !ok {
			continue
		}
		key, val = strings.TrimSpace(key), strings.TrimSpace(val)
		switch key {
		case "Register A", "Register B", "Register C":
			n, err := strconv.ParseInt(val, 10, 64)
			if err != nil {
				return Registers{}, nil, fmt.Errorf("%w: %s: %v", ErrBadInput, key, err)
			}
			switch key[len(key)-1] {
			case 'A':
				regs.A = n
			case 'B':
				regs.B = n
			default:
				regs.C = n
			}
		case "Program":
			for _, f := range strings.Split(val, ",") {
				n, err := strconv.Atoi(strings.TrimSpace(f))
				if err != nil || n < 0 || n > 7 {
					return Registers{}, nil, fmt.Errorf("%w: program value %q", ErrBadInput, f)
				}
				prog = append(prog, n)
			}
			seen = true
		default:
			return Registers{}, nil, fmt.Errorf("%w: unknown field %q", ErrBadInput, key)
		}
	}
	if !seen {
		return Registers{}, nil, fmt.Errorf("%w: no program line", ErrBadInput)
	}
	return regs, prog, nil
}
