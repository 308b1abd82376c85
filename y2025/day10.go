package y2025

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/gridsearch/puzzle"
	"github.com/katalvlaran/gridsearch/subset"
)

func init() {
	puzzle.Register(2025, 10, "Factory", puzzle.Func(Factory))
}

// machine is one line: indicator lights, button wirings and joltage targets.
type machine struct {
	lights  uint64
	buttons [][]int
	joltage []int
}

// Factory sums the fewest button presses per machine: first toggling the
// indicator lights into their pattern, then driving the joltage counters to
// their exact targets.
func Factory(input string) (puzzle.Answer, error) {
	var toggles, presses int
	for i, line := range puzzle.Lines(input) {
		m, err := parseMachine(line)
		if err != nil {
			return puzzle.Answer{}, fmt.Errorf("line %d: %w", i+1, err)
		}

		masks := make([]uint64, len(m.buttons))
		for j, b := range m.buttons {
			masks[j] = subset.IndicesToMask(b)
		}
		n, ok, err := subset.MinXor(masks, m.lights)
		if err != nil {
			return puzzle.Answer{}, fmt.Errorf("line %d: %w", i+1, err)
		}
		if !ok {
			return puzzle.Answer{}, fmt.Errorf("line %d: lights: %w", i+1, subset.ErrInfeasible)
		}
		toggles += n

		n, err = subset.MinPresses(m.buttons, m.joltage)
		if err != nil {
			return puzzle.Answer{}, fmt.Errorf("line %d: joltage: %w", i+1, err)
		}
		presses += n
	}
	return puzzle.NewAnswer(toggles, presses), nil
}

// parseMachine reads "[.##.] (3) (1,3) (2) {3,5,4,7}".
func parseMachine(line string) (machine, error) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return machine{}, fmt.Errorf("%w: %q", ErrBadInput, line)
	}
	var m machine

	lights, ok := enclosed(fields[0], '[', ']')
	if !ok || len(lights) > 64 {
		return machine{}, fmt.Errorf("%w: lights %q", ErrBadInput, fields[0])
	}
	for i, c := range lights {
		if c == '#' {
			m.lights |= 1 << uint(i)
		}
	}

	for _, f := range fields[1 : len(fields)-1] {
		inner, ok := enclosed(f, '(', ')')
		if !ok {
			return machine{}, fmt.Errorf("%w: button %q", ErrBadInput, f)
		}
		b, err := intList(inner)
		if err != nil {
			return machine{}, err
		}
		for _, light := range b {
			if light < 0 || light >= len(lights) {
				return machine{}, fmt.Errorf("%w: button %q wires light %d of %d", ErrBadInput, f, light, len(lights))
			}
		}
		m.buttons = append(m.buttons, b)
	}

	last := fields[len(fields)-1]
	inner, ok := enclosed(last, '{', '}')
	if !ok {
		return machine{}, fmt.Errorf("%w: joltage %q", ErrBadInput, last)
	}
	j, err := intList(inner)
	if err != nil {
		return machine{}, err
	}
	m.joltage = j
	return m, nil
}

func enclosed(s string, left, right byte) (string, bool) {
	if len(s) < 2 || s[0] != left || s[len(s)-1] != right {
		return "", false
	}
	return s[1 : len(s)-1], true
}

func intList(s string) ([]int, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	out := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrBadInput, s)
		}
		out[i] = n
	}
	return out, nil
}
