package puzzle

import (
	"regexp"
	"strconv"
	"strings"
)

var intPattern = regexp.MustCompile(`-?\d+`)

// Normalize strips carriage returns and trailing blank lines.
func Normalize(input string) string {
	input = strings.ReplaceAll(input, "\r", "")
	return strings.TrimRight(input, "\n \t")
}

// Lines splits normalized input into lines.
func Lines(input string) []string {
	input = Normalize(input)
	if input == "" {
		return nil
	}
	return strings.Split(input, "\n")
}

// Blocks splits normalized input on blank lines.
func Blocks(input string) []string {
	input = Normalize(input)
	if input == "" {
		return nil
	}
	return strings.Split(input, "\n\n")
}

// Ints extracts every signed decimal integer in s.
func Ints(s string) ([]int64, error) {
	matches := intPattern.FindAllString(s, -1)
	out := make([]int64, 0, len(matches))
	for _, m := range matches {
		n, err := strconv.ParseInt(m, 10, 64)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}
