package day05

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pbellens/aoc2022/pkg/aoc"
)

// Instruction moves Quantity crates, one at a time, from pile Src to pile Dst.
// Src and Dst are zero-based.
type Instruction struct {
	Quantity int
	Src      int
	Dst      int
}

func (in Instruction) String() string {
	return fmt.Sprintf("move %d from %d to %d", in.Quantity, in.Src+1, in.Dst+1)
}

// takeNumber consumes the leading run of ASCII digits of s.
func takeNumber(s string) (int, string, error) {
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0, s, fmt.Errorf("want a number at %q", s)
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, s, fmt.Errorf("number %q: %w", s[:end], err)
	}
	return n, s[end:], nil
}

func takePile(s string) (int, string, error) {
	n, rest, err := takeNumber(s)
	if err != nil {
		return 0, s, err
	}
	if n == 0 {
		return 0, s, fmt.Errorf("piles are numbered from 1")
	}
	return n - 1, rest, nil
}

// ParseInstruction parses a whole line of the form "move N from S to D".
func ParseInstruction(line string) (Instruction, error) {
	var (
		in   Instruction
		rest = line
		ok   bool
		err  error
	)
	if rest, ok = strings.CutPrefix(rest, "move "); !ok {
		return Instruction{}, aoc.Malformedf(`want "move "`)
	}
	if in.Quantity, rest, err = takeNumber(rest); err != nil {
		return Instruction{}, aoc.Malformedf("quantity: %v", err)
	}
	if rest, ok = strings.CutPrefix(rest, " from "); !ok {
		return Instruction{}, aoc.Malformedf(`want " from " at %q`, rest)
	}
	if in.Src, rest, err = takePile(rest); err != nil {
		return Instruction{}, aoc.Malformedf("source: %v", err)
	}
	if rest, ok = strings.CutPrefix(rest, " to "); !ok {
		return Instruction{}, aoc.Malformedf(`want " to " at %q`, rest)
	}
	if in.Dst, rest, err = takePile(rest); err != nil {
		return Instruction{}, aoc.Malformedf("destination: %v", err)
	}
	if rest != "" {
		return Instruction{}, aoc.Malformedf("trailing %q", rest)
	}
	return in, nil
}
