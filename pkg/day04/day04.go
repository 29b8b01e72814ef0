// Package day04 compares the section assignments of elf pairs.
package day04

import (
	_ "embed"
	"strconv"
	"strings"

	"github.com/pbellens/aoc2022/pkg/aoc"
	"github.com/pbellens/aoc2022/pkg/primitives"
)

//go:embed input.txt
var Input string

var Day = aoc.Day{Number: 4, Input: Input, Solve: Solve}

func init() {
	aoc.Register(Day)
}

// Range is an inclusive range of section IDs.
type Range struct {
	Start, End uint32
}

// Contains reports whether r covers all of other.
func (r Range) Contains(other Range) bool {
	return r.Start <= other.Start && r.End >= other.End
}

// Overlaps reports whether r and other share at least one section.
func (r Range) Overlaps(other Range) bool {
	return r.Start <= other.End && other.Start <= r.End
}

func parseBound(s string) (uint32, error) {
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, aoc.Malformedf("range bound %q should be u32", s)
	}
	return uint32(v), nil
}

func ParseRange(s string) (Range, error) {
	lo, hi, ok := strings.Cut(s, "-")
	if !ok {
		return Range{}, aoc.Malformedf("range %q has no '-'", s)
	}
	start, err := parseBound(lo)
	if err != nil {
		return Range{}, err
	}
	end, err := parseBound(hi)
	if err != nil {
		return Range{}, err
	}
	if start > end {
		return Range{}, aoc.Malformedf("range %q ends before it starts", s)
	}
	return Range{Start: start, End: end}, nil
}

// ParsePair parses a line of two comma separated ranges.
func ParsePair(l string) (Range, Range, error) {
	a, b, ok := strings.Cut(l, ",")
	if !ok {
		return Range{}, Range{}, aoc.Malformedf("each line must have 2 ranges")
	}
	left, err := ParseRange(a)
	if err != nil {
		return Range{}, Range{}, err
	}
	right, err := ParseRange(b)
	if err != nil {
		return Range{}, Range{}, err
	}
	return left, right, nil
}

func Solve(input string) (aoc.Answers, error) {
	var contained, overlapping int
	for i, l := range primitives.Lines(input) {
		left, right, err := ParsePair(l)
		if err != nil {
			return nil, aoc.AtLine(i, l, err)
		}
		if left.Contains(right) || right.Contains(left) {
			contained++
		}
		if left.Overlaps(right) {
			overlapping++
		}
	}
	return aoc.Answers{strconv.Itoa(contained), strconv.Itoa(overlapping)}, nil
}
