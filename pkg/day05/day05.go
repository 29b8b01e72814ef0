// Package day05 rearranges stacks of crates with a crane that moves one
// crate at a time.
//
// The input is a drawing of the piles followed by a blank line and one
// instruction per line:
//
//	    [D]
//	[N] [C]
//	[Z] [M] [P]
//	 1   2   3
//
//	move 1 from 2 to 1
//
// Each slot of the drawing is three characters wide and slots are separated
// by one space.
package day05

import (
	_ "embed"

	"github.com/pbellens/aoc2022/pkg/aoc"
	"github.com/pbellens/aoc2022/pkg/primitives"
)

//go:embed input.txt
var Input string

var Day = aoc.Day{Number: 5, Input: Input, Solve: Solve}

func init() {
	aoc.Register(Day)
}

// Rearrange parses the drawing, applies every instruction in order and
// returns the final piles.
func Rearrange(input string) (Piles, error) {
	lines := primitives.Lines(input)
	piles, consumed, err := ParseDiagram(lines)
	if err != nil {
		return nil, err
	}

	for i, l := range lines[consumed:] {
		in, err := ParseInstruction(l)
		if err != nil {
			return nil, aoc.AtLine(consumed+i, l, err)
		}
		if err := piles.Apply(in); err != nil {
			return nil, aoc.AtLine(consumed+i, l, err)
		}
	}
	return piles, nil
}

// Solve reports the top crate of each pile. Only the first part exists.
func Solve(input string) (aoc.Answers, error) {
	piles, err := Rearrange(input)
	if err != nil {
		return nil, err
	}
	tops, err := piles.Tops()
	if err != nil {
		return nil, err
	}
	return aoc.Answers{FormatCrates(tops)}, nil
}
