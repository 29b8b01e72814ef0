// Package day01 totals the calories carried by each elf.
package day01

import (
	_ "embed"
	"strconv"

	"github.com/pbellens/aoc2022/pkg/aoc"
	"github.com/pbellens/aoc2022/pkg/primitives"
)

//go:embed input.txt
var Input string

var Day = aoc.Day{Number: 1, Input: Input, Solve: Solve}

func init() {
	aoc.Register(Day)
}

// ParseTotals returns the sum of every blank-line separated group of
// calorie counts, in input order.
func ParseTotals(input string) ([]uint64, error) {
	groups := primitives.Groups(primitives.Lines(input))
	totals := make([]uint64, 0, len(groups))
	for _, g := range groups {
		var sum uint64
		for i, l := range g.Lines {
			v, err := strconv.ParseUint(l, 10, 64)
			if err != nil {
				return nil, aoc.AtLine(g.Start+i, l, aoc.Malformedf("calories must be an unsigned integer"))
			}
			sum += v
		}
		totals = append(totals, sum)
	}
	return totals, nil
}

func Solve(input string) (aoc.Answers, error) {
	totals, err := ParseTotals(input)
	if err != nil {
		return nil, err
	}
	if len(totals) == 0 {
		return nil, aoc.NoResultf("no elves in input")
	}

	top := aoc.TopN(totals, 3)
	return aoc.Answers{
		strconv.FormatUint(top[0], 10),
		strconv.FormatUint(aoc.Sum(top), 10),
	}, nil
}
