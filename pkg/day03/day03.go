// Package day03 finds the misplaced items in elf rucksacks.
package day03

import (
	_ "embed"
	"strconv"

	"github.com/pbellens/aoc2022/pkg/aoc"
	"github.com/pbellens/aoc2022/pkg/primitives"
)

//go:embed input.txt
var Input string

var Day = aoc.Day{Number: 3, Input: Input, Solve: Solve}

func init() {
	aoc.Register(Day)
}

const groupSize = 3

// common returns the priority of the lowest priority item present in every set.
func common(sets ...*primitives.ItemSet) (int, error) {
	shared := sets[0].Clone()
	for _, s := range sets[1:] {
		shared.Intersect(s)
	}
	item, ok := shared.First()
	if !ok {
		return 0, aoc.NoResultf("no item in common")
	}
	return primitives.Priority(item)
}

// Misplaced returns the priority of the item found in both compartments of a rucksack.
func Misplaced(rucksack string) (int, error) {
	if len(rucksack)%2 != 0 {
		return 0, aoc.Malformedf("compartments of unequal size")
	}
	left, err := primitives.ItemSetOf(rucksack[:len(rucksack)/2])
	if err != nil {
		return 0, aoc.Malformedf("%v", err)
	}
	right, err := primitives.ItemSetOf(rucksack[len(rucksack)/2:])
	if err != nil {
		return 0, aoc.Malformedf("%v", err)
	}
	return common(left, right)
}

// Badge returns the priority of the item carried by every rucksack of a group.
func Badge(group []string) (int, error) {
	sets := make([]*primitives.ItemSet, len(group))
	for i, r := range group {
		s, err := primitives.ItemSetOf(r)
		if err != nil {
			return 0, aoc.Malformedf("%v", err)
		}
		sets[i] = s
	}
	return common(sets...)
}

func Solve(input string) (aoc.Answers, error) {
	lines := primitives.Lines(input)
	if len(lines)%groupSize != 0 {
		return nil, aoc.Malformedf("%d rucksacks do not split into groups of %d", len(lines), groupSize)
	}

	var total1 int
	for i, l := range lines {
		p, err := Misplaced(l)
		if err != nil {
			return nil, aoc.AtLine(i, l, err)
		}
		total1 += p
	}

	var total2 int
	for i, group := range primitives.Chunks(lines, groupSize) {
		p, err := Badge(group)
		if err != nil {
			return nil, aoc.AtLine(i*groupSize, group[0], err)
		}
		total2 += p
	}
	return aoc.Answers{strconv.Itoa(total1), strconv.Itoa(total2)}, nil
}
