// Package day02 scores a rock paper scissors strategy guide.
package day02

import (
	_ "embed"
	"strconv"

	"github.com/pbellens/aoc2022/pkg/aoc"
	"github.com/pbellens/aoc2022/pkg/primitives"
)

//go:embed input.txt
var Input string

var Day = aoc.Day{Number: 2, Input: Input, Solve: Solve}

func init() {
	aoc.Register(Day)
}

type Hand int

const (
	Rock Hand = iota + 1
	Paper
	Scissors
)

// Score is the hand's own contribution to a round.
func (h Hand) Score() int {
	return int(h)
}

func (h Hand) String() string {
	switch h {
	case Rock:
		return "Rock"
	case Paper:
		return "Paper"
	case Scissors:
		return "Scissors"
	}
	return "Hand(" + strconv.Itoa(int(h)) + ")"
}

// beats returns the hand that h defeats.
func (h Hand) beats() Hand {
	return (h+1)%3 + 1
}

// Against returns the outcome for h when played against theirs.
func (h Hand) Against(theirs Hand) Outcome {
	switch theirs {
	case h:
		return Draw
	case h.beats():
		return Win
	}
	return Loss
}

// Counter returns the hand to play against h to reach the given outcome.
func (h Hand) Counter(o Outcome) Hand {
	switch o {
	case Win:
		return h%3 + 1
	case Loss:
		return h.beats()
	}
	return h
}

type Outcome int

const (
	Loss Outcome = 0
	Draw Outcome = 3
	Win  Outcome = 6
)

func (o Outcome) Score() int {
	return int(o)
}

func ParseHand(c byte) (Hand, error) {
	switch c {
	case 'A', 'X':
		return Rock, nil
	case 'B', 'Y':
		return Paper, nil
	case 'C', 'Z':
		return Scissors, nil
	}
	return 0, aoc.Malformedf("unknown hand %q", c)
}

func ParseOutcome(c byte) (Outcome, error) {
	switch c {
	case 'X':
		return Loss, nil
	case 'Y':
		return Draw, nil
	case 'Z':
		return Win, nil
	}
	return 0, aoc.Malformedf("unknown outcome %q", c)
}

// Round is a line of the guide read as two hands.
type Round struct {
	Theirs Hand
	Mine   Hand
}

func (r Round) Score() int {
	return r.Mine.Score() + r.Mine.Against(r.Theirs).Score()
}

// FixedRound is a line of the guide read as a hand and the outcome to reach.
type FixedRound struct {
	Theirs Hand
	Want   Outcome
}

func (r FixedRound) Score() int {
	return r.Theirs.Counter(r.Want).Score() + r.Want.Score()
}

func splitLine(l string) (byte, byte, error) {
	if len(l) != 3 || l[1] != ' ' {
		return 0, 0, aoc.Malformedf("want two columns separated by a space")
	}
	return l[0], l[2], nil
}

func ParseRound(l string) (Round, error) {
	a, b, err := splitLine(l)
	if err != nil {
		return Round{}, err
	}
	theirs, err := ParseHand(a)
	if err != nil {
		return Round{}, err
	}
	mine, err := ParseHand(b)
	if err != nil {
		return Round{}, err
	}
	return Round{Theirs: theirs, Mine: mine}, nil
}

func ParseFixedRound(l string) (FixedRound, error) {
	a, b, err := splitLine(l)
	if err != nil {
		return FixedRound{}, err
	}
	theirs, err := ParseHand(a)
	if err != nil {
		return FixedRound{}, err
	}
	want, err := ParseOutcome(b)
	if err != nil {
		return FixedRound{}, err
	}
	return FixedRound{Theirs: theirs, Want: want}, nil
}

func Solve(input string) (aoc.Answers, error) {
	var total1, total2 int
	for i, l := range primitives.Lines(input) {
		r, err := ParseRound(l)
		if err != nil {
			return nil, aoc.AtLine(i, l, err)
		}
		total1 += r.Score()

		f, err := ParseFixedRound(l)
		if err != nil {
			return nil, aoc.AtLine(i, l, err)
		}
		total2 += f.Score()
	}
	return aoc.Answers{strconv.Itoa(total1), strconv.Itoa(total2)}, nil
}
