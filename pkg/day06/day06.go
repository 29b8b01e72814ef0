// Package day06 locates markers in a communication device's datastream.
package day06

import (
	_ "embed"
	"strconv"

	"github.com/pbellens/aoc2022/pkg/aoc"
	"github.com/pbellens/aoc2022/pkg/primitives"
)

//go:embed input.txt
var Input string

var Day = aoc.Day{Number: 6, Input: Input, Solve: Solve}

func init() {
	aoc.Register(Day)
}

const (
	PacketWindow  = 4
	MessageWindow = 14
)

// FindMarker returns how many bytes of signal are consumed when the first
// run of window distinct bytes has been read.
func FindMarker(signal string, window int) (int, error) {
	if window <= 0 {
		return 0, aoc.Malformedf("window must be positive, got %d", window)
	}
	var (
		counts   [256]int
		distinct int
	)
	for end := 0; end < len(signal); end++ {
		if counts[signal[end]]++; counts[signal[end]] == 1 {
			distinct++
		}
		if end >= window {
			if counts[signal[end-window]]--; counts[signal[end-window]] == 0 {
				distinct--
			}
		}
		if distinct == window {
			return end + 1, nil
		}
	}
	return 0, aoc.NoResultf("no %d distinct characters in a row", window)
}

func Solve(input string) (aoc.Answers, error) {
	lines := primitives.Lines(input)
	if len(lines) != 1 {
		return nil, aoc.Malformedf("want a single line datastream, got %d lines", len(lines))
	}

	var answers aoc.Answers
	for _, window := range []int{PacketWindow, MessageWindow} {
		n, err := FindMarker(lines[0], window)
		if err != nil {
			return nil, aoc.AtLine(0, lines[0], err)
		}
		answers = append(answers, strconv.Itoa(n))
	}
	return answers, nil
}
