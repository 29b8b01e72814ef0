// Package aoc holds what the daily puzzle solvers share: the answer type,
// the registry of days, the report format and the expected answers.
package aoc

import (
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// Answers holds the answer to each part of a puzzle, in part order.
type Answers []string

// Solver computes the answers of one day from its input.
type Solver func(input string) (Answers, error)

// Day is a registered puzzle together with its embedded input.
type Day struct {
	Number int
	Input  string
	Solve  Solver
}

// Name returns the canonical name of the day, e.g. "day05".
func (d Day) Name() string {
	return fmt.Sprintf("day%02d", d.Number)
}

var registry = map[int]Day{}

// Register makes a day available to Lookup and Days. It panics if the day
// number is already taken, since that is a programming error.
func Register(d Day) {
	if _, ok := registry[d.Number]; ok {
		panic(fmt.Sprintf("aoc: %s registered twice", d.Name()))
	}
	registry[d.Number] = d
}

// Days returns every registered day, ordered by number.
func Days() []Day {
	days := make([]Day, 0, len(registry))
	for _, d := range registry {
		days = append(days, d)
	}
	slices.SortFunc(days, func(a, b Day) int { return a.Number - b.Number })
	return days
}

// Lookup finds a day by name. "5", "05", "day5" and "day05" all name day 5.
func Lookup(name string) (Day, error) {
	n, err := strconv.Atoi(strings.TrimPrefix(strings.ToLower(name), "day"))
	if err != nil {
		return Day{}, fmt.Errorf("invalid day %q", name)
	}
	d, ok := registry[n]
	if !ok {
		return Day{}, fmt.Errorf("day %d is not registered", n)
	}
	return d, nil
}

// Report writes one "Answer for part N is V" line per part.
func Report(w io.Writer, answers Answers) error {
	for i, a := range answers {
		if _, err := fmt.Fprintf(w, "Answer for part %d is %s\n", i+1, a); err != nil {
			return err
		}
	}
	return nil
}

// Run solves d against its embedded input and reports the answers to w.
// Nothing is written to w when solving fails.
func Run(logger *zap.Logger, w io.Writer, d Day) (Answers, error) {
	answers, err := d.Solve(d.Input)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", d.Name(), err)
	}
	logger.Debug("solved puzzle", zap.String("day", d.Name()), zap.Strings("answers", answers))
	if err := Report(w, answers); err != nil {
		return nil, fmt.Errorf("%s: writing answers: %w", d.Name(), err)
	}
	return answers, nil
}
