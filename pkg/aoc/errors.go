package aoc

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformed marks an input line that does not match the grammar of its day.
	ErrMalformed = errors.New("malformed input")
	// ErrNoResult marks a puzzle state that has no answer, such as a rucksack
	// without a duplicated item.
	ErrNoResult = errors.New("no result")
)

// ParseError locates a failure at a line of the puzzle input.
type ParseError struct {
	Line  int // 1-based
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("line %d %q: %v", e.Line, e.Input, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// AtLine attaches a 0-based line index and its text to err.
func AtLine(index int, input string, err error) error {
	return &ParseError{Line: index + 1, Input: input, Err: err}
}

// Malformedf returns an error wrapping ErrMalformed.
func Malformedf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrMalformed, fmt.Sprintf(format, args...))
}

// NoResultf returns an error wrapping ErrNoResult.
func NoResultf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrNoResult, fmt.Sprintf(format, args...))
}
