package aoc

import (
	_ "embed"
	"fmt"
	"slices"

	"gopkg.in/yaml.v3"
)

//go:embed answers.yaml
var answersYAML []byte

// Expected returns the known answers for the embedded inputs, keyed by day name.
func Expected() (map[string]Answers, error) {
	return parseExpected(answersYAML)
}

func parseExpected(data []byte) (map[string]Answers, error) {
	var expected map[string]Answers
	if err := yaml.Unmarshal(data, &expected); err != nil {
		return nil, fmt.Errorf("parsing expected answers: %w", err)
	}
	return expected, nil
}

// Check compares the answers of d to the expected ones.
func Check(expected map[string]Answers, d Day, got Answers) error {
	want, ok := expected[d.Name()]
	if !ok {
		return fmt.Errorf("%s: no expected answers", d.Name())
	}
	if !slices.Equal(want, got) {
		return fmt.Errorf("%s: got %q, want %q", d.Name(), []string(got), []string(want))
	}
	return nil
}
