package aoc

import (
	"slices"

	"golang.org/x/exp/constraints"
)

// Sum adds up vs.
func Sum[T constraints.Integer](vs []T) T {
	var total T
	for _, v := range vs {
		total += v
	}
	return total
}

// TopN returns the n largest values of vs in descending order. It returns
// fewer than n values when vs is shorter. vs is not modified.
func TopN[T constraints.Ordered](vs []T, n int) []T {
	sorted := slices.Clone(vs)
	slices.Sort(sorted)
	slices.Reverse(sorted)
	return sorted[:min(n, len(sorted))]
}
