package day05

import (
	"errors"
	"fmt"
	"strings"

	"github.com/pbellens/aoc2022/pkg/aoc"
)

var (
	ErrUnderflow     = errors.New("pile underflow")
	ErrPileIndex     = errors.New("pile index out of range")
	ErrEmptyPile     = fmt.Errorf("%w: empty pile", aoc.ErrNoResult)
	ErrRaggedDiagram = fmt.Errorf("%w: drawing rows differ in width", aoc.ErrMalformed)
)

// Pile is a stack of crates, bottom first.
type Pile []Crate

// Piles holds every pile, indexed from zero.
type Piles []Pile

func (p Piles) checkIndex(i int) error {
	if i < 0 || i >= len(p) {
		return fmt.Errorf("%w: pile %d of %d", ErrPileIndex, i+1, len(p))
	}
	return nil
}

// Apply executes in by moving crates one at a time from the top of the
// source pile onto the destination pile, so the moved crates end up in
// reverse order. The piles are unchanged when Apply returns an error.
func (p Piles) Apply(in Instruction) error {
	if err := p.checkIndex(in.Src); err != nil {
		return err
	}
	if err := p.checkIndex(in.Dst); err != nil {
		return err
	}
	if in.Quantity < 0 || len(p[in.Src]) < in.Quantity {
		return fmt.Errorf("%w: %v with %d crates on pile %d", ErrUnderflow, in, len(p[in.Src]), in.Src+1)
	}

	for range in.Quantity {
		src := p[in.Src]
		c := src[len(src)-1]
		p[in.Src] = src[:len(src)-1]
		p[in.Dst] = append(p[in.Dst], c)
	}
	return nil
}

// Count returns the number of crates over all piles.
func (p Piles) Count() int {
	n := 0
	for _, pile := range p {
		n += len(pile)
	}
	return n
}

// Tops returns the top crate of every pile, in pile order.
func (p Piles) Tops() ([]Crate, error) {
	tops := make([]Crate, len(p))
	for i, pile := range p {
		if len(pile) == 0 {
			return nil, fmt.Errorf("%w: pile %d", ErrEmptyPile, i+1)
		}
		tops[i] = pile[len(pile)-1]
	}
	return tops, nil
}

func (p Piles) String() string {
	var b strings.Builder
	for i, pile := range p {
		fmt.Fprintf(&b, "Pile %d: %s\n", i, FormatCrates(pile))
	}
	return b.String()
}

// FormatCrates renders crates as a list of quoted labels, e.g. ['C', 'M', 'Z'].
func FormatCrates(crates []Crate) string {
	labels := make([]string, len(crates))
	for i, c := range crates {
		labels[i] = fmt.Sprintf("%q", rune(c))
	}
	return "[" + strings.Join(labels, ", ") + "]"
}
