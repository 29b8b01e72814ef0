package day05

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/pbellens/aoc2022/pkg/aoc"
)

// Crate is a crate labelled with a single character. The zero Crate marks an
// empty slot in a Row.
type Crate rune

const NoCrate Crate = 0

func (c Crate) Present() bool {
	return c != NoCrate
}

func (c Crate) String() string {
	if !c.Present() {
		return "   "
	}
	return "[" + string(c) + "]"
}

// Row is one line of the drawing: a horizontal cross-section of every pile,
// one slot per pile.
type Row []Crate

const (
	slotWidth = 3
	emptySlot = "   "
)

// parseSlot decodes exactly one slot: a bracketed label or three blanks.
func parseSlot(s []rune) (Crate, error) {
	if len(s) < slotWidth {
		return NoCrate, fmt.Errorf("truncated slot %q", string(s))
	}
	slot := s[:slotWidth]
	if string(slot) == emptySlot {
		return NoCrate, nil
	}
	if slot[0] != '[' || slot[2] != ']' {
		return NoCrate, fmt.Errorf("slot %q is neither a crate nor empty", string(slot))
	}
	if !unicode.IsPrint(slot[1]) || slot[1] == ' ' {
		return NoCrate, fmt.Errorf("crate label %q is not printable", slot[1])
	}
	return Crate(slot[1]), nil
}

// ParseRow decodes a drawing line into its slots. Slots are separated by a
// single space and the whole line must be consumed.
func ParseRow(line string) (Row, error) {
	if !utf8.ValidString(line) {
		return nil, aoc.Malformedf("row is not valid UTF-8")
	}
	rs := []rune(line)
	var row Row
	pos := 0
	for {
		c, err := parseSlot(rs[pos:])
		if err != nil {
			return nil, aoc.Malformedf("column %d: %v", pos+1, err)
		}
		row = append(row, c)
		pos += slotWidth
		if pos == len(rs) {
			return row, nil
		}
		if rs[pos] != ' ' {
			return nil, aoc.Malformedf("column %d: want a space between slots, got %q", pos+1, rs[pos])
		}
		pos++
	}
}

// FormatRow renders a row back into a drawing line.
func FormatRow(row Row) string {
	slots := make([]string, len(row))
	for i, c := range row {
		slots[i] = c.String()
	}
	return strings.Join(slots, " ")
}

type LineKind int

const (
	Unknown LineKind = iota
	PileRow
	NumberingRow
	Blank
)

func (k LineKind) String() string {
	switch k {
	case PileRow:
		return "pile row"
	case NumberingRow:
		return "numbering row"
	case Blank:
		return "blank"
	}
	return "unknown"
}

// parseNumbering returns the number of piles declared by a line like
// " 1   2   3 ". Piles must be numbered 1 to N in order.
func parseNumbering(line string) (int, bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return 0, false
	}
	for i, f := range fields {
		if n, err := strconv.Atoi(f); err != nil || n != i+1 {
			return 0, false
		}
	}
	return len(fields), true
}

// Classify tells which part of the drawing a line belongs to.
func Classify(line string) LineKind {
	if line == "" {
		return Blank
	}
	if _, ok := parseNumbering(line); ok {
		return NumberingRow
	}
	if _, err := ParseRow(line); err == nil {
		return PileRow
	}
	return Unknown
}

// BuildPiles transposes the drawing rows, given top row first, into piles
// ordered bottom to top. Every row must have the same number of slots.
func BuildPiles(rows []Row) (Piles, error) {
	if len(rows) == 0 {
		return nil, aoc.Malformedf("drawing has no rows")
	}
	width := len(rows[0])
	for i, r := range rows {
		if len(r) != width {
			return nil, fmt.Errorf("%w: row %d has %d slots, row 1 has %d", ErrRaggedDiagram, i+1, len(r), width)
		}
	}

	piles := make(Piles, width)
	for col := range width {
		for i := len(rows) - 1; i >= 0; i-- {
			if c := rows[i][col]; c.Present() {
				piles[col] = append(piles[col], c)
			}
		}
	}
	return piles, nil
}

// ParseDiagram reads the drawing at the head of lines: pile rows, the
// numbering row and a blank separator. It returns the piles and the number
// of lines consumed.
func ParseDiagram(lines []string) (Piles, int, error) {
	var rows []Row
	for i, l := range lines {
		switch kind := Classify(l); kind {
		case PileRow:
			row, _ := ParseRow(l)
			rows = append(rows, row)
		case NumberingRow:
			n, _ := parseNumbering(l)
			for j, r := range rows {
				if len(r) != n {
					return nil, 0, aoc.AtLine(j, lines[j], fmt.Errorf("%w: %d slots for %d piles", ErrRaggedDiagram, len(r), n))
				}
			}
			piles, err := BuildPiles(rows)
			if err != nil {
				return nil, 0, aoc.AtLine(i, l, err)
			}
			if i+1 >= len(lines) || lines[i+1] != "" {
				return nil, 0, aoc.AtLine(i, l, aoc.Malformedf("drawing must be followed by a blank line"))
			}
			return piles, i + 2, nil
		default:
			// Anything else fails ParseRow; report why.
			_, err := ParseRow(l)
			return nil, 0, aoc.AtLine(i, l, fmt.Errorf("%v line in drawing: %w", kind, err))
		}
	}
	return nil, 0, aoc.Malformedf("drawing has no numbering row")
}
