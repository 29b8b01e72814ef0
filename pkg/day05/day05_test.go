package day05

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pbellens/aoc2022/pkg/aoc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const drawing = "    [D]    \n[N] [C]    \n[Z] [M] [P]\n 1   2   3 \n\n"

func samplePiles() Piles {
	return Piles{{'Z', 'N'}, {'M', 'C', 'D'}, {'P'}}
}

func TestParseRow(t *testing.T) {
	tests := []struct {
		line string
		want Row
	}{
		{"    [D]    ", Row{NoCrate, 'D', NoCrate}},
		{"[N] [C]    ", Row{'N', 'C', NoCrate}},
		{"[Z] [M] [P]", Row{'Z', 'M', 'P'}},
		{"   ", Row{NoCrate}},
		{"[]]", Row{']'}},
		{"[é] [x]", Row{'é', 'x'}},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got, err := ParseRow(tt.line)
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ParseRow() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseRowErrors(t *testing.T) {
	for _, line := range []string{
		"",
		"[Z][M]",
		"[Z]  [M]",
		"[Z] ",
		"[Z] [M",
		"[ZZ]",
		"(Z)",
		"[ ]",
		"[\xff]",
		"[A] [\xc3]",
		" 1   2   3 ",
	} {
		_, err := ParseRow(line)
		assert.ErrorIs(t, err, aoc.ErrMalformed, "line %q", line)
	}
}

func TestRowRoundTrip(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	for range 200 {
		row := make(Row, 1+r.IntN(9))
		for i := range row {
			if r.IntN(3) > 0 {
				row[i] = Crate('A' + r.IntN(26))
			}
		}
		got, err := ParseRow(FormatRow(row))
		require.NoError(t, err, FormatRow(row))
		if diff := cmp.Diff(row, got); diff != "" {
			t.Fatalf("round trip of %q mismatch (-want +got):\n%s", FormatRow(row), diff)
		}
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		line string
		want LineKind
	}{
		{"    [D]    ", PileRow},
		{"[Z] [M] [P]", PileRow},
		{" 1   2   3 ", NumberingRow},
		{" 1   2   3", NumberingRow},
		{"", Blank},
		{"move 1 from 2 to 1", Unknown},
		{" 2   1 ", Unknown},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Classify(tt.line), "line %q", tt.line)
	}
	assert.Equal(t, "numbering row", NumberingRow.String())
}

func TestBuildPiles(t *testing.T) {
	rows := []Row{
		{NoCrate, 'D', NoCrate},
		{'N', 'C', NoCrate},
		{'Z', 'M', 'P'},
	}
	got, err := BuildPiles(rows)
	require.NoError(t, err)
	if diff := cmp.Diff(samplePiles(), got); diff != "" {
		t.Errorf("BuildPiles() mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildPilesSizesMatchColumns(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 4))
	for range 50 {
		width := 1 + r.IntN(9)
		rows := make([]Row, 1+r.IntN(8))
		counts := make([]int, width)
		for i := range rows {
			rows[i] = make(Row, width)
			for col := range width {
				if r.IntN(2) == 0 {
					rows[i][col] = Crate('a' + r.IntN(26))
					counts[col]++
				}
			}
		}
		piles, err := BuildPiles(rows)
		require.NoError(t, err)
		require.Len(t, piles, width)
		for col, pile := range piles {
			assert.Len(t, pile, counts[col], "column %d", col)
		}
	}
}

func TestBuildPilesErrors(t *testing.T) {
	_, err := BuildPiles(nil)
	assert.ErrorIs(t, err, aoc.ErrMalformed)

	_, err = BuildPiles([]Row{{'A', 'B'}, {'C'}})
	assert.ErrorIs(t, err, ErrRaggedDiagram)
	assert.ErrorIs(t, err, aoc.ErrMalformed)
}

func TestParseDiagram(t *testing.T) {
	lines := []string{"    [D]    ", "[N] [C]    ", "[Z] [M] [P]", " 1   2   3 ", "", "move 1 from 2 to 1"}
	piles, consumed, err := ParseDiagram(lines)
	require.NoError(t, err)
	assert.Equal(t, 5, consumed)
	if diff := cmp.Diff(samplePiles(), piles); diff != "" {
		t.Errorf("ParseDiagram() mismatch (-want +got):\n%s", diff)
	}
}

func TestParseDiagramErrors(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  error
	}{
		{"trailing blanks trimmed", []string{"    [D]", "[N] [C]    ", "[Z] [M] [P]", " 1   2   3 ", ""}, ErrRaggedDiagram},
		{"more piles than slots", []string{"[Z] [M]", " 1   2   3 ", ""}, ErrRaggedDiagram},
		{"no numbering row", []string{"[Z] [M]", "[A] [B]"}, aoc.ErrMalformed},
		{"no separator", []string{"[Z] [M]", " 1   2 ", "move 1 from 1 to 2"}, aoc.ErrMalformed},
		{"garbage row", []string{"[Z] [M]", "{A} [B]", " 1   2 ", ""}, aoc.ErrMalformed},
		{"blank inside drawing", []string{"[Z] [M]", "", " 1   2 ", ""}, aoc.ErrMalformed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := ParseDiagram(tt.lines)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestParseInstruction(t *testing.T) {
	got, err := ParseInstruction("move 3 from 1 to 3")
	require.NoError(t, err)
	assert.Equal(t, Instruction{Quantity: 3, Src: 0, Dst: 2}, got)
	assert.Equal(t, "move 3 from 1 to 3", got.String())

	got, err = ParseInstruction("move 0 from 12 to 9")
	require.NoError(t, err)
	assert.Equal(t, Instruction{Quantity: 0, Src: 11, Dst: 8}, got)
}

func TestParseInstructionErrors(t *testing.T) {
	for _, line := range []string{
		"",
		"Move 3 from 1 to 3",
		"move  3 from 1 to 3",
		"move 3 from 1 to 3 ",
		"move 3 from 1 to 3x",
		"move 3 from 1 to",
		"move 3 from 0 to 1",
		"move 3 from 1 to 0",
		"move -1 from 1 to 2",
		"move 3 frm 1 to 2",
		"move 99999999999999999999 from 1 to 2",
	} {
		_, err := ParseInstruction(line)
		assert.ErrorIs(t, err, aoc.ErrMalformed, "line %q", line)
	}
}

func TestApplyMovesOneAtATime(t *testing.T) {
	piles := Piles{{'A', 'B', 'C'}, {}}
	require.NoError(t, piles.Apply(Instruction{Quantity: 2, Src: 0, Dst: 1}))
	if diff := cmp.Diff(Piles{{'A'}, {'C', 'B'}}, piles); diff != "" {
		t.Errorf("Apply() mismatch (-want +got):\n%s", diff)
	}
}

func TestApplySample(t *testing.T) {
	piles := samplePiles()
	for _, in := range []Instruction{
		{Quantity: 1, Src: 1, Dst: 0},
		{Quantity: 3, Src: 0, Dst: 2},
		{Quantity: 2, Src: 1, Dst: 0},
		{Quantity: 1, Src: 0, Dst: 1},
	} {
		require.NoError(t, piles.Apply(in), in.String())
	}
	if diff := cmp.Diff(Piles{{'C'}, {'M'}, {'P', 'D', 'N', 'Z'}}, piles); diff != "" {
		t.Errorf("Apply() mismatch (-want +got):\n%s", diff)
	}

	tops, err := piles.Tops()
	require.NoError(t, err)
	assert.Equal(t, "['C', 'M', 'Z']", FormatCrates(tops))
}

func TestApplyZeroQuantity(t *testing.T) {
	piles := samplePiles()
	require.NoError(t, piles.Apply(Instruction{Quantity: 0, Src: 2, Dst: 0}))
	assert.Equal(t, samplePiles(), piles)
}

func TestApplyErrorsLeavePilesUnchanged(t *testing.T) {
	tests := []struct {
		name string
		in   Instruction
		want error
	}{
		{"underflow", Instruction{Quantity: 2, Src: 2, Dst: 0}, ErrUnderflow},
		{"source out of range", Instruction{Quantity: 1, Src: 3, Dst: 0}, ErrPileIndex},
		{"destination out of range", Instruction{Quantity: 1, Src: 0, Dst: 7}, ErrPileIndex},
		{"negative index", Instruction{Quantity: 1, Src: -1, Dst: 0}, ErrPileIndex},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			piles := samplePiles()
			err := piles.Apply(tt.in)
			assert.ErrorIs(t, err, tt.want)
			assert.Equal(t, samplePiles(), piles)
		})
	}
}

func TestApplyConservesCrates(t *testing.T) {
	r := rand.New(rand.NewPCG(5, 6))
	for range 50 {
		piles := make(Piles, 1+r.IntN(9))
		for i := range piles {
			for range r.IntN(10) {
				piles[i] = append(piles[i], Crate('A'+r.IntN(26)))
			}
		}
		total := piles.Count()

		for range 100 {
			src, dst := r.IntN(len(piles)), r.IntN(len(piles))
			in := Instruction{Quantity: r.IntN(len(piles[src]) + 1), Src: src, Dst: dst}
			require.NoError(t, piles.Apply(in))
			require.Equal(t, total, piles.Count(), "after %v", in)
		}
	}
}

func TestTopsEmptyPile(t *testing.T) {
	_, err := Piles{{'A'}, {}}.Tops()
	assert.ErrorIs(t, err, ErrEmptyPile)
	assert.ErrorIs(t, err, aoc.ErrNoResult)
}

func TestPilesString(t *testing.T) {
	assert.Equal(t, "Pile 0: ['Z', 'N']\nPile 1: []\n", Piles{{'Z', 'N'}, {}}.String())
}

func TestRearrange(t *testing.T) {
	piles, err := Rearrange(Input)
	require.NoError(t, err)
	if diff := cmp.Diff(Piles{{'C'}, {'M'}, {'P', 'D', 'N', 'Z'}}, piles); diff != "" {
		t.Errorf("Rearrange() mismatch (-want +got):\n%s", diff)
	}
}

func TestSolve(t *testing.T) {
	got, err := Solve(Input)
	require.NoError(t, err)
	assert.Equal(t, aoc.Answers{"['C', 'M', 'Z']"}, got)
}

func TestSolveErrors(t *testing.T) {
	_, err := Solve(drawing + "move 4 from 2 to 1\n")
	require.ErrorIs(t, err, ErrUnderflow)
	var perr *aoc.ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, 6, perr.Line)

	_, err = Solve(drawing + "move 1 from 4 to 1\n")
	assert.ErrorIs(t, err, ErrPileIndex)

	_, err = Solve(drawing + "move 1 from 2 to 1\nfly 1 from 2 to 1\n")
	assert.ErrorIs(t, err, aoc.ErrMalformed)

	_, err = Solve(drawing + "move 1 from 3 to 1\n")
	assert.ErrorIs(t, err, ErrEmptyPile)
}
