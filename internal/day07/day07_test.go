package day07

import (
	_ "embed"
	"testing"

	"github.com/Arinono/aoc-2025/internal/puzzle"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//go:embed testdata/example.txt
var example string

func TestMain(m *testing.M) {
	Log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	m.Run()
}

func TestParse(t *testing.T) {
	g, err := Parse(example)
	require.NoError(t, err)

	assert.Equal(t, 16, g.Height())
	assert.Equal(t, ".......S.......", g.rows[0].String())
	assert.Equal(t, 0, g.Row())
	assert.Equal(t, []Timeline{{Column: 7, Weight: 1}}, g.Timelines())
}

func TestParsePreseededPath(t *testing.T) {
	g, err := Parse(".S.T\n.^|.\n....")
	require.NoError(t, err)
	assert.Equal(t, ".S.|\n.^|.\n....", g.String())
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		err    error
		line   int
		column int
	}{
		{"empty", "", ErrMissingStart, 1, 0},
		{"no start", "...\n.^.\n...", ErrMissingStart, 1, 0},
		{"two starts", ".S.S.", ErrMissingStart, 1, 4},
		{"start below first row", ".S.\n.S.", ErrMissingStart, 2, 2},
		{"bad character", ".S.\n.x.", ErrMalformedCharacter, 2, 2},
		{"empty row", ".S.\n\n...", ErrEmptyRow, 2, 0},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := Parse(test.input)
			require.ErrorIs(t, err, test.err)

			var pe *puzzle.ParseError
			require.ErrorAs(t, err, &pe)
			assert.Equal(t, test.line, pe.Line)
			assert.Equal(t, test.column, pe.Column)
		})
	}
}

func TestParseTrailingNewlines(t *testing.T) {
	g, err := Parse(".S.\n...\n\n")
	require.NoError(t, err)
	assert.Equal(t, 2, g.Height())
}

func TestAdvance(t *testing.T) {
	g, err := Parse(example)
	require.NoError(t, err)

	require.NoError(t, g.Advance())
	require.NoError(t, g.Advance())

	assert.Equal(t, 2, g.Row())
	assert.Equal(t, ".......S.......", g.rows[0].String())
	assert.Equal(t, ".......|.......", g.rows[1].String())
	assert.Equal(t, "......|^|......", g.rows[2].String())
	assert.Equal(t, uint64(1), g.Splits())
	assert.Equal(t, []Timeline{{6, 1}, {8, 1}}, g.Timelines())
}

func TestFullRun(t *testing.T) {
	g, err := Parse(example)
	require.NoError(t, err)

	result, err := g.Run()
	require.NoError(t, err)

	assert.True(t, g.Done())
	assert.Equal(t, Result{Splits: 21, Timelines: 40}, result)
	assert.ErrorIs(t, g.Advance(), ErrFinished)
}

func TestSingleSplit(t *testing.T) {
	g, err := Parse(".S.\n.^.\n...")
	require.NoError(t, err)

	require.NoError(t, g.Advance())
	assert.Equal(t, uint64(1), g.Splits())
	assert.Equal(t, []Timeline{{0, 1}, {2, 1}}, g.Timelines())
	assert.Equal(t, "|^|", g.rows[1].String())

	result, err := g.Run()
	require.NoError(t, err)
	assert.Equal(t, Result{Splits: 1, Timelines: 2}, result)
}

func TestMerge(t *testing.T) {
	g, err := Parse("..S..\n..^..\n.^.^.\n.....")
	require.NoError(t, err)

	require.NoError(t, g.Advance())
	require.NoError(t, g.Advance())

	assert.Equal(t, uint64(3), g.Splits())
	assert.Equal(t, []Timeline{{0, 1}, {2, 2}, {4, 1}}, g.Timelines())
	assert.Equal(t, "|^|^|", g.rows[2].String())

	result, err := g.Run()
	require.NoError(t, err)
	assert.Equal(t, Result{Splits: 3, Timelines: 4}, result)
}

func TestNoSplitters(t *testing.T) {
	g, err := Parse("..S..\n.....\n.....\n.....")
	require.NoError(t, err)

	result, err := g.Run()
	require.NoError(t, err)
	assert.Equal(t, Result{Splits: 0, Timelines: 1}, result)
	assert.Equal(t, []Timeline{{2, 1}}, g.Timelines())
	assert.Equal(t, "..|..", g.rows[3].String())
}

func TestSingleRow(t *testing.T) {
	g, err := Parse("..S..")
	require.NoError(t, err)

	assert.True(t, g.Done())
	assert.ErrorIs(t, g.Advance(), ErrFinished)

	result, err := g.Run()
	require.NoError(t, err)
	assert.Equal(t, Result{Splits: 0, Timelines: 1}, result)
}

func TestPreseededPathCarriesNoWeight(t *testing.T) {
	g, err := Parse(".S.T\n.^..\n....")
	require.NoError(t, err)

	result, err := g.Run()
	require.NoError(t, err)
	assert.Equal(t, Result{Splits: 1, Timelines: 2}, result)
	assert.Equal(t, "|^||", g.rows[1].String())
}

func TestStepErrors(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		err    error
		column int
	}{
		{"split past left edge", "S\n^\n.", ErrOutOfBounds, 0},
		{"split past right edge", "..S\n..^\n...", ErrOutOfBounds, 4},
		{"ragged row", ".S\n.\n.", ErrOutOfBounds, 2},
		{"adjacent splitters", ".S..\n.^^.\n....", ErrBlockedSplit, 3},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			g, err := Parse(test.input)
			require.NoError(t, err)
			before := g.String()

			err = g.Advance()
			require.ErrorIs(t, err, test.err)

			var pe *puzzle.ParseError
			require.ErrorAs(t, err, &pe)
			assert.Equal(t, 2, pe.Line)
			assert.Equal(t, test.column, pe.Column)

			// nothing committed
			assert.Equal(t, 0, g.Row())
			assert.Equal(t, uint64(0), g.Splits())
			assert.Equal(t, before, g.String())
		})
	}
}

func TestDeterminism(t *testing.T) {
	first, err := Parse(example)
	require.NoError(t, err)
	second, err := Parse(example)
	require.NoError(t, err)

	a, err := first.Run()
	require.NoError(t, err)
	b, err := second.Run()
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.Equal(t, first.String(), second.String())
}

func TestWeightNeverDecreases(t *testing.T) {
	g, err := Parse(example)
	require.NoError(t, err)

	prev := g.TotalWeight()
	for !g.Done() {
		require.NoError(t, g.Advance())

		weight := g.TotalWeight()
		assert.GreaterOrEqual(t, weight, prev, "row %d", g.Row())
		prev = weight

		seen := make(map[int]bool)
		for _, tl := range g.Timelines() {
			assert.False(t, seen[tl.Column], "duplicate column %d on row %d", tl.Column, g.Row())
			assert.Positive(t, tl.Weight)
			seen[tl.Column] = true
		}
	}
}

func TestPartOne(t *testing.T) {
	result, err := PartOne(example)
	require.NoError(t, err)
	assert.Equal(t, uint64(21), result)
}

func TestPartTwo(t *testing.T) {
	result, err := PartTwo(example)
	require.NoError(t, err)
	assert.Equal(t, uint64(40), result)
}

func TestPartsPropagateErrors(t *testing.T) {
	_, err := PartOne("...")
	assert.ErrorIs(t, err, ErrMissingStart)

	_, err = PartTwo("S\n^")
	assert.ErrorIs(t, err, ErrOutOfBounds)
}
