package day04

import (
	"errors"
	"strings"

	"github.com/Arinono/aoc-2025/internal/puzzle"
)

var (
	ErrMalformedCharacter = errors.New("unexpected character in grid")
	ErrRaggedRow          = errors.New("row width differs from the first row")
	ErrEmptyGrid          = errors.New("grid has no rows")
)

type Spot int8

const (
	Empty Spot = iota
	Roll
	AccessibleRoll
)

func (s Spot) String() string {
	switch s {
	case Roll:
		return "@"
	case AccessibleRoll:
		return "x"
	default:
		return "."
	}
}

// IsRoll is true for rolls whether or not they have been marked.
func (s Spot) IsRoll() bool {
	return s == Roll || s == AccessibleRoll
}

type Grid struct {
	Rows, Cols int
	spots      []Spot
}

func ParseGrid(input string) (*Grid, error) {
	g := &Grid{}
	for i, line := range puzzle.Lines(input) {
		if line == "" {
			continue
		}
		if g.Rows == 0 {
			g.Cols = len(line)
		} else if len(line) != g.Cols {
			return nil, puzzle.LineError(i, ErrRaggedRow)
		}
		for j := range len(line) {
			switch line[j] {
			case '.':
				g.spots = append(g.spots, Empty)
			case '@':
				g.spots = append(g.spots, Roll)
			default:
				return nil, puzzle.CellError(i, j, ErrMalformedCharacter)
			}
		}
		g.Rows++
	}
	if g.Rows == 0 {
		return nil, puzzle.LineError(0, ErrEmptyGrid)
	}
	return g, nil
}

func (g Grid) CoordsToIndex(row int, col int) int {
	return row*g.Cols + col
}

func (g Grid) IndexToCoords(index int) (row int, col int) {
	row, col = index/g.Cols, index%g.Cols
	return
}

func (g Grid) At(row, col int) Spot {
	return g.spots[g.CoordsToIndex(row, col)]
}

func (g Grid) neighborCoordsRange(index int) (fromRow, toRow, fromCol, toCol int) {
	var r, c = g.IndexToCoords(index)
	fromRow, toRow = max(0, r-1), min(r+1, g.Rows-1)
	fromCol, toCol = max(0, c-1), min(c+1, g.Cols-1)
	return
}

func (g Grid) neighbors(index int) (indices []int) {
	var fromRow, toRow, fromCol, toCol = g.neighborCoordsRange(index)
	for r := fromRow; r <= toRow; r++ {
		for c := fromCol; c <= toCol; c++ {
			if i := g.CoordsToIndex(r, c); i != index {
				indices = append(indices, i)
			}
		}
	}
	return
}

func (g Grid) rollsAround(index int) (count int) {
	for _, i := range g.neighbors(index) {
		if g.spots[i].IsRoll() {
			count++
		}
	}
	return
}

func (g Grid) accessible(index int) bool {
	return g.spots[index].IsRoll() && g.rollsAround(index) < maxCrowd
}

func (g Grid) Row(row int) string {
	var b strings.Builder
	for c := range g.Cols {
		b.WriteString(g.At(row, c).String())
	}
	return b.String()
}

// Grid implements [fmt.Stringer]
func (g Grid) String() string {
	rows := make([]string, g.Rows)
	for r := range g.Rows {
		rows[r] = g.Row(r)
	}
	return strings.Join(rows, "\n")
}
