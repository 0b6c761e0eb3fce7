package day07

import (
	"strings"

	"github.com/Arinono/aoc-2025/internal/puzzle"
)

type Cell int8

const (
	Empty Cell = iota
	Splitter
	Start
	Path
)

func (c Cell) String() string {
	switch c {
	case Empty:
		return "."
	case Splitter:
		return "^"
	case Start:
		return "S"
	case Path:
		return "|"
	default:
		return "?"
	}
}

func parseCell(b byte) (Cell, bool) {
	switch b {
	case '.':
		return Empty, true
	case '^':
		return Splitter, true
	case 'S':
		return Start, true
	case '|', 'T':
		return Path, true
	}
	return Empty, false
}

type Row []Cell

func (r Row) String() string {
	var b strings.Builder
	for _, c := range r {
		b.WriteString(c.String())
	}
	return b.String()
}

// Grid is the manifold being simulated. It owns its rows and rewrites the
// row below the cursor on every step.
type Grid struct {
	rows      []Row
	row       int
	splits    uint64
	timelines timelines
}

// Parse builds a grid from its textual form, with the cursor on the first
// row and a single timeline of weight 1 below the start marker.
func Parse(input string) (*Grid, error) {
	var (
		rows  []Row
		start = -1
		blank = -1
	)
	for i, line := range puzzle.Lines(input) {
		if line == "" {
			if blank < 0 {
				blank = i
			}
			continue
		}
		if blank >= 0 {
			return nil, puzzle.LineError(blank, ErrEmptyRow)
		}

		row := make(Row, len(line))
		for j := range len(line) {
			cell, ok := parseCell(line[j])
			if !ok {
				return nil, puzzle.CellError(i, j, ErrMalformedCharacter)
			}
			if cell == Start {
				if len(rows) != 0 || start >= 0 {
					return nil, puzzle.CellError(i, j, ErrMissingStart)
				}
				start = j
			}
			row[j] = cell
		}
		rows = append(rows, row)
	}
	if start < 0 {
		return nil, puzzle.LineError(0, ErrMissingStart)
	}

	g := &Grid{
		rows:      rows,
		timelines: newTimelines(),
	}
	g.timelines.merge(start, 1)
	return g, nil
}

func (g *Grid) Row() int {
	return g.row
}

func (g *Grid) Height() int {
	return len(g.rows)
}

func (g *Grid) Done() bool {
	return g.row >= len(g.rows)-1
}

func (g *Grid) Splits() uint64 {
	return g.splits
}

// Grid implements [fmt.Stringer]
func (g *Grid) String() string {
	lines := make([]string, len(g.rows))
	for i, r := range g.rows {
		lines[i] = r.String()
	}
	return strings.Join(lines, "\n")
}
