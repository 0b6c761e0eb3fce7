package day07

import (
	"slices"

	"github.com/Arinono/aoc-2025/internal/puzzle"
	"github.com/sirupsen/logrus"
)

type Result struct {
	Splits    uint64
	Timelines uint64
}

// Advance moves every path on the cursor row one row down. Paths hitting
// a splitter continue one column to each side, each branch carrying the
// full weight of the path that split. Branches landing in the same column
// merge.
//
// The next row is rewritten from a copy, and nothing is committed unless
// the whole row was processed without error.
func (g *Grid) Advance() error {
	if g.Done() {
		return ErrFinished
	}

	var (
		below  = g.rows[g.row+1]
		next   = slices.Clone(below)
		moved  = newTimelines()
		splits uint64
	)

	place := func(column int, weight uint64) error {
		if column < 0 || column >= len(below) {
			return puzzle.CellError(g.row+1, column, ErrOutOfBounds)
		}
		next[column] = Path
		if weight > 0 {
			moved.merge(column, weight)
		}
		return nil
	}

	for i, cell := range g.rows[g.row] {
		if cell != Start && cell != Path {
			continue
		}
		weight := g.timelines.weightAt(i)

		if i >= len(below) || below[i] != Splitter {
			if err := place(i, weight); err != nil {
				return err
			}
			continue
		}

		splits++
		for _, branch := range [2]int{i - 1, i + 1} {
			if branch >= 0 && branch < len(below) && below[branch] == Splitter {
				return puzzle.CellError(g.row+1, branch, ErrBlockedSplit)
			}
			if err := place(branch, weight); err != nil {
				return err
			}
		}
	}

	g.rows[g.row+1] = next
	g.timelines = moved
	g.splits += splits
	g.row++

	Log.WithFields(logrus.Fields{
		"row":       g.row,
		"splits":    g.splits,
		"timelines": g.timelines.Count(),
	}).Debug("advanced")

	return nil
}

// Run advances until the cursor sits on the last row.
func (g *Grid) Run() (Result, error) {
	for !g.Done() {
		if err := g.Advance(); err != nil {
			return Result{}, err
		}
	}
	return Result{Splits: g.splits, Timelines: g.TotalWeight()}, nil
}
