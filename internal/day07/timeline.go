package day07

import (
	"cmp"
	"fmt"

	"github.com/Arinono/aoc-2025/internal/tree234"
)

// Timeline is every path that currently sits in Column, merged into one.
// Weight counts the original emissions it carries.
type Timeline struct {
	Column int
	Weight uint64
}

// Timeline implements [fmt.Stringer]
func (t Timeline) String() string {
	return fmt.Sprintf("%d:%d", t.Column, t.Weight)
}

func byColumn(a, b *Timeline) int {
	return cmp.Compare(a.Column, b.Column)
}

// timelines keeps at most one entry per column, in column order.
type timelines struct {
	*tree234.Tree[Timeline]
}

func newTimelines() timelines {
	return timelines{tree234.New(byColumn)}
}

// merge adds weight to the timeline in column, creating it if needed.
func (ts timelines) merge(column int, weight uint64) {
	t := &Timeline{Column: column, Weight: weight}
	if existing := ts.Add(t); existing != t {
		existing.Weight += weight
	}
}

func (ts timelines) weightAt(column int) uint64 {
	if t := ts.Find(&Timeline{Column: column}); t != nil {
		return t.Weight
	}
	return 0
}

func (ts timelines) total() (sum uint64) {
	for t := range ts.All() {
		sum += t.Weight
	}
	return
}

// Timelines returns a copy of the live timelines ordered by column.
func (g *Grid) Timelines() []Timeline {
	result := make([]Timeline, 0, g.timelines.Count())
	for t := range g.timelines.All() {
		result = append(result, *t)
	}
	return result
}

// TotalWeight is the number of distinct timelines reaching the cursor row.
func (g *Grid) TotalWeight() uint64 {
	return g.timelines.total()
}
