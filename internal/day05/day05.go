// Package day05 checks ingredient ids against the kitchen's fresh ranges.
package day05

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/Arinono/aoc-2025/internal/config"
	"github.com/Arinono/aoc-2025/internal/puzzle"
	"github.com/sirupsen/logrus"
)

var Log = config.NewLogger()

var (
	ErrRange      = errors.New("malformed fresh range")
	ErrIngredient = errors.New("malformed ingredient id")
)

// Range is an inclusive span of fresh ingredient ids.
type Range struct {
	Start, End uint64
}

func (r Range) Contains(id uint64) bool {
	return r.Start <= id && id <= r.End
}

func (r Range) Len() uint64 {
	return r.End - r.Start + 1
}

type Inventory struct {
	Fresh       []Range
	Ingredients []uint64
}

// ParseInventory reads the fresh ranges, a blank line, then one
// ingredient id per line.
func ParseInventory(input string) (*Inventory, error) {
	inv := &Inventory{}
	ranges := true
	for i, line := range puzzle.Lines(input) {
		if line == "" {
			ranges = false
			continue
		}
		if ranges {
			start, end, ok := strings.Cut(line, "-")
			if !ok {
				return nil, puzzle.LineError(i, ErrRange)
			}
			var (
				r   Range
				err error
			)
			if r.Start, err = strconv.ParseUint(start, 10, 64); err != nil {
				return nil, puzzle.LineError(i, fmt.Errorf("%w: %w", ErrRange, err))
			}
			if r.End, err = strconv.ParseUint(end, 10, 64); err != nil {
				return nil, puzzle.LineError(i, fmt.Errorf("%w: %w", ErrRange, err))
			}
			if r.End < r.Start {
				return nil, puzzle.LineError(i, fmt.Errorf("%w: ends before it starts", ErrRange))
			}
			inv.Fresh = append(inv.Fresh, r)
			continue
		}
		id, err := strconv.ParseUint(line, 10, 64)
		if err != nil {
			return nil, puzzle.LineError(i, fmt.Errorf("%w: %w", ErrIngredient, err))
		}
		inv.Ingredients = append(inv.Ingredients, id)
	}
	return inv, nil
}

// Merge sorts the fresh ranges and coalesces those that overlap or touch,
// leaving disjoint ranges in ascending order.
func (inv *Inventory) Merge() {
	if len(inv.Fresh) == 0 {
		return
	}
	slices.SortFunc(inv.Fresh, func(a, b Range) int {
		return cmp.Compare(a.Start, b.Start)
	})

	w := 0
	for _, r := range inv.Fresh[1:] {
		if r.Start <= inv.Fresh[w].End+1 {
			inv.Fresh[w].End = max(inv.Fresh[w].End, r.End)
		} else {
			w++
			inv.Fresh[w] = r
		}
	}
	before := len(inv.Fresh)
	inv.Fresh = inv.Fresh[:w+1]

	Log.WithFields(logrus.Fields{
		"before": before, "after": len(inv.Fresh),
	}).Debug("merged fresh ranges")
}

// IsFresh assumes Merge has been called.
func (inv *Inventory) IsFresh(id uint64) bool {
	i, _ := slices.BinarySearchFunc(inv.Fresh, id, func(r Range, id uint64) int {
		return cmp.Compare(r.End, id)
	})
	return i < len(inv.Fresh) && inv.Fresh[i].Contains(id)
}

func parseMerged(input string) (*Inventory, error) {
	inv, err := ParseInventory(input)
	if err != nil {
		return nil, err
	}
	inv.Merge()
	return inv, nil
}

func PartOne(input string) (uint64, error) {
	inv, err := parseMerged(input)
	if err != nil {
		return 0, err
	}
	var fresh uint64
	for _, id := range inv.Ingredients {
		if inv.IsFresh(id) {
			fresh++
		}
	}
	return fresh, nil
}

func PartTwo(input string) (uint64, error) {
	inv, err := parseMerged(input)
	if err != nil {
		return 0, err
	}
	var count uint64
	for _, r := range inv.Fresh {
		count += r.Len()
	}
	return count, nil
}
