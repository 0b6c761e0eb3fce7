// Package day04 works out which paper rolls a forklift can reach, and how
// many can be cleared away in total.
package day04

import (
	"github.com/Arinono/aoc-2025/internal/config"
	"github.com/gammazero/deque"
	"github.com/sirupsen/logrus"
)

var Log = config.NewLogger()

// A roll is reachable when fewer than maxCrowd of its eight neighbours
// are rolls.
const maxCrowd = 4

// MarkAccessible flags every reachable roll and returns how many there
// are. Marked rolls still count as rolls for their neighbours.
func (g *Grid) MarkAccessible() (marked int) {
	for i, spot := range g.spots {
		if spot == Roll && g.accessible(i) {
			g.spots[i] = AccessibleRoll
			marked++
		}
	}
	return
}

// Sweep removes the marked rolls and returns how many were removed.
func (g *Grid) Sweep() (removed int) {
	for i, spot := range g.spots {
		if spot == AccessibleRoll {
			g.spots[i] = Empty
			removed++
		}
	}
	return
}

// Rounds marks and sweeps until nothing is reachable.
func (g *Grid) Rounds() (total int) {
	for round := 1; ; round++ {
		g.MarkAccessible()
		removed := g.Sweep()
		if removed == 0 {
			return
		}
		total += removed
		Log.WithFields(logrus.Fields{
			"round": round, "removed": removed,
		}).Debug("swept")
	}
}

// Drain removes reachable rolls one at a time, re-checking only the
// neighbours of each removed roll. Removing a roll never makes another
// roll harder to reach, so this ends with the same grid as Rounds.
func (g *Grid) Drain() (removed int) {
	var queue deque.Deque[int]
	for i, spot := range g.spots {
		if spot.IsRoll() {
			queue.PushBack(i)
		}
	}

	for queue.Len() != 0 {
		index := queue.PopFront()
		if !g.accessible(index) {
			continue
		}
		g.spots[index] = Empty
		removed++
		for _, i := range g.neighbors(index) {
			if g.spots[i].IsRoll() {
				queue.PushBack(i)
			}
		}
	}

	Log.WithField("removed", removed).Debug("drained")
	return
}

func PartOne(input string) (uint64, error) {
	g, err := ParseGrid(input)
	if err != nil {
		return 0, err
	}
	return uint64(g.MarkAccessible()), nil
}

func PartTwo(input string) (uint64, error) {
	g, err := ParseGrid(input)
	if err != nil {
		return 0, err
	}
	return uint64(g.Drain()), nil
}
