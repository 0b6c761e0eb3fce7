// Package day07 simulates a tachyon beam falling through a manifold of
// splitters, tracking how many times it splits and how many distinct
// timelines reach the bottom.
package day07

import "github.com/Arinono/aoc-2025/internal/config"

var Log = config.NewLogger()

func run(input string) (Result, error) {
	g, err := Parse(input)
	if err != nil {
		return Result{}, err
	}
	return g.Run()
}

func PartOne(input string) (uint64, error) {
	result, err := run(input)
	return result.Splits, err
}

func PartTwo(input string) (uint64, error) {
	result, err := run(input)
	return result.Timelines, err
}
