// Package day03 picks the digits that give each battery bank its highest
// joltage.
package day03

import (
	"errors"
	"fmt"

	"github.com/Arinono/aoc-2025/internal/config"
	"github.com/Arinono/aoc-2025/internal/puzzle"
	"github.com/sirupsen/logrus"
)

var Log = config.NewLogger()

var (
	ErrDigit        = errors.New("battery rating must be a single digit")
	ErrBankTooShort = errors.New("bank has fewer batteries than requested")
)

type Bank []uint8

func ParseBank(s string) (Bank, error) {
	bank := make(Bank, len(s))
	for i := range len(s) {
		if s[i] < '0' || s[i] > '9' {
			return nil, fmt.Errorf("%w: %q at %d", ErrDigit, s[i], i+1)
		}
		bank[i] = s[i] - '0'
	}
	return bank, nil
}

func ParseBanks(input string) ([]Bank, error) {
	var banks []Bank
	for i, line := range puzzle.Lines(input) {
		if line == "" {
			continue
		}
		bank, err := ParseBank(line)
		if err != nil {
			return nil, puzzle.LineError(i, err)
		}
		banks = append(banks, bank)
	}
	return banks, nil
}

// Joltage returns the largest number made of keep batteries taken in their
// original order. A battery is dropped whenever a larger one follows it
// and there are still drops left to spend.
func (b Bank) Joltage(keep int) (uint64, error) {
	if keep > len(b) || keep < 1 {
		return 0, fmt.Errorf("%w: want %d of %d", ErrBankTooShort, keep, len(b))
	}

	drops := len(b) - keep
	stack := make([]uint8, 0, len(b))
	for _, battery := range b {
		for len(stack) > 0 && drops > 0 && stack[len(stack)-1] < battery {
			stack = stack[:len(stack)-1]
			drops--
		}
		stack = append(stack, battery)
	}

	var jolts uint64
	for _, battery := range stack[:keep] {
		jolts = jolts*10 + uint64(battery)
	}
	return jolts, nil
}

func total(input string, keep int) (uint64, error) {
	banks, err := ParseBanks(input)
	if err != nil {
		return 0, err
	}
	var sum uint64
	for i, bank := range banks {
		jolts, err := bank.Joltage(keep)
		if err != nil {
			return 0, fmt.Errorf("bank %d: %w", i+1, err)
		}
		sum += jolts
	}
	Log.WithFields(logrus.Fields{
		"banks": len(banks), "keep": keep, "sum": sum,
	}).Debug("joltage summed")
	return sum, nil
}

func PartOne(input string) (uint64, error) {
	return total(input, 2)
}

func PartTwo(input string) (uint64, error) {
	return total(input, 12)
}
