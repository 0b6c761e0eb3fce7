// Package day06 checks a cephalopod's maths homework, read either as
// columns of whitespace-separated numbers or as right-to-left digit
// columns.
package day06

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/Arinono/aoc-2025/internal/config"
	"github.com/Arinono/aoc-2025/internal/puzzle"
	"github.com/sirupsen/logrus"
)

var Log = config.NewLogger()

var (
	ErrOperator = errors.New("operator must be + or *")
	ErrNumber   = errors.New("malformed number")
	ErrShape    = errors.New("numbers and operators do not line up")
)

type Op byte

const (
	Add Op = '+'
	Mul Op = '*'
)

func parseOp(s string) (Op, error) {
	switch s {
	case "+":
		return Add, nil
	case "*":
		return Mul, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrOperator, s)
}

type Problem struct {
	Numbers []uint64
	Op      Op
}

func (p Problem) Solve() uint64 {
	if p.Op == Mul {
		result := uint64(1)
		for _, n := range p.Numbers {
			result *= n
		}
		return result
	}
	var result uint64
	for _, n := range p.Numbers {
		result += n
	}
	return result
}

// sheet splits the input into number rows and the trailing operator row.
func sheet(input string) (rows []string, ops []Op, err error) {
	var lines []string
	for _, line := range puzzle.Lines(input) {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) < 2 {
		return nil, nil, puzzle.LineError(len(lines), ErrShape)
	}
	last := len(lines) - 1
	for _, field := range strings.Fields(lines[last]) {
		op, err := parseOp(field)
		if err != nil {
			return nil, nil, puzzle.LineError(last, err)
		}
		ops = append(ops, op)
	}
	return lines[:last], ops, nil
}

// ParseProblems reads each whitespace-separated column as one problem.
func ParseProblems(input string) ([]Problem, error) {
	rows, ops, err := sheet(input)
	if err != nil {
		return nil, err
	}
	problems := make([]Problem, len(ops))
	for i, op := range ops {
		problems[i].Op = op
	}
	for i, row := range rows {
		fields := strings.Fields(row)
		if len(fields) != len(ops) {
			return nil, puzzle.LineError(i, fmt.Errorf("%w: %d numbers for %d operators", ErrShape, len(fields), len(ops)))
		}
		for col, field := range fields {
			n, err := strconv.ParseUint(field, 10, 64)
			if err != nil {
				return nil, puzzle.LineError(i, fmt.Errorf("%w: %w", ErrNumber, err))
			}
			problems[col].Numbers = append(problems[col].Numbers, n)
		}
	}
	return problems, nil
}

// ParseProblemsRightToLeft reads every character column, rightmost first,
// as one number written top to bottom. Blank columns separate problems.
// The returned problems are in right-to-left order.
func ParseProblemsRightToLeft(input string) ([]Problem, error) {
	rows, ops, err := sheet(input)
	if err != nil {
		return nil, err
	}
	width := 0
	for _, row := range rows {
		width = max(width, len(row))
	}

	var (
		problems []Problem
		numbers  []uint64
		digits   = make([]byte, 0, len(rows))
	)
	for col := width - 1; col >= 0; col-- {
		digits = digits[:0]
		for _, row := range rows {
			if col < len(row) && row[col] != ' ' {
				digits = append(digits, row[col])
			}
		}
		if len(digits) == 0 {
			problems = append(problems, Problem{Numbers: numbers})
			numbers = nil
			continue
		}
		n, err := strconv.ParseUint(string(digits), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("column %d: %w: %w", col+1, ErrNumber, err)
		}
		numbers = append(numbers, n)
	}
	problems = append(problems, Problem{Numbers: numbers})

	if len(problems) != len(ops) {
		return nil, fmt.Errorf("%w: %d problems for %d operators", ErrShape, len(problems), len(ops))
	}
	for i, op := range ops {
		problems[len(ops)-1-i].Op = op
	}
	return problems, nil
}

func total(problems []Problem) (sum uint64) {
	for _, p := range problems {
		sum += p.Solve()
	}
	Log.WithFields(logrus.Fields{
		"problems": len(problems), "sum": sum,
	}).Debug("homework checked")
	return
}

func PartOne(input string) (uint64, error) {
	problems, err := ParseProblems(input)
	if err != nil {
		return 0, err
	}
	return total(problems), nil
}

func PartTwo(input string) (uint64, error) {
	problems, err := ParseProblemsRightToLeft(input)
	if err != nil {
		return 0, err
	}
	return total(problems), nil
}
