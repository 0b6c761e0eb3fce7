// Package day01 counts how often a combination dial lands on, or passes
// through, zero.
package day01

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

const (
	dialSize  = 100
	dialStart = 50
)

var (
	ErrDirection = errors.New("rotation must start with L or R")
	ErrDistance  = errors.New("invalid rotation distance")
)

type Direction int8

const (
	Left  Direction = -1
	Right Direction = 1
)

type Rotation struct {
	Direction Direction
	Distance  int
}

// Rotation implements [fmt.Stringer]
func (r Rotation) String() string {
	if r.Direction == Left {
		return "L" + strconv.Itoa(r.Distance)
	}
	return "R" + strconv.Itoa(r.Distance)
}

func ParseRotation(s string) (Rotation, error) {
	if s == "" {
		return Rotation{}, ErrDirection
	}
	var r Rotation
	switch strings.ToUpper(s[:1]) {
	case "L":
		r.Direction = Left
	case "R":
		r.Direction = Right
	default:
		return Rotation{}, fmt.Errorf("%w: %q", ErrDirection, s)
	}
	distance, err := strconv.Atoi(s[1:])
	if err != nil || distance < 0 {
		return Rotation{}, fmt.Errorf("%w: %q", ErrDistance, s)
	}
	r.Distance = distance
	return r, nil
}

// ParseRotations reads one rotation per line, skipping blank lines.
func ParseRotations(input string) ([]Rotation, error) {
	var rotations []Rotation
	for i, line := range puzzle.Lines(input) {
		if line == "" {
			continue
		}
		r, err := ParseRotation(line)
		if err != nil {
			return nil, puzzle.LineError(i, err)
		}
		rotations = append(rotations, r)
	}
	return rotations, nil
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// zeroes counts the multiples of the dial size touched while moving from
// `from` to `to`, excluding the starting position.
func zeroes(from, to int) int {
	if to > from {
		return floorDiv(to, dialSize) - floorDiv(from, dialSize)
	}
	return floorDiv(from-1, dialSize) - floorDiv(to-1, dialSize)
}

// Dial tracks an unbounded position; position modulo the dial size is
// what the dial shows.
type Dial struct {
	Position int
	Stops    int
	Passes   int
}

func NewDial() *Dial {
	return &Dial{Position: dialStart}
}

func (d *Dial) Turn(r Rotation) {
	from := d.Position
	d.Position += int(r.Direction) * r.Distance
	d.Passes += zeroes(from, d.Position)
	if d.Position%dialSize == 0 {
		d.Stops++
	}
}

func run(input string) (*Dial, error) {
	rotations, err := ParseRotations(input)
	if err != nil {
		return nil, err
	}
	d := NewDial()
	for _, r := range rotations {
		d.Turn(r)
	}
	Log.WithFields(logrus.Fields{
		"rotations": len(rotations), "stops": d.Stops, "passes": d.Passes,
	}).Debug("dial done")
	return d, nil
}

func PartOne(input string) (uint64, error) {
	d, err := run(input)
	if err != nil {
		return 0, err
	}
	return uint64(d.Stops), nil
}

func PartTwo(input string) (uint64, error) {
	d, err := run(input)
	if err != nil {
		return 0, err
	}
	return uint64(d.Passes), nil
}
