package day02

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/Arinono/aoc-2025/internal/puzzle"
)

var (
	ErrEmptyInput = errors.New("no id ranges given")
	ErrRange      = errors.New("malformed id range")
)

// Range is an inclusive span of product ids.
type Range struct {
	First, Last uint64
}

// Range implements [fmt.Stringer]
func (r Range) String() string {
	return fmt.Sprintf("%d-%d", r.First, r.Last)
}

func ParseRange(s string) (Range, error) {
	first, last, ok := strings.Cut(strings.TrimSpace(s), "-")
	if !ok {
		return Range{}, fmt.Errorf("%w: %q", ErrRange, s)
	}
	var (
		r   Range
		err error
	)
	if r.First, err = strconv.ParseUint(first, 10, 64); err != nil {
		return Range{}, fmt.Errorf("%w: %q: %w", ErrRange, s, err)
	}
	if r.Last, err = strconv.ParseUint(last, 10, 64); err != nil {
		return Range{}, fmt.Errorf("%w: %q: %w", ErrRange, s, err)
	}
	if r.Last < r.First {
		return Range{}, fmt.Errorf("%w: %q ends before it starts", ErrRange, s)
	}
	return r, nil
}

// ParseRanges reads the comma-separated ranges on the first line of input.
func ParseRanges(input string) ([]Range, error) {
	var line string
	for _, l := range puzzle.Lines(input) {
		line = l
		break
	}
	if strings.TrimSpace(line) == "" {
		return nil, puzzle.LineError(0, ErrEmptyInput)
	}

	var ranges []Range
	for _, piece := range strings.Split(line, ",") {
		if strings.TrimSpace(piece) == "" {
			continue
		}
		r, err := ParseRange(piece)
		if err != nil {
			return nil, puzzle.LineError(0, err)
		}
		ranges = append(ranges, r)
	}
	return ranges, nil
}

// chunks cuts r into consecutive pieces of at most size ids.
func (r Range) chunks(size uint64) (out []Range) {
	for first := r.First; ; first += size {
		last := r.Last
		if r.Last-first >= size {
			last = first + size - 1
		}
		out = append(out, Range{first, last})
		if last == r.Last {
			return
		}
	}
}
