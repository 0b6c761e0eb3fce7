package puzzle

import (
	"iter"
	"strings"
)

// Lines yields every line of input together with its zero-based index.
// Carriage returns are dropped and a single trailing newline does not
// produce an extra empty line.
func Lines(input string) iter.Seq2[int, string] {
	input = strings.TrimSuffix(input, "\n")
	return func(yield func(int, string) bool) {
		if input == "" {
			return
		}
		i := 0
		found := true
		var line string
		rest := input
		for found {
			line, rest, found = strings.Cut(rest, "\n")
			if !yield(i, strings.TrimSuffix(line, "\r")) {
				return
			}
			i += 1
		}
	}
}
