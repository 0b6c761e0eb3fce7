package puzzle

import "fmt"

// ParseError reports where in the input a solver gave up. Line and Column
// are 1-based; Column is 0 when the whole line is at fault.
type ParseError struct {
	Line   int
	Column int
	Err    error
}

func LineError(index int, err error) *ParseError {
	return &ParseError{Line: index + 1, Err: err}
}

func CellError(index, column int, err error) *ParseError {
	return &ParseError{Line: index + 1, Column: column + 1, Err: err}
}

// [ParseError] implements [error]
func (e *ParseError) Error() string {
	if e.Column == 0 {
		return fmt.Sprintf("line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("line %d, column %d: %v", e.Line, e.Column, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
