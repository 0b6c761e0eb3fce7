package day07

import "errors"

var (
	ErrMissingStart       = errors.New("grid needs exactly one start marker, in its first row")
	ErrMalformedCharacter = errors.New("unexpected character in grid")
	ErrEmptyRow           = errors.New("empty row inside grid")
	ErrOutOfBounds        = errors.New("path would leave the grid")
	ErrBlockedSplit       = errors.New("split branch would land on a splitter")
	ErrFinished           = errors.New("simulation already reached the last row")
)
