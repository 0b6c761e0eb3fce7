package day02

import (
	"strconv"
	"strings"
)

// Doubled reports whether the decimal form of id is some digit sequence
// written exactly twice, like 6464 or 123123.
func Doubled(id uint64) bool {
	digits := len(strconv.FormatUint(id, 10))
	if digits%2 != 0 {
		return false
	}
	half := uint64(1)
	for range digits / 2 {
		half *= 10
	}
	return id/half == id%half
}

// Repeated reports whether the decimal form of id is some digit sequence
// written two or more times, like 111 or 12121212.
func Repeated(id uint64) bool {
	s := strconv.FormatUint(id, 10)
	doubled := s + s
	return strings.Contains(doubled[1:len(doubled)-1], s)
}
