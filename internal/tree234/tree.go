// Package tree234 is a counted 2-3-4 tree ordered by a caller-supplied
// comparison. Elements are stored by pointer, so callers may update the
// non-key part of an element in place after looking it up.
package tree234

import (
	"iter"

	"github.com/sirupsen/logrus"
)

var Log = logrus.New()

type CompareFunc[T any] func(x, y *T) int

type Tree[T any] struct {
	root *node[T]
	cmp  CompareFunc[T]
}

func New[T any](cmp CompareFunc[T]) *Tree[T] {
	return &Tree[T]{cmp: cmp}
}

// Tree implements [fmt.Stringer]
func (t Tree[T]) String() string {
	return t.root.String()
}

func (t Tree[T]) Count() int {
	return t.root.count()
}

// Index returns the element at the given position in sort order, or nil
// when index is out of range.
func (t *Tree[T]) Index(index int) *T {
	if index < 0 || index >= t.Count() {
		return nil
	}
	n := t.root
	for n != nil {
		k := 0
		for ; k < 3 && n.elems[k] != nil; k++ {
			if index < n.counts[k] {
				break
			}
			index -= n.counts[k]
			if index == 0 {
				return n.elems[k]
			}
			index--
		}
		n = n.kids[k]
	}
	return nil
}

// Find returns the stored element comparing equal to e, or nil.
func (t *Tree[T]) Find(e *T) *T {
	n := t.root
	for n != nil {
		k := 0
		for ; k < 3 && n.elems[k] != nil; k++ {
			c := t.cmp(e, n.elems[k])
			if c == 0 {
				return n.elems[k]
			}
			if c < 0 {
				break
			}
		}
		n = n.kids[k]
	}
	return nil
}

// All yields the elements in ascending order.
func (t *Tree[T]) All() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		t.root.walk(yield)
	}
}
