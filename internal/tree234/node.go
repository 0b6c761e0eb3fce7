package tree234

import (
	"fmt"
	"strings"
)

type node[T any] struct {
	parent *node[T]
	kids   [4]*node[T]
	counts [4]int
	elems  [3]*T
}

func (n *node[T]) count() (c int) {
	if n == nil {
		return
	}
	for _, count := range n.counts {
		c += count
	}
	return c + n.size()
}

func (n *node[T]) size() (s int) {
	if n == nil {
		return
	}
	for s < 3 && n.elems[s] != nil {
		s++
	}
	return
}

func (n *node[T]) childIndex() int {
	if n != nil && n.parent != nil {
		for i, kid := range n.parent.kids {
			if n == kid {
				return i
			}
		}
	}
	return -1
}

func (n *node[T]) adopt() {
	for _, kid := range n.kids {
		if kid != nil {
			kid.parent = n
		}
	}
}

func (n *node[T]) walk(yield func(*T) bool) bool {
	if n == nil {
		return true
	}
	for k := 0; k < 3 && n.elems[k] != nil; k++ {
		if !n.kids[k].walk(yield) || !yield(n.elems[k]) {
			return false
		}
	}
	return n.kids[n.size()].walk(yield)
}

// node implements [fmt.Stringer]
func (n *node[T]) String() string {
	if n == nil {
		return "<nil>"
	}
	var parts []string
	for i := range 4 {
		if n.kids[i] != nil || n.counts[i] > 0 {
			parts = append(parts, fmt.Sprintf("%s(%d)", n.kids[i].String(), n.counts[i]))
		}
		if i < 3 && n.elems[i] != nil {
			if s, ok := any(n.elems[i]).(fmt.Stringer); ok {
				parts = append(parts, s.String())
			} else {
				parts = append(parts, fmt.Sprintf("%v", n.elems[i]))
			}
		}
	}
	return fmt.Sprintf("[%s]", strings.Join(parts, " "))
}
