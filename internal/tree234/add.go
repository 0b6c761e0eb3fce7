package tree234

import "github.com/sirupsen/logrus"

// Add inserts e. If an element comparing equal is already present, the
// tree is left untouched and that element is returned instead of e.
func (t *Tree[T]) Add(e *T) *T {
	if t.root == nil {
		t.root = &node[T]{elems: [3]*T{e}}
		return e
	}

	var (
		n  = t.root
		ki int
	)
	for {
		for ki = 0; ki < 3 && n.elems[ki] != nil; ki++ {
			c := t.cmp(e, n.elems[ki])
			if c == 0 {
				return n.elems[ki]
			}
			if c < 0 {
				break
			}
		}
		if n.kids[ki] == nil {
			break
		}
		n = n.kids[ki]
	}

	if t.insert(nil, e, nil, n, ki) {
		Log.WithFields(logrus.Fields{
			"element": e, "count": t.Count(),
		}).Debug("root split")
	}
	return e
}

// insert places the left/e/right triple at child point ki of n and pushes
// any overflow towards the root. It reports whether the root was split.
func (t *Tree[T]) insert(left *node[T], e *T, right *node[T], n *node[T], ki int) (rootSplit bool) {
	lcount, rcount := left.count(), right.count()

	for n != nil {
		if size := n.size(); size < 3 {
			// 2-node or 3-node: room to spare.
			for j := size; j > ki; j-- {
				n.elems[j] = n.elems[j-1]
				n.kids[j+1], n.counts[j+1] = n.kids[j], n.counts[j]
			}
			n.elems[ki] = e
			n.kids[ki], n.counts[ki] = left, lcount
			n.kids[ki+1], n.counts[ki+1] = right, rcount
			n.adopt()
			break
		}

		// 4-node: lay out the five kids and four elements in order, then
		// split into a 3-node (m) and a 2-node (n) around the third
		// element, which moves up a level.
		var (
			elems  [4]*T
			kids   [5]*node[T]
			counts [5]int
		)
		for i, j := 0, 0; i < 4; i++ {
			if i == ki {
				elems[j] = e
				j++
			}
			if i < 3 {
				elems[j] = n.elems[i]
				j++
			}
		}
		for i, j := 0, 0; i < 4; i++ {
			if i == ki {
				kids[j], counts[j] = left, lcount
				kids[j+1], counts[j+1] = right, rcount
				j += 2
				continue
			}
			kids[j], counts[j] = n.kids[i], n.counts[i]
			j++
		}

		m := &node[T]{
			parent: n.parent,
			elems:  [3]*T{elems[0], elems[1], nil},
			kids:   [4]*node[T]{kids[0], kids[1], kids[2], nil},
			counts: [4]int{counts[0], counts[1], counts[2], 0},
		}
		n.elems = [3]*T{elems[3], nil, nil}
		n.kids = [4]*node[T]{kids[3], kids[4], nil, nil}
		n.counts = [4]int{counts[3], counts[4], 0, 0}
		m.adopt()
		n.adopt()

		e = elems[2]
		left, lcount = m, m.count()
		right, rcount = n, n.count()

		if n.parent != nil {
			ki = n.childIndex()
		}
		n = n.parent
	}

	if n != nil {
		// Absorbed without reaching the root; refresh the counts above.
		for n.parent != nil {
			n.parent.counts[n.childIndex()] = n.count()
			n = n.parent
		}
		return false
	}

	t.root = &node[T]{
		kids:   [4]*node[T]{left, right, nil, nil},
		counts: [4]int{lcount, rcount, 0, 0},
		elems:  [3]*T{e, nil, nil},
	}
	t.root.adopt()
	return true
}
