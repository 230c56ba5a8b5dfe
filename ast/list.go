package ast

// newListNode builds a List from already-height-consistent items and
// recomputes its length and height from them. It performs no balancing
// itself — callers (Append, Prepend, MergeTrees) are responsible for
// only ever calling it with a set of items that belongs together at one
// level of the tree.
func newListNode(items []*Node) *Node {
	n := &Node{kind: List, items: items}
	if len(items) > 0 {
		n.listHeight = items[0].ListHeight() + 1
	}
	for _, item := range items {
		n.length = n.length.Add(item.Length())
	}
	return n
}

// Append returns the result of adding node to the right end of the
// sibling sequence rooted at n, rebalancing as needed to keep every
// interior List at 2 or 3 items.
//
// Precondition: node.ListHeight() <= n.ListHeight(). Violating it is a
// programmer error, since there is no way to append a taller subtree
// onto a shorter one without first growing the shorter one.
func (n *Node) Append(node *Node) *Node {
	if node.ListHeight() > n.ListHeight() {
		panic("ast: Append precondition violated: node is taller than the receiver")
	}
	if n.ListHeight() == node.ListHeight() {
		return newListNode([]*Node{n, node})
	}

	last := n.items[len(n.items)-1]
	updatedLast := last.Append(node)

	if updatedLast.ListHeight() == last.ListHeight() {
		items := make([]*Node, len(n.items))
		copy(items, n.items)
		items[len(items)-1] = updatedLast
		return newListNode(items)
	}

	// updatedLast overflowed: it is a 2-item List one level taller than
	// last, whose items belong at n's own level in place of last.
	merged := make([]*Node, 0, len(n.items)+1)
	merged = append(merged, n.items[:len(n.items)-1]...)
	merged = append(merged, updatedLast.items...)

	if len(merged) <= 3 {
		return newListNode(merged)
	}
	return newListNode([]*Node{newListNode(merged[:2]), newListNode(merged[2:])})
}

// Prepend is the mirror of Append: it adds node to the left end of the
// sibling sequence rooted at n.
//
// Precondition: node.ListHeight() <= n.ListHeight().
func (n *Node) Prepend(node *Node) *Node {
	if node.ListHeight() > n.ListHeight() {
		panic("ast: Prepend precondition violated: node is taller than the receiver")
	}
	if n.ListHeight() == node.ListHeight() {
		return newListNode([]*Node{node, n})
	}

	first := n.items[0]
	updatedFirst := first.Prepend(node)

	if updatedFirst.ListHeight() == first.ListHeight() {
		items := make([]*Node, len(n.items))
		copy(items, n.items)
		items[0] = updatedFirst
		return newListNode(items)
	}

	merged := make([]*Node, 0, len(n.items)+1)
	merged = append(merged, updatedFirst.items...)
	merged = append(merged, n.items[1:]...)

	if len(merged) <= 3 {
		return newListNode(merged)
	}
	return newListNode([]*Node{newListNode(merged[:2]), newListNode(merged[2:])})
}

// concat merges two subtrees, of any heights, into one (2,3)-tree.
func concat(a, b *Node) *Node {
	ha, hb := a.ListHeight(), b.ListHeight()
	switch {
	case ha == hb:
		return newListNode([]*Node{a, b})
	case ha > hb:
		return a.Append(b)
	default:
		return b.Prepend(a)
	}
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// MergeTrees builds a single balanced (2,3)-tree spanning items, in
// order, per spec.md §4.3. It is the normalization step parseList runs
// on every freshly (or partially) parsed sibling sequence.
func MergeTrees(items []*Node) *Node {
	switch len(items) {
	case 0:
		return EmptyList()
	case 1:
		return items[0]
	}

	sameHeight := true
	h := items[0].ListHeight()
	for _, it := range items[1:] {
		if it.ListHeight() != h {
			sameHeight = false
			break
		}
	}
	if sameHeight {
		return mergeSameHeight(items)
	}
	return mergeMixedHeight(items)
}

// mergeSameHeight implements the fast path: pairwise grouping level by
// level, with a trailing odd item absorbed into the final group of a
// level to make a 3-list instead of leaving a dangling singleton.
func mergeSameHeight(items []*Node) *Node {
	level := items
	for len(level) > 1 {
		n := len(level)
		lastIsTriple := n%2 == 1
		limit := n
		if lastIsTriple {
			limit = n - 3
		}

		next := make([]*Node, 0, (n+1)/2)
		i := 0
		for i < limit {
			next = append(next, newListNode(level[i:i+2]))
			i += 2
		}
		if lastIsTriple {
			next = append(next, newListNode(level[i:i+3]))
		}
		level = next
	}
	return level[0]
}

// mergeMixedHeight implements the general path over sibling subtrees of
// varying height, greedily keeping the running pair as height-balanced
// as possible.
func mergeMixedHeight(items []*Node) *Node {
	first, second := items[0], items[1]
	for _, item := range items[2:] {
		concatLeft := concat(first, second)
		diffKeepLeft := absInt(concatLeft.ListHeight() - item.ListHeight())

		concatRight := concat(second, item)
		diffKeepRight := absInt(first.ListHeight() - concatRight.ListHeight())

		if diffKeepLeft <= diffKeepRight {
			first, second = concatLeft, item
		} else {
			second = concatRight
		}
	}
	return concat(first, second)
}
