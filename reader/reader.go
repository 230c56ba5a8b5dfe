// Package reader implements the positioned cursor over a previous AST
// that the parser consults to find subtrees it can reuse instead of
// re-parsing already-tokenized regions.
package reader

import (
	"github.com/dshills/bracketpair/ast"
	"github.com/dshills/bracketpair/length"
)

// frame records one step of the descent path: the node being
// descended through, and the offset at which it starts.
type frame struct {
	node  *ast.Node
	start length.Length
}

// NodeReader answers "what is the longest node starting exactly at
// this pre-edit offset that a predicate accepts", per spec.md §4.4. It
// is built once per previous AST and queried with monotonically
// non-decreasing offsets over the course of one parse, which lets it
// keep a live descent path instead of walking from the root every
// time.
type NodeReader struct {
	root *ast.Node
	path []frame // path[0] is always {root, Zero}; empty if root is nil
}

// New builds a reader over the given previous AST root. root may be
// nil, meaning there is no previous tree to reuse from.
func New(root *ast.Node) *NodeReader {
	r := &NodeReader{root: root}
	if root != nil {
		r.path = []frame{{node: root, start: length.Zero}}
	}
	return r
}

// ReadLongestNodeAt walks the previous tree looking for the longest
// node whose start equals offset and for which predicate returns true.
// It returns nil if no such node exists.
//
// Contract (spec.md §4.4): offset must be >= every offset passed to a
// previous call on this reader; the reader reuses as much of its
// existing descent path as still applies instead of restarting at the
// root.
func (r *NodeReader) ReadLongestNodeAt(offset length.Length, predicate func(*ast.Node) bool) *ast.Node {
	if r.root == nil {
		return nil
	}

	r.rewindTo(offset)

	for {
		top := r.path[len(r.path)-1]
		if top.start.Equal(offset) && predicate(top.node) {
			return top.node
		}

		child, childStart, ok := descend(top.node, offset, top.start)
		if !ok {
			return nil
		}
		r.path = append(r.path, frame{node: child, start: childStart})
	}
}

// rewindTo pops path frames whose span no longer contains offset,
// exploiting the caller's monotonic query order: since offset only
// grows, a frame can be discarded once its end is behind offset.
func (r *NodeReader) rewindTo(offset length.Length) {
	for len(r.path) > 1 {
		top := r.path[len(r.path)-1]
		end := top.start.Add(top.node.Length())
		if offset.LessThan(end) || offset.Equal(top.start) {
			return
		}
		r.path = r.path[:len(r.path)-1]
	}
}

// descend finds the child of node (starting at nodeStart) whose span
// contains offset, and returns it along with its own start offset.
// Pairs are "descended into" by exposing their child, matching the way
// spec.md's reuse walk treats a Pair as a container one level deep;
// leaves have nothing below them. Returns ok=false once there is
// nothing smaller left to consider.
func descend(node *ast.Node, offset, nodeStart length.Length) (*ast.Node, length.Length, bool) {
	switch node.Kind() {
	case ast.List:
		items := node.Items()
		start := nodeStart
		for _, item := range items {
			end := start.Add(item.Length())
			if offset.LessThan(end) {
				return item, start, true
			}
			start = end
		}
		return nil, length.Zero, false
	case ast.Pair:
		child := node.Child()
		if child == nil {
			return nil, length.Zero, false
		}
		childStart := nodeStart.Add(node.Opening().Length())
		childEnd := childStart.Add(child.Length())
		if offset.LessThan(childStart) || offset.GreaterThanEqual(childEnd) {
			// offset falls inside the opening/closing bracket instead of
			// the child, or beyond the pair entirely: nothing smaller
			// than the pair itself can start there.
			return nil, length.Zero, false
		}
		return child, childStart, true
	default:
		return nil, length.Zero, false
	}
}
