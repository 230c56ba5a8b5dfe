package parser

import (
	"github.com/dshills/bracketpair/ast"
	"github.com/dshills/bracketpair/length"
)

// BracketRange is one bracket leaf reported by CollectBrackets: its span
// in the document and its nesting depth (the number of enclosing Pairs).
type BracketRange struct {
	Start length.Length
	End   length.Length
	Depth int
}

// CollectBrackets implements spec.md §4.7: it walks node (spanning
// [nodeStart, nodeStart+node.Length())) and appends a BracketRange for
// every Bracket leaf whose span intersects [queryStart, queryEnd),
// skipping subtrees entirely outside the query window. InvalidBracket
// leaves are never emitted (spec.md §6.3).
func CollectBrackets(node *ast.Node, nodeStart, queryStart, queryEnd length.Length, depth int, out []BracketRange) []BracketRange {
	if node == nil {
		return out
	}
	nodeEnd := nodeStart.Add(node.Length())
	if nodeEnd.LessThanEqual(queryStart) || nodeStart.GreaterThanEqual(queryEnd) {
		return out
	}

	switch node.Kind() {
	case ast.Bracket:
		out = append(out, BracketRange{Start: nodeStart, End: nodeEnd, Depth: depth})

	case ast.InvalidBracket:
		// not emitted, per spec.md §6.3.

	case ast.Pair:
		start := nodeStart
		if opening := node.Opening(); opening != nil {
			out = CollectBrackets(opening, start, queryStart, queryEnd, depth, out)
			start = start.Add(opening.Length())
		}
		if child := node.Child(); child != nil {
			out = CollectBrackets(child, start, queryStart, queryEnd, depth+1, out)
			start = start.Add(child.Length())
		}
		if closing := node.Closing(); closing != nil {
			out = CollectBrackets(closing, start, queryStart, queryEnd, depth, out)
		}

	case ast.List:
		start := nodeStart
		for _, item := range node.Items() {
			out = CollectBrackets(item, start, queryStart, queryEnd, depth, out)
			start = start.Add(item.Length())
		}

	case ast.Text:
		// no brackets inside a text run.
	}

	return out
}
