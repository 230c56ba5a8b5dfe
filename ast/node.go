// Package ast implements the bracket-pair AST: a tagged-union node type
// (Text, Bracket, InvalidBracket, Pair, List) stored in a balanced
// (2,3)-tree of siblings, together with the operations that let the
// parser cheaply reuse unmodified subtrees across edits.
package ast

import "github.com/dshills/bracketpair/length"

// Kind discriminates the node variants. Node is a tagged sum, not a
// class hierarchy: callers switch on Kind rather than type-asserting
// concrete implementations.
type Kind uint8

const (
	// Text is a run of non-bracket content.
	Text Kind = iota
	// Bracket is a single opening or closing bracket character.
	Bracket
	// InvalidBracket is a closer without a matching opener.
	InvalidBracket
	// Pair is a matched or unmatched-but-opened bracket pair.
	Pair
	// List is a (2,3)-tree sibling container.
	List
)

func (k Kind) String() string {
	switch k {
	case Text:
		return "Text"
	case Bracket:
		return "Bracket"
	case InvalidBracket:
		return "InvalidBracket"
	case Pair:
		return "Pair"
	case List:
		return "List"
	default:
		return "Unknown"
	}
}

// Node is an immutable AST node once it has been handed to a parent.
// The only mutation that ever happens is to a List's item slice during
// its own bottom-up construction, before the List itself escapes to a
// caller.
type Node struct {
	kind   Kind
	length length.Length

	// Pair fields.
	category int
	opening  *Node // Bracket, always present on a Pair
	child    *Node // nullable
	closing  *Node // nullable Bracket

	// List fields.
	items      []*Node
	listHeight int
}

// NewText returns a leaf covering l with no bracket meaning.
func NewText(l length.Length) *Node {
	return &Node{kind: Text, length: l}
}

// NewBracket returns a leaf representing a single bracket character.
func NewBracket(l length.Length) *Node {
	return &Node{kind: Bracket, length: l}
}

// NewInvalidBracket returns a leaf representing an unmatched closer.
func NewInvalidBracket(l length.Length) *Node {
	return &Node{kind: InvalidBracket, length: l}
}

// NewPair builds a Pair node. child and closing may be nil; opening
// must not be. The resulting length is the sum of whichever of
// opening/child/closing are present.
func NewPair(category int, opening, child, closing *Node) *Node {
	total := opening.Length()
	if child != nil {
		total = total.Add(child.Length())
	}
	if closing != nil {
		total = total.Add(closing.Length())
	}
	return &Node{
		kind:     Pair,
		length:   total,
		category: category,
		opening:  opening,
		child:    child,
		closing:  closing,
	}
}

// EmptyList returns the canonical empty root list: zero length, zero
// items, height 0.
func EmptyList() *Node {
	return &Node{kind: List}
}

// Length returns the total length spanned by the node's content.
func (n *Node) Length() length.Length {
	if n == nil {
		return length.Zero
	}
	return n.length
}

// Kind returns the node's variant tag.
func (n *Node) Kind() Kind {
	return n.kind
}

// ListHeight returns 0 for leaves and Pairs, and for a List the height
// of its items plus one (0 for an empty list).
func (n *Node) ListHeight() int {
	if n == nil || n.kind != List {
		return 0
	}
	return n.listHeight
}

// Category returns the Pair's bracket category and true, or (0, false)
// for any other kind.
func (n *Node) Category() (int, bool) {
	if n.kind != Pair {
		return 0, false
	}
	return n.category, true
}

// Opening returns a Pair's opening bracket leaf, or nil for any other
// kind.
func (n *Node) Opening() *Node {
	if n.kind != Pair {
		return nil
	}
	return n.opening
}

// Child returns a Pair's enclosed content, which may itself be nil for
// an empty pair such as "()".
func (n *Node) Child() *Node {
	if n.kind != Pair {
		return nil
	}
	return n.child
}

// Closing returns a Pair's closing bracket leaf, or nil if the pair is
// unmatched (or the node isn't a Pair at all).
func (n *Node) Closing() *Node {
	if n.kind != Pair {
		return nil
	}
	return n.closing
}

// Items returns a List's ordered children. The returned slice must not
// be mutated by the caller.
func (n *Node) Items() []*Node {
	if n.kind != List {
		return nil
	}
	return n.items
}

// CanBeReused implements spec.md §4.3's reuse predicate: whether a
// subtree from the previous parse remains structurally valid to splice
// into the new one unchanged.
//
// expectedClosers is reserved for a future refinement (spec.md §9) and
// is currently never populated by the parser; it is threaded through
// so that refinement is a non-breaking addition later.
func (n *Node) CanBeReused(expectedClosers map[int]bool) bool {
	switch n.kind {
	case Text:
		return true
	case Bracket, InvalidBracket:
		return false
	case Pair:
		return n.closing != nil
	case List:
		if len(n.items) == 0 {
			return true
		}
		last := n.items[len(n.items)-1]
		for last.kind == List {
			if len(last.items) == 0 {
				return true
			}
			last = last.items[len(last.items)-1]
		}
		return last.CanBeReused(expectedClosers)
	default:
		return false
	}
}
