package parser

import (
	"testing"

	"github.com/dshills/bracketpair/ast"
	"github.com/dshills/bracketpair/edits"
	"github.com/dshills/bracketpair/length"
)

// summarize reduces a tree to the ordered sequence spec.md property 5
// compares roots by: kind, category (where applicable), and length, for
// every Text/InvalidBracket leaf and every Pair node encountered (Pairs
// are recorded with their category/closed-ness and then visited via
// their child; a Pair's opening and closing Brackets are not listed).
type leafSummary struct {
	kind    ast.Kind
	length  length.Length
	closed  bool
	category int
}

func summarize(n *ast.Node, out []leafSummary) []leafSummary {
	if n == nil {
		return out
	}
	switch n.Kind() {
	case ast.List:
		for _, item := range n.Items() {
			out = summarize(item, out)
		}
	case ast.Pair:
		cat, _ := n.Category()
		out = append(out, leafSummary{kind: ast.Pair, length: n.Length(), closed: n.Closing() != nil, category: cat})
		out = summarize(n.Child(), out)
	default:
		out = append(out, leafSummary{kind: n.Kind(), length: n.Length()})
	}
	return out
}

func TestHandleContentChangedEmptyEditsReparsesFromScratch(t *testing.T) {
	c := NewColorizer()
	if err := c.HandleContentChanged(nil, newFakeTokenizer("(foo)")); err != nil {
		t.Fatal(err)
	}
	fresh := mustParse(t, "(foo)")
	if !summariesEqual(summarize(c.CurrentAst(), nil), summarize(fresh, nil)) {
		t.Errorf("HandleContentChanged with no edits produced a different tree than a fresh parse")
	}
}

// S4/S6-style incremental scenario: parse "{[()]}" (S5), then apply an
// edit that replaces the inner "()" (old offsets [2,4)) with "(()"
// (new length 3, new document "{[(()]}"). The former innermost Pair
// loses its closing bracket once reparsed, so canBeReused must reject
// it and force the two enclosing pairs to be rebuilt around the new
// structure. The resulting tree must match a from-scratch parse of the
// new document (spec.md property 5).
func TestIncrementalReparseAfterInnerEditMatchesFreshParse(t *testing.T) {
	c := NewColorizer()
	if err := c.HandleContentChanged(nil, newFakeTokenizer("{[()]}")); err != nil {
		t.Fatal(err)
	}

	const newDoc = "{[(()]}"
	change := []edits.TextEdit{
		{OldStart: length.New(0, 2), OldEnd: length.New(0, 4), NewLength: length.New(0, 3)},
	}
	if err := c.HandleContentChanged(change, newFakeTokenizer(newDoc)); err != nil {
		t.Fatal(err)
	}

	fresh := mustParse(t, newDoc)
	got := summarize(c.CurrentAst(), nil)
	want := summarize(fresh, nil)
	if !summariesEqual(got, want) {
		t.Errorf("incremental parse diverged from fresh parse:\n got  %+v\n want %+v", got, want)
	}

	if got, want := c.CurrentAst().Length(), length.New(0, uint32(len(newDoc))); got != want {
		t.Errorf("root length = %v, want %v", got, want)
	}
}

// An edit that touches nothing (identical old/new content at a point
// with zero-length old and new spans isn't representable, so instead
// use two back-to-back re-parses of the very same content) must leave
// the tree structurally identical (spec.md property 6).
func TestEmptyEditSetLeavesTreeStructurallyIdentical(t *testing.T) {
	c := NewColorizer()
	if err := c.HandleContentChanged(nil, newFakeTokenizer("[a(b)c]")); err != nil {
		t.Fatal(err)
	}
	before := summarize(c.CurrentAst(), nil)

	if err := c.HandleContentChanged(nil, newFakeTokenizer("[a(b)c]")); err != nil {
		t.Fatal(err)
	}
	after := summarize(c.CurrentAst(), nil)

	if !summariesEqual(before, after) {
		t.Errorf("reparsing identical content changed the tree:\n before %+v\n after  %+v", before, after)
	}
}

func TestGetBracketsInRangeFiltersToWindow(t *testing.T) {
	c := NewColorizer()
	if err := c.HandleContentChanged(nil, newFakeTokenizer("a(b)c[d]e")); err != nil {
		t.Fatal(err)
	}

	all := c.GetBracketsInRange(length.New(0, 0), c.CurrentAst().Length())
	if len(all) != 4 {
		t.Fatalf("expected 4 brackets total, got %d: %+v", len(all), all)
	}

	// Window covering only "(b)" -- offsets [1,4).
	windowed := c.GetBracketsInRange(length.New(0, 1), length.New(0, 4))
	if len(windowed) != 2 {
		t.Fatalf("expected 2 brackets in window, got %d: %+v", len(windowed), windowed)
	}
}

func summariesEqual(a, b []leafSummary) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
