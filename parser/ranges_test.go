package parser

import (
	"testing"

	"github.com/dshills/bracketpair/length"
)

func TestCollectBracketsEmptyWindowReturnsNothing(t *testing.T) {
	root := mustParse(t, "(a)(b)")
	got := CollectBrackets(root, length.Zero, length.New(0, 2), length.New(0, 2), 0, nil)
	if len(got) != 0 {
		t.Errorf("expected no brackets for an empty window, got %+v", got)
	}
}

func TestCollectBracketsSkipsSubtreesOutsideWindow(t *testing.T) {
	root := mustParse(t, "(a)bbbbbbbb(c)")
	// Window covers only the second pair, at the tail of the document.
	got := CollectBrackets(root, length.Zero, length.New(0, 11), root.Length(), 0, nil)
	if len(got) != 2 {
		t.Fatalf("expected 2 brackets, got %d: %+v", len(got), got)
	}
	if got[0].Start != length.New(0, 11) {
		t.Errorf("first bracket starts at %v, want (0,11)", got[0].Start)
	}
}

func TestCollectBracketsInvalidBracketsNotEmitted(t *testing.T) {
	root := mustParse(t, "a]b)c")
	got := CollectBrackets(root, length.Zero, length.Zero, root.Length(), 0, nil)
	if len(got) != 0 {
		t.Errorf("expected InvalidBracket leaves to be excluded, got %+v", got)
	}
}

func TestCollectBracketsPartialBoundaryOverlapIncluded(t *testing.T) {
	root := mustParse(t, "(ab)")
	// Query window [0,1) intersects only the opening bracket's span.
	got := CollectBrackets(root, length.Zero, length.Zero, length.New(0, 1), 0, nil)
	if len(got) != 1 {
		t.Fatalf("expected 1 bracket, got %d: %+v", len(got), got)
	}
	if got[0].Start != length.Zero || got[0].End != length.New(0, 1) {
		t.Errorf("unexpected bracket span: %+v", got[0])
	}
}
