package reader

import (
	"testing"

	"github.com/dshills/bracketpair/ast"
	"github.com/dshills/bracketpair/length"
)

func always(*ast.Node) bool { return true }

// notList accepts every node except List containers. With always, the
// reader returns the longest node starting at an offset, which is often
// an enclosing List rather than the leaf the tests look for.
func notList(n *ast.Node) bool { return n.Kind() != ast.List }

func TestReadLongestNodeAtNilRoot(t *testing.T) {
	r := New(nil)
	if got := r.ReadLongestNodeAt(length.Zero, always); got != nil {
		t.Errorf("expected nil for a reader with no previous tree, got %v", got)
	}
}

func TestReadLongestNodeAtFindsTopLevelItems(t *testing.T) {
	a := ast.NewText(length.New(0, 3))
	b := ast.NewText(length.New(0, 2))
	c := ast.NewText(length.New(0, 4))
	root := ast.MergeTrees([]*ast.Node{a, b, c})

	r := New(root)

	got := r.ReadLongestNodeAt(length.New(0, 0), notList)
	if got != a {
		t.Errorf("offset 0: got %v, want a", got)
	}

	got = r.ReadLongestNodeAt(length.New(0, 3), notList)
	if got != b {
		t.Errorf("offset 3: got %v, want b", got)
	}

	got = r.ReadLongestNodeAt(length.New(0, 5), notList)
	if got != c {
		t.Errorf("offset 5: got %v, want c", got)
	}
}

func TestReadLongestNodeAtNoMatchAtOffset(t *testing.T) {
	a := ast.NewText(length.New(0, 3))
	root := ast.MergeTrees([]*ast.Node{a})

	r := New(root)
	// Offset 1 falls inside `a`, not at the start of any node.
	if got := r.ReadLongestNodeAt(length.New(0, 1), always); got != nil {
		t.Errorf("expected nil for an offset that doesn't align with a node start, got %v", got)
	}
}

func TestReadLongestNodeAtDescendsPastPair(t *testing.T) {
	opening := ast.NewBracket(length.New(0, 1))
	inner := ast.NewText(length.New(0, 2))
	closing := ast.NewBracket(length.New(0, 1))
	pair := ast.NewPair(2, opening, inner, closing)

	root := ast.MergeTrees([]*ast.Node{pair})
	r := New(root)

	// At offset 0, the outer Pair starts here; reject it via predicate
	// so the reader descends into the child (which starts at 1, past
	// the opening bracket) -- but since inner starts at 1, not 0, there
	// is nothing else starting exactly at 0, so it should return nil.
	rejectPair := func(n *ast.Node) bool { return n.Kind() != ast.Pair }
	if got := r.ReadLongestNodeAt(length.New(0, 0), rejectPair); got != nil {
		t.Errorf("expected nil, got kind %v", got.Kind())
	}

	r2 := New(root)
	got := r2.ReadLongestNodeAt(length.New(0, 1), always)
	if got != inner {
		t.Errorf("offset 1: got %v, want inner", got)
	}
}

func TestReadLongestNodeAtMonotonicSequence(t *testing.T) {
	leaves := make([]*ast.Node, 10)
	for i := range leaves {
		leaves[i] = ast.NewText(length.New(0, 1))
	}
	root := ast.MergeTrees(leaves)
	r := New(root)

	for i, want := range leaves {
		got := r.ReadLongestNodeAt(length.New(0, uint32(i)), notList)
		if got != want {
			t.Fatalf("offset %d: got %v, want leaf %d", i, got, i)
		}
	}
}
