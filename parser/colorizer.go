package parser

import (
	"github.com/dshills/bracketpair/ast"
	"github.com/dshills/bracketpair/edits"
	"github.com/dshills/bracketpair/length"
	"github.com/dshills/bracketpair/token"
)

// Colorizer is the top-level object a host editor owns: it holds the
// current AST and exposes spec.md §6.3's two operations. It has no
// opinion on how brackets are painted; that's the decoration layer's
// job, out of this module's scope.
type Colorizer struct {
	currentAst *ast.Node
}

// NewColorizer returns a Colorizer with an empty document.
func NewColorizer() *Colorizer {
	return &Colorizer{currentAst: ast.EmptyList()}
}

// HandleContentChanged reparses newTok's document, reusing subtrees of
// the current AST that no edit in changes touches, and installs the
// result as the new currentAst. changes must be supplied in
// right-to-left order, per edits.NewMapper's contract. Passing a nil or
// empty changes with a newTok over the same document is a valid way to
// force a from-scratch reparse (e.g. on first load).
func (c *Colorizer) HandleContentChanged(changes []edits.TextEdit, newTok token.Tokenizer) error {
	if len(changes) == 0 {
		p := New(newTok)
		root, err := p.ParseDocument()
		if err != nil {
			return err
		}
		c.currentAst = root
		return nil
	}

	mapper, err := edits.NewMapper(changes, newTok.TotalLength())
	if err != nil {
		return err
	}

	p := NewIncremental(newTok, c.currentAst, mapper)
	root, err := p.ParseDocument()
	if err != nil {
		return err
	}
	c.currentAst = root
	return nil
}

// GetBracketsInRange returns every Bracket leaf in the current AST whose
// span intersects [start, end), in document order, annotated with its
// nesting depth.
func (c *Colorizer) GetBracketsInRange(start, end length.Length) []BracketRange {
	return CollectBrackets(c.currentAst, length.Zero, start, end, 0, nil)
}

// CurrentAst returns the AST produced by the most recent parse, mainly
// for tests and for callers that want to run their own tree queries.
func (c *Colorizer) CurrentAst() *ast.Node {
	return c.currentAst
}
