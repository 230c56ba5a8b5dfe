// Package parser implements the incremental recursive-descent bracket
// matcher (spec.md §4.6): it drives the length, token, ast, reader, and
// edits packages to turn a token stream into an AST, reusing subtrees
// from a previous parse wherever an edit's reach doesn't touch them.
package parser

import (
	"errors"
	"fmt"

	"github.com/dshills/bracketpair/ast"
	"github.com/dshills/bracketpair/edits"
	"github.com/dshills/bracketpair/reader"
	"github.com/dshills/bracketpair/token"
)

// ErrUnexpectedTokenKind is a fatal programmer error per spec.md §7: the
// tokenizer returned a Kind value the parser doesn't recognize. It
// should be unreachable in practice.
var ErrUnexpectedTokenKind = errors.New("parser: tokenizer returned an unrecognized token kind")

// Parser drives a Tokenizer through spec.md §4.6's grammar, optionally
// consulting a previous AST (via reader and mapper) to reuse subtrees
// spanning regions no edit touched.
type Parser struct {
	tok    token.Tokenizer
	reader *reader.NodeReader // nil when there is no previous tree
	mapper *edits.Mapper      // nil alongside reader
}

// New builds a Parser with no previous tree: every parseChild call takes
// the fresh-token path.
func New(tok token.Tokenizer) *Parser {
	return &Parser{tok: tok}
}

// NewIncremental builds a Parser that attempts to reuse subtrees of
// previousRoot wherever mapper reports the region is untouched by the
// edits that produced tok's document.
func NewIncremental(tok token.Tokenizer, previousRoot *ast.Node, mapper *edits.Mapper) *Parser {
	return &Parser{tok: tok, reader: reader.New(previousRoot), mapper: mapper}
}

// ParseDocument runs the top-level production (spec.md §4.6): a single
// parseList with no expected closers, normalized by ast.MergeTrees into
// one balanced tree. A document with a single top-level node (e.g. "()")
// yields that node itself, not wrapped in a List. An empty document
// yields ast.EmptyList().
func (p *Parser) ParseDocument() (*ast.Node, error) {
	result, err := p.parseList(map[int]bool{})
	if err != nil {
		return nil, err
	}
	if result == nil {
		return ast.EmptyList(), nil
	}
	return result, nil
}

// parseList repeatedly parses children until EOF or the next token is a
// closer whose category is already in expectedClosers, then normalizes
// the collected siblings into one balanced (2,3)-tree.
func (p *Parser) parseList(expectedClosers map[int]bool) (*ast.Node, error) {
	var items []*ast.Node

	for {
		next, ok := p.tok.Peek()
		if !ok {
			break
		}
		if next.Kind == token.ClosingBracket && expectedClosers[next.Category] {
			break
		}

		child, err := p.parseChild(expectedClosers)
		if err != nil {
			return nil, err
		}
		if child.Kind() == ast.List && len(child.Items()) == 0 {
			continue
		}
		items = append(items, child)
	}

	return ast.MergeTrees(items), nil
}

// parseChild produces exactly one AST node covering one or more tokens,
// first attempting to splice in a subtree reused verbatim from the
// previous parse (spec.md §4.6 step 1), falling back to reading a fresh
// token and, for openers, recursing into parseList.
func (p *Parser) parseChild(expectedClosers map[int]bool) (*ast.Node, error) {
	if reused := p.tryReuse(); reused != nil {
		return reused, nil
	}

	tok, ok := p.tok.Read()
	if !ok {
		return nil, fmt.Errorf("parser: parseChild called at end of stream: %w", ErrUnexpectedTokenKind)
	}

	switch tok.Kind {
	case token.Text:
		return ast.NewText(tok.Length), nil
	case token.ClosingBracket:
		// Not consumed as a terminator by any enclosing parseList (that
		// check happens before parseChild is called), so it's unmatched.
		return ast.NewInvalidBracket(tok.Length), nil
	case token.OpeningBracket:
		return p.parsePair(tok, expectedClosers)
	default:
		return nil, fmt.Errorf("parser: token kind %d: %w", tok.Kind, ErrUnexpectedTokenKind)
	}
}

// parsePair implements the OpeningBracket branch of spec.md §4.6 step 2:
// it enrolls the category into expectedClosers (unless already present),
// parses the enclosed sibling list, then looks for a matching closer.
func (p *Parser) parsePair(open token.Token, expectedClosers map[int]bool) (*ast.Node, error) {
	cat := open.Category
	added := !expectedClosers[cat]
	if added {
		expectedClosers[cat] = true
	}

	child, err := p.parseList(expectedClosers)
	if err != nil {
		return nil, err
	}

	if added {
		delete(expectedClosers, cat)
	}

	opening := ast.NewBracket(open.Length)
	if len(child.Items()) == 0 && child.Kind() == ast.List {
		child = nil
	}

	next, ok := p.tok.Peek()
	if ok && next.Kind == token.ClosingBracket && next.Category == cat {
		p.tok.Read()
		closing := ast.NewBracket(next.Length)
		return ast.NewPair(cat, opening, child, closing), nil
	}
	return ast.NewPair(cat, opening, child, nil), nil
}

// tryReuse implements spec.md §4.6 step 1. It returns nil when there is
// no previous tree, when the edit distance to the current offset is
// zero, or when no reusable node starts exactly there.
func (p *Parser) tryReuse() *ast.Node {
	if p.reader == nil || p.mapper == nil {
		return nil
	}

	offset := p.tok.Offset()
	maxReuse := p.mapper.GetDistanceToNextChange(offset)
	if maxReuse.IsZero() {
		return nil
	}

	preEditOffset := p.mapper.GetOffsetBeforeChange(offset)
	predicate := func(n *ast.Node) bool {
		return n.Length().LessThanEqual(maxReuse) && n.CanBeReused(nil)
	}

	n := p.reader.ReadLongestNodeAt(preEditOffset, predicate)
	if n == nil {
		return nil
	}

	p.tok.Skip(n.Length())
	return n
}
