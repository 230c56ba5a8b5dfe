// Package textbuf adapts the buffer package (a small mutable byte
// buffer) into the parser's Tokenizer contract, and turns a buffer
// content diff into the edits.TextEdit sequence the incremental
// parser expects.
package textbuf

import (
	"github.com/dshills/bracketpair/internal/textbuf/buffer"
	"github.com/dshills/bracketpair/length"
	"github.com/dshills/bracketpair/token"
)

// maxTextRunChars bounds a single coalesced Text token, matching
// spec.md §6.1's reference tokenizer cap. It only bounds token size; a
// smaller or larger cap would be equally correct.
const maxTextRunChars = 1000

// defaultCategories maps the reference bracket characters to their
// category, per spec.md §6.1: '[' ']' -> 1, '(' ')' -> 2, '{' '}' -> 3.
var defaultCategories = categoryTable{
	openers: map[rune]int{'[': 1, '(': 2, '{': 3},
	closers: map[rune]int{']': 1, ')': 2, '}': 3},
}

// categoryTable is the bracket-character classification a Tokenizer
// consults. It is built from internal/config's Config so that the CLI
// can recognize bracket families beyond the default three.
type categoryTable struct {
	openers map[rune]int
	closers map[rune]int
}

func newCategoryTable(pairs map[rune]rune, categoryOf map[rune]int) categoryTable {
	t := categoryTable{openers: map[rune]int{}, closers: map[rune]int{}}
	for open, close := range pairs {
		cat := categoryOf[open]
		t.openers[open] = cat
		t.closers[close] = cat
	}
	return t
}

func (t categoryTable) isOpener(r rune) bool { _, ok := t.openers[r]; return ok }
func (t categoryTable) isCloser(r rune) bool { _, ok := t.closers[r]; return ok }
func (t categoryTable) isBracket(r rune) bool {
	return t.isOpener(r) || t.isCloser(r)
}

// Tokenizer implements token.Tokenizer over a buffer.Buffer's content.
// It has no lexical awareness of strings or comments: every bracket
// character is classified as a bracket token, which matches this
// module's non-goal of language-specific bracket semantics.
type Tokenizer struct {
	buf          *buffer.Buffer
	offset       buffer.ByteOffset
	total        buffer.ByteOffset
	pending      *token.Token
	pendingBytes buffer.ByteOffset
	categories   categoryTable
}

// Option configures a Tokenizer.
type Option func(*Tokenizer)

// WithCategories overrides the default '[]', '()', '{}' bracket
// families with a caller-supplied set of opener/closer pairs, each
// mapped to a category ID (see internal/config.Config.BracketTable).
func WithCategories(pairs map[rune]rune, categoryOf map[rune]int) Option {
	return func(t *Tokenizer) { t.categories = newCategoryTable(pairs, categoryOf) }
}

// New returns a Tokenizer over buf's content at the time of the call.
// buf must not be mutated while the Tokenizer is in use.
func New(buf *buffer.Buffer, opts ...Option) *Tokenizer {
	t := &Tokenizer{buf: buf, total: buf.Len(), categories: defaultCategories}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func (t *Tokenizer) toLength(offset buffer.ByteOffset) length.Length {
	p := t.buf.OffsetToPoint(offset)
	return length.New(p.Line, p.Column)
}

// Offset implements token.Tokenizer.
func (t *Tokenizer) Offset() length.Length {
	return t.toLength(t.offset)
}

// TotalLength implements token.Tokenizer.
func (t *Tokenizer) TotalLength() length.Length {
	return t.toLength(t.total)
}

// Peek implements token.Tokenizer.
func (t *Tokenizer) Peek() (token.Token, bool) {
	if t.pending != nil {
		return *t.pending, true
	}
	tok, n, ok := t.next()
	if !ok {
		return token.Token{}, false
	}
	t.pending = &tok
	t.pendingBytes = n
	return tok, true
}

// Read implements token.Tokenizer.
func (t *Tokenizer) Read() (token.Token, bool) {
	tok, ok := t.Peek()
	if !ok {
		return token.Token{}, false
	}
	t.offset += t.pendingBytes
	t.pending = nil
	return tok, true
}

// Skip implements token.Tokenizer. l is a displacement from the current
// offset, not an absolute position.
func (t *Tokenizer) Skip(l length.Length) {
	t.pending = nil
	current := t.buf.OffsetToPoint(t.offset)
	target := length.New(current.Line, current.Column).Add(l)
	t.offset = t.buf.PointToOffset(buffer.Point{Line: target.Lines, Column: target.Columns})
}

// Text implements token.Tokenizer.
func (t *Tokenizer) Text() string {
	return t.buf.TextRange(t.offset, t.total)
}

// next classifies the token starting at t.offset without consuming it,
// returning the token, the number of bytes it spans, and whether one
// was found.
func (t *Tokenizer) next() (token.Token, buffer.ByteOffset, bool) {
	if t.offset >= t.total {
		return token.Token{}, 0, false
	}

	r, size := t.buf.RuneAt(t.offset)
	if t.categories.isBracket(r) {
		kind := token.OpeningBracket
		cat := t.categories.openers[r]
		if t.categories.isCloser(r) {
			kind = token.ClosingBracket
			cat = t.categories.closers[r]
		}
		tok := token.Token{
			Length:   length.New(0, uint32(size)),
			Kind:     kind,
			Category: cat,
		}
		return tok, buffer.ByteOffset(size), true
	}

	end := t.offset + buffer.ByteOffset(size)
	chars := 1
	for chars < maxTextRunChars && end < t.total {
		nr, nsize := t.buf.RuneAt(end)
		if t.categories.isBracket(nr) {
			break
		}
		end += buffer.ByteOffset(nsize)
		chars++
	}

	run := t.buf.TextRange(t.offset, end)
	tok := token.Token{Length: length.OfString(run), Kind: token.Text, Category: token.CategoryNone}
	return tok, end - t.offset, true
}
