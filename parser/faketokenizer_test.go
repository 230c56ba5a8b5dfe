package parser

import (
	"github.com/dshills/bracketpair/length"
	"github.com/dshills/bracketpair/token"
)

// testCategories maps opener/closer runes to categories, mirroring
// spec.md §6.1's reference mapping ('[' '(' '{' -> 1, 2, 3) but kept
// local to tests so the parser package doesn't depend on a concrete
// tokenizer implementation.
var testCategories = map[rune]int{
	'[': 1, ']': 1,
	'(': 2, ')': 2,
	'{': 3, '}': 3,
}

func isOpener(r rune) bool  { return r == '[' || r == '(' || r == '{' }
func isCloser(r rune) bool  { return r == ']' || r == ')' || r == '}' }
func isBracket(r rune) bool { return isOpener(r) || isCloser(r) }

// fakeTokenizer implements token.Tokenizer over an in-memory rune slice
// for tests: it classifies '[', ']', '(', ')', '{', '}' as brackets
// and coalesces everything else into Text runs, exactly like
// spec.md §6.1 describes for the reference tokenizer, without a text
// buffer behind it.
type fakeTokenizer struct {
	runes  []rune
	pos    int // index into runes, matches Offset().Columns since inputs are single-line
	pending *token.Token
}

func newFakeTokenizer(s string) *fakeTokenizer {
	return &fakeTokenizer{runes: []rune(s)}
}

func (f *fakeTokenizer) Offset() length.Length {
	return length.New(0, uint32(f.pos))
}

func (f *fakeTokenizer) TotalLength() length.Length {
	return length.New(0, uint32(len(f.runes)))
}

func (f *fakeTokenizer) Peek() (token.Token, bool) {
	if f.pending != nil {
		return *f.pending, true
	}
	t, ok := f.next()
	if !ok {
		return token.Token{}, false
	}
	f.pending = &t
	return t, true
}

func (f *fakeTokenizer) Read() (token.Token, bool) {
	t, ok := f.Peek()
	if !ok {
		return token.Token{}, false
	}
	f.pending = nil
	f.pos += int(t.Length.Columns)
	return t, true
}

func (f *fakeTokenizer) Skip(l length.Length) {
	f.pending = nil
	f.pos += int(l.Columns)
}

func (f *fakeTokenizer) Text() string {
	return string(f.runes[f.pos:])
}

// next classifies the token starting at f.pos without consuming it.
func (f *fakeTokenizer) next() (token.Token, bool) {
	if f.pos >= len(f.runes) {
		return token.Token{}, false
	}
	r := f.runes[f.pos]
	if isOpener(r) {
		return token.Token{Length: length.New(0, 1), Kind: token.OpeningBracket, Category: testCategories[r]}, true
	}
	if isCloser(r) {
		return token.Token{Length: length.New(0, 1), Kind: token.ClosingBracket, Category: testCategories[r]}, true
	}

	end := f.pos + 1
	for end < len(f.runes) && !isBracket(f.runes[end]) {
		end++
	}
	run := string(f.runes[f.pos:end])
	return token.Token{Length: length.OfString(run), Kind: token.Text, Category: token.CategoryNone}, true
}
