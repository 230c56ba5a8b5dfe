// Package token defines the token stream the parser consumes. The
// tokenizer that produces this stream — usually backed by a text
// buffer's lexical classifier — is an external collaborator; this
// package only fixes the contract between it and the parser.
package token

import "github.com/dshills/bracketpair/length"

// Kind categorizes a Token.
type Kind uint8

const (
	// Text is a run of characters that carries no bracket meaning,
	// either because it truly is not a bracket character, or because
	// the upstream lexical classifier decided it lives inside a string
	// or comment.
	Text Kind = iota
	// OpeningBracket is a bracket character that opens a category.
	OpeningBracket
	// ClosingBracket is a bracket character that closes a category.
	ClosingBracket
)

// CategoryNone is the Category value carried by Text tokens, which have
// no bracket family.
const CategoryNone = -1

// Token is an opaque unit of the stream: consumers act on Kind and
// Category and pass Length through unexamined.
type Token struct {
	Length   length.Length
	Kind     Kind
	Category int
}

// Tokenizer is a peekable, skippable stream of Tokens over some
// underlying document. Implementations are supplied by the host (a
// text buffer plus its lexical tokenizer); the parser only ever talks
// to this interface.
type Tokenizer interface {
	// Offset returns the tokenizer's current position in the document.
	Offset() length.Length

	// TotalLength returns the length of the whole document the
	// tokenizer is reading over.
	TotalLength() length.Length

	// Peek returns the next token without consuming it. Peek is
	// idempotent: calling it repeatedly without an intervening Read or
	// Skip returns the same token. Returns ok=false at end of stream.
	Peek() (t Token, ok bool)

	// Read returns and consumes the next token. Returns ok=false at
	// end of stream.
	Read() (t Token, ok bool)

	// Skip advances the tokenizer's offset by the given length,
	// invalidating any pending Peek.
	Skip(l length.Length)

	// Text returns the tokenizer's remaining or full source text, for
	// debugging only. Implementations may return an empty string.
	Text() string
}
