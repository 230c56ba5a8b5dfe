// Package length implements the two-axis (line, column) displacement
// algebra that every other package in this module measures positions
// with. A Length never carries a sign: it denotes "this many lines and
// then this many columns further", never a position by itself.
package length

import "strings"

// Length is a non-negative displacement in a document, measured as a
// number of line advances followed by a number of columns on the final
// line. Both fields are 0-indexed deltas, not 1-based positions.
type Length struct {
	Lines   uint32
	Columns uint32
}

// Zero is the additive identity: no lines, no columns.
var Zero = Length{}

// New builds a Length directly from a line/column delta pair.
func New(lines, columns uint32) Length {
	return Length{Lines: lines, Columns: columns}
}

// IsZero reports whether l is the zero length.
func (l Length) IsZero() bool {
	return l.Lines == 0 && l.Columns == 0
}

// Add returns a+b. Column resets on every line advance: if b spans at
// least one line, the result's column comes entirely from b, since b's
// columns are measured from the start of whatever line a's tail landed
// on.
func Add(a, b Length) Length {
	if b.Lines == 0 {
		return Length{Lines: a.Lines, Columns: a.Columns + b.Columns}
	}
	return Length{Lines: a.Lines + b.Lines, Columns: b.Columns}
}

// Add returns l+other. Convenience wrapper around the package-level Add.
func (l Length) Add(other Length) Length {
	return Add(l, other)
}

// Compare returns -1, 0, or 1 as l is less than, equal to, or greater
// than other, ordering lexicographically by (Lines, Columns).
func (l Length) Compare(other Length) int {
	if l.Lines != other.Lines {
		if l.Lines < other.Lines {
			return -1
		}
		return 1
	}
	if l.Columns != other.Columns {
		if l.Columns < other.Columns {
			return -1
		}
		return 1
	}
	return 0
}

// LessThan reports whether l < other.
func (l Length) LessThan(other Length) bool {
	return l.Compare(other) < 0
}

// LessThanEqual reports whether l <= other.
func (l Length) LessThanEqual(other Length) bool {
	return l.Compare(other) <= 0
}

// GreaterThan reports whether l > other.
func (l Length) GreaterThan(other Length) bool {
	return l.Compare(other) > 0
}

// GreaterThanEqual reports whether l >= other.
func (l Length) GreaterThanEqual(other Length) bool {
	return l.Compare(other) >= 0
}

// Equal reports whether l == other.
func (l Length) Equal(other Length) bool {
	return l.Lines == other.Lines && l.Columns == other.Columns
}

// DiffNonNeg returns the unique d such that Add(a, d) == b, provided
// a <= b. If a > b, there is no non-negative displacement between them
// and DiffNonNeg returns Zero.
func DiffNonNeg(a, b Length) Length {
	if a.GreaterThan(b) {
		return Zero
	}
	if a.Lines == b.Lines {
		return Length{Lines: 0, Columns: b.Columns - a.Columns}
	}
	return Length{Lines: b.Lines - a.Lines, Columns: b.Columns}
}

// OfString returns the length spanned by s: the number of line breaks
// it contains, and the byte length of whatever follows the last one
// (or the whole string, if it contains none).
func OfString(s string) Length {
	lines := uint32(strings.Count(s, "\n"))
	last := s
	if idx := strings.LastIndexByte(s, '\n'); idx >= 0 {
		last = s[idx+1:]
	}
	return Length{Lines: lines, Columns: uint32(len(last))}
}

// Position is a 1-based document position, the form editors present to
// users. Lengths are 0-based deltas; Position is what a Length is
// eventually rendered as, or derived from, at the boundary of this
// module.
type Position struct {
	Line   uint32 // 1-based
	Column uint32 // 1-based
}

// ToPosition converts a length measured from the start of the document
// into the 1-based position it denotes.
func ToPosition(l Length) Position {
	return Position{Line: l.Lines + 1, Column: l.Columns + 1}
}

// FromPosition converts a 1-based document position into the length
// (measured from the document start) it denotes. Positions with
// Line == 0 or Column == 0 are invalid; FromPosition clamps them to 1.
func FromPosition(p Position) Length {
	line := p.Line
	if line == 0 {
		line = 1
	}
	col := p.Column
	if col == 0 {
		col = 1
	}
	return Length{Lines: line - 1, Columns: col - 1}
}
