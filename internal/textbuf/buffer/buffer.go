package buffer

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// Errors returned by buffer operations.
var (
	ErrOffsetOutOfRange = errors.New("offset out of range")
	ErrRangeInvalid     = errors.New("invalid range")
)

// ByteOffset is a byte position into a Buffer's content.
type ByteOffset = int64

// Point is a line/column position. Both fields are 0-indexed; Column
// counts bytes from the start of the line, not runes, mirroring
// length.Length's shape so the two convert field-by-field.
type Point struct {
	Line   uint32
	Column uint32
}

func (p Point) String() string { return fmt.Sprintf("(%d:%d)", p.Line, p.Column) }

// Compare returns -1 if p < other, 0 if p == other, 1 if p > other.
func (p Point) Compare(other Point) int {
	if p.Line != other.Line {
		if p.Line < other.Line {
			return -1
		}
		return 1
	}
	switch {
	case p.Column < other.Column:
		return -1
	case p.Column > other.Column:
		return 1
	default:
		return 0
	}
}

// Before returns true if p comes before other.
func (p Point) Before(other Point) bool { return p.Compare(other) < 0 }

// Buffer is a mutable byte buffer with a line-start index kept in sync
// on every Insert/Delete/Replace. It has no locking: like the
// tokenizer built on top of it, a Buffer belongs to a single parse
// pass at a time.
type Buffer struct {
	data       []byte
	lineStarts []int
}

// NewBuffer returns an empty Buffer.
func NewBuffer() *Buffer {
	return &Buffer{lineStarts: []int{0}}
}

// NewBufferFromString returns a Buffer seeded with s.
func NewBufferFromString(s string) *Buffer {
	b := &Buffer{data: []byte(s)}
	b.reindex()
	return b
}

func (b *Buffer) reindex() {
	starts := b.lineStarts[:0]
	starts = append(starts, 0)
	for i, c := range b.data {
		if c == '\n' {
			starts = append(starts, i+1)
		}
	}
	b.lineStarts = starts
}

// Text returns the full buffer content.
func (b *Buffer) Text() string { return string(b.data) }

// Len returns the buffer's length in bytes.
func (b *Buffer) Len() ByteOffset { return ByteOffset(len(b.data)) }

// LineCount returns the number of lines; an empty buffer has one.
func (b *Buffer) LineCount() uint32 { return uint32(len(b.lineStarts)) }

// TextRange returns the content in [start, end), clamped to the
// buffer's bounds.
func (b *Buffer) TextRange(start, end ByteOffset) string {
	if start < 0 {
		start = 0
	}
	if max := ByteOffset(len(b.data)); end > max {
		end = max
	}
	if start >= end {
		return ""
	}
	return string(b.data[start:end])
}

// RuneAt decodes the rune starting at offset and returns its size in
// bytes. It returns (utf8.RuneError, 0) at or past the end of the
// buffer.
func (b *Buffer) RuneAt(offset ByteOffset) (rune, int) {
	if offset < 0 || offset >= ByteOffset(len(b.data)) {
		return utf8.RuneError, 0
	}
	return utf8.DecodeRune(b.data[offset:])
}

// LineStartOffset returns the byte offset of the start of line. A line
// number past the end of the buffer clamps to the buffer's length.
func (b *Buffer) LineStartOffset(line uint32) ByteOffset {
	if int(line) >= len(b.lineStarts) {
		return ByteOffset(len(b.data))
	}
	return ByteOffset(b.lineStarts[line])
}

// OffsetToPoint converts a byte offset to a line/column position.
func (b *Buffer) OffsetToPoint(offset ByteOffset) Point {
	if offset < 0 {
		offset = 0
	}
	line := b.lineForOffset(offset)
	return Point{Line: uint32(line), Column: uint32(offset - ByteOffset(b.lineStarts[line]))}
}

// lineForOffset returns the largest line index whose start is <= offset.
func (b *Buffer) lineForOffset(offset ByteOffset) int {
	lo, hi := 0, len(b.lineStarts)-1
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if ByteOffset(b.lineStarts[mid]) <= offset {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return lo
}

// PointToOffset converts a line/column position to a byte offset. A
// line number past the end of the buffer clamps to the last line.
func (b *Buffer) PointToOffset(p Point) ByteOffset {
	line := int(p.Line)
	if line >= len(b.lineStarts) {
		line = len(b.lineStarts) - 1
	}
	return ByteOffset(b.lineStarts[line]) + ByteOffset(p.Column)
}

// Insert splices text into the buffer at offset, mutating it in place.
func (b *Buffer) Insert(offset ByteOffset, text string) error {
	if offset < 0 || offset > ByteOffset(len(b.data)) {
		return fmt.Errorf("buffer: insert at %d: %w", offset, ErrOffsetOutOfRange)
	}
	return b.Replace(offset, offset, text)
}

// Delete removes [start, end) from the buffer, mutating it in place.
func (b *Buffer) Delete(start, end ByteOffset) error {
	return b.Replace(start, end, "")
}

// Replace splices text over [start, end), mutating the buffer in
// place and rebuilding the line-start index. This is the primitive
// the watch subcommand's reparse loop drives directly from computed
// diff hunks, rather than rebuilding a Buffer from scratch on every
// file change.
func (b *Buffer) Replace(start, end ByteOffset, text string) error {
	n := ByteOffset(len(b.data))
	if start < 0 || end < start || end > n {
		return fmt.Errorf("buffer: replace [%d:%d) in %d bytes: %w", start, end, n, ErrRangeInvalid)
	}
	next := make([]byte, 0, start+ByteOffset(len(text))+(n-end))
	next = append(next, b.data[:start]...)
	next = append(next, text...)
	next = append(next, b.data[end:]...)
	b.data = next
	b.reindex()
	return nil
}
