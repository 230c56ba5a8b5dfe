package edits

import (
	"sort"

	"github.com/dshills/bracketpair/length"
)

// segment is one precomputed edit interval, expressed in both the old
// and the new document's coordinate space.
type segment struct {
	oldStart, oldEnd length.Length
	newStart, newEnd length.Length
}

// Mapper answers spec.md §4.5's two queries against a batch of edits
// applied to a previous document. Edits are supplied to NewMapper in
// right-to-left order (the order a host applies them in, highest
// offset first, mirroring internal/textbuf.ApplyDiff's hunk order);
// NewMapper reverses them internally to build a left-to-right table.
type Mapper struct {
	segments    []segment
	newDocument length.Length
}

// NewMapper builds a Mapper from edits (right-to-left order) and the
// total length of the current (post-edit) document. It returns
// ErrEditsOverlap if the edits, once put in left-to-right order, are
// not sorted and non-overlapping in the previous document's space.
func NewMapper(editsRightToLeft []TextEdit, newDocumentLength length.Length) (*Mapper, error) {
	leftToRight := make([]TextEdit, len(editsRightToLeft))
	for i, e := range editsRightToLeft {
		leftToRight[len(editsRightToLeft)-1-i] = e
	}
	if err := validate(leftToRight); err != nil {
		return nil, err
	}

	segments := make([]segment, len(leftToRight))
	prevOldEnd, prevNewEnd := length.Zero, length.Zero
	for i, e := range leftToRight {
		gap := length.DiffNonNeg(prevOldEnd, e.OldStart)
		newStart := prevNewEnd.Add(gap)
		newEnd := newStart.Add(e.NewLength)
		segments[i] = segment{oldStart: e.OldStart, oldEnd: e.OldEnd, newStart: newStart, newEnd: newEnd}
		prevOldEnd, prevNewEnd = e.OldEnd, newEnd
	}

	return &Mapper{segments: segments, newDocument: newDocumentLength}, nil
}

// find returns the index of the first segment whose newEnd is strictly
// greater than newOffset (i.e. the first segment that could still be
// relevant), or len(segments) if none is.
func (m *Mapper) find(newOffset length.Length) int {
	return sort.Search(len(m.segments), func(i int) bool {
		return newOffset.LessThan(m.segments[i].newEnd)
	})
}

// GetOffsetBeforeChange maps a current-document offset to the
// equivalent pre-edit offset. If newOffset falls inside an edit's
// replacement region, the result is that edit's OldStart.
func (m *Mapper) GetOffsetBeforeChange(newOffset length.Length) length.Length {
	i := m.find(newOffset)

	var prevOldEnd, prevNewEnd length.Length
	if i > 0 {
		prevOldEnd = m.segments[i-1].oldEnd
		prevNewEnd = m.segments[i-1].newEnd
	}

	if i < len(m.segments) {
		seg := m.segments[i]
		if newOffset.GreaterThanEqual(seg.newStart) {
			return seg.oldStart
		}
	}

	return prevOldEnd.Add(length.DiffNonNeg(prevNewEnd, newOffset))
}

// GetDistanceToNextChange returns the distance from newOffset to the
// start of the next edit's replacement region in the current document,
// or to the document's end if there is none. It returns Zero when
// newOffset already lies inside an edit's replacement region.
func (m *Mapper) GetDistanceToNextChange(newOffset length.Length) length.Length {
	i := m.find(newOffset)

	if i < len(m.segments) {
		seg := m.segments[i]
		if newOffset.GreaterThanEqual(seg.newStart) {
			return length.Zero
		}
		return length.DiffNonNeg(newOffset, seg.newStart)
	}

	return length.DiffNonNeg(newOffset, m.newDocument)
}
