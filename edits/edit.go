// Package edits implements the edit-to-offset mapper: it lets the
// parser translate a position in the post-edit document back into the
// equivalent position in the pre-edit document, so previously parsed
// subtrees can be looked up and reused.
package edits

import (
	"errors"
	"fmt"

	"github.com/dshills/bracketpair/length"
)

// ErrEditsOverlap is returned when a TextEdit sequence handed to
// NewMapper is not sorted and non-overlapping, per spec.md §6.2 and
// §7's "mis-provided edit sequence" fatal case.
var ErrEditsOverlap = errors.New("edits: edits overlap or are not sorted by start offset")

// TextEdit describes one contiguous replacement in the previous
// document. OldStart/OldEnd are offsets into the previous document;
// NewLength is the length of the text that replaced [OldStart, OldEnd)
// in the current document.
type TextEdit struct {
	OldStart  length.Length
	OldEnd    length.Length
	NewLength length.Length
}

// validate checks that edits are sorted by OldStart and non-overlapping
// in the previous document's coordinate space.
func validate(edits []TextEdit) error {
	for i, e := range edits {
		if e.OldStart.GreaterThan(e.OldEnd) {
			return fmt.Errorf("edits: edit %d has OldStart > OldEnd: %w", i, ErrEditsOverlap)
		}
		if i > 0 && edits[i-1].OldEnd.GreaterThan(e.OldStart) {
			return ErrEditsOverlap
		}
	}
	return nil
}
