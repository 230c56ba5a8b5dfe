package textbuf

import (
	"github.com/dshills/bracketpair/edits"
	"github.com/dshills/bracketpair/internal/textbuf/buffer"
	"github.com/dshills/bracketpair/internal/textbuf/tracking"
	"github.com/dshills/bracketpair/length"
)

// DiffContent computes a line-level diff between old and new document
// content, in the shape ChangesToTextEdits and ApplyDiff consume.
func DiffContent(oldContent, newContent string) tracking.DiffResult {
	return tracking.ComputeLineDiffStrings(oldContent, newContent)
}

// ChangesToTextEdits converts a line-level diff into the right-to-left
// edits.TextEdit sequence edits.NewMapper expects. It is the glue a
// host without byte-precise edit events (e.g. a file watcher reacting
// to an externally saved file) uses to still get incremental
// reparsing instead of a from-scratch parse on every change.
//
// Each hunk becomes one whole-line TextEdit.
func ChangesToTextEdits(diff tracking.DiffResult) []edits.TextEdit {
	out := make([]edits.TextEdit, len(diff.Hunks))
	for i, hunk := range diff.Hunks {
		out[len(out)-1-i] = edits.TextEdit{
			OldStart:  length.New(uint32(hunk.OldStart), 0),
			OldEnd:    length.New(uint32(hunk.OldStart+hunk.OldCount), 0),
			NewLength: length.New(uint32(hunk.NewCount), 0),
		}
	}
	return out
}

// ApplyDiff mutates buf in place so its content matches newContent,
// driving buffer.Buffer.Replace from diff's line hunks instead of
// discarding buf and building a fresh one from newContent. buf's
// content before the call must be the diff's "old" side.
//
// Hunks are applied last-to-first, matching ChangesToTextEdits's
// ordering: replacing an earlier hunk first would shift the byte
// offsets every later hunk was computed against.
func ApplyDiff(buf *buffer.Buffer, diff tracking.DiffResult, newContent string) error {
	newLineStarts := lineStartOffsets(newContent)

	for i := len(diff.Hunks) - 1; i >= 0; i-- {
		hunk := diff.Hunks[i]
		oldStart := buf.LineStartOffset(uint32(hunk.OldStart))
		oldEnd := buf.LineStartOffset(uint32(hunk.OldStart + hunk.OldCount))
		newStart := newLineStarts.offset(hunk.NewStart)
		newEnd := newLineStarts.offset(hunk.NewStart + hunk.NewCount)
		if err := buf.Replace(oldStart, oldEnd, newContent[newStart:newEnd]); err != nil {
			return err
		}
	}
	return nil
}

// lineOffsets is the byte offset of the start of every line in a
// string, plus a trailing sentinel at len(s) so a line count equal to
// the number of lines (the "one past the last line" case a hunk can
// report for a trailing insertion) still resolves to a valid offset.
type lineOffsets []int

func lineStartOffsets(s string) lineOffsets {
	starts := lineOffsets{0}
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			starts = append(starts, i+1)
		}
	}
	return append(starts, len(s))
}

func (o lineOffsets) offset(line int) int {
	if line < 0 {
		return 0
	}
	if line >= len(o) {
		return o[len(o)-1]
	}
	return o[line]
}
