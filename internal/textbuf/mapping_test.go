package textbuf

import (
	"testing"

	"github.com/dshills/bracketpair/edits"
	"github.com/dshills/bracketpair/internal/textbuf/buffer"
	"github.com/dshills/bracketpair/length"
)

func TestDiffContentNoChange(t *testing.T) {
	diff := DiffContent("a\nb\nc\n", "a\nb\nc\n")
	if diff.HasChanges() {
		t.Errorf("expected no changes, got %+v", diff.Hunks)
	}
	if got := ChangesToTextEdits(diff); len(got) != 0 {
		t.Errorf("expected no edits, got %+v", got)
	}
}

func TestDiffContentPureInsertion(t *testing.T) {
	diff := DiffContent("a\nc\n", "a\nb\nc\n")
	got := ChangesToTextEdits(diff)
	if len(got) != 1 {
		t.Fatalf("expected 1 edit, got %d: %+v", len(got), got)
	}
	e := got[0]
	if e.OldStart != e.OldEnd {
		t.Errorf("pure insertion should span zero old lines, got start=%v end=%v", e.OldStart, e.OldEnd)
	}
	if e.NewLength != length.New(1, 0) {
		t.Errorf("NewLength = %v, want one line", e.NewLength)
	}
}

func TestDiffContentPureDeletion(t *testing.T) {
	diff := DiffContent("a\nb\nc\n", "a\nc\n")
	got := ChangesToTextEdits(diff)
	if len(got) != 1 {
		t.Fatalf("expected 1 edit, got %d: %+v", len(got), got)
	}
	e := got[0]
	if diff := length.DiffNonNeg(e.OldStart, e.OldEnd); diff != length.New(1, 0) {
		t.Errorf("expected a one-line old span, got %v", diff)
	}
	if e.NewLength != length.Zero {
		t.Errorf("NewLength = %v, want zero", e.NewLength)
	}
}

func TestDiffContentReplace(t *testing.T) {
	diff := DiffContent("a\nb\nc\n", "a\nX\nc\n")
	got := ChangesToTextEdits(diff)
	if len(got) != 1 {
		t.Fatalf("expected 1 edit, got %d: %+v", len(got), got)
	}
	e := got[0]
	if diff := length.DiffNonNeg(e.OldStart, e.OldEnd); diff != length.New(1, 0) {
		t.Errorf("expected a one-line old span, got %v", diff)
	}
	if e.NewLength != length.New(1, 0) {
		t.Errorf("NewLength = %v, want one line", e.NewLength)
	}
}

func TestDiffContentMultipleHunksOrderedRightToLeft(t *testing.T) {
	diff := DiffContent("a\nb\nc\nd\ne\n", "X\nb\nc\nY\ne\n")
	got := ChangesToTextEdits(diff)
	if len(got) != 2 {
		t.Fatalf("expected 2 edits, got %d: %+v", len(got), got)
	}
	if !got[0].OldStart.GreaterThan(got[1].OldStart) {
		t.Errorf("edits not in right-to-left order: %+v", got)
	}
	newContent := "X\nb\nc\nY\ne\n"
	if _, err := edits.NewMapper(got, length.OfString(newContent)); err != nil {
		t.Errorf("edits from a multi-hunk diff should satisfy NewMapper's ordering contract: %v", err)
	}
}

func TestDiffContentEmptyToNonEmpty(t *testing.T) {
	diff := DiffContent("", "a\nb\n")
	got := ChangesToTextEdits(diff)
	if len(got) != 1 {
		t.Fatalf("expected 1 edit, got %d: %+v", len(got), got)
	}
	if got[0].NewLength != length.New(2, 0) {
		t.Errorf("NewLength = %v, want two lines", got[0].NewLength)
	}
}

func TestApplyDiffInsertion(t *testing.T) {
	old := "a\nc\n"
	newContent := "a\nb\nc\n"
	buf := buffer.NewBufferFromString(old)

	diff := DiffContent(old, newContent)
	if err := ApplyDiff(buf, diff, newContent); err != nil {
		t.Fatalf("ApplyDiff: %v", err)
	}
	if buf.Text() != newContent {
		t.Errorf("buf.Text() = %q, want %q", buf.Text(), newContent)
	}
}

func TestApplyDiffDeletion(t *testing.T) {
	old := "a\nb\nc\n"
	newContent := "a\nc\n"
	buf := buffer.NewBufferFromString(old)

	diff := DiffContent(old, newContent)
	if err := ApplyDiff(buf, diff, newContent); err != nil {
		t.Fatalf("ApplyDiff: %v", err)
	}
	if buf.Text() != newContent {
		t.Errorf("buf.Text() = %q, want %q", buf.Text(), newContent)
	}
}

func TestApplyDiffMultipleHunks(t *testing.T) {
	old := "a\nb\nc\nd\ne\n"
	newContent := "X\nb\nc\nY\ne\n"
	buf := buffer.NewBufferFromString(old)

	diff := DiffContent(old, newContent)
	if err := ApplyDiff(buf, diff, newContent); err != nil {
		t.Fatalf("ApplyDiff: %v", err)
	}
	if buf.Text() != newContent {
		t.Errorf("buf.Text() = %q, want %q", buf.Text(), newContent)
	}
}

func TestApplyDiffNoChanges(t *testing.T) {
	content := "a\nb\nc\n"
	buf := buffer.NewBufferFromString(content)

	diff := DiffContent(content, content)
	if err := ApplyDiff(buf, diff, content); err != nil {
		t.Fatalf("ApplyDiff: %v", err)
	}
	if buf.Text() != content {
		t.Errorf("buf.Text() = %q, want unchanged %q", buf.Text(), content)
	}
}
