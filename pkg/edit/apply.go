package edit

import (
	"fmt"
	"strings"

	"github.com/yaklabco/cstyle/pkg/source"
)

// Buffer is a mutable line buffer with a selection. It plays the part of the
// host editor when replaying keystrokes outside an editor.
type Buffer struct {
	// Lines holds the buffer content, one entry per row, without terminators.
	Lines []string

	// Selection is the current selection. An empty selection is a cursor.
	Selection source.Range
}

// NewBuffer creates a Buffer from lines and a selection.
// The lines are copied; an empty slice becomes a single empty row.
func NewBuffer(lines []string, selection source.Range) *Buffer {
	copied := make([]string, len(lines))
	copy(copied, lines)
	if len(copied) == 0 {
		copied = []string{""}
	}
	return &Buffer{
		Lines:     copied,
		Selection: source.NewRange(selection.Start, selection.End),
	}
}

// Cursor returns the cursor position (the lead of the selection).
func (b *Buffer) Cursor() source.Position {
	return b.Selection.End
}

// Text returns the buffer content joined by newlines.
func (b *Buffer) Text() string {
	return strings.Join(b.Lines, "\n")
}

// Snapshot returns an immutable snapshot of the current content.
func (b *Buffer) Snapshot(path string) *source.Snapshot {
	return source.FromLines(path, b.Lines)
}

// Insert applies an insertion of text, honouring d when it overrides the
// default. The selection is replaced either way.
func (b *Buffer) Insert(text string, d Directive) error {
	switch d.Kind {
	case KindNone:
		end, err := b.replace(b.Selection, text)
		if err != nil {
			return err
		}
		b.Selection = source.PointRange(end)
		return nil

	case KindReplace:
		base := b.Selection.Start
		end, err := b.replace(b.Selection, d.Text)
		if err != nil {
			return err
		}
		if d.Placement == nil {
			b.Selection = source.PointRange(end)
			return nil
		}
		sel := d.Placement.Resolve(base)
		if !b.inBounds(sel.Start) || !b.inBounds(sel.End) {
			return &ValidationError{Directive: d, Message: "placement outside buffer"}
		}
		b.Selection = sel
		return nil

	default:
		return &ValidationError{Directive: d, Message: "range adjustment cannot answer an insertion"}
	}
}

// Delete applies a deletion of rng, honouring d when it overrides the default.
func (b *Buffer) Delete(rng source.Range, d Directive) error {
	switch d.Kind {
	case KindNone:
	case KindAdjustRange:
		rng = d.Range
	default:
		return &ValidationError{Directive: d, Message: "replacement cannot answer a deletion"}
	}

	end, err := b.replace(source.NewRange(rng.Start, rng.End), "")
	if err != nil {
		return err
	}
	b.Selection = source.PointRange(end)
	return nil
}

// BackspaceRange returns the range a backspace removes: the selection when it
// is not empty, otherwise the character before the cursor (joining with the
// previous row at column 0). It returns false at the start of the buffer.
func (b *Buffer) BackspaceRange() (source.Range, bool) {
	if !b.Selection.IsEmpty() {
		return b.Selection, true
	}

	cur := b.Selection.Start
	switch {
	case cur.Column > 0:
		return source.Range{
			Start: source.Position{Row: cur.Row, Column: cur.Column - 1},
			End:   cur,
		}, true
	case cur.Row > 0:
		prev := b.Lines[cur.Row-1]
		return source.Range{
			Start: source.Position{Row: cur.Row - 1, Column: len(prev)},
			End:   cur,
		}, true
	default:
		return source.Range{}, false
	}
}

// replace swaps the text in rng for text and returns the position just after
// the inserted text.
func (b *Buffer) replace(rng source.Range, text string) (source.Position, error) {
	if !b.inBounds(rng.Start) || !b.inBounds(rng.End) {
		return source.Position{}, fmt.Errorf("range %s outside buffer of %d rows", rng, len(b.Lines))
	}

	head := b.Lines[rng.Start.Row][:rng.Start.Column]
	tail := b.Lines[rng.End.Row][rng.End.Column:]

	inserted := strings.Split(text, "\n")
	last := len(inserted) - 1
	end := source.Position{Row: rng.Start.Row + last, Column: len(inserted[last])}
	if last == 0 {
		end.Column += len(head)
	}

	inserted[0] = head + inserted[0]
	inserted[last] += tail

	lines := make([]string, 0, len(b.Lines)-(rng.End.Row-rng.Start.Row)+last)
	lines = append(lines, b.Lines[:rng.Start.Row]...)
	lines = append(lines, inserted...)
	lines = append(lines, b.Lines[rng.End.Row+1:]...)
	b.Lines = lines

	return end, nil
}

func (b *Buffer) inBounds(pos source.Position) bool {
	return pos.IsValid() && pos.Row < len(b.Lines) && pos.Column <= len(b.Lines[pos.Row])
}
