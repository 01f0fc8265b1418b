// Package edit provides the directive types behaviours return, and the logic
// that validates them and applies them to a line buffer.
package edit

import (
	"fmt"
	"strconv"

	"github.com/yaklabco/cstyle/pkg/source"
)

// Kind discriminates the three directive shapes.
type Kind int

const (
	// KindNone leaves the editor's default action in place.
	KindNone Kind = iota

	// KindReplace substitutes the inserted text.
	KindReplace

	// KindAdjustRange substitutes the range a deletion removes.
	KindAdjustRange
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindReplace:
		return "replace"
	case KindAdjustRange:
		return "adjust-range"
	default:
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Placement is the selection to set after a Replace is applied.
//
// Rows are offsets from the insertion row. On row offset 0 a column is an
// offset from the insertion column; on any later row it is an absolute column.
type Placement struct {
	StartRow int
	StartCol int
	EndRow   int
	EndCol   int
}

// Resolve converts the placement into an absolute range given the insertion point.
func (p Placement) Resolve(base source.Position) source.Range {
	return source.Range{
		Start: resolvePoint(base, p.StartRow, p.StartCol),
		End:   resolvePoint(base, p.EndRow, p.EndCol),
	}
}

func resolvePoint(base source.Position, rowOffset, col int) source.Position {
	if rowOffset == 0 {
		return source.Position{Row: base.Row, Column: base.Column + col}
	}
	return source.Position{Row: base.Row + rowOffset, Column: col}
}

// Directive is the outcome of one behaviour invocation.
type Directive struct {
	// Kind selects which of the remaining fields are meaningful.
	Kind Kind

	// Text replaces the inserted text (KindReplace).
	Text string

	// Placement is the selection after applying Text. Nil leaves the cursor
	// after the inserted text (KindReplace).
	Placement *Placement

	// Range is the range to delete instead (KindAdjustRange).
	Range source.Range
}

// None returns the no-override directive.
func None() Directive {
	return Directive{Kind: KindNone}
}

// Replace returns a directive substituting text for the insertion.
func Replace(text string, placement *Placement) Directive {
	return Directive{Kind: KindReplace, Text: text, Placement: placement}
}

// AdjustRange returns a directive substituting rng for the deleted range.
func AdjustRange(rng source.Range) Directive {
	return Directive{Kind: KindAdjustRange, Range: rng}
}

// CursorAt returns a collapsed placement.
func CursorAt(rowOffset, col int) *Placement {
	return &Placement{StartRow: rowOffset, StartCol: col, EndRow: rowOffset, EndCol: col}
}

// IsNone reports whether the directive leaves the default action alone.
func (d Directive) IsNone() bool {
	return d.Kind == KindNone
}

// String returns a compact human-readable form.
func (d Directive) String() string {
	switch d.Kind {
	case KindReplace:
		if d.Placement == nil {
			return fmt.Sprintf("replace %q", d.Text)
		}
		p := d.Placement
		return fmt.Sprintf("replace %q select [%d,%d]-[%d,%d]",
			d.Text, p.StartRow, p.StartCol, p.EndRow, p.EndCol)
	case KindAdjustRange:
		return "adjust-range " + d.Range.String()
	default:
		return d.Kind.String()
	}
}
