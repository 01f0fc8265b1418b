package source

import "fmt"

// Position is a zero-based row and column in a document.
// Column counts bytes, not runes.
type Position struct {
	Row    int
	Column int
}

// String returns a human-readable "row:col" form.
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Row, p.Column)
}

// IsValid returns true if both coordinates are non-negative.
func (p Position) IsValid() bool {
	return p.Row >= 0 && p.Column >= 0
}

// Before reports whether p sorts strictly before other.
func (p Position) Before(other Position) bool {
	if p.Row != other.Row {
		return p.Row < other.Row
	}
	return p.Column < other.Column
}

// Range is a span between two positions. Start is inclusive, End is exclusive.
type Range struct {
	Start Position
	End   Position
}

// NewRange creates a Range, swapping the ends if they are reversed.
func NewRange(start, end Position) Range {
	if end.Before(start) {
		start, end = end, start
	}
	return Range{Start: start, End: end}
}

// PointRange returns an empty range at pos.
func PointRange(pos Position) Range {
	return Range{Start: pos, End: pos}
}

// String returns a human-readable representation of the range.
func (r Range) String() string {
	return fmt.Sprintf("[%s-%s)", r.Start, r.End)
}

// IsEmpty returns true if the range has zero length.
func (r Range) IsEmpty() bool {
	return r.Start == r.End
}

// IsMultiLine returns true if the range spans more than one row.
func (r Range) IsMultiLine() bool {
	return r.Start.Row != r.End.Row
}

// Contains returns true if pos lies within [Start, End).
func (r Range) Contains(pos Position) bool {
	return !pos.Before(r.Start) && pos.Before(r.End)
}
