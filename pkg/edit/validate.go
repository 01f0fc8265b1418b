package edit

import (
	"errors"
	"fmt"

	"github.com/yaklabco/cstyle/pkg/source"
)

// ValidationError describes a directive that cannot be applied safely.
type ValidationError struct {
	Directive Directive
	Message   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid directive %s: %s", e.Directive, e.Message)
}

// ValidateInsertion checks that d can answer an insertion over selection in
// doc. A Replace placement must land inside the text that results from
// applying it.
func ValidateInsertion(doc source.Document, selection source.Range, d Directive) error {
	switch d.Kind {
	case KindNone:
		return nil
	case KindAdjustRange:
		return &ValidationError{Directive: d, Message: "range adjustment cannot answer an insertion"}
	case KindReplace:
	default:
		return &ValidationError{Directive: d, Message: "unknown directive kind"}
	}

	selection = source.NewRange(selection.Start, selection.End)
	if !inDocument(doc, selection.Start) || !inDocument(doc, selection.End) {
		return &ValidationError{Directive: d, Message: "selection outside document"}
	}

	if d.Placement == nil {
		return nil
	}

	// Dry run on a scratch buffer; only the touched rows matter but the
	// whole document is small enough per event.
	buf := NewBuffer(doc.Lines(), selection)
	if err := buf.Insert("", d); err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			return verr
		}
		return &ValidationError{Directive: d, Message: err.Error()}
	}

	p := *d.Placement
	if p.EndRow < p.StartRow || (p.EndRow == p.StartRow && p.EndCol < p.StartCol) {
		return &ValidationError{Directive: d, Message: "placement end before start"}
	}

	return nil
}

// ValidateDeletion checks that d can answer a deletion of rng in doc. An
// adjusted range must either equal rng or stay on its row and inside the line.
func ValidateDeletion(doc source.Document, rng source.Range, d Directive) error {
	switch d.Kind {
	case KindNone:
		return nil
	case KindReplace:
		return &ValidationError{Directive: d, Message: "replacement cannot answer a deletion"}
	case KindAdjustRange:
	default:
		return &ValidationError{Directive: d, Message: "unknown directive kind"}
	}

	adj := d.Range
	if adj.End.Before(adj.Start) {
		return &ValidationError{Directive: d, Message: "range end before start"}
	}
	if !inDocument(doc, adj.Start) || !inDocument(doc, adj.End) {
		return &ValidationError{Directive: d, Message: "range outside document"}
	}
	if adj == rng {
		return nil
	}
	if adj.IsMultiLine() || adj.Start.Row != rng.Start.Row {
		return &ValidationError{Directive: d, Message: "range leaves the cursor row"}
	}

	return nil
}

func inDocument(doc source.Document, pos source.Position) bool {
	return pos.IsValid() && pos.Row < doc.LineCount() && pos.Column <= len(doc.Line(pos.Row))
}
