package behaviour

import (
	"github.com/yaklabco/cstyle/pkg/edit"
	"github.com/yaklabco/cstyle/pkg/source"
)

// None returns the no-override directive.
func None() Directive {
	return edit.None()
}

// Replace returns a directive substituting text for the insertion.
func Replace(text string, placement *Placement) Directive {
	return edit.Replace(text, placement)
}

// AdjustRange returns a directive substituting rng for the deleted range.
func AdjustRange(rng source.Range) Directive {
	return edit.AdjustRange(rng)
}

// CursorAt returns a collapsed placement at a row offset and column.
func CursorAt(rowOffset, col int) *Placement {
	return edit.CursorAt(rowOffset, col)
}

// SkipOver returns the directive that swallows the keystroke and moves the
// cursor one column right.
func SkipOver() Directive {
	return edit.Replace("", edit.CursorAt(0, 1))
}

// Result is what the engine returns for one event.
type Result struct {
	// Directive is the accepted directive (None when nothing fired).
	Directive Directive

	// BehaviourID names the behaviour that produced Directive.
	BehaviourID string
}

// Fired reports whether a behaviour overrode the default action.
func (r Result) Fired() bool {
	return !r.Directive.IsNone()
}
