package rules

import (
	"github.com/yaklabco/cstyle/pkg/behaviour"
	"github.com/yaklabco/cstyle/pkg/heuristics"
)

// PairBehaviour auto-pairs one bracket kind: it wraps selections, inserts the
// closing partner, types over a closing bracket that already has its match,
// and deletes both halves of a fresh pair.
type PairBehaviour struct {
	behaviour.BaseBehaviour
	open string
	// gate restricts insertion pairing to matching lines; nil allows all.
	gate func(line string) bool
}

// NewArrowsBehaviour creates the angle-bracket behaviour. Pairing only happens
// on template lines; deletion of a fresh pair works everywhere.
func NewArrowsBehaviour() *PairBehaviour {
	return &PairBehaviour{
		BaseBehaviour: behaviour.NewBaseBehaviour(
			"CB004",
			"arrows",
			"Pair < with > on template lines",
			[]string{"pairing"},
			behaviour.ClassArrows,
			behaviour.ActionInsertion, behaviour.ActionDeletion,
		),
		open: "<",
		gate: isTemplateLine,
	}
}

// NewParensBehaviour creates the parenthesis behaviour.
func NewParensBehaviour() *PairBehaviour {
	return &PairBehaviour{
		BaseBehaviour: behaviour.NewBaseBehaviour(
			"CB005",
			"parens",
			"Pair ( with )",
			[]string{"pairing"},
			behaviour.ClassParens,
			behaviour.ActionInsertion, behaviour.ActionDeletion,
		),
		open: "(",
	}
}

// NewBracketsBehaviour creates the square-bracket behaviour.
func NewBracketsBehaviour() *PairBehaviour {
	return &PairBehaviour{
		BaseBehaviour: behaviour.NewBaseBehaviour(
			"CB006",
			"brackets",
			"Pair [ with ]",
			[]string{"pairing"},
			behaviour.ClassBrackets,
			behaviour.ActionInsertion, behaviour.ActionDeletion,
		),
		open: "[",
	}
}

// Apply implements behaviour.Behaviour.
func (r *PairBehaviour) Apply(ctx *behaviour.Context) behaviour.Directive {
	if ctx.Action == behaviour.ActionDeletion {
		return pairDeletion(r.open, ctx)
	}
	if r.gate != nil && !r.gate(ctx.Line()) {
		return behaviour.None()
	}
	return pairInsertion(r.open, ctx)
}

// closerOf returns the closing partner of a single-byte opening bracket.
func closerOf(open string) string {
	c, ok := heuristics.Complement(rune(open[0]))
	if !ok {
		return ""
	}
	return string(c)
}

// pairInsertion is the shared insertion half of every pairing behaviour.
func pairInsertion(open string, ctx *behaviour.Context) behaviour.Directive {
	closing := closerOf(open)

	switch ctx.Text {
	case open:
		if !ctx.Selection.IsEmpty() {
			if ctx.Selection.IsMultiLine() {
				return behaviour.None()
			}
			return behaviour.Replace(open+ctx.Selected()+closing, nil)
		}
		return behaviour.Replace(open+closing, behaviour.CursorAt(0, 1))

	case closing:
		if !ctx.Selection.IsEmpty() || ctx.CharRight() != closing {
			return behaviour.None()
		}
		if hasMatchBehind(ctx, closing) {
			return behaviour.SkipOver()
		}
	}

	return behaviour.None()
}

// hasMatchBehind runs the bounded backward search for the opener of the
// closing bracket right of the cursor.
func hasMatchBehind(ctx *behaviour.Context, closing string) bool {
	if ctx.Brackets == nil {
		return false
	}
	_, found := ctx.Brackets.FindMatchingBracket(
		rune(closing[0]),
		ctx.Lines(),
		ctx.Cursor,
		ctx.Settings.BracketLookback,
		behaviour.Backward,
	)
	return found
}

// pairDeletion extends the deletion of a lone opener over its adjacent closer.
func pairDeletion(open string, ctx *behaviour.Context) behaviour.Directive {
	rng := ctx.Range
	if rng.IsMultiLine() || ctx.Deleted() != open {
		return behaviour.None()
	}

	line := ctx.Doc.Line(rng.Start.Row)
	if behaviour.CharAt(line, rng.Start.Column+1) != closerOf(open) {
		return behaviour.None()
	}

	rng.End.Column++
	return behaviour.AdjustRange(rng)
}
