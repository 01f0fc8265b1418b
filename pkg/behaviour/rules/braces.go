package rules

import (
	"strings"

	"github.com/yaklabco/cstyle/pkg/behaviour"
)

// BraceBehaviour decides what closes a typed {, types over a matched }, and
// deletes fresh {} and {}; pairs.
type BraceBehaviour struct {
	behaviour.BaseBehaviour
}

// NewBraceBehaviour creates the brace behaviour.
func NewBraceBehaviour() *BraceBehaviour {
	return &BraceBehaviour{
		BaseBehaviour: behaviour.NewBaseBehaviour(
			"CB003",
			"braces",
			"Close { with }, }; or a namespace comment depending on context",
			[]string{"pairing"},
			behaviour.ClassBraces,
			behaviour.ActionInsertion, behaviour.ActionDeletion,
		),
	}
}

// Apply implements behaviour.Behaviour.
func (r *BraceBehaviour) Apply(ctx *behaviour.Context) behaviour.Directive {
	if ctx.Action == behaviour.ActionDeletion {
		return braceDeletion(ctx)
	}

	switch ctx.Text {
	case "{":
		return braceOpen(ctx)
	case "}":
		if ctx.Selection.IsEmpty() && ctx.CharRight() == "}" && hasMatchBehind(ctx, "}") {
			return behaviour.SkipOver()
		}
	}
	return behaviour.None()
}

// braceOpen runs the closing ladder. The first matching rung wins and the
// cursor always lands right after the {.
func braceOpen(ctx *behaviour.Context) behaviour.Directive {
	if !ctx.Selection.IsEmpty() {
		if ctx.Selection.IsMultiLine() {
			return behaviour.None()
		}
		return behaviour.Replace("{"+ctx.Selected()+"}", nil)
	}

	return behaviour.Replace(braceClosing(ctx), behaviour.CursorAt(0, 1))
}

func braceClosing(ctx *behaviour.Context) string {
	trimmed := ctx.LineUpToCursor()
	line := stripLineComment(ctx.Line())

	if name, ok := namespaceName(trimmed); ok {
		return "{} // end namespace " + name
	}
	if isAnonymousNamespace(trimmed) {
		return "{} // end anonymous namespace"
	}
	if endsWithAssignment(line) {
		return "{};"
	}
	if strings.Contains(line[:min(ctx.Cursor.Column, len(line))], ")") {
		return "{}"
	}
	if hasDefineName(line) {
		return "{}"
	}
	if looksLikeInitializer(line) {
		return "{};"
	}
	if ctx.ClassBraces != nil {
		_, found := ctx.ClassBraces.FindClassStyleOpenBraceRow(
			ctx.Doc, ctx.Cursor.Row-1, ctx.Settings.ClassBraceLookback)
		if found {
			return "{};"
		}
	}
	return "{}"
}

func braceDeletion(ctx *behaviour.Context) behaviour.Directive {
	rng := ctx.Range
	if rng.IsMultiLine() || ctx.Deleted() != "{" {
		return behaviour.None()
	}

	line := ctx.Doc.Line(rng.Start.Row)
	if behaviour.CharAt(line, rng.End.Column) != "}" {
		return behaviour.None()
	}

	semicolon := behaviour.CharAt(line, rng.End.Column+1) == ";"
	rng.End.Column++
	if semicolon {
		rng.End.Column++
	}
	return behaviour.AdjustRange(rng)
}
