package rules

import "github.com/yaklabco/cstyle/pkg/behaviour"

// NewlineBehaviour picks the indentation for Enter: comment continuation,
// namespace bodies, fresh block comments and hanging bodies between a pair.
type NewlineBehaviour struct {
	behaviour.BaseBehaviour
}

// NewNewlineBehaviour creates the smart-newline behaviour.
func NewNewlineBehaviour() *NewlineBehaviour {
	return &NewlineBehaviour{
		BaseBehaviour: behaviour.NewBaseBehaviour(
			"CB002",
			"smart-newline",
			"Continue comments and open hanging bodies on Enter",
			[]string{"indent"},
			behaviour.ClassNewline,
			behaviour.ActionInsertion,
		),
	}
}

// Apply implements behaviour.Behaviour.
func (r *NewlineBehaviour) Apply(ctx *behaviour.Context) behaviour.Directive {
	if ctx.Text != "\n" {
		return behaviour.None()
	}

	row, col := ctx.Cursor.Row, ctx.Cursor.Column
	line := ctx.Line()

	// Macro bodies belong to the macro behaviour.
	if InMacro(ctx.Doc, row-1, ctx.Settings.MacroLookback) {
		return behaviour.None()
	}

	if behaviour.InComment(ctx.State) {
		line = ctx.LineUpToCursor()
		if star, ok := commentStarPrefix(line); ok {
			return behaviour.Replace("\n"+star, behaviour.CursorAt(1, len(star)))
		}
	}

	i := min(col, len(line)) - 1
	for i >= 0 && isSpaceByte(line[i]) {
		i--
	}
	thisChar := behaviour.CharAt(line, i)
	rightChar := behaviour.CharAt(line, col)

	if opensNamespace(line) {
		indent := ctx.Indent(line)
		return behaviour.Replace("\n"+indent+"\n"+indent, behaviour.CursorAt(1, len(indent)))
	}

	if opensBlockComment(line) {
		indent := ctx.Indent(line)
		body := indent + " * "
		return behaviour.Replace("\n"+body+"\n"+indent+" */", behaviour.CursorAt(1, len(body)))
	}

	if isHangingPair(thisChar, rightChar) {
		outer := ctx.Indent(line)
		inner := outer + ctx.TabString
		return behaviour.Replace("\n"+inner+"\n"+outer, behaviour.CursorAt(1, len(inner)))
	}

	return behaviour.None()
}

func isHangingPair(left, right string) bool {
	switch left + right {
	case "()", "[]", "{}":
		return true
	default:
		return false
	}
}

func isSpaceByte(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	default:
		return false
	}
}
