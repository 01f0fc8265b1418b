package rules

import (
	"strings"

	"github.com/yaklabco/cstyle/pkg/behaviour"
)

// MacroBehaviour keeps multi-line #define bodies tidy: typing \ on a #define
// line starts a continuation, and inside a macro Enter pushes an aligned
// backslash out to the configured column.
//
// Whether a row is inside a macro is recomputed from the buffer every time
// (see InMacro); nothing is remembered between keystrokes.
type MacroBehaviour struct {
	behaviour.BaseBehaviour
}

// NewMacroBehaviour creates the macro continuation behaviour.
func NewMacroBehaviour() *MacroBehaviour {
	return &MacroBehaviour{
		BaseBehaviour: behaviour.NewBaseBehaviour(
			"CB010",
			"macro",
			"Align continuation backslashes in multi-line macros",
			[]string{"preprocessor", "indent"},
			behaviour.ClassMacro,
			behaviour.ActionInsertion,
		),
	}
}

// Apply implements behaviour.Behaviour.
func (r *MacroBehaviour) Apply(ctx *behaviour.Context) behaviour.Directive {
	if ctx.Text != `\` && ctx.Text != "\n" {
		return behaviour.None()
	}

	row := ctx.Cursor.Row
	line := ctx.Line()
	upToCursor := ctx.LineUpToCursor()
	pad := padding(ctx.Settings.BackslashColumn, len(upToCursor))

	if opensMacro(line) && ctx.Text == `\` {
		return behaviour.Replace(pad+"\\\n"+ctx.TabString, nil)
	}

	if !isDefine(line) && !InMacro(ctx.Doc, row-1, ctx.Settings.MacroLookback) {
		return behaviour.None()
	}

	if ctx.Text == `\` {
		if isBlank(line[len(upToCursor):]) {
			return behaviour.Replace(pad+`\`, nil)
		}
		return behaviour.None()
	}

	// Enter on a blank line leaves the macro.
	if isBlank(line) {
		return behaviour.Replace("\n", nil)
	}

	// A closing backslash already sits right of the cursor: move down.
	if endsWithBackslash(line) && !endsWithBackslash(upToCursor) {
		next := row + 1
		if next >= ctx.Doc.LineCount() {
			return behaviour.None()
		}
		col := min(ctx.Cursor.Column, len(ctx.Doc.Line(next)))
		return behaviour.Replace("", behaviour.CursorAt(1, col))
	}

	nextIndent := nextLineIndent(ctx, line+`\`, row)
	// The backslash is already typed and padded; no second padding run is
	// inserted in front of the newline.
	if endsWithBackslash(upToCursor) {
		return behaviour.Replace("\n"+nextIndent, nil)
	}
	return behaviour.Replace(pad+"\\\n"+nextIndent, nil)
}

// padding returns the spaces that push a backslash typed after width bytes
// out to column. Lines already past the column get none.
func padding(column, width int) string {
	n := column - width + 1
	if n < 0 {
		return ""
	}
	return strings.Repeat(" ", n)
}

func nextLineIndent(ctx *behaviour.Context, line string, row int) string {
	if ctx.Indenter == nil {
		return ctx.Indent(line)
	}
	return ctx.Indenter.NextLineIndent(ctx.State, line, ctx.TabString, ctx.TabSize, row)
}
