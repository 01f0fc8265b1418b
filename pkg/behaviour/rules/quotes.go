package rules

import (
	"strings"

	"github.com/yaklabco/cstyle/pkg/behaviour"
	"github.com/yaklabco/cstyle/pkg/source"
)

// QuoteBehaviour pairs, wraps and types over double and single quotes.
type QuoteBehaviour struct {
	behaviour.BaseBehaviour
}

// NewQuoteBehaviour creates the quote behaviour.
func NewQuoteBehaviour() *QuoteBehaviour {
	return &QuoteBehaviour{
		BaseBehaviour: behaviour.NewBaseBehaviour(
			"CB007",
			"quotes",
			"Pair and type over \" and ' outside strings and comments",
			[]string{"pairing", "strings"},
			behaviour.ClassStringDQuotes,
			behaviour.ActionInsertion, behaviour.ActionDeletion,
		),
	}
}

// Apply implements behaviour.Behaviour.
func (r *QuoteBehaviour) Apply(ctx *behaviour.Context) behaviour.Directive {
	if ctx.Action == behaviour.ActionDeletion {
		return quoteDeletion(ctx)
	}

	quote := ctx.Text
	if quote != `"` && quote != `'` {
		return behaviour.None()
	}

	if selected := ctx.Selected(); selected != "" {
		return behaviour.Replace(quote+selected+quote, nil)
	}

	if ctx.CharLeft() == `\` {
		return behaviour.None()
	}

	tok, col, quotePos := tokenUnderCursor(ctx.Tokens(), ctx.Selection.Start.Column, quote)

	if tok == nil || (quotePos < 0 && tok.Type != source.TokenComment &&
		(tok.Type != source.TokenString || closesCleanly(tok, col, ctx.Selection.Start.Column, quote))) {
		return behaviour.Replace(quote+quote, behaviour.CursorAt(0, 1))
	}

	if tok.Type == source.TokenString && ctx.CharRight() == quote {
		return behaviour.SkipOver()
	}

	return behaviour.None()
}

// tokenUnderCursor walks tokens left to right. It stops at the first token
// that reaches past column; when none does it returns the last token and col
// is the full line width. quotePos is the index of quote in the latest
// non-string token, reset whenever a string token is crossed.
func tokenUnderCursor(tokens []source.Token, column int, quote string) (*source.Token, int, int) {
	var tok *source.Token
	col := 0
	quotePos := -1

	for i := range tokens {
		tok = &tokens[i]
		if tok.Type == source.TokenString {
			quotePos = -1
		} else if quotePos < 0 {
			quotePos = strings.Index(tok.Value, quote)
		}
		if tok.Len()+col > column {
			break
		}
		col += tok.Len()
	}

	return tok, col, quotePos
}

// closesCleanly reports a string token that the cursor is not sitting on the
// last column of, and whose final character is the quote.
func closesCleanly(tok *source.Token, col, column int, quote string) bool {
	return column != tok.Len()+col-1 && strings.LastIndex(tok.Value, quote) == tok.Len()-1
}

func quoteDeletion(ctx *behaviour.Context) behaviour.Directive {
	rng := ctx.Range
	deleted := ctx.Deleted()
	if rng.IsMultiLine() || (deleted != `"` && deleted != `'`) {
		return behaviour.None()
	}

	line := ctx.Doc.Line(rng.Start.Row)
	if behaviour.CharAt(line, rng.Start.Column+1) != `"` {
		return behaviour.None()
	}

	rng.End.Column++
	return behaviour.AdjustRange(rng)
}
