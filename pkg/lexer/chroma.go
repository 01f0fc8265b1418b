// Package lexer provides the default behaviour.Tokenizer, built on chroma's
// C++ lexer, and a memoising decorator for it.
package lexer

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"

	"github.com/yaklabco/cstyle/pkg/behaviour"
	"github.com/yaklabco/cstyle/pkg/config"
	"github.com/yaklabco/cstyle/pkg/source"
)

// Chroma tokenizes C and C++ lines with chroma and maps its token types onto
// the small vocabulary the behaviours read.
type Chroma struct {
	lexer         chroma.Lexer
	stateLookback int
}

// NewChroma creates a tokenizer backed by chroma's C++ lexer. stateLookback
// caps the rows State reads; zero or less uses the default.
func NewChroma(stateLookback int) *Chroma {
	if stateLookback <= 0 {
		stateLookback = config.DefaultStateLookback
	}
	lex := lexers.Get("c++")
	if lex == nil {
		lex = lexers.Fallback
	}
	return &Chroma{
		lexer:         chroma.Coalesce(lex),
		stateLookback: stateLookback,
	}
}

// Tokenize implements behaviour.Tokenizer. Adjacent tokens of the same type
// are merged and the values always concatenate back to line.
func (c *Chroma) Tokenize(line string) []source.Token {
	if line == "" {
		return nil
	}

	raw, ok := c.tokenise(line)
	if !ok {
		return []source.Token{{Type: source.TokenText, Value: line}}
	}

	var tokens []source.Token
	remaining := len(line)
	for _, tok := range raw {
		if remaining == 0 {
			break
		}
		value := tok.Value
		if len(value) > remaining {
			// chroma appends a newline to its input.
			value = value[:remaining]
		}
		remaining -= len(value)
		tokens = appendMerged(tokens, source.Token{Type: mapType(tok.Type), Value: value})
	}

	if !source.ValidateTokens(tokens, line) {
		return []source.Token{{Type: source.TokenText, Value: line}}
	}
	return tokens
}

// State implements behaviour.Tokenizer. It tokenizes a bounded window of rows
// ending at row and reports whether the window ends inside an unterminated
// block comment.
func (c *Chroma) State(doc source.Document, row int) string {
	if row < 0 || row >= doc.LineCount() {
		return behaviour.StateStart
	}

	first := max(0, row-c.stateLookback+1)
	window := strings.Join(doc.Lines()[first:row+1], "\n")

	raw, ok := c.tokenise(window)
	if !ok {
		return behaviour.StateStart
	}

	// Blank out strings and closed comments; an opener left over starts a
	// comment that runs past the end of the window.
	var code strings.Builder
	code.Grow(len(window) + 1)
	for _, tok := range raw {
		typ := mapType(tok.Type)
		if typ == source.TokenString || (typ == source.TokenComment && !unclosedBlock(tok.Value)) {
			code.WriteString(strings.Repeat(" ", len(tok.Value)))
			continue
		}
		code.WriteString(tok.Value)
	}

	text := code.String()
	open := strings.Index(text, "/*")
	if open < 0 {
		return behaviour.StateStart
	}
	if strings.HasPrefix(text[open:], "/**") {
		return behaviour.StateDocStart
	}
	return behaviour.StateComment
}

// unclosedBlock reports a block comment token that runs to end of input.
func unclosedBlock(value string) bool {
	if !strings.HasPrefix(value, "/*") {
		return false
	}
	body := strings.TrimRight(value, "\n")
	return len(body) < 4 || !strings.HasSuffix(body, "*/")
}

func (c *Chroma) tokenise(text string) ([]chroma.Token, bool) {
	it, err := c.lexer.Tokenise(nil, text)
	if err != nil {
		return nil, false
	}
	return it.Tokens(), true
}

// mapType collapses chroma's token hierarchy onto source token types.
func mapType(tt chroma.TokenType) string {
	switch {
	case tt.InSubCategory(chroma.CommentPreproc):
		return source.TokenPreprocessor
	case tt.InCategory(chroma.Comment):
		return source.TokenComment
	case tt.InSubCategory(chroma.LiteralString):
		return source.TokenString
	case tt.InCategory(chroma.Keyword):
		return source.TokenKeyword
	case tt.InCategory(chroma.Punctuation), tt.InCategory(chroma.Operator):
		return source.TokenPunctuation
	default:
		return source.TokenText
	}
}

func appendMerged(tokens []source.Token, tok source.Token) []source.Token {
	if tok.Value == "" {
		return tokens
	}
	if n := len(tokens); n > 0 && tokens[n-1].Type == tok.Type {
		tokens[n-1].Value += tok.Value
		return tokens
	}
	return append(tokens, tok)
}
