package rules_test

import (
	"context"
	"strings"

	"github.com/stretchr/testify/require"

	"github.com/yaklabco/cstyle/pkg/behaviour"
	"github.com/yaklabco/cstyle/pkg/behaviour/rules"
	"github.com/yaklabco/cstyle/pkg/config"
	"github.com/yaklabco/cstyle/pkg/edit"
	"github.com/yaklabco/cstyle/pkg/heuristics"
	"github.com/yaklabco/cstyle/pkg/source"
)

// backspace is the input that stands for a deletion in apply.
const backspace = "\b"

// testingT is satisfied by both *testing.T and *rapid.T.
type testingT interface {
	require.TestingT
	Helper()
}

// simpleTokenizer splits a line into quoted strings, a // comment tail and
// plain text. Block comments are only tracked by State.
type simpleTokenizer struct{}

func (simpleTokenizer) Tokenize(line string) []source.Token {
	var tokens []source.Token
	add := func(typ, value string) {
		if value == "" {
			return
		}
		if n := len(tokens); n > 0 && tokens[n-1].Type == typ {
			tokens[n-1].Value += value
			return
		}
		tokens = append(tokens, source.Token{Type: typ, Value: value})
	}

	start := 0
	for i := 0; i < len(line); i++ {
		switch c := line[i]; {
		case c == '/' && i+1 < len(line) && line[i+1] == '/':
			add(source.TokenText, line[start:i])
			add(source.TokenComment, line[i:])
			return tokens
		case c == '"' || c == '\'':
			add(source.TokenText, line[start:i])
			j := i + 1
			for j < len(line) && line[j] != c {
				if line[j] == '\\' {
					j++
				}
				j++
			}
			end := min(j+1, len(line))
			add(source.TokenString, line[i:end])
			i = end - 1
			start = end
		}
	}
	add(source.TokenText, line[start:])
	return tokens
}

func (simpleTokenizer) State(doc source.Document, row int) string {
	state := behaviour.StateStart
	for r := 0; r <= row && r < doc.LineCount(); r++ {
		line := doc.Line(r)
		for i := 0; i+1 < len(line); i++ {
			switch {
			case state == behaviour.StateStart && line[i:i+2] == "/*":
				state = behaviour.StateComment
				if strings.HasPrefix(line[i:], "/**") {
					state = behaviour.StateDocStart
				}
				i++
			case state != behaviour.StateStart && line[i:i+2] == "*/":
				state = behaviour.StateStart
				i++
			}
		}
	}
	return state
}

func newEngine(cfg *config.Config) *behaviour.Engine {
	reg := behaviour.NewRegistry()
	rules.RegisterAll(reg)
	return behaviour.NewEngine(reg, cfg, behaviour.Collaborators{
		Tokenizer:   simpleTokenizer{},
		Brackets:    heuristics.NewBrackets(),
		ClassBraces: heuristics.NewClassBraces(),
		Indenter:    heuristics.NewIndenter(),
	})
}

// parseMarked splits a buffer containing <|> or <[ ... ]> into lines and a
// selection.
func parseMarked(t testingT, text string) ([]string, source.Range) {
	t.Helper()

	var sel source.Range
	found := false
	for _, marker := range []string{"<|>", "<[", "]>"} {
		idx := strings.Index(text, marker)
		if idx < 0 {
			continue
		}
		before := text[:idx]
		pos := source.Position{
			Row:    strings.Count(before, "\n"),
			Column: len(before) - strings.LastIndex(before, "\n") - 1,
		}
		text = text[:idx] + text[idx+len(marker):]
		switch marker {
		case "<|>":
			sel = source.PointRange(pos)
		case "<[":
			sel.Start = pos
		case "]>":
			sel.End = pos
		}
		found = true
	}
	require.True(t, found, "buffer %q has no cursor marker", text)
	return strings.Split(text, "\n"), sel
}

func renderMarked(buf *edit.Buffer) string {
	lines := append([]string(nil), buf.Lines...)
	insertAt := func(pos source.Position, marker string) {
		line := lines[pos.Row]
		lines[pos.Row] = line[:pos.Column] + marker + line[pos.Column:]
	}
	if buf.Selection.IsEmpty() {
		insertAt(buf.Selection.Start, "<|>")
	} else {
		insertAt(buf.Selection.End, "]>")
		insertAt(buf.Selection.Start, "<[")
	}
	return strings.Join(lines, "\n")
}

// apply replays inputs through Transform and returns the marked buffer and
// the ID of the behaviour that answered the last input.
func apply(t testingT, eng *behaviour.Engine, marked string, inputs ...string) (string, string) {
	t.Helper()

	lines, sel := parseMarked(t, marked)
	buf := edit.NewBuffer(lines, sel)

	var lastID string
	for _, input := range inputs {
		doc := buf.Snapshot("test.cpp")
		if input == backspace {
			rng, ok := buf.BackspaceRange()
			if !ok {
				lastID = ""
				continue
			}
			res := eng.Transform(context.Background(), eng.Deletion(doc, buf.Cursor(), rng))
			require.NoError(t, buf.Delete(rng, res.Directive))
			lastID = res.BehaviourID
			continue
		}

		res := eng.Transform(context.Background(), eng.Insertion(doc, buf.Selection, input))
		require.NoError(t, buf.Insert(input, res.Directive))
		lastID = res.BehaviourID
	}

	return renderMarked(buf), lastID
}
