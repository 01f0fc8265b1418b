package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/cstyle/pkg/behaviour"
	"github.com/yaklabco/cstyle/pkg/behaviour/rules"
	"github.com/yaklabco/cstyle/pkg/heuristics"
	"github.com/yaklabco/cstyle/pkg/lexer"
)

func newChromaEngine() *behaviour.Engine {
	reg := behaviour.NewRegistry()
	rules.RegisterAll(reg)
	return behaviour.NewEngine(reg, nil, behaviour.Collaborators{
		Tokenizer:   lexer.NewChroma(0),
		Brackets:    heuristics.NewBrackets(),
		ClassBraces: heuristics.NewClassBraces(),
		Indenter:    heuristics.NewIndenter(),
	})
}

func TestQuotesWithChroma(t *testing.T) {
	t.Parallel()

	tests := []editCase{
		{name: "pairs in code", before: "x = <|>", inputs: []string{`"`}, after: `x = "<|>"`, wantID: "CB007"},
		{name: "line comment", before: "// don<|>", inputs: []string{`'`}, after: "// don'<|>"},
		{name: "single row block comment", before: "/* it<|>", inputs: []string{`'`}, after: "/* it'<|>"},
		{name: "block comment body", before: "/*\n * don<|>", inputs: []string{`'`}, after: "/*\n * don'<|>"},
		{name: "block comment continuation", before: "/* one\n   it<|>", inputs: []string{`"`},
			after: "/* one\n   it\"<|>"},
		{name: "code after comment closes", before: "/* one\n */ c = <|>", inputs: []string{`'`},
			after: "/* one\n */ c = '<|>'", wantID: "CB007"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, id := apply(t, newChromaEngine(), tt.before, tt.inputs...)
			assert.Equal(t, tt.after, got)
			assert.Equal(t, tt.wantID, id)
		})
	}
}
