package source_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/cstyle/pkg/source"
)

func TestRange_IsMultiLine(t *testing.T) {
	t.Parallel()

	single := source.Range{Start: source.Position{Row: 1, Column: 0}, End: source.Position{Row: 1, Column: 4}}
	multi := source.Range{Start: source.Position{Row: 1, Column: 4}, End: source.Position{Row: 2, Column: 0}}

	assert.False(t, single.IsMultiLine())
	assert.True(t, multi.IsMultiLine())
	assert.False(t, single.IsEmpty())
	assert.True(t, source.PointRange(source.Position{Row: 3, Column: 3}).IsEmpty())
}

func TestNewRange_Normalizes(t *testing.T) {
	t.Parallel()

	a := source.Position{Row: 2, Column: 5}
	b := source.Position{Row: 1, Column: 9}

	r := source.NewRange(a, b)
	assert.Equal(t, b, r.Start)
	assert.Equal(t, a, r.End)
	assert.True(t, r.Contains(source.Position{Row: 1, Column: 12}))
	assert.False(t, r.Contains(a))
}

func TestTokenAt(t *testing.T) {
	t.Parallel()

	tokens := []source.Token{
		{Type: source.TokenText, Value: "f("},
		{Type: source.TokenString, Value: `"ab"`},
		{Type: source.TokenText, Value: ")"},
	}

	idx, start := source.TokenAt(tokens, 0)
	assert.Equal(t, 0, idx)
	assert.Equal(t, 0, start)

	idx, start = source.TokenAt(tokens, 4)
	assert.Equal(t, 1, idx)
	assert.Equal(t, 2, start)

	idx, _ = source.TokenAt(tokens, 7)
	assert.Equal(t, -1, idx)

	assert.True(t, source.ValidateTokens(tokens, `f("ab")`))
	assert.False(t, source.ValidateTokens(tokens, `f("ab"`))
	assert.True(t, source.ValidateTokens(nil, ""))
}
