package scenario_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/cstyle/pkg/scenario"
	"github.com/yaklabco/cstyle/pkg/source"
)

func pos(row, col int) source.Position {
	return source.Position{Row: row, Column: col}
}

func TestParseMarked(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		text      string
		wantLines []string
		wantSel   source.Range
	}{
		{
			name:      "cursor",
			text:      "foo(<|>)",
			wantLines: []string{"foo()"},
			wantSel:   source.PointRange(pos(0, 4)),
		},
		{
			name:      "cursor on later row",
			text:      "a\n  b<|>",
			wantLines: []string{"a", "  b"},
			wantSel:   source.PointRange(pos(1, 3)),
		},
		{
			name:      "single-line selection",
			text:      "int <[value]>;",
			wantLines: []string{"int value;"},
			wantSel:   source.Range{Start: pos(0, 4), End: pos(0, 9)},
		},
		{
			name:      "multi-line selection",
			text:      "a<[b\nc]>d",
			wantLines: []string{"ab", "cd"},
			wantSel:   source.Range{Start: pos(0, 1), End: pos(1, 1)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			lines, sel, err := scenario.ParseMarked(tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.wantLines, lines)
			assert.Equal(t, tt.wantSel, sel)
			assert.Equal(t, tt.text, scenario.Render(lines, sel))
		})
	}
}

func TestParseMarkedErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
	}{
		{name: "no marker", text: "foo"},
		{name: "two cursors", text: "<|>a<|>"},
		{name: "cursor and selection", text: "<|><[a]>"},
		{name: "unclosed selection", text: "<[abc"},
		{name: "reversed selection", text: "a]>b<[c"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, _, err := scenario.ParseMarked(tt.text)
			require.Error(t, err)
		})
	}

	_, _, err := scenario.ParseMarked("plain")
	require.ErrorIs(t, err, scenario.ErrNoCursor)
}
