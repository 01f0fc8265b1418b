package edit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/cstyle/pkg/edit"
	"github.com/yaklabco/cstyle/pkg/source"
)

func pos(row, col int) source.Position {
	return source.Position{Row: row, Column: col}
}

func cursor(row, col int) source.Range {
	return source.PointRange(pos(row, col))
}

func TestBuffer_Insert(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		lines     []string
		selection source.Range
		text      string
		directive edit.Directive
		wantLines []string
		wantSel   source.Range
	}{
		{
			name:      "default insertion moves cursor past text",
			lines:     []string{"foo"},
			selection: cursor(0, 3),
			text:      "(",
			directive: edit.None(),
			wantLines: []string{"foo("},
			wantSel:   cursor(0, 4),
		},
		{
			name:      "default insertion replaces selection",
			lines:     []string{"a bc d"},
			selection: source.Range{Start: pos(0, 2), End: pos(0, 4)},
			text:      "x",
			directive: edit.None(),
			wantLines: []string{"a x d"},
			wantSel:   cursor(0, 3),
		},
		{
			name:      "pair with cursor between",
			lines:     []string{"foo"},
			selection: cursor(0, 3),
			text:      "(",
			directive: edit.Replace("()", edit.CursorAt(0, 1)),
			wantLines: []string{"foo()"},
			wantSel:   cursor(0, 4),
		},
		{
			name:      "multi-row replacement with absolute column",
			lines:     []string{"  f()"},
			selection: cursor(0, 4),
			text:      "\n",
			directive: edit.Replace("\n      \n  ", edit.CursorAt(1, 6)),
			wantLines: []string{"  f(", "      ", "  )"},
			wantSel:   cursor(1, 6),
		},
		{
			name:      "nil placement lands after inserted text",
			lines:     []string{"#define X", "next"},
			selection: cursor(0, 9),
			text:      "\\",
			directive: edit.Replace(" \\\n\t", nil),
			wantLines: []string{"#define X \\", "\t", "next"},
			wantSel:   cursor(1, 1),
		},
		{
			name:      "empty replacement skips over",
			lines:     []string{"f()"},
			selection: cursor(0, 2),
			text:      ")",
			directive: edit.Replace("", edit.CursorAt(0, 1)),
			wantLines: []string{"f()"},
			wantSel:   cursor(0, 3),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			buf := edit.NewBuffer(tt.lines, tt.selection)
			require.NoError(t, buf.Insert(tt.text, tt.directive))
			assert.Equal(t, tt.wantLines, buf.Lines)
			assert.Equal(t, tt.wantSel, buf.Selection)
		})
	}
}

func TestBuffer_InsertRejectsAdjustRange(t *testing.T) {
	t.Parallel()

	buf := edit.NewBuffer([]string{"x"}, cursor(0, 1))
	err := buf.Insert("y", edit.AdjustRange(cursor(0, 0)))

	var verr *edit.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"x"}, buf.Lines)
}

func TestBuffer_Delete(t *testing.T) {
	t.Parallel()

	buf := edit.NewBuffer([]string{"f()"}, cursor(0, 2))
	rng, ok := buf.BackspaceRange()
	require.True(t, ok)
	assert.Equal(t, source.Range{Start: pos(0, 1), End: pos(0, 2)}, rng)

	extended := source.Range{Start: pos(0, 1), End: pos(0, 3)}
	require.NoError(t, buf.Delete(rng, edit.AdjustRange(extended)))
	assert.Equal(t, []string{"f"}, buf.Lines)
	assert.Equal(t, cursor(0, 1), buf.Selection)
}

func TestBuffer_BackspaceRange(t *testing.T) {
	t.Parallel()

	t.Run("joins with previous row at column zero", func(t *testing.T) {
		t.Parallel()

		buf := edit.NewBuffer([]string{"ab", "cd"}, cursor(1, 0))
		rng, ok := buf.BackspaceRange()
		require.True(t, ok)
		require.NoError(t, buf.Delete(rng, edit.None()))
		assert.Equal(t, []string{"abcd"}, buf.Lines)
		assert.Equal(t, cursor(0, 2), buf.Selection)
	})

	t.Run("start of buffer", func(t *testing.T) {
		t.Parallel()

		buf := edit.NewBuffer([]string{"ab"}, cursor(0, 0))
		_, ok := buf.BackspaceRange()
		assert.False(t, ok)
	})

	t.Run("selection is the range", func(t *testing.T) {
		t.Parallel()

		sel := source.Range{Start: pos(0, 0), End: pos(0, 2)}
		buf := edit.NewBuffer([]string{"abc"}, sel)
		rng, ok := buf.BackspaceRange()
		require.True(t, ok)
		assert.Equal(t, sel, rng)
	})
}

func TestNewBuffer_EmptyLines(t *testing.T) {
	t.Parallel()

	buf := edit.NewBuffer(nil, cursor(0, 0))
	assert.Equal(t, []string{""}, buf.Lines)
	require.NoError(t, buf.Insert("x", edit.None()))
	assert.Equal(t, "x", buf.Text())
}
