package edit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/cstyle/pkg/edit"
	"github.com/yaklabco/cstyle/pkg/source"
)

func TestValidateInsertion(t *testing.T) {
	t.Parallel()

	doc := source.FromLines("test.cpp", []string{"void f() ", "int x;"})

	tests := []struct {
		name      string
		selection source.Range
		directive edit.Directive
		wantErr   bool
	}{
		{"none is always valid", cursor(0, 9), edit.None(), false},
		{"cursor inside inserted text", cursor(0, 9), edit.Replace("{}", edit.CursorAt(0, 1)), false},
		{"cursor at end of inserted text", cursor(0, 9), edit.Replace("{}", edit.CursorAt(0, 2)), false},
		{"nil placement", cursor(0, 9), edit.Replace("{}", nil), false},
		{"cursor past line end", cursor(0, 9), edit.Replace("{}", edit.CursorAt(0, 3)), true},
		{"cursor past last row", cursor(1, 0), edit.Replace("", edit.CursorAt(1, 0)), true},
		{"move down to next row", cursor(0, 2), edit.Replace("", edit.CursorAt(1, 2)), false},
		{"negative column", cursor(0, 0), edit.Replace("x", edit.CursorAt(0, -1)), true},
		{"reversed placement", cursor(0, 0), edit.Replace("ab", &edit.Placement{EndCol: 1, StartCol: 2}), true},
		{"selection outside document", cursor(5, 0), edit.Replace("x", nil), true},
		{"adjust range on insertion", cursor(0, 0), edit.AdjustRange(cursor(0, 0)), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := edit.ValidateInsertion(doc, tt.selection, tt.directive)
			if tt.wantErr {
				var verr *edit.ValidationError
				require.ErrorAs(t, err, &verr)
				assert.NotEmpty(t, verr.Error())
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestValidateDeletion(t *testing.T) {
	t.Parallel()

	doc := source.FromLines("test.cpp", []string{"a{};", "b"})
	brace := source.Range{Start: pos(0, 1), End: pos(0, 2)}
	join := source.Range{Start: pos(0, 4), End: pos(1, 0)}

	tests := []struct {
		name      string
		rng       source.Range
		directive edit.Directive
		wantErr   bool
	}{
		{"none", brace, edit.None(), false},
		{"extended on same row", brace, edit.AdjustRange(source.Range{Start: pos(0, 1), End: pos(0, 4)}), false},
		{"unchanged multi-line", join, edit.AdjustRange(join), false},
		{"past line end", brace, edit.AdjustRange(source.Range{Start: pos(0, 1), End: pos(0, 5)}), true},
		{"different row", brace, edit.AdjustRange(source.Range{Start: pos(1, 0), End: pos(1, 1)}), true},
		{"grown to multi-line", brace, edit.AdjustRange(source.Range{Start: pos(0, 1), End: pos(1, 0)}), true},
		{"reversed", brace, edit.AdjustRange(source.Range{Start: pos(0, 2), End: pos(0, 1)}), true},
		{"replace on deletion", brace, edit.Replace("", nil), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := edit.ValidateDeletion(doc, tt.rng, tt.directive)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestDirective_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "none", edit.None().String())
	assert.Equal(t, `replace "{}" select [0,1]-[0,1]`, edit.Replace("{}", edit.CursorAt(0, 1)).String())
	assert.Equal(t, `replace "x"`, edit.Replace("x", nil).String())
	assert.Contains(t, edit.AdjustRange(cursor(0, 1)).String(), "adjust-range")
}
