package cli

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/cstyle/pkg/scenario"
	"github.com/yaklabco/cstyle/pkg/source"
)

func TestSelectionFromFlags(t *testing.T) {
	t.Parallel()

	lines := []string{"int main() {", "  return 0;", "}"}

	tests := []struct {
		name    string
		at, sel string
		want    source.Range
		wantErr string
	}{
		{
			name: "cursor",
			at:   "1:11",
			want: source.PointRange(source.Position{Row: 0, Column: 10}),
		},
		{
			name: "end of line",
			at:   "2:12",
			want: source.PointRange(source.Position{Row: 1, Column: 11}),
		},
		{
			name: "selection normalised",
			at:   "2:3",
			sel:  "2:9",
			want: source.Range{Start: source.Position{Row: 1, Column: 2}, End: source.Position{Row: 1, Column: 8}},
		},
		{name: "no colon", at: "12", wantErr: "--at: position"},
		{name: "bad row", at: "x:1", wantErr: "--at: row"},
		{name: "bad column", at: "1:y", wantErr: "--at: column"},
		{name: "row zero", at: "0:1", wantErr: "row 0 outside 1..3"},
		{name: "past line end", at: "3:3", wantErr: "column 3 outside 1..2 on row 3"},
		{name: "bad select", at: "1:1", sel: "4:1", wantErr: "--select: row 4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := selectionFromFlags(lines, tt.at, tt.sel)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestUnescape(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in, want string
	}{
		{"(", "("},
		{`\n`, "\n"},
		{`\t{`, "\t{"},
		{`"`, `"`},
		{`\q`, `\q`},
		{`a"\n`, "a\"\n"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, unescape(tt.in), "unescape(%q)", tt.in)
	}
}

func TestConfirm(t *testing.T) {
	t.Parallel()

	for answer, want := range map[string]bool{
		"y\n":   true,
		"YES\n": true,
		"n\n":   false,
		"\n":    false,
		"":      false,
	} {
		var prompt strings.Builder
		got, err := confirm(strings.NewReader(answer), &prompt, "Overwrite?")
		require.NoError(t, err)
		assert.Equal(t, want, got, "answer %q", answer)
		assert.Equal(t, "Overwrite? [y/N] ", prompt.String())
	}
}

func TestDisplayPath(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "testdata/a.yaml", displayPath("/work", "/work/testdata/a.yaml"))
	assert.Equal(t, "/elsewhere/a.yaml", displayPath("/work", "/elsewhere/a.yaml"))
}

func TestExitCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err  error
		want int
	}{
		{nil, ExitSuccess},
		{ErrScenarioFailed, ExitScenarioFailed},
		{fmt.Errorf("wrapped: %w", ErrInvalidUsage), ExitInvalidUsage},
		{errors.Join(ErrConfig, errors.New("bad yaml")), ExitConfigError},
		{errors.Join(ErrIO, errors.New("denied")), ExitIOError},
		{errors.New("boom"), ExitInternalError},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ExitCode(tt.err), "%v", tt.err)
	}

	assert.Equal(t, ExitSuccess, ExitCodeFromResult(nil))
	assert.Equal(t, ExitScenarioFailed, ExitCodeFromResult(&scenario.Result{Stats: scenario.Stats{Failed: 1}}))
}
