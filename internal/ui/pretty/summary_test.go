package pretty_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/cstyle/internal/ui/pretty"
	"github.com/yaklabco/cstyle/pkg/scenario"
)

func TestFormatSummary(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		stats    scenario.Stats
		contains []string
		excludes []string
	}{
		{
			name:     "all passed",
			stats:    scenario.Stats{FilesDiscovered: 3, Scenarios: 12, Passed: 12},
			contains: []string{"Summary", "Files replayed:", "3", "Scenarios:", "12", "Replay passed"},
			excludes: []string{"Failed:", "Files unreadable:"},
		},
		{
			name:     "with failures",
			stats:    scenario.Stats{FilesDiscovered: 2, Scenarios: 5, Passed: 3, Failed: 2},
			contains: []string{"Failed:", "2", "Replay failed"},
		},
		{
			name:     "unreadable file",
			stats:    scenario.Stats{FilesDiscovered: 2, FilesErrored: 1, Scenarios: 1, Passed: 1},
			contains: []string{"Files unreadable:", "Replay failed"},
		},
		{
			name:     "nothing",
			stats:    scenario.Stats{},
			contains: []string{"Nothing to replay"},
		},
	}

	styles := pretty.NewStyles(false)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := styles.FormatSummary(tt.stats)
			for _, want := range tt.contains {
				assert.Contains(t, got, want)
			}
			for _, unwanted := range tt.excludes {
				assert.NotContains(t, got, unwanted)
			}
		})
	}
}

func TestFormatSummaryOneLine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		stats scenario.Stats
		want  string
	}{
		{
			name:  "no scenarios",
			stats: scenario.Stats{FilesDiscovered: 1},
			want:  "No scenarios found (1 file checked)\n",
		},
		{
			name:  "all passed",
			stats: scenario.Stats{FilesDiscovered: 4, Scenarios: 15, Passed: 15},
			want:  "15 scenarios: 15 passed in 4 files\n",
		},
		{
			name:  "single failure",
			stats: scenario.Stats{FilesDiscovered: 1, Scenarios: 1, Failed: 1},
			want:  "1 scenario: 0 passed, 1 failed in 1 file\n",
		},
		{
			name:  "unreadable",
			stats: scenario.Stats{FilesDiscovered: 2, FilesErrored: 1, Scenarios: 2, Passed: 2},
			want:  "2 scenarios: 2 passed in 2 files, 1 file unreadable\n",
		},
	}

	styles := pretty.NewStyles(false)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, styles.FormatSummaryOneLine(tt.stats))
		})
	}
}
