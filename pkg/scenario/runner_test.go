package scenario_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/cstyle/pkg/scenario"
)

func TestRunnerFixtures(t *testing.T) {
	t.Parallel()

	result, err := scenario.NewRunner(newEngine()).Run(context.Background(), scenario.Options{
		WorkingDir:   "testdata",
		ExcludeGlobs: []string{"broken", "invalid"},
		Jobs:         2,
	})
	require.NoError(t, err)

	for _, fo := range result.Files {
		require.NoError(t, fo.Error, fo.Path)
		for _, out := range fo.Outcomes {
			assert.True(t, out.Passed(), "%s: %s\n%s", fo.Path, out.Scenario.Name, out.Diff)
		}
	}

	assert.Equal(t, 4, result.Stats.FilesDiscovered)
	assert.Equal(t, 15, result.Stats.Scenarios)
	assert.Equal(t, 15, result.Stats.Passed)
	assert.False(t, result.HasFailures())

	// Deterministic path order regardless of worker scheduling.
	var names []string
	for _, fo := range result.Files {
		names = append(names, filepath.Base(fo.Path))
	}
	assert.Equal(t, []string{"braces.yaml", "define.yaml", "pairs.yaml", "quotes.yml"}, names)
}

func TestRunnerFailures(t *testing.T) {
	t.Parallel()

	result, err := scenario.NewRunner(newEngine()).Run(context.Background(), scenario.Options{
		Paths: []string{
			filepath.Join("testdata", "broken"),
			filepath.Join("testdata", "invalid", "unknown_key.yaml"),
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 2, result.Stats.FilesDiscovered)
	assert.Equal(t, 1, result.Stats.FilesErrored)
	assert.Equal(t, 1, result.Stats.Failed)
	assert.True(t, result.HasFailures())
}

func TestRunnerNoFiles(t *testing.T) {
	t.Parallel()

	result, err := scenario.NewRunner(newEngine()).Run(context.Background(), scenario.Options{
		Paths:      []string{"testdata"},
		Extensions: []string{".scn"},
	})
	require.NoError(t, err)
	assert.Empty(t, result.Files)
	assert.False(t, result.HasFailures())
}

func TestDiscoverMissingPath(t *testing.T) {
	t.Parallel()

	_, err := scenario.Discover(context.Background(), scenario.Options{
		Paths: []string{filepath.Join("testdata", "nope")},
	})
	require.Error(t, err)
}
