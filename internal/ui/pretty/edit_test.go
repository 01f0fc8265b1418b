package pretty_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/cstyle/internal/ui/pretty"
	"github.com/yaklabco/cstyle/pkg/behaviour"
	"github.com/yaklabco/cstyle/pkg/edit"
	"github.com/yaklabco/cstyle/pkg/scenario"
)

func TestFormatResult(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)

	assert.Equal(t, "default", styles.FormatResult(behaviour.Result{Directive: edit.None()}))

	res := behaviour.Result{
		Directive:   edit.Replace("()", edit.CursorAt(0, 1)),
		BehaviourID: "CB005",
	}
	assert.Equal(t, `CB005  replace "()" select [0,1]-[0,1]`, styles.FormatResult(res))
}

func TestFormatDiff(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)

	assert.Empty(t, styles.FormatDiff(nil))

	d := edit.GenerateDiff("pairs.yaml", "foo(<|>\n", "foo(<|>)\n")
	require.NotNil(t, d)

	// Without colour the rendering is the plain unified diff.
	assert.Equal(t, d.String(), styles.FormatDiff(d))
}

func TestFormatOutcome(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)
	trace := []scenario.StepTrace{
		{
			Step:        scenario.Step{Insert: "("},
			BehaviourID: "CB005",
			Directive:   edit.Replace("()", edit.CursorAt(0, 1)),
		},
		{Step: scenario.Step{Backspace: true}, Directive: edit.None()},
	}

	t.Run("passed quiet", func(t *testing.T) {
		t.Parallel()

		out := &scenario.Outcome{
			Scenario: scenario.Scenario{Name: "paren pair", Expect: "f(<|>)"},
			Got:      "f(<|>)",
			Trace:    trace,
		}
		got := styles.FormatOutcome(out, false)
		assert.Equal(t, "  PASS  paren pair\n", got)
	})

	t.Run("passed verbose", func(t *testing.T) {
		t.Parallel()

		out := &scenario.Outcome{
			Scenario: scenario.Scenario{Name: "paren pair", Expect: "f(<|>)"},
			Got:      "f(<|>)",
			Trace:    trace,
		}
		got := styles.FormatOutcome(out, true)
		assert.Contains(t, got, ` 1. insert "("  CB005`)
		assert.Contains(t, got, " 2. backspace  default")
	})

	t.Run("failed", func(t *testing.T) {
		t.Parallel()

		out := &scenario.Outcome{
			Scenario: scenario.Scenario{Name: "paren pair", Expect: "f(<|>)"},
			Got:      "f(<|>",
			Trace:    trace,
			Diff:     edit.GenerateDiff("paren pair", "f(<|>)", "f(<|>"),
		}
		got := styles.FormatOutcome(out, false)
		assert.True(t, strings.HasPrefix(got, "  FAIL  paren pair\n"))
		assert.Contains(t, got, "    -f(<|>)\n")
		assert.Contains(t, got, "    +f(<|>\n")
		assert.Contains(t, got, "CB005")
	})

	t.Run("error", func(t *testing.T) {
		t.Parallel()

		out := &scenario.Outcome{
			Scenario: scenario.Scenario{Name: "broken"},
			Error:    errors.New("step 1: cursor outside buffer"),
		}
		got := styles.FormatOutcome(out, false)
		assert.Contains(t, got, "FAIL  broken")
		assert.Contains(t, got, "error: step 1: cursor outside buffer")
	})
}

func TestFormatFileHeader(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)
	assert.Equal(t, "a.yaml", styles.FormatFileHeader("a.yaml", 0))
	assert.Equal(t, "a.yaml (2 failed)", styles.FormatFileHeader("a.yaml", 2))
}
