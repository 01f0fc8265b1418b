package scenario_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/cstyle/pkg/behaviour"
	"github.com/yaklabco/cstyle/pkg/behaviour/rules"
	"github.com/yaklabco/cstyle/pkg/config"
	"github.com/yaklabco/cstyle/pkg/heuristics"
	"github.com/yaklabco/cstyle/pkg/lexer"
	"github.com/yaklabco/cstyle/pkg/scenario"
)

func newEngine() *behaviour.Engine {
	cfg := config.NewConfig()
	reg := behaviour.NewRegistry()
	rules.RegisterAll(reg)
	return behaviour.NewEngine(reg, cfg, behaviour.Collaborators{
		Tokenizer:   lexer.ForConfig(cfg),
		Brackets:    heuristics.NewBrackets(),
		ClassBraces: heuristics.NewClassBraces(),
		Indenter:    heuristics.NewIndenter(),
	})
}

func TestReplay(t *testing.T) {
	t.Parallel()

	eng := newEngine()

	tests := []struct {
		name    string
		sc      scenario.Scenario
		wantIDs []string
	}{
		{
			name: "pair and skip",
			sc: scenario.Scenario{
				Buffer: "call<|>",
				Steps:  []scenario.Step{{Insert: "("}, {Insert: "x"}, {Insert: ")"}},
				Expect: "call(x)<|>",
			},
			wantIDs: []string{"CB005", "", "CB005"},
		},
		{
			name: "pair deletion",
			sc: scenario.Scenario{
				Buffer: "f<|>",
				Steps:  []scenario.Step{{Insert: "["}, {Backspace: true}},
				Expect: "f<|>",
			},
			wantIDs: []string{"CB006", "CB006"},
		},
		{
			name: "hard tabs",
			sc: scenario.Scenario{
				SoftTabs: config.Bool(false),
				Buffer:   "f(<|>)",
				Steps:    []scenario.Step{{Insert: "\n"}},
				Expect:   "f(\n\t<|>\n)",
			},
			wantIDs: []string{"CB002"},
		},
		{
			name: "disabled behaviour",
			sc: scenario.Scenario{
				Disable: []string{"CB005"},
				Buffer:  "f<|>",
				Steps:   []scenario.Step{{Insert: "("}},
				Expect:  "f(<|>",
			},
			wantIDs: []string{""},
		},
		{
			name: "backspace at buffer start",
			sc: scenario.Scenario{
				Buffer: "<|>x",
				Steps:  []scenario.Step{{Backspace: true}},
				Expect: "<|>x",
			},
			wantIDs: []string{""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			out := scenario.Replay(context.Background(), eng, tt.sc)
			require.NoError(t, out.Error)
			assert.True(t, out.Passed(), "got %q", out.Got)
			assert.Nil(t, out.Diff)

			ids := make([]string, 0, len(out.Trace))
			for _, tr := range out.Trace {
				ids = append(ids, tr.BehaviourID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}

	// Overrides must not leak into the shared engine.
	assert.Empty(t, eng.Config.DisableBehaviours)
	assert.True(t, eng.Config.UseSoftTabs())
}

func TestReplayMismatch(t *testing.T) {
	t.Parallel()

	out := scenario.Replay(context.Background(), newEngine(), scenario.Scenario{
		Name:   "mismatch",
		Buffer: "foo<|>",
		Steps:  []scenario.Step{{Insert: "("}},
		Expect: "foo(<|>",
	})

	require.NoError(t, out.Error)
	assert.False(t, out.Passed())
	assert.Equal(t, "foo(<|>)", out.Got)
	require.NotNil(t, out.Diff)
	assert.True(t, out.Diff.HasChanges())
	assert.Contains(t, out.Diff.String(), "+foo(<|>)")
}

func TestReplayCancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	out := scenario.Replay(ctx, newEngine(), scenario.Scenario{
		Buffer: "foo<|>",
		Steps:  []scenario.Step{{Insert: "("}},
		Expect: "foo(<|>)",
	})

	require.ErrorIs(t, out.Error, context.Canceled)
	assert.False(t, out.Passed())
	assert.Equal(t, "foo<|>", out.Got)
}
