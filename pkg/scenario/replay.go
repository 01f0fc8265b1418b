package scenario

import (
	"context"
	"fmt"

	"github.com/yaklabco/cstyle/pkg/behaviour"
	"github.com/yaklabco/cstyle/pkg/edit"
)

// StepTrace records how one step was answered.
type StepTrace struct {
	Step Step

	// BehaviourID is empty when the editor default applied.
	BehaviourID string

	Directive edit.Directive
}

// Outcome is the result of replaying one scenario.
type Outcome struct {
	Scenario Scenario

	// Got is the marked buffer after the last step.
	Got string

	Trace []StepTrace

	// Diff compares Expect with Got; nil when they match.
	Diff *edit.Diff

	// Error is set when the replay could not run to completion.
	Error error
}

// Passed reports whether the replay completed and produced Expect.
func (o *Outcome) Passed() bool {
	return o.Error == nil && o.Got == o.Scenario.Expect
}

// Replay runs sc through eng and compares the result to the expectation.
// Scenario overrides are applied to a copy of the engine configuration.
func Replay(ctx context.Context, eng *behaviour.Engine, sc Scenario) *Outcome {
	out := &Outcome{Scenario: sc}

	lines, sel, err := ParseMarked(sc.Buffer)
	if err != nil {
		out.Error = fmt.Errorf("parse buffer: %w", err)
		return out
	}

	local := withOverrides(eng, sc)
	buf := edit.NewBuffer(lines, sel)

	for idx, step := range sc.Steps {
		if err := ctx.Err(); err != nil {
			out.Error = fmt.Errorf("replay cancelled: %w", err)
			break
		}

		trace, err := replayStep(ctx, local, buf, sc.Path, step)
		if err != nil {
			out.Error = fmt.Errorf("step %d (%s): %w", idx+1, step, err)
			break
		}
		out.Trace = append(out.Trace, trace)
	}

	out.Got = Render(buf.Lines, buf.Selection)
	if out.Got != sc.Expect {
		out.Diff = edit.GenerateDiff(sc.Name, sc.Expect+"\n", out.Got+"\n")
	}
	return out
}

func replayStep(
	ctx context.Context,
	eng *behaviour.Engine,
	buf *edit.Buffer,
	path string,
	step Step,
) (StepTrace, error) {
	trace := StepTrace{Step: step}
	doc := buf.Snapshot(path)

	if step.Backspace {
		rng, ok := buf.BackspaceRange()
		if !ok {
			return trace, nil
		}
		res := eng.Transform(ctx, eng.Deletion(doc, buf.Cursor(), rng))
		trace.BehaviourID, trace.Directive = res.BehaviourID, res.Directive
		return trace, buf.Delete(rng, res.Directive)
	}

	res := eng.Transform(ctx, eng.Insertion(doc, buf.Selection, step.Insert))
	trace.BehaviourID, trace.Directive = res.BehaviourID, res.Directive
	return trace, buf.Insert(step.Insert, res.Directive)
}

// withOverrides returns eng unchanged or a shallow copy carrying the
// scenario's settings.
func withOverrides(eng *behaviour.Engine, sc Scenario) *behaviour.Engine {
	if sc.TabSize <= 0 && sc.SoftTabs == nil && len(sc.Disable) == 0 {
		return eng
	}

	local := *eng
	local.Config = eng.Config.Clone()
	if sc.TabSize > 0 {
		local.Config.TabSize = sc.TabSize
	}
	if sc.SoftTabs != nil {
		soft := *sc.SoftTabs
		local.Config.SoftTabs = &soft
	}
	local.Config.DisableBehaviours = append(local.Config.DisableBehaviours, sc.Disable...)
	return &local
}
