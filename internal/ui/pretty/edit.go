package pretty

import (
	"fmt"
	"strings"

	"github.com/yaklabco/cstyle/pkg/behaviour"
	"github.com/yaklabco/cstyle/pkg/edit"
	"github.com/yaklabco/cstyle/pkg/scenario"
)

// defaultAction is shown when no behaviour overrode the edit.
const defaultAction = "default"

// FormatResult formats one engine result as "ID  directive".
func (s *Styles) FormatResult(res behaviour.Result) string {
	if !res.Fired() {
		return s.Dim.Render(defaultAction)
	}
	return s.BehaviourID.Render(res.BehaviourID) + "  " + s.Directive.Render(res.Directive.String())
}

// FormatDiff renders a unified diff with per-line colouring.
func (s *Styles) FormatDiff(d *edit.Diff) string {
	if !d.HasChanges() {
		return ""
	}

	var builder strings.Builder
	for _, line := range strings.SplitAfter(d.String(), "\n") {
		if line == "" {
			continue
		}
		body := strings.TrimSuffix(line, "\n")
		switch {
		case strings.HasPrefix(body, "--- "), strings.HasPrefix(body, "+++ "):
			builder.WriteString(s.DiffHeader.Render(body))
		case strings.HasPrefix(body, "@@"):
			builder.WriteString(s.DiffHunk.Render(body))
		case strings.HasPrefix(body, "+"):
			builder.WriteString(s.DiffAdd.Render(body))
		case strings.HasPrefix(body, "-"):
			builder.WriteString(s.DiffRemove.Render(body))
		default:
			builder.WriteString(s.DiffContext.Render(body))
		}
		builder.WriteString("\n")
	}
	return builder.String()
}

// FormatTrace lists each step of a replay with the behaviour that answered it.
func (s *Styles) FormatTrace(trace []scenario.StepTrace) string {
	var builder strings.Builder
	for i, st := range trace {
		res := behaviour.Result{Directive: st.Directive, BehaviourID: st.BehaviourID}
		fmt.Fprintf(&builder, "      %s %s  %s\n",
			s.Location.Render(fmt.Sprintf("%2d.", i+1)),
			s.Step.Render(st.Step.String()),
			s.FormatResult(res),
		)
	}
	return builder.String()
}

// FormatOutcome formats a single scenario outcome. Failures include the
// diff of expected against actual buffer; verbose adds the step trace.
func (s *Styles) FormatOutcome(out *scenario.Outcome, verbose bool) string {
	var builder strings.Builder

	status := s.Success.Render("PASS")
	if !out.Passed() {
		status = s.Failure.Render("FAIL")
	}
	fmt.Fprintf(&builder, "  %s  %s\n", status, out.Scenario.Name)

	if out.Error != nil {
		builder.WriteString("    " + s.Error.Render("error:") + " " + out.Error.Error() + "\n")
	}

	if verbose || !out.Passed() {
		builder.WriteString(s.FormatTrace(out.Trace))
	}

	if out.Diff.HasChanges() {
		for _, line := range strings.SplitAfter(s.FormatDiff(out.Diff), "\n") {
			if line != "" {
				builder.WriteString("    " + line)
			}
		}
	}

	return builder.String()
}

// FormatFileHeader formats a file header for grouped output.
func (s *Styles) FormatFileHeader(path string, failed int) string {
	header := s.FilePath.Render(path)
	if failed > 0 {
		header += s.Dim.Render(fmt.Sprintf(" (%d failed)", failed))
	}
	return header
}
