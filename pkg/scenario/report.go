package scenario

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"slices"
	"strings"
)

// ReportVersion is the current JSON report format version.
const ReportVersion = "1.0.0"

const bufWriterSize = 32 * 1024

// Report is the machine-readable form of a Result.
type Report struct {
	Version    string           `json:"version"`
	Files      []FileReport     `json:"files"`
	Behaviours []BehaviourUsage `json:"behaviours"`
	Summary    ReportSummary    `json:"summary"`
}

// FileReport is one scenario file in a Report.
type FileReport struct {
	Path      string           `json:"path"`
	Scenarios []ScenarioReport `json:"scenarios"`
	Error     string           `json:"error,omitempty"`
}

// ScenarioReport is one replayed scenario.
type ScenarioReport struct {
	Name   string       `json:"name"`
	Passed bool         `json:"passed"`
	Got    string       `json:"got"`
	Expect string       `json:"expect"`
	Steps  []StepReport `json:"steps"`
	Diff   string       `json:"diff,omitempty"`
	Error  string       `json:"error,omitempty"`
}

// StepReport is one step of a replay. Behaviour is empty when the editor
// default applied.
type StepReport struct {
	Step      string `json:"step"`
	Behaviour string `json:"behaviour,omitempty"`
	Directive string `json:"directive"`
}

// BehaviourUsage counts how many steps a behaviour answered.
type BehaviourUsage struct {
	ID    string `json:"id"`
	Steps int    `json:"steps"`
}

// ReportSummary mirrors Stats.
type ReportSummary struct {
	FilesReplayed int `json:"filesReplayed"`
	FilesErrored  int `json:"filesErrored"`
	Scenarios     int `json:"scenarios"`
	Passed        int `json:"passed"`
	Failed        int `json:"failed"`
}

// BuildReport converts result into a Report. Paths under workDir are made
// relative to it.
func BuildReport(result *Result, workDir string) *Report {
	report := &Report{
		Version:    ReportVersion,
		Files:      make([]FileReport, 0),
		Behaviours: make([]BehaviourUsage, 0),
	}
	if result == nil {
		return report
	}

	report.Summary = ReportSummary{
		FilesReplayed: result.Stats.FilesDiscovered,
		FilesErrored:  result.Stats.FilesErrored,
		Scenarios:     result.Stats.Scenarios,
		Passed:        result.Stats.Passed,
		Failed:        result.Stats.Failed,
	}

	usage := make(map[string]int)
	for _, file := range result.Files {
		fr := FileReport{
			Path:      relativePath(file.Path, workDir),
			Scenarios: make([]ScenarioReport, 0, len(file.Outcomes)),
		}
		if file.Error != nil {
			fr.Error = file.Error.Error()
		}

		for _, out := range file.Outcomes {
			sr := ScenarioReport{
				Name:   out.Scenario.Name,
				Passed: out.Passed(),
				Got:    out.Got,
				Expect: out.Scenario.Expect,
				Steps:  make([]StepReport, 0, len(out.Trace)),
				Diff:   out.Diff.String(),
			}
			if out.Error != nil {
				sr.Error = out.Error.Error()
			}
			for _, st := range out.Trace {
				sr.Steps = append(sr.Steps, StepReport{
					Step:      st.Step.String(),
					Behaviour: st.BehaviourID,
					Directive: st.Directive.String(),
				})
				if st.BehaviourID != "" {
					usage[st.BehaviourID]++
				}
			}
			fr.Scenarios = append(fr.Scenarios, sr)
		}
		report.Files = append(report.Files, fr)
	}

	for id, n := range usage {
		report.Behaviours = append(report.Behaviours, BehaviourUsage{ID: id, Steps: n})
	}
	slices.SortFunc(report.Behaviours, func(a, b BehaviourUsage) int {
		return strings.Compare(a.ID, b.ID)
	})

	return report
}

// WriteJSON encodes report to w as indented JSON.
func WriteJSON(w io.Writer, report *Report) (err error) {
	bw := bufio.NewWriterSize(w, bufWriterSize)
	defer func() {
		if flushErr := bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	encoder := json.NewEncoder(bw)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(report); err != nil {
		return fmt.Errorf("encode JSON: %w", err)
	}
	return nil
}

func relativePath(path, workDir string) string {
	if workDir == "" {
		return path
	}
	rel, err := filepath.Rel(workDir, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return path
	}
	return filepath.ToSlash(rel)
}
