package pretty

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/yaklabco/cstyle/pkg/scenario"
)

const (
	summaryDividerWidth = 40
	wordFile            = "file"
	wordFiles           = "files"
	wordScenario        = "scenario"
	wordScenarios       = "scenarios"
)

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

// FormatSummaryOneLine formats replay statistics as a single line.
// Example: "14 scenarios: 13 passed, 1 failed in 4 files".
func (s *Styles) FormatSummaryOneLine(stats scenario.Stats) string {
	if stats.Scenarios == 0 && stats.FilesErrored == 0 {
		return s.Dim.Render(fmt.Sprintf("No scenarios found (%d %s checked)",
			stats.FilesDiscovered, plural(stats.FilesDiscovered, wordFile, wordFiles))) + "\n"
	}

	parts := []string{s.Success.Render(fmt.Sprintf("%d passed", stats.Passed))}
	if stats.Failed > 0 {
		parts = append(parts, s.Failure.Render(fmt.Sprintf("%d failed", stats.Failed)))
	}

	line := fmt.Sprintf("%d %s: %s in %d %s",
		stats.Scenarios, plural(stats.Scenarios, wordScenario, wordScenarios),
		strings.Join(parts, ", "),
		stats.FilesDiscovered, plural(stats.FilesDiscovered, wordFile, wordFiles),
	)

	if stats.FilesErrored > 0 {
		line += ", " + s.Error.Render(fmt.Sprintf("%d %s unreadable",
			stats.FilesErrored, plural(stats.FilesErrored, wordFile, wordFiles)))
	}

	return line + "\n"
}

// FormatSummary formats replay statistics as a summary block.
func (s *Styles) FormatSummary(stats scenario.Stats) string {
	var builder strings.Builder

	builder.WriteString("\n")
	builder.WriteString(s.SummaryTitle.Render("Summary"))
	builder.WriteString("\n")
	builder.WriteString(strings.Repeat("-", summaryDividerWidth))
	builder.WriteString("\n")

	builder.WriteString("  Files replayed:    " +
		s.SummaryValue.Render(strconv.Itoa(stats.FilesDiscovered)) + "\n")

	if stats.FilesErrored > 0 {
		builder.WriteString("  Files unreadable:  " +
			s.Failure.Render(strconv.Itoa(stats.FilesErrored)) + "\n")
	}

	builder.WriteString("\n")

	builder.WriteString("  Scenarios:         " +
		s.SummaryValue.Render(strconv.Itoa(stats.Scenarios)) + "\n")
	builder.WriteString("    Passed:          " +
		s.Success.Render(strconv.Itoa(stats.Passed)) + "\n")
	if stats.Failed > 0 {
		builder.WriteString("    Failed:          " +
			s.Failure.Render(strconv.Itoa(stats.Failed)) + "\n")
	}

	builder.WriteString("\n")

	switch {
	case stats.Failed > 0 || stats.FilesErrored > 0:
		builder.WriteString(s.Failure.Render("Replay failed"))
	case stats.Scenarios == 0:
		builder.WriteString(s.Warning.Render("Nothing to replay"))
	default:
		builder.WriteString(s.Success.Render("Replay passed"))
	}
	builder.WriteString("\n")

	return builder.String()
}
