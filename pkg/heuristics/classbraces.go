package heuristics

import (
	"regexp"
	"strings"

	"github.com/yaklabco/cstyle/pkg/source"
)

//nolint:gochecknoglobals // compiled once
var classHeadRe = regexp.MustCompile(`^\s*(template\s*<.*>\s*)?(class|struct|union|enum)\b`)

// ClassBraces is the default behaviour.ClassBraceFinder.
type ClassBraces struct{}

// NewClassBraces creates a ClassBraces finder.
func NewClassBraces() *ClassBraces {
	return &ClassBraces{}
}

// FindClassStyleOpenBraceRow walks upward from fromRow looking for a
// class, struct, union or enum head whose body has not opened yet. Blank
// rows and base-clause continuation rows are walked through; a row ending in
// ;, { or } ends the search. At most maxLookback rows are read.
func (c *ClassBraces) FindClassStyleOpenBraceRow(doc source.Document, fromRow, maxLookback int) (source.Position, bool) {
	if fromRow >= doc.LineCount() {
		fromRow = doc.LineCount() - 1
	}

	for steps := 0; steps < maxLookback && fromRow-steps >= 0; steps++ {
		row := fromRow - steps
		line := stripComment(doc.Line(row))
		trimmed := strings.TrimSpace(line)

		if trimmed == "" {
			continue
		}
		if m := classHeadRe.FindStringIndex(line); m != nil {
			if strings.ContainsAny(trimmed[len(trimmed)-1:], ";{}") {
				return source.Position{}, false
			}
			indent := len(line) - len(strings.TrimLeft(line, " \t"))
			return source.Position{Row: row, Column: indent}, true
		}
		switch trimmed[len(trimmed)-1] {
		case ';', '{', '}':
			return source.Position{}, false
		}
	}

	return source.Position{}, false
}

func stripComment(line string) string {
	if idx := strings.Index(line, "//"); idx >= 0 {
		return line[:idx]
	}
	return line
}
