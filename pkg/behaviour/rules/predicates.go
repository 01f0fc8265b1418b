package rules

import (
	"regexp"
	"strings"

	"github.com/yaklabco/cstyle/pkg/source"
)

// Line classifiers. Each is a named predicate over a single line of text.
//
//nolint:gochecknoglobals // compiled once
var (
	docSkeletonRe   = regexp.MustCompile(`^(\s*)/\*{3,}\s+`)
	commentStarRe   = regexp.MustCompile(`^(\s*\*+\s*)`)
	namespaceOpenRe = regexp.MustCompile(`\s*namespace\s*\w*\s*\{`)
	commentOpenRe   = regexp.MustCompile(`^\s*/\*`)
	namedNSRe       = regexp.MustCompile(`\s*namespace\s+(\S+)\s*`)
	anonNSRe        = regexp.MustCompile(`\s*namespace\s*$`)
	assignEndRe     = regexp.MustCompile(`=\s*$`)
	defineNameRe    = regexp.MustCompile(`#define\s+\w+`)
	initializerRe   = regexp.MustCompile(`[\w>]+\s*$`)
	elseRe          = regexp.MustCompile(`\belse\b`)
	templateRe      = regexp.MustCompile(`^\s*template`)
	defineOpenRe    = regexp.MustCompile(`^\s*#\s*define[^\\]*$`)
	defineRe        = regexp.MustCompile(`^\s*#\s*define`)
	trailingSlashRe = regexp.MustCompile(`\\\s*$`)
)

// docSkeletonIndent returns the indent of a /*** banner line.
func docSkeletonIndent(line string) (string, bool) {
	m := docSkeletonRe.FindStringSubmatch(line)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// commentStarPrefix returns the leading " * " run of a block comment line.
func commentStarPrefix(line string) (string, bool) {
	m := commentStarRe.FindStringSubmatch(line)
	if m == nil {
		return "", false
	}
	return m[1], true
}

func opensNamespace(line string) bool { return namespaceOpenRe.MatchString(line) }

func opensBlockComment(line string) bool { return commentOpenRe.MatchString(line) }

// namespaceName returns the name of a named namespace head.
func namespaceName(line string) (string, bool) {
	m := namedNSRe.FindStringSubmatch(line)
	if m == nil {
		return "", false
	}
	return m[1], true
}

func isAnonymousNamespace(line string) bool { return anonNSRe.MatchString(line) }

func endsWithAssignment(line string) bool { return assignEndRe.MatchString(line) }

func hasDefineName(line string) bool { return defineNameRe.MatchString(line) }

// looksLikeInitializer matches "obj {" style heads but not else branches.
func looksLikeInitializer(line string) bool {
	return initializerRe.MatchString(line) && !elseRe.MatchString(line)
}

func isTemplateLine(line string) bool { return templateRe.MatchString(line) }

// opensMacro matches a #define line without any backslash yet.
func opensMacro(line string) bool { return defineOpenRe.MatchString(line) }

func isDefine(line string) bool { return defineRe.MatchString(line) }

// endsWithBackslash reports a trailing backslash, ignoring whitespace after it.
func endsWithBackslash(line string) bool { return trailingSlashRe.MatchString(line) }

func isBlank(line string) bool { return strings.TrimSpace(line) == "" }

// continues reports whether line ends in an unescaped backslash.
func continues(line string) bool {
	trimmed := strings.TrimRight(line, " \t")
	n := 0
	for i := len(trimmed) - 1; i >= 0 && trimmed[i] == '\\'; i-- {
		n++
	}
	return n%2 == 1
}

// stripLineComment cuts a trailing // comment, one byte before the slashes.
func stripLineComment(line string) string {
	idx := strings.Index(line, "//")
	if idx < 0 {
		return line
	}
	return line[:max(idx-1, 0)]
}

// InMacro reports whether row belongs to a backslash-continued #define.
// It walks upward while rows end in a continuation backslash; the row is in
// a macro if that chain reaches a #define line. The walk gives up, reporting
// false, after maxRows rows.
func InMacro(doc source.Document, row, maxRows int) bool {
	if row >= doc.LineCount() {
		return false
	}
	for steps := 0; row >= 0; row, steps = row-1, steps+1 {
		if steps >= maxRows {
			return false
		}
		line := doc.Line(row)
		if !continues(line) {
			return false
		}
		if isDefine(line) {
			return true
		}
	}
	return false
}
