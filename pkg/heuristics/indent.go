package heuristics

import (
	"regexp"
	"strings"
)

//nolint:gochecknoglobals // compiled once
var defineHeadRe = regexp.MustCompile(`^\s*#\s*define\b`)

// Indenter is the default behaviour.Indenter.
type Indenter struct{}

// NewIndenter creates an Indenter.
func NewIndenter() *Indenter {
	return &Indenter{}
}

// Indent returns the leading spaces and tabs of line.
func (i *Indenter) Indent(line string) string {
	return line[:len(line)-len(strings.TrimLeft(line, " \t"))]
}

// NextLineIndent keeps the current indentation and adds one tab after a row
// that opens a block, argument list or subscript, or after the head of a
// continued #define. A trailing continuation backslash is ignored when
// looking at the last character.
func (i *Indenter) NextLineIndent(_ string, line, tab string, _, _ int) string {
	indent := i.Indent(line)

	body := strings.TrimRight(line, " \t")
	continued := strings.HasSuffix(body, `\`)
	if continued {
		body = strings.TrimRight(strings.TrimSuffix(body, `\`), " \t")
	}

	if continued && defineHeadRe.MatchString(body) {
		return indent + tab
	}
	if body == "" {
		return indent
	}
	switch body[len(body)-1] {
	case '{', '(', '[':
		return indent + tab
	default:
		return indent
	}
}
