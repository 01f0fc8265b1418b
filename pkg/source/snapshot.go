// Package source provides the document model shared by the behaviour engine:
// positions, ranges, tokens and an immutable line-oriented snapshot.
package source

import "strings"

// Document is read-only line access to an editor buffer.
type Document interface {
	// Line returns the text of row without its line terminator.
	// Out-of-range rows return "".
	Line(row int) string

	// LineCount returns the number of rows.
	LineCount() int

	// Lines returns every row. Callers must not modify the slice.
	Lines() []string

	// TextRange returns the text covered by r, rows joined with "\n".
	TextRange(r Range) string
}

// Snapshot is an immutable view of a buffer at one point in time.
type Snapshot struct {
	// Path is the file path (may be empty for in-memory content).
	Path string

	lines []string
}

// NewSnapshot splits content into rows. Both LF and CRLF terminators are
// accepted; a trailing terminator yields a final empty row, matching editor
// buffers.
func NewSnapshot(path string, content []byte) *Snapshot {
	return &Snapshot{Path: path, lines: SplitLines(string(content))}
}

// FromLines wraps an existing row slice.
func FromLines(path string, lines []string) *Snapshot {
	if len(lines) == 0 {
		lines = []string{""}
	}
	return &Snapshot{Path: path, lines: lines}
}

// SplitLines splits text on LF or CRLF. It always returns at least one row.
func SplitLines(text string) []string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// Line implements Document.
func (s *Snapshot) Line(row int) string {
	if row < 0 || row >= len(s.lines) {
		return ""
	}
	return s.lines[row]
}

// LineCount implements Document.
func (s *Snapshot) LineCount() int {
	return len(s.lines)
}

// Lines implements Document.
func (s *Snapshot) Lines() []string {
	return s.lines
}

// TextRange implements Document. Columns are clamped to the row width.
func (s *Snapshot) TextRange(r Range) string {
	if r.IsEmpty() || r.Start.Row >= len(s.lines) || r.Start.Row < 0 {
		return ""
	}
	if !r.IsMultiLine() {
		line := s.lines[r.Start.Row]
		return line[clamp(r.Start.Column, len(line)):clamp(r.End.Column, len(line))]
	}

	var b strings.Builder
	first := s.lines[r.Start.Row]
	b.WriteString(first[clamp(r.Start.Column, len(first)):])
	for row := r.Start.Row + 1; row < r.End.Row && row < len(s.lines); row++ {
		b.WriteByte('\n')
		b.WriteString(s.lines[row])
	}
	if r.End.Row < len(s.lines) {
		last := s.lines[r.End.Row]
		b.WriteByte('\n')
		b.WriteString(last[:clamp(r.End.Column, len(last))])
	}
	return b.String()
}

// Content joins the rows back into a single string.
func (s *Snapshot) Content() string {
	return strings.Join(s.lines, "\n")
}

func clamp(v, hi int) int {
	if v < 0 {
		return 0
	}
	if v > hi {
		return hi
	}
	return v
}
