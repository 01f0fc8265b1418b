package edit

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// Diff represents a unified diff between the buffer before and after an edit.
type Diff struct {
	// Path is the file path for the diff header.
	Path string

	// Hunks contains the diff hunks.
	Hunks []DiffHunk

	// Additions is the number of lines added.
	Additions int

	// Deletions is the number of lines deleted.
	Deletions int
}

// DiffHunk represents a single hunk in a unified diff.
type DiffHunk struct {
	// OriginalStart is the 1-based line number where the hunk starts in the original.
	OriginalStart int

	// OriginalCount is the number of lines from the original in this hunk.
	OriginalCount int

	// ModifiedStart is the 1-based line number where the hunk starts in the modified.
	ModifiedStart int

	// ModifiedCount is the number of lines from the modified in this hunk.
	ModifiedCount int

	// Lines contains the diff lines in this hunk.
	Lines []DiffLine
}

// DiffLine represents a single line in a diff hunk.
type DiffLine struct {
	Kind    DiffLineKind
	Content string
}

// DiffLineKind indicates the type of diff line.
type DiffLineKind int

const (
	// DiffLineContext is an unchanged context line.
	DiffLineContext DiffLineKind = iota

	// DiffLineAdd is a line added in the modified version.
	DiffLineAdd

	// DiffLineRemove is a line removed from the original version.
	DiffLineRemove
)

// contextLines is the number of context lines to show around changes.
const contextLines = 3

// GenerateDiff creates a unified diff between original and modified content.
// Returns nil if there are no changes.
func GenerateDiff(path, original, modified string) *Diff {
	if original == modified {
		return nil
	}

	ops := lineOps(original, modified)
	hunks := buildHunks(ops)
	if len(hunks) == 0 {
		return nil
	}

	diff := &Diff{Path: path, Hunks: hunks}
	for _, hunk := range hunks {
		for _, line := range hunk.Lines {
			switch line.Kind {
			case DiffLineAdd:
				diff.Additions++
			case DiffLineRemove:
				diff.Deletions++
			case DiffLineContext:
			}
		}
	}
	return diff
}

// String returns the diff in unified diff format.
func (d *Diff) String() string {
	if d == nil || len(d.Hunks) == 0 {
		return ""
	}

	path := strings.TrimPrefix(d.Path, "/")

	var builder strings.Builder
	fmt.Fprintf(&builder, "--- a/%s\n", path)
	fmt.Fprintf(&builder, "+++ b/%s\n", path)

	for _, hunk := range d.Hunks {
		fmt.Fprintf(&builder, "@@ -%d,%d +%d,%d @@\n",
			hunk.OriginalStart, hunk.OriginalCount,
			hunk.ModifiedStart, hunk.ModifiedCount)

		for _, line := range hunk.Lines {
			switch line.Kind {
			case DiffLineContext:
				fmt.Fprintf(&builder, " %s\n", line.Content)
			case DiffLineAdd:
				fmt.Fprintf(&builder, "+%s\n", line.Content)
			case DiffLineRemove:
				fmt.Fprintf(&builder, "-%s\n", line.Content)
			}
		}
	}

	return builder.String()
}

// HasChanges returns true if the diff contains any changes.
func (d *Diff) HasChanges() bool {
	return d != nil && len(d.Hunks) > 0
}

// lineOps runs a line-mode diff and flattens it into one op per line.
func lineOps(original, modified string) []DiffLine {
	dmp := diffmatchpatch.New()
	a, b, lineArray := dmp.DiffLinesToChars(withNewline(original), withNewline(modified))
	diffs := dmp.DiffMain(a, b, false)
	diffs = dmp.DiffCharsToLines(diffs, lineArray)

	var ops []DiffLine
	for _, d := range diffs {
		kind := DiffLineContext
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			kind = DiffLineAdd
		case diffmatchpatch.DiffDelete:
			kind = DiffLineRemove
		case diffmatchpatch.DiffEqual:
		}
		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			ops = append(ops, DiffLine{Kind: kind, Content: strings.TrimSuffix(line, "\n")})
		}
	}
	return ops
}

func withNewline(s string) string {
	if s == "" || strings.HasSuffix(s, "\n") {
		return s
	}
	return s + "\n"
}

// buildHunks groups changed lines with their surrounding context.
func buildHunks(ops []DiffLine) []DiffHunk {
	// 1-based line numbers before each op.
	origAt := make([]int, len(ops)+1)
	modAt := make([]int, len(ops)+1)
	origAt[0], modAt[0] = 1, 1
	for i, op := range ops {
		origAt[i+1], modAt[i+1] = origAt[i], modAt[i]
		if op.Kind != DiffLineAdd {
			origAt[i+1]++
		}
		if op.Kind != DiffLineRemove {
			modAt[i+1]++
		}
	}

	var hunks []DiffHunk
	for i := 0; i < len(ops); {
		if ops[i].Kind == DiffLineContext {
			i++
			continue
		}

		last := i
		for j := i + 1; j < len(ops); j++ {
			if ops[j].Kind != DiffLineContext {
				last = j
				continue
			}
			if j-last > 2*contextLines {
				break
			}
		}

		start := max(0, i-contextLines)
		end := min(len(ops), last+contextLines+1)

		hunk := DiffHunk{
			OriginalStart: origAt[start],
			ModifiedStart: modAt[start],
			Lines:         append([]DiffLine(nil), ops[start:end]...),
		}
		for _, op := range hunk.Lines {
			if op.Kind != DiffLineAdd {
				hunk.OriginalCount++
			}
			if op.Kind != DiffLineRemove {
				hunk.ModifiedCount++
			}
		}
		if hunk.OriginalCount == 0 {
			hunk.OriginalStart--
		}
		if hunk.ModifiedCount == 0 {
			hunk.ModifiedStart--
		}
		hunks = append(hunks, hunk)
		i = end
	}
	return hunks
}
