package scenario

import (
	"errors"
	"fmt"
	"strings"

	"github.com/yaklabco/cstyle/pkg/source"
)

// Buffer markers.
const (
	CursorMarker         = "<|>"
	SelectionStartMarker = "<["
	SelectionEndMarker   = "]>"
)

// ErrNoCursor is returned when a marked buffer has no cursor or selection.
var ErrNoCursor = errors.New("buffer has no cursor marker")

// ParseMarked strips the markers from text and returns its lines and the
// selection they describe. A buffer holds either one <|> or one <[ ... ]>
// pair.
func ParseMarked(text string) ([]string, source.Range, error) {
	cursor := strings.Count(text, CursorMarker)
	open := strings.Count(text, SelectionStartMarker)
	closing := strings.Count(text, SelectionEndMarker)

	switch {
	case cursor == 1 && open == 0 && closing == 0:
		pos, rest := takeMarker(text, CursorMarker)
		return strings.Split(rest, "\n"), source.PointRange(pos), nil

	case cursor == 0 && open == 1 && closing == 1:
		if strings.Index(text, SelectionEndMarker) < strings.Index(text, SelectionStartMarker) {
			return nil, source.Range{}, errors.New("selection closes before it opens")
		}
		start, rest := takeMarker(text, SelectionStartMarker)
		end, rest := takeMarker(rest, SelectionEndMarker)
		return strings.Split(rest, "\n"), source.Range{Start: start, End: end}, nil

	case cursor == 0 && open == 0 && closing == 0:
		return nil, source.Range{}, ErrNoCursor

	default:
		return nil, source.Range{}, fmt.Errorf(
			"ambiguous markers: %d cursor, %d selection start, %d selection end", cursor, open, closing)
	}
}

func takeMarker(text, marker string) (source.Position, string) {
	idx := strings.Index(text, marker)
	before := text[:idx]
	pos := source.Position{
		Row:    strings.Count(before, "\n"),
		Column: len(before) - strings.LastIndex(before, "\n") - 1,
	}
	return pos, before + text[idx+len(marker):]
}

// Render joins lines and marks the selection, the inverse of ParseMarked.
func Render(lines []string, sel source.Range) string {
	marked := append([]string(nil), lines...)
	put := func(pos source.Position, marker string) {
		if pos.Row < 0 || pos.Row >= len(marked) {
			return
		}
		line := marked[pos.Row]
		col := min(max(pos.Column, 0), len(line))
		marked[pos.Row] = line[:col] + marker + line[col:]
	}

	if sel.IsEmpty() {
		put(sel.Start, CursorMarker)
	} else {
		// End first so the start column stays valid on a shared row.
		put(sel.End, SelectionEndMarker)
		put(sel.Start, SelectionStartMarker)
	}
	return strings.Join(marked, "\n")
}
