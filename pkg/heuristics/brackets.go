package heuristics

import (
	"github.com/yaklabco/cstyle/pkg/behaviour"
	"github.com/yaklabco/cstyle/pkg/source"
)

// Brackets is the default behaviour.BracketMatcher.
//
// String and character literals and // comment tails are skipped; block
// comments are not tracked.
type Brackets struct{}

// NewBrackets creates a Brackets matcher.
func NewBrackets() *Brackets {
	return &Brackets{}
}

// FindMatchingBracket finds the partner of the bracket ch at from. Walking
// backward, ch is a closing bracket: the row of from is read right to left
// starting at from's column and earlier rows are read whole. Forward, ch is
// an opening bracket and rows are read left to right starting at from. The
// search gives up after maxLookback rows.
func (b *Brackets) FindMatchingBracket(
	ch rune,
	lines []string,
	from source.Position,
	maxLookback int,
	dir behaviour.Direction,
) (source.Position, bool) {
	if from.Row < 0 || from.Row >= len(lines) || maxLookback <= 0 {
		return source.Position{}, false
	}

	var target rune
	var ok bool
	if dir == behaviour.Backward {
		target, ok = Opening(ch)
	} else {
		target, ok = Complement(ch)
	}
	if !ok {
		return source.Position{}, false
	}

	depth := 0
	for steps := 0; steps < maxLookback; steps++ {
		row := from.Row - steps
		if dir == behaviour.Forward {
			row = from.Row + steps
		}
		if row < 0 || row >= len(lines) {
			return source.Position{}, false
		}

		line := lines[row]
		lo, hi := 0, len(line)-1
		if steps == 0 {
			if dir == behaviour.Backward {
				hi = min(hi, from.Column)
			} else {
				lo = max(lo, from.Column)
			}
		}

		code := codeMask(line)
		for k := 0; k <= hi-lo; k++ {
			col := lo + k
			if dir == behaviour.Backward {
				col = hi - k
			}
			if !code[col] {
				continue
			}
			switch rune(line[col]) {
			case ch:
				depth++
			case target:
				depth--
				if depth == 0 {
					return source.Position{Row: row, Column: col}, true
				}
			}
		}
	}

	return source.Position{}, false
}

// codeMask marks the bytes of line that are outside literals and comments.
func codeMask(line string) []bool {
	mask := make([]bool, len(line))
	var quote byte
	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case quote != 0:
			if c == '\\' {
				i++
				continue
			}
			if c == quote {
				quote = 0
			}
		case c == '"' || c == '\'':
			quote = c
		case c == '/' && i+1 < len(line) && line[i+1] == '/':
			return mask
		default:
			mask[i] = true
		}
	}
	return mask
}
