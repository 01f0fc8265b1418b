package behaviour

import "github.com/yaklabco/cstyle/pkg/source"

// Syntactic states reported by a Tokenizer.
const (
	StateStart    = "start"
	StateComment  = "comment"
	StateDocStart = "doc-start"
)

// InComment reports whether state is one of the block comment states.
func InComment(state string) bool {
	return state == StateComment || state == StateDocStart
}

// Direction selects which way a bracket search walks.
type Direction int

// Bracket search directions.
const (
	Backward Direction = iota
	Forward
)

// Tokenizer splits lines into typed tokens and reports the syntactic state.
type Tokenizer interface {
	// Tokenize returns tokens whose values concatenate to line.
	Tokenize(line string) []source.Token

	// State returns the state at the end of row.
	State(doc source.Document, row int) string
}

// BracketMatcher finds the bracket matching ch within a bounded number of rows.
// The search starts at from, the position of ch itself.
type BracketMatcher interface {
	FindMatchingBracket(ch rune, lines []string, from source.Position, maxLookback int, dir Direction) (source.Position, bool)
}

// ClassBraceFinder looks upward for a class-style declaration head.
type ClassBraceFinder interface {
	FindClassStyleOpenBraceRow(doc source.Document, fromRow, maxLookback int) (source.Position, bool)
}

// Indenter computes indentation strings.
type Indenter interface {
	// Indent returns the leading whitespace of line.
	Indent(line string) string

	// NextLineIndent returns the indentation for the row after line.
	NextLineIndent(state, line, tab string, tabSize, row int) string
}

// Collaborators bundles the services behaviours consult. Any of them may be
// nil; behaviours that need a missing collaborator return None.
type Collaborators struct {
	Tokenizer   Tokenizer
	Brackets    BracketMatcher
	ClassBraces ClassBraceFinder
	Indenter    Indenter
}
