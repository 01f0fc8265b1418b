// Package behaviour provides the keystroke behaviour interface, registry and
// dispatch engine for cstyle.
package behaviour

import "github.com/yaklabco/cstyle/pkg/edit"

// TokenClass is the lexical tag a host attaches to a keystroke. Behaviours
// register under one class.
type TokenClass string

// Token classes with registered behaviours.
const (
	ClassDocSkeleton         TokenClass = "R"
	ClassNewline             TokenClass = "newline"
	ClassBraces              TokenClass = "braces"
	ClassArrows              TokenClass = "arrows"
	ClassParens              TokenClass = "parens"
	ClassBrackets            TokenClass = "brackets"
	ClassStringDQuotes       TokenClass = "string_dquotes"
	ClassComment             TokenClass = "comment"
	ClassPunctuationOperator TokenClass = "punctuation.operator"
	ClassMacro               TokenClass = "macro"
)

// Action is the kind of edit event.
type Action string

// Edit actions.
const (
	ActionInsertion Action = "insertion"
	ActionDeletion  Action = "deletion"
)

// Directive, Placement and their constructors live in pkg/edit; these
// aliases keep behaviour code readable.
type (
	Directive = edit.Directive
	Placement = edit.Placement
)

// Behaviour defines the interface that every keystroke behaviour implements.
type Behaviour interface {
	// ID returns the unique identifier for this behaviour (e.g., "CB003").
	ID() string

	// Name returns the human-readable name of the behaviour.
	Name() string

	// Description returns what the behaviour does.
	Description() string

	// DefaultEnabled returns whether the behaviour is enabled by default.
	DefaultEnabled() bool

	// Tags returns categorization tags (e.g., ["pairing"]).
	Tags() []string

	// Class returns the token class the behaviour registers under.
	Class() TokenClass

	// Actions returns the edit actions the behaviour answers.
	Actions() []Action

	// Apply decides the response to one edit event.
	//
	// Behaviours must:
	//   - Return a None directive when they have no opinion.
	//   - Never mutate the context's document.
	//   - Bound every backward scan.
	Apply(ctx *Context) Directive
}

// Handles reports whether b answers action.
func Handles(b Behaviour, action Action) bool {
	for _, a := range b.Actions() {
		if a == action {
			return true
		}
	}
	return false
}
