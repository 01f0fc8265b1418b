// Package heuristics provides the default line-scanning collaborators for the
// behaviour engine: bracket matching, class-style brace lookup and indentation.
//
// The scans are deliberately shallow. They look at raw text a bounded number
// of rows at a time and never parse C++.
package heuristics

// Complement returns the closing partner of an opening bracket.
func Complement(open rune) (rune, bool) {
	switch open {
	case '(':
		return ')', true
	case '[':
		return ']', true
	case '{':
		return '}', true
	case '<':
		return '>', true
	default:
		return 0, false
	}
}

// Opening returns the opening partner of a closing bracket.
func Opening(closing rune) (rune, bool) {
	switch closing {
	case ')':
		return '(', true
	case ']':
		return '[', true
	case '}':
		return '{', true
	case '>':
		return '<', true
	default:
		return 0, false
	}
}
