// Package rules provides the built-in keystroke behaviours for cstyle.
//
// # Behaviours
//
// IDs sort in fallthrough order, so Engine.Transform tries them as listed:
//
//   - CB001: doc-skeleton - Close a /*** banner comment when R is typed
//   - CB002: smart-newline - Context-aware indentation on Enter
//   - CB003: braces - Brace pairing with the { } ; } ladder, pair deletion
//   - CB004: arrows - Angle-bracket pairing on template lines
//   - CB005: parens - Parenthesis pairing and skip-over
//   - CB006: brackets - Square-bracket pairing and skip-over
//   - CB007: quotes - Quote pairing, wrapping and skip-over
//   - CB008: comment-delete - Explicit default deletion inside comments
//   - CB009: semicolon-skip - Type over an existing semicolon
//   - CB010: macro - Backslash alignment in multi-line #define macros
//
// # Registration
//
// RegisterAll adds every behaviour to a registry; the package init registers
// them with behaviour.DefaultRegistry.
package rules
