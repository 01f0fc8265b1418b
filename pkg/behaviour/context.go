package behaviour

import (
	"context"
	"strings"

	"github.com/yaklabco/cstyle/pkg/config"
	"github.com/yaklabco/cstyle/pkg/source"
)

// Settings holds the engine knobs behaviours read.
type Settings struct {
	BackslashColumn    int
	BracketLookback    int
	ClassBraceLookback int
	MacroLookback      int
}

// DefaultSettings returns the stock settings.
func DefaultSettings() Settings {
	return Settings{
		BackslashColumn:    config.DefaultBackslashColumn,
		BracketLookback:    config.DefaultBracketLookback,
		ClassBraceLookback: config.DefaultClassBraceLookback,
		MacroLookback:      config.DefaultMacroLookback,
	}
}

// SettingsFromConfig extracts Settings from cfg, keeping defaults for unset
// values.
func SettingsFromConfig(cfg *config.Config) Settings {
	s := DefaultSettings()
	if cfg == nil {
		return s
	}
	if cfg.BackslashColumn > 0 {
		s.BackslashColumn = cfg.BackslashColumn
	}
	if cfg.BracketLookback > 0 {
		s.BracketLookback = cfg.BracketLookback
	}
	if cfg.ClassBraceLookback > 0 {
		s.ClassBraceLookback = cfg.ClassBraceLookback
	}
	if cfg.MacroLookback > 0 {
		s.MacroLookback = cfg.MacroLookback
	}
	return s
}

// Context is everything a behaviour may read about one edit event.
//
// Like a request object it carries a context.Context; it is created per
// event and discarded after the call.
type Context struct {
	// Ctx is the context for cancellation.
	Ctx context.Context

	// Doc is the buffer before the edit.
	Doc source.Document

	// Action is the kind of edit.
	Action Action

	// Cursor is the cursor position (the lead of the selection).
	Cursor source.Position

	// Selection is the selection before the edit.
	Selection source.Range

	// Text is the inserted text (insertions only).
	Text string

	// Range is the range being deleted (deletions only).
	Range source.Range

	// TabSize is the indentation width.
	TabSize int

	// TabString is one level of indentation.
	TabString string

	// State is the syntactic state at the cursor row.
	State string

	// Settings are the resolved engine knobs.
	Settings Settings

	Collaborators

	tokens       []source.Token
	tokensLoaded bool
}

// NewInsertion builds a context for inserting text over selection.
func NewInsertion(doc source.Document, selection source.Range, text string) *Context {
	selection = source.NewRange(selection.Start, selection.End)
	return &Context{
		Ctx:       context.Background(),
		Doc:       doc,
		Action:    ActionInsertion,
		Cursor:    selection.End,
		Selection: selection,
		Text:      text,
		TabSize:   config.DefaultTabSize,
		TabString: strings.Repeat(" ", config.DefaultTabSize),
		State:     StateStart,
		Settings:  DefaultSettings(),
	}
}

// NewDeletion builds a context for deleting rng with the cursor at cursor.
func NewDeletion(doc source.Document, cursor source.Position, rng source.Range) *Context {
	return &Context{
		Ctx:       context.Background(),
		Doc:       doc,
		Action:    ActionDeletion,
		Cursor:    cursor,
		Selection: source.PointRange(cursor),
		Range:     source.NewRange(rng.Start, rng.End),
		TabSize:   config.DefaultTabSize,
		TabString: strings.Repeat(" ", config.DefaultTabSize),
		State:     StateStart,
		Settings:  DefaultSettings(),
	}
}

// Cancelled returns true if the context has been cancelled.
func (c *Context) Cancelled() bool {
	if c.Ctx == nil {
		return false
	}
	select {
	case <-c.Ctx.Done():
		return true
	default:
		return false
	}
}

// Line returns the cursor row.
func (c *Context) Line() string {
	return c.Doc.Line(c.Cursor.Row)
}

// LineUpToCursor returns the cursor row truncated at the cursor column.
func (c *Context) LineUpToCursor() string {
	return prefix(c.Line(), c.Cursor.Column)
}

// CharRight returns the byte right of the cursor, or "" at end of line.
func (c *Context) CharRight() string {
	return CharAt(c.Line(), c.Cursor.Column)
}

// CharLeft returns the byte left of the cursor, or "" at column 0.
func (c *Context) CharLeft() string {
	return CharAt(c.Line(), c.Cursor.Column-1)
}

// Selected returns the selected text, or "" for a bare cursor.
func (c *Context) Selected() string {
	if c.Selection.IsEmpty() {
		return ""
	}
	return c.Doc.TextRange(c.Selection)
}

// Deleted returns the text of the deletion range.
func (c *Context) Deleted() string {
	if c.Range.IsEmpty() {
		return ""
	}
	return c.Doc.TextRange(c.Range)
}

// Tokens returns the cursor row's tokens, tokenizing on first use. A row
// that starts inside a block comment opened on an earlier row begins with a
// comment token running through the closing */.
func (c *Context) Tokens() []source.Token {
	if !c.tokensLoaded {
		c.tokensLoaded = true
		if c.Tokenizer != nil {
			c.tokens = c.rowTokens(c.Selection.Start.Row)
		}
	}
	return c.tokens
}

func (c *Context) rowTokens(row int) []source.Token {
	line := c.Doc.Line(row)
	if row == 0 || !InComment(c.Tokenizer.State(c.Doc, row-1)) {
		return c.Tokenizer.Tokenize(line)
	}

	end := strings.Index(line, "*/")
	if end < 0 {
		if line == "" {
			return nil
		}
		return []source.Token{{Type: source.TokenComment, Value: line}}
	}

	end += len("*/")
	tokens := []source.Token{{Type: source.TokenComment, Value: line[:end]}}
	for _, tok := range c.Tokenizer.Tokenize(line[end:]) {
		if tok.Type == source.TokenComment && len(tokens) == 1 {
			tokens[0].Value += tok.Value
			continue
		}
		tokens = append(tokens, tok)
	}
	return tokens
}

// Indent returns the leading whitespace of line, through the Indenter when
// one is configured.
func (c *Context) Indent(line string) string {
	if c.Indenter != nil {
		return c.Indenter.Indent(line)
	}
	return LeadingWhitespace(line)
}

// Lines returns the document rows.
func (c *Context) Lines() []string {
	return c.Doc.Lines()
}

// CharAt returns the byte of s at i, or "" when i is out of range.
func CharAt(s string, i int) string {
	if i < 0 || i >= len(s) {
		return ""
	}
	return s[i : i+1]
}

// LeadingWhitespace returns the run of spaces and tabs that starts s.
func LeadingWhitespace(s string) string {
	return s[:len(s)-len(strings.TrimLeft(s, " \t"))]
}

func prefix(s string, n int) string {
	if n < 0 {
		return ""
	}
	if n > len(s) {
		return s
	}
	return s[:n]
}
