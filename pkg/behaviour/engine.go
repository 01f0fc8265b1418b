package behaviour

import (
	"context"
	"io"

	"github.com/charmbracelet/log"

	"github.com/yaklabco/cstyle/pkg/config"
	"github.com/yaklabco/cstyle/pkg/edit"
	"github.com/yaklabco/cstyle/pkg/source"
)

// Engine routes edit events to behaviours and validates what they return.
// It is safe for concurrent use once constructed.
type Engine struct {
	// Registry holds all available behaviours.
	Registry *Registry

	// Config decides which behaviours are enabled and carries the settings.
	Config *config.Config

	// Collaborators are handed to every context the engine builds.
	Collaborators Collaborators

	// Logger receives debug traces. Nil discards them.
	Logger *log.Logger
}

// NewEngine creates a new Engine.
func NewEngine(registry *Registry, cfg *config.Config, collab Collaborators) *Engine {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	return &Engine{
		Registry:      registry,
		Config:        cfg,
		Collaborators: collab,
	}
}

// Insertion builds a context for inserting text over selection, filling in
// the engine's settings, collaborators and the syntactic state.
func (e *Engine) Insertion(doc source.Document, selection source.Range, text string) *Context {
	ec := NewInsertion(doc, selection, text)
	e.prepare(ec)
	return ec
}

// Deletion builds a context for deleting rng with the cursor at cursor.
func (e *Engine) Deletion(doc source.Document, cursor source.Position, rng source.Range) *Context {
	ec := NewDeletion(doc, cursor, rng)
	e.prepare(ec)
	return ec
}

func (e *Engine) prepare(ec *Context) {
	ec.TabSize = e.Config.EffectiveTabSize()
	ec.TabString = e.Config.TabString()
	ec.Settings = SettingsFromConfig(e.Config)
	ec.Collaborators = e.Collaborators
	if e.Collaborators.Tokenizer != nil {
		ec.State = e.Collaborators.Tokenizer.State(ec.Doc, ec.Cursor.Row)
	}
}

// Dispatch runs the behaviours registered for class and the context's action.
// The first valid non-None directive wins.
func (e *Engine) Dispatch(ctx context.Context, class TokenClass, ec *Context) Result {
	return e.run(ctx, e.Registry.Route(class, ec.Action), ec)
}

// Transform runs every enabled behaviour answering the context's action, in
// registration order. The first valid non-None directive wins.
func (e *Engine) Transform(ctx context.Context, ec *Context) Result {
	return e.run(ctx, e.Registry.Behaviours(), ec)
}

func (e *Engine) run(ctx context.Context, candidates []Behaviour, ec *Context) Result {
	if ctx == nil {
		ctx = context.Background()
	}
	ec.Ctx = ctx
	logger := e.logger()

	for _, b := range candidates {
		if ec.Cancelled() {
			logger.Debug("event cancelled", "error", ctx.Err())
			return Result{Directive: None()}
		}
		if !Handles(b, ec.Action) || !IsEnabled(b, e.Config) {
			continue
		}

		d := b.Apply(ec)
		if d.IsNone() {
			continue
		}

		if err := validate(ec, d); err != nil {
			logger.Debug("directive rejected",
				"behaviour", b.ID(),
				"cursor", ec.Cursor.String(),
				"error", err)
			continue
		}

		logger.Debug("behaviour fired",
			"behaviour", b.ID(),
			"action", string(ec.Action),
			"cursor", ec.Cursor.String(),
			"directive", d.String())
		return Result{Directive: d, BehaviourID: b.ID()}
	}

	return Result{Directive: None()}
}

func validate(ec *Context, d Directive) error {
	if ec.Action == ActionDeletion {
		return edit.ValidateDeletion(ec.Doc, ec.Range, d)
	}
	return edit.ValidateInsertion(ec.Doc, ec.Selection, d)
}

func (e *Engine) logger() *log.Logger {
	if e.Logger != nil {
		return e.Logger
	}
	return discard
}

//nolint:gochecknoglobals // shared sink for engines without a logger
var discard = log.New(io.Discard)
