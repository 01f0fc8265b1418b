package behaviour

// BaseBehaviour provides a default implementation of the Behaviour interface.
// Embed this in behaviour implementations and override Apply.
//
// Fields are unexported to avoid stutter and name collisions with interface methods.
type BaseBehaviour struct {
	id      string
	name    string
	desc    string
	tags    []string
	class   TokenClass
	actions []Action
}

// NewBaseBehaviour creates a BaseBehaviour with the given properties.
func NewBaseBehaviour(id, name, desc string, tags []string, class TokenClass, actions ...Action) BaseBehaviour {
	return BaseBehaviour{
		id:      id,
		name:    name,
		desc:    desc,
		tags:    tags,
		class:   class,
		actions: actions,
	}
}

// ID returns the unique identifier for this behaviour.
func (b *BaseBehaviour) ID() string {
	return b.id
}

// Name returns the human-readable name of the behaviour.
func (b *BaseBehaviour) Name() string {
	return b.name
}

// Description returns what the behaviour does.
func (b *BaseBehaviour) Description() string {
	return b.desc
}

// DefaultEnabled returns whether the behaviour is enabled by default.
func (b *BaseBehaviour) DefaultEnabled() bool {
	return true
}

// Tags returns categorization tags for this behaviour.
func (b *BaseBehaviour) Tags() []string {
	return b.tags
}

// Class returns the token class the behaviour registers under.
func (b *BaseBehaviour) Class() TokenClass {
	return b.class
}

// Actions returns the edit actions the behaviour answers.
func (b *BaseBehaviour) Actions() []Action {
	return b.actions
}

// Apply must be overridden by concrete behaviours.
func (b *BaseBehaviour) Apply(_ *Context) Directive {
	return None()
}
