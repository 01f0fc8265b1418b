package behaviour

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockBehaviour answers every event with a fixed function.
type mockBehaviour struct {
	BaseBehaviour
	apply func(*Context) Directive
}

func newMock(id, name string, class TokenClass, apply func(*Context) Directive, actions ...Action) *mockBehaviour {
	if len(actions) == 0 {
		actions = []Action{ActionInsertion}
	}
	return &mockBehaviour{
		BaseBehaviour: NewBaseBehaviour(id, name, "mock", nil, class, actions...),
		apply:         apply,
	}
}

func (m *mockBehaviour) Apply(ctx *Context) Directive {
	if m.apply == nil {
		return None()
	}
	return m.apply(ctx)
}

func TestRegistry_Get(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	reg.Register(newMock("CB005", "parens", ClassParens, nil))

	tests := []struct {
		key    string
		wantID string
		wantOK bool
	}{
		{"CB005", "CB005", true},
		{"parens", "CB005", true},
		{"nonexistent", "", false},
	}

	for _, tt := range tests {
		got, ok := reg.Get(tt.key)
		assert.Equal(t, tt.wantOK, ok, "key: %s", tt.key)
		if tt.wantOK {
			assert.Equal(t, tt.wantID, got.ID(), "key: %s", tt.key)
		}

		id, ok := reg.Resolve(tt.key)
		assert.Equal(t, tt.wantOK, ok)
		assert.Equal(t, tt.wantID, id)
	}
}

func TestRegistry_BehavioursSortedByID(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	reg.Register(newMock("CB010", "macro", ClassMacro, nil))
	reg.Register(newMock("CB002", "newline", ClassNewline, nil))
	reg.Register(newMock("CB005", "parens", ClassParens, nil))

	var ids []string
	for _, b := range reg.Behaviours() {
		ids = append(ids, b.ID())
	}
	assert.Equal(t, []string{"CB002", "CB005", "CB010"}, ids)
	assert.Equal(t, ids, reg.IDs())
	assert.Equal(t, 3, reg.Len())
}

func TestRegistry_Route(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	reg.Register(newMock("CB003", "braces", ClassBraces, nil, ActionInsertion, ActionDeletion))
	reg.Register(newMock("CB008", "comment", ClassComment, nil, ActionDeletion))

	require.Len(t, reg.Route(ClassBraces, ActionInsertion), 1)
	require.Len(t, reg.Route(ClassBraces, ActionDeletion), 1)
	assert.Empty(t, reg.Route(ClassComment, ActionInsertion))
	assert.Empty(t, reg.Route(ClassMacro, ActionInsertion))
}

func TestRegistry_RegisterReplaces(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	reg.Register(newMock("CB001", "old-name", ClassDocSkeleton, nil))
	reg.Register(newMock("CB001", "new-name", ClassNewline, nil))

	assert.Equal(t, 1, reg.Len())
	_, ok := reg.Get("old-name")
	assert.False(t, ok)
	assert.Empty(t, reg.Route(ClassDocSkeleton, ActionInsertion))
	assert.Len(t, reg.Route(ClassNewline, ActionInsertion), 1)
}
