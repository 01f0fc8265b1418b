package behaviour

import (
	"cmp"
	"slices"
	"sync"
)

// routeKey indexes behaviours by the dispatch tag.
type routeKey struct {
	class  TokenClass
	action Action
}

// Registry holds all registered behaviours.
type Registry struct {
	mu     sync.RWMutex
	byID   map[string]Behaviour
	byName map[string]Behaviour
	routes map[routeKey][]Behaviour
}

// NewRegistry creates an empty behaviour registry.
func NewRegistry() *Registry {
	return &Registry{
		byID:   make(map[string]Behaviour),
		byName: make(map[string]Behaviour),
		routes: make(map[routeKey][]Behaviour),
	}
}

// Register adds a behaviour to the registry.
// If a behaviour with the same ID already exists, it is replaced.
func (r *Registry) Register(b Behaviour) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if old, ok := r.byID[b.ID()]; ok {
		delete(r.byName, old.Name())
		for _, action := range old.Actions() {
			key := routeKey{class: old.Class(), action: action}
			r.routes[key] = slices.DeleteFunc(r.routes[key], func(x Behaviour) bool {
				return x.ID() == old.ID()
			})
		}
	}

	r.byID[b.ID()] = b
	r.byName[b.Name()] = b
	for _, action := range b.Actions() {
		key := routeKey{class: b.Class(), action: action}
		routed := append(r.routes[key], b)
		slices.SortFunc(routed, byID)
		r.routes[key] = routed
	}
}

// Get retrieves a behaviour by ID or name.
func (r *Registry) Get(key string) (Behaviour, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if b, ok := r.byID[key]; ok {
		return b, true
	}
	b, ok := r.byName[key]
	return b, ok
}

// Resolve returns the canonical ID for an ID or name.
func (r *Registry) Resolve(key string) (string, bool) {
	b, ok := r.Get(key)
	if !ok {
		return "", false
	}
	return b.ID(), true
}

// Route returns the behaviours registered for class and action, in ID order.
func (r *Registry) Route(class TokenClass, action Action) []Behaviour {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.routes[routeKey{class: class, action: action}])
}

// Behaviours returns all registered behaviours sorted by ID, which is also
// their fallthrough order.
func (r *Registry) Behaviours() []Behaviour {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]Behaviour, 0, len(r.byID))
	for _, b := range r.byID {
		result = append(result, b)
	}
	slices.SortFunc(result, byID)
	return result
}

// IDs returns all registered behaviour IDs in sorted order.
func (r *Registry) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]string, 0, len(r.byID))
	for id := range r.byID {
		result = append(result, id)
	}
	slices.Sort(result)
	return result
}

// Len returns the number of registered behaviours.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byID)
}

func byID(a, b Behaviour) int {
	return cmp.Compare(a.ID(), b.ID())
}

// DefaultRegistry is the global registry for built-in behaviours.
// Behaviours register themselves during init() in package rules.
//
//nolint:gochecknoglobals // Global registry is intentional for behaviour registration
var DefaultRegistry = NewRegistry()
