package rules

import "github.com/yaklabco/cstyle/pkg/behaviour"

// RegisterAll registers all built-in behaviours with the given registry.
func RegisterAll(registry *behaviour.Registry) {
	registry.Register(NewDocSkeletonBehaviour())   // CB001
	registry.Register(NewNewlineBehaviour())       // CB002
	registry.Register(NewBraceBehaviour())         // CB003
	registry.Register(NewArrowsBehaviour())        // CB004
	registry.Register(NewParensBehaviour())        // CB005
	registry.Register(NewBracketsBehaviour())      // CB006
	registry.Register(NewQuoteBehaviour())         // CB007
	registry.Register(NewCommentDeleteBehaviour()) // CB008
	registry.Register(NewSemicolonBehaviour())     // CB009
	registry.Register(NewMacroBehaviour())         // CB010
}

// init registers all built-in behaviours with the default registry.
//
//nolint:gochecknoinits // Init is intentional for automatic behaviour registration
func init() {
	RegisterAll(behaviour.DefaultRegistry)
}
