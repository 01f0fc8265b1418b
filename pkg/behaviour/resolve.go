package behaviour

import (
	"slices"

	"github.com/yaklabco/cstyle/pkg/config"
)

// IsEnabled reports whether b runs under cfg.
//
// Precedence, lowest first: the behaviour default, the behaviours map in the
// config (keyed by ID or name), then the CLI enable and disable lists.
func IsEnabled(b Behaviour, cfg *config.Config) bool {
	enabled := b.DefaultEnabled()
	if cfg == nil {
		return enabled
	}

	for _, key := range []string{b.Name(), b.ID()} {
		if bc, ok := cfg.Behaviours[key]; ok && bc.Enabled != nil {
			enabled = *bc.Enabled
		}
	}

	if matches(cfg.EnableBehaviours, b) {
		enabled = true
	}
	if matches(cfg.DisableBehaviours, b) {
		enabled = false
	}

	return enabled
}

// ResolveBehaviours returns the enabled behaviours in ID order.
func ResolveBehaviours(registry *Registry, cfg *config.Config) []Behaviour {
	var resolved []Behaviour
	for _, b := range registry.Behaviours() {
		if IsEnabled(b, cfg) {
			resolved = append(resolved, b)
		}
	}
	return resolved
}

func matches(keys []string, b Behaviour) bool {
	return slices.Contains(keys, b.ID()) || slices.Contains(keys, b.Name())
}
