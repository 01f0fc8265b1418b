package configloader

import (
	"maps"
	"slices"

	"github.com/yaklabco/cstyle/pkg/config"
)

// merge combines two configurations, with override taking precedence over base.
// The merge follows these rules:
//   - Scalar values: override overwrites base if override is non-zero
//   - Pointer booleans: override overwrites base if set
//   - Maps: deep merge, with override's values taking precedence
//   - Slices: override replaces base entirely if override is non-nil
func merge(base, override *config.Config) *config.Config {
	if base == nil {
		return override
	}
	if override == nil {
		return base
	}

	result := *base

	mergeInt(&result.TabSize, override.TabSize)
	mergeInt(&result.BackslashColumn, override.BackslashColumn)
	mergeInt(&result.BracketLookback, override.BracketLookback)
	mergeInt(&result.ClassBraceLookback, override.ClassBraceLookback)
	mergeInt(&result.MacroLookback, override.MacroLookback)
	mergeInt(&result.StateLookback, override.StateLookback)
	mergeInt(&result.Jobs, override.Jobs)

	if override.SoftTabs != nil {
		result.SoftTabs = config.Bool(*override.SoftTabs)
	}
	if override.TokenCache != nil {
		result.TokenCache = config.Bool(*override.TokenCache)
	}

	result.Behaviours = mergeBehaviours(base.Behaviours, override.Behaviours)

	if override.EnableBehaviours != nil {
		result.EnableBehaviours = slices.Clone(override.EnableBehaviours)
	}
	if override.DisableBehaviours != nil {
		result.DisableBehaviours = slices.Clone(override.DisableBehaviours)
	}

	return &result
}

func mergeInt(dst *int, override int) {
	if override != 0 {
		*dst = override
	}
}

// mergeBehaviours performs a deep merge of behaviour configurations.
func mergeBehaviours(base, override map[string]config.BehaviourConfig) map[string]config.BehaviourConfig {
	if base == nil && override == nil {
		return nil
	}

	result := make(map[string]config.BehaviourConfig, len(base)+len(override))
	maps.Copy(result, base)

	for key, val := range override {
		existing := result[key]
		if val.Enabled != nil {
			existing.Enabled = config.Bool(*val.Enabled)
		}
		result[key] = existing
	}

	return result
}

// MergeAll merges multiple configurations in order, with later configs taking precedence.
func MergeAll(configs ...*config.Config) *config.Config {
	if len(configs) == 0 {
		return nil
	}

	result := configs[0]
	for _, cfg := range configs[1:] {
		result = merge(result, cfg)
	}
	return result
}

func sortedKeys[V any](m map[string]V) []string {
	return slices.Sorted(maps.Keys(m))
}
