// Package config defines core configuration types for cstyle.
// These types are pure data structures with no dependency on the loader.
package config

import "strings"

// Default engine settings.
const (
	DefaultTabSize            = 4
	DefaultBackslashColumn    = 62
	DefaultBracketLookback    = 200
	DefaultClassBraceLookback = 20
	DefaultMacroLookback      = 200
	DefaultStateLookback      = 200
)

// BehaviourConfig holds per-behaviour configuration.
type BehaviourConfig struct {
	Enabled *bool `mapstructure:"enabled" yaml:"enabled"`
}

// Config is the root configuration structure for cstyle.
type Config struct {
	// TabSize is the indentation width in columns.
	TabSize int `mapstructure:"tab_size" yaml:"tab_size"`

	// SoftTabs selects spaces (true) or a hard tab (false) as the tab string.
	SoftTabs *bool `mapstructure:"soft_tabs" yaml:"soft_tabs"`

	// BackslashColumn is the column macro continuation backslashes align to.
	BackslashColumn int `mapstructure:"backslash_column" yaml:"backslash_column"`

	// BracketLookback caps the rows scanned when matching brackets.
	BracketLookback int `mapstructure:"bracket_lookback" yaml:"bracket_lookback"`

	// ClassBraceLookback caps the rows scanned for a class-style declaration head.
	ClassBraceLookback int `mapstructure:"class_brace_lookback" yaml:"class_brace_lookback"`

	// MacroLookback caps the rows scanned when deciding whether a row is in a macro.
	MacroLookback int `mapstructure:"macro_lookback" yaml:"macro_lookback"`

	// StateLookback caps the rows tokenized when computing the syntactic state.
	StateLookback int `mapstructure:"state_lookback" yaml:"state_lookback"`

	// TokenCache enables memoisation of line tokenization.
	TokenCache *bool `mapstructure:"token_cache" yaml:"token_cache"`

	// Behaviours contains per-behaviour configuration keyed by behaviour ID.
	Behaviours map[string]BehaviourConfig `mapstructure:"behaviours" yaml:"behaviours"`

	// CLI-level options (not persisted to config files).

	// EnableBehaviours contains behaviour IDs to explicitly enable.
	EnableBehaviours []string `mapstructure:"-" yaml:"-"`

	// DisableBehaviours contains behaviour IDs to explicitly disable.
	DisableBehaviours []string `mapstructure:"-" yaml:"-"`

	// Jobs specifies the number of parallel scenario workers.
	Jobs int `mapstructure:"-" yaml:"-"`
}

// NewConfig returns a Config with sensible defaults.
func NewConfig() *Config {
	return &Config{
		TabSize:            DefaultTabSize,
		SoftTabs:           Bool(true),
		BackslashColumn:    DefaultBackslashColumn,
		BracketLookback:    DefaultBracketLookback,
		ClassBraceLookback: DefaultClassBraceLookback,
		MacroLookback:      DefaultMacroLookback,
		StateLookback:      DefaultStateLookback,
		TokenCache:         Bool(true),
		Behaviours:         make(map[string]BehaviourConfig),
		Jobs:               0, // 0 means use NumCPU
	}
}

// Bool returns a pointer to b.
func Bool(b bool) *bool {
	return &b
}

// UseSoftTabs reports whether indentation uses spaces. Unset means true.
func (c *Config) UseSoftTabs() bool {
	return c == nil || c.SoftTabs == nil || *c.SoftTabs
}

// UseTokenCache reports whether tokenization is memoised. Unset means true.
func (c *Config) UseTokenCache() bool {
	return c == nil || c.TokenCache == nil || *c.TokenCache
}

// TabString returns one level of indentation.
func (c *Config) TabString() string {
	if !c.UseSoftTabs() {
		return "\t"
	}
	size := DefaultTabSize
	if c != nil && c.TabSize > 0 {
		size = c.TabSize
	}
	return strings.Repeat(" ", size)
}

// EffectiveTabSize returns TabSize, or the default when unset.
func (c *Config) EffectiveTabSize() int {
	if c == nil || c.TabSize <= 0 {
		return DefaultTabSize
	}
	return c.TabSize
}
