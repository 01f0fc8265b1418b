// Package configloader provides configuration loading and resolution.
// It implements XDG-compliant configuration discovery, hierarchical merging,
// environment variable support and validation.
package configloader

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/yaklabco/cstyle/pkg/behaviour"
	"github.com/yaklabco/cstyle/pkg/config"
	"github.com/yaklabco/cstyle/pkg/fsutil"
)

// configFilePermissions is the file mode for configuration files (world-readable).
const configFilePermissions = 0644

// ErrConfigExists is returned by WriteConfigFile when the target exists and
// overwriting was not requested.
var ErrConfigExists = errors.New("config file already exists")

// LoadOptions controls configuration loading behavior.
type LoadOptions struct {
	// WorkingDir is the directory to search from for project config.
	// Defaults to current working directory if empty.
	WorkingDir string

	// ExplicitPath is an explicit config file path (from --config flag).
	ExplicitPath string

	// IgnoreSystemConfig skips loading system-level configuration.
	IgnoreSystemConfig bool

	// IgnoreUserConfig skips loading user-level configuration.
	IgnoreUserConfig bool

	// IgnoreProjectConfig skips loading project-level configuration.
	IgnoreProjectConfig bool

	// IgnoreEnv skips loading environment variables.
	IgnoreEnv bool

	// CLIConfig contains configuration from CLI flags.
	// These take highest precedence.
	CLIConfig *config.Config

	// Registry resolves behaviour names to IDs. Defaults to
	// behaviour.DefaultRegistry.
	Registry *behaviour.Registry
}

// LoadResult contains the resolved configuration and metadata.
type LoadResult struct {
	// Config is the final merged configuration.
	Config *config.Config

	// Paths contains the discovered configuration file paths.
	Paths *ConfigPaths

	// LoadedFrom lists the files that were actually loaded (in order).
	LoadedFrom []string

	// Warnings contains non-fatal issues encountered during loading.
	Warnings []string
}

// Load resolves the final configuration by merging all sources.
// Precedence (highest to lowest):
//  1. CLI flags (opts.CLIConfig)
//  2. Environment variables (CSTYLE_*)
//  3. Explicit config file (opts.ExplicitPath)
//  4. Project config (.cstyle.yml upward search)
//  5. User config ($XDG_CONFIG_HOME/cstyle/config.yaml)
//  6. System config (/etc/cstyle/config.yaml)
//  7. Defaults
func Load(ctx context.Context, opts LoadOptions) (*LoadResult, error) {
	workDir := opts.WorkingDir
	if workDir == "" {
		var err error
		workDir, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("get working directory: %w", err)
		}
	}

	registry := opts.Registry
	if registry == nil {
		registry = behaviour.DefaultRegistry
	}

	paths, err := DiscoverPaths(ctx, workDir)
	if err != nil {
		return nil, fmt.Errorf("discover paths: %w", err)
	}
	if opts.ExplicitPath != "" {
		paths.Explicit = opts.ExplicitPath
	}

	result := &LoadResult{Paths: paths}
	cfg := config.NewConfig()

	layers := []struct {
		name   string
		path   string
		ignore bool
	}{
		{name: "system", path: paths.System, ignore: opts.IgnoreSystemConfig},
		{name: "user", path: paths.User, ignore: opts.IgnoreUserConfig},
		{name: "project", path: paths.Project, ignore: opts.IgnoreProjectConfig},
		{name: "explicit", path: paths.Explicit},
	}

	for _, layer := range layers {
		if layer.ignore || layer.path == "" {
			continue
		}
		layerCfg, err := loadConfigFile(layer.path)
		if err != nil {
			return nil, fmt.Errorf("load %s config: %w", layer.name, err)
		}
		cfg = merge(cfg, layerCfg)
		result.LoadedFrom = append(result.LoadedFrom, layer.path)
	}

	if !opts.IgnoreEnv {
		if err := LoadFromEnv(cfg); err != nil {
			return nil, fmt.Errorf("load environment: %w", err)
		}
	}

	if opts.CLIConfig != nil {
		cfg = merge(cfg, opts.CLIConfig)
	}

	// Allow behaviour names like "smart-newline" as config keys.
	normalizeBehaviourKeys(cfg, registry, result)

	validation := Validate(cfg, registry)
	if !validation.Valid() {
		return nil, &validation.Errors[0]
	}
	for _, w := range validation.Warnings {
		result.Warnings = append(result.Warnings, w.Error())
	}

	result.Config = cfg
	return result, nil
}

// loadConfigFile loads a configuration from a YAML file.
func loadConfigFile(path string) (*config.Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	cfg, err := config.FromYAML(content)
	if err != nil {
		return nil, err
	}

	if validation := ValidateWithFile(cfg, path, nil); !validation.Valid() {
		return nil, &validation.Errors[0]
	}
	return cfg, nil
}

// WriteConfigFile writes content to path. An existing file is only replaced
// when overwrite is set.
func WriteConfigFile(ctx context.Context, path string, content []byte, overwrite bool) error {
	if !overwrite && fileExists(path) {
		return fmt.Errorf("%s: %w", path, ErrConfigExists)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory: %w", err)
		}
	}

	if err := fsutil.WriteAtomic(ctx, path, content, configFilePermissions); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	return nil
}

// normalizeBehaviourKeys converts behaviour names to canonical IDs in the
// behaviours map. If a behaviour is configured under both its ID and its
// name, the last key seen wins and a warning is recorded.
func normalizeBehaviourKeys(cfg *config.Config, registry *behaviour.Registry, result *LoadResult) {
	if len(cfg.Behaviours) == 0 {
		return
	}

	normalized := make(map[string]config.BehaviourConfig, len(cfg.Behaviours))
	seenIDs := make(map[string]string) // canonical ID -> original key

	for _, key := range sortedKeys(cfg.Behaviours) {
		bc := cfg.Behaviours[key]

		id, found := registry.Resolve(key)
		if !found {
			// Unknown behaviour: keep as-is, validation warns about it.
			normalized[key] = bc
			continue
		}

		if originalKey, exists := seenIDs[id]; exists {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("duplicate behaviour configuration: %q and %q both refer to %s; using %q",
					originalKey, key, id, key))
		}

		seenIDs[id] = key
		normalized[id] = bc
	}

	cfg.Behaviours = normalized
}
