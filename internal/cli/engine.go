package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/yaklabco/cstyle/internal/configloader"
	"github.com/yaklabco/cstyle/internal/logging"
	"github.com/yaklabco/cstyle/pkg/behaviour"
	_ "github.com/yaklabco/cstyle/pkg/behaviour/rules" // Register built-in behaviours
	"github.com/yaklabco/cstyle/pkg/config"
	"github.com/yaklabco/cstyle/pkg/heuristics"
	"github.com/yaklabco/cstyle/pkg/lexer"
)

// engineFlags are the config overrides shared by every command that builds
// an engine.
type engineFlags struct {
	tabSize         int
	hardTabs        bool
	backslashColumn int
	enable          []string
	disable         []string
}

func addEngineFlags(cmd *cobra.Command, flags *engineFlags) {
	cmd.Flags().IntVar(&flags.tabSize, "tab-size", 0, "indentation width (0 = from config)")
	cmd.Flags().BoolVar(&flags.hardTabs, "hard-tabs", false, "indent with a tab character instead of spaces")
	cmd.Flags().IntVar(&flags.backslashColumn, "backslash-column", 0,
		"column macro backslashes align to (0 = from config)")
	cmd.Flags().StringSliceVar(&flags.enable, "enable", nil, "behaviour IDs or names to enable")
	cmd.Flags().StringSliceVar(&flags.disable, "disable", nil, "behaviour IDs or names to disable")
}

// cliConfig builds the highest-precedence config layer from flags. Only
// flags the user set are carried.
func (f *engineFlags) cliConfig(cmd *cobra.Command) *config.Config {
	cfg := &config.Config{
		TabSize:           f.tabSize,
		BackslashColumn:   f.backslashColumn,
		EnableBehaviours:  f.enable,
		DisableBehaviours: f.disable,
	}
	if cmd.Flags().Changed("hard-tabs") {
		cfg.SoftTabs = config.Bool(!f.hardTabs)
	}
	return cfg
}

// loadConfig resolves the layered configuration for cmd, logging warnings.
func loadConfig(cmd *cobra.Command, cliCfg *config.Config) (*config.Config, error) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	logger := logging.FromContext(ctx)

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("get config flag: %w", err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("get working directory: %w", err)
	}

	loadResult, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
		CLIConfig:    cliCfg,
		Registry:     behaviour.DefaultRegistry,
	})
	if err != nil {
		return nil, errors.Join(ErrConfig, err)
	}

	for _, warning := range loadResult.Warnings {
		logger.Warn(warning)
	}

	if len(loadResult.LoadedFrom) > 0 {
		logger.Debug("loaded configuration from", logging.FieldPaths, loadResult.LoadedFrom)
	}

	cfg := loadResult.Config
	logger.Debug("configuration loaded",
		"tab_size", cfg.EffectiveTabSize(),
		"soft_tabs", cfg.UseSoftTabs(),
		"token_cache", cfg.UseTokenCache(),
	)

	return cfg, nil
}

// newEngine wires the built-in behaviours to the default collaborators.
func newEngine(cfg *config.Config, logger *log.Logger) *behaviour.Engine {
	eng := behaviour.NewEngine(behaviour.DefaultRegistry, cfg, behaviour.Collaborators{
		Tokenizer:   lexer.ForConfig(cfg),
		Brackets:    heuristics.NewBrackets(),
		ClassBraces: heuristics.NewClassBraces(),
		Indenter:    heuristics.NewIndenter(),
	})
	eng.Logger = logger
	return eng
}
