package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/yaklabco/cstyle/internal/configloader"
	"github.com/yaklabco/cstyle/internal/logging"
	"github.com/yaklabco/cstyle/pkg/behaviour"
	"github.com/yaklabco/cstyle/pkg/config"
)

// initFlags holds the flags for the init command.
type initFlags struct {
	force  bool
	full   bool
	output string
}

func newInitCommand() *cobra.Command {
	flags := &initFlags{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new cstyle configuration file",
		Long: `Create a new .cstyle.yml configuration file in the current directory
with the default settings. The file can be customized to change the tab
string, the macro backslash column, the scan limits, and which behaviours
are enabled.

When the file already exists and stdin is a terminal, you are asked before
it is overwritten.

Examples:
  cstyle init                        Create minimal .cstyle.yml
  cstyle init --full                 List every behaviour in the file
  cstyle init --output custom.yml    Write to a custom file path`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInit(cmd, flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.force, "force", "f", false, "Overwrite existing configuration file")
	cmd.Flags().BoolVar(&flags.full, "full", false, "Generate full template with all behaviours listed")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "",
		"Output file path (default: "+configloader.ProjectConfigFile+")")

	return cmd
}

func runInit(cmd *cobra.Command, flags *initFlags) error {
	logger := logging.NewInteractive()

	outputPath := flags.output
	if outputPath == "" {
		outputPath = configloader.ProjectConfigFile
	}

	absPath, err := filepath.Abs(outputPath)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	content := config.GenerateTemplate(config.TemplateOptions{
		Full:       flags.full,
		Behaviours: behaviourInfos(behaviour.DefaultRegistry),
	})

	_, statErr := os.Stat(absPath)
	existed := statErr == nil

	overwrite := flags.force
	err = configloader.WriteConfigFile(cmd.Context(), absPath, content, overwrite)
	if errors.Is(err, configloader.ErrConfigExists) && isInteractive() {
		overwrite, err = confirm(cmd.InOrStdin(), cmd.ErrOrStderr(),
			fmt.Sprintf("%s already exists. Overwrite?", outputPath))
		if err != nil {
			return err
		}
		if !overwrite {
			logger.Info("left existing file unchanged", logging.FieldPath, outputPath)
			return nil
		}
		err = configloader.WriteConfigFile(cmd.Context(), absPath, content, true)
	}
	if errors.Is(err, configloader.ErrConfigExists) {
		return fmt.Errorf("%w: file %q already exists; use --force to overwrite", ErrInvalidUsage, outputPath)
	}
	if err != nil {
		return errors.Join(ErrIO, err)
	}

	if existed {
		logger.Warn("overwrote existing file", logging.FieldPath, outputPath)
	}
	logger.Info("created configuration file", logging.FieldPath, outputPath)
	if flags.full {
		logger.Info("full template lists every behaviour with its default state")
	}
	logger.Info("run 'cstyle behaviours' to see all available behaviours")

	return nil
}

// behaviourInfos collects template metadata from registry.
func behaviourInfos(registry *behaviour.Registry) []config.BehaviourInfo {
	list := registry.Behaviours()
	infos := make([]config.BehaviourInfo, 0, len(list))
	for _, b := range list {
		infos = append(infos, config.BehaviourInfo{
			ID:          b.ID(),
			Name:        b.Name(),
			Description: b.Description(),
			Enabled:     b.DefaultEnabled(),
		})
	}
	return infos
}

// isInteractive reports whether stdin is a terminal.
func isInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// confirm asks a yes/no question, defaulting to no.
func confirm(in io.Reader, out io.Writer, question string) (bool, error) {
	if _, err := fmt.Fprintf(out, "%s [y/N] ", question); err != nil {
		return false, fmt.Errorf("write prompt: %w", err)
	}
	answer, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("read answer: %w", err)
	}
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}
