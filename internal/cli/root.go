// Package cli provides the Cobra command structure for cstyle.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/cstyle/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root cstyle command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string

	rootCmd := &cobra.Command{
		Use:   "cstyle",
		Short: "Keystroke behaviours for C-family source, replayable from the shell",
		Long: `cstyle implements the auto-pairing, smart-newline and brace-completion
behaviours a C/C++ editing mode performs as you type.

Each keystroke is answered by the first enabled behaviour with an opinion,
which returns a directive: replace the inserted text, move the cursor, or
widen a deletion. The commands here replay keystrokes against files and
scenario fixtures so the behaviours can be inspected and regression-tested
outside an editor.`,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			level := "info"
			if debug {
				level = "debug"
			}
			cmd.SetContext(logging.Attach(cmd.Context(), cmd.ErrOrStderr(), level))
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	rootCmd.AddCommand(newTypeCommand())
	rootCmd.AddCommand(newDeleteCommand())
	rootCmd.AddCommand(newReplayCommand())
	rootCmd.AddCommand(newBehavioursCommand())
	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	helpFormatter := NewHelpFormatter(color, os.Stdout)
	helpFormatter.ApplyToCommand(rootCmd)

	return rootCmd
}
