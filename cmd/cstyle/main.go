// Package main is the entry point for the cstyle CLI.
package main

import (
	"errors"
	"os"

	"github.com/yaklabco/cstyle/internal/cli"
	"github.com/yaklabco/cstyle/internal/logging"
)

// Build-time variables set by GoReleaser via ldflags.
//
//nolint:gochecknoglobals // Version variables must be package-level for ldflags injection
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	info := cli.BuildInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	}

	rootCmd := cli.NewRootCommand(info)

	if err := rootCmd.Execute(); err != nil {
		// ErrScenarioFailed only selects the exit code; the report says why.
		if !errors.Is(err, cli.ErrScenarioFailed) {
			logging.Default().Error("command failed", logging.FieldError, err)
		}
		return cli.ExitCode(err)
	}

	return 0
}
