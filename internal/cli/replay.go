package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yaklabco/cstyle/internal/logging"
	"github.com/yaklabco/cstyle/internal/ui/pretty"
	"github.com/yaklabco/cstyle/pkg/scenario"
)

type replayFlags struct {
	engine  engineFlags
	jobs    int
	exclude []string
	verbose bool
	summary bool
	format  string
}

func newReplayCommand() *cobra.Command {
	flags := &replayFlags{}

	cmd := &cobra.Command{
		Use:   "replay [paths...]",
		Short: "Replay scenario files and report pass/fail",
		Long:  replayLongDescription,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReplay(cmd, args, flags)
		},
	}

	cmd.Flags().IntVar(&flags.jobs, "jobs", 0, "number of parallel workers (0 = auto)")
	cmd.Flags().StringSliceVar(&flags.exclude, "exclude", nil, "glob patterns to skip")
	cmd.Flags().BoolVarP(&flags.verbose, "verbose", "v", false, "show the step trace for passing scenarios")
	cmd.Flags().BoolVar(&flags.summary, "summary", false, "print a summary block instead of a one-line total")
	cmd.Flags().StringVar(&flags.format, "format", "text", "output format: text, json")
	addEngineFlags(cmd, &flags.engine)

	return cmd
}

const replayLongDescription = `Replay keystroke scenarios and compare each result with its expectation.

A scenario file holds one or more YAML documents, each with a marked buffer,
a list of steps and the expected marked buffer. By default every .yaml and
.yml file under the current directory is replayed.

Examples:
  cstyle replay                       # Replay scenarios under the current directory
  cstyle replay testdata/braces.yaml  # Replay a single file
  cstyle replay -v --jobs 4 fixtures/ # Show traces, four workers
  cstyle replay --format json         # Machine-readable report for CI`

func runReplay(cmd *cobra.Command, args []string, flags *replayFlags) error {
	logger := logging.FromContext(cmd.Context())

	if flags.format != "text" && flags.format != formatJSON {
		return fmt.Errorf("%w: unknown format %q: must be text or json", ErrInvalidUsage, flags.format)
	}

	cfg, err := loadConfig(cmd, flags.engine.cliConfig(cmd))
	if err != nil {
		return err
	}
	cfg.Jobs = flags.jobs

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	opts := scenario.Options{
		Paths:        args,
		WorkingDir:   workDir,
		Extensions:   scenario.DefaultExtensions(),
		ExcludeGlobs: flags.exclude,
		Jobs:         cfg.Jobs,
		Logger:       logger,
	}

	logger.Debug("starting replay",
		logging.FieldPaths, opts.Paths,
		logging.FieldWorkingDir, opts.WorkingDir,
		logging.FieldJobs, opts.Jobs,
	)

	result, err := scenario.NewRunner(newEngine(cfg, logger)).Run(cmd.Context(), opts)
	if err != nil {
		return errors.Join(errors.New("replay failed"), err)
	}

	out := cmd.OutOrStdout()
	if flags.format == formatJSON {
		err = scenario.WriteJSON(out, scenario.BuildReport(result, workDir))
	} else {
		colorMode, flagErr := cmd.Flags().GetString("color")
		if flagErr != nil {
			colorMode = "auto"
		}
		styles := pretty.NewStyles(pretty.IsColorEnabled(colorMode, out))
		err = writeReplay(out, styles, result, workDir, flags)
	}
	if err != nil {
		return err
	}

	logger.Debug("replay finished",
		logging.FieldScenarios, result.Stats.Scenarios,
		logging.FieldPassed, result.Stats.Passed,
		logging.FieldFailed, result.Stats.Failed,
	)

	if ExitCodeFromResult(result) != ExitSuccess {
		return ErrScenarioFailed
	}
	return nil
}

func writeReplay(
	out io.Writer,
	styles *pretty.Styles,
	result *scenario.Result,
	workDir string,
	flags *replayFlags,
) error {
	for _, file := range result.Files {
		failed := 0
		for _, o := range file.Outcomes {
			if !o.Passed() {
				failed++
			}
		}

		if _, err := fmt.Fprintln(out, styles.FormatFileHeader(displayPath(workDir, file.Path), failed)); err != nil {
			return fmt.Errorf("write report: %w", err)
		}

		if file.Error != nil {
			if _, err := fmt.Fprintf(out, "  %s %v\n", styles.Error.Render("error:"), file.Error); err != nil {
				return fmt.Errorf("write report: %w", err)
			}
			continue
		}

		for _, o := range file.Outcomes {
			if _, err := io.WriteString(out, styles.FormatOutcome(o, flags.verbose)); err != nil {
				return fmt.Errorf("write report: %w", err)
			}
		}
	}

	summary := styles.FormatSummaryOneLine(result.Stats)
	if flags.summary {
		summary = styles.FormatSummary(result.Stats)
	}
	if _, err := io.WriteString(out, summary); err != nil {
		return fmt.Errorf("write summary: %w", err)
	}
	return nil
}

// displayPath shortens path relative to workDir when it lies beneath it.
func displayPath(workDir, path string) string {
	rel, err := filepath.Rel(workDir, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return path
	}
	return rel
}
