package cli

import (
	"errors"

	"github.com/yaklabco/cstyle/pkg/scenario"
)

// Exit codes for cstyle.
const (
	// ExitSuccess indicates successful execution.
	ExitSuccess = 0

	// ExitScenarioFailed indicates a replay ran but at least one scenario failed.
	ExitScenarioFailed = 1

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

// ErrScenarioFailed is returned when a replay finishes with failures.
var ErrScenarioFailed = errors.New("scenarios failed")

// ErrInvalidUsage marks errors caused by bad arguments or flags.
var ErrInvalidUsage = errors.New("invalid usage")

// ErrConfig marks configuration loading failures.
var ErrConfig = errors.New("configuration error")

// ErrIO marks file read or write failures.
var ErrIO = errors.New("i/o error")

// ExitCodeFromResult determines the exit code for a replay result.
func ExitCodeFromResult(result *scenario.Result) int {
	if result.HasFailures() {
		return ExitScenarioFailed
	}
	return ExitSuccess
}

// ExitCode maps an error returned by a command to a process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrScenarioFailed):
		return ExitScenarioFailed
	case errors.Is(err, ErrInvalidUsage):
		return ExitInvalidUsage
	case errors.Is(err, ErrConfig):
		return ExitConfigError
	case errors.Is(err, ErrIO):
		return ExitIOError
	default:
		return ExitInternalError
	}
}
