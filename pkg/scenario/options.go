package scenario

import "github.com/charmbracelet/log"

// Options controls a multi-file replay.
type Options struct {
	// Paths are files or directories holding scenario files.
	// If empty, defaults to the current working directory.
	Paths []string

	// WorkingDir is the base directory used to resolve relative Paths.
	// If empty, the current process working directory is used.
	WorkingDir string

	// Extensions is the set of scenario file extensions (lowercase, with
	// leading dot). Defaults to DefaultExtensions().
	Extensions []string

	// ExcludeGlobs skip matching files or directories.
	ExcludeGlobs []string

	// Jobs controls the maximum number of concurrent workers.
	// 0 or negative means "auto" (runtime.NumCPU()).
	Jobs int

	// Logger receives per-file debug traces. Nil discards them.
	Logger *log.Logger
}

// DefaultExtensions returns the default scenario file extensions.
func DefaultExtensions() []string {
	return []string{".yaml", ".yml"}
}

func (o Options) effectiveExtensions() []string {
	if len(o.Extensions) == 0 {
		return DefaultExtensions()
	}
	return o.Extensions
}

func (o Options) effectivePaths() []string {
	if len(o.Paths) == 0 {
		return []string{"."}
	}
	return o.Paths
}
