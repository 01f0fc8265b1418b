package scenario

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/yaklabco/cstyle/pkg/behaviour"
)

// FileOutcome holds the replays of one scenario file.
type FileOutcome struct {
	Path string

	// Outcomes are in file order. Empty when Error is set.
	Outcomes []*Outcome

	// Error is set if the file could not be loaded.
	Error error
}

// Stats captures aggregate information about a run.
type Stats struct {
	FilesDiscovered int
	FilesErrored    int
	Scenarios       int
	Passed          int
	Failed          int
}

// Result is the overall replay result.
type Result struct {
	// Files are ordered by path.
	Files []FileOutcome
	Stats Stats
}

// HasFailures reports whether any scenario failed or any file errored.
func (r *Result) HasFailures() bool {
	if r == nil {
		return false
	}
	return r.Stats.Failed > 0 || r.Stats.FilesErrored > 0
}

func (r *Result) accumulate(fo FileOutcome) {
	r.Files = append(r.Files, fo)

	if fo.Error != nil {
		r.Stats.FilesErrored++
		return
	}

	for _, out := range fo.Outcomes {
		r.Stats.Scenarios++
		if out.Passed() {
			r.Stats.Passed++
		} else {
			r.Stats.Failed++
		}
	}
}

// Runner replays scenario files concurrently against one engine.
type Runner struct {
	Engine *behaviour.Engine
}

// NewRunner creates a Runner around eng.
func NewRunner(eng *behaviour.Engine) *Runner {
	return &Runner{Engine: eng}
}

// Run discovers scenario files under opts.Paths and replays them on a worker
// pool. Outcomes are returned in deterministic path order.
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	files, err := Discover(ctx, opts)
	if err != nil {
		return nil, err
	}

	result := &Result{Files: make([]FileOutcome, 0, len(files))}
	result.Stats.FilesDiscovered = len(files)
	if len(files) == 0 {
		return result, nil
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	jobs = min(jobs, len(files))

	workCh := make(chan string)
	outCh := make(chan FileOutcome)

	var wg sync.WaitGroup
	for range jobs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.worker(ctx, logger, workCh, outCh)
		}()
	}

	go func() {
		defer close(workCh)
		for _, path := range files {
			select {
			case <-ctx.Done():
				return
			case workCh <- path:
			}
		}
	}()

	go func() {
		wg.Wait()
		close(outCh)
	}()

	outcomes := make(map[string]FileOutcome, len(files))
	for fo := range outCh {
		outcomes[fo.Path] = fo
	}

	for _, path := range files {
		if fo, ok := outcomes[path]; ok {
			result.accumulate(fo)
		}
	}

	if ctx.Err() != nil {
		return result, fmt.Errorf("run cancelled: %w", ctx.Err())
	}
	return result, nil
}

func (r *Runner) worker(ctx context.Context, logger *log.Logger, workCh <-chan string, outCh chan<- FileOutcome) {
	for path := range workCh {
		if ctx.Err() != nil {
			return
		}

		fo := r.replayFile(ctx, path)
		logger.Debug("replayed scenario file", "path", path, "scenarios", len(fo.Outcomes), "error", fo.Error)

		select {
		case <-ctx.Done():
			return
		case outCh <- fo:
		}
	}
}

func (r *Runner) replayFile(ctx context.Context, path string) FileOutcome {
	fo := FileOutcome{Path: path}

	scenarios, err := Load(path)
	if err != nil {
		fo.Error = err
		return fo
	}

	for _, sc := range scenarios {
		fo.Outcomes = append(fo.Outcomes, Replay(ctx, r.Engine, sc))
	}
	return fo
}
