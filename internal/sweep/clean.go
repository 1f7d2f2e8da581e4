// pattern: Imperative Shell

package sweep

import (
	"fmt"
	"io"

	"sweeper/internal/logging"
	"sweeper/internal/pool"
	"sweeper/internal/progress"
)

// ProjectTaskCoordinator drives the clean pool over the project list,
// running the maintenance command sequence in each project directory.
// Command outcomes are not tracked: the fold only counts completions.
type ProjectTaskCoordinator struct {
	Runner   Runner
	Parallel int
	DryRun   bool
	Out      io.Writer
	Logger   *logging.ScopedLogger
	Observe  func(progress.Snapshot)
}

// Run processes every project with bounded parallelism.
func (c *ProjectTaskCoordinator) Run(projects []string) CleanSummary {
	logger := c.Logger
	if logger == nil {
		logger = logging.NopLogger()
	}

	var sum CleanSummary
	if len(projects) == 0 {
		return sum
	}

	if c.DryRun {
		out := c.Out
		if out == nil {
			out = io.Discard
		}
		fmt.Fprintf(out, "Would clean %d projects:\n", len(projects))
		for _, path := range projects {
			fmt.Fprintf(out, "  %s\n", path)
		}
		return sum
	}

	p := pool.New(progress.PhaseClean, c.Parallel, len(projects), func(CleanResult) {
		sum.Completed++
	}, c.Observe)

	for _, path := range projects {
		path := path
		p.Submit(path, func() CleanResult {
			c.Runner.Clean(path)
			c.Runner.FetchDeps(path)
			return CleanResult{Path: path}
		})
	}
	p.Drain()

	logger.Info("clean phase complete", "projects", sum.Completed)
	return sum
}
