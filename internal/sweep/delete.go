// pattern: Imperative Shell

package sweep

import (
	"fmt"
	"io"

	"sweeper/internal/logging"
	"sweeper/internal/pool"
	"sweeper/internal/progress"
)

// DeletionCoordinator drives the delete pool over the trash list. Workers
// only compute and delete; all aggregation happens in Run's goroutine via
// the pool's fold callback, so the summary needs no locking.
type DeletionCoordinator struct {
	Sizer    Sizer
	Deleter  Deleter
	Confirm  Confirmer
	Parallel int
	DryRun   bool
	Force    bool
	Out      io.Writer
	Logger   *logging.ScopedLogger
	Observe  func(progress.Snapshot)
}

// Run deletes every trash directory with bounded parallelism and returns the
// aggregated summary. A declined confirmation returns ErrAborted with no
// deletions performed; per-path failures are recorded, never fatal.
func (c *DeletionCoordinator) Run(trash []string) (DeleteSummary, error) {
	logger := c.Logger
	if logger == nil {
		logger = logging.NopLogger()
	}

	var sum DeleteSummary
	if len(trash) == 0 {
		return sum, nil
	}

	if c.DryRun {
		out := c.Out
		if out == nil {
			out = io.Discard
		}
		fmt.Fprintf(out, "Would delete %d directories:\n", len(trash))
		for _, path := range trash {
			fmt.Fprintf(out, "  %s\n", path)
		}
		return sum, nil
	}

	if !c.Force {
		msg := fmt.Sprintf("Delete %d directories?", len(trash))
		if c.Confirm == nil || !c.Confirm.Confirm(msg) {
			logger.Info("deletion declined by user", "count", len(trash))
			return sum, ErrAborted
		}
	}

	p := pool.New(progress.PhaseDelete, c.Parallel, len(trash), func(r DeleteResult) {
		// The computed size is counted whether or not the delete succeeded;
		// the summary reports space across all processed entries.
		sum.FreedBytes += r.SizeBytes
		if !r.Succeeded {
			sum.Failed = append(sum.Failed, r.Path)
		}
	}, c.Observe)

	for _, path := range trash {
		path := path
		p.Submit(path, func() DeleteResult {
			return c.deleteOne(path, logger)
		})
	}
	p.Drain()

	logger.Info("deletion phase complete",
		"deleted", len(trash)-len(sum.Failed),
		"failed", len(sum.Failed),
		"bytes", sum.FreedBytes)
	return sum, nil
}

// deleteOne is the per-item worker: size, delete, force-delete fallback,
// existence recheck. It captures every error into the result.
func (c *DeletionCoordinator) deleteOne(path string, logger *logging.ScopedLogger) DeleteResult {
	size := c.Sizer.SizeOf(path)

	if err := c.Deleter.Delete(path); err != nil {
		logger.Warn("delete failed, trying forced remove", "path", path, "error", err)
		if err := c.Deleter.ForceDelete(path); err != nil {
			logger.Warn("forced remove failed", "path", path, "error", err)
		}
	}

	if c.Deleter.Exists(path) {
		return DeleteResult{Path: path, Succeeded: false, SizeBytes: size}
	}
	return DeleteResult{Path: path, Succeeded: true, SizeBytes: size}
}
