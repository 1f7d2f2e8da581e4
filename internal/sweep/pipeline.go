// pattern: Imperative Shell

package sweep

import (
	"time"

	"sweeper/internal/logging"
	"sweeper/internal/scan"
)

// TreeScanner is the walk the pipeline runs first. *scan.Scanner satisfies it.
type TreeScanner interface {
	Scan(root string) scan.Result
}

// Pipeline sequences the scan, delete, and clean phases. Phases never
// overlap: the delete pool fully drains before cleaning starts, and the
// clean phase operates on the project list captured before any deletion.
type Pipeline struct {
	Scanner    TreeScanner
	Delete     *DeletionCoordinator
	Clean      *ProjectTaskCoordinator
	Logger     *logging.ScopedLogger
	OnScanDone func(scan.Result)
}

// Run walks root and drives both pools to completion. It returns ErrAborted
// when the user declines deletion; a scan that finds nothing returns after
// the scan phase with no pools started.
func (p *Pipeline) Run(root string) (RunSummary, error) {
	logger := p.Logger
	if logger == nil {
		logger = logging.NopLogger()
	}
	start := time.Now()

	res := p.Scanner.Scan(root)
	logger.Info("scan complete",
		"scanned", res.Scanned,
		"trash", len(res.TrashDirs),
		"projects", len(res.Projects))
	if p.OnScanDone != nil {
		p.OnScanDone(res)
	}

	sum := RunSummary{
		Scanned:       res.Scanned,
		TrashFound:    len(res.TrashDirs),
		ProjectsFound: len(res.Projects),
	}

	if res.Empty() {
		sum.Elapsed = time.Since(start)
		return sum, nil
	}

	dsum, err := p.Delete.Run(res.TrashDirs)
	if err != nil {
		sum.Elapsed = time.Since(start)
		return sum, err
	}
	sum.FreedBytes = dsum.FreedBytes
	sum.FailedDeletions = dsum.Failed

	csum := p.Clean.Run(res.Projects)
	sum.ProjectsCleaned = csum.Completed

	sum.Elapsed = time.Since(start)
	return sum, nil
}
