// pattern: Functional Core

package sweep

import (
	"errors"
	"time"
)

// ErrAborted is returned when the user declines the deletion confirmation.
// Nothing has been deleted when it is returned.
var ErrAborted = errors.New("aborted by user")

// DeleteResult is produced by one delete worker and folded exactly once.
type DeleteResult struct {
	Path      string
	Succeeded bool
	SizeBytes int64
}

// CleanResult marks one project as processed. It deliberately carries no
// success/failure payload: project maintenance is best-effort and a failed
// clean never blocks the run.
type CleanResult struct {
	Path string
}

// DeleteSummary aggregates the deletion phase. FreedBytes sums the computed
// size of every processed entry, failed deletions included; Failed lists the
// paths that still existed after both delete attempts.
type DeleteSummary struct {
	FreedBytes int64
	Failed     []string
}

// CleanSummary aggregates the clean phase.
type CleanSummary struct {
	Completed int
}

// RunSummary aggregates a whole run for the final report.
type RunSummary struct {
	Elapsed         time.Duration
	Scanned         int
	TrashFound      int
	ProjectsFound   int
	FreedBytes      int64
	FailedDeletions []string
	ProjectsCleaned int
}

// Sizer computes the occupied size of a directory tree. Implementations must
// be best-effort: partial read failures yield a partial sum, never an error.
type Sizer interface {
	SizeOf(path string) int64
}

// Deleter removes directory trees. ForceDelete is the last-resort OS-level
// mechanism, invoked only after Delete fails. Exists is the post-delete
// recheck that decides success.
type Deleter interface {
	Delete(path string) error
	ForceDelete(path string) error
	Exists(path string) bool
}

// Runner executes the per-project maintenance command sequence.
type Runner interface {
	Clean(projectPath string)
	FetchDeps(projectPath string)
}

// Confirmer asks the user a yes/no question before destructive work.
type Confirmer interface {
	Confirm(message string) bool
}
