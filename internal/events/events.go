// package events contains message types shared between the run pipeline and
// the tui package.
package events

import (
	"sweeper/internal/progress"
	"sweeper/internal/scan"
	"sweeper/internal/sweep"
)

// ScanProgressMsg is sent periodically while the walk is running.
type ScanProgressMsg struct{ Note scan.Notification }

// ScanDoneMsg is sent when the walk completes, before any deletion.
type ScanDoneMsg struct{ Result scan.Result }

// PoolProgressMsg carries a pool snapshot from the delete or clean phase.
type PoolProgressMsg struct{ Snapshot progress.Snapshot }

// ConfirmRequestMsg asks the UI for a yes/no answer. The pipeline blocks on
// Reply until the user decides.
type ConfirmRequestMsg struct {
	Message string
	Reply   chan bool
}

// RunDoneMsg is sent once when the whole run finishes or aborts.
type RunDoneMsg struct {
	Summary sweep.RunSummary
	Err     error
}
