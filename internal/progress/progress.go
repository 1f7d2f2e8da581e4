// pattern: Functional Core

package progress

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/x/ansi"
)

// ActiveBudget is the display-cell budget for the joined active-items string.
const ActiveBudget = 100

// Phase identifies which stage of a run a snapshot belongs to.
type Phase int

const (
	PhaseScan Phase = iota
	PhaseDelete
	PhaseClean
)

// String returns the human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseScan:
		return "scan"
	case PhaseDelete:
		return "delete"
	case PhaseClean:
		return "clean"
	default:
		return "unknown"
	}
}

// Snapshot is an immutable view of a pool's counters at one transition.
// It carries everything a renderer needs; it holds no state of its own.
type Snapshot struct {
	Phase     Phase
	Submitted int
	Completed int
	Total     int
	Active    []string // identifiers of currently in-flight tasks
	Elapsed   time.Duration
}

// Percent returns completion as a value in [0, 100].
func (s Snapshot) Percent() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Completed) / float64(s.Total) * 100
}

// ETA estimates remaining time as remaining items times the average observed
// per-item completion time. Zero when nothing has completed yet.
func (s Snapshot) ETA() time.Duration {
	if s.Completed == 0 {
		return 0
	}
	perItem := s.Elapsed / time.Duration(s.Completed)
	return time.Duration(s.Total-s.Completed) * perItem
}

// ActiveList returns the comma-joined in-flight identifiers, truncated to
// ActiveBudget display cells.
func (s Snapshot) ActiveList() string {
	return JoinActive(s.Active, ActiveBudget)
}

// JoinActive comma-joins items and truncates the result to budget display
// cells, appending an ellipsis when anything was cut. Width is measured in
// terminal cells, not bytes, so wide runes and ANSI sequences count correctly.
func JoinActive(items []string, budget int) string {
	joined := strings.Join(items, ", ")
	if ansi.StringWidth(joined) <= budget {
		return joined
	}
	return ansi.Truncate(joined, budget, "…")
}

// FormatBytes renders a byte count using the largest sensible binary unit.
func FormatBytes(b int64) string {
	const (
		kb = 1 << 10
		mb = 1 << 20
		gb = 1 << 30
		tb = 1 << 40
	)
	switch {
	case b >= tb:
		return fmt.Sprintf("%.2f TB", float64(b)/float64(tb))
	case b >= gb:
		return fmt.Sprintf("%.2f GB", float64(b)/float64(gb))
	case b >= mb:
		return fmt.Sprintf("%.2f MB", float64(b)/float64(mb))
	case b >= kb:
		return fmt.Sprintf("%.2f KB", float64(b)/float64(kb))
	default:
		return fmt.Sprintf("%d B", b)
	}
}

// FormatDuration renders a duration in the largest two useful units,
// e.g. "1h 12m", "3m 05s", "42s".
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	d = d.Round(time.Second)
	h := d / time.Hour
	m := (d % time.Hour) / time.Minute
	s := (d % time.Minute) / time.Second
	switch {
	case h > 0:
		return fmt.Sprintf("%dh %dm", h, m)
	case m > 0:
		return fmt.Sprintf("%dm %02ds", m, s)
	default:
		return fmt.Sprintf("%ds", s)
	}
}
