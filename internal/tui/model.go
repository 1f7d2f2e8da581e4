// pattern: Imperative Shell

package tui

import (
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"sweeper/internal/events"
	"sweeper/internal/logging"
	prog "sweeper/internal/progress"
	"sweeper/internal/scan"
	"sweeper/internal/sweep"
)

// maxLogLines is how many recent log entries the log panel keeps.
const maxLogLines = 8

// logEntryMsg delivers one entry from the logging channel.
type logEntryMsg struct {
	entry logging.LogEntry
	ok    bool
}

// Model is the TUI state for a single sweep run. The pipeline runs in its
// own goroutine and feeds the model through events sent with Program.Send.
type Model struct {
	width  int
	height int
	styles *Styles

	spinner   spinner.Model
	deleteBar progress.Model
	cleanBar  progress.Model

	logCh <-chan logging.LogEntry
	logs  []logging.LogEntry

	scanNote   scan.Notification
	scanResult scan.Result
	scanDone   bool

	deleteSnap *prog.Snapshot
	cleanSnap  *prog.Snapshot

	confirm *events.ConfirmRequestMsg

	done    bool
	summary sweep.RunSummary
	runErr  error
}

// NewModel creates the TUI model. logCh may be nil when no log panel is
// wanted.
func NewModel(themeName string, logCh <-chan logging.LogEntry) Model {
	styles := NewStyles(themeName)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.PhaseStyle()

	return Model{
		styles:    styles,
		spinner:   sp,
		deleteBar: progress.New(progress.WithDefaultGradient()),
		cleanBar:  progress.New(progress.WithDefaultGradient()),
		logCh:     logCh,
	}
}

// Init starts the spinner and the log pump.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.spinner.Tick}
	if m.logCh != nil {
		cmds = append(cmds, waitForLog(m.logCh))
	}
	return tea.Batch(cmds...)
}

// waitForLog blocks for the next log entry and redelivers it as a message.
func waitForLog(ch <-chan logging.LogEntry) tea.Cmd {
	return func() tea.Msg {
		entry, ok := <-ch
		return logEntryMsg{entry: entry, ok: ok}
	}
}
