// pattern: Imperative Shell

package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"sweeper/internal/events"
	prog "sweeper/internal/progress"
)

// Update handles all incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		barWidth := msg.Width - 10
		if barWidth > 60 {
			barWidth = 60
		}
		if barWidth > 0 {
			m.deleteBar.Width = barWidth
			m.cleanBar.Width = barWidth
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case logEntryMsg:
		if !msg.ok {
			// Channel closed, stop pumping.
			return m, nil
		}
		m.logs = append(m.logs, msg.entry)
		if len(m.logs) > maxLogLines {
			m.logs = m.logs[len(m.logs)-maxLogLines:]
		}
		return m, waitForLog(m.logCh)

	case events.ScanProgressMsg:
		m.scanNote = msg.Note
		return m, nil

	case events.ScanDoneMsg:
		m.scanDone = true
		m.scanResult = msg.Result
		return m, nil

	case events.PoolProgressMsg:
		snap := msg.Snapshot
		switch snap.Phase {
		case prog.PhaseDelete:
			m.deleteSnap = &snap
		case prog.PhaseClean:
			m.cleanSnap = &snap
		}
		return m, nil

	case events.ConfirmRequestMsg:
		m.confirm = &msg
		return m, nil

	case events.RunDoneMsg:
		m.done = true
		m.summary = msg.Summary
		m.runErr = msg.Err
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.confirm != nil {
		switch msg.String() {
		case "y", "Y":
			m.confirm.Reply <- true
			m.confirm = nil
		case "n", "N", "esc", "q":
			m.confirm.Reply <- false
			m.confirm = nil
		}
		return m, nil
	}

	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "q", "enter":
		if m.done {
			return m, tea.Quit
		}
	}
	return m, nil
}
