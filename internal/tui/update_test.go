package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"sweeper/internal/events"
	prog "sweeper/internal/progress"
	"sweeper/internal/scan"
	"sweeper/internal/sweep"
)

func updated(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return model
}

func TestUpdate_ScanProgress(t *testing.T) {
	m := NewModel("mocha", nil)
	m = updated(t, m, events.ScanProgressMsg{Note: scan.Notification{Scanned: 30, Current: "a/b"}})

	if m.scanNote.Scanned != 30 || m.scanNote.Current != "a/b" {
		t.Errorf("scanNote: %+v", m.scanNote)
	}
	if m.scanDone {
		t.Error("scan should not be done")
	}
}

func TestUpdate_ScanDone(t *testing.T) {
	m := NewModel("mocha", nil)
	m = updated(t, m, events.ScanDoneMsg{Result: scan.Result{
		Scanned:   50,
		TrashDirs: []string{"/w/build"},
	}})

	if !m.scanDone || m.scanResult.Scanned != 50 {
		t.Errorf("scan state: done=%v result=%+v", m.scanDone, m.scanResult)
	}
}

func TestUpdate_PoolProgressRoutesByPhase(t *testing.T) {
	m := NewModel("mocha", nil)
	m = updated(t, m, events.PoolProgressMsg{Snapshot: prog.Snapshot{Phase: prog.PhaseDelete, Completed: 1, Total: 3}})
	m = updated(t, m, events.PoolProgressMsg{Snapshot: prog.Snapshot{Phase: prog.PhaseClean, Completed: 2, Total: 2}})

	if m.deleteSnap == nil || m.deleteSnap.Completed != 1 {
		t.Errorf("deleteSnap: %+v", m.deleteSnap)
	}
	if m.cleanSnap == nil || m.cleanSnap.Completed != 2 {
		t.Errorf("cleanSnap: %+v", m.cleanSnap)
	}
}

func TestUpdate_ConfirmFlow(t *testing.T) {
	m := NewModel("mocha", nil)
	reply := make(chan bool, 1)
	m = updated(t, m, events.ConfirmRequestMsg{Message: "Delete 3 directories?", Reply: reply})

	if m.confirm == nil {
		t.Fatal("confirm modal should be open")
	}

	m = updated(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'y'}})
	if m.confirm != nil {
		t.Error("confirm modal should be closed")
	}
	select {
	case ok := <-reply:
		if !ok {
			t.Error("expected affirmative reply")
		}
	default:
		t.Error("no reply sent")
	}
}

func TestUpdate_ConfirmDecline(t *testing.T) {
	m := NewModel("mocha", nil)
	reply := make(chan bool, 1)
	m = updated(t, m, events.ConfirmRequestMsg{Message: "Delete?", Reply: reply})
	m = updated(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'n'}})

	if ok := <-reply; ok {
		t.Error("expected negative reply")
	}
}

func TestUpdate_RunDoneThenQuit(t *testing.T) {
	m := NewModel("mocha", nil)
	m = updated(t, m, events.RunDoneMsg{Summary: sweep.RunSummary{FreedBytes: 42}})

	if !m.done || m.summary.FreedBytes != 42 {
		t.Errorf("done state: %v %+v", m.done, m.summary)
	}

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("expected quit command after done")
	}
	if _, ok := next.(Model); !ok {
		t.Fatalf("Update returned %T", next)
	}
}

func TestUpdate_QIgnoredWhileRunning(t *testing.T) {
	m := NewModel("mocha", nil)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd != nil {
		t.Error("q should be ignored before the run finishes")
	}
}

func TestView_ShowsSummaryAndFailures(t *testing.T) {
	m := NewModel("mocha", nil)
	m = updated(t, m, events.ScanDoneMsg{Result: scan.Result{Scanned: 9}})
	m = updated(t, m, events.RunDoneMsg{Summary: sweep.RunSummary{
		Scanned:         9,
		FreedBytes:      2048,
		ProjectsCleaned: 1,
		FailedDeletions: []string{"/w/locked"},
	}})

	view := m.View()
	for _, want := range []string{"2.00 KB", "/w/locked", "press q to exit"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}

func TestView_ConfirmModal(t *testing.T) {
	m := NewModel("mocha", nil)
	m = updated(t, m, events.ConfirmRequestMsg{Message: "Delete 2 directories?", Reply: make(chan bool, 1)})

	view := m.View()
	if !strings.Contains(view, "Delete 2 directories?") {
		t.Errorf("view missing confirm message:\n%s", view)
	}
}
