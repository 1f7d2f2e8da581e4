package sweep

import (
	"bytes"
	"errors"
	"strings"
	"sync"
	"testing"

	"sweeper/internal/progress"
)

// fakeFS implements Sizer and Deleter against an in-memory path set.
type fakeFS struct {
	mu        sync.Mutex
	sizes     map[string]int64
	stuck     map[string]bool // paths that survive both delete attempts
	deleteErr map[string]bool // paths whose primary delete errors
	deleted   []string
	forced    []string
}

func newFakeFS(sizes map[string]int64) *fakeFS {
	return &fakeFS{
		sizes:     sizes,
		stuck:     make(map[string]bool),
		deleteErr: make(map[string]bool),
	}
}

func (f *fakeFS) SizeOf(path string) int64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.sizes[path]
}

func (f *fakeFS) Delete(path string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, path)
	if f.deleteErr[path] || f.stuck[path] {
		return errors.New("permission denied")
	}
	delete(f.sizes, path)
	return nil
}

func (f *fakeFS) ForceDelete(path string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.forced = append(f.forced, path)
	if f.stuck[path] {
		return errors.New("still busy")
	}
	delete(f.sizes, path)
	return nil
}

func (f *fakeFS) Exists(path string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.stuck[path]
}

type fakeConfirm struct {
	answer bool
	asked  []string
}

func (f *fakeConfirm) Confirm(message string) bool {
	f.asked = append(f.asked, message)
	return f.answer
}

func TestDeletion_AllSucceed(t *testing.T) {
	fs := newFakeFS(map[string]int64{"/w/a": 10, "/w/b": 20, "/w/c": 30})
	c := &DeletionCoordinator{
		Sizer:    fs,
		Deleter:  fs,
		Parallel: 2,
		Force:    true,
	}

	sum, err := c.Run([]string{"/w/a", "/w/b", "/w/c"})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if sum.FreedBytes != 60 {
		t.Errorf("FreedBytes: got %d, want 60", sum.FreedBytes)
	}
	if len(sum.Failed) != 0 {
		t.Errorf("Failed: got %v, want none", sum.Failed)
	}
	if len(fs.forced) != 0 {
		t.Errorf("force delete should not run when primary succeeds: %v", fs.forced)
	}
}

func TestDeletion_FailedPathStillCounted(t *testing.T) {
	fs := newFakeFS(map[string]int64{"/w/locked": 40})
	fs.stuck["/w/locked"] = true
	c := &DeletionCoordinator{
		Sizer:    fs,
		Deleter:  fs,
		Parallel: 1,
		Force:    true,
	}

	sum, err := c.Run([]string{"/w/locked"})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(sum.Failed) != 1 || sum.Failed[0] != "/w/locked" {
		t.Errorf("Failed: got %v, want [/w/locked]", sum.Failed)
	}
	if sum.FreedBytes != 40 {
		t.Errorf("FreedBytes must include failed entries: got %d, want 40", sum.FreedBytes)
	}
	if len(fs.forced) != 1 {
		t.Errorf("expected force delete fallback, got %v", fs.forced)
	}
}

func TestDeletion_FallbackRecoversPath(t *testing.T) {
	fs := newFakeFS(map[string]int64{"/w/odd": 5})
	fs.deleteErr["/w/odd"] = true
	c := &DeletionCoordinator{
		Sizer:    fs,
		Deleter:  fs,
		Parallel: 1,
		Force:    true,
	}

	sum, err := c.Run([]string{"/w/odd"})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(sum.Failed) != 0 {
		t.Errorf("fallback succeeded, Failed should be empty: %v", sum.Failed)
	}
	if sum.FreedBytes != 5 {
		t.Errorf("FreedBytes: got %d, want 5", sum.FreedBytes)
	}
}

func TestDeletion_DeclinedConfirmationAborts(t *testing.T) {
	fs := newFakeFS(map[string]int64{"/w/a": 10})
	confirm := &fakeConfirm{answer: false}
	c := &DeletionCoordinator{
		Sizer:    fs,
		Deleter:  fs,
		Confirm:  confirm,
		Parallel: 2,
	}

	_, err := c.Run([]string{"/w/a"})
	if !errors.Is(err, ErrAborted) {
		t.Fatalf("expected ErrAborted, got %v", err)
	}
	if len(fs.deleted) != 0 {
		t.Errorf("no deletions may run after a decline: %v", fs.deleted)
	}
	if len(confirm.asked) != 1 {
		t.Errorf("expected exactly one confirmation, got %v", confirm.asked)
	}
}

func TestDeletion_ForceSkipsConfirmation(t *testing.T) {
	fs := newFakeFS(map[string]int64{"/w/a": 10})
	confirm := &fakeConfirm{answer: false}
	c := &DeletionCoordinator{
		Sizer:    fs,
		Deleter:  fs,
		Confirm:  confirm,
		Parallel: 2,
		Force:    true,
	}

	sum, err := c.Run([]string{"/w/a"})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(confirm.asked) != 0 {
		t.Errorf("force must skip confirmation, asked %v", confirm.asked)
	}
	if sum.FreedBytes != 10 {
		t.Errorf("FreedBytes: got %d, want 10", sum.FreedBytes)
	}
}

func TestDeletion_DryRunMutatesNothing(t *testing.T) {
	fs := newFakeFS(map[string]int64{"/w/a": 10, "/w/b": 20})
	var out bytes.Buffer
	c := &DeletionCoordinator{
		Sizer:    fs,
		Deleter:  fs,
		Parallel: 2,
		DryRun:   true,
		Out:      &out,
	}

	sum, err := c.Run([]string{"/w/a", "/w/b"})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(fs.deleted) != 0 || len(fs.forced) != 0 {
		t.Error("dry run must not touch the deleter")
	}
	if sum.FreedBytes != 0 || len(sum.Failed) != 0 {
		t.Errorf("dry run summary should be empty: %+v", sum)
	}
	listing := out.String()
	if !strings.Contains(listing, "/w/a") || !strings.Contains(listing, "/w/b") {
		t.Errorf("dry run should list candidates, got %q", listing)
	}
}

func TestDeletion_EmptyListIsNoop(t *testing.T) {
	confirm := &fakeConfirm{answer: false}
	c := &DeletionCoordinator{Confirm: confirm, Parallel: 2}

	sum, err := c.Run(nil)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if sum.FreedBytes != 0 || len(sum.Failed) != 0 {
		t.Errorf("summary: %+v", sum)
	}
	if len(confirm.asked) != 0 {
		t.Error("empty list must not prompt")
	}
}

func TestDeletion_ObserverSeesFullDrain(t *testing.T) {
	fs := newFakeFS(map[string]int64{"/w/a": 1, "/w/b": 2, "/w/c": 3})
	var snaps []progress.Snapshot
	c := &DeletionCoordinator{
		Sizer:    fs,
		Deleter:  fs,
		Parallel: 2,
		Force:    true,
		Observe:  func(s progress.Snapshot) { snaps = append(snaps, s) },
	}

	if _, err := c.Run([]string{"/w/a", "/w/b", "/w/c"}); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(snaps) == 0 {
		t.Fatal("expected progress snapshots")
	}
	last := snaps[len(snaps)-1]
	if last.Completed != 3 || last.Total != 3 {
		t.Errorf("final snapshot: %+v", last)
	}
	if last.Phase != progress.PhaseDelete {
		t.Errorf("phase: got %v", last.Phase)
	}
}
