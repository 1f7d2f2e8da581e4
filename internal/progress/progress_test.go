package progress

import (
	"strings"
	"testing"
	"time"
)

func TestSnapshotPercent(t *testing.T) {
	s := Snapshot{Completed: 3, Total: 4}
	if got := s.Percent(); got != 75 {
		t.Errorf("Percent: got %v, want 75", got)
	}
}

func TestSnapshotPercent_EmptyTotal(t *testing.T) {
	s := Snapshot{}
	if got := s.Percent(); got != 0 {
		t.Errorf("Percent with zero total: got %v, want 0", got)
	}
}

func TestSnapshotETA(t *testing.T) {
	// 2 of 6 done in 10s -> 4 remaining at 5s each = 20s
	s := Snapshot{Completed: 2, Total: 6, Elapsed: 10 * time.Second}
	if got := s.ETA(); got != 20*time.Second {
		t.Errorf("ETA: got %v, want 20s", got)
	}
}

func TestSnapshotETA_NothingCompleted(t *testing.T) {
	s := Snapshot{Total: 6, Elapsed: 10 * time.Second}
	if got := s.ETA(); got != 0 {
		t.Errorf("ETA with zero completed: got %v, want 0", got)
	}
}

func TestJoinActive_UnderBudget(t *testing.T) {
	got := JoinActive([]string{"a", "b", "c"}, 100)
	if got != "a, b, c" {
		t.Errorf("JoinActive: got %q", got)
	}
}

func TestJoinActive_Truncates(t *testing.T) {
	items := []string{
		strings.Repeat("x", 60),
		strings.Repeat("y", 60),
	}
	got := JoinActive(items, 100)
	if !strings.HasSuffix(got, "…") {
		t.Errorf("expected ellipsis suffix, got %q", got)
	}
	if len([]rune(got)) > 101 {
		t.Errorf("truncated string too long: %d runes", len([]rune(got)))
	}
}

func TestFormatBytes(t *testing.T) {
	cases := []struct {
		in   int64
		want string
	}{
		{0, "0 B"},
		{512, "512 B"},
		{1536, "1.50 KB"},
		{5 << 20, "5.00 MB"},
		{3 << 30, "3.00 GB"},
		{2 << 40, "2.00 TB"},
	}
	for _, c := range cases {
		if got := FormatBytes(c.in); got != c.want {
			t.Errorf("FormatBytes(%d): got %q, want %q", c.in, got, c.want)
		}
	}
}

func TestFormatDuration(t *testing.T) {
	cases := []struct {
		in   time.Duration
		want string
	}{
		{42 * time.Second, "42s"},
		{3*time.Minute + 5*time.Second, "3m 05s"},
		{time.Hour + 12*time.Minute, "1h 12m"},
		{-time.Second, "0s"},
	}
	for _, c := range cases {
		if got := FormatDuration(c.in); got != c.want {
			t.Errorf("FormatDuration(%v): got %q, want %q", c.in, got, c.want)
		}
	}
}

func TestPhaseString(t *testing.T) {
	if PhaseScan.String() != "scan" || PhaseDelete.String() != "delete" || PhaseClean.String() != "clean" {
		t.Error("unexpected phase names")
	}
}
