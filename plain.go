// pattern: Imperative Shell
package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"sweeper/internal/progress"
	"sweeper/internal/scan"
	"sweeper/internal/sweep"
)

// stdinConfirmer asks on the terminal and reads a single line.
type stdinConfirmer struct {
	in  io.Reader
	out io.Writer
}

func (c *stdinConfirmer) Confirm(message string) bool {
	fmt.Fprintf(c.out, "%s [y/N] ", message)
	line, err := bufio.NewReader(c.in).ReadString('\n')
	if err != nil {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	}
	return false
}

// plainReporter prints one line per progress event. It is intentionally
// dumb: no cursor movement, safe to pipe into a file.
type plainReporter struct {
	out      io.Writer
	lastLine map[progress.Phase]int
}

func newPlainReporter(out io.Writer) *plainReporter {
	return &plainReporter{out: out, lastLine: make(map[progress.Phase]int)}
}

func (r *plainReporter) ScanNote(n scan.Notification) {
	fmt.Fprintf(r.out, "scan: %d directories, %d trash, %d projects (%s)\n",
		n.Scanned, n.Trash, n.Projects, n.Current)
}

func (r *plainReporter) ScanDone(res scan.Result) {
	fmt.Fprintf(r.out, "scan: done, %d directories, %d trash, %d projects\n",
		res.Scanned, len(res.TrashDirs), len(res.Projects))
}

// Pool prints a line whenever another job completes. Submission-only
// snapshots are skipped to keep the output readable.
func (r *plainReporter) Pool(s progress.Snapshot) {
	if r.lastLine[s.Phase] == s.Completed && s.Completed != s.Total {
		return
	}
	r.lastLine[s.Phase] = s.Completed
	line := fmt.Sprintf("%s: %d/%d (%.0f%%)", s.Phase, s.Completed, s.Total, s.Percent())
	if s.Completed < s.Total {
		line += fmt.Sprintf(" eta %s", progress.FormatDuration(s.ETA()))
	}
	fmt.Fprintln(r.out, line)
}

func (r *plainReporter) Summary(sum sweep.RunSummary, dryRun bool) {
	if dryRun {
		fmt.Fprintln(r.out, "dry run: nothing was deleted or cleaned")
	}
	fmt.Fprintf(r.out, "elapsed       %s\n", progress.FormatDuration(sum.Elapsed))
	fmt.Fprintf(r.out, "scanned       %d directories\n", sum.Scanned)
	fmt.Fprintf(r.out, "space freed   %s\n", progress.FormatBytes(sum.FreedBytes))
	fmt.Fprintf(r.out, "cleaned       %d projects\n", sum.ProjectsCleaned)
	if len(sum.FailedDeletions) > 0 {
		fmt.Fprintf(r.out, "failed to delete %d paths:\n", len(sum.FailedDeletions))
		for _, p := range sum.FailedDeletions {
			fmt.Fprintf(r.out, "  %s\n", p)
		}
	}
}
