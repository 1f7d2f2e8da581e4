// pattern: Imperative Shell

package scan

import (
	"os"
	"path/filepath"
	"strings"
)

// notifyEvery controls how often the walk emits a progress notification.
const notifyEvery = 10

// Options configures a Scanner.
type Options struct {
	TrashNames   []string // exact directory names deleted wholesale
	SkipNames    []string // exact directory names never descended, never recorded
	HiddenPrefix string   // directories starting with this prefix are not descended
	MarkerFile   string   // file whose presence marks a project root
	Notify       func(Notification)
}

// Scanner walks a directory tree once, classifying each directory. The walk
// is single-threaded; per-directory I/O latency is the only real cost, and
// deterministic classification matters more than speed here.
type Scanner struct {
	trash        map[string]struct{}
	skip         map[string]struct{}
	hiddenPrefix string
	marker       string
	notify       func(Notification)
}

// NewScanner creates a scanner from the given options.
func NewScanner(opts Options) *Scanner {
	s := &Scanner{
		trash:        make(map[string]struct{}, len(opts.TrashNames)),
		skip:         make(map[string]struct{}, len(opts.SkipNames)),
		hiddenPrefix: opts.HiddenPrefix,
		marker:       opts.MarkerFile,
		notify:       opts.Notify,
	}
	for _, n := range opts.TrashNames {
		s.trash[n] = struct{}{}
	}
	for _, n := range opts.SkipNames {
		s.skip[n] = struct{}{}
	}
	return s
}

// Scan walks the tree rooted at root and returns the discovered project and
// trash lists. The root itself is always descended regardless of its name.
func (s *Scanner) Scan(root string) Result {
	var res Result
	s.visit(root, root, true, &res)
	return res
}

// visit examines one directory. Classification happens before any recursion:
// a trash-named directory is recorded and never entered, a skip-named or
// hidden directory is silently ignored. The project-marker check does not
// stop descent, so nested trash and nested projects are still found.
func (s *Scanner) visit(root, dir string, isRoot bool, res *Result) {
	res.Scanned++
	if s.notify != nil && res.Scanned%notifyEvery == 0 {
		rel, err := filepath.Rel(root, dir)
		if err != nil {
			rel = dir
		}
		s.notify(Notification{
			Scanned:  res.Scanned,
			Trash:    len(res.TrashDirs),
			Projects: len(res.Projects),
			Current:  rel,
		})
	}

	if !isRoot {
		name := filepath.Base(dir)
		if _, ok := s.trash[name]; ok {
			res.TrashDirs = append(res.TrashDirs, dir)
			return
		}
		if _, ok := s.skip[name]; ok {
			return
		}
		if s.hiddenPrefix != "" && strings.HasPrefix(name, s.hiddenPrefix) {
			return
		}
	}

	if s.hasMarker(dir) {
		res.Projects = append(res.Projects, dir)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return // unreadable directories are leaves, not errors
	}
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		s.visit(root, filepath.Join(dir, entry.Name()), false, res)
	}
}

func (s *Scanner) hasMarker(dir string) bool {
	if s.marker == "" {
		return false
	}
	_, err := os.Stat(filepath.Join(dir, s.marker))
	return err == nil
}
