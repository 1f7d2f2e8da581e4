// pattern: Functional Core

package scan

// Result holds the two lists produced by a completed walk. Both are in
// deterministic depth-first order and are not mutated after Scan returns.
type Result struct {
	Projects  []string // absolute paths of directories containing the marker file
	TrashDirs []string // absolute paths of disposable directories, never descended
	Scanned   int      // directories examined during the walk
}

// Empty reports whether the walk found nothing actionable.
func (r Result) Empty() bool {
	return len(r.Projects) == 0 && len(r.TrashDirs) == 0
}

// Notification is a periodic progress sample emitted during the walk.
type Notification struct {
	Scanned  int
	Trash    int
	Projects int
	Current  string // path of the current directory, relative to the scan root
}
