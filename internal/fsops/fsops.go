// pattern: Imperative Shell

package fsops

import (
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"sweeper/internal/logging"
)

// FS implements the sweep collaborator interfaces against the real
// filesystem and OS tooling.
type FS struct {
	logger *logging.ScopedLogger
}

// New creates an FS. logger may be nil.
func New(logger *logging.ScopedLogger) *FS {
	if logger == nil {
		logger = logging.NopLogger()
	}
	return &FS{logger: logger}
}

// SizeOf sums file sizes under path. Best-effort: entries that cannot be
// read are skipped and the partial sum is returned.
func (f *FS) SizeOf(path string) int64 {
	var total int64
	_ = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil // unreadable entries contribute nothing
		}
		if d.IsDir() || d.Type()&os.ModeSymlink != 0 {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return nil
		}
		total += info.Size()
		return nil
	})
	return total
}

// Delete removes the directory tree at path.
func (f *FS) Delete(path string) error {
	return os.RemoveAll(path)
}

// ForceDelete removes path with the OS remove command. Last resort after
// Delete fails; some trees (read-only files, odd permissions) survive
// os.RemoveAll but not a forced shell remove.
func (f *FS) ForceDelete(path string) error {
	var cmd *exec.Cmd
	if runtime.GOOS == "windows" {
		cmd = exec.Command("cmd", "/C", "rd", "/S", "/Q", path)
	} else {
		cmd = exec.Command("rm", "-rf", path)
	}
	out, err := cmd.CombinedOutput()
	if err != nil {
		f.logger.Warn("forced remove failed", "path", path, "error", err, "output", string(out))
		return err
	}
	return nil
}

// Exists reports whether path is still present.
func (f *FS) Exists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}
