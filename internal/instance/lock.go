// pattern: Imperative Shell

package instance

import (
	"fmt"
	"path/filepath"

	"github.com/gofrs/flock"
)

const lockFileName = "sweeper.lock"

// Lock acquires an exclusive file lock so two sweeper runs cannot mutate
// the filesystem concurrently. Returns the flock handle (caller must defer
// Release) or an error if another run already holds the lock.
func Lock(dataDir string) (*flock.Flock, error) {
	lockPath := filepath.Join(dataDir, lockFileName)
	fl := flock.New(lockPath)
	locked, err := fl.TryLock()
	if err != nil {
		return nil, fmt.Errorf("failed to acquire lock: %w", err)
	}
	if !locked {
		return nil, fmt.Errorf("another sweeper run is already in progress")
	}
	return fl, nil
}

// Release releases the file lock.
func Release(fl *flock.Flock) {
	if fl != nil {
		_ = fl.Unlock()
	}
}
