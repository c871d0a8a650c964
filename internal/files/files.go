package files

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"wgpeer/internal/logger"

	"github.com/gofrs/flock"
	"github.com/moby/sys/atomicwriter"
)

// WriteFile replaces path with data through a temp file and rename, so readers
// never observe a partially written file.
func WriteFile(path string, data []byte, perm os.FileMode) error {
	return atomicwriter.WriteFile(path, data, perm)
}

type snapshotEntry struct {
	path    string
	existed bool
	data    []byte
	perm    os.FileMode
}

// Snapshot remembers the contents of files so they can be put back after a failed run.
type Snapshot struct {
	entries []snapshotEntry
}

func TakeSnapshot(paths ...string) (*Snapshot, error) {
	s := &Snapshot{}

	for _, path := range paths {
		info, err := os.Stat(path)

		if errors.Is(err, fs.ErrNotExist) {
			s.entries = append(s.entries, snapshotEntry{path: path})
			continue
		}

		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrFailedToSnapshot, path, err)
		}

		data, err := os.ReadFile(path)

		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrFailedToSnapshot, path, err)
		}

		s.entries = append(s.entries, snapshotEntry{
			path:    path,
			existed: true,
			data:    data,
			perm:    info.Mode().Perm(),
		})
	}

	return s, nil
}

// Restore writes back every file that existed and removes every file that did not.
// It keeps going after a failure and returns all errors joined.
func (s *Snapshot) Restore() error {
	var errs []error

	for _, entry := range s.entries {
		if entry.existed {
			logger.Info("Restoring previous contents of %s", entry.path)

			if err := WriteFile(entry.path, entry.data, entry.perm); err != nil {
				errs = append(errs, fmt.Errorf("%w: %s: %v", ErrFailedToRestore, entry.path, err))
			}

			continue
		}

		logger.Info("Removing %s", entry.path)

		if err := os.Remove(entry.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			errs = append(errs, fmt.Errorf("%w: %s: %v", ErrFailedToRestore, entry.path, err))
		}
	}

	return errors.Join(errs...)
}

type Lock struct {
	fl *flock.Flock
}

// AcquireLock takes an exclusive lock on path without waiting.
func AcquireLock(path string) (*Lock, error) {
	fl := flock.New(path)

	locked, err := fl.TryLock()

	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrFailedToLock, path, err)
	}

	if !locked {
		return nil, fmt.Errorf("%w: %s", ErrLocked, path)
	}

	return &Lock{fl: fl}, nil
}

func (l *Lock) Release() error {
	return l.fl.Unlock()
}
