package files

import "errors"

var (
	ErrLocked           = errors.New("another wgpeer run holds the lock")
	ErrFailedToLock     = errors.New("failed to acquire lock")
	ErrFailedToSnapshot = errors.New("failed to snapshot file")
	ErrFailedToRestore  = errors.New("failed to restore file")
)
