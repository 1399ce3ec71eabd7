// Package flock provides cross-process advisory locking for the cache
// directory.
package flock

import (
	"github.com/rogpeppe/go-internal/lockedfile"
	"go.trai.ch/hackidx/internal/core/ports"
	"go.trai.ch/zerr"
)

var (
	_ ports.Locker = (*FileLocker)(nil)
	_ ports.Locker = (*NoopLocker)(nil)
)

// FileLocker takes an exclusive advisory lock on a zero-length lock file.
// The kernel drops the lock when the holding process dies, so a crash
// mid-rebuild cannot leave a stale lock behind.
type FileLocker struct{}

// New creates a FileLocker.
func New() *FileLocker {
	return &FileLocker{}
}

// Lock blocks until the exclusive lock at path is held. The lock file is
// created if absent and intentionally never removed.
func (l *FileLocker) Lock(path string) (func(), error) {
	release, err := lockedfile.MutexAt(path).Lock()
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to lock"), "path", path)
	}
	return release, nil
}

// NoopLocker is the degraded mode for platforms without advisory locking.
// Concurrent rebuilds then race last-writer-wins, which the cache manager
// tolerates because it treats every decode failure as a miss.
type NoopLocker struct{}

// Noop creates a NoopLocker.
func Noop() *NoopLocker {
	return &NoopLocker{}
}

// Lock always succeeds without taking any lock.
func (l *NoopLocker) Lock(_ string) (func(), error) {
	return func() {}, nil
}
