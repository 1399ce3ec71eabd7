package flock_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/hackidx/internal/adapters/flock"
)

func TestFileLocker_LockRelease(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lock")

	release, err := flock.New().Lock(path)
	require.NoError(t, err)
	require.NotNil(t, release)
	release()

	// The lock file is created and left behind.
	_, err = os.Stat(path)
	require.NoError(t, err)
}

func TestFileLocker_Reacquire(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lock")
	locker := flock.New()

	release, err := locker.Lock(path)
	require.NoError(t, err)
	release()

	release, err = locker.Lock(path)
	require.NoError(t, err)
	release()
}

func TestFileLocker_BlocksSecondHolder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lock")
	locker := flock.New()

	release, err := locker.Lock(path)
	require.NoError(t, err)

	acquired := make(chan struct{})
	go func() {
		r, err := locker.Lock(path)
		if err == nil {
			r()
		}
		close(acquired)
	}()

	select {
	case <-acquired:
		t.Fatal("second lock acquired while first still held")
	case <-time.After(100 * time.Millisecond):
	}

	release()

	select {
	case <-acquired:
	case <-time.After(2 * time.Second):
		t.Fatal("second lock never acquired after release")
	}
}

func TestFileLocker_UncreatableLockFile(t *testing.T) {
	_, err := flock.New().Lock(filepath.Join(t.TempDir(), "missing", "deeply", "lock"))
	require.Error(t, err)
}

func TestNoopLocker(t *testing.T) {
	release, err := flock.Noop().Lock("/anywhere/at/all")
	require.NoError(t, err)
	assert.NotPanics(t, release)
}
