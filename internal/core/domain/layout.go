package domain

import (
	"os"
	"path/filepath"
)

const (
	// CacheDirName is the subdirectory of the user cache dir holding
	// metadata snapshots.
	CacheDirName = "cabal-parsers"

	// CacheFileSuffix is the extension of per-repository snapshot files.
	CacheFileSuffix = ".binary"

	// LockFileName is the zero-length file held with an exclusive advisory
	// lock while a snapshot is checked or rebuilt.
	LockFileName = "lock"

	// ConfigDirName is the subdirectory of the user config dir holding the
	// configuration file.
	ConfigDirName = "hackidx"

	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "hackidx.yaml"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultCacheDir returns the platform cache directory for snapshots
// (for example ~/.cache/cabal-parsers on Linux).
func DefaultCacheDir() (string, error) {
	base, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, CacheDirName), nil
}

// DefaultConfigPath returns the platform path of the configuration file.
func DefaultConfigPath() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, ConfigDirName, ConfigFileName), nil
}

// CacheFileName returns the snapshot file name for a repository
// ("hackage.binary" for the canonical repository).
func CacheFileName(repo string) string {
	return repo + CacheFileSuffix
}
