package cache

import (
	"os"
	"path/filepath"

	"go.trai.ch/hackidx/internal/core/domain"
	"go.trai.ch/hackidx/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.MetadataCache = (*Manager)(nil)

// Manager wraps the metadata builder with a persisted, staleness-checked
// snapshot per repository. A cross-process advisory lock serializes the
// stat-check-rebuild-write sequence; it is held for the entire possible
// rebuild, trading availability for a single writer.
type Manager struct {
	dir      string
	resolver ports.RepoResolver
	builder  ports.MetadataBuilder
	locker   ports.Locker
	logger   ports.Logger
}

// NewManager creates a Manager persisting snapshots under dir.
func NewManager(
	dir string,
	resolver ports.RepoResolver,
	builder ports.MetadataBuilder,
	locker ports.Locker,
	logger ports.Logger,
) *Manager {
	return &Manager{
		dir:      filepath.Clean(dir),
		resolver: resolver,
		builder:  builder,
		locker:   locker,
		logger:   logger,
	}
}

// Metadata returns the release metadata for repo. The persisted snapshot is
// served when its recorded source size and mtime exactly match the live
// index file; otherwise the archive is re-scanned and the snapshot
// replaced. An unreadable or garbled snapshot triggers a rebuild, never an
// error.
func (m *Manager) Metadata(repo string) (domain.Metadata, error) {
	return m.metadata(repo, false)
}

// Refresh rebuilds the snapshot for repo unconditionally.
func (m *Manager) Refresh(repo string) (domain.Metadata, error) {
	return m.metadata(repo, true)
}

func (m *Manager) metadata(repo string, force bool) (domain.Metadata, error) {
	indexPath, ok := m.resolver.IndexPath(repo)
	if !ok {
		return nil, zerr.With(domain.ErrNoRepository, "repository", repo)
	}

	if err := os.MkdirAll(m.dir, domain.DirPerm); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrCacheWrite.Error()), "dir", m.dir)
	}

	release, err := m.locker.Lock(filepath.Join(m.dir, domain.LockFileName))
	if err != nil {
		return nil, zerr.Wrap(err, "failed to acquire cache lock")
	}
	defer release()

	fi, err := os.Stat(indexPath)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrArchiveRead.Error()), "path", indexPath)
	}
	sourceSize := fi.Size()
	sourceTime := fi.ModTime().Unix()

	cachePath := filepath.Join(m.dir, domain.CacheFileName(repo))
	if !force {
		if snap, ok := m.readSnapshot(cachePath); ok {
			if snap.SourceSize == sourceSize && snap.SourceTime == sourceTime {
				m.logger.Debug("metadata cache hit", "repository", repo)
				return snap.Packages, nil
			}
			m.logger.Debug("metadata cache stale", "repository", repo)
		}
	}

	md, err := m.builder.Build(indexPath)
	if err != nil {
		return nil, err
	}

	snap := Snapshot{SourceSize: sourceSize, SourceTime: sourceTime, Packages: md}
	if err := m.writeSnapshot(cachePath, snap); err != nil {
		return nil, err
	}
	m.logger.Info("metadata cache rebuilt", "repository", repo, "packages", len(md))
	return md, nil
}

// readSnapshot loads and decodes the snapshot file. Every failure mode, a
// missing file, a short read, a magic mismatch, a garbled payload, is a
// cache miss.
func (m *Manager) readSnapshot(path string) (Snapshot, bool) {
	data, err := os.ReadFile(path) //nolint:gosec // Path is derived from the managed cache dir
	if err != nil {
		return Snapshot{}, false
	}
	snap, err := DecodeSnapshot(data)
	if err != nil {
		m.logger.Debug("discarding unusable metadata cache", "path", path, "reason", err.Error())
		return Snapshot{}, false
	}
	return snap, true
}

// writeSnapshot installs the snapshot via write-whole-then-rename so a
// concurrent reader never observes a half-written file.
func (m *Manager) writeSnapshot(path string, snap Snapshot) error {
	data, err := EncodeSnapshot(snap)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(m.dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return zerr.Wrap(err, domain.ErrCacheWrite.Error())
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return zerr.Wrap(err, domain.ErrCacheWrite.Error())
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return zerr.Wrap(err, domain.ErrCacheWrite.Error())
	}
	if err := os.Chmod(tmpPath, domain.FilePerm); err != nil {
		_ = os.Remove(tmpPath)
		return zerr.Wrap(err, domain.ErrCacheWrite.Error())
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return zerr.Wrap(err, domain.ErrCacheWrite.Error())
	}
	return nil
}
