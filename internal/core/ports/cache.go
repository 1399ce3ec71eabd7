package ports

import "go.trai.ch/hackidx/internal/core/domain"

// MetadataCache returns release metadata for a configured repository,
// serving a persisted snapshot when the source index is unchanged.
//
//go:generate mockgen -source=cache.go -destination=mocks/mock_cache.go -package=mocks
type MetadataCache interface {
	// Metadata returns the snapshot for repo, rebuilding it when stale or
	// unreadable.
	Metadata(repo string) (domain.Metadata, error)

	// Refresh rebuilds the snapshot unconditionally.
	Refresh(repo string) (domain.Metadata, error)
}
