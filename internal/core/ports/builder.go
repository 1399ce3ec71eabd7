package ports

import (
	"time"

	"go.trai.ch/hackidx/internal/core/domain"
)

// MetadataBuilder folds an index archive into per-package release metadata.
//
//go:generate mockgen -source=builder.go -destination=mocks/mock_builder.go -package=mocks
type MetadataBuilder interface {
	// Build scans the whole archive and verifies that every release record
	// carries both hashes.
	Build(indexPath string) (domain.Metadata, error)

	// BuildAt reconstructs the index state as of cutoff, skipping entries
	// stamped after it. Historical states are allowed to be incomplete, so
	// no consistency check runs.
	BuildAt(indexPath string, cutoff time.Time) (domain.Metadata, error)
}
