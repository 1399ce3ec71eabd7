package ports

import "go.trai.ch/hackidx/internal/core/domain"

// EntryFunc is the fold step applied to each classified regular-file entry.
// The content slice is only valid for the duration of the call.
type EntryFunc func(entry domain.IndexEntry, content []byte) error

// IndexWalker streams an index archive sequentially, classifying each
// regular-file entry and handing it to fn. Directory entries and other
// archive entry kinds are skipped. The first archive, classification, or fn
// error aborts the walk; there are no partial results.
//
//go:generate mockgen -source=walker.go -destination=mocks/mock_walker.go -package=mocks
type IndexWalker interface {
	Walk(indexPath string, fn EntryFunc) error
}
