// Package archive streams package-repository index tarballs.
package archive

import (
	"archive/tar"
	"errors"
	"io"
	"os"

	"go.trai.ch/hackidx/internal/core/domain"
	"go.trai.ch/hackidx/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.IndexWalker = (*Walker)(nil)

// Walker reads an index archive sequentially. The archive is append-only:
// one pass in entry order visits every manifest revision, signed-targets
// document, and preferred-versions entry ever published.
type Walker struct{}

// NewWalker creates a new Walker.
func NewWalker() *Walker {
	return &Walker{}
}

// Walk folds fn over every classified regular-file entry of the archive at
// indexPath. Directories and other entry kinds are skipped without invoking
// fn. The first archive error, classification error, or fn error aborts the
// walk with the offending entry attached; no partial fold is reported back.
func (w *Walker) Walk(indexPath string, fn ports.EntryFunc) error {
	f, err := os.Open(indexPath) //nolint:gosec // Path comes from the repository configuration
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrArchiveRead.Error()), "path", indexPath)
	}
	defer f.Close() //nolint:errcheck // Read-only file

	tr := tar.NewReader(f)
	for {
		hdr, err := tr.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrArchiveRead.Error()), "path", indexPath)
		}
		if hdr.Typeflag != tar.TypeReg {
			continue
		}

		file, err := domain.ClassifyIndexPath(hdr.Name)
		if err != nil {
			return err
		}

		content, err := io.ReadAll(tr)
		if err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrArchiveRead.Error()), "entry", hdr.Name)
		}

		entry := domain.IndexEntry{
			Path:    hdr.Name,
			File:    file,
			ModTime: hdr.ModTime,
			Mode:    hdr.Mode,
			UID:     hdr.Uid,
			GID:     hdr.Gid,
		}
		if err := fn(entry, content); err != nil {
			return err
		}
	}
}
