package hackage

import (
	"strings"
	"time"

	"go.trai.ch/hackidx/internal/core/domain"
	"go.trai.ch/hackidx/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.MetadataBuilder = (*Builder)(nil)

// Builder accumulates release metadata from an index archive. Two
// independent sources of truth are merged per (package, version): the
// manifest file entries contribute the manifest hash and revision count,
// the signed-targets documents contribute the tarball hash.
type Builder struct {
	walker ports.IndexWalker
	logger ports.Logger
}

// NewBuilder creates a new Builder.
func NewBuilder(walker ports.IndexWalker, logger ports.Logger) *Builder {
	return &Builder{walker: walker, logger: logger}
}

// Build scans the whole archive and verifies every release record carries
// both hashes.
func (b *Builder) Build(indexPath string) (domain.Metadata, error) {
	md, err := b.fold(indexPath, time.Time{})
	if err != nil {
		return nil, err
	}
	if err := VerifyComplete(md); err != nil {
		return nil, err
	}
	return md, nil
}

// BuildAt reconstructs the index state as of cutoff. Entries stamped after
// the cutoff are skipped, and the completeness check is waived: a
// historical state may legitimately hold a release whose second hash had
// not been published yet.
func (b *Builder) BuildAt(indexPath string, cutoff time.Time) (domain.Metadata, error) {
	return b.fold(indexPath, cutoff)
}

func (b *Builder) fold(indexPath string, cutoff time.Time) (domain.Metadata, error) {
	md := make(domain.Metadata)
	start := time.Now()
	entries := 0

	err := b.walker.Walk(indexPath, func(entry domain.IndexEntry, content []byte) error {
		if !cutoff.IsZero() && entry.ModTime.After(cutoff) {
			return nil
		}
		entries++
		switch file := entry.File.(type) {
		case domain.ManifestFile:
			mergeManifest(md, file, content)
			return nil
		case domain.SignedTargets:
			return mergeTargets(md, file, entry.Path, content)
		case domain.PreferredVersionsFile:
			return mergePreferred(md, file, entry.Path, content)
		default:
			return zerr.With(domain.ErrUnrecognizedIndexPath, "path", entry.Path)
		}
	})
	if err != nil {
		return nil, err
	}

	b.logger.Debug("index scan complete",
		"path", indexPath,
		"entries", entries,
		"packages", len(md),
		"elapsed", time.Since(start).String(),
	)
	return md, nil
}

// mergeManifest records a manifest file occurrence. The index lists every
// historical revision in archive order, so each occurrence after the first
// bumps the revision, with one exception: a record whose manifest hash is
// still invalid is a placeholder bootstrapped by the signed-targets side,
// and filling it in does not count as a new revision.
func mergeManifest(md domain.Metadata, file domain.ManifestFile, content []byte) {
	h := domain.NewSHA256Hash(content)
	info := packageInfo(md, file.Package)

	rel, exists := info.Versions[file.Version]
	switch {
	case !exists:
		info.Versions[file.Version] = domain.ReleaseInfo{Revision: 0, ManifestHash: h}
	case rel.Revision == 0 && !rel.ManifestHash.Valid():
		rel.ManifestHash = h
		info.Versions[file.Version] = rel
	default:
		rel.Revision++
		rel.ManifestHash = h
		info.Versions[file.Version] = rel
	}
}

// mergeTargets records a tarball hash from a signed-targets document,
// leaving any manifest-side state untouched.
func mergeTargets(md domain.Metadata, file domain.SignedTargets, path string, content []byte) error {
	hashes, err := ParseSignedTargets(content, file.Package, file.Version)
	if err != nil {
		return zerr.With(err, "path", path)
	}

	info := packageInfo(md, file.Package)
	rel := info.Versions[file.Version]
	rel.TarballHash = hashes.SHA256
	info.Versions[file.Version] = rel
	return nil
}

// mergePreferred sets a package's preferred range. The content must start
// with the literal package name, followed by the range expression. Blank
// content is a published no-op and is ignored.
func mergePreferred(md domain.Metadata, file domain.PreferredVersionsFile, path string, content []byte) error {
	text := strings.TrimSpace(string(content))
	if text == "" {
		return nil
	}

	rest, ok := strings.CutPrefix(text, file.Package.String())
	if !ok {
		return zerr.With(zerr.With(domain.ErrMalformedPreferred, "path", path), "content", text)
	}
	r, err := domain.ParseVersionRange(rest)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrMalformedPreferred.Error()), "path", path)
	}

	packageInfo(md, file.Package).Preferred = r
	return nil
}

func packageInfo(md domain.Metadata, name domain.PackageName) *domain.PackageInfo {
	info, ok := md[name]
	if !ok {
		info = domain.NewPackageInfo()
		md[name] = info
	}
	return info
}
