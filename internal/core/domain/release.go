package domain

import "time"

// ReleaseInfo is the merged record for one (package, version) release. The
// two hashes come from independent sources of truth: ManifestHash from the
// manifest file entries themselves, TarballHash from the signed-targets
// document. After a full scan both must be valid.
type ReleaseInfo struct {
	// Revision counts manifest content changes for this version across the
	// archive's history, starting at 0 for the initial upload.
	Revision uint64 `cbor:"revision"`

	// ManifestHash is the SHA-256 of the most recent manifest revision.
	ManifestHash SHA256Hash `cbor:"manifest_hash"`

	// TarballHash is the SHA-256 of the release's source tarball.
	TarballHash SHA256Hash `cbor:"tarball_hash"`
}

// PackageInfo collects everything the index knows about one package.
type PackageInfo struct {
	// Versions maps each released version to its merged record.
	Versions map[Version]ReleaseInfo `cbor:"versions"`

	// Preferred is the recommended version range. It defaults to any
	// version until a preferred-versions entry arrives.
	Preferred VersionRange `cbor:"preferred"`
}

// NewPackageInfo returns an empty PackageInfo with the default preferred
// range.
func NewPackageInfo() *PackageInfo {
	return &PackageInfo{Versions: make(map[Version]ReleaseInfo)}
}

// PreferredVersions filters Versions down to those inside the preferred
// range.
func (p *PackageInfo) PreferredVersions() map[Version]ReleaseInfo {
	out := make(map[Version]ReleaseInfo)
	for v, rel := range p.Versions {
		if p.Preferred.Contains(v) {
			out[v] = rel
		}
	}
	return out
}

// Metadata is the full per-package snapshot extracted from an index archive.
type Metadata map[PackageName]*PackageInfo

// IndexEntry describes one regular-file entry of the index archive during a
// fold. The content bytes handed alongside it are transient and must not be
// retained past the fold step.
type IndexEntry struct {
	// Path is the entry path inside the archive.
	Path string

	// File is the classified entry kind.
	File IndexFile

	// ModTime is the entry's recorded modification time.
	ModTime time.Time

	// Mode, UID and GID carry the archive's ownership and permission
	// metadata. They are informational only.
	Mode int64
	UID  int
	GID  int
}
