package domain

import "go.trai.ch/zerr"

var (
	// ErrMalformedHash is returned when hash text or persisted hash bytes do
	// not decode to the expected digest length.
	ErrMalformedHash = zerr.New("malformed hash value")

	// ErrInvalidPackageName is returned when a package name does not follow
	// the hyphenated-alphanumeric grammar.
	ErrInvalidPackageName = zerr.New("invalid package name")

	// ErrInvalidVersion is returned when a version is not a dot-separated
	// sequence of non-negative integers.
	ErrInvalidVersion = zerr.New("invalid version")

	// ErrInvalidVersionRange is returned when a version range expression
	// cannot be parsed.
	ErrInvalidVersionRange = zerr.New("invalid version range")

	// ErrUnrecognizedIndexPath is returned when an index entry path matches
	// none of the three recognized shapes.
	ErrUnrecognizedIndexPath = zerr.New("unrecognized index entry path")

	// ErrMalformedTargets is returned when a signed-targets document is
	// structurally invalid.
	ErrMalformedTargets = zerr.New("malformed signed-targets document")

	// ErrTargetMissing is returned when a signed-targets document lacks the
	// entry for its own package tarball.
	ErrTargetMissing = zerr.New("tarball target missing from signed-targets document")

	// ErrMalformedPreferred is returned when preferred-versions content does
	// not start with the package name or carries an unparsable range.
	ErrMalformedPreferred = zerr.New("malformed preferred-versions entry")

	// ErrIncompleteRelease is returned after a full scan when a release is
	// missing a valid manifest or tarball hash.
	ErrIncompleteRelease = zerr.New("release record is missing a hash")

	// ErrNoRepository is returned when no index path is configured for the
	// requested repository.
	ErrNoRepository = zerr.New("no repository configured")

	// ErrArchiveRead is returned when the index archive is corrupt or
	// truncated.
	ErrArchiveRead = zerr.New("failed to read index archive")

	// ErrCacheDecode marks an unusable cache file. It is never surfaced to
	// callers; the cache manager degrades to a rebuild instead.
	ErrCacheDecode = zerr.New("unusable metadata cache")

	// ErrCacheWrite is returned when a freshly built snapshot cannot be
	// persisted.
	ErrCacheWrite = zerr.New("failed to write metadata cache")

	// ErrPackageNotFound is returned when a requested package is absent from
	// the metadata map.
	ErrPackageNotFound = zerr.New("package not found in index")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")
)
