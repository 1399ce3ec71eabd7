package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// IndexFile is the closed set of recognized index entry kinds. Exactly three
// path shapes exist in the archive:
//
//	<pkg>/<ver>/<pkg>.cabal    manifest file (one per revision)
//	<pkg>/<ver>/package.json   signed-targets document
//	<pkg>/preferred-versions   preferred version range
//
// Anything else is a classification error.
type IndexFile interface {
	indexFile()
}

// ManifestFile is a per-(package, version) build manifest. Repeated entries
// for the same version are later revisions in archive order.
type ManifestFile struct {
	Package PackageName
	Version Version
}

// SignedTargets is the JSON document carrying the release tarball's
// published length and hashes.
type SignedTargets struct {
	Package PackageName
	Version Version
}

// PreferredVersionsFile is a package's recommended version range.
type PreferredVersionsFile struct {
	Package PackageName
}

func (ManifestFile) indexFile()          {}
func (SignedTargets) indexFile()         {}
func (PreferredVersionsFile) indexFile() {}

// ClassifyIndexPath maps an archive entry path to its IndexFile kind. It is
// pure: directory entries and other archive entry kinds must be filtered out
// by the walker before classification.
func ClassifyIndexPath(path string) (IndexFile, error) {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	switch len(parts) {
	case 3:
		return classifyVersioned(path, parts[0], parts[1], parts[2])
	case 2:
		if parts[1] == "preferred-versions" {
			name, err := ParsePackageName(parts[0])
			if err != nil {
				return nil, zerr.With(zerr.Wrap(err, ErrUnrecognizedIndexPath.Error()), "path", path)
			}
			return PreferredVersionsFile{Package: name}, nil
		}
		return nil, zerr.With(ErrUnrecognizedIndexPath, "path", path)
	default:
		return nil, zerr.With(ErrUnrecognizedIndexPath, "path", path)
	}
}

func classifyVersioned(path, pkg, ver, file string) (IndexFile, error) {
	name, err := ParsePackageName(pkg)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, ErrUnrecognizedIndexPath.Error()), "path", path)
	}
	version, err := ParseVersion(ver)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, ErrUnrecognizedIndexPath.Error()), "path", path)
	}
	switch file {
	case pkg + ".cabal":
		return ManifestFile{Package: name, Version: version}, nil
	case "package.json":
		return SignedTargets{Package: name, Version: version}, nil
	default:
		return nil, zerr.With(zerr.With(ErrUnrecognizedIndexPath, "path", path), "file", file)
	}
}
