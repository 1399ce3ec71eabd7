package hackage

import (
	"sort"

	"go.trai.ch/hackidx/internal/core/domain"
	"go.trai.ch/zerr"
)

// VerifyComplete checks that every release record carries a valid manifest
// and tarball hash. A violation means the index pairs a manifest file with
// no signed-targets entry or vice versa; the whole scan result is rejected
// rather than returning a release with a missing hash. Packages and
// versions are visited in sorted order so the reported violation is
// deterministic.
func VerifyComplete(md domain.Metadata) error {
	names := make([]domain.PackageName, 0, len(md))
	for name := range md {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })

	for _, name := range names {
		info := md[name]
		versions := make([]domain.Version, 0, len(info.Versions))
		for v := range info.Versions {
			versions = append(versions, v)
		}
		sort.Slice(versions, func(i, j int) bool {
			return domain.CompareVersions(versions[i], versions[j]) < 0
		})

		for _, v := range versions {
			rel := info.Versions[v]
			if !rel.ManifestHash.Valid() {
				return incomplete(name, v, "manifest")
			}
			if !rel.TarballHash.Valid() {
				return incomplete(name, v, "tarball")
			}
		}
	}
	return nil
}

func incomplete(name domain.PackageName, v domain.Version, kind string) error {
	err := zerr.With(domain.ErrIncompleteRelease, "package", name.String())
	err = zerr.With(err, "version", v.String())
	return zerr.With(err, "hash", kind)
}
