package domain_test

import (
	"testing"

	"github.com/fxamacker/cbor/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/hackidx/internal/core/domain"
)

func TestPackageInfo_PreferredVersions(t *testing.T) {
	info := domain.NewPackageInfo()
	info.Versions["1.0"] = domain.ReleaseInfo{Revision: 0}
	info.Versions["1.5"] = domain.ReleaseInfo{Revision: 2}
	info.Versions["2.0"] = domain.ReleaseInfo{Revision: 1}

	t.Run("default range keeps everything", func(t *testing.T) {
		assert.Len(t, info.PreferredVersions(), 3)
	})

	t.Run("range filters", func(t *testing.T) {
		r, err := domain.ParseVersionRange(">=1.5")
		require.NoError(t, err)
		info.Preferred = r

		got := info.PreferredVersions()
		assert.Len(t, got, 2)
		assert.Contains(t, got, domain.Version("1.5"))
		assert.Contains(t, got, domain.Version("2.0"))
		assert.NotContains(t, got, domain.Version("1.0"))
	})
}

func TestMetadata_CBORRoundTrip(t *testing.T) {
	preferred, err := domain.ParseVersionRange(">=1.0 && <2.0")
	require.NoError(t, err)

	md := domain.Metadata{
		"acme": &domain.PackageInfo{
			Versions: map[domain.Version]domain.ReleaseInfo{
				"1.0": {
					Revision:     3,
					ManifestHash: domain.NewSHA256Hash([]byte("manifest")),
					TarballHash:  domain.NewSHA256Hash([]byte("tarball")),
				},
			},
			Preferred: preferred,
		},
	}

	data, err := cbor.Marshal(md)
	require.NoError(t, err)

	var got domain.Metadata
	require.NoError(t, cbor.Unmarshal(data, &got))

	require.Contains(t, got, domain.PackageName("acme"))
	rel := got["acme"].Versions["1.0"]
	assert.Equal(t, uint64(3), rel.Revision)
	assert.True(t, rel.ManifestHash.Equal(md["acme"].Versions["1.0"].ManifestHash))
	assert.True(t, rel.TarballHash.Equal(md["acme"].Versions["1.0"].TarballHash))
	assert.Equal(t, ">=1.0 && <2.0", got["acme"].Preferred.String())
}
