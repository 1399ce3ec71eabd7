package cache_test

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/hackidx/internal/adapters/cache"
	"go.trai.ch/hackidx/internal/core/domain"
)

func sampleMetadata(t *testing.T) domain.Metadata {
	t.Helper()

	preferred, err := domain.ParseVersionRange(">=1.0 && <2.0")
	require.NoError(t, err)

	info := domain.NewPackageInfo()
	info.Versions["1.0"] = domain.ReleaseInfo{
		Revision:     2,
		ManifestHash: domain.NewSHA256Hash([]byte("manifest")),
		TarballHash:  domain.NewSHA256Hash([]byte("tarball")),
	}
	info.Preferred = preferred
	return domain.Metadata{"acme": info}
}

func TestSnapshot_RoundTrip(t *testing.T) {
	snap := cache.Snapshot{
		SourceSize: 123456,
		SourceTime: 1700000000,
		Packages:   sampleMetadata(t),
	}

	data, err := cache.EncodeSnapshot(snap)
	require.NoError(t, err)

	got, err := cache.DecodeSnapshot(data)
	require.NoError(t, err)

	assert.Equal(t, snap.SourceSize, got.SourceSize)
	assert.Equal(t, snap.SourceTime, got.SourceTime)
	require.Contains(t, got.Packages, domain.PackageName("acme"))

	rel := got.Packages["acme"].Versions["1.0"]
	assert.Equal(t, uint64(2), rel.Revision)
	assert.True(t, rel.ManifestHash.Equal(snap.Packages["acme"].Versions["1.0"].ManifestHash))
	assert.Equal(t, ">=1.0 && <2.0", got.Packages["acme"].Preferred.String())
}

func TestSnapshot_EncodeHeader(t *testing.T) {
	data, err := cache.EncodeSnapshot(cache.Snapshot{SourceSize: 7, SourceTime: 9})
	require.NoError(t, err)

	require.GreaterOrEqual(t, len(data), 24)
	assert.Equal(t, cache.Magic, binary.BigEndian.Uint64(data[0:8]))
	assert.Equal(t, uint64(7), binary.BigEndian.Uint64(data[8:16]))
	assert.Equal(t, uint64(9), binary.BigEndian.Uint64(data[16:24]))
}

func TestSnapshot_DecodeFailures(t *testing.T) {
	valid, err := cache.EncodeSnapshot(cache.Snapshot{SourceSize: 1, SourceTime: 2, Packages: sampleMetadata(t)})
	require.NoError(t, err)

	t.Run("short input", func(t *testing.T) {
		_, err := cache.DecodeSnapshot(valid[:10])
		require.Error(t, err)
		assert.ErrorContains(t, err, domain.ErrCacheDecode.Error())
	})

	t.Run("empty input", func(t *testing.T) {
		_, err := cache.DecodeSnapshot(nil)
		require.Error(t, err)
	})

	t.Run("corrupted magic", func(t *testing.T) {
		corrupted := append([]byte(nil), valid...)
		corrupted[0] ^= 0xFF
		_, err := cache.DecodeSnapshot(corrupted)
		require.Error(t, err)
		assert.ErrorContains(t, err, domain.ErrCacheDecode.Error())
	})

	t.Run("garbled payload", func(t *testing.T) {
		corrupted := append([]byte(nil), valid[:24]...)
		corrupted = append(corrupted, 0xFF, 0xFF, 0xFF)
		_, err := cache.DecodeSnapshot(corrupted)
		require.Error(t, err)
		assert.ErrorContains(t, err, domain.ErrCacheDecode.Error())
	})
}
