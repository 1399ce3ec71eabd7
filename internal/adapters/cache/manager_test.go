package cache_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/hackidx/internal/adapters/cache"
	"go.trai.ch/hackidx/internal/adapters/flock"
	"go.trai.ch/hackidx/internal/core/domain"
	"go.trai.ch/hackidx/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

type managerFixture struct {
	manager  *cache.Manager
	resolver *mocks.MockRepoResolver
	builder  *mocks.MockMetadataBuilder
	dir      string
	index    string
}

func newManagerFixture(t *testing.T) *managerFixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	resolver := mocks.NewMockRepoResolver(ctrl)
	builder := mocks.NewMockMetadataBuilder(ctrl)
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Debug(gomock.Any(), gomock.Any()).AnyTimes()
	logger.EXPECT().Info(gomock.Any(), gomock.Any()).AnyTimes()

	root := t.TempDir()
	index := filepath.Join(root, "01-index.tar")
	require.NoError(t, os.WriteFile(index, []byte("archive bytes"), 0o644))

	dir := filepath.Join(root, "snapshots")
	return &managerFixture{
		manager:  cache.NewManager(dir, resolver, builder, flock.Noop(), logger),
		resolver: resolver,
		builder:  builder,
		dir:      dir,
		index:    index,
	}
}

func TestManager_Metadata_RebuildThenHit(t *testing.T) {
	f := newManagerFixture(t)
	md := sampleMetadata(t)

	f.resolver.EXPECT().IndexPath("hackage").Return(f.index, true).Times(2)
	f.builder.EXPECT().Build(f.index).Return(md, nil).Times(1)

	first, err := f.manager.Metadata("hackage")
	require.NoError(t, err)
	assert.Contains(t, first, domain.PackageName("acme"))

	// Unchanged index, second read comes from the snapshot.
	second, err := f.manager.Metadata("hackage")
	require.NoError(t, err)
	assert.Contains(t, second, domain.PackageName("acme"))
	assert.Equal(t, first["acme"].Versions, second["acme"].Versions)
}

func TestManager_Metadata_StaleOnSizeChange(t *testing.T) {
	f := newManagerFixture(t)
	md := sampleMetadata(t)

	f.resolver.EXPECT().IndexPath("hackage").Return(f.index, true).Times(2)
	f.builder.EXPECT().Build(f.index).Return(md, nil).Times(2)

	_, err := f.manager.Metadata("hackage")
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(f.index, []byte("archive bytes plus appended entry"), 0o644))

	_, err = f.manager.Metadata("hackage")
	require.NoError(t, err)
}

func TestManager_Metadata_StaleOnTimeChange(t *testing.T) {
	f := newManagerFixture(t)
	md := sampleMetadata(t)

	f.resolver.EXPECT().IndexPath("hackage").Return(f.index, true).Times(2)
	f.builder.EXPECT().Build(f.index).Return(md, nil).Times(2)

	_, err := f.manager.Metadata("hackage")
	require.NoError(t, err)

	// Same size, different mtime.
	later := time.Now().Add(2 * time.Hour)
	require.NoError(t, os.Chtimes(f.index, later, later))

	_, err = f.manager.Metadata("hackage")
	require.NoError(t, err)
}

func TestManager_Metadata_CorruptSnapshotRebuilds(t *testing.T) {
	f := newManagerFixture(t)
	md := sampleMetadata(t)

	f.resolver.EXPECT().IndexPath("hackage").Return(f.index, true).Times(2)
	f.builder.EXPECT().Build(f.index).Return(md, nil).Times(2)

	_, err := f.manager.Metadata("hackage")
	require.NoError(t, err)

	// Flip the magic; the snapshot must be treated as a miss, not an error.
	snapPath := filepath.Join(f.dir, domain.CacheFileName("hackage"))
	data, err := os.ReadFile(snapPath)
	require.NoError(t, err)
	data[0] ^= 0xFF
	require.NoError(t, os.WriteFile(snapPath, data, 0o644))

	got, err := f.manager.Metadata("hackage")
	require.NoError(t, err)
	assert.Contains(t, got, domain.PackageName("acme"))
}

func TestManager_Refresh_AlwaysRebuilds(t *testing.T) {
	f := newManagerFixture(t)
	md := sampleMetadata(t)

	f.resolver.EXPECT().IndexPath("hackage").Return(f.index, true).Times(2)
	f.builder.EXPECT().Build(f.index).Return(md, nil).Times(2)

	_, err := f.manager.Refresh("hackage")
	require.NoError(t, err)

	_, err = f.manager.Refresh("hackage")
	require.NoError(t, err)
}

func TestManager_Metadata_UnknownRepository(t *testing.T) {
	f := newManagerFixture(t)

	f.resolver.EXPECT().IndexPath("nowhere").Return("", false)

	_, err := f.manager.Metadata("nowhere")
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrNoRepository.Error())
}

func TestManager_Metadata_MissingIndexFile(t *testing.T) {
	f := newManagerFixture(t)

	f.resolver.EXPECT().IndexPath("hackage").Return(filepath.Join(f.dir, "gone.tar"), true)

	_, err := f.manager.Metadata("hackage")
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrArchiveRead.Error())
}

func TestManager_Metadata_BuilderErrorPropagates(t *testing.T) {
	f := newManagerFixture(t)

	f.resolver.EXPECT().IndexPath("hackage").Return(f.index, true)
	f.builder.EXPECT().Build(f.index).Return(nil, assert.AnError)

	_, err := f.manager.Metadata("hackage")
	require.ErrorIs(t, err, assert.AnError)
}

func TestManager_LockHeldAcrossRebuild(t *testing.T) {
	ctrl := gomock.NewController(t)
	resolver := mocks.NewMockRepoResolver(ctrl)
	builder := mocks.NewMockMetadataBuilder(ctrl)
	locker := mocks.NewMockLocker(ctrl)
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Debug(gomock.Any(), gomock.Any()).AnyTimes()
	logger.EXPECT().Info(gomock.Any(), gomock.Any()).AnyTimes()

	root := t.TempDir()
	index := filepath.Join(root, "01-index.tar")
	require.NoError(t, os.WriteFile(index, []byte("archive bytes"), 0o644))
	dir := filepath.Join(root, "snapshots")

	// One acquisition per invocation, released even when the rebuild fails.
	released := 0
	locker.EXPECT().
		Lock(filepath.Join(dir, domain.LockFileName)).
		DoAndReturn(func(string) (func(), error) {
			return func() { released++ }, nil
		}).
		Times(2)

	manager := cache.NewManager(dir, resolver, builder, locker, logger)

	resolver.EXPECT().IndexPath("hackage").Return(index, true).Times(2)
	builder.EXPECT().Build(index).Return(sampleMetadata(t), nil)

	_, err := manager.Metadata("hackage")
	require.NoError(t, err)
	assert.Equal(t, 1, released)

	builder.EXPECT().Build(index).Return(nil, assert.AnError)

	_, err = manager.Refresh("hackage")
	require.ErrorIs(t, err, assert.AnError)
	assert.Equal(t, 2, released)
}

func TestManager_Metadata_LockFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	resolver := mocks.NewMockRepoResolver(ctrl)
	builder := mocks.NewMockMetadataBuilder(ctrl)
	locker := mocks.NewMockLocker(ctrl)
	logger := mocks.NewMockLogger(ctrl)

	root := t.TempDir()
	index := filepath.Join(root, "01-index.tar")
	require.NoError(t, os.WriteFile(index, []byte("archive bytes"), 0o644))
	dir := filepath.Join(root, "snapshots")

	resolver.EXPECT().IndexPath("hackage").Return(index, true)
	locker.EXPECT().Lock(filepath.Join(dir, domain.LockFileName)).Return(nil, assert.AnError)

	manager := cache.NewManager(dir, resolver, builder, locker, logger)

	_, err := manager.Metadata("hackage")
	require.Error(t, err)
	assert.ErrorContains(t, err, "failed to acquire cache lock")
}

func TestManager_Metadata_SnapshotFileInstalled(t *testing.T) {
	f := newManagerFixture(t)
	md := sampleMetadata(t)

	f.resolver.EXPECT().IndexPath("hackage").Return(f.index, true)
	f.builder.EXPECT().Build(f.index).Return(md, nil)

	_, err := f.manager.Metadata("hackage")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(f.dir, domain.CacheFileName("hackage")))
	require.NoError(t, err)

	snap, err := cache.DecodeSnapshot(data)
	require.NoError(t, err)

	fi, err := os.Stat(f.index)
	require.NoError(t, err)
	assert.Equal(t, fi.Size(), snap.SourceSize)
	assert.Equal(t, fi.ModTime().Unix(), snap.SourceTime)
}
