package freshness_test

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/views/internal/adapters/freshness"
	"go.trai.ch/views/internal/adapters/fs"
	"go.trai.ch/views/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func touch(t *testing.T, path string, stamp time.Time) {
	t.Helper()
	require.NoError(t, os.Chtimes(path, stamp, stamp))
}

func TestTracker_FirstObservationIsFresh(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "header.cshtml")
	require.NoError(t, os.WriteFile(path, []byte("h"), 0o600))
	stamp := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	touch(t, path, stamp)

	tracker := freshness.NewTracker(fs.NewFileSystem())

	assert.True(t, tracker.IsFresh(path))
	observed, ok := tracker.Observed(path)
	require.True(t, ok)
	assert.True(t, stamp.Equal(observed))

	assert.False(t, tracker.IsFresh(path), "unchanged file is stale")
}

func TestTracker_NewerWriteIsFresh(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "layout.cshtml")
	require.NoError(t, os.WriteFile(path, []byte("l"), 0o600))
	first := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	touch(t, path, first)

	tracker := freshness.NewTracker(fs.NewFileSystem())
	require.True(t, tracker.IsFresh(path))

	second := first.Add(time.Minute)
	touch(t, path, second)
	assert.True(t, tracker.IsFresh(path))
	observed, _ := tracker.Observed(path)
	assert.True(t, second.Equal(observed))
	assert.False(t, tracker.IsFresh(path))

	// Moving the clock backwards does not count as a change.
	touch(t, path, first)
	assert.False(t, tracker.IsFresh(path))
	observed, _ = tracker.Observed(path)
	assert.True(t, second.Equal(observed))
}

func TestTracker_MissingFile(t *testing.T) {
	tracker := freshness.NewTracker(fs.NewFileSystem())

	assert.False(t, tracker.IsFresh(filepath.Join(t.TempDir(), "missing.cshtml")))
	assert.Equal(t, 0, tracker.Len())
}

func TestTracker_UsesFileSystemPort(t *testing.T) {
	ctrl := gomock.NewController(t)
	fileSystem := mocks.NewMockFileSystem(ctrl)

	stamp := time.Unix(1000, 0)
	fileSystem.EXPECT().ModTime("/v/a.cshtml").Return(stamp, nil).Times(2)
	fileSystem.EXPECT().ModTime("/v/gone.cshtml").Return(time.Time{}, errors.New("not found"))

	tracker := freshness.NewTracker(fileSystem)
	assert.True(t, tracker.IsFresh("/v/a.cshtml"))
	assert.False(t, tracker.IsFresh("/v/a.cshtml"))
	assert.False(t, tracker.IsFresh("/v/gone.cshtml"))
}

func TestTracker_ConcurrentObserversSeeOneTransition(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "shared.cshtml")
	require.NoError(t, os.WriteFile(path, []byte("s"), 0o600))

	tracker := freshness.NewTracker(fs.NewFileSystem())

	var fresh atomic.Int32
	var wg sync.WaitGroup
	for range 32 {
		wg.Go(func() {
			if tracker.IsFresh(path) {
				fresh.Add(1)
			}
		})
	}
	wg.Wait()

	assert.Equal(t, int32(1), fresh.Load())
}
