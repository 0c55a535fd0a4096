package snapshot

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/fringe-watch/edfringe-parser/internal/store"
)

func TestSnapshotPaths(t *testing.T) {
	at := time.Date(2026, 8, 7, 6, 30, 0, 0, time.UTC)

	require.Equal(t, filepath.Join("data", "snapshots", "2026-08-07-full-snapshot.csv"), SnapshotPath(filepath.Join("data", "snapshots"), "full", at))
	require.Equal(t, filepath.Join("data", "snapshots", "2026-08-07-recent-show-info.csv"), ShowInfoPath(filepath.Join("data", "snapshots"), "recent", at))
}

func TestWriteLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := SnapshotPath(dir, "full", time.Date(2026, 8, 7, 0, 0, 0, 0, time.UTC))

	require.NoError(t, Write(baseSnapshot(), path))

	loaded, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 3, loaded.Len())
	require.Equal(t, "Show One", loaded.Rows[0].Get(store.ColShowName))
}

func TestFindLatest(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{
		"2026-08-05-full-snapshot.csv",
		"2026-08-06-recent-snapshot.csv",
		"2026-08-07-recent-snapshot.csv",
		"2026-08-07-recent-show-info.csv",
		"notes.txt",
	} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o644))
	}

	latest, err := FindLatest(dir, "")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "2026-08-07-recent-snapshot.csv"), latest)

	prior, err := FindLatest(dir, "2026-08-07")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "2026-08-06-recent-snapshot.csv"), prior)
}

func TestFindLatestMissingDir(t *testing.T) {
	latest, err := FindLatest(filepath.Join(t.TempDir(), "missing"), "")
	require.NoError(t, err)
	require.Empty(t, latest)
}

func TestFindLatestEmptyDir(t *testing.T) {
	latest, err := FindLatest(t.TempDir(), "")
	require.NoError(t, err)
	require.Empty(t, latest)
}
