package cmd

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fringe-watch/edfringe-parser/internal"
	"github.com/fringe-watch/edfringe-parser/internal/snapshot"
	"github.com/fringe-watch/edfringe-parser/internal/store"
)

func perfRow(name, date string) store.Row {
	return store.Row{
		store.ColScrapeTime:   "2026-07-30T08:00:00Z",
		store.ColShowUrl:      "https://tickets.edfringe.com/whats-on/" + name,
		store.ColShowName:     name,
		store.ColDate:         date,
		store.ColTime:         "19:00 - 20:00",
		store.ColAvailability: "TICKETS_AVAILABLE",
		store.ColLocation:     "Pleasance Courtyard",
		store.ColGenre:        "COMEDY",
	}
}

func TestPersistRunSnapshotsBatchVerbatim(t *testing.T) {
	dir := t.TempDir()

	perfBatch := store.NewTable(store.PerformanceColumns)
	perfBatch.Append(perfRow("show-one", "Saturday 1 August"))

	merged := store.NewTable(store.PerformanceColumns)
	merged.Append(
		perfRow("show-one", "Saturday 1 August"),
		perfRow("show-two", "Sunday 2 August"),
	)

	infoBatch := store.NewTable(store.ShowInfoColumns)
	mergedInfo := store.NewTable(store.ShowInfoColumns)

	files := runFiles{
		raw:          filepath.Join(dir, "2026-07-30-recent-raw.csv"),
		canonical:    filepath.Join(dir, "performances.csv"),
		showInfo:     filepath.Join(dir, "show-info.csv"),
		venueCache:   filepath.Join(dir, "venues.csv"),
		snapshot:     filepath.Join(dir, "2026-07-30-recent-snapshot.csv"),
		infoSnapshot: filepath.Join(dir, "2026-07-30-recent-show-info.csv"),
	}
	err := persistRun(files, perfBatch, infoBatch, merged, mergedInfo, map[string]*internal.VenueInfo{})
	require.NoError(t, err)

	snap, err := snapshot.Load(files.snapshot)
	require.NoError(t, err)
	require.Equal(t, 1, snap.Len(), "snapshot must hold the scrape batch, not the merged table")
	require.Equal(t, "show-one", snap.Rows[0].Get(store.ColShowName))

	canonical, err := store.Load(files.canonical, store.PerformanceColumns)
	require.NoError(t, err)
	require.Equal(t, 2, canonical.Len())
}
