package snapshot

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/fringe-watch/edfringe-parser/internal/log"
	"github.com/fringe-watch/edfringe-parser/internal/store"
)

// SnapshotPath names a snapshot file by scrape date and mode, e.g.
// "2026-08-07-full-snapshot.csv".
func SnapshotPath(dir, mode string, at time.Time) string {
	return filepath.Join(dir, fmt.Sprintf("%s-%s-snapshot.csv", at.Format(time.DateOnly), mode))
}

// ShowInfoPath names the companion show-info capture for the same run.
func ShowInfoPath(dir, mode string, at time.Time) string {
	return filepath.Join(dir, fmt.Sprintf("%s-%s-show-info.csv", at.Format(time.DateOnly), mode))
}

// Write captures the table verbatim to a snapshot file. Snapshots are
// written once and never edited; history stays append-only.
func Write(table *store.Table, path string) error {
	log.GetLogger().WithField("Path", path).Info("writing snapshot")
	return table.Save(path)
}

// Load reads a snapshot file back as a table.
func Load(path string) (*store.Table, error) {
	log.GetLogger().WithField("Path", path).Info("loading snapshot")
	return store.Load(path, store.PerformanceColumns)
}

// FindLatest returns the most recent snapshot file in dir, skipping any
// whose name contains excludeDate (normally today's, so a run does not
// compare against itself). Empty string when there is nothing to compare
// against.
func FindLatest(dir, excludeDate string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("failed to read snapshot directory %s: %w", dir, err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), "-snapshot.csv") {
			continue
		}
		names = append(names, entry.Name())
	}

	sort.Sort(sort.Reverse(sort.StringSlice(names)))

	for _, name := range names {
		if excludeDate != "" && strings.Contains(name, excludeDate) {
			continue
		}
		return filepath.Join(dir, name), nil
	}

	return "", nil
}
