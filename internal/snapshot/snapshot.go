package snapshot

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/fringe-watch/edfringe-parser/internal"
	"github.com/fringe-watch/edfringe-parser/internal/log"
	"github.com/fringe-watch/edfringe-parser/internal/store"
	"github.com/fringe-watch/edfringe-parser/internal/util"
)

// ChangeType classifies one detected change.
type ChangeType string

const (
	ChangeNewShow        ChangeType = "new_show"
	ChangeRemovedShow    ChangeType = "removed_show"
	ChangeNewPerformance ChangeType = "new"
	ChangeSoldOut        ChangeType = "sold_out"
	ChangeCancelled      ChangeType = "cancelled"
	ChangeBackAvailable  ChangeType = "back_available"
	ChangeAvailability   ChangeType = "availability_changed"
)

// PerformanceChange is a change to one performance between snapshots.
type PerformanceChange struct {
	ShowName   string
	ShowUrl    string
	Performer  string
	Venue      string
	Date       string
	Time       string
	ChangeType ChangeType
	OldValue   string
	NewValue   string
}

// ShowChange is a show appearing in or disappearing from the schedule.
type ShowChange struct {
	ShowName         string
	ShowUrl          string
	Performer        string
	ChangeType       ChangeType
	PerformanceCount int
	Venues           []string
	DateRange        string
}

// SnapshotDiff is the categorized difference between two snapshots.
type SnapshotDiff struct {
	OldSnapshotDate string
	NewSnapshotDate string

	NewShows              []*ShowChange
	RemovedShows          []*ShowChange
	NewPerformances       []*PerformanceChange
	SoldOutPerformances   []*PerformanceChange
	CancelledPerformances []*PerformanceChange
	BackAvailable         []*PerformanceChange
	OtherChanges          []*PerformanceChange
}

func (d *SnapshotDiff) HasChanges() bool {
	return d.TotalChanges() > 0
}

func (d *SnapshotDiff) TotalChanges() int {
	return len(d.NewShows) +
		len(d.RemovedShows) +
		len(d.NewPerformances) +
		len(d.SoldOutPerformances) +
		len(d.CancelledPerformances) +
		len(d.BackAvailable) +
		len(d.OtherChanges)
}

// Compare diffs two snapshots of the performance table. It is a pure
// function of its inputs: no disk access, deterministic, safe to re-run.
func Compare(oldTable, newTable *store.Table) *SnapshotDiff {
	diff := &SnapshotDiff{
		OldSnapshotDate: snapshotDate(oldTable),
		NewSnapshotDate: snapshotDate(newTable),
	}

	oldKeys := indexByPerformanceKey(oldTable)
	newKeys := indexByPerformanceKey(newTable)

	oldShows := showSet(oldTable)
	newShows := showSet(newTable)

	addedShows := make(map[string]bool)

	// new shows, in new-table row order
	for _, showUrl := range showOrder(newTable) {
		if oldShows[showUrl] {
			continue
		}
		addedShows[showUrl] = true
		diff.NewShows = append(diff.NewShows, newShowChange(newTable, showUrl))
	}

	// removed shows, in old-table row order
	for _, showUrl := range showOrder(oldTable) {
		if newShows[showUrl] {
			continue
		}

		rows := rowsForShow(oldTable, showUrl)
		first := rows[0]
		diff.RemovedShows = append(diff.RemovedShows, &ShowChange{
			ShowName:         first.Get(store.ColShowName),
			ShowUrl:          showUrl,
			Performer:        first.Get(store.ColPerformer),
			ChangeType:       ChangeRemovedShow,
			PerformanceCount: len(rows),
		})
	}

	// new performances for shows that already existed
	for _, key := range keyOrder(newTable) {
		if _, existed := oldKeys[key]; existed {
			continue
		}

		row := newKeys[key]
		showUrl := row.Get(store.ColShowUrl)
		if addedShows[showUrl] {
			continue
		}

		diff.NewPerformances = append(diff.NewPerformances, &PerformanceChange{
			ShowName:   row.Get(store.ColShowName),
			ShowUrl:    showUrl,
			Performer:  row.Get(store.ColPerformer),
			Venue:      row.Get(store.ColLocation),
			Date:       row.Get(store.ColDate),
			Time:       row.Get(store.ColTime),
			ChangeType: ChangeNewPerformance,
		})
	}

	// availability changes for performances present in both snapshots
	for _, key := range keyOrder(newTable) {
		oldRow, existed := oldKeys[key]
		if !existed {
			continue
		}
		newRow := newKeys[key]

		oldAvail := internal.StatusFromString(oldRow.Get(store.ColAvailability))
		newAvail := internal.StatusFromString(newRow.Get(store.ColAvailability))
		if oldAvail == newAvail {
			continue
		}

		change := &PerformanceChange{
			ShowName:  newRow.Get(store.ColShowName),
			ShowUrl:   newRow.Get(store.ColShowUrl),
			Performer: newRow.Get(store.ColPerformer),
			Venue:     newRow.Get(store.ColLocation),
			Date:      newRow.Get(store.ColDate),
			Time:      newRow.Get(store.ColTime),
			OldValue:  string(oldAvail),
			NewValue:  string(newAvail),
		}

		switch {
		case newAvail.SoldOutLike():
			change.ChangeType = ChangeSoldOut
			diff.SoldOutPerformances = append(diff.SoldOutPerformances, change)
		case newAvail == internal.StatusCancelled:
			change.ChangeType = ChangeCancelled
			diff.CancelledPerformances = append(diff.CancelledPerformances, change)
		case oldAvail.Unavailable():
			change.ChangeType = ChangeBackAvailable
			diff.BackAvailable = append(diff.BackAvailable, change)
		default:
			change.ChangeType = ChangeAvailability
			diff.OtherChanges = append(diff.OtherChanges, change)
		}
	}

	log.GetLogger().WithFields(logrus.Fields{
		"NewShows":        len(diff.NewShows),
		"NewPerformances": len(diff.NewPerformances),
		"SoldOut":         len(diff.SoldOutPerformances),
	}).Info("snapshot comparison complete")

	return diff
}

func newShowChange(t *store.Table, showUrl string) *ShowChange {
	rows := rowsForShow(t, showUrl)
	first := rows[0]

	var venues []string
	seenVenue := make(map[string]bool)
	var dates []string
	seenDate := make(map[string]bool)

	for _, row := range rows {
		if v := row.Get(store.ColLocation); v != "" && !seenVenue[v] {
			seenVenue[v] = true
			venues = append(venues, v)
		}
		if d := row.Get(store.ColDate); d != "" && !seenDate[d] {
			seenDate[d] = true
			dates = append(dates, d)
		}
	}

	if len(venues) > 3 {
		venues = venues[:3]
	}

	return &ShowChange{
		ShowName:         first.Get(store.ColShowName),
		ShowUrl:          showUrl,
		Performer:        first.Get(store.ColPerformer),
		ChangeType:       ChangeNewShow,
		PerformanceCount: len(rows),
		Venues:           venues,
		DateRange:        dateRange(dates),
	}
}

// dateRange renders "{earliest} - {latest}" over raw date strings. The raw
// strings ("9 August", "10 August") do not order lexicographically, so they
// are parsed to real dates first; string comparison is only a fallback for
// unparsable values.
func dateRange(dates []string) string {
	if len(dates) == 0 {
		return ""
	}

	type parsed struct {
		raw string
		at  time.Time
	}

	// any shared year orders festival dates correctly; 2000 is a leap
	// year so "29 February" still parses
	all := make([]parsed, 0, len(dates))
	parseable := true
	for _, raw := range dates {
		at, ok := util.ParseRawDate(raw, 2000)
		if !ok {
			parseable = false
			break
		}
		all = append(all, parsed{raw: raw, at: at})
	}

	if !parseable {
		minRaw, maxRaw := dates[0], dates[0]
		for _, raw := range dates[1:] {
			if raw < minRaw {
				minRaw = raw
			}
			if raw > maxRaw {
				maxRaw = raw
			}
		}
		return minRaw + " - " + maxRaw
	}

	earliest, latest := all[0], all[0]
	for _, p := range all[1:] {
		if p.at.Before(earliest.at) {
			earliest = p
		}
		if p.at.After(latest.at) {
			latest = p
		}
	}

	return earliest.raw + " - " + latest.raw
}

// snapshotDate labels a snapshot by its first non-empty scrape timestamp.
func snapshotDate(t *store.Table) string {
	for _, row := range t.Rows {
		raw := row.Get(store.ColScrapeTime)
		if raw == "" {
			continue
		}

		if at, err := time.Parse(time.RFC3339, raw); err == nil {
			return at.Format("2006-01-02 15:04")
		}
	}

	return "Unknown"
}

func indexByPerformanceKey(t *store.Table) map[string]store.Row {
	index := make(map[string]store.Row, t.Len())
	for _, row := range t.Rows {
		key := store.PerformanceKey(row)
		if _, seen := index[key]; !seen {
			index[key] = row
		}
	}
	return index
}

func keyOrder(t *store.Table) []string {
	var keys []string
	seen := make(map[string]bool, t.Len())
	for _, row := range t.Rows {
		key := store.PerformanceKey(row)
		if !seen[key] {
			seen[key] = true
			keys = append(keys, key)
		}
	}
	return keys
}

func showSet(t *store.Table) map[string]bool {
	shows := make(map[string]bool)
	for _, row := range t.Rows {
		if url := row.Get(store.ColShowUrl); url != "" {
			shows[url] = true
		}
	}
	return shows
}

func showOrder(t *store.Table) []string {
	var order []string
	seen := make(map[string]bool)
	for _, row := range t.Rows {
		url := row.Get(store.ColShowUrl)
		if url != "" && !seen[url] {
			seen[url] = true
			order = append(order, url)
		}
	}
	return order
}

func rowsForShow(t *store.Table, showUrl string) []store.Row {
	var rows []store.Row
	for _, row := range t.Rows {
		if row.Get(store.ColShowUrl) == showUrl {
			rows = append(rows, row)
		}
	}
	return rows
}
