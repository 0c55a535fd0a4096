package store

import (
	"sort"
	"strings"
)

// PerformanceKey identifies one performance across scrapes: show URL plus
// the date and time strings exactly as rendered.
func PerformanceKey(r Row) string {
	return r.Get(ColShowUrl) + "|" + r.Get(ColDate) + "|" + r.Get(ColTime)
}

// MergePerformances merges freshly scraped performance rows into the
// canonical table.
//
// In full mode the new batch is the complete truth for every genre it
// contains: all existing rows of those genres are dropped first, so
// performances not re-observed disappear. Genres absent from the batch are
// left untouched.
//
// Otherwise only rows whose key re-appears in the batch are replaced;
// nothing is ever implicitly deleted.
func MergePerformances(existing, newBatch *Table, fullMode bool) *Table {
	if newBatch.Len() == 0 {
		return existing
	}

	result := NewTable(existing.Columns)

	if fullMode {
		scrapedGenres := make(map[string]bool)
		for _, row := range newBatch.Rows {
			scrapedGenres[row.Get(ColGenre)] = true
		}

		for _, row := range existing.Rows {
			if !scrapedGenres[row.Get(ColGenre)] {
				result.Append(row)
			}
		}
	} else {
		newKeys := make(map[string]bool, newBatch.Len())
		for _, row := range newBatch.Rows {
			newKeys[PerformanceKey(row)] = true
		}

		for _, row := range existing.Rows {
			if !newKeys[PerformanceKey(row)] {
				result.Append(row)
			}
		}
	}

	result.Append(newBatch.Rows...)
	sortPerformances(result)

	return result
}

// MergeShowInfo upserts show metadata by show URL. Unlike performances
// there is no genre partitioning and no mode: metadata is never deleted.
func MergeShowInfo(existing, newBatch *Table) *Table {
	if newBatch.Len() == 0 {
		return existing
	}

	newUrls := make(map[string]bool, newBatch.Len())
	for _, row := range newBatch.Rows {
		newUrls[row.Get(ColShowUrl)] = true
	}

	result := NewTable(existing.Columns)
	for _, row := range existing.Rows {
		if !newUrls[row.Get(ColShowUrl)] {
			result.Append(row)
		}
	}
	result.Append(newBatch.Rows...)

	sort.SliceStable(result.Rows, func(i, j int) bool {
		return compareEmptyLast(result.Rows[i].Get(ColShowUrl), result.Rows[j].Get(ColShowUrl)) < 0
	})

	return result
}

// sortPerformances orders rows by (genre, show URL, date, time) so merged
// files diff cleanly between runs. Empty sort keys go last.
func sortPerformances(t *Table) {
	sort.SliceStable(t.Rows, func(i, j int) bool {
		a, b := t.Rows[i], t.Rows[j]

		for _, col := range []string{ColGenre, ColShowUrl, ColDate, ColTime} {
			if c := compareEmptyLast(a.Get(col), b.Get(col)); c != 0 {
				return c < 0
			}
		}

		return false
	})
}

func compareEmptyLast(a, b string) int {
	if a == b {
		return 0
	}
	if a == "" {
		return 1
	}
	if b == "" {
		return -1
	}

	return strings.Compare(a, b)
}
