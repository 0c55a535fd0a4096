package convert

import (
	"fmt"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/fringe-watch/edfringe-parser/internal/log"
	"github.com/fringe-watch/edfringe-parser/internal/store"
)

const (
	FormatCleaned = "cleaned"
	FormatSummary = "summary"
	FormatWide    = "wide"
)

// AllFormats lists every supported output format.
var AllFormats = []string{FormatCleaned, FormatSummary, FormatWide}

// Converter turns raw performance tables into derived output formats.
type Converter struct {
	DefaultYear int
}

func New(defaultYear int) *Converter {
	return &Converter{DefaultYear: defaultYear}
}

// Clean normalizes raw performance rows.
//
// Dates like "Wednesday 30 July" become "2026-07-30" in a date_normalized
// column, show links become Excel HYPERLINK formulas, and rows whose date
// cannot be parsed are dropped.
func (c *Converter) Clean(raw *store.Table) *store.Table {
	outputColumns := []string{
		"show",
		store.ColShowName,
		store.ColPerformer,
		store.ColShowUrl,
		"date_normalized",
		store.ColTime,
		store.ColAvailability,
		store.ColLocation,
	}
	if hasColumn(raw, store.ColStartUrl) {
		outputColumns = append(outputColumns, store.ColStartUrl)
	}

	cleaned := store.NewTable(outputColumns)
	for _, row := range raw.Rows {
		normalized, ok := c.parseDate(row.Get(store.ColDate))
		if !ok {
			continue
		}

		out := store.Row{
			"show":                excelHyperlink(row.Get(store.ColShowUrl), row.Get(store.ColShowLink)),
			store.ColShowName:     row.Get(store.ColShowName),
			store.ColPerformer:    row.Get(store.ColPerformer),
			store.ColShowUrl:      row.Get(store.ColShowUrl),
			"date_normalized":     normalized,
			store.ColTime:         row.Get(store.ColTime),
			store.ColAvailability: row.Get(store.ColAvailability),
			store.ColLocation:     row.Get(store.ColLocation),
		}
		if hasColumn(raw, store.ColStartUrl) {
			out[store.ColStartUrl] = row.Get(store.ColStartUrl)
		}
		cleaned.Append(out)
	}

	log.GetLogger().Debugf("cleaned data: %d rows", cleaned.Len())
	return cleaned
}

// Summary aggregates cleaned rows per show: performance count, first and
// last dates, and the performer.
func (c *Converter) Summary(cleaned *store.Table) *store.Table {
	type showAgg struct {
		count     int
		firstDate string
		lastDate  string
		performer string
	}

	var names []string
	byName := make(map[string]*showAgg)
	for _, row := range cleaned.Rows {
		name := row.Get(store.ColShowName)
		agg, seen := byName[name]
		if !seen {
			agg = &showAgg{performer: row.Get(store.ColPerformer)}
			byName[name] = agg
			names = append(names, name)
		}
		date := row.Get("date_normalized")
		agg.count++
		if agg.firstDate == "" || date < agg.firstDate {
			agg.firstDate = date
		}
		if date > agg.lastDate {
			agg.lastDate = date
		}
	}
	sort.Strings(names)

	summary := store.NewTable([]string{
		store.ColShowName, "num_performances", "first_date", "last_date", "performer",
	})
	for _, name := range names {
		agg := byName[name]
		performer := agg.performer
		if performer == "" {
			performer = "N/A"
		}
		summary.Append(store.Row{
			store.ColShowName:  name,
			"num_performances": strconv.Itoa(agg.count),
			"first_date":       agg.firstDate,
			"last_date":        agg.lastDate,
			"performer":        performer,
		})
	}

	log.GetLogger().Debugf("created summary: %d shows", summary.Len())
	return summary
}

// Wide pivots cleaned rows so each distinct date becomes a column holding
// the availability status. The first status seen for a cell wins.
func (c *Converter) Wide(cleaned *store.Table) *store.Table {
	indexColumns := []string{
		store.ColShowUrl,
		store.ColShowName,
		store.ColPerformer,
		store.ColTime,
		store.ColLocation,
	}

	type pivotRow struct {
		key    string
		index  store.Row
		status map[string]string
	}

	var keys []string
	byKey := make(map[string]*pivotRow)
	dateSet := make(map[string]bool)

	for _, row := range cleaned.Rows {
		parts := make([]string, 0, len(indexColumns))
		index := store.Row{}
		for _, column := range indexColumns {
			value := row.Get(column)
			index[column] = value
			parts = append(parts, value)
		}
		key := strings.Join(parts, "\x00")

		pivot, seen := byKey[key]
		if !seen {
			pivot = &pivotRow{key: key, index: index, status: make(map[string]string)}
			byKey[key] = pivot
			keys = append(keys, key)
		}

		date := row.Get("date_normalized")
		dateSet[date] = true
		if _, filled := pivot.status[date]; !filled {
			pivot.status[date] = row.Get(store.ColAvailability)
		}
	}

	dates := make([]string, 0, len(dateSet))
	for date := range dateSet {
		dates = append(dates, date)
	}
	sort.Strings(dates)
	sort.Strings(keys)

	wide := store.NewTable(append(append([]string{}, indexColumns...), dates...))
	for _, key := range keys {
		pivot := byKey[key]
		out := store.Row{}
		for column, value := range pivot.index {
			out[column] = value
		}
		for date, status := range pivot.status {
			out[date] = status
		}
		wide.Append(out)
	}

	log.GetLogger().Debugf("created wide format: %d rows", wide.Len())
	return wide
}

// parseDate converts "Wednesday 30 July" to "2026-07-30" using the
// converter's default year. Dates without a leading weekday are rejected.
func (c *Converter) parseDate(raw string) (string, bool) {
	parts := strings.Fields(raw)
	if len(parts) < 3 {
		return "", false
	}
	day, err := strconv.Atoi(parts[1])
	if err != nil {
		return "", false
	}
	parsed, err := time.Parse("2 January 2006", fmt.Sprintf("%d %s %d", day, parts[2], c.DefaultYear))
	if err != nil {
		return "", false
	}
	return parsed.Format("2006-01-02"), true
}

// excelHyperlink builds an Excel HYPERLINK formula, doubling quotes in the
// display text so the formula stays valid.
func excelHyperlink(url, text string) string {
	safeText := strings.ReplaceAll(text, `"`, `""`)
	return fmt.Sprintf(`=HYPERLINK("%s", "%s")`, url, safeText)
}

func hasColumn(t *store.Table, name string) bool {
	for _, column := range t.Columns {
		if column == name {
			return true
		}
	}
	return false
}

// SaveAllFormats writes the requested derived formats next to each other
// under outputDir, returning format name to file path.
func SaveAllFormats(raw *store.Table, outputDir, baseFilename string, formats []string, defaultYear int) (map[string]string, error) {
	if len(formats) == 0 {
		formats = AllFormats
	}

	converter := New(defaultYear)
	cleaned := converter.Clean(raw)
	logger := log.GetLogger()

	prefixes := map[string]string{
		FormatCleaned: "Cleaned-",
		FormatSummary: "Summary-",
		FormatWide:    "WideFormat-",
	}

	results := make(map[string]string)
	for _, format := range formats {
		prefix, known := prefixes[format]
		if !known {
			return nil, fmt.Errorf("unknown format %q", format)
		}

		var table *store.Table
		switch format {
		case FormatCleaned:
			table = cleaned
		case FormatSummary:
			table = converter.Summary(cleaned)
		case FormatWide:
			table = converter.Wide(cleaned)
		}

		path := filepath.Join(outputDir, prefix+baseFilename+".csv")
		if err := table.Save(path); err != nil {
			return nil, fmt.Errorf("save %s format: %w", format, err)
		}
		results[format] = path
		logger.Infof("saved %s data to %s", format, path)
	}

	return results, nil
}
