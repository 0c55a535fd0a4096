package internal

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/fringe-watch/edfringe-parser/internal/store"
)

// ScrapeTask is one genre search to run against the listings site.
type ScrapeTask struct {
	Genre     string
	SearchUrl string
}

// NewScrapeTask builds the whats-on search URL for a genre.
func NewScrapeTask(baseUrl, genre string) (*ScrapeTask, error) {
	genre = strings.TrimSpace(genre)
	if genre == "" {
		return nil, fmt.Errorf("genre must not be empty")
	}

	searchUrl := fmt.Sprintf(
		"%s/tickets/whats-on?search=true&genres=%s",
		strings.TrimRight(baseUrl, "/"),
		url.QueryEscape(genre),
	)

	return &ScrapeTask{Genre: strings.ToUpper(genre), SearchUrl: searchUrl}, nil
}

// BuildTasks turns the operator's genre list into scrape tasks.
func BuildTasks(baseUrl string, genres []string) (tasks []*ScrapeTask, err error) {
	if len(genres) == 0 {
		return nil, fmt.Errorf("no genres specified")
	}

	tasks = make([]*ScrapeTask, 0, len(genres))
	for _, genre := range genres {
		task, err := NewScrapeTask(baseUrl, genre)
		if err != nil {
			return nil, fmt.Errorf("error creating scrape task: %v", err)
		}

		tasks = append(tasks, task)
	}

	return tasks, nil
}

// TaskResult is everything one genre scrape produced.
type TaskResult struct {
	Task       *ScrapeTask
	Shows      []*ScrapedShow
	FetchedAt  time.Time
	FailedUrls []string
}

// PerformanceRows flattens scraped shows into canonical performance rows.
func PerformanceRows(results []*TaskResult) *store.Table {
	table := store.NewTable(store.PerformanceColumns)

	for _, result := range results {
		scrapeTime := result.FetchedAt.Format(time.RFC3339)

		for _, show := range result.Shows {
			for _, perf := range show.Performances {
				table.Append(store.Row{
					store.ColScrapeTime:   scrapeTime,
					store.ColShowUrl:      show.Url,
					store.ColShowLink:     show.Title,
					store.ColShowName:     show.Title,
					store.ColPerformer:    show.Performer,
					store.ColDate:         perf.RawDate(),
					store.ColTime:         perf.TimeRange(),
					store.ColAvailability: string(perf.Availability),
					store.ColLocation:     perf.Venue,
					store.ColStartUrl:     result.Task.SearchUrl,
					store.ColGenre:        result.Task.Genre,
				})
			}
		}
	}

	return table
}

// ShowInfoRows flattens scraped show metadata into canonical show-info
// rows. Shows whose detail page yielded no metadata are skipped.
func ShowInfoRows(results []*TaskResult) *store.Table {
	table := store.NewTable(store.ShowInfoColumns)

	for _, result := range results {
		for _, show := range result.Shows {
			info := show.ShowInfo
			if info == nil {
				continue
			}

			table.Append(store.Row{
				store.ColShowUrl:  info.ShowUrl,
				store.ColShowName: info.ShowName,
				store.ColGenre:    info.Genre,
				"subgenres":       info.Subgenres,
				"description":     info.Description,
				"warnings":        info.Warnings,
				"age_suitability": info.AgeSuitability,
				"image_url":       info.ImageUrl,
				"website":         info.Website,
				"facebook":        info.Facebook,
				"instagram":       info.Instagram,
				"tiktok":          info.Tiktok,
				"youtube":         info.Youtube,
				"twitter":         info.Twitter,
				"bluesky":         info.Bluesky,
				"mastodon":        info.Mastodon,
			})
		}
	}

	return table
}
