package scraper

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/fringe-watch/edfringe-parser/internal"
	"github.com/fringe-watch/edfringe-parser/internal/log"
	"github.com/fringe-watch/edfringe-parser/internal/parser"
	"github.com/fringe-watch/edfringe-parser/internal/selector"
)

// Start runs every scrape task in sequence: one search page fetch per
// genre, then one detail page fetch per show found. A show whose detail
// page cannot be fetched is kept with zero performances and counted, never
// aborting the batch.
func Start(ctx context.Context, client *Client, p *parser.Parser, tasks []*internal.ScrapeTask) (results []*internal.TaskResult, err error) {
	logger := log.GetLogger()
	results = make([]*internal.TaskResult, 0, len(tasks))

	for _, task := range tasks {
		taskLogger := logger.WithFields(logrus.Fields{
			"Genre": task.Genre,
			"Url":   task.SearchUrl,
		})

		taskLogger.Debug("fetching search results page")
		result, err := runTask(ctx, client, p, task, taskLogger)
		if err != nil {
			return nil, err
		}

		taskLogger.WithFields(logrus.Fields{
			"ShowCount":   len(result.Shows),
			"FailedCount": len(result.FailedUrls),
		}).Info("completed genre scrape")

		results = append(results, result)
	}

	return results, nil
}

func runTask(ctx context.Context, client *Client, p *parser.Parser, task *internal.ScrapeTask, logger log.Logger) (*internal.TaskResult, error) {
	page, err := client.FetchPage(ctx, task.SearchUrl)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch search results for %s: %w", task.Genre, err)
	}

	cards, err := p.ParseSearchResults(page.Html)
	if err != nil {
		return nil, fmt.Errorf("failed to parse search results for %s: %w", task.Genre, err)
	}
	if len(cards) == 0 {
		// a rendered whats-on page always carries the listing container;
		// nothing matching usually means a site redesign
		return nil, internal.NewElementNotFoundError(selector.EventCard)
	}

	result := &internal.TaskResult{
		Task:      task,
		FetchedAt: time.Now(),
	}

	for _, card := range cards {
		show := &internal.ScrapedShow{
			Title:     card.Title,
			Url:       card.Url,
			Performer: card.Performer,
			Genre:     task.Genre,
			SearchUrl: task.SearchUrl,
		}

		showLogger := logger.WithField("ShowUrl", card.Url)

		detailPage, err := client.FetchPage(ctx, card.Url)
		if err != nil {
			// degrade this one show to "no details", keep going
			showLogger.WithField("Error", err.Error()).Warn("failed to fetch show detail page")
			result.FailedUrls = append(result.FailedUrls, card.Url)
			result.Shows = append(result.Shows, show)
			continue
		}

		detail := p.ParseShowDetail(detailPage.Html, card.Url, card.Title)
		show.Performances = detail.Performances
		show.ShowInfo = detail.ShowInfo
		show.VenueInfo = detail.VenueInfo

		result.Shows = append(result.Shows, show)
	}

	return result, nil
}

// EnrichVenues is phase two of venue contact enrichment: it fetches the
// venue detail page for each listed code and returns a new map with contact
// details filled in. Codes whose page cannot be fetched or parsed keep
// their un-enriched entry.
func EnrichVenues(ctx context.Context, client *Client, venues map[string]*internal.VenueInfo, codes []string) map[string]*internal.VenueInfo {
	logger := log.GetLogger()

	enriched := make(map[string]*internal.VenueInfo, len(venues))
	for code, venue := range venues {
		copied := *venue
		enriched[code] = &copied
	}

	for _, code := range codes {
		venue, ok := enriched[code]
		if !ok || venue.VenuePageUrl == "" {
			continue
		}

		venueLogger := logger.WithField("VenueCode", code)

		page, err := client.FetchPage(ctx, venue.VenuePageUrl)
		if err != nil {
			venueLogger.WithField("Error", err.Error()).Warn("failed to fetch venue detail page")
			continue
		}

		data, found := parser.ExtractVenuePageData(page.Html)
		if !found {
			venueLogger.Debug("no venue data found on venue page")
			continue
		}

		venue.ContactPhone, venue.ContactEmail = parser.ParseVenueContact(data)
	}

	return enriched
}
