package scraper

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/goccy/go-json"

	"github.com/fringe-watch/edfringe-parser/internal/log"
	"github.com/fringe-watch/edfringe-parser/internal/parser"
)

// DiscoverBuildId pulls the Next.js build id out of any fetched page. The
// build id is needed to construct /_next/data/... API URLs, which return
// the search state as plain JSON without paying for JS rendering.
func DiscoverBuildId(html string) (string, bool) {
	return parser.ExtractBuildId(html)
}

// TryApiEndpoint asks the internal whats-on JSON endpoint for a genre.
// Returns false when the endpoint does not exist or does not answer with
// JSON; callers then fall back to rendered page scraping.
func TryApiEndpoint(ctx context.Context, client *Client, baseUrl, genre, buildId string) (map[string]interface{}, bool) {
	if buildId == "" {
		log.GetLogger().Debug("no build id, skipping API discovery")
		return nil, false
	}

	apiUrl := fmt.Sprintf(
		"%s/_next/data/%s/tickets/whats-on.json?search=true&genres=%s",
		strings.TrimRight(baseUrl, "/"),
		buildId,
		url.QueryEscape(genre),
	)

	logger := log.GetLogger().WithField("Url", apiUrl)
	logger.Info("trying API endpoint")

	resp, err := client.FetchRaw(ctx, apiUrl)
	if err != nil {
		logger.WithField("Error", err.Error()).Debug("API endpoint failed")
		return nil, false
	}

	var data map[string]interface{}
	if err := json.Unmarshal([]byte(resp.Html), &data); err != nil {
		logger.Debug("API endpoint did not return JSON")
		return nil, false
	}

	logger.Info("API endpoint returned valid JSON")
	return data, true
}
