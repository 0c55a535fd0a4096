package parser

import (
	"github.com/fringe-watch/edfringe-parser/internal"
	"github.com/fringe-watch/edfringe-parser/internal/log"
)

// Parser turns edfringe.com page markup into domain records.
type Parser struct {
	// BaseUrl absolutizes relative links found on pages.
	BaseUrl string
	// DefaultYear completes dates the site renders without a year.
	DefaultYear int
}

func New(baseUrl string, defaultYear int) *Parser {
	return &Parser{BaseUrl: baseUrl, DefaultYear: defaultYear}
}

// ShowDetailResult is everything recoverable from one show detail page.
type ShowDetailResult struct {
	Performances []*internal.PerformanceDetail
	ShowInfo     *internal.ShowInfo
	VenueInfo    *internal.VenueInfo
}

// ParseShowDetail parses a show detail page, preferring the embedded JSON
// payload and falling back to markup scraping when the JSON is absent or
// yields no performances. The fallback path never recovers metadata.
func (p *Parser) ParseShowDetail(html, showUrl, showName string) ShowDetailResult {
	event, ok := ExtractEventData(html)
	if ok {
		performances := ParsePerformances(event)
		if len(performances) > 0 {
			log.GetLogger().WithField("PerformanceCount", len(performances)).
				Info("extracted performances from embedded page data")

			return ShowDetailResult{
				Performances: performances,
				ShowInfo:     ParseShowInfo(event, showUrl, showName),
				VenueInfo:    ParseVenueInfo(event, p.BaseUrl),
			}
		}
	}

	log.GetLogger().Debug("falling back to markup scraping for performances")
	return ShowDetailResult{Performances: p.parseShowDetailHtml(html)}
}
