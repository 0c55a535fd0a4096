package parser

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/fringe-watch/edfringe-parser/internal"
	"github.com/fringe-watch/edfringe-parser/internal/log"
	"github.com/fringe-watch/edfringe-parser/internal/selector"
	"github.com/fringe-watch/edfringe-parser/internal/util"
)

// parseShowDetailHtml scrapes a detail page's rendered markup directly.
// This is the last resort for pages whose embedded JSON is missing or
// empty: it recovers at most one performance (the first date on the date
// picker plus the first time/availability/venue regions) and no metadata.
func (p *Parser) parseShowDetailHtml(html string) []*internal.PerformanceDetail {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		log.GetLogger().WithField("Error", err.Error()).Warn("failed to parse detail page markup")
		return nil
	}

	timeEl := doc.Find(selector.PerformanceTime.String()).First()
	if timeEl.Length() == 0 {
		log.GetLogger().WithField("Selector", selector.PerformanceTime).Debug("no performance time found in markup")
		return nil
	}

	startTime, endTime := util.ParseTimeRange(elementText(timeEl))

	availability := internal.Status("")
	if el := doc.Find(selector.AvailabilityLabel.String()).First(); el.Length() > 0 {
		availability = internal.StatusFromString(elementText(el))
	}

	venue := ""
	if el := doc.Find(selector.VenueTitle.String()).First(); el.Length() > 0 {
		venue = elementText(el)
	}

	rawDate := ""
	doc.Find(selector.DatePickerButtons.String()).EachWithBreak(func(_ int, btn *goquery.Selection) bool {
		text := elementText(btn)
		if util.LooksLikeDate(text) {
			rawDate = text
			return false
		}
		return true
	})

	if rawDate == "" {
		return nil
	}

	date, ok := util.ParseRawDate(rawDate, p.DefaultYear)
	if !ok {
		log.GetLogger().WithField("Date", rawDate).Debug("could not parse fallback date")
		return nil
	}

	return []*internal.PerformanceDetail{{
		Date:         date,
		StartTime:    startTime,
		EndTime:      endTime,
		Availability: availability,
		Venue:        venue,
	}}
}

// ExtractShowName reads the page heading, used when a card title is not
// available.
func ExtractShowName(html string) (string, bool) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", false
	}

	h1 := doc.Find(selector.ShowNameHeading.String()).First()
	if h1.Length() == 0 {
		return "", false
	}

	return elementText(h1), true
}

func elementText(sel *goquery.Selection) string {
	return util.CollapseWhitespace(sel.Text())
}
