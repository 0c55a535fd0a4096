package parser

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/fringe-watch/edfringe-parser/internal"
)

const detailFallbackHtml = `<html><body>
<h1>Some Show</h1>
<div class="date-picker_container__a1">
  <button>Filters</button>
  <button>Saturday 1 August</button>
  <button>Sunday 2 August</button>
</div>
<div class="performance-item_headerTime__b2"><span>19:30 - 20:30</span></div>
<span class="label_label_sold__c3">Sold out</span>
<div class="performance-location_venueTitle__d4">The Stand</div>
</body></html>`

func TestParseShowDetailFallback(t *testing.T) {
	p := New("https://www.edfringe.com", 2026)

	result := p.ParseShowDetail(detailFallbackHtml, "https://example.org/a", "Some Show")
	require.Len(t, result.Performances, 1)
	require.Nil(t, result.ShowInfo)
	require.Nil(t, result.VenueInfo)

	perf := result.Performances[0]
	require.Equal(t, time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC), perf.Date)
	require.Equal(t, "19:30", perf.StartTime)
	require.Equal(t, "20:30", perf.EndTime)
	require.Equal(t, internal.StatusFromString("Sold out"), perf.Availability)
	require.Equal(t, "The Stand", perf.Venue)
}

func TestParseShowDetailFallbackNoTime(t *testing.T) {
	p := New("https://www.edfringe.com", 2026)

	result := p.ParseShowDetail("<html><body><h1>Empty</h1></body></html>", "", "")
	require.Empty(t, result.Performances)
}

func TestParseShowDetailPrefersEmbeddedJson(t *testing.T) {
	p := New("https://www.edfringe.com", 2026)

	page := nextDataPage(`"getEvent(1)":{"data":{"event":{"genre":"Comedy","performances":[{"dateTime":"2026-08-01T19:30:00","ticketStatus":"TICKETS_AVAILABLE"}]}}}`)

	result := p.ParseShowDetail(page, "https://example.org/a", "Show A")
	require.Len(t, result.Performances, 1)
	require.NotNil(t, result.ShowInfo)
	require.Equal(t, "Comedy", result.ShowInfo.Genre)
}

func TestExtractShowName(t *testing.T) {
	name, ok := ExtractShowName("<html><body><h1>  Some   Show </h1></body></html>")
	require.True(t, ok)
	require.Equal(t, "Some Show", name)

	_, ok = ExtractShowName("<html><body><p>no heading</p></body></html>")
	require.False(t, ok)
}
