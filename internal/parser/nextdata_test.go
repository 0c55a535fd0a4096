package parser

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func nextDataPage(queries string) string {
	return fmt.Sprintf(`<html><head></head><body>
<script id="__NEXT_DATA__" type="application/json">
{"props":{"pageProps":{"initialState":{"apiPublic":{"queries":{%s}}}}},"buildId":"abc123"}
</script>
</body></html>`, queries)
}

func TestExtractBuildId(t *testing.T) {
	buildId, ok := ExtractBuildId(nextDataPage(""))
	require.True(t, ok)
	require.Equal(t, "abc123", buildId)
}

func TestExtractBuildIdMissingScript(t *testing.T) {
	_, ok := ExtractBuildId("<html><body>nothing here</body></html>")
	require.False(t, ok)
}

func TestExtractEventData(t *testing.T) {
	page := nextDataPage(`"getEvent({\"slug\":\"some-show\"})":{"data":{"event":{"genre":"Comedy","description":"A show.","performances":[{"dateTime":"2026-08-01T19:30:00","ticketStatus":"TICKETS_AVAILABLE"}]}}}`)

	event, ok := ExtractEventData(page)
	require.True(t, ok)
	require.Equal(t, "Comedy", event.Genre)
	require.Len(t, event.Performances, 1)
}

func TestExtractEventDataIgnoresOtherQueries(t *testing.T) {
	page := nextDataPage(`"getSomethingElse":{"data":{}},"getEvent(1)":{"data":{"event":{"genre":"Theatre"}}}`)

	event, ok := ExtractEventData(page)
	require.True(t, ok)
	require.Equal(t, "Theatre", event.Genre)
}

func TestExtractEventDataAbsent(t *testing.T) {
	_, ok := ExtractEventData(nextDataPage(`"getVenue(1)":{"data":{"venue":{"contactPhone":"0131 555 0100"}}}`))
	require.False(t, ok)
}

func TestExtractVenuePageData(t *testing.T) {
	page := nextDataPage(`"getVenue(1)":{"data":{"venue":{"contactPhone":"0131 555 0100","contactEmail":"box@example.org"}}}`)

	venue, ok := ExtractVenuePageData(page)
	require.True(t, ok)

	phone, email := ParseVenueContact(venue)
	require.Equal(t, "0131 555 0100", phone)
	require.Equal(t, "box@example.org", email)
}

func TestExtractNextDataMalformedJson(t *testing.T) {
	page := `<script id="__NEXT_DATA__" type="application/json">{not json}</script>`
	_, ok := ExtractBuildId(page)
	require.False(t, ok)
}
