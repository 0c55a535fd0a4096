package parser

import (
	"regexp"
	"sort"
	"strings"

	"github.com/goccy/go-json"

	"github.com/fringe-watch/edfringe-parser/internal/log"
)

// edfringe.com is a Next.js site: every page embeds its full query state in
// a __NEXT_DATA__ script block, which is far more reliable to read than the
// rendered markup.
var nextDataPattern = regexp.MustCompile(`(?s)<script id="__NEXT_DATA__"[^>]*>(.*?)</script>`)

type nextData struct {
	Props struct {
		PageProps struct {
			InitialState struct {
				ApiPublic struct {
					Queries map[string]json.RawMessage `json:"queries"`
				} `json:"apiPublic"`
			} `json:"initialState"`
		} `json:"pageProps"`
	} `json:"props"`
	BuildId string `json:"buildId"`
}

// EventData is the show-specific payload found inside __NEXT_DATA__.
type EventData struct {
	Description  string             `json:"description"`
	Genre        string             `json:"genre"`
	SubGenre     string             `json:"subGenre"`
	Venues       []EventVenue       `json:"venues"`
	Spaces       []eventSpace       `json:"spaces"`
	Performances []eventPerformance `json:"performances"`
	Attributes   []eventAttribute   `json:"attributes"`
	SocialLinks  []eventSocialLink  `json:"socialLinks"`
	Images       []eventImage       `json:"images"`
}

type EventVenue struct {
	VenueCode   string `json:"venueCode"`
	Title       string `json:"title"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	Address1    string `json:"address1"`
	Address2    string `json:"address2"`
	PostCode    string `json:"postCode"`
	GeoLocation string `json:"geoLocation"`
}

type eventSpace struct {
	VenueName string `json:"venueName"`
	Title     string `json:"title"`
}

type eventPerformance struct {
	DateTime             string `json:"dateTime"`
	EstimatedEndDateTime string `json:"estimatedEndDateTime"`
	TicketStatus         string `json:"ticketStatus"`
	Cancelled            bool   `json:"cancelled"`
	SoldOut              bool   `json:"soldOut"`
}

type eventAttribute struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

type eventSocialLink struct {
	Type string `json:"type"`
	Url  string `json:"url"`
}

type eventImage struct {
	ImageType string `json:"imageType"`
	Url       string `json:"url"`
}

// VenuePageData is the venue payload of a venue detail page. It is only
// fetched to enrich the venue cache with contact details.
type VenuePageData struct {
	ContactPhone string `json:"contactPhone"`
	ContactEmail string `json:"contactEmail"`
}

func extractNextData(html string) (*nextData, bool) {
	match := nextDataPattern.FindStringSubmatch(html)
	if match == nil {
		log.GetLogger().Debug("no __NEXT_DATA__ found in page")
		return nil, false
	}

	var data nextData
	if err := json.Unmarshal([]byte(match[1]), &data); err != nil {
		log.GetLogger().WithField("Error", err.Error()).Warn("failed to parse __NEXT_DATA__")
		return nil, false
	}

	return &data, true
}

// ExtractBuildId returns the Next.js build id embedded in a page, needed to
// construct /_next/data/... API URLs.
func ExtractBuildId(html string) (string, bool) {
	data, ok := extractNextData(html)
	if !ok || data.BuildId == "" {
		return "", false
	}

	return data.BuildId, true
}

// ExtractEventData locates the event payload of a show detail page: the
// first query result whose key mentions "Event" and carries a data.event
// object. Returns false when the page has no usable embedded JSON.
func ExtractEventData(html string) (*EventData, bool) {
	data, ok := extractNextData(html)
	if !ok {
		return nil, false
	}

	queries := data.Props.PageProps.InitialState.ApiPublic.Queries

	for _, key := range sortedQueryKeys(queries) {
		if !strings.Contains(key, "Event") {
			continue
		}

		var payload struct {
			Data struct {
				Event *EventData `json:"event"`
			} `json:"data"`
		}
		if err := json.Unmarshal(queries[key], &payload); err != nil {
			continue
		}
		if payload.Data.Event != nil {
			return payload.Data.Event, true
		}
	}

	return nil, false
}

// ExtractVenuePageData locates the venue payload of a venue detail page.
func ExtractVenuePageData(html string) (*VenuePageData, bool) {
	data, ok := extractNextData(html)
	if !ok {
		return nil, false
	}

	queries := data.Props.PageProps.InitialState.ApiPublic.Queries

	for _, key := range sortedQueryKeys(queries) {
		if !strings.Contains(key, "Venue") {
			continue
		}

		var payload struct {
			Data struct {
				Venue *VenuePageData `json:"venue"`
			} `json:"data"`
		}
		if err := json.Unmarshal(queries[key], &payload); err != nil {
			continue
		}
		if payload.Data.Venue != nil {
			return payload.Data.Venue, true
		}
	}

	return nil, false
}

// ParseVenueContact reads contact details off a venue page payload.
func ParseVenueContact(data *VenuePageData) (phone string, email string) {
	return data.ContactPhone, data.ContactEmail
}

// sortedQueryKeys keeps the "first matching query" rule deterministic; the
// query map only ever holds one event (or venue) entry in practice.
func sortedQueryKeys(queries map[string]json.RawMessage) []string {
	keys := make([]string, 0, len(queries))
	for k := range queries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
