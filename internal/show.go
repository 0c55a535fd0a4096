package internal

import "time"

// RawDateLayout is how the site renders performance dates ("Wednesday 30
// July", no year, no zero padding). Canonical files keep this rendering.
const RawDateLayout = "Monday 2 January"

// ShowCard is one entry on a search results page.
type ShowCard struct {
	Title         string
	Url           string
	Performer     string
	Duration      string
	DateBlockHtml string
}

// PerformanceDetail is a single performance parsed from a show detail page.
type PerformanceDetail struct {
	Date         time.Time
	StartTime    string
	EndTime      string
	Availability Status
	Venue        string
	Location     string
}

// RawDate renders the performance date the way the site does.
func (p *PerformanceDetail) RawDate() string {
	if p.Date.IsZero() {
		return ""
	}

	return p.Date.Format(RawDateLayout)
}

// TimeRange renders "19:30 - 20:30", or just the start time when no end
// time is known.
func (p *PerformanceDetail) TimeRange() string {
	if p.StartTime == "" {
		return ""
	}
	if p.EndTime == "" {
		return p.StartTime
	}

	return p.StartTime + " - " + p.EndTime
}

// ShowInfo is one row of per-show metadata.
type ShowInfo struct {
	ShowUrl        string
	ShowName       string
	Genre          string
	Subgenres      string
	Description    string
	Warnings       string
	AgeSuitability string
	ImageUrl       string
	Website        string
	Facebook       string
	Instagram      string
	Tiktok         string
	Youtube        string
	Twitter        string
	Bluesky        string
	Mastodon       string
}

// VenueInfo is one row of per-venue metadata. ContactPhone and ContactEmail
// are only known after fetching the venue's own detail page.
type VenueInfo struct {
	VenueCode     string
	VenueName     string
	Address       string
	Postcode      string
	Geolocation   string
	GoogleMapsUrl string
	VenuePageUrl  string
	Description   string
	ContactPhone  string
	ContactEmail  string
}

// ScrapedShow is everything collected for one show during a run. A show
// whose detail page could not be fetched keeps its card fields and carries
// zero performances.
type ScrapedShow struct {
	Title        string
	Url          string
	Performer    string
	Genre        string
	SearchUrl    string
	Performances []*PerformanceDetail
	ShowInfo     *ShowInfo
	VenueInfo    *VenueInfo
}
