package store

// Column names follow the original Web Scraper.io export so canonical files
// written by earlier seasons keep loading.
const (
	ColScrapeTime   = "web-scraper-scrape-time"
	ColShowUrl      = "show-link-href"
	ColShowLink     = "show-link"
	ColShowName     = "show-name"
	ColPerformer    = "show-performer"
	ColDate         = "date"
	ColTime         = "performance-time"
	ColAvailability = "show-availability"
	ColLocation     = "show-location"
	ColStartUrl     = "web-scraper-start-url"
	ColGenre        = "genre"
)

// PerformanceColumns is the schema of the canonical performance table and
// of snapshot files.
var PerformanceColumns = []string{
	ColScrapeTime,
	ColShowUrl,
	ColShowLink,
	ColShowName,
	ColPerformer,
	ColDate,
	ColTime,
	ColAvailability,
	ColLocation,
	ColStartUrl,
	ColGenre,
}

// ShowInfoColumns is the schema of the canonical show-info table.
var ShowInfoColumns = []string{
	ColShowUrl,
	ColShowName,
	ColGenre,
	"subgenres",
	"description",
	"warnings",
	"age_suitability",
	"image_url",
	"website",
	"facebook",
	"instagram",
	"tiktok",
	"youtube",
	"twitter",
	"bluesky",
	"mastodon",
}

// VenueColumns is the schema of the long-lived venue cache.
var VenueColumns = []string{
	"venue_code",
	"venue_name",
	"address",
	"postcode",
	"geolocation",
	"google_maps_url",
	"venue_page_url",
	"description",
	"contact_phone",
	"contact_email",
}
