package internal

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func venueShow(code, name string) *ScrapedShow {
	return &ScrapedShow{
		Title:     "Some Show",
		VenueInfo: &VenueInfo{VenueCode: code, VenueName: name},
	}
}

func TestCollectVenues(t *testing.T) {
	shows := []*ScrapedShow{
		venueShow("V1", "The Stand"),
		venueShow("V1", "The Stand (duplicate)"),
		venueShow("V2", "Pleasance"),
		venueShow("", "Unlisted Venue"),
		{Title: "No Venue Show"},
	}

	venues := CollectVenues(shows)
	require.Len(t, venues, 2)
	require.Equal(t, "The Stand", venues["V1"].VenueName, "first observation wins")
}

func TestMissingVenueCodes(t *testing.T) {
	cached := map[string]*VenueInfo{
		"V1": {VenueCode: "V1", ContactPhone: "0131 555 0100"},
		"V2": {VenueCode: "V2"},
	}
	observed := map[string]*VenueInfo{
		"V1": {VenueCode: "V1"},
		"V2": {VenueCode: "V2"},
		"V3": {VenueCode: "V3"},
	}

	require.Equal(t, []string{"V2", "V3"}, MissingVenueCodes(cached, observed))
}

func TestMergeVenueCachePreservesContact(t *testing.T) {
	cached := map[string]*VenueInfo{
		"V1": {VenueCode: "V1", VenueName: "Old Name", ContactPhone: "0131 555 0100", ContactEmail: "old@example.org"},
	}
	observed := map[string]*VenueInfo{
		"V1": {VenueCode: "V1", VenueName: "New Name", Address: "5 York Place"},
		"V2": {VenueCode: "V2", VenueName: "Pleasance"},
	}

	merged := MergeVenueCache(cached, observed)
	require.Len(t, merged, 2)

	require.Equal(t, "New Name", merged["V1"].VenueName)
	require.Equal(t, "5 York Place", merged["V1"].Address)
	require.Equal(t, "0131 555 0100", merged["V1"].ContactPhone)
	require.Equal(t, "old@example.org", merged["V1"].ContactEmail)

	// inputs are untouched
	require.Equal(t, "", observed["V1"].ContactPhone)
}

func TestMergeVenueCacheFreshContactWins(t *testing.T) {
	cached := map[string]*VenueInfo{
		"V1": {VenueCode: "V1", ContactPhone: "old phone"},
	}
	observed := map[string]*VenueInfo{
		"V1": {VenueCode: "V1", ContactPhone: "new phone"},
	}

	merged := MergeVenueCache(cached, observed)
	require.Equal(t, "new phone", merged["V1"].ContactPhone)
}

func TestVenueCacheRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "venues.csv")

	venues := map[string]*VenueInfo{
		"V1": {
			VenueCode:     "V1",
			VenueName:     "The Stand",
			Address:       "5 York Place",
			Postcode:      "EH1 3EB",
			GoogleMapsUrl: "https://www.google.com/maps/dir/?api=1&destination=55.956,-3.189",
			ContactPhone:  "0131 555 0100",
		},
	}

	require.NoError(t, SaveVenueCache(venues, path))

	loaded, err := LoadVenueCache(path)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	require.Equal(t, venues["V1"], loaded["V1"])
}

func TestLoadVenueCacheMissingFile(t *testing.T) {
	loaded, err := LoadVenueCache(filepath.Join(t.TempDir(), "nope.csv"))
	require.NoError(t, err)
	require.Empty(t, loaded)
}
