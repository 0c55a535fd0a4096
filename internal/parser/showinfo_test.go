package parser

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseShowInfoSubgenresRejoined(t *testing.T) {
	event := &EventData{
		Genre:    "Comedy",
		SubGenre: "stand-up, satire ,  improv",
	}

	info := ParseShowInfo(event, "https://example.org/a", "Show A")
	require.Equal(t, "stand-up, satire, improv", info.Subgenres)
	require.Equal(t, "https://example.org/a", info.ShowUrl)
	require.Equal(t, "Show A", info.ShowName)
}

func TestParseShowInfoAttributes(t *testing.T) {
	event := &EventData{
		Attributes: []eventAttribute{
			{Key: "explicit_material", Value: "Strong language"},
			{Key: "age_range_guidance", Value: "16+"},
			{Key: "website", Value: "https://show.example.org"},
		},
	}

	info := ParseShowInfo(event, "", "")
	require.Equal(t, "Strong language", info.Warnings)
	require.Equal(t, "16+", info.AgeSuitability)
	require.Equal(t, "https://show.example.org", info.Website)
}

func TestParseShowInfoSocialLinksFillGapsOnly(t *testing.T) {
	event := &EventData{
		Attributes: []eventAttribute{
			{Key: "instagram", Value: "https://instagram.com/from-attr"},
		},
		SocialLinks: []eventSocialLink{
			{Type: "Instagram", Url: "https://instagram.com/from-links"},
			{Type: "Facebook", Url: "https://facebook.com/show"},
			{Type: "Newsletter", Url: "https://example.org/unknown-type"},
		},
	}

	info := ParseShowInfo(event, "", "")
	require.Equal(t, "https://instagram.com/from-attr", info.Instagram)
	require.Equal(t, "https://facebook.com/show", info.Facebook)
}

func TestParseShowInfoImagePrefersLarge(t *testing.T) {
	event := &EventData{
		Images: []eventImage{
			{ImageType: "Thumbnail", Url: "https://img.example.org/small.jpg"},
			{ImageType: "Large", Url: "https://img.example.org/large.jpg"},
		},
	}
	info := ParseShowInfo(event, "", "")
	require.Equal(t, "https://img.example.org/large.jpg", info.ImageUrl)

	noLarge := &EventData{
		Images: []eventImage{
			{ImageType: "Thumbnail", Url: "https://img.example.org/small.jpg"},
		},
	}
	info = ParseShowInfo(noLarge, "", "")
	require.Equal(t, "https://img.example.org/small.jpg", info.ImageUrl)

	info = ParseShowInfo(&EventData{}, "", "")
	require.Equal(t, "", info.ImageUrl)
}

func TestParseVenueInfo(t *testing.T) {
	event := &EventData{
		Venues: []EventVenue{{
			VenueCode:   "V123",
			Title:       "The Stand",
			Slug:        "the-stand",
			Address1:    "5 York Place",
			PostCode:    "EH1 3EB",
			GeoLocation: "55.956,-3.189",
		}},
	}

	venue := ParseVenueInfo(event, "https://www.edfringe.com/")
	require.NotNil(t, venue)
	require.Equal(t, "V123", venue.VenueCode)
	require.Equal(t, "5 York Place", venue.Address)
	require.Equal(t, "https://www.google.com/maps/dir/?api=1&destination=55.956,-3.189", venue.GoogleMapsUrl)
	require.Equal(t, "https://www.edfringe.com/venues/the-stand", venue.VenuePageUrl)
	require.Equal(t, "", venue.ContactPhone)
}

func TestParseVenueInfoNoVenues(t *testing.T) {
	require.Nil(t, ParseVenueInfo(&EventData{}, "https://www.edfringe.com"))
}
