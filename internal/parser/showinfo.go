package parser

import (
	"fmt"
	"strings"

	"github.com/fringe-watch/edfringe-parser/internal"
)

// socialKeys are the attribute names that map straight onto ShowInfo link
// fields, in field order.
var socialKeys = []string{
	"website",
	"facebook",
	"instagram",
	"tiktok",
	"youtube",
	"twitter",
	"bluesky",
	"mastodon",
}

// ParseShowInfo reads per-show metadata out of an event payload.
func ParseShowInfo(event *EventData, showUrl, showName string) *internal.ShowInfo {
	subgenres := ""
	if event.SubGenre != "" {
		var parts []string
		for _, s := range strings.Split(event.SubGenre, ",") {
			if s = strings.TrimSpace(s); s != "" {
				parts = append(parts, s)
			}
		}
		subgenres = strings.Join(parts, ", ")
	}

	attrs := make(map[string]string, len(event.Attributes))
	for _, attr := range event.Attributes {
		if attr.Key != "" && attr.Value != "" {
			attrs[attr.Key] = attr.Value
		}
	}

	socials := make(map[string]string, len(socialKeys))
	for _, key := range socialKeys {
		socials[key] = attrs[key]
	}

	// the socialLinks array only fills gaps; attribute values win
	for _, link := range event.SocialLinks {
		linkType := strings.ToLower(link.Type)
		if link.Url == "" || socials[linkType] != "" {
			continue
		}
		if _, known := socials[linkType]; known {
			socials[linkType] = link.Url
		}
	}

	imageUrl := ""
	for _, img := range event.Images {
		if img.ImageType == "Large" {
			imageUrl = img.Url
			break
		}
	}
	if imageUrl == "" && len(event.Images) > 0 {
		imageUrl = event.Images[0].Url
	}

	return &internal.ShowInfo{
		ShowUrl:        showUrl,
		ShowName:       showName,
		Genre:          event.Genre,
		Subgenres:      subgenres,
		Description:    event.Description,
		Warnings:       attrs["explicit_material"],
		AgeSuitability: attrs["age_range_guidance"],
		ImageUrl:       imageUrl,
		Website:        socials["website"],
		Facebook:       socials["facebook"],
		Instagram:      socials["instagram"],
		Tiktok:         socials["tiktok"],
		Youtube:        socials["youtube"],
		Twitter:        socials["twitter"],
		Bluesky:        socials["bluesky"],
		Mastodon:       socials["mastodon"],
	}
}

// ParseVenueInfo reads venue metadata off an event payload. Contact details
// are left empty; they live on the venue's own detail page.
func ParseVenueInfo(event *EventData, baseUrl string) *internal.VenueInfo {
	if len(event.Venues) == 0 {
		return nil
	}

	venue := event.Venues[0]

	var parts []string
	for _, p := range []string{venue.Address1, venue.Address2} {
		if p != "" {
			parts = append(parts, p)
		}
	}

	googleMapsUrl := ""
	if venue.GeoLocation != "" {
		googleMapsUrl = fmt.Sprintf("https://www.google.com/maps/dir/?api=1&destination=%s", venue.GeoLocation)
	}

	venuePageUrl := ""
	if venue.Slug != "" {
		venuePageUrl = fmt.Sprintf("%s/venues/%s", strings.TrimRight(baseUrl, "/"), venue.Slug)
	}

	return &internal.VenueInfo{
		VenueCode:     venue.VenueCode,
		VenueName:     venue.Title,
		Address:       strings.Join(parts, ", "),
		Postcode:      venue.PostCode,
		Geolocation:   venue.GeoLocation,
		GoogleMapsUrl: googleMapsUrl,
		VenuePageUrl:  venuePageUrl,
		Description:   venue.Description,
	}
}
