package internal

import (
	"sort"

	"github.com/fringe-watch/edfringe-parser/internal/store"
)

// CollectVenues gathers the distinct venues observed in one run, keyed by
// venue code. Venues without a code cannot be cached and are skipped.
func CollectVenues(shows []*ScrapedShow) map[string]*VenueInfo {
	venues := make(map[string]*VenueInfo)

	for _, show := range shows {
		if show.VenueInfo == nil || show.VenueInfo.VenueCode == "" {
			continue
		}
		if _, seen := venues[show.VenueInfo.VenueCode]; seen {
			continue
		}

		venues[show.VenueInfo.VenueCode] = show.VenueInfo
	}

	return venues
}

// MissingVenueCodes is phase one of venue contact enrichment: it lists the
// observed venues whose contact details the cache does not have yet. Phase
// two fetches each venue page and merges the result back with
// MergeVenueCache; nothing is mutated while iterating.
func MissingVenueCodes(cached, observed map[string]*VenueInfo) []string {
	var missing []string

	for code := range observed {
		existing, ok := cached[code]
		if ok && (existing.ContactPhone != "" || existing.ContactEmail != "") {
			continue
		}
		missing = append(missing, code)
	}

	sort.Strings(missing)
	return missing
}

// MergeVenueCache folds observed venues into the cached set, returning a
// new map. New codes are added; known codes keep their cached contact
// details but pick up fresher address fields from the scrape.
func MergeVenueCache(cached, observed map[string]*VenueInfo) map[string]*VenueInfo {
	merged := make(map[string]*VenueInfo, len(cached)+len(observed))

	for code, venue := range cached {
		copied := *venue
		merged[code] = &copied
	}

	for code, venue := range observed {
		if code == "" {
			continue
		}

		existing, ok := merged[code]
		if !ok {
			copied := *venue
			merged[code] = &copied
			continue
		}

		phone, email := existing.ContactPhone, existing.ContactEmail
		copied := *venue
		if copied.ContactPhone == "" {
			copied.ContactPhone = phone
		}
		if copied.ContactEmail == "" {
			copied.ContactEmail = email
		}
		merged[code] = &copied
	}

	return merged
}

// LoadVenueCache reads the venue cache file; a missing file is an empty
// cache.
func LoadVenueCache(path string) (map[string]*VenueInfo, error) {
	table, err := store.Load(path, store.VenueColumns)
	if err != nil {
		return nil, err
	}

	venues := make(map[string]*VenueInfo, table.Len())
	for _, row := range table.Rows {
		code := row.Get("venue_code")
		if code == "" {
			continue
		}

		venues[code] = &VenueInfo{
			VenueCode:     code,
			VenueName:     row.Get("venue_name"),
			Address:       row.Get("address"),
			Postcode:      row.Get("postcode"),
			Geolocation:   row.Get("geolocation"),
			GoogleMapsUrl: row.Get("google_maps_url"),
			VenuePageUrl:  row.Get("venue_page_url"),
			Description:   row.Get("description"),
			ContactPhone:  row.Get("contact_phone"),
			ContactEmail:  row.Get("contact_email"),
		}
	}

	return venues, nil
}

// SaveVenueCache rewrites the venue cache file, sorted by venue code.
func SaveVenueCache(venues map[string]*VenueInfo, path string) error {
	table := store.NewTable(store.VenueColumns)

	for _, code := range sortedKeys(venues) {
		v := venues[code]
		table.Append(store.Row{
			"venue_code":      v.VenueCode,
			"venue_name":      v.VenueName,
			"address":         v.Address,
			"postcode":        v.Postcode,
			"geolocation":     v.Geolocation,
			"google_maps_url": v.GoogleMapsUrl,
			"venue_page_url":  v.VenuePageUrl,
			"description":     v.Description,
			"contact_phone":   v.ContactPhone,
			"contact_email":   v.ContactEmail,
		})
	}

	return table.Save(path)
}

func sortedKeys(venues map[string]*VenueInfo) []string {
	keys := make([]string, 0, len(venues))
	for k := range venues {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
