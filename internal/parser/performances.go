package parser

import (
	"strings"
	"time"

	"github.com/fringe-watch/edfringe-parser/internal"
	"github.com/fringe-watch/edfringe-parser/internal/log"
)

type perfKey struct {
	date  string
	start string
	venue string
}

// ParsePerformances reads the performance list out of an event payload.
//
// The site sometimes lists the same slot twice (e.g. once as a preview and
// once as sold out). Duplicates share a (date, start time, venue) key and
// only the entry with the more informative availability survives; on a tie
// the first one seen wins.
func ParsePerformances(event *EventData) []*internal.PerformanceDetail {
	venueName, venueLocation := resolveVenue(event)

	var order []perfKey
	perfMap := make(map[perfKey]*internal.PerformanceDetail)

	for _, raw := range event.Performances {
		if raw.DateTime == "" {
			continue
		}

		start, ok := parseIsoDateTime(raw.DateTime)
		if !ok {
			log.GetLogger().WithField("DateTime", raw.DateTime).Debug("skipping performance with unparsable datetime")
			continue
		}

		endTime := ""
		if raw.EstimatedEndDateTime != "" {
			if end, ok := parseIsoDateTime(raw.EstimatedEndDateTime); ok {
				endTime = end.Format("15:04")
			}
		}

		availability := internal.StatusFromString(raw.TicketStatus)
		if raw.Cancelled {
			availability = internal.StatusCancelled
		} else if raw.SoldOut {
			availability = internal.StatusSoldOut
		}

		detail := &internal.PerformanceDetail{
			Date:         time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC),
			StartTime:    start.Format("15:04"),
			EndTime:      endTime,
			Availability: availability,
			Venue:        venueName,
			Location:     venueLocation,
		}

		key := perfKey{
			date:  start.Format(time.DateOnly),
			start: detail.StartTime,
			venue: venueName,
		}

		existing, seen := perfMap[key]
		if !seen {
			perfMap[key] = detail
			order = append(order, key)
			continue
		}

		if detail.Availability.Priority() > existing.Availability.Priority() {
			log.GetLogger().WithField("Key", key.date+" "+key.start).
				Debugf("dedup: replacing %s with %s", existing.Availability, detail.Availability)
			perfMap[key] = detail
		}
	}

	performances := make([]*internal.PerformanceDetail, 0, len(order))
	for _, key := range order {
		performances = append(performances, perfMap[key])
	}

	return performances
}

// resolveVenue picks the venue name and location for a show. A space entry
// names a more specific sub-location (a particular room) and overrides the
// venue title when present.
func resolveVenue(event *EventData) (name string, location string) {
	if len(event.Venues) > 0 {
		venue := event.Venues[0]
		name = venue.Title

		parts := make([]string, 0, 3)
		for _, p := range []string{venue.Address1, venue.Address2, venue.PostCode} {
			if p != "" {
				parts = append(parts, p)
			}
		}
		location = strings.Join(parts, ", ")
	}

	if len(event.Spaces) > 0 {
		space := event.Spaces[0]
		spaceName := space.VenueName
		if spaceName == "" {
			spaceName = space.Title
		}
		if spaceName != "" {
			name = spaceName
		}
	}

	return name, location
}

func parseIsoDateTime(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)

	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}
