package util

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var dayMonthPattern = regexp.MustCompile(`(\d{1,2})\s+(\w+)`)

var timePattern = regexp.MustCompile(`^(\d{1,2}):(\d{2})`)

var timeRangeSeparator = regexp.MustCompile(`\s*[-–]\s*`)

// ParseRawDate parses a listing date like "Wednesday 30 July" into a real
// date. The site never renders a year, so the caller supplies one.
func ParseRawDate(raw string, year int) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}

	match := dayMonthPattern.FindStringSubmatch(raw)
	if match == nil {
		return time.Time{}, false
	}

	day, err := strconv.Atoi(match[1])
	if err != nil {
		return time.Time{}, false
	}

	parsed, err := time.Parse("2 January 2006", fmt.Sprintf("%d %s %d", day, match[2], year))
	if err != nil {
		return time.Time{}, false
	}

	return parsed, true
}

// LooksLikeDate reports whether text contains a month name, which is how
// date buttons are told apart from other controls on the detail page.
func LooksLikeDate(text string) bool {
	months := []string{
		"january", "february", "march", "april", "may", "june",
		"july", "august", "september", "october", "november", "december",
	}

	lower := strings.ToLower(text)
	for _, month := range months {
		if strings.Contains(lower, month) {
			return true
		}
	}

	return false
}

// ParseTimeRange splits a rendered time like "19:30 - 20:30" into start and
// end clock times. Either part may be missing.
func ParseTimeRange(raw string) (start string, end string) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ""
	}

	parts := timeRangeSeparator.Split(raw, -1)

	start = parseClockTime(parts[0])
	if len(parts) > 1 {
		end = parseClockTime(parts[1])
	}

	return start, end
}

func parseClockTime(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}

	match := timePattern.FindStringSubmatch(raw)
	if match == nil {
		return ""
	}

	hour, _ := strconv.Atoi(match[1])
	minute, _ := strconv.Atoi(match[2])
	if hour > 23 || minute > 59 {
		return ""
	}

	return fmt.Sprintf("%02d:%02d", hour, minute)
}
