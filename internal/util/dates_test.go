package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseRawDate(t *testing.T) {
	tests := []struct {
		raw  string
		want time.Time
		ok   bool
	}{
		{"Wednesday 30 July", time.Date(2026, 7, 30, 0, 0, 0, 0, time.UTC), true},
		{"Saturday 1 August", time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC), true},
		{"  Monday 25 August  ", time.Date(2026, 8, 25, 0, 0, 0, 0, time.UTC), true},
		{"30 July", time.Date(2026, 7, 30, 0, 0, 0, 0, time.UTC), true},
		{"", time.Time{}, false},
		{"Filters", time.Time{}, false},
		{"99 July", time.Time{}, false},
		{"30 Snowember", time.Time{}, false},
	}

	for _, tt := range tests {
		got, ok := ParseRawDate(tt.raw, 2026)
		require.Equal(t, tt.ok, ok, "raw %q", tt.raw)
		if tt.ok {
			require.Equal(t, tt.want, got, "raw %q", tt.raw)
		}
	}
}

func TestLooksLikeDate(t *testing.T) {
	require.True(t, LooksLikeDate("Saturday 1 August"))
	require.True(t, LooksLikeDate("30 JULY"))
	require.False(t, LooksLikeDate("Filters"))
	require.False(t, LooksLikeDate(""))
}

func TestParseTimeRange(t *testing.T) {
	tests := []struct {
		raw   string
		start string
		end   string
	}{
		{"19:30 - 20:30", "19:30", "20:30"},
		{"19:30 – 20:30", "19:30", "20:30"},
		{"19:30", "19:30", ""},
		{"9:05", "09:05", ""},
		{"25:00", "", ""},
		{"19:75 - 20:30", "", "20:30"},
		{"", "", ""},
		{"doors at seven", "", ""},
	}

	for _, tt := range tests {
		start, end := ParseTimeRange(tt.raw)
		require.Equal(t, tt.start, start, "raw %q", tt.raw)
		require.Equal(t, tt.end, end, "raw %q", tt.raw)
	}
}

func TestCollapseWhitespace(t *testing.T) {
	require.Equal(t, "Some Show", CollapseWhitespace("  Some \n  Show "))
	require.Equal(t, "", CollapseWhitespace("   "))
}

func FuzzParseRawDate(f *testing.F) {
	f.Add("Wednesday 30 July")
	f.Add("Saturday 1 August")
	f.Add("")
	f.Add("Filters")
	f.Add("99 December")
	f.Add("29 February")

	f.Fuzz(func(t *testing.T, input string) {
		parsed, ok := ParseRawDate(input, 2000)
		if ok && parsed.Year() != 2000 {
			t.Errorf("ParseRawDate(%q) = %v, want year 2000", input, parsed)
		}
	})
}
