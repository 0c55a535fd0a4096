package snapshot

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormatTextNoChanges(t *testing.T) {
	diff := &SnapshotDiff{OldSnapshotDate: "2026-08-01 06:00", NewSnapshotDate: "2026-08-02 06:00"}

	text := FormatText(diff)
	require.Contains(t, text, "EDINBURGH FRINGE DAILY UPDATE")
	require.Contains(t, text, "Comparing: 2026-08-01 06:00 -> 2026-08-02 06:00")
	require.Contains(t, text, "No changes detected since last snapshot.")
}

func TestFormatTextSections(t *testing.T) {
	diff := &SnapshotDiff{
		NewShows: []*ShowChange{{
			ShowName:         "New Show",
			ShowUrl:          "https://example.org/new",
			Performer:        "Someone",
			PerformanceCount: 12,
			Venues:           []string{"The Stand"},
			DateRange:        "1 August - 25 August",
		}},
		SoldOutPerformances: []*PerformanceChange{{
			ShowName: "Hot Show", ShowUrl: "https://example.org/hot",
			Date: "Saturday 1 August", Time: "19:30",
		}},
		RemovedShows: []*ShowChange{{ShowName: "Gone Show", PerformanceCount: 3}},
	}

	text := FormatText(diff)
	require.Contains(t, text, "Total changes: 3")
	require.Contains(t, text, "NEW SHOWS (1)")
	require.Contains(t, text, "Dates: 1 August - 25 August")
	require.Contains(t, text, "SOLD OUT (1)")
	require.Contains(t, text, "- Saturday 1 August 19:30")
	require.Contains(t, text, "REMOVED SHOWS (1)")
	require.Contains(t, text, "Gone Show (3 performances)")
}

func TestFormatTextSoldOutCapPerShow(t *testing.T) {
	var changes []*PerformanceChange
	for i := 0; i < 8; i++ {
		changes = append(changes, &PerformanceChange{
			ShowName: "Busy Show",
			Date:     fmt.Sprintf("Day %d August", i+1),
			Time:     "19:30",
		})
	}
	diff := &SnapshotDiff{SoldOutPerformances: changes}

	text := FormatText(diff)
	require.Contains(t, text, "... and 3 more")
	require.Equal(t, 5, strings.Count(text, "    - Day"))
}

func TestFormatTextCancelledFlatCap(t *testing.T) {
	var changes []*PerformanceChange
	for i := 0; i < 14; i++ {
		changes = append(changes, &PerformanceChange{
			ShowName: fmt.Sprintf("Show %02d", i),
			Date:     "Saturday 1 August",
			Time:     "19:30",
		})
	}
	diff := &SnapshotDiff{CancelledPerformances: changes}

	text := FormatText(diff)
	require.Contains(t, text, "CANCELLED (14)")
	require.Contains(t, text, "... and 4 more")
	require.NotContains(t, text, "Show 10 -")
}

func TestFormatTextNewPerformanceCaps(t *testing.T) {
	var changes []*PerformanceChange
	for show := 0; show < 12; show++ {
		for perf := 0; perf < 4; perf++ {
			changes = append(changes, &PerformanceChange{
				ShowName: fmt.Sprintf("Show %02d", show),
				Date:     fmt.Sprintf("Day %d August", perf+1),
				Time:     "19:30",
				Venue:    "The Stand",
			})
		}
	}
	diff := &SnapshotDiff{NewPerformances: changes}

	text := FormatText(diff)
	require.Contains(t, text, "NEW PERFORMANCES FOR EXISTING SHOWS (48)")
	require.Contains(t, text, "... and 1 more performances")
	require.Contains(t, text, "... and 2 more shows with new performances")
	require.NotContains(t, text, "Show 11")
}

func TestFormatHTMLNoChanges(t *testing.T) {
	diff := &SnapshotDiff{OldSnapshotDate: "2026-08-01 06:00", NewSnapshotDate: "2026-08-02 06:00"}

	html := FormatHTML(diff)
	require.Contains(t, html, "<h1>Edinburgh Fringe Daily Update</h1>")
	require.Contains(t, html, "No changes detected since last snapshot.")
}

func TestFormatHTMLEscapesAndLinks(t *testing.T) {
	diff := &SnapshotDiff{
		NewShows: []*ShowChange{{
			ShowName:         "Tom & Jerry <Live>",
			ShowUrl:          "https://example.org/tj",
			Performer:        "Duo",
			PerformanceCount: 2,
		}},
		SoldOutPerformances: []*PerformanceChange{{
			ShowName: "Hot Show", ShowUrl: "https://example.org/hot",
			Date: "Saturday 1 August", Time: "19:30",
		}},
	}

	html := FormatHTML(diff)
	require.Contains(t, html, "Tom &amp; Jerry &lt;Live&gt;")
	require.Contains(t, html, `href="https://example.org/tj"`)
	require.Contains(t, html, "1 new shows")
	require.Contains(t, html, "1 performances sold out")
	require.Contains(t, html, "badge-soldout")
	require.Contains(t, html, "<style>")
}
