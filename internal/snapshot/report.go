package snapshot

import (
	"fmt"
	"html"
	"strings"
)

const (
	maxFlatEntries     = 10
	maxShowGroups      = 10
	maxSoldOutPerShow  = 5
	maxNewPerfsPerShow = 3
)

// groupByShow buckets changes by show name, preserving first-seen order.
func groupByShow(changes []*PerformanceChange) (names []string, byShow map[string][]*PerformanceChange) {
	byShow = make(map[string][]*PerformanceChange)
	for _, change := range changes {
		if _, seen := byShow[change.ShowName]; !seen {
			names = append(names, change.ShowName)
		}
		byShow[change.ShowName] = append(byShow[change.ShowName], change)
	}
	return names, byShow
}

// FormatText renders a diff as a plain text report.
func FormatText(diff *SnapshotDiff) string {
	var b strings.Builder

	divider := strings.Repeat("=", 60)
	section := strings.Repeat("-", 40)

	fmt.Fprintln(&b, divider)
	fmt.Fprintln(&b, "EDINBURGH FRINGE DAILY UPDATE")
	fmt.Fprintf(&b, "Comparing: %s -> %s\n", diff.OldSnapshotDate, diff.NewSnapshotDate)
	fmt.Fprintln(&b, divider)
	fmt.Fprintln(&b)

	if !diff.HasChanges() {
		fmt.Fprintln(&b, "No changes detected since last snapshot.")
		return b.String()
	}

	fmt.Fprintf(&b, "Total changes: %d\n\n", diff.TotalChanges())

	if len(diff.NewShows) > 0 {
		fmt.Fprintln(&b, section)
		fmt.Fprintf(&b, "NEW SHOWS (%d)\n", len(diff.NewShows))
		fmt.Fprintln(&b, section)
		for _, show := range diff.NewShows {
			fmt.Fprintf(&b, "\n  %s\n", show.ShowName)
			fmt.Fprintf(&b, "    Performer: %s\n", show.Performer)
			fmt.Fprintf(&b, "    Performances: %d\n", show.PerformanceCount)
			if show.DateRange != "" {
				fmt.Fprintf(&b, "    Dates: %s\n", show.DateRange)
			}
			if len(show.Venues) > 0 {
				fmt.Fprintf(&b, "    Venue: %s\n", strings.Join(show.Venues, ", "))
			}
			fmt.Fprintf(&b, "    URL: %s\n", show.ShowUrl)
		}
		fmt.Fprintln(&b)
	}

	if len(diff.SoldOutPerformances) > 0 {
		fmt.Fprintln(&b, section)
		fmt.Fprintf(&b, "SOLD OUT (%d)\n", len(diff.SoldOutPerformances))
		fmt.Fprintln(&b, section)

		names, byShow := groupByShow(diff.SoldOutPerformances)
		for _, name := range names {
			perfs := byShow[name]
			fmt.Fprintf(&b, "\n  %s\n", name)
			for i, perf := range perfs {
				if i == maxSoldOutPerShow {
					break
				}
				fmt.Fprintf(&b, "    - %s %s\n", perf.Date, perf.Time)
			}
			if len(perfs) > maxSoldOutPerShow {
				fmt.Fprintf(&b, "    ... and %d more\n", len(perfs)-maxSoldOutPerShow)
			}
		}
		fmt.Fprintln(&b)
	}

	if len(diff.CancelledPerformances) > 0 {
		writeFlatTextSection(&b, section, "CANCELLED", diff.CancelledPerformances)
	}

	if len(diff.BackAvailable) > 0 {
		writeFlatTextSection(&b, section, "BACK AVAILABLE", diff.BackAvailable)
	}

	if len(diff.NewPerformances) > 0 {
		fmt.Fprintln(&b, section)
		fmt.Fprintf(&b, "NEW PERFORMANCES FOR EXISTING SHOWS (%d)\n", len(diff.NewPerformances))
		fmt.Fprintln(&b, section)

		names, byShow := groupByShow(diff.NewPerformances)
		for i, name := range names {
			if i == maxShowGroups {
				break
			}
			perfs := byShow[name]
			fmt.Fprintf(&b, "\n  %s\n", name)
			for j, perf := range perfs {
				if j == maxNewPerfsPerShow {
					break
				}
				fmt.Fprintf(&b, "    + %s %s @ %s\n", perf.Date, perf.Time, perf.Venue)
			}
			if len(perfs) > maxNewPerfsPerShow {
				fmt.Fprintf(&b, "    ... and %d more performances\n", len(perfs)-maxNewPerfsPerShow)
			}
		}
		if len(names) > maxShowGroups {
			fmt.Fprintf(&b, "\n  ... and %d more shows with new performances\n", len(names)-maxShowGroups)
		}
		fmt.Fprintln(&b)
	}

	if len(diff.RemovedShows) > 0 {
		fmt.Fprintln(&b, section)
		fmt.Fprintf(&b, "REMOVED SHOWS (%d)\n", len(diff.RemovedShows))
		fmt.Fprintln(&b, section)
		for i, show := range diff.RemovedShows {
			if i == maxFlatEntries {
				break
			}
			fmt.Fprintf(&b, "  %s (%d performances)\n", show.ShowName, show.PerformanceCount)
		}
		if len(diff.RemovedShows) > maxFlatEntries {
			fmt.Fprintf(&b, "  ... and %d more\n", len(diff.RemovedShows)-maxFlatEntries)
		}
		fmt.Fprintln(&b)
	}

	return b.String()
}

func writeFlatTextSection(b *strings.Builder, section, title string, changes []*PerformanceChange) {
	fmt.Fprintln(b, section)
	fmt.Fprintf(b, "%s (%d)\n", title, len(changes))
	fmt.Fprintln(b, section)
	for i, perf := range changes {
		if i == maxFlatEntries {
			break
		}
		fmt.Fprintf(b, "  %s - %s %s\n", perf.ShowName, perf.Date, perf.Time)
	}
	if len(changes) > maxFlatEntries {
		fmt.Fprintf(b, "  ... and %d more\n", len(changes)-maxFlatEntries)
	}
	fmt.Fprintln(b)
}

// reportStyle keeps the HTML self-contained so email clients render it
// without loading external assets.
const reportStyle = `
body { font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; max-width: 800px; margin: 0 auto; padding: 20px; color: #333; }
h1 { color: #7B2D8E; border-bottom: 3px solid #7B2D8E; padding-bottom: 10px; }
h2 { color: #444; margin-top: 30px; border-bottom: 1px solid #ddd; padding-bottom: 5px; }
.summary { background: #f5f5f5; padding: 15px; border-radius: 8px; margin: 20px 0; }
.show { background: #fff; border: 1px solid #e0e0e0; border-radius: 8px; padding: 15px; margin: 10px 0; }
.show-title { font-weight: bold; color: #7B2D8E; font-size: 1.1em; }
.show-meta { color: #666; font-size: 0.9em; margin-top: 5px; }
.performance-list { margin: 10px 0; padding-left: 20px; }
.sold-out { color: #d32f2f; }
.new { color: #2e7d32; }
.cancelled { color: #f57c00; }
.back { color: #1976d2; }
a { color: #7B2D8E; }
.badge { display: inline-block; padding: 2px 8px; border-radius: 12px; font-size: 0.8em; font-weight: bold; }
.badge-new { background: #e8f5e9; color: #2e7d32; }
.badge-soldout { background: #ffebee; color: #d32f2f; }
.badge-cancelled { background: #fff3e0; color: #f57c00; }
`

// FormatHTML renders a diff as a self-contained HTML report for email.
func FormatHTML(diff *SnapshotDiff) string {
	var b strings.Builder

	fmt.Fprintln(&b, "<!DOCTYPE html>")
	fmt.Fprintln(&b, "<html>")
	fmt.Fprintf(&b, "<head>\n<style>%s</style>\n</head>\n", reportStyle)
	fmt.Fprintln(&b, "<body>")

	fmt.Fprintln(&b, "<h1>Edinburgh Fringe Daily Update</h1>")
	fmt.Fprintf(&b, "<p><em>Comparing: %s &rarr; %s</em></p>\n",
		html.EscapeString(diff.OldSnapshotDate), html.EscapeString(diff.NewSnapshotDate))

	if !diff.HasChanges() {
		fmt.Fprintln(&b, "<p>No changes detected since last snapshot.</p>")
		fmt.Fprintln(&b, "</body></html>")
		return b.String()
	}

	writeHtmlSummary(&b, diff)

	if len(diff.NewShows) > 0 {
		fmt.Fprintf(&b, "<h2 class=\"new\">New Shows (%d)</h2>\n", len(diff.NewShows))
		for _, show := range diff.NewShows {
			fmt.Fprintln(&b, `<div class="show">`)
			fmt.Fprintf(&b, "<div class=\"show-title\"><a href=%q>%s</a> <span class=\"badge badge-new\">NEW</span></div>\n",
				show.ShowUrl, html.EscapeString(show.ShowName))
			fmt.Fprintln(&b, `<div class="show-meta">`)
			fmt.Fprintf(&b, "Performer: %s<br>\n", html.EscapeString(show.Performer))
			fmt.Fprintf(&b, "%d performances", show.PerformanceCount)
			if show.DateRange != "" {
				fmt.Fprintf(&b, " | %s", html.EscapeString(show.DateRange))
			}
			if len(show.Venues) > 0 {
				fmt.Fprintf(&b, "<br>Venue: %s", html.EscapeString(strings.Join(show.Venues, ", ")))
			}
			fmt.Fprintln(&b)
			fmt.Fprintln(&b, "</div>")
			fmt.Fprintln(&b, "</div>")
		}
	}

	if len(diff.SoldOutPerformances) > 0 {
		fmt.Fprintf(&b, "<h2 class=\"sold-out\">Sold Out (%d)</h2>\n", len(diff.SoldOutPerformances))

		names, byShow := groupByShow(diff.SoldOutPerformances)
		for _, name := range names {
			perfs := byShow[name]
			fmt.Fprintln(&b, `<div class="show">`)
			fmt.Fprintf(&b, "<div class=\"show-title\"><a href=%q>%s</a> <span class=\"badge badge-soldout\">SOLD OUT</span></div>\n",
				perfs[0].ShowUrl, html.EscapeString(name))
			fmt.Fprintln(&b, `<ul class="performance-list">`)
			for i, perf := range perfs {
				if i == maxSoldOutPerShow {
					break
				}
				fmt.Fprintf(&b, "<li>%s %s</li>\n", html.EscapeString(perf.Date), html.EscapeString(perf.Time))
			}
			if len(perfs) > maxSoldOutPerShow {
				fmt.Fprintf(&b, "<li><em>... and %d more</em></li>\n", len(perfs)-maxSoldOutPerShow)
			}
			fmt.Fprintln(&b, "</ul></div>")
		}
	}

	if len(diff.CancelledPerformances) > 0 {
		writeFlatHtmlSection(&b, "cancelled", "Cancelled", diff.CancelledPerformances)
	}

	if len(diff.BackAvailable) > 0 {
		writeFlatHtmlSection(&b, "back", "Back Available", diff.BackAvailable)
	}

	if len(diff.NewPerformances) > 0 {
		fmt.Fprintf(&b, "<h2>New Performances (%d)</h2>\n", len(diff.NewPerformances))

		names, byShow := groupByShow(diff.NewPerformances)
		for i, name := range names {
			if i == maxShowGroups {
				break
			}
			perfs := byShow[name]
			fmt.Fprintln(&b, `<div class="show">`)
			fmt.Fprintf(&b, "<div class=\"show-title\"><a href=%q>%s</a></div>\n",
				perfs[0].ShowUrl, html.EscapeString(name))
			fmt.Fprintln(&b, `<ul class="performance-list">`)
			for j, perf := range perfs {
				if j == maxNewPerfsPerShow {
					break
				}
				fmt.Fprintf(&b, "<li>%s %s @ %s</li>\n",
					html.EscapeString(perf.Date), html.EscapeString(perf.Time), html.EscapeString(perf.Venue))
			}
			if len(perfs) > maxNewPerfsPerShow {
				fmt.Fprintf(&b, "<li><em>... and %d more</em></li>\n", len(perfs)-maxNewPerfsPerShow)
			}
			fmt.Fprintln(&b, "</ul></div>")
		}
		if len(names) > maxShowGroups {
			fmt.Fprintf(&b, "<p><em>... and %d more shows</em></p>\n", len(names)-maxShowGroups)
		}
	}

	fmt.Fprintln(&b, "</body></html>")
	return b.String()
}

func writeHtmlSummary(b *strings.Builder, diff *SnapshotDiff) {
	fmt.Fprintln(b, `<div class="summary">`)
	fmt.Fprintln(b, "<strong>Summary:</strong><br>")
	if len(diff.NewShows) > 0 {
		fmt.Fprintf(b, "<span class=\"new\">%d new shows</span><br>\n", len(diff.NewShows))
	}
	if len(diff.SoldOutPerformances) > 0 {
		fmt.Fprintf(b, "<span class=\"sold-out\">%d performances sold out</span><br>\n", len(diff.SoldOutPerformances))
	}
	if len(diff.CancelledPerformances) > 0 {
		fmt.Fprintf(b, "<span class=\"cancelled\">%d performances cancelled</span><br>\n", len(diff.CancelledPerformances))
	}
	if len(diff.BackAvailable) > 0 {
		fmt.Fprintf(b, "<span class=\"back\">%d back available</span><br>\n", len(diff.BackAvailable))
	}
	if len(diff.NewPerformances) > 0 {
		fmt.Fprintf(b, "%d new performances added<br>\n", len(diff.NewPerformances))
	}
	fmt.Fprintln(b, "</div>")
}

func writeFlatHtmlSection(b *strings.Builder, class, title string, changes []*PerformanceChange) {
	fmt.Fprintf(b, "<h2 class=%q>%s (%d)</h2>\n", class, title, len(changes))
	for i, perf := range changes {
		if i == maxFlatEntries {
			break
		}
		fmt.Fprintf(b, "<div class=\"show\"><a href=%q>%s</a> - %s %s</div>\n",
			perf.ShowUrl, html.EscapeString(perf.ShowName), html.EscapeString(perf.Date), html.EscapeString(perf.Time))
	}
	if len(changes) > maxFlatEntries {
		fmt.Fprintf(b, "<p><em>... and %d more</em></p>\n", len(changes)-maxFlatEntries)
	}
}
