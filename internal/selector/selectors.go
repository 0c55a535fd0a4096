package selector

// Selector is a CSS selector for a fixed region of an edfringe.com page.
// The site is built with CSS modules, so class names carry generated
// suffixes and are matched by substring.
type Selector string

func (s Selector) String() string {
	return string(s)
}

const (
	EventCard          Selector = `div[class*="event-listing_eventListingItem"]`
	EventCardTitleLink Selector = `a[class*="event-card-search_eventTitle"]`
	EventCardPerformer Selector = `div[class*="event-card-search_eventPresenter"]`
	EventCardDuration  Selector = `span[class*="event-card-search_eventDuration"]`
	EventCardDateBlock Selector = `div[class*="event-card-search_eventDate"]`

	DatePickerButtons Selector = `div[class*="date-picker_container"] button`
	PerformanceTime   Selector = `[class*="performance-item_headerTime"] span`
	AvailabilityLabel Selector = `span[class*="label_label_"]`
	VenueTitle        Selector = `div[class*="performance-location_venueTitle"]`
	ShowNameHeading   Selector = `h1`
)
