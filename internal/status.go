package internal

import "strings"

// Status is a ticket availability code as reported by edfringe.com.
type Status string

const (
	StatusCancelled            Status = "CANCELLED"
	StatusSoldOut              Status = "SOLD_OUT"
	StatusNoAllocation         Status = "NO_ALLOCATION"
	StatusNoAllocationRemained Status = "NO_ALLOCATION_REMAINING"
	StatusPreviewShow          Status = "PREVIEW_SHOW"
	StatusPreview              Status = "PREVIEW"
	StatusTwoForOne            Status = "TWO_FOR_ONE"
	StatusFreeTicketed         Status = "FREE_TICKETED"
	StatusFree                 Status = "FREE"
	StatusTicketsAvailable     Status = "TICKETS_AVAILABLE"
)

// statusPriority orders statuses by how informative they are when the site
// reports the same performance twice. A code not in the table ranks lowest.
var statusPriority = map[Status]int{
	StatusCancelled:            100,
	StatusSoldOut:              90,
	StatusNoAllocation:         85,
	StatusNoAllocationRemained: 85,
	StatusPreviewShow:          70,
	StatusPreview:              70,
	StatusTwoForOne:            60,
	StatusFreeTicketed:         50,
	StatusFree:                 50,
	StatusTicketsAvailable:     10,
}

// StatusFromString upper-cases and trims a raw availability value.
func StatusFromString(raw string) Status {
	return Status(strings.ToUpper(strings.TrimSpace(raw)))
}

// Priority returns the dedup rank of the status; unknown codes and the
// empty string rank at zero.
func (s Status) Priority() int {
	return statusPriority[s]
}

// Unavailable reports whether the status means no tickets can be bought.
func (s Status) Unavailable() bool {
	switch s {
	case StatusCancelled, StatusSoldOut, StatusNoAllocation, StatusNoAllocationRemained:
		return true
	}
	return false
}

// SoldOutLike reports whether the status counts as sold out for change
// reporting (sold out proper or an allocation that ran dry).
func (s Status) SoldOutLike() bool {
	switch s {
	case StatusSoldOut, StatusNoAllocation, StatusNoAllocationRemained:
		return true
	}
	return false
}
