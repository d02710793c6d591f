package domain

import (
	"fmt"
	"time"
)

// TripStatus tracks where a trip sits in its lifecycle.
type TripStatus string

const (
	TripPlanned   TripStatus = "planned"
	TripBooked    TripStatus = "booked"
	TripCompleted TripStatus = "completed"
)

// Valid reports whether s is one of the known trip statuses.
func (s TripStatus) Valid() bool {
	switch s {
	case TripPlanned, TripBooked, TripCompleted:
		return true
	}
	return false
}

// ActivityType categorizes a single itinerary activity. The map renderer
// picks a marker glyph from this value.
type ActivityType string

const (
	ActivitySightseeing ActivityType = "sightseeing"
	ActivityFood        ActivityType = "food"
	ActivityTransport   ActivityType = "transport"
	ActivityHotel       ActivityType = "hotel"
	ActivityGeneric     ActivityType = "activity"
)

// Valid reports whether t is one of the known activity types.
func (t ActivityType) Valid() bool {
	switch t {
	case ActivitySightseeing, ActivityFood, ActivityTransport, ActivityHotel, ActivityGeneric:
		return true
	}
	return false
}

// Activity is a single scheduled item within an itinerary day.
type Activity struct {
	Time     string       `json:"time"` // "HH:MM"
	Activity string       `json:"activity"`
	Location string       `json:"location"`
	Coords   LatLng       `json:"coords"`
	Type     ActivityType `json:"type"`
}

// ItineraryDay is one day of a trip. Day numbers are 1-based and must form
// a contiguous sequence within the owning trip.
type ItineraryDay struct {
	Day        int        `json:"day"`
	Date       string     `json:"date"` // "2006-01-02"
	Title      string     `json:"title"`
	Activities []Activity `json:"activities"`
}

// Trip is a planned, multi-day itinerary tied to one destination.
// The trip is the top-level aggregate: days own activities, and both are
// reached only through their trip.
type Trip struct {
	ID          string         `json:"id"`
	Destination string         `json:"destination"`
	Country     string         `json:"country"`
	Coords      LatLng         `json:"coords"`
	StartDate   string         `json:"startDate"` // "2006-01-02"
	EndDate     string         `json:"endDate"`   // "2006-01-02"
	Days        []ItineraryDay `json:"days"`
	TotalBudget float64        `json:"totalBudget"`
	Status      TripStatus     `json:"status"`
}

const dateLayout = "2006-01-02"

// ParseDate parses an ISO "YYYY-MM-DD" date string.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, s)
}

// Validate checks the trip's structural invariants: non-empty destination,
// startDate <= endDate, a non-negative budget, contiguous 1-based day
// numbers, and valid activity coordinates. Validation is advisory; it exists to reject malformed
// assistant input before it reaches the store.
func (t Trip) Validate() error {
	if t.Destination == "" {
		return fmt.Errorf("%w: destination is required", ErrValidation)
	}
	start, err := ParseDate(t.StartDate)
	if err != nil {
		return fmt.Errorf("%w: invalid startDate %q", ErrValidation, t.StartDate)
	}
	end, err := ParseDate(t.EndDate)
	if err != nil {
		return fmt.Errorf("%w: invalid endDate %q", ErrValidation, t.EndDate)
	}
	if end.Before(start) {
		return fmt.Errorf("%w: endDate before startDate", ErrValidation)
	}
	if !t.Coords.Valid() {
		return fmt.Errorf("%w: coordinates out of range", ErrValidation)
	}
	if t.TotalBudget < 0 {
		return fmt.Errorf("%w: totalBudget must not be negative", ErrValidation)
	}
	for i, d := range t.Days {
		if d.Day != i+1 {
			return fmt.Errorf("%w: day numbers must be contiguous starting at 1, got %d at position %d", ErrValidation, d.Day, i)
		}
		for _, a := range d.Activities {
			if !a.Coords.Valid() {
				return fmt.Errorf("%w: day %d activity %q has coordinates out of range", ErrValidation, d.Day, a.Activity)
			}
		}
	}
	return nil
}
