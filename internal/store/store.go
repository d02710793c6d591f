// Package store is the single source of truth for application state: trips,
// the bucket list, bookings, the staged pending booking, and the map focus.
// All mutations go through Store methods and are applied atomically under one
// mutex, so user-driven and assistant-driven writes interleave safely without
// any further coordination ("single-threaded apply").
//
// Accessors hand out copies. Nothing a caller receives aliases the store's
// own collections.
package store

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/cememirsenyurt/tripilot/internal/domain"
)

// Tab identifies which panel list the UI currently shows.
type Tab string

const (
	TabTrips    Tab = "trips"
	TabBucket   Tab = "bucket"
	TabBookings Tab = "bookings"
)

// Valid reports whether t is one of the known tabs.
func (t Tab) Valid() bool {
	return t == TabTrips || t == TabBucket || t == TabBookings
}

// TripMarker is one itinerary pin projected for the map renderer.
type TripMarker struct {
	Coords domain.LatLng       `json:"coords"`
	Label  string              `json:"label"`
	Type   domain.ActivityType `json:"type"`
}

// Snapshot is a point-in-time, read-only view of the full application state.
type Snapshot struct {
	Trips          []domain.Trip           `json:"trips"`
	BucketList     []domain.BucketListItem `json:"bucketList"`
	Bookings       []domain.Booking        `json:"bookings"`
	Destinations   []domain.Destination    `json:"destinations"`
	SelectedTrip   *domain.Trip            `json:"selectedTrip,omitempty"`
	PendingBooking *domain.PendingBooking  `json:"pendingBooking,omitempty"`
	FlyTo          *domain.LatLng          `json:"flyTo,omitempty"`
	ActiveTab      Tab                     `json:"activeTab"`
}

// Store holds all mutable application state. The zero value is not usable;
// construct with New.
type Store struct {
	mu sync.Mutex

	trips      []domain.Trip
	bucketList []domain.BucketListItem
	bookings   []domain.Booking

	pendingBooking *domain.PendingBooking
	selectedTripID string
	flyTo          *domain.LatLng
	activeTab      Tab

	destinations []domain.Destination

	// counter backs the monotonic id source. Seeded from wall-clock millis
	// so ids stay unique across restarts even though state does not persist.
	counter int64
}

// New constructs an empty Store over the given reference destinations.
func New(destinations []domain.Destination) *Store {
	return &Store{
		destinations: destinations,
		activeTab:    TabTrips,
		counter:      time.Now().UnixMilli(),
	}
}

// Seed loads initial trips and bucket list items without side effects on
// selection, map focus, or the active tab. Intended for startup only.
func (s *Store) Seed(trips []domain.Trip, items []domain.BucketListItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.trips = append(s.trips, trips...)
	s.bucketList = append(s.bucketList, items...)
}

// nextID returns the next value from the monotonic id source.
// Callers must hold s.mu.
func (s *Store) nextID() string {
	s.counter++
	return fmt.Sprintf("t-%d", s.counter)
}

// AddTrip prepends the trip (most-recent-first order), selects it, flies the
// map to its coordinates, and switches the panel to the trips tab. An id is
// assigned from the store's id source when the trip arrives without one.
func (s *Store) AddTrip(trip domain.Trip) domain.Trip {
	s.mu.Lock()
	defer s.mu.Unlock()

	if trip.ID == "" {
		trip.ID = s.nextID()
	}
	if trip.Status == "" {
		trip.Status = domain.TripPlanned
	}

	s.trips = append([]domain.Trip{trip}, s.trips...)
	s.selectedTripID = trip.ID
	coords := trip.Coords
	s.flyTo = &coords
	s.activeTab = TabTrips
	return copyTrip(trip)
}

// SelectTrip marks the trip as selected and flies the map to it.
// The active tab is left unchanged.
func (s *Store) SelectTrip(id string) (domain.Trip, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, t := range s.trips {
		if t.ID == id {
			s.selectedTripID = t.ID
			coords := t.Coords
			s.flyTo = &coords
			return copyTrip(t), nil
		}
	}
	return domain.Trip{}, fmt.Errorf("select trip %s: %w", id, domain.ErrNotFound)
}

// ClearSelection drops the selected trip, if any. The map focus is left
// where it was.
func (s *Store) ClearSelection() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selectedTripID = ""
}

// SelectedTrip returns the currently selected trip, if one is selected and
// still present.
func (s *Store) SelectedTrip() (domain.Trip, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selectedTripLocked()
}

func (s *Store) selectedTripLocked() (domain.Trip, bool) {
	if s.selectedTripID == "" {
		return domain.Trip{}, false
	}
	for _, t := range s.trips {
		if t.ID == s.selectedTripID {
			return copyTrip(t), true
		}
	}
	return domain.Trip{}, false
}

// AddBucketItem prepends the item, flies the map to it, and switches the
// panel to the bucket tab. Missing fields get defaults: an id from the id
// source, today's date for AddedAt, and "someday" for an unknown priority.
func (s *Store) AddBucketItem(item domain.BucketListItem) domain.BucketListItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	if item.ID == "" {
		item.ID = s.nextID()
	}
	if item.AddedAt == "" {
		item.AddedAt = time.Now().Format("2006-01-02")
	}
	item.Priority = domain.NormalizePriority(string(item.Priority))

	s.bucketList = append([]domain.BucketListItem{item}, s.bucketList...)
	coords := item.Coords
	s.flyTo = &coords
	s.activeTab = TabBucket
	return item
}

// RemoveBucketItem removes the item with the given id. Removing an absent id
// is a no-op, which makes the operation idempotent; it never errors.
func (s *Store) RemoveBucketItem(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bucketList = lo.Filter(s.bucketList, func(b domain.BucketListItem, _ int) bool {
		return b.ID != id
	})
}

// RequestBooking stages pb for user confirmation, replacing any booking
// already staged. Only one booking may be awaiting confirmation at a time;
// a second request silently wins.
func (s *Store) RequestBooking(pb domain.PendingBooking) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pendingBooking = &pb
}

// PendingBooking returns the staged booking, if any.
func (s *Store) PendingBooking() (domain.PendingBooking, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pendingBooking == nil {
		return domain.PendingBooking{}, false
	}
	return *s.pendingBooking, true
}

// ConfirmPendingBooking converts the staged booking into a confirmed Booking,
// prepends it to the bookings list, clears the slot, and switches the panel
// to the bookings tab. Without a staged booking it is a no-op and reports false.
func (s *Store) ConfirmPendingBooking() (domain.Booking, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pendingBooking == nil {
		return domain.Booking{}, false
	}

	booking := domain.Booking{
		ID:       uuid.NewString(),
		Type:     s.pendingBooking.Type,
		ItemName: s.pendingBooking.ItemName,
		Price:    s.pendingBooking.Price,
		Status:   domain.BookingConfirmed,
		Details:  s.pendingBooking.Details,
	}
	s.bookings = append([]domain.Booking{booking}, s.bookings...)
	s.pendingBooking = nil
	s.activeTab = TabBookings
	return booking, true
}

// ConfirmBookings commits the given staged items as confirmed bookings,
// clears the pending slot, and switches the panel to the bookings tab.
// Used by the checkout flow, which captures its items when it opens and must
// commit exactly those even if the pending slot was replaced in the meantime.
func (s *Store) ConfirmBookings(items []domain.PendingBooking) []domain.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()

	committed := make([]domain.Booking, 0, len(items))
	for _, item := range items {
		booking := domain.Booking{
			ID:       uuid.NewString(),
			Type:     item.Type,
			ItemName: item.ItemName,
			Price:    item.Price,
			Status:   domain.BookingConfirmed,
			Details:  item.Details,
		}
		s.bookings = append([]domain.Booking{booking}, s.bookings...)
		committed = append(committed, booking)
	}
	s.pendingBooking = nil
	s.activeTab = TabBookings
	return committed
}

// CancelPendingBooking clears the staged booking unconditionally.
func (s *Store) CancelPendingBooking() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pendingBooking = nil
}

// SetActiveTab switches the panel tab.
func (s *Store) SetActiveTab(tab Tab) error {
	if !tab.Valid() {
		return fmt.Errorf("%w: unknown tab %q", domain.ErrValidation, tab)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.activeTab = tab
	return nil
}

// SetFlyTo points the map camera at coords, e.g. when the user clicks a
// destination pin.
func (s *Store) SetFlyTo(coords domain.LatLng) error {
	if !coords.Valid() {
		return fmt.Errorf("%w: coordinates out of range", domain.ErrValidation)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.flyTo = &coords
	return nil
}

// Trips returns the trips, most recent first.
func (s *Store) Trips() []domain.Trip {
	s.mu.Lock()
	defer s.mu.Unlock()
	return lo.Map(s.trips, func(t domain.Trip, _ int) domain.Trip { return copyTrip(t) })
}

// BucketList returns the bucket list, most recent first.
func (s *Store) BucketList() []domain.BucketListItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.BucketListItem, len(s.bucketList))
	copy(out, s.bucketList)
	return out
}

// Bookings returns the bookings, most recent first.
func (s *Store) Bookings() []domain.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Booking, len(s.bookings))
	copy(out, s.bookings)
	return out
}

// Destinations returns the static reference destinations.
func (s *Store) Destinations() []domain.Destination {
	out := make([]domain.Destination, len(s.destinations))
	copy(out, s.destinations)
	return out
}

// State returns a consistent snapshot of the whole application state.
func (s *Store) State() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		Trips:        lo.Map(s.trips, func(t domain.Trip, _ int) domain.Trip { return copyTrip(t) }),
		BucketList:   append([]domain.BucketListItem(nil), s.bucketList...),
		Bookings:     append([]domain.Booking(nil), s.bookings...),
		Destinations: append([]domain.Destination(nil), s.destinations...),
		ActiveTab:    s.activeTab,
	}
	if t, ok := s.selectedTripLocked(); ok {
		snap.SelectedTrip = &t
	}
	if s.pendingBooking != nil {
		pb := *s.pendingBooking
		snap.PendingBooking = &pb
	}
	if s.flyTo != nil {
		f := *s.flyTo
		snap.FlyTo = &f
	}
	return snap
}

// TripMarkers flattens every activity of the selected trip into map pins
// labeled "Day {n}: {activity}". It is a pure projection recomputed on each
// call; with no trip selected it returns an empty slice.
func (s *Store) TripMarkers() []TripMarker {
	s.mu.Lock()
	defer s.mu.Unlock()

	selected, ok := s.selectedTripLocked()
	if !ok {
		return []TripMarker{}
	}
	return lo.FlatMap(selected.Days, func(day domain.ItineraryDay, _ int) []TripMarker {
		return lo.Map(day.Activities, func(a domain.Activity, _ int) TripMarker {
			return TripMarker{
				Coords: a.Coords,
				Label:  fmt.Sprintf("Day %d: %s", day.Day, a.Activity),
				Type:   a.Type,
			}
		})
	})
}

// copyTrip deep-copies a trip so callers can never alias the store's slices.
func copyTrip(t domain.Trip) domain.Trip {
	days := make([]domain.ItineraryDay, len(t.Days))
	for i, d := range t.Days {
		acts := make([]domain.Activity, len(d.Activities))
		copy(acts, d.Activities)
		d.Activities = acts
		days[i] = d
	}
	t.Days = days
	return t
}
