package domain

// BookingType distinguishes what kind of travel product was booked.
type BookingType string

const (
	BookingFlight BookingType = "flight"
	BookingHotel  BookingType = "hotel"
)

// Valid reports whether t is one of the known booking types.
func (t BookingType) Valid() bool {
	return t == BookingFlight || t == BookingHotel
}

// BookingStatus is the lifecycle state of a booking record.
type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
)

// PendingBooking is a booking staged by the assistant but not yet committed.
// It is the human-in-the-loop gate: the assistant may stage a booking, but
// only an explicit user confirmation turns it into a Booking. At most one
// pending booking exists at a time; a new request replaces the old one.
type PendingBooking struct {
	Type     BookingType `json:"type"`
	ItemName string      `json:"itemName"`
	Price    float64     `json:"price"`
	Details  string      `json:"details"`
}

// Booking is a confirmed purchase record for a flight or hotel.
// Bookings are immutable once created.
type Booking struct {
	ID       string        `json:"id"`
	Type     BookingType   `json:"type"`
	ItemName string        `json:"itemName"`
	Price    float64       `json:"price"`
	Status   BookingStatus `json:"status"`
	Details  string        `json:"details"`
}
