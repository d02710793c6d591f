package domain

// Priority ranks how much the user wants to visit a bucket list entry.
type Priority string

const (
	PriorityDream   Priority = "dream"
	PriorityNext    Priority = "next"
	PrioritySomeday Priority = "someday"
)

// Valid reports whether p is one of the known priorities.
func (p Priority) Valid() bool {
	switch p {
	case PriorityDream, PriorityNext, PrioritySomeday:
		return true
	}
	return false
}

// NormalizePriority maps unknown or empty priority strings to the default.
// The assistant occasionally invents values here; rather than rejecting the
// whole item over a cosmetic field, it falls back to "someday".
func NormalizePriority(s string) Priority {
	if p := Priority(s); p.Valid() {
		return p
	}
	return PrioritySomeday
}

// BucketListItem is a wishlist destination not yet converted into a trip.
// Items are created whole and removed whole; there is no update operation.
type BucketListItem struct {
	ID          string   `json:"id"`
	Destination string   `json:"destination"`
	Country     string   `json:"country"`
	Coords      LatLng   `json:"coords"`
	Notes       string   `json:"notes,omitempty"`
	AddedAt     string   `json:"addedAt"` // "2006-01-02"
	Priority    Priority `json:"priority"`
}
