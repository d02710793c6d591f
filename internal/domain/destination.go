package domain

// Destination is a static reference entry: a well-known place shown as a pin
// on the world map and offered to the assistant for suggestions. Destinations
// are loaded once as seed data and never mutated.
type Destination struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Country     string  `json:"country"`
	Coords      LatLng  `json:"coords"`
	Rating      float64 `json:"rating,omitempty"`
	Description string  `json:"description,omitempty"`
}
