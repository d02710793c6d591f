// Package scene projects application state into a declarative description of
// the world map: markers, route polylines, and a camera focus. The renderer
// behind it is a replaceable external capability that only needs to place
// glyph markers with tooltips, draw dashed polylines, and animate its camera.
// Build is a pure function of the store snapshot; it holds no state itself.
package scene

import (
	"fmt"

	"github.com/samber/lo"

	"github.com/cememirsenyurt/tripilot/internal/domain"
	"github.com/cememirsenyurt/tripilot/internal/store"
)

// Camera animation defaults used on every fly-to.
const (
	flyToZoom     = 12
	flyToDuration = 1.5 // seconds
	routeColor    = "#6366F1"
)

// DestinationPin is a reference destination marker.
type DestinationPin struct {
	Coords  domain.LatLng `json:"coords"`
	Name    string        `json:"name"`
	Country string        `json:"country"`
	Rating  float64       `json:"rating,omitempty"`
	Glyph   string        `json:"glyph"`
	Tooltip string        `json:"tooltip"`
}

// BucketPin marks a bucket list destination.
type BucketPin struct {
	Coords      domain.LatLng   `json:"coords"`
	Destination string          `json:"destination"`
	Priority    domain.Priority `json:"priority"`
	Glyph       string          `json:"glyph"`
	Tooltip     string          `json:"tooltip"`
}

// ItineraryPin marks one activity of the selected trip.
type ItineraryPin struct {
	Coords  domain.LatLng       `json:"coords"`
	Label   string              `json:"label"`
	Type    domain.ActivityType `json:"type"`
	Glyph   string              `json:"glyph"`
	Tooltip string              `json:"tooltip"`
}

// Polyline is an ordered coordinate sequence drawn as a route line.
type Polyline struct {
	Points []domain.LatLng `json:"points"`
	Color  string          `json:"color"`
	Dashed bool            `json:"dashed"`
}

// Camera is the fly-to focus target with its animation parameters.
type Camera struct {
	Center   domain.LatLng `json:"center"`
	Zoom     float64       `json:"zoom"`
	Duration float64       `json:"duration"` // seconds
}

// Scene is the complete declarative map description.
type Scene struct {
	DestinationPins []DestinationPin `json:"destinationPins"`
	BucketPins      []BucketPin      `json:"bucketPins"`
	ItineraryPins   []ItineraryPin   `json:"itineraryPins"`
	Routes          []Polyline       `json:"routes"`
	Camera          *Camera          `json:"camera,omitempty"`
}

// Build projects a store snapshot and the selected trip's markers into a
// Scene. Itinerary pins and the route line appear only for the selected
// trip; a route needs at least two points to be drawn.
func Build(snap store.Snapshot, markers []store.TripMarker) Scene {
	s := Scene{
		DestinationPins: lo.Map(snap.Destinations, func(d domain.Destination, _ int) DestinationPin {
			return DestinationPin{
				Coords:  d.Coords,
				Name:    d.Name,
				Country: d.Country,
				Rating:  d.Rating,
				Glyph:   "📍",
				Tooltip: fmt.Sprintf("%s, %s (%.1f)", d.Name, d.Country, d.Rating),
			}
		}),
		BucketPins: lo.Map(snap.BucketList, func(b domain.BucketListItem, _ int) BucketPin {
			return BucketPin{
				Coords:      b.Coords,
				Destination: b.Destination,
				Priority:    b.Priority,
				Glyph:       "⭐",
				Tooltip:     fmt.Sprintf("%s (bucket list: %s)", b.Destination, b.Priority),
			}
		}),
		ItineraryPins: lo.Map(markers, func(m store.TripMarker, _ int) ItineraryPin {
			return ItineraryPin{
				Coords:  m.Coords,
				Label:   m.Label,
				Type:    m.Type,
				Glyph:   activityGlyph(m.Type),
				Tooltip: m.Label,
			}
		}),
		Routes: []Polyline{},
	}

	if snap.SelectedTrip != nil {
		points := lo.FlatMap(snap.SelectedTrip.Days, func(d domain.ItineraryDay, _ int) []domain.LatLng {
			return lo.Map(d.Activities, func(a domain.Activity, _ int) domain.LatLng { return a.Coords })
		})
		if len(points) > 1 {
			s.Routes = append(s.Routes, Polyline{Points: points, Color: routeColor, Dashed: true})
		}
	}

	if snap.FlyTo != nil {
		s.Camera = &Camera{Center: *snap.FlyTo, Zoom: flyToZoom, Duration: flyToDuration}
	}
	return s
}

// activityGlyph picks the marker glyph for an activity type.
// Unknown types fall back to the sightseeing camera.
func activityGlyph(t domain.ActivityType) string {
	switch t {
	case domain.ActivityFood:
		return "🍜"
	case domain.ActivityHotel:
		return "🏨"
	case domain.ActivityTransport:
		return "✈️"
	case domain.ActivityGeneric:
		return "🎯"
	default:
		return "📸"
	}
}
