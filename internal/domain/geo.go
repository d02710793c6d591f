// Package domain contains the core data types for the Tripilot application.
// This package has zero external dependencies and is imported by every other
// internal package (store, gateway, scene, handler).
//
// Field names in the JSON tags are part of the assistant contract: the AI
// collaborator is prompted against these exact names, so they must not drift.
package domain

// LatLng is a geographic point in WGS 84 coordinates.
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Valid reports whether the point lies within the valid coordinate ranges:
// lat in [-90, 90] and lng in [-180, 180].
func (p LatLng) Valid() bool {
	return p.Lat >= -90 && p.Lat <= 90 && p.Lng >= -180 && p.Lng <= 180
}
