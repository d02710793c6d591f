package handler

import (
	"net/http"

	"github.com/cememirsenyurt/tripilot/internal/scene"
)

// GetState handles GET /api/v1/state.
// It returns the full panel snapshot: trips, bucket list, bookings, the
// reference destinations, and the current selection/focus fields. The
// assistant reads this before acting, the UI renders its panels from it.
func (s *Server) GetState(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.store.State())
}

// GetScene handles GET /api/v1/scene.
// It returns the declarative map description the renderer draws from.
func (s *Server) GetScene(w http.ResponseWriter, r *http.Request) {
	snap := s.store.State()
	writeJSON(w, http.StatusOK, scene.Build(snap, s.store.TripMarkers()))
}
