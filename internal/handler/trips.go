package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/cememirsenyurt/tripilot/internal/domain"
	"github.com/cememirsenyurt/tripilot/internal/store"
)

// SelectTrip handles POST /api/v1/trips/{id}/select.
// Selecting a trip also flies the map to its destination; the active tab is
// left alone so the user can select from any panel.
func (s *Server) SelectTrip(w http.ResponseWriter, r *http.Request) {
	trip, err := s.store.SelectTrip(chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, trip)
}

// ClearSelection handles DELETE /api/v1/trips/select.
func (s *Server) ClearSelection(w http.ResponseWriter, r *http.Request) {
	s.store.ClearSelection()
	w.WriteHeader(http.StatusNoContent)
}

// SetActiveTab handles PUT /api/v1/tab.
func (s *Server) SetActiveTab(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Tab store.Tab `json:"tab"`
	}
	if err := decodeBody(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}
	if err := s.store.SetActiveTab(body.Tab); err != nil {
		writeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// FlyTo handles POST /api/v1/flyto.
// The UI calls this when the user clicks a destination pin.
func (s *Server) FlyTo(w http.ResponseWriter, r *http.Request) {
	var coords domain.LatLng
	if err := decodeBody(r, &coords); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}
	if err := s.store.SetFlyTo(coords); err != nil {
		writeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// RemoveBucketItem handles DELETE /api/v1/bucket/{id}.
// Removal is idempotent: deleting an id that is already gone still
// returns 204.
func (s *Server) RemoveBucketItem(w http.ResponseWriter, r *http.Request) {
	s.store.RemoveBucketItem(chi.URLParam(r, "id"))
	w.WriteHeader(http.StatusNoContent)
}
