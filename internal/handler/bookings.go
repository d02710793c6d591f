package handler

import (
	"net/http"

	"github.com/cememirsenyurt/tripilot/internal/domain"
)

// ConfirmBooking handles POST /api/v1/booking/confirm.
// This is the inline confirm path (the one-click approval in the assistant
// chat): it commits the staged booking immediately, without the checkout
// flow. Returns 409 when nothing is staged.
func (s *Server) ConfirmBooking(w http.ResponseWriter, r *http.Request) {
	booking, ok := s.store.ConfirmPendingBooking()
	if !ok {
		writeDomainError(w, domain.ErrNoPendingBooking)
		return
	}
	writeJSON(w, http.StatusOK, booking)
}

// CancelBooking handles POST /api/v1/booking/cancel.
// Clearing an empty slot is fine, so this always returns 204.
func (s *Server) CancelBooking(w http.ResponseWriter, r *http.Request) {
	s.store.CancelPendingBooking()
	w.WriteHeader(http.StatusNoContent)
}
