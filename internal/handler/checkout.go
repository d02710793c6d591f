package handler

import "net/http"

// OpenCheckout handles POST /api/v1/checkout. It starts a review flow over
// the staged booking.
func (s *Server) OpenCheckout(w http.ResponseWriter, r *http.Request) {
	state, err := s.checkout.Open()
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, state)
}

// GetCheckout handles GET /api/v1/checkout.
func (s *Server) GetCheckout(w http.ResponseWriter, r *http.Request) {
	state, err := s.checkout.Status()
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, state)
}

// PayCheckout handles POST /api/v1/checkout/pay. The response shows the flow
// in processing; clients poll GET /checkout for the confirmed state.
func (s *Server) PayCheckout(w http.ResponseWriter, r *http.Request) {
	state, err := s.checkout.Pay()
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, state)
}

// CancelCheckout handles POST /api/v1/checkout/cancel.
func (s *Server) CancelCheckout(w http.ResponseWriter, r *http.Request) {
	if err := s.checkout.Cancel(); err != nil {
		writeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// CloseCheckout handles POST /api/v1/checkout/close. Dismissing a confirmed
// flow is always safe, so this never fails.
func (s *Server) CloseCheckout(w http.ResponseWriter, r *http.Request) {
	s.checkout.Close()
	w.WriteHeader(http.StatusNoContent)
}
