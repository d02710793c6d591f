// Package handler implements the HTTP surface of the Tripilot API.
// All handlers are methods on Server, split into concern-specific files
// (state.go, actions.go, checkout.go, ...) but sharing one struct so they
// can reach the same dependencies. Routes assembles them into a chi router;
// main.go wires the middleware stack around it.
package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/cememirsenyurt/tripilot/internal/checkout"
	"github.com/cememirsenyurt/tripilot/internal/gateway"
	"github.com/cememirsenyurt/tripilot/internal/mocksearch"
	"github.com/cememirsenyurt/tripilot/internal/store"
)

// Server holds the handler dependencies. Everything behind it is in-memory,
// so handlers take the concrete types directly; there is no storage boundary
// to mock away.
type Server struct {
	store    *store.Store
	gateway  *gateway.Gateway
	checkout *checkout.Manager
	search   *mocksearch.Cache
}

// NewServer constructs the Server with all its dependencies.
func NewServer(st *store.Store, gw *gateway.Gateway, co *checkout.Manager, search *mocksearch.Cache) *Server {
	return &Server{store: st, gateway: gw, checkout: co, search: search}
}

// Routes returns the full route tree.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Get("/healthz", s.GetHealth)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/state", s.GetState)
		r.Get("/scene", s.GetScene)

		r.Get("/actions", s.GetActionSchema)
		r.Post("/actions/{name}", s.InvokeAction)

		r.Post("/trips/{id}/select", s.SelectTrip)
		r.Delete("/trips/select", s.ClearSelection)
		r.Put("/tab", s.SetActiveTab)
		r.Post("/flyto", s.FlyTo)

		r.Delete("/bucket/{id}", s.RemoveBucketItem)

		r.Post("/booking/confirm", s.ConfirmBooking)
		r.Post("/booking/cancel", s.CancelBooking)

		r.Get("/search/flights", s.SearchFlights)
		r.Get("/search/hotels", s.SearchHotels)

		r.Post("/checkout", s.OpenCheckout)
		r.Get("/checkout", s.GetCheckout)
		r.Post("/checkout/pay", s.PayCheckout)
		r.Post("/checkout/cancel", s.CancelCheckout)
		r.Post("/checkout/close", s.CloseCheckout)
	})

	return r
}

// GetHealth handles GET /healthz.
// It returns HTTP 200 with {"status":"ok"} when the server is running.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
