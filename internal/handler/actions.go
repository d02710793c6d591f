package handler

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/cememirsenyurt/tripilot/internal/gateway"
)

// GetActionSchema handles GET /api/v1/actions.
// It returns the action manifest the assistant is prompted against.
func (s *Server) GetActionSchema(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"actions": gateway.Schema()})
}

// InvokeAction handles POST /api/v1/actions/{name}.
// The body is the action's JSON argument object, passed to the gateway
// verbatim. Every failure comes back as a structured, non-blocking error
// body; no action failure is fatal and a failed action has no store effect.
func (s *Server) InvokeAction(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "failed to read request body")
		return
	}

	result, err := s.gateway.Invoke(r.Context(), name, json.RawMessage(body))
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"result": result})
}
