package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/cememirsenyurt/tripilot/internal/domain"
)

// ErrorDetail carries a stable machine-readable code plus a human message.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse is the uniform error body for every non-2xx response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// writeJSON encodes v as the response body with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError writes a uniform error body.
func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, ErrorResponse{Error: ErrorDetail{Code: code, Message: message}})
}

// writeDomainError maps a domain sentinel error onto its HTTP status and
// error code. Unknown errors become a 500 with no internal detail leaked.
func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found", unwrapMessage(err))
	case errors.Is(err, domain.ErrParse):
		writeError(w, http.StatusUnprocessableEntity, "parse_error", unwrapMessage(err))
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusUnprocessableEntity, "validation_error", unwrapMessage(err))
	case errors.Is(err, domain.ErrNoPendingBooking):
		writeError(w, http.StatusConflict, "no_pending_booking", unwrapMessage(err))
	case errors.Is(err, domain.ErrCheckoutState):
		writeError(w, http.StatusConflict, "invalid_checkout_state", unwrapMessage(err))
	default:
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
	}
}

// decodeBody decodes the request body into dst, rejecting empty bodies.
func decodeBody(r *http.Request, dst any) error {
	if r.Body == nil {
		return errors.New("request body is required")
	}
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return err
	}
	return nil
}

// unwrapMessage strips the sentinel prefix from a wrapped domain error,
// e.g. "validation error: endDate before startDate" becomes
// "endDate before startDate" while bare sentinels pass through unchanged.
func unwrapMessage(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	for _, prefix := range []string{
		"parse error: ",
		"validation error: ",
	} {
		if rest, ok := strings.CutPrefix(msg, prefix); ok {
			return rest
		}
	}
	return msg
}
