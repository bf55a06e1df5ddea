package web

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/SharmiliRS/money-manager-frontend/internal/api"
	"github.com/SharmiliRS/money-manager-frontend/internal/core"
	"github.com/SharmiliRS/money-manager-frontend/internal/session"
)

// User-facing messages for the error taxonomy. The window message
// mirrors what the UI shows on a rejected late edit or delete.
const (
	msgWindowExpired  = "Cannot change transaction after 12 hours of creation."
	msgUnreachable    = "Server unreachable. Please try again later."
	msgNotLoggedIn    = "Not logged in."
	msgGenericFailure = "Request failed. Please try again."
)

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// writeUpstreamError maps client errors onto gateway responses:
// window-expired mutations get their own 403 message, transport
// failures a 502, validation problems a 400, and other backend errors
// keep their status with the server-provided message when present.
func (s *Server) writeUpstreamError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, api.ErrMutationWindowExpired):
		writeError(w, http.StatusForbidden, msgWindowExpired)
	case errors.Is(err, api.ErrUnreachable):
		s.metrics.upstreamErrors.Inc()
		writeError(w, http.StatusBadGateway, msgUnreachable)
	case errors.Is(err, session.ErrNoSession):
		writeError(w, http.StatusUnauthorized, msgNotLoggedIn)
	case isValidationError(err):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		var apiErr *api.Error
		if errors.As(err, &apiErr) {
			s.metrics.upstreamErrors.Inc()
			msg := apiErr.Message
			if msg == "" {
				msg = msgGenericFailure
			}
			writeError(w, apiErr.StatusCode, msg)
			return
		}
		writeError(w, http.StatusInternalServerError, msgGenericFailure)
	}
}

func isValidationError(err error) bool {
	for _, sentinel := range []error{
		core.ErrInvalidType, core.ErrInvalidAmount, core.ErrInvalidDate,
		core.ErrEmptySource, core.ErrEmptyCategory, core.ErrEmptyDivision,
		core.ErrEmptyAccount, core.ErrEmptyPaymentMethod,
	} {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}
