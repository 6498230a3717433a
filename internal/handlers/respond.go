package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"robotshop-web/internal/gateway"
	"robotshop-web/internal/middleware"
	"robotshop-web/internal/services"
	"robotshop-web/internal/session"

	"github.com/rs/zerolog"
)

// statusClientClosedRequest is the nginx convention for a request the client
// abandoned.
const statusClientClosedRequest = 499

func respondWithError(w http.ResponseWriter, code int, errorCode, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{
		"error":   errorCode,
		"message": message,
	})
}

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(payload)
}

// respondWithServiceError maps a failed command to a visible status so the
// screen can show that the request failed instead of silently not updating.
func respondWithServiceError(w http.ResponseWriter, logger zerolog.Logger, err error) {
	var validationErr *services.ValidationError
	var networkErr *gateway.NetworkError
	var decodeErr *gateway.DecodeError

	switch {
	case errors.As(err, &validationErr):
		respondWithError(w, http.StatusUnprocessableEntity, "validation_failed", validationErr.Message)
	case errors.Is(err, session.ErrNotInitialized):
		respondWithError(w, http.StatusConflict, "session_not_initialized", "Session has not been started yet")
	case errors.Is(err, context.Canceled):
		// the browser went away; nobody reads this response
		logger.Debug().Err(err).Msg("Request cancelled by client")
		respondWithError(w, statusClientClosedRequest, "request_cancelled", "Request was cancelled")
	case errors.Is(err, context.DeadlineExceeded):
		logger.Warn().Err(err).Msg("Request timed out")
		respondWithError(w, http.StatusGatewayTimeout, "request_timeout", "Request timed out, please try again")
	case errors.As(err, &networkErr):
		logger.Error().Err(err).Int("upstream_status", networkErr.StatusCode).Msg("Backend request failed")
		respondWithError(w, http.StatusBadGateway, "request_failed", "Request failed, please try again")
	case errors.As(err, &decodeErr):
		logger.Error().Err(err).Msg("Backend response could not be decoded")
		respondWithError(w, http.StatusBadGateway, "request_failed", "Request failed, please try again")
	default:
		logger.Error().Err(err).Msg("Request failed")
		respondWithError(w, http.StatusInternalServerError, "internal_error", "An internal error occurred")
	}
}

func storeFromRequest(w http.ResponseWriter, r *http.Request) (*session.Store, bool) {
	store, ok := middleware.GetSessionStore(r)
	if !ok {
		respondWithError(w, http.StatusInternalServerError, "session_missing", "No session attached to request")
		return nil, false
	}
	return store, true
}
