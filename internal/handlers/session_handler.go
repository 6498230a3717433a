package handlers

import (
	"net/http"

	"robotshop-web/internal/middleware"
	"robotshop-web/internal/services"

	"github.com/rs/zerolog"
)

type SessionHandler struct {
	sessionService *services.SessionService
	logger         zerolog.Logger
}

func NewSessionHandler(sessionService *services.SessionService, logger zerolog.Logger) *SessionHandler {
	return &SessionHandler{
		sessionService: sessionService,
		logger:         logger,
	}
}

// Start is called by the app shell on load.
func (h *SessionHandler) Start(w http.ResponseWriter, r *http.Request) {
	store, ok := storeFromRequest(w, r)
	if !ok {
		return
	}

	snapshot, err := h.sessionService.Start(r.Context(), store)
	if err != nil {
		sessionID, _ := middleware.GetSessionID(r)
		h.logger.Warn().Err(err).Str("session_id", sessionID).Msg("Session start failed")
		respondWithServiceError(w, h.logger, err)
		return
	}

	respondWithJSON(w, http.StatusOK, snapshot)
}
