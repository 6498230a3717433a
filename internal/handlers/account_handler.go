package handlers

import (
	"encoding/json"
	"net/http"

	"robotshop-web/internal/models"
	"robotshop-web/internal/services"

	"github.com/rs/zerolog"
)

type AccountHandler struct {
	accountService *services.AccountService
	logger         zerolog.Logger
}

func NewAccountHandler(accountService *services.AccountService, logger zerolog.Logger) *AccountHandler {
	return &AccountHandler{
		accountService: accountService,
		logger:         logger,
	}
}

func (h *AccountHandler) Register(w http.ResponseWriter, r *http.Request) {
	store, ok := storeFromRequest(w, r)
	if !ok {
		return
	}

	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
		return
	}

	view, err := h.accountService.Register(r.Context(), store, req)
	if err != nil {
		respondWithServiceError(w, h.logger, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, view)
}

func (h *AccountHandler) Login(w http.ResponseWriter, r *http.Request) {
	store, ok := storeFromRequest(w, r)
	if !ok {
		return
	}

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
		return
	}

	resp, err := h.accountService.Login(r.Context(), store, req)
	if err != nil {
		respondWithServiceError(w, h.logger, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"loggedIn": true,
		"user":     resp,
	})
}

func (h *AccountHandler) Logout(w http.ResponseWriter, r *http.Request) {
	store, ok := storeFromRequest(w, r)
	if !ok {
		return
	}

	h.accountService.Logout(store)
	respondWithJSON(w, http.StatusOK, map[string]bool{"loggedIn": false})
}

func (h *AccountHandler) GetAccount(w http.ResponseWriter, r *http.Request) {
	store, ok := storeFromRequest(w, r)
	if !ok {
		return
	}

	view, err := h.accountService.Account(r.Context(), store)
	if err != nil {
		respondWithServiceError(w, h.logger, err)
		return
	}
	respondWithJSON(w, http.StatusOK, view)
}
