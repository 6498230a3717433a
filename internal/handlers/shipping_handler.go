package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"robotshop-web/internal/models"
	"robotshop-web/internal/services"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
)

type ShippingHandler struct {
	shippingService *services.ShippingService
	logger          zerolog.Logger
}

func NewShippingHandler(shippingService *services.ShippingService, logger zerolog.Logger) *ShippingHandler {
	return &ShippingHandler{
		shippingService: shippingService,
		logger:          logger,
	}
}

func (h *ShippingHandler) GetCodes(w http.ResponseWriter, r *http.Request) {
	codes, err := h.shippingService.Codes(r.Context())
	if err != nil {
		respondWithServiceError(w, h.logger, err)
		return
	}
	respondWithJSON(w, http.StatusOK, codes)
}

func (h *ShippingHandler) MatchCities(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	cities, err := h.shippingService.Cities(r.Context(), vars["code"], vars["term"])
	if err != nil {
		respondWithServiceError(w, h.logger, err)
		return
	}
	respondWithJSON(w, http.StatusOK, cities)
}

func (h *ShippingHandler) CalcShipping(w http.ResponseWriter, r *http.Request) {
	locationUUID, err := strconv.Atoi(mux.Vars(r)["uuid"])
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid_location", "Invalid location id")
		return
	}

	quote, err := h.shippingService.Quote(r.Context(), locationUUID)
	if err != nil {
		respondWithServiceError(w, h.logger, err)
		return
	}
	respondWithJSON(w, http.StatusOK, quote)
}

func (h *ShippingHandler) ConfirmShipping(w http.ResponseWriter, r *http.Request) {
	store, ok := storeFromRequest(w, r)
	if !ok {
		return
	}

	var selection models.ShippingSelection
	if err := json.NewDecoder(r.Body).Decode(&selection); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
		return
	}

	view, err := h.shippingService.Confirm(r.Context(), store, selection)
	if err != nil {
		respondWithServiceError(w, h.logger, err)
		return
	}
	respondWithJSON(w, http.StatusOK, view)
}
