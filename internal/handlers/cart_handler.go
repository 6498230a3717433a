package handlers

import (
	"encoding/json"
	"net/http"

	"robotshop-web/internal/models"
	"robotshop-web/internal/services"

	"github.com/rs/zerolog"
)

type CartHandler struct {
	cartService *services.CartService
	logger      zerolog.Logger
}

func NewCartHandler(cartService *services.CartService, logger zerolog.Logger) *CartHandler {
	return &CartHandler{
		cartService: cartService,
		logger:      logger,
	}
}

func (h *CartHandler) AddToCart(w http.ResponseWriter, r *http.Request) {
	store, ok := storeFromRequest(w, r)
	if !ok {
		return
	}

	var req models.AddToCartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	view, err := h.cartService.Add(r.Context(), store, req.SKU, req.Quantity)
	if err != nil {
		respondWithServiceError(w, h.logger, err)
		return
	}
	respondWithJSON(w, http.StatusOK, view)
}

func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	store, ok := storeFromRequest(w, r)
	if !ok {
		return
	}

	view, err := h.cartService.View(store)
	if err != nil {
		respondWithServiceError(w, h.logger, err)
		return
	}
	respondWithJSON(w, http.StatusOK, view)
}

func (h *CartHandler) RefreshCart(w http.ResponseWriter, r *http.Request) {
	store, ok := storeFromRequest(w, r)
	if !ok {
		return
	}

	view, err := h.cartService.Refresh(r.Context(), store)
	if err != nil {
		respondWithServiceError(w, h.logger, err)
		return
	}
	respondWithJSON(w, http.StatusOK, view)
}
