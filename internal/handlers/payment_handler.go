package handlers

import (
	"net/http"

	"robotshop-web/internal/services"

	"github.com/rs/zerolog"
)

type PaymentHandler struct {
	paymentService *services.PaymentService
	logger         zerolog.Logger
}

func NewPaymentHandler(paymentService *services.PaymentService, logger zerolog.Logger) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
		logger:         logger,
	}
}

func (h *PaymentHandler) Pay(w http.ResponseWriter, r *http.Request) {
	store, ok := storeFromRequest(w, r)
	if !ok {
		return
	}

	result, err := h.paymentService.Pay(r.Context(), store)
	if err != nil {
		respondWithServiceError(w, h.logger, err)
		return
	}
	respondWithJSON(w, http.StatusOK, result)
}
