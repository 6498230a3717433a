package handlers

import (
	"net/http"
	"strconv"

	"robotshop-web/internal/services"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
)

type CatalogueHandler struct {
	catalogueService *services.CatalogueService
	logger           zerolog.Logger
}

func NewCatalogueHandler(catalogueService *services.CatalogueService, logger zerolog.Logger) *CatalogueHandler {
	return &CatalogueHandler{
		catalogueService: catalogueService,
		logger:           logger,
	}
}

func (h *CatalogueHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.catalogueService.Categories(r.Context())
	if err != nil {
		respondWithServiceError(w, h.logger, err)
		return
	}
	respondWithJSON(w, http.StatusOK, categories)
}

func (h *CatalogueHandler) GetProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.catalogueService.Products(r.Context(), mux.Vars(r)["category"])
	if err != nil {
		respondWithServiceError(w, h.logger, err)
		return
	}
	respondWithJSON(w, http.StatusOK, products)
}

func (h *CatalogueHandler) Search(w http.ResponseWriter, r *http.Request) {
	results, err := h.catalogueService.Search(r.Context(), mux.Vars(r)["text"])
	if err != nil {
		respondWithServiceError(w, h.logger, err)
		return
	}
	respondWithJSON(w, http.StatusOK, results)
}

func (h *CatalogueHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	view, err := h.catalogueService.ProductDetail(r.Context(), mux.Vars(r)["sku"])
	if err != nil {
		respondWithServiceError(w, h.logger, err)
		return
	}
	respondWithJSON(w, http.StatusOK, view)
}

func (h *CatalogueHandler) RateProduct(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	vote, err := strconv.Atoi(vars["vote"])
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid_vote", "Invalid vote")
		return
	}

	result, err := h.catalogueService.Rate(r.Context(), vars["sku"], vote)
	if err != nil {
		respondWithServiceError(w, h.logger, err)
		return
	}
	respondWithJSON(w, http.StatusOK, result)
}
