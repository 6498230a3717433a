package services

import (
	"context"
	"fmt"
	"strings"

	"robotshop-web/internal/models"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

type CatalogueService struct {
	gateway Gateway
	logger  zerolog.Logger
}

func NewCatalogueService(gateway Gateway, logger zerolog.Logger) *CatalogueService {
	return &CatalogueService{
		gateway: gateway,
		logger:  logger,
	}
}

func (s *CatalogueService) Categories(ctx context.Context) ([]string, error) {
	categories, err := s.gateway.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}

func (s *CatalogueService) Products(ctx context.Context, category string) ([]models.Product, error) {
	if strings.TrimSpace(category) == "" {
		return nil, newValidationError("category is required")
	}

	products, err := s.gateway.ListProducts(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("list products in %q: %w", category, err)
	}
	return products, nil
}

func (s *CatalogueService) Search(ctx context.Context, text string) ([]models.Product, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return []models.Product{}, nil
	}

	results, err := s.gateway.Search(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("search %q: %w", text, err)
	}
	return results, nil
}

// ProductDetail fetches the product and its rating summary side by side. The
// rating is merged into the view without touching the product record; if
// ratings are unavailable the view keeps a zero rating.
func (s *CatalogueService) ProductDetail(ctx context.Context, sku string) (*models.ProductView, error) {
	if strings.TrimSpace(sku) == "" {
		return nil, newValidationError("sku is required")
	}

	var (
		product *models.Product
		rating  *models.Rating
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		p, err := s.gateway.GetProduct(gctx, sku)
		if err != nil {
			return fmt.Errorf("get product %s: %w", sku, err)
		}
		product = p
		return nil
	})
	g.Go(func() error {
		r, err := s.gateway.LoadRatings(gctx, sku)
		if err != nil {
			s.logger.Warn().Err(err).Str("sku", sku).Msg("Ratings unavailable")
			return nil
		}
		rating = r
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	view := &models.ProductView{Product: *product}
	if rating != nil {
		view.Rating = *rating
	}
	return view, nil
}

func (s *CatalogueService) Rate(ctx context.Context, sku string, vote int) (*models.RateResult, error) {
	if strings.TrimSpace(sku) == "" {
		return nil, newValidationError("sku is required")
	}
	if vote < 1 || vote > 5 {
		return nil, newValidationError("vote must be between 1 and 5")
	}

	if err := s.gateway.RateProduct(ctx, sku, vote); err != nil {
		return nil, fmt.Errorf("rate %s: %w", sku, err)
	}

	s.logger.Info().Str("sku", sku).Int("vote", vote).Msg("Product rated")
	return &models.RateResult{
		SKU:     sku,
		Vote:    vote,
		Message: "Thank you for your feedback",
	}, nil
}
