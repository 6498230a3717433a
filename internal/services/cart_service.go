package services

import (
	"context"
	"fmt"
	"strings"

	"robotshop-web/internal/metrics"
	"robotshop-web/internal/models"
	"robotshop-web/internal/session"

	"github.com/rs/zerolog"
)

type CartService struct {
	gateway Gateway
	logger  zerolog.Logger
}

func NewCartService(gateway Gateway, logger zerolog.Logger) *CartService {
	return &CartService{
		gateway: gateway,
		logger:  logger,
	}
}

// Add bumps the identity's running total before calling the cart service and
// then replaces the session cart with the cart service's answer. The bump is
// kept even if the call fails; the session cart is always the last
// authoritative response.
func (s *CartService) Add(ctx context.Context, store *session.Store, sku string, quantity int) (*models.CartView, error) {
	if strings.TrimSpace(sku) == "" {
		return nil, newValidationError("sku is required")
	}
	if quantity < 1 {
		return nil, newValidationError("quantity must be at least 1")
	}

	identity, err := store.Identity()
	if err != nil {
		return nil, err
	}

	if err := store.AddPendingItems(quantity); err != nil {
		return nil, err
	}
	metrics.AddCartUnits(quantity)

	cart, err := s.gateway.AddToCart(ctx, identity.ExternalID, sku, quantity)
	if err != nil {
		s.logger.Error().Err(err).Str("uniqueid", identity.ExternalID).Str("sku", sku).Msg("Add to cart failed")
		return nil, fmt.Errorf("add %s to cart: %w", sku, err)
	}
	if err := stillWanted(ctx, "add to cart"); err != nil {
		return nil, err
	}
	store.SetCart(*cart)

	s.logger.Info().
		Str("uniqueid", identity.ExternalID).
		Str("sku", sku).
		Int("quantity", quantity).
		Float64("total", cart.Total).
		Msg("Item added to cart")

	view, err := s.View(store)
	if err != nil {
		return nil, err
	}
	view.Message = "Added to cart"
	return view, nil
}

func (s *CartService) View(store *session.Store) (*models.CartView, error) {
	identity, err := store.Identity()
	if err != nil {
		return nil, err
	}
	return &models.CartView{
		Identity: identity,
		Cart:     store.Cart(),
	}, nil
}

// Refresh reloads the cart from the cart service.
func (s *CartService) Refresh(ctx context.Context, store *session.Store) (*models.CartView, error) {
	identity, err := store.Identity()
	if err != nil {
		return nil, err
	}

	cart, err := s.gateway.LoadCart(ctx, identity.ExternalID)
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}
	if err := stillWanted(ctx, "load cart"); err != nil {
		return nil, err
	}
	store.SetCart(*cart)

	return s.View(store)
}
