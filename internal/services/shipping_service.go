package services

import (
	"context"
	"fmt"
	"strings"

	"robotshop-web/internal/models"
	"robotshop-web/internal/session"

	"github.com/rs/zerolog"
)

type ShippingService struct {
	gateway Gateway
	logger  zerolog.Logger
}

func NewShippingService(gateway Gateway, logger zerolog.Logger) *ShippingService {
	return &ShippingService{
		gateway: gateway,
		logger:  logger,
	}
}

func (s *ShippingService) Codes(ctx context.Context) ([]models.ShippingCode, error) {
	codes, err := s.gateway.ShippingCodes(ctx)
	if err != nil {
		return nil, fmt.Errorf("shipping codes: %w", err)
	}
	return codes, nil
}

func (s *ShippingService) Cities(ctx context.Context, countryCode, term string) ([]models.City, error) {
	if strings.TrimSpace(countryCode) == "" || strings.TrimSpace(term) == "" {
		return nil, newValidationError("country and location are required")
	}

	cities, err := s.gateway.MatchCities(ctx, countryCode, term)
	if err != nil {
		return nil, fmt.Errorf("match cities in %s: %w", countryCode, err)
	}
	return cities, nil
}

func (s *ShippingService) Quote(ctx context.Context, locationUUID int) (*models.ShippingQuote, error) {
	if locationUUID <= 0 {
		return nil, newValidationError("location is required")
	}

	quote, err := s.gateway.CalcShipping(ctx, locationUUID)
	if err != nil {
		return nil, fmt.Errorf("calc shipping for %d: %w", locationUUID, err)
	}
	return quote, nil
}

// Confirm posts the shipping choice; the cart in the response replaces the
// session cart wholesale.
func (s *ShippingService) Confirm(ctx context.Context, store *session.Store, selection models.ShippingSelection) (*models.CartView, error) {
	if strings.TrimSpace(selection.Location) == "" {
		return nil, newValidationError("location is required")
	}

	identity, err := store.Identity()
	if err != nil {
		return nil, err
	}

	cart, err := s.gateway.ConfirmShipping(ctx, identity.ExternalID, selection)
	if err != nil {
		s.logger.Error().Err(err).Str("uniqueid", identity.ExternalID).Msg("Shipping confirmation failed")
		return nil, fmt.Errorf("confirm shipping: %w", err)
	}
	if err := stillWanted(ctx, "confirm shipping"); err != nil {
		return nil, err
	}
	store.SetCart(*cart)

	s.logger.Info().
		Str("uniqueid", identity.ExternalID).
		Str("location", selection.Location).
		Float64("cost", selection.Cost).
		Msg("Shipping confirmed")

	return &models.CartView{
		Identity: identity,
		Cart:     store.Cart(),
	}, nil
}
