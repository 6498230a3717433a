package services

import (
	"context"
	"fmt"

	"robotshop-web/internal/models"
	"robotshop-web/internal/session"

	"github.com/rs/zerolog"
)

type PaymentService struct {
	gateway Gateway
	logger  zerolog.Logger
}

func NewPaymentService(gateway Gateway, logger zerolog.Logger) *PaymentService {
	return &PaymentService{
		gateway: gateway,
		logger:  logger,
	}
}

// Pay submits the session cart. The cart is emptied only once the payment
// service has returned an order id.
func (s *PaymentService) Pay(ctx context.Context, store *session.Store) (*models.PaymentResult, error) {
	identity, err := store.Identity()
	if err != nil {
		return nil, err
	}

	orderID, err := s.gateway.Pay(ctx, identity.ExternalID, store.Cart())
	if err != nil {
		s.logger.Error().Err(err).Str("uniqueid", identity.ExternalID).Msg("Payment failed")
		return nil, fmt.Errorf("pay: %w", err)
	}
	// the backend has already dropped the cart, so this applies even if the
	// caller has gone away
	store.ResetCart()

	s.logger.Info().Str("uniqueid", identity.ExternalID).Str("orderid", orderID).Msg("Order placed")
	return &models.PaymentResult{
		OrderID: orderID,
		Message: "Order Placed " + orderID,
		Cart:    store.Cart(),
	}, nil
}
