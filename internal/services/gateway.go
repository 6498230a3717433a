package services

import (
	"context"
	"encoding/json"

	"robotshop-web/internal/models"
)

// Gateway is the set of backend calls the services orchestrate.
type Gateway interface {
	ListCategories(ctx context.Context) ([]string, error)
	ListProducts(ctx context.Context, category string) ([]models.Product, error)
	GetProduct(ctx context.Context, sku string) (*models.Product, error)
	Search(ctx context.Context, text string) ([]models.Product, error)
	LoadRatings(ctx context.Context, sku string) (*models.Rating, error)
	RateProduct(ctx context.Context, sku string, vote int) error

	UniqueID(ctx context.Context) (string, error)
	UserHistory(ctx context.Context, id string) (*models.UserHistory, error)
	Register(ctx context.Context, req models.RegisterRequest) error
	Login(ctx context.Context, req models.LoginRequest) (json.RawMessage, error)

	AddToCart(ctx context.Context, uuid, sku string, quantity int) (*models.CartSummary, error)
	LoadCart(ctx context.Context, id string) (*models.CartSummary, error)

	ShippingCodes(ctx context.Context) ([]models.ShippingCode, error)
	MatchCities(ctx context.Context, countryCode, term string) ([]models.City, error)
	CalcShipping(ctx context.Context, locationUUID int) (*models.ShippingQuote, error)
	ConfirmShipping(ctx context.Context, uuid string, selection models.ShippingSelection) (*models.CartSummary, error)

	Pay(ctx context.Context, uuid string, cart models.CartSummary) (string, error)
}
