package gateway

import (
	"context"
	"net/http"
	"strconv"

	"robotshop-web/internal/models"
)

func (c *Client) ShippingCodes(ctx context.Context) ([]models.ShippingCode, error) {
	var codes []models.ShippingCode
	if err := c.get(ctx, "shipping_codes", c.endpoint("api", "shipping", "codes"), &codes); err != nil {
		return nil, err
	}
	return codes, nil
}

func (c *Client) MatchCities(ctx context.Context, countryCode, term string) ([]models.City, error) {
	var cities []models.City
	if err := c.get(ctx, "match_cities", c.endpoint("api", "shipping", "match", countryCode, term), &cities); err != nil {
		return nil, err
	}
	return cities, nil
}

func (c *Client) CalcShipping(ctx context.Context, locationUUID int) (*models.ShippingQuote, error) {
	var quote models.ShippingQuote
	if err := c.get(ctx, "calc_shipping", c.endpoint("api", "shipping", "calc", strconv.Itoa(locationUUID)), &quote); err != nil {
		return nil, err
	}
	return &quote, nil
}

// ConfirmShipping adds the shipping line to the cart and returns the whole
// updated cart.
func (c *Client) ConfirmShipping(ctx context.Context, uuid string, selection models.ShippingSelection) (*models.CartSummary, error) {
	var cart models.CartSummary
	if err := c.do(ctx, "confirm_shipping", http.MethodPost, c.endpoint("api", "shipping", "confirm", uuid), selection, &cart); err != nil {
		return nil, err
	}
	return &cart, nil
}
