package gateway

import (
	"context"
	"strconv"

	"robotshop-web/internal/models"
)

func (c *Client) AddToCart(ctx context.Context, uuid, sku string, quantity int) (*models.CartSummary, error) {
	var cart models.CartSummary
	endpoint := c.endpoint("api", "cart", "add", uuid, sku, strconv.Itoa(quantity))
	if err := c.get(ctx, "add_to_cart", endpoint, &cart); err != nil {
		return nil, err
	}
	return &cart, nil
}

func (c *Client) LoadCart(ctx context.Context, id string) (*models.CartSummary, error) {
	var cart models.CartSummary
	if err := c.get(ctx, "load_cart", c.endpoint("api", "cart", "cart", id), &cart); err != nil {
		return nil, err
	}
	return &cart, nil
}
