package gateway

import (
	"context"

	"robotshop-web/internal/models"
)

func (c *Client) ListCategories(ctx context.Context) ([]string, error) {
	var categories []string
	if err := c.get(ctx, "list_categories", c.endpoint("api", "catalogue", "categories"), &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (c *Client) ListProducts(ctx context.Context, category string) ([]models.Product, error) {
	var products []models.Product
	if err := c.get(ctx, "list_products", c.endpoint("api", "catalogue", "products", category), &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (c *Client) GetProduct(ctx context.Context, sku string) (*models.Product, error) {
	var product models.Product
	if err := c.get(ctx, "get_product", c.endpoint("api", "catalogue", "product", sku), &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (c *Client) Search(ctx context.Context, text string) ([]models.Product, error) {
	var products []models.Product
	if err := c.get(ctx, "search", c.endpoint("api", "catalogue", "search", text), &products); err != nil {
		return nil, err
	}
	return products, nil
}
