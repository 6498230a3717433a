package gateway

import (
	"context"
	"net/http"
	"strconv"

	"robotshop-web/internal/models"
)

func (c *Client) LoadRatings(ctx context.Context, sku string) (*models.Rating, error) {
	var rating models.Rating
	if err := c.get(ctx, "load_ratings", c.endpoint("api", "ratings", "api", "fetch", sku), &rating); err != nil {
		return nil, err
	}
	return &rating, nil
}

// RateProduct records a vote. The ratings service answers with an empty or
// non-JSON body, so the response is discarded.
func (c *Client) RateProduct(ctx context.Context, sku string, vote int) error {
	endpoint := c.endpoint("api", "ratings", "api", "rate", sku, strconv.Itoa(vote))
	return c.do(ctx, "rate_product", http.MethodPut, endpoint, struct{}{}, nil)
}
