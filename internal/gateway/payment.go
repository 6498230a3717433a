package gateway

import (
	"context"
	"errors"
	"net/http"

	"robotshop-web/internal/models"

	"github.com/tidwall/gjson"
)

// Pay submits the cart and returns the order id assigned by the payment
// service.
func (c *Client) Pay(ctx context.Context, uuid string, cart models.CartSummary) (string, error) {
	var raw []byte
	if err := c.do(ctx, "pay", http.MethodPost, c.endpoint("api", "payment", "pay", uuid), cart, &raw); err != nil {
		return "", err
	}

	if !gjson.ValidBytes(raw) {
		return "", &DecodeError{Op: "pay", Err: errors.New("response is not valid JSON")}
	}
	orderID := gjson.GetBytes(raw, "orderid")
	if !orderID.Exists() {
		return "", &DecodeError{Op: "pay", Err: errors.New("response has no orderid")}
	}
	return orderID.String(), nil
}
