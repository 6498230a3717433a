package gateway

import (
	"context"
	"encoding/json"
	"net/http"

	"robotshop-web/internal/models"
)

func (c *Client) UniqueID(ctx context.Context) (string, error) {
	var id models.UniqueID
	if err := c.get(ctx, "unique_id", c.endpoint("api", "user", "uniqueid"), &id); err != nil {
		return "", err
	}
	return id.UUID.String(), nil
}

func (c *Client) UserHistory(ctx context.Context, id string) (*models.UserHistory, error) {
	var history models.UserHistory
	if err := c.get(ctx, "user_history", c.endpoint("api", "user", "history", id), &history); err != nil {
		return nil, err
	}
	return &history, nil
}

// Register forwards name, email and password only; the confirmation never
// leaves this process.
func (c *Client) Register(ctx context.Context, req models.RegisterRequest) error {
	body := models.RegisterRequest{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	}
	return c.do(ctx, "register", http.MethodPost, c.endpoint("api", "user", "register"), body, nil)
}

// Login returns the user service's response verbatim.
func (c *Client) Login(ctx context.Context, req models.LoginRequest) (json.RawMessage, error) {
	var raw []byte
	if err := c.do(ctx, "login", http.MethodPost, c.endpoint("api", "user", "login"), req, &raw); err != nil {
		return nil, err
	}
	if len(raw) > 0 && !json.Valid(raw) {
		raw, _ = json.Marshal(string(raw))
	}
	return json.RawMessage(raw), nil
}
