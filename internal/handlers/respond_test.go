package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"robotshop-web/internal/gateway"
	"robotshop-web/internal/services"
	"robotshop-web/internal/session"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondWithServiceError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantErr  string
		wantMsg  string
	}{
		{
			name:     "validation",
			err:      &services.ValidationError{Message: "password dont match"},
			wantCode: http.StatusUnprocessableEntity,
			wantErr:  "validation_failed",
			wantMsg:  "password dont match",
		},
		{
			name:     "not initialized",
			err:      fmt.Errorf("add to cart: %w", session.ErrNotInitialized),
			wantCode: http.StatusConflict,
			wantErr:  "session_not_initialized",
		},
		{
			name:     "network",
			err:      fmt.Errorf("pay: %w", &gateway.NetworkError{Op: "pay", StatusCode: 500}),
			wantCode: http.StatusBadGateway,
			wantErr:  "request_failed",
		},
		{
			name:     "decode",
			err:      &gateway.DecodeError{Op: "load_cart", Err: errors.New("unexpected EOF")},
			wantCode: http.StatusBadGateway,
			wantErr:  "request_failed",
		},
		{
			name:     "client went away",
			err:      fmt.Errorf("add to cart: discarding response: %w", context.Canceled),
			wantCode: statusClientClosedRequest,
			wantErr:  "request_cancelled",
		},
		{
			name:     "cancelled mid backend call",
			err:      &gateway.NetworkError{Op: "pay", Err: context.Canceled},
			wantCode: statusClientClosedRequest,
			wantErr:  "request_cancelled",
		},
		{
			name:     "deadline",
			err:      fmt.Errorf("load cart: %w", context.DeadlineExceeded),
			wantCode: http.StatusGatewayTimeout,
			wantErr:  "request_timeout",
		},
		{
			name:     "other",
			err:      errors.New("boom"),
			wantCode: http.StatusInternalServerError,
			wantErr:  "internal_error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			respondWithServiceError(rec, zerolog.Nop(), tt.err)

			assert.Equal(t, tt.wantCode, rec.Code)
			var body map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantErr, body["error"])
			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, body["message"])
			}
		})
	}
}

func TestStoreFromRequest_Missing(t *testing.T) {
	rec := httptest.NewRecorder()
	_, ok := storeFromRequest(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.False(t, ok)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
