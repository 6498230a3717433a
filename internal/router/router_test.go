package router

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"testing"
	"time"

	"robotshop-web/internal/gateway"
	"robotshop-web/internal/middleware"
	"robotshop-web/internal/services"
	"robotshop-web/internal/session"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fakeBackend(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	reply := func(body string) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(body))
		}
	}

	mux.HandleFunc("/api/user/uniqueid", reply(`{"uuid":"abc"}`))
	mux.HandleFunc("/api/cart/add/abc/K9/2", reply(`{"total":200,"tax":33.33,"items":[{"qty":2,"sku":"K9","name":"K9","price":100,"subtotal":200}]}`))
	mux.HandleFunc("/api/catalogue/product/K9", reply(`{"_id":1,"sku":"K9","name":"K9","price":100,"instock":3,"categories":["Robot"]}`))
	mux.HandleFunc("/api/ratings/api/fetch/K9", reply(`{"avg_rating":4,"rating_count":2}`))
	mux.HandleFunc("/api/user/login", reply(`{"name":"bob","email":"bob@example.com"}`))
	mux.HandleFunc("/api/payment/pay/abc", reply(`{"orderid":"order-1"}`))
	mux.HandleFunc("/api/catalogue/categories", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusServiceUnavailable)
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func newTestServer(t *testing.T, opts Options) *httptest.Server {
	t.Helper()

	backend := fakeBackend(t)
	gw, err := gateway.New(gateway.Config{BaseURL: backend.URL, Timeout: 2 * time.Second}, zerolog.Nop())
	require.NoError(t, err)

	registry := session.NewRegistry(time.Hour, zerolog.Nop())
	t.Cleanup(registry.Close)
	sessions := services.NewSessionService(gw, "test-secret", time.Hour, zerolog.Nop())

	srv := httptest.NewServer(SetupRouter(gw, registry, sessions, opts, zerolog.Nop()))
	t.Cleanup(srv.Close)
	return srv
}

func newBrowser(t *testing.T) *http.Client {
	t.Helper()
	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	return &http.Client{Jar: jar}
}

func call(t *testing.T, client *http.Client, method, url string, body interface{}) (*http.Response, map[string]interface{}) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out map[string]interface{}
	json.NewDecoder(resp.Body).Decode(&out)
	return resp, out
}

func TestShoppingFlow(t *testing.T) {
	srv := newTestServer(t, Options{})
	browser := newBrowser(t)
	api := srv.URL + "/api/web"

	resp, body := call(t, browser, http.MethodGet, api+"/cart", nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "session_not_initialized", body["error"])

	resp, body = call(t, browser, http.MethodGet, api+"/session", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["initialized"])
	identity := body["identity"].(map[string]interface{})
	assert.Equal(t, "abc", identity["uniqueid"])

	resp, body = call(t, browser, http.MethodPost, api+"/cart/add", map[string]interface{}{"sku": "K9", "quantity": 2})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Added to cart", body["message"])
	cart := body["cart"].(map[string]interface{})
	assert.Equal(t, 200.0, cart["total"])

	resp, body = call(t, browser, http.MethodGet, api+"/cart", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	identity = body["identity"].(map[string]interface{})
	assert.Equal(t, 2.0, identity["cart"].(map[string]interface{})["total"])

	resp, body = call(t, browser, http.MethodGet, api+"/product/K9", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "K9", body["product"].(map[string]interface{})["sku"])
	assert.Equal(t, 4.0, body["rating"].(map[string]interface{})["avg_rating"])

	resp, body = call(t, browser, http.MethodPost, api+"/payment/pay", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Order Placed order-1", body["message"])
	assert.Equal(t, 0.0, body["cart"].(map[string]interface{})["total"])
}

func TestLoginBeforeSessionStart(t *testing.T) {
	srv := newTestServer(t, Options{})
	browser := newBrowser(t)
	api := srv.URL + "/api/web"

	resp, _ := call(t, browser, http.MethodPost, api+"/account/login", map[string]string{"name": "bob", "password": "pw"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body := call(t, browser, http.MethodGet, api+"/session", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["initialized"])
	assert.Equal(t, true, body["loggedIn"])

	resp, body = call(t, browser, http.MethodPost, api+"/cart/add", map[string]interface{}{"sku": "K9", "quantity": 2})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Added to cart", body["message"])
}

func TestSessionsAreIsolatedPerBrowser(t *testing.T) {
	srv := newTestServer(t, Options{})
	api := srv.URL + "/api/web"

	first := newBrowser(t)
	resp, _ := call(t, first, http.MethodGet, api+"/session", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	second := newBrowser(t)
	resp, _ = call(t, second, http.MethodGet, api+"/cart", nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	resp, _ = call(t, first, http.MethodGet, api+"/cart", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestErrorMapping(t *testing.T) {
	srv := newTestServer(t, Options{})
	browser := newBrowser(t)
	api := srv.URL + "/api/web"

	resp, body := call(t, browser, http.MethodGet, api+"/categories", nil)
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
	assert.Equal(t, "request_failed", body["error"])

	resp, body = call(t, browser, http.MethodPost, api+"/account/register", map[string]string{"name": "bob"})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Equal(t, "fill all details", body["message"])

	resp, body = call(t, browser, http.MethodPut, api+"/product/K9/rate/9", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Equal(t, "validation_failed", body["error"])
}

func TestRejectsNonJSONBody(t *testing.T) {
	srv := newTestServer(t, Options{})

	req, err := http.NewRequest(http.MethodPost, srv.URL+"/api/web/cart/add", bytes.NewReader([]byte("sku=K9")))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestRateLimit(t *testing.T) {
	srv := newTestServer(t, Options{RateLimit: 0.001, RateBurst: 1})
	browser := newBrowser(t)

	resp, _ := call(t, browser, http.MethodGet, srv.URL+"/api/web/session", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body := call(t, browser, http.MethodGet, srv.URL+"/api/web/session", nil)
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
	assert.Equal(t, "rate_limit_exceeded", body["error"])
}

func TestSessionCookie(t *testing.T) {
	srv := newTestServer(t, Options{})

	resp, err := http.Get(srv.URL + "/api/web/session")
	require.NoError(t, err)
	defer resp.Body.Close()

	var cookie *http.Cookie
	for _, c := range resp.Cookies() {
		if c.Name == middleware.SessionCookieName {
			cookie = c
		}
	}
	require.NotNil(t, cookie)
	assert.True(t, cookie.HttpOnly)
	assert.Zero(t, cookie.MaxAge)
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))
}

func TestHealthAndMetrics(t *testing.T) {
	srv := newTestServer(t, Options{})

	resp, err := http.Get(srv.URL + "/health")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// one backend call so the gateway series exist
	call(t, newBrowser(t), http.MethodGet, srv.URL+"/api/web/session", nil)

	resp, err = http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var buf bytes.Buffer
	_, err = buf.ReadFrom(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "robotshop_web_gateway_requests_total")
}
