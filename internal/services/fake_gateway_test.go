package services

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"robotshop-web/internal/gateway"
	"robotshop-web/internal/models"
)

var errUnexpectedCall = errors.New("unexpected gateway call")

// fakeGateway answers with canned values and records the calls it saw.
type fakeGateway struct {
	mu    sync.Mutex
	calls []string

	categories []string
	products   []models.Product
	product    *models.Product
	productErr error
	rating     *models.Rating
	ratingErr  error
	rateErr    error

	uniqueID    string
	uniqueIDErr error
	history     *models.UserHistory
	registerErr error
	loginResp   json.RawMessage
	loginErr    error

	carts   []models.CartSummary
	cartErr error

	codes       []models.ShippingCode
	cities      []models.City
	quote       *models.ShippingQuote
	confirmCart *models.CartSummary
	confirmErr  error

	orderID string
	payErr  error
	paid    []models.CartSummary

	onAddToCart func()
}

func (f *fakeGateway) record(call string) {
	f.mu.Lock()
	f.calls = append(f.calls, call)
	f.mu.Unlock()
}

func (f *fakeGateway) called(call string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		if c == call {
			n++
		}
	}
	return n
}

func (f *fakeGateway) ListCategories(ctx context.Context) ([]string, error) {
	f.record("ListCategories")
	return f.categories, nil
}

func (f *fakeGateway) ListProducts(ctx context.Context, category string) ([]models.Product, error) {
	f.record("ListProducts")
	return f.products, nil
}

func (f *fakeGateway) GetProduct(ctx context.Context, sku string) (*models.Product, error) {
	f.record("GetProduct")
	if f.productErr != nil {
		return nil, f.productErr
	}
	p := *f.product
	return &p, nil
}

func (f *fakeGateway) Search(ctx context.Context, text string) ([]models.Product, error) {
	f.record("Search")
	return f.products, nil
}

func (f *fakeGateway) LoadRatings(ctx context.Context, sku string) (*models.Rating, error) {
	f.record("LoadRatings")
	if f.ratingErr != nil {
		return nil, f.ratingErr
	}
	r := *f.rating
	return &r, nil
}

func (f *fakeGateway) RateProduct(ctx context.Context, sku string, vote int) error {
	f.record("RateProduct")
	return f.rateErr
}

func (f *fakeGateway) UniqueID(ctx context.Context) (string, error) {
	f.record("UniqueID")
	return f.uniqueID, f.uniqueIDErr
}

func (f *fakeGateway) UserHistory(ctx context.Context, id string) (*models.UserHistory, error) {
	f.record("UserHistory")
	if f.history == nil {
		return nil, errUnexpectedCall
	}
	return f.history, nil
}

func (f *fakeGateway) Register(ctx context.Context, req models.RegisterRequest) error {
	f.record("Register")
	return f.registerErr
}

func (f *fakeGateway) Login(ctx context.Context, req models.LoginRequest) (json.RawMessage, error) {
	f.record("Login")
	return f.loginResp, f.loginErr
}

// AddToCart answers with the next cart in carts.
func (f *fakeGateway) AddToCart(ctx context.Context, uuid, sku string, quantity int) (*models.CartSummary, error) {
	f.record("AddToCart")
	if f.onAddToCart != nil {
		f.onAddToCart()
	}
	if f.cartErr != nil {
		return nil, f.cartErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.carts) == 0 {
		return nil, errUnexpectedCall
	}
	cart := f.carts[0]
	f.carts = f.carts[1:]
	return &cart, nil
}

func (f *fakeGateway) LoadCart(ctx context.Context, id string) (*models.CartSummary, error) {
	f.record("LoadCart")
	if f.cartErr != nil {
		return nil, f.cartErr
	}
	if len(f.carts) == 0 {
		return nil, errUnexpectedCall
	}
	cart := f.carts[0]
	return &cart, nil
}

func (f *fakeGateway) ShippingCodes(ctx context.Context) ([]models.ShippingCode, error) {
	f.record("ShippingCodes")
	return f.codes, nil
}

func (f *fakeGateway) MatchCities(ctx context.Context, countryCode, term string) ([]models.City, error) {
	f.record("MatchCities")
	return f.cities, nil
}

func (f *fakeGateway) CalcShipping(ctx context.Context, locationUUID int) (*models.ShippingQuote, error) {
	f.record("CalcShipping")
	return f.quote, nil
}

func (f *fakeGateway) ConfirmShipping(ctx context.Context, uuid string, selection models.ShippingSelection) (*models.CartSummary, error) {
	f.record("ConfirmShipping")
	if f.confirmErr != nil {
		return nil, f.confirmErr
	}
	cart := *f.confirmCart
	return &cart, nil
}

func (f *fakeGateway) Pay(ctx context.Context, uuid string, cart models.CartSummary) (string, error) {
	f.record("Pay")
	f.mu.Lock()
	f.paid = append(f.paid, cart)
	f.mu.Unlock()
	return f.orderID, f.payErr
}

func networkFailure(op string) error {
	return &gateway.NetworkError{Op: op, Method: "GET", URL: "http://backend/" + op, StatusCode: 503}
}
