package router

import (
	"net/http"
	"time"

	"robotshop-web/internal/handlers"
	"robotshop-web/internal/metrics"
	"robotshop-web/internal/middleware"
	"robotshop-web/internal/services"
	"robotshop-web/internal/session"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

type Options struct {
	RateLimit      float64
	RateBurst      int
	AllowedOrigins []string
}

func SetupRouter(gw services.Gateway, registry *session.Registry, sessionService *services.SessionService, opts Options, logger zerolog.Logger) *mux.Router {
	catalogueService := services.NewCatalogueService(gw, logger)
	cartService := services.NewCartService(gw, logger)
	accountService := services.NewAccountService(gw, logger)
	shippingService := services.NewShippingService(gw, logger)
	paymentService := services.NewPaymentService(gw, logger)

	sessionHandler := handlers.NewSessionHandler(sessionService, logger)
	catalogueHandler := handlers.NewCatalogueHandler(catalogueService, logger)
	cartHandler := handlers.NewCartHandler(cartService, logger)
	accountHandler := handlers.NewAccountHandler(accountService, logger)
	shippingHandler := handlers.NewShippingHandler(shippingService, logger)
	paymentHandler := handlers.NewPaymentHandler(paymentService, logger)

	if opts.RateLimit <= 0 {
		opts.RateLimit = 10
	}
	if opts.RateBurst <= 0 {
		opts.RateBurst = 20
	}

	r := mux.NewRouter()

	rateLimiter := middleware.NewRateLimiter(rate.Limit(opts.RateLimit), opts.RateBurst)

	r.Use(middleware.ErrorHandling(logger))
	r.Use(middleware.PerformanceMonitoring(time.Second, logger))
	r.Use(middleware.RequestLogging(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(opts.AllowedOrigins))

	api := r.PathPrefix("/api/web").Subrouter()
	api.Use(rateLimiter.Middleware())
	api.Use(middleware.RequestValidation())
	api.Use(middleware.Session(registry, sessionService, logger))

	api.HandleFunc("/session", sessionHandler.Start).Methods("GET")

	api.HandleFunc("/categories", catalogueHandler.GetCategories).Methods("GET")
	api.HandleFunc("/products/{category}", catalogueHandler.GetProducts).Methods("GET")
	api.HandleFunc("/search/{text:.+}", catalogueHandler.Search).Methods("GET")
	api.HandleFunc("/product/{sku}", catalogueHandler.GetProduct).Methods("GET")
	api.HandleFunc("/product/{sku}/rate/{vote}", catalogueHandler.RateProduct).Methods("PUT")

	cart := api.PathPrefix("/cart").Subrouter()
	cart.HandleFunc("", cartHandler.GetCart).Methods("GET")
	cart.HandleFunc("/add", cartHandler.AddToCart).Methods("POST")
	cart.HandleFunc("/refresh", cartHandler.RefreshCart).Methods("POST")

	shipping := api.PathPrefix("/shipping").Subrouter()
	shipping.HandleFunc("/codes", shippingHandler.GetCodes).Methods("GET")
	shipping.HandleFunc("/match/{code}/{term:.+}", shippingHandler.MatchCities).Methods("GET")
	shipping.HandleFunc("/calc/{uuid}", shippingHandler.CalcShipping).Methods("GET")
	shipping.HandleFunc("/confirm", shippingHandler.ConfirmShipping).Methods("POST")

	api.HandleFunc("/payment/pay", paymentHandler.Pay).Methods("POST")

	account := api.PathPrefix("/account").Subrouter()
	account.HandleFunc("", accountHandler.GetAccount).Methods("GET")
	account.HandleFunc("/register", accountHandler.Register).Methods("POST")
	account.HandleFunc("/login", accountHandler.Login).Methods("POST")
	account.HandleFunc("/logout", accountHandler.Logout).Methods("POST")

	r.Handle("/metrics", metrics.Handler()).Methods("GET")
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	return r
}
