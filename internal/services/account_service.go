package services

import (
	"context"
	"encoding/json"
	"fmt"

	"robotshop-web/internal/models"
	"robotshop-web/internal/session"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

const (
	msgFillAllDetails   = "fill all details"
	msgPasswordMismatch = "password dont match"
)

type AccountService struct {
	gateway Gateway
	logger  zerolog.Logger
}

func NewAccountService(gateway Gateway, logger zerolog.Logger) *AccountService {
	return &AccountService{
		gateway: gateway,
		logger:  logger,
	}
}

// Register validates the form, forwards it to the user service and makes
// the new profile the session identity. The identity id is the chosen name.
// The existing session cart is left as it is.
func (s *AccountService) Register(ctx context.Context, store *session.Store, req models.RegisterRequest) (*models.AccountView, error) {
	if req.Name == "" || req.Email == "" || req.Password == "" || req.PasswordConfirm == "" {
		return nil, newValidationError(msgFillAllDetails)
	}
	if req.Password != req.PasswordConfirm {
		return nil, newValidationError(msgPasswordMismatch)
	}

	if err := s.gateway.Register(ctx, req); err != nil {
		s.logger.Error().Err(err).Str("name", req.Name).Msg("Registration failed")
		return nil, fmt.Errorf("register %s: %w", req.Name, err)
	}
	if err := stillWanted(ctx, "register"); err != nil {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error().Err(err).Msg("Error hashing password")
		return nil, fmt.Errorf("hash password: %w", err)
	}

	// only the hash is kept in the session
	profile := models.UserProfile{
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hashedPassword),
	}
	store.SetIdentity(models.SessionIdentity{
		ExternalID: req.Name,
		Profile:    profile,
		Cart:       models.CartSummary{Total: 0},
	})
	store.SetLoggedIn(true)

	s.logger.Info().Str("name", req.Name).Str("email", req.Email).Msg("User registered")
	return &models.AccountView{LoggedIn: true, Profile: profile}, nil
}

// Login forwards the credentials to the user service. Verification is the
// user service's business; any 2xx answer logs the session in.
func (s *AccountService) Login(ctx context.Context, store *session.Store, req models.LoginRequest) (json.RawMessage, error) {
	if req.Name == "" || req.Password == "" {
		return nil, newValidationError(msgFillAllDetails)
	}

	resp, err := s.gateway.Login(ctx, req)
	if err != nil {
		s.logger.Warn().Err(err).Str("name", req.Name).Msg("Login failed")
		return nil, fmt.Errorf("login %s: %w", req.Name, err)
	}
	if err := stillWanted(ctx, "login"); err != nil {
		return nil, err
	}
	store.SetLoggedIn(true)

	s.logger.Info().Str("name", req.Name).Msg("User logged in")
	return resp, nil
}

// Logout clears the login flag only. Profile and cart stay in the session.
func (s *AccountService) Logout(store *session.Store) {
	store.SetLoggedIn(false)
	s.logger.Info().Msg("User logged out")
}

// Account returns the profile and order history of a logged-in session. A
// session that is not logged in gets an empty view.
func (s *AccountService) Account(ctx context.Context, store *session.Store) (*models.AccountView, error) {
	if !store.LoggedIn() {
		return &models.AccountView{LoggedIn: false}, nil
	}

	identity, err := store.Identity()
	if err != nil {
		return nil, err
	}

	history, err := s.gateway.UserHistory(ctx, identity.ExternalID)
	if err != nil {
		return nil, fmt.Errorf("history for %s: %w", identity.ExternalID, err)
	}

	return &models.AccountView{
		LoggedIn: true,
		Profile:  identity.Profile,
		History:  history,
	}, nil
}
