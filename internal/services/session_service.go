package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"robotshop-web/internal/models"
	"robotshop-web/internal/session"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
)

const defaultSessionSecret = "default-session-secret-change-in-production"

type SessionService struct {
	gateway   Gateway
	secretKey []byte
	tokenTTL  time.Duration
	logger    zerolog.Logger
}

type SessionClaims struct {
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

func NewSessionService(gateway Gateway, secret string, tokenTTL time.Duration, logger zerolog.Logger) *SessionService {
	if secret == "" {
		secret = defaultSessionSecret
		logger.Warn().Msg("SESSION_SECRET not set, using default key")
	}
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}

	return &SessionService{
		gateway:   gateway,
		secretKey: []byte(secret),
		tokenTTL:  tokenTTL,
		logger:    logger,
	}
}

// Start prepares the session for the first screen. A session without an
// identity gets an anonymous one whose id comes from the user service; the
// identity is only stored once that id is known. The login flag is left as
// it is. Sessions that already have an identity are returned unchanged.
func (s *SessionService) Start(ctx context.Context, store *session.Store) (session.Snapshot, error) {
	if store.Initialized() {
		return store.Snapshot(), nil
	}

	id, err := s.gateway.UniqueID(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("Error fetching unique id")
		return session.Snapshot{}, fmt.Errorf("start session: %w", err)
	}
	if err := stillWanted(ctx, "start session"); err != nil {
		return session.Snapshot{}, err
	}

	store.SetIdentity(models.SessionIdentity{
		ExternalID: id,
		Profile:    models.AnonymousProfile(),
		Cart:       models.CartSummary{Total: 0},
	})

	s.logger.Info().Str("uniqueid", id).Msg("Anonymous session started")
	return store.Snapshot(), nil
}

func (s *SessionService) GenerateToken(sessionID string) (string, error) {
	now := time.Now()
	claims := &SessionClaims{
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.secretKey)
	if err != nil {
		s.logger.Error().Err(err).Msg("Error generating session token")
		return "", err
	}

	return tokenString, nil
}

func (s *SessionService) ValidateToken(tokenString string) (string, error) {
	claims := &SessionClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return s.secretKey, nil
	})
	if err != nil {
		return "", err
	}

	if !token.Valid || claims.SessionID == "" {
		return "", errors.New("invalid session token")
	}

	return claims.SessionID, nil
}
