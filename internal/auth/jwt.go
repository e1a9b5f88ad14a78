package auth

import (
	"errors"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"filedrive/internal/domain"
)

// HMACTokenManager implements TokenManager with HS256 and a shared secret.
type HMACTokenManager struct {
	secret []byte
	ttl    time.Duration
	logger *slog.Logger
}

// NewHMACTokenManager creates a token manager signing with the given
// secret. Issued tokens expire after ttl.
func NewHMACTokenManager(secret string, ttl time.Duration, logger *slog.Logger) (*HMACTokenManager, error) {
	if secret == "" {
		return nil, errors.New("token secret cannot be empty")
	}
	return &HMACTokenManager{
		secret: []byte(secret),
		ttl:    ttl,
		logger: logger,
	}, nil
}

// Issue signs a token for the given user.
func (m *HMACTokenManager) Issue(userID, username string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
		UserID:   userID,
		Username: username,
	})

	return token.SignedString(m.secret)
}

// Verify validates a token string and extracts its claims.
func (m *HMACTokenManager) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return m.secret, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		m.logger.Debug("token parse failed", "error", err)
		return nil, domain.ErrUnauthorized
	}

	if !token.Valid {
		return nil, domain.ErrUnauthorized
	}

	if claims.UserID == "" {
		m.logger.Debug("token missing user id claim")
		return nil, domain.ErrUnauthorized
	}

	return claims, nil
}
