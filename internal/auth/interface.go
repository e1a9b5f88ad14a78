package auth

import "github.com/golang-jwt/jwt/v5"

// Claims are the token claims carried for an authenticated user.
type Claims struct {
	jwt.RegisteredClaims
	UserID   string `json:"userId"`
	Username string `json:"username"`
}

// TokenManager issues and verifies the signed tokens used for
// authentication. The abstraction keeps the middleware and the auth
// service agnostic to the signing scheme.
type TokenManager interface {
	// Issue signs a token for the given user.
	Issue(userID, username string) (string, error)

	// Verify validates a token string and returns the parsed claims.
	// Returns domain.ErrUnauthorized if the token is missing claims,
	// malformed, expired, or has an invalid signature.
	Verify(tokenString string) (*Claims, error)
}
