package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"filedrive/internal/auth"
	"filedrive/internal/httputil"
)

// RequireAuth rejects requests that do not carry a valid bearer token and
// attaches the user's identity to the request context.
func RequireAuth(tokens auth.TokenManager, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := verifyBearer(tokens, r)
			if !ok {
				logger.Debug("rejected unauthenticated request",
					"path", r.URL.Path,
					"method", r.Method,
				)
				httputil.RespondError(w, http.StatusUnauthorized, "Invalid or expired token")
				return
			}

			next.ServeHTTP(w, httputil.WithUser(r, claims.UserID, claims.Username))
		})
	}
}

// OptionalAuth attaches the user's identity when a valid bearer token is
// present and lets the request through anonymously otherwise. Used on the
// read endpoints that shared-link visitors may hit without an account.
func OptionalAuth(tokens auth.TokenManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if claims, ok := verifyBearer(tokens, r); ok {
				r = httputil.WithUser(r, claims.UserID, claims.Username)
			}
			next.ServeHTTP(w, r)
		})
	}
}

func verifyBearer(tokens auth.TokenManager, r *http.Request) (*auth.Claims, bool) {
	const prefix = "Bearer "

	header := r.Header.Get("Authorization")
	if !strings.HasPrefix(header, prefix) {
		return nil, false
	}

	claims, err := tokens.Verify(strings.TrimPrefix(header, prefix))
	if err != nil {
		return nil, false
	}

	return claims, true
}
