package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/briarwood-camp/camp-services/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type contextKey string
type tokenKey string

const AccountKey contextKey = "account"
const TokenKey tokenKey = "token"

// TokenResolver maps a presented bearer token value back to its active
// account. A nil account with nil error means the token is missing from
// storage, expired, or owned by an inactive account.
type TokenResolver interface {
	ResolveSessionToken(tokenValue string) (*models.Account, error)
}

// BearerAuth resolves the opaque bearer token and adds the account to the
// request context. Missing, invalid, and expired tokens all answer 401.
func BearerAuth(resolver TokenResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				logger := zerolog.Ctx(r.Context()).With().
					Str("handler", "BearerAuth").Logger()

				// Get the Authorization header
				authHeader := r.Header.Get("Authorization")
				if authHeader == "" {
					logger.Debug().Msg("authorization header missing")
					http.Error(w, "authorization header missing",
						http.StatusUnauthorized)
					return
				}

				// Check the Authorization header format
				token := strings.TrimPrefix(authHeader, "Bearer ")
				if token == authHeader || token == "" {
					logger.Debug().Msg("invalid token format")
					http.Error(w, "invalid token format", http.StatusUnauthorized)
					return
				}

				account, err := resolver.ResolveSessionToken(token)
				if err != nil {
					logger.Error().Err(err).Msg("error resolving session token")
					http.Error(w, "could not resolve session token", http.StatusInternalServerError)
					return
				}
				if account == nil {
					logger.Debug().Msg("invalid or expired token")
					http.Error(w, "invalid or expired token", http.StatusUnauthorized)
					return
				}

				// Add the token and account to the context
				ctx := context.WithValue(r.Context(), TokenKey, token)
				ctx = context.WithValue(ctx, AccountKey, *account)

				next.ServeHTTP(w, r.WithContext(ctx))
			},
		)
	}
}

// RequireRole gates a subrouter behind one declared role. Exact match only,
// so an admin does not pass a parent-only route.
func RequireRole(role models.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				account, ok := r.Context().Value(AccountKey).(models.Account)
				if !ok {
					http.Error(w, "not authenticated", http.StatusUnauthorized)
					return
				}
				if account.Role != role {
					zerolog.Ctx(r.Context()).Warn().
						Str("required_role", string(role)).
						Str("account_role", string(account.Role)).
						Msg("role mismatch")
					http.Error(w, "requires role '"+string(role)+"'", http.StatusForbidden)
					return
				}
				next.ServeHTTP(w, r)
			},
		)
	}
}

// WithLogger adds a logger to the context and logs request information.
func WithLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			logger := log.With().
				Str("host", r.Host).
				Str("method", r.Method).
				Str("url", r.URL.String()).
				Str("remote_addr", r.RemoteAddr).
				Time("timestamp", time.Now()).
				Logger()

			// Add the logger to the context
			ctx := logger.WithContext(r.Context())
			next.ServeHTTP(w, r.WithContext(ctx))
		},
	)
}
