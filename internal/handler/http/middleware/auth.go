package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/leave-approval-go/internal/domain/auth"
	"github.com/cmlabs-hris/leave-approval-go/internal/handler/http/response"
	"github.com/cmlabs-hris/leave-approval-go/internal/pkg/jwt"
	"github.com/go-chi/jwtauth/v5"
)

// AuthRequired accepts only unrevoked access tokens. It runs after
// jwtauth.Verifier.
func AuthRequired(ja *jwtauth.JWTAuth, sessions auth.SessionRepository) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, _, err := jwtauth.FromContext(r.Context())

			if err != nil {
				response.Unauthorized(w, err.Error())
				return
			}

			if token == nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			claims, err := token.AsMap(r.Context())
			if err != nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}
			tokenType, ok := claims["type"].(string)
			if tokenType != jwt.TokenTypeAccess || !ok {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			revoked, err := sessions.IsRevoked(r.Context(), jwtauth.TokenFromHeader(r))
			if err != nil {
				slog.Error("Failed to check token revocation", "error", err)
				response.HandleError(w, err)
				return
			}
			if revoked {
				response.HandleError(w, auth.ErrTokenRevoked)
				return
			}

			next.ServeHTTP(w, r)
		}
		return http.HandlerFunc(hfn)
	}
}

// UserID returns the id of the signed-in user.
func UserID(ctx context.Context) (int64, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return 0, auth.ErrInvalidToken
	}

	id, err := jwt.UserIDFromClaims(claims)
	if err != nil {
		return 0, auth.ErrInvalidToken
	}
	return id, nil
}

// Session returns the presented bearer token and its expiry.
func Session(r *http.Request) (auth.Session, error) {
	token, _, err := jwtauth.FromContext(r.Context())
	if err != nil || token == nil {
		return auth.Session{}, auth.ErrInvalidToken
	}

	raw := jwtauth.TokenFromHeader(r)
	if raw == "" {
		return auth.Session{}, auth.ErrInvalidToken
	}

	return auth.Session{Token: raw, ExpiresAt: token.Expiration()}, nil
}
