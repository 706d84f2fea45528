package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/kunalm01/ibe-engine/internal/pkg/jwt"
	"github.com/kunalm01/ibe-engine/internal/pkg/response"
)

type contextKey string

const (
	EmailKey contextKey = "email"
	NameKey  contextKey = "name"
)

// Auth returns middleware that validates the identity provider token and
// puts the email claim in context. Required on booking-management routes.
func Auth(jwtService *jwt.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				response.Unauthorized(w, "Missing authorization header")
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
				response.Unauthorized(w, "Invalid authorization header format")
				return
			}

			claims, err := jwtService.ParseIdentityToken(parts[1])
			if err != nil {
				if err == jwt.ErrExpiredToken {
					response.Unauthorized(w, "Token expired")
				} else {
					response.Unauthorized(w, "Invalid token")
				}
				return
			}

			ctx := context.WithValue(r.Context(), EmailKey, claims.Email)
			ctx = context.WithValue(ctx, NameKey, claims.Name)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetEmail extracts the authenticated email from context.
func GetEmail(ctx context.Context) string {
	if email, ok := ctx.Value(EmailKey).(string); ok {
		return email
	}
	return ""
}

// GetName extracts the authenticated display name from context.
func GetName(ctx context.Context) string {
	if name, ok := ctx.Value(NameKey).(string); ok {
		return name
	}
	return ""
}
