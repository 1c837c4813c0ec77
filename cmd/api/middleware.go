package main

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

type contextKey string

const emailCtxKey contextKey = "email"

// AuthTokenMiddleware is the authentication stage: it requires a
// "Bearer <token>" Authorization header and puts the verified claim email
// into the request context.
func (app *application) AuthTokenMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			app.unauthorizedErrorResponse(w, r, errors.New("authorization header is missing"))
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			app.unauthorizedErrorResponse(w, r, errors.New("authorization header is malformed"))
			return
		}

		token, err := app.authenticator.ValidateToken(parts[1])
		if err != nil {
			app.unauthorizedErrorResponse(w, r, err)
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			app.unauthorizedErrorResponse(w, r, errors.New("unexpected claims type"))
			return
		}

		email, ok := claims["sub"].(string)
		if !ok || email == "" {
			app.unauthorizedErrorResponse(w, r, errors.New("token has no subject"))
			return
		}

		ctx := context.WithValue(r.Context(), emailCtxKey, email)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// adminRequired is the authorization stage. It must run after
// AuthTokenMiddleware; the role is re-read on every request, so a demoted
// admin loses access immediately.
func (app *application) adminRequired(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		email := getAuthenticatedEmail(r.Context())

		isAdmin, err := app.userService.IsAdmin(r.Context(), email)
		if err != nil {
			app.internalServerError(w, r, err)
			return
		}

		if !isAdmin {
			app.forbiddenResponse(w, r)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (app *application) RateLimiterMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if app.config.rateLimiter.Enabled {
			if allow, retryAfter := app.rateLimiter.Allow(r.RemoteAddr); !allow {
				app.rateLimitExceededResponse(w, r, retryAfter.String())
				return
			}
		}

		next.ServeHTTP(w, r)
	})
}

func getAuthenticatedEmail(ctx context.Context) string {
	email, _ := ctx.Value(emailCtxKey).(string)
	return email
}
