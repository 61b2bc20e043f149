// Package auth admits requests that carry a bearer token signed with the
// configured HMAC key and puts the token and its organization into the
// request context.
package auth

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/render"
	"github.com/golang-jwt/jwt/v5"

	"eventAdmin/internal/lib/api/response"
	"eventAdmin/internal/lib/clock"
	"eventAdmin/internal/lib/logger/sl"
	"eventAdmin/internal/lib/session"
)

const bearerPrefix = "Bearer "

// organizationClaims are tried in order; sub scopes personal accounts.
var organizationClaims = []string{"organization_id", "organizationId", "sub"}

var errUnexpectedMethod = errors.New("unexpected signing method")

func New(log *slog.Logger, clk clock.Clock, secret []byte) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		log := log.With(slog.String("component", "middleware/auth"))

		parser := jwt.NewParser(
			jwt.WithValidMethods([]string{"HS256", "HS384", "HS512"}),
			jwt.WithTimeFunc(clk.Now),
		)
		keyFunc := func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errUnexpectedMethod
			}
			return secret, nil
		}

		fn := func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, bearerPrefix) || strings.TrimSpace(header[len(bearerPrefix):]) == "" {
				unauthorized(w, r, "authorization header is required")
				return
			}
			raw := strings.TrimSpace(header[len(bearerPrefix):])

			claims := jwt.MapClaims{}
			token, err := parser.ParseWithClaims(raw, claims, keyFunc)
			if err != nil {
				if errors.Is(err, jwt.ErrTokenExpired) {
					unauthorized(w, r, "access token has expired")
					return
				}
				log.Info("rejected token", sl.Err(err))
				unauthorized(w, r, "invalid access token")
				return
			}
			if !token.Valid {
				unauthorized(w, r, "invalid access token")
				return
			}

			org := organization(claims)
			if org == "" {
				unauthorized(w, r, "token carries no organization")
				return
			}

			ctx := session.WithToken(r.Context(), raw)
			ctx = session.WithOrganization(ctx, org)

			next.ServeHTTP(w, r.WithContext(ctx))
		}

		return http.HandlerFunc(fn)
	}
}

func organization(claims jwt.MapClaims) string {
	for _, name := range organizationClaims {
		if v, ok := claims[name].(string); ok && v != "" {
			return v
		}
	}
	return ""
}

func unauthorized(w http.ResponseWriter, r *http.Request, msg string) {
	render.Status(r, http.StatusUnauthorized)
	render.JSON(w, r, response.Error(msg))
}
