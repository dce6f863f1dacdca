package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"tms/internal/entities"
)

type contextKey struct{}

var actorKey contextKey

type Claims struct {
	Name       string `json:"name"`
	Role       string `json:"role"`
	UserTypeID string `json:"userTypeId"`
	jwt.RegisteredClaims
}

// Middleware authenticates requests with an HS256 bearer token and puts the
// resulting actor into the request context.
func Middleware(secret string) func(http.Handler) http.Handler {
	key := []byte(secret)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			claims := &Claims{}
			token, err := jwt.ParseWithClaims(
				strings.TrimPrefix(header, "Bearer "),
				claims,
				func(_ *jwt.Token) (interface{}, error) { return key, nil },
				jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			)
			if err != nil || !token.Valid || claims.Subject == "" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			actor := entities.Actor{
				ID:         claims.Subject,
				Name:       claims.Name,
				Role:       claims.Role,
				UserTypeID: claims.UserTypeID,
			}

			next.ServeHTTP(w, r.WithContext(WithActor(r.Context(), actor)))
		})
	}
}

func WithActor(ctx context.Context, actor entities.Actor) context.Context {
	return context.WithValue(ctx, actorKey, actor)
}

// ActorFromContext returns the authenticated actor, false when the request
// did not pass the middleware.
func ActorFromContext(ctx context.Context) (entities.Actor, bool) {
	actor, ok := ctx.Value(actorKey).(entities.Actor)
	return actor, ok
}
