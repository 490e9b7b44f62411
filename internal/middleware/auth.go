package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/forgo/chronicle/api/internal/model"
)

// ActorResolver turns an access token into the acting account. Resolution
// reads the account fresh so premium changes apply on the next request.
type ActorResolver interface {
	ResolveActor(ctx context.Context, token string) (model.Actor, error)
}

// Auth returns a middleware that requires a valid access token and places
// the resolved actor in the request context.
func Auth(resolver ActorResolver) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractToken(r)
			if token == "" {
				model.NewUnauthorizedError("missing access token").WriteJSON(w)
				return
			}

			actor, err := resolver.ResolveActor(r.Context(), token)
			if err != nil {
				model.NewUnauthorizedError("invalid or expired token").WriteJSON(w)
				return
			}

			ctx := context.WithValue(r.Context(), ActorKey, actor)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// extractToken reads the token from the Authorization header, falling back
// to the session cookie that the browser pages use.
func extractToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			return parts[1]
		}
		return ""
	}
	if cookie, err := r.Cookie("token"); err == nil {
		return cookie.Value
	}
	return ""
}

// GetActor extracts the authenticated actor from context
func GetActor(ctx context.Context) (model.Actor, bool) {
	actor, ok := ctx.Value(ActorKey).(model.Actor)
	return actor, ok
}
