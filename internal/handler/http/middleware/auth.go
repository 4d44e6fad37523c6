package middleware

import (
	"net/http"

	"github.com/cmlabs-hris/hris-attendance-go/internal/domain/access"
	"github.com/cmlabs-hris/hris-attendance-go/internal/domain/auth"
	"github.com/cmlabs-hris/hris-attendance-go/internal/handler/http/response"
	"github.com/cmlabs-hris/hris-attendance-go/internal/pkg/jwt"
	"github.com/go-chi/jwtauth/v5"
)

// AuthRequired rejects requests without a valid, unrevoked access token and places the
// caller's identity on the request context. It expects jwtauth.Verifier to run first.
func AuthRequired(jwtService jwt.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, claims, err := jwtauth.FromContext(r.Context())
			if err != nil {
				response.Unauthorized(w, err.Error())
				return
			}

			if token == nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			tokenType, ok := claims["type"].(string)
			if tokenType != jwt.TokenTypeAccess || !ok {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			raw := jwtauth.TokenFromHeader(r)
			if raw == "" {
				raw = jwtauth.TokenFromCookie(r)
			}
			if jwtService.IsTokenRevoked(raw) {
				response.HandleError(w, auth.ErrTokenRevoked)
				return
			}

			identity, ok := identityFromClaims(claims)
			if !ok {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			next.ServeHTTP(w, r.WithContext(access.WithIdentity(r.Context(), identity)))
		}
		return http.HandlerFunc(hfn)
	}
}

func identityFromClaims(claims map[string]any) (access.Identity, bool) {
	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return access.Identity{}, false
	}
	username, _ := claims["username"].(string)

	var groups []string
	switch raw := claims["groups"].(type) {
	case []any:
		for _, g := range raw {
			if name, ok := g.(string); ok {
				groups = append(groups, name)
			}
		}
	case []string:
		groups = raw
	}

	return access.Identity{UserID: userID, Username: username, Groups: groups}, true
}
