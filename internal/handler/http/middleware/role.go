package middleware

import (
	"net/http"

	"github.com/cmlabs-hris/hris-attendance-go/internal/domain/access"
	"github.com/cmlabs-hris/hris-attendance-go/internal/handler/http/response"
)

// RequireRoles lets the request through when the caller holds at least one of roles.
func RequireRoles(policy access.Policy, roles ...access.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, ok := access.IdentityFromContext(r.Context())
			if !ok {
				response.HandleError(w, access.ErrMissingIdentity)
				return
			}

			if !policy.Authorize(identity, roles...) {
				response.HandleError(w, access.ErrForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
