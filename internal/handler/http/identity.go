package http

import (
	"net/http"

	"github.com/cmlabs-hris/hris-attendance-go/internal/domain/access"
	"github.com/cmlabs-hris/hris-attendance-go/internal/handler/http/response"
)

// requireIdentity reads the caller placed on the context by middleware.AuthRequired and
// writes a 401 when it is missing.
func requireIdentity(w http.ResponseWriter, r *http.Request) (access.Identity, bool) {
	identity, ok := access.IdentityFromContext(r.Context())
	if !ok {
		response.HandleError(w, access.ErrMissingIdentity)
		return access.Identity{}, false
	}
	return identity, true
}
