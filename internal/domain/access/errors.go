package access

import "errors"

var (
	ErrForbidden       = errors.New("insufficient permissions")
	ErrMissingIdentity = errors.New("identity not found in request context")
)
