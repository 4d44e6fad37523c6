package access

import "context"

// Role is the coarse authorization tier derived from group membership.
type Role string

const (
	RoleAdmin  Role = "Admin"
	RoleHR     Role = "HR"
	RoleViewer Role = "Viewer"
	RoleNone   Role = ""
)

// RolePriority is the order in which group memberships are resolved to a single role.
var RolePriority = []Role{RoleAdmin, RoleHR, RoleViewer}

// LeaveManagers may list and approve/reject leave requests and maintain organization data.
var LeaveManagers = []Role{RoleAdmin, RoleHR}

// Identity is the authenticated actor making a request.
type Identity struct {
	UserID   string
	Username string
	Groups   []string
}

// InGroup reports whether the identity is a member of the named group.
func (i Identity) InGroup(name string) bool {
	for _, g := range i.Groups {
		if g == name {
			return true
		}
	}
	return false
}

// RoleSet holds every recognised role an identity belongs to.
type RoleSet map[Role]struct{}

func (s RoleSet) Has(role Role) bool {
	_, ok := s[role]
	return ok
}

// Policy derives roles and gates privileged operations.
type Policy interface {
	// DeriveRole returns the highest-priority role of the identity, or RoleNone.
	DeriveRole(identity Identity) Role
	// Roles returns all recognised roles of the identity.
	Roles(identity Identity) RoleSet
	// Authorize is true iff the identity belongs to at least one of required.
	Authorize(identity Identity, required ...Role) bool
}

type identityKey struct{}

// WithIdentity stores the identity on the request context.
func WithIdentity(ctx context.Context, identity Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, identity)
}

// IdentityFromContext returns the identity placed by the auth middleware.
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	identity, ok := ctx.Value(identityKey{}).(Identity)
	return identity, ok
}
