package access

import (
	"github.com/cmlabs-hris/hris-attendance-go/internal/domain/access"
)

// GroupPolicy maps group names one-to-one onto roles.
type GroupPolicy struct{}

func NewGroupPolicy() access.Policy {
	return GroupPolicy{}
}

// DeriveRole implements access.Policy.
func (GroupPolicy) DeriveRole(identity access.Identity) access.Role {
	for _, role := range access.RolePriority {
		if identity.InGroup(string(role)) {
			return role
		}
	}
	return access.RoleNone
}

// Roles implements access.Policy.
func (GroupPolicy) Roles(identity access.Identity) access.RoleSet {
	set := access.RoleSet{}
	for _, role := range access.RolePriority {
		if identity.InGroup(string(role)) {
			set[role] = struct{}{}
		}
	}
	return set
}

// Authorize implements access.Policy.
func (p GroupPolicy) Authorize(identity access.Identity, required ...access.Role) bool {
	roles := p.Roles(identity)
	for _, role := range required {
		if roles.Has(role) {
			return true
		}
	}
	return false
}
