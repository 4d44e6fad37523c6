package access

import (
	"testing"

	"github.com/cmlabs-hris/hris-attendance-go/internal/domain/access"
	"github.com/stretchr/testify/assert"
)

func TestGroupPolicy_DeriveRole(t *testing.T) {
	policy := NewGroupPolicy()

	cases := []struct {
		name   string
		groups []string
		want   access.Role
	}{
		{"admin only", []string{"Admin"}, access.RoleAdmin},
		{"hr only", []string{"HR"}, access.RoleHR},
		{"viewer only", []string{"Viewer"}, access.RoleViewer},
		{"admin wins over hr", []string{"HR", "Admin"}, access.RoleAdmin},
		{"hr wins over viewer", []string{"Viewer", "HR"}, access.RoleHR},
		{"unknown groups", []string{"Finance"}, access.RoleNone},
		{"no groups", nil, access.RoleNone},
		{"case sensitive", []string{"admin"}, access.RoleNone},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := policy.DeriveRole(access.Identity{Username: "u", Groups: tc.groups})
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestGroupPolicy_Roles(t *testing.T) {
	policy := NewGroupPolicy()

	roles := policy.Roles(access.Identity{Groups: []string{"Viewer", "HR", "Finance"}})
	assert.Len(t, roles, 2)
	assert.True(t, roles.Has(access.RoleHR))
	assert.True(t, roles.Has(access.RoleViewer))
	assert.False(t, roles.Has(access.RoleAdmin))
}

func TestGroupPolicy_Authorize(t *testing.T) {
	policy := NewGroupPolicy()

	hr := access.Identity{Groups: []string{"HR"}}
	viewer := access.Identity{Groups: []string{"Viewer"}}
	both := access.Identity{Groups: []string{"Viewer", "Admin"}}

	assert.True(t, policy.Authorize(hr, access.LeaveManagers...))
	assert.False(t, policy.Authorize(viewer, access.LeaveManagers...))
	assert.True(t, policy.Authorize(both, access.LeaveManagers...))
	assert.False(t, policy.Authorize(hr), "no required roles grants nothing")
	assert.False(t, policy.Authorize(access.Identity{}, access.RoleViewer))
}
