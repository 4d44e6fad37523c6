package user

import (
	"context"
)

type UserRepository interface {
	// GetByUsername returns the user together with its group memberships.
	GetByUsername(ctx context.Context, username string) (User, error)
	// Create stores the user and its groups.
	Create(ctx context.Context, newUser User) (User, error)
	// SetGroups replaces the user's group memberships.
	SetGroups(ctx context.Context, userID string, groups []string) error
}
