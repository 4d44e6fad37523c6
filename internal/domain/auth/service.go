package auth

import (
	"context"
)

type AuthService interface {
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)
	Logout(ctx context.Context, token string) error
	CreateUser(ctx context.Context, req CreateUserRequest) (UserResponse, error)
}
