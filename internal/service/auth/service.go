package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/cmlabs-hris/hris-attendance-go/internal/domain/access"
	"github.com/cmlabs-hris/hris-attendance-go/internal/domain/auth"
	"github.com/cmlabs-hris/hris-attendance-go/internal/domain/user"
	"github.com/cmlabs-hris/hris-attendance-go/internal/pkg/database"
	"github.com/cmlabs-hris/hris-attendance-go/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	tx database.Transactor
	user.UserRepository
	jwt.Service
	policy access.Policy
}

func NewAuthService(tx database.Transactor, userRepository user.UserRepository, jwtService jwt.Service, policy access.Policy) auth.AuthService {
	return &AuthServiceImpl{
		tx:             tx,
		UserRepository: userRepository,
		Service:        jwtService,
		policy:         policy,
	}
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	userData, err := a.UserRepository.GetByUsername(ctx, strings.TrimSpace(req.Username))
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get user by username: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(userData.PasswordHash), []byte(req.Password)); err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	var tokenResponse auth.TokenResponse
	tokenResponse.AccessToken, tokenResponse.AccessTokenExpiresIn, err = a.Service.GenerateAccessToken(userData.ID, userData.Username, userData.Groups)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}

	identity := access.Identity{UserID: userData.ID, Username: userData.Username, Groups: userData.Groups}
	tokenResponse.Username = userData.Username
	tokenResponse.Groups = userData.Groups
	tokenResponse.Role = string(a.policy.DeriveRole(identity))

	slog.Info("user logged in", "user_id", userData.ID, "role", tokenResponse.Role)
	return tokenResponse, nil
}

// Logout implements auth.AuthService.
func (a *AuthServiceImpl) Logout(ctx context.Context, token string) error {
	if token == "" {
		return auth.ErrInvalidToken
	}
	a.Service.RevokeToken(token)
	return nil
}

// CreateUser implements auth.AuthService.
func (a *AuthServiceImpl) CreateUser(ctx context.Context, req auth.CreateUserRequest) (auth.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.UserResponse{}, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return auth.UserResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	// The user row and its group memberships are written together or not at all.
	var created user.User
	err = a.tx.WithinTransaction(ctx, func(txCtx context.Context) error {
		var createErr error
		created, createErr = a.UserRepository.Create(txCtx, user.User{
			Username:     req.Username,
			Email:        req.Email,
			PasswordHash: string(hashed),
			Groups:       req.Groups,
		})
		return createErr
	})
	if err != nil {
		return auth.UserResponse{}, fmt.Errorf("failed to create user: %w", err)
	}

	return auth.UserResponse{
		ID:       created.ID,
		Username: created.Username,
		Email:    created.Email,
		Groups:   created.Groups,
	}, nil
}
