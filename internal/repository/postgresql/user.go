package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/hris-attendance-go/internal/domain/user"
	"github.com/cmlabs-hris/hris-attendance-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type userRepositoryImpl struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) user.UserRepository {
	return &userRepositoryImpl{db: db}
}

// GetByUsername implements user.UserRepository.
func (r *userRepositoryImpl) GetByUsername(ctx context.Context, username string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT u.id, u.username, u.email, u.password_hash, u.created_at,
			   COALESCE(ARRAY_AGG(g.group_name ORDER BY g.group_name) FILTER (WHERE g.group_name IS NOT NULL), '{}')
		FROM users u
		LEFT JOIN user_groups g ON g.user_id = u.id
		WHERE u.username = $1
		GROUP BY u.id
	`

	var u user.User
	err := q.QueryRow(ctx, query, username).Scan(
		&u.ID,
		&u.Username,
		&u.Email,
		&u.PasswordHash,
		&u.CreatedAt,
		&u.Groups,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("failed to get user by username: %w", err)
	}
	return u, nil
}

// Create implements user.UserRepository.
func (r *userRepositoryImpl) Create(ctx context.Context, newUser user.User) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	id, err := uuid.NewV7()
	if err != nil {
		return user.User{}, fmt.Errorf("generate user id: %w", err)
	}

	query := `
		INSERT INTO users (id, username, email, password_hash)
		VALUES ($1, $2, $3, $4)
		RETURNING id, username, email, password_hash, created_at
	`

	var created user.User
	err = q.QueryRow(ctx, query, id.String(), newUser.Username, newUser.Email, newUser.PasswordHash).Scan(
		&created.ID,
		&created.Username,
		&created.Email,
		&created.PasswordHash,
		&created.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err, "users_username_key") {
			return user.User{}, user.ErrUsernameExists
		}
		return user.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	if err := r.SetGroups(ctx, created.ID, newUser.Groups); err != nil {
		return user.User{}, err
	}
	created.Groups = append([]string{}, newUser.Groups...)

	return created, nil
}

// SetGroups implements user.UserRepository.
func (r *userRepositoryImpl) SetGroups(ctx context.Context, userID string, groups []string) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `DELETE FROM user_groups WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("failed to clear user groups: %w", err)
	}
	if len(groups) == 0 {
		return nil
	}

	query := `
		INSERT INTO user_groups (user_id, group_name)
		SELECT $1, UNNEST($2::text[])
		ON CONFLICT DO NOTHING
	`
	if _, err := q.Exec(ctx, query, userID, groups); err != nil {
		return fmt.Errorf("failed to set user groups: %w", err)
	}
	return nil
}
