package auth

import "github.com/cmlabs-hris/hris-attendance-go/internal/pkg/validator"

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Username) {
		errs = append(errs, validator.ValidationError{
			Field:   "username",
			Message: "username is required",
		})
	}
	if len(r.Username) > 150 {
		errs = append(errs, validator.ValidationError{
			Field:   "username",
			Message: "username must not exceed 150 characters",
		})
	}

	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type TokenResponse struct {
	AccessToken          string   `json:"access_token"`
	AccessTokenExpiresIn int64    `json:"access_token_expires_in"`
	Username             string   `json:"username"`
	Groups               []string `json:"groups"`
	Role                 string   `json:"role"`
}

// CreateUserRequest provisions an account from the command line.
type CreateUserRequest struct {
	Username string
	Email    string
	Password string
	Groups   []string
}

func (r *CreateUserRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUsername(r.Username) {
		errs = append(errs, validator.ValidationError{
			Field:   "username",
			Message: "username must be 3-50 characters of letters, digits, '.', '_' or '-'",
		})
	}
	if r.Email != "" && !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "invalid email format",
		})
	}
	if len(r.Password) < 8 {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must be at least 8 characters",
		})
	}
	for _, g := range r.Groups {
		if validator.IsEmpty(g) {
			errs = append(errs, validator.ValidationError{
				Field:   "groups",
				Message: "group names must not be empty",
			})
			break
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UserResponse struct {
	ID       string   `json:"id"`
	Username string   `json:"username"`
	Email    string   `json:"email"`
	Groups   []string `json:"groups"`
}
