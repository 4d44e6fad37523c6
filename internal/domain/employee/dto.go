package employee

import (
	"time"

	"github.com/cmlabs-hris/hris-attendance-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	UserID       *string `json:"user_id,omitempty"`
	FirstName    string  `json:"first_name"`
	LastName     string  `json:"last_name"`
	Email        string  `json:"email"`
	Phone        string  `json:"phone"`
	DepartmentID string  `json:"department_id"`
	Position     string  `json:"position"`
	JoinedDate   string  `json:"joined_date"`
	IsActive     *bool   `json:"is_active,omitempty"`

	// parsed by Validate
	joinedDate time.Time
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FirstName) {
		errs = append(errs, validator.ValidationError{
			Field:   "first_name",
			Message: "first_name is required",
		})
	}
	if len(r.FirstName) > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "first_name",
			Message: "first_name must not exceed 100 characters",
		})
	}
	if len(r.LastName) > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "last_name",
			Message: "last_name must not exceed 100 characters",
		})
	}

	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "invalid email format",
		})
	}

	if validator.IsEmpty(r.Phone) {
		errs = append(errs, validator.ValidationError{
			Field:   "phone",
			Message: "phone is required",
		})
	} else if !validator.IsValidPhoneNumber(r.Phone) {
		errs = append(errs, validator.ValidationError{
			Field:   "phone",
			Message: ErrInvalidPhoneNumber.Error(),
		})
	}

	if validator.IsEmpty(r.DepartmentID) {
		errs = append(errs, validator.ValidationError{
			Field:   "department_id",
			Message: "department_id is required",
		})
	}

	if validator.IsEmpty(r.Position) {
		errs = append(errs, validator.ValidationError{
			Field:   "position",
			Message: "position is required",
		})
	}

	if date, ok := validator.IsValidDate(r.JoinedDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "joined_date",
			Message: "joined_date must be in YYYY-MM-DD format",
		})
	} else {
		r.joinedDate = date
	}

	if r.UserID != nil && validator.IsEmpty(*r.UserID) {
		errs = append(errs, validator.ValidationError{
			Field:   "user_id",
			Message: "user_id must not be empty",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ToEntity builds the entity from a validated request.
func (r *CreateEmployeeRequest) ToEntity() Employee {
	active := true
	if r.IsActive != nil {
		active = *r.IsActive
	}
	return Employee{
		UserID:       r.UserID,
		FirstName:    r.FirstName,
		LastName:     r.LastName,
		Email:        r.Email,
		Phone:        r.Phone,
		DepartmentID: r.DepartmentID,
		Position:     r.Position,
		JoinedDate:   r.joinedDate,
		IsActive:     active,
	}
}

type EmployeeFilter struct {
	DepartmentID *string
	ActiveOnly   bool
}

type EmployeeResponse struct {
	ID             string  `json:"id"`
	UserID         *string `json:"user_id,omitempty"`
	FirstName      string  `json:"first_name"`
	LastName       string  `json:"last_name"`
	FullName       string  `json:"full_name"`
	Email          string  `json:"email"`
	Phone          string  `json:"phone"`
	DepartmentID   string  `json:"department_id"`
	DepartmentName *string `json:"department_name,omitempty"`
	Position       string  `json:"position"`
	JoinedDate     string  `json:"joined_date"`
	IsActive       bool    `json:"is_active"`
}

func ToResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:             e.ID,
		UserID:         e.UserID,
		FirstName:      e.FirstName,
		LastName:       e.LastName,
		FullName:       e.FullName(),
		Email:          e.Email,
		Phone:          e.Phone,
		DepartmentID:   e.DepartmentID,
		DepartmentName: e.DepartmentName,
		Position:       e.Position,
		JoinedDate:     e.JoinedDate.Format("2006-01-02"),
		IsActive:       e.IsActive,
	}
}
