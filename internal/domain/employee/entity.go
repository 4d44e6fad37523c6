package employee

import (
	"time"
)

type Employee struct {
	ID           string
	UserID       *string
	FirstName    string
	LastName     string
	Email        string
	Phone        string
	DepartmentID string
	Position     string
	JoinedDate   time.Time
	IsActive     bool

	// Join
	DepartmentName *string
}

// FullName renders the employee the way the dashboard lists them.
func (e Employee) FullName() string {
	if e.LastName == "" {
		return e.FirstName
	}
	return e.FirstName + " " + e.LastName
}

// IsLinked reports whether the employee has a linked user account.
func (e Employee) IsLinked() bool {
	return e.UserID != nil && *e.UserID != ""
}
