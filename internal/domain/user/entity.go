package user

import "time"

// User is the account an identity authenticates as. Group names map to access roles.
type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string
	Groups       []string
	CreatedAt    time.Time
}
