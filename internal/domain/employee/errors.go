package employee

import "errors"

var (
	ErrEmployeeNotFound   = errors.New("employee not found")
	ErrEmailExists        = errors.New("email already registered")
	ErrUserAlreadyLinked  = errors.New("user account is already linked to another employee")
	ErrInvalidPhoneNumber = errors.New("phone number must be 7-15 digits")
)
