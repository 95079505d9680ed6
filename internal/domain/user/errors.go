package user

import "errors"

var (
	// ErrUserNotFound is returned when a user id or login does not exist.
	ErrUserNotFound = errors.New("user not found")

	// ErrUserAlreadyExists is returned on a login-uniqueness violation.
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrEmptyLogin rejects logins that are empty after trimming.
	ErrEmptyLogin = errors.New("login must not be empty")

	// ErrEmptyPasswordHash rejects users without a password hash.
	ErrEmptyPasswordHash = errors.New("password hash must not be empty")
)
