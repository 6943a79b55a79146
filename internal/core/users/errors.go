package users

import "errors"

var (
	// ErrUserNotFound indicates the requested user doesn't exist
	ErrUserNotFound = errors.New("user not found")
)
