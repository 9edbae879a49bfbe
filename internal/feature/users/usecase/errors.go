// Package usecase implements the business logic for the users feature.
package usecase

import "errors"

var (
	// ErrUserNotFound is returned when no user matches the given ID or email.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailAlreadyRegistered is returned when creating a user whose email is already taken.
	ErrEmailAlreadyRegistered = errors.New("email already registered")
)
