package services

import "errors"

var (
	// ErrValidation marks malformed or missing caller input.
	ErrValidation = errors.New("invalid request data")

	// ErrInvalidCredentials is returned for every failed login, whether
	// the username is unknown or the password does not verify. Callers
	// must not be able to tell the two apart.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrFileTooLarge is returned when an upload exceeds the configured
	// size limit.
	ErrFileTooLarge = errors.New("uploaded file too large")
)
