// Package common defines sentinel errors shared by the userseed packages.
// Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Store-level errors.
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")

	// Validation errors.
	ErrValidation = errors.New("validation error")

	// Input errors.
	ErrEmptyInput     = errors.New("empty input")
	ErrUnknownFormat  = errors.New("unknown export format")
	ErrNoOrganization = errors.New("organization is not set")
)
