package services

import "errors"

// Errors the controllers turn into form errors or redirects. Anything
// else coming out of a service is an unexpected data-layer failure.
var (
	ErrEmailInUse         = errors.New("email address already in use")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrPasswordTooLong    = errors.New("password too long")
)
