package userservice

import "errors"

var (
	// ErrUserNotFound UserService doesn't know the user
	ErrUserNotFound = errors.New("userservice client: user not found")

	// ErrInternal request could not be made
	ErrInternal = errors.New("userservice client: internal error")

	// ErrInvalidResponse unexpected status or body
	ErrInvalidResponse = errors.New("userservice client: invalid response")

	// ErrServiceDegraded UserService is unavailable, roles can't be checked
	ErrServiceDegraded = errors.New("userservice unavailable: graceful degradation applied")
)
