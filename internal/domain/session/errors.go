package session

import "errors"

var (
	// ErrEmptyToken is returned when a login transition supplies no token.
	ErrEmptyToken = errors.New("token must not be empty")
)
