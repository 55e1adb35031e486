package domain

import "errors"

var (
	// ErrInvalidInput rejects structurally malformed requests before any
	// store access (empty fields, length limits, bad enum values).
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidCredentials is returned for every login failure. It is
	// deliberately undifferentiated: callers cannot tell an unknown
	// identifier from a wrong password.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUnauthorized covers missing, unknown, and expired sessions alike.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden means the session is valid but its role is insufficient.
	ErrForbidden = errors.New("access forbidden")

	// ErrCorruptDigest signals a structurally malformed password digest in
	// the store. It is an internal invariant violation, never user input.
	ErrCorruptDigest = errors.New("corrupt password digest")

	ErrUserExists           = errors.New("username or email already exists")
	ErrUserNotFound         = errors.New("user not found")
	ErrAnnouncementNotFound = errors.New("announcement not found")
	ErrContactNotFound      = errors.New("contact not found")
)
