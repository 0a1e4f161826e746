package session

import "errors"

var (
	// ErrUnknownProvider indicates a provider that is not enabled on the server.
	ErrUnknownProvider = errors.New("unknown auth provider")
	// ErrInvalidInput indicates missing credentials.
	ErrInvalidInput = errors.New("invalid session input")
)

const (
	msgCredentialsRequired = "Email and password are required."
	msgUnknownProvider     = "This sign-in provider is not available."
	msgAccountDeleted      = "Your account has been deleted."
)
