package client

import "errors"

// ErrInvalidInput indicates a missing name or an unknown role.
var ErrInvalidInput = errors.New("invalid client input")

const msgInvalidInput = "A name and a valid role are required."
