package team

import "errors"

// ErrInvalidRole indicates a role outside admin, editor and viewer.
var ErrInvalidRole = errors.New("invalid role")

const msgInvalidRole = "Choose a valid role."
