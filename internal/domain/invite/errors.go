package invite

import "errors"

// ErrInvalidInput indicates a missing email or an unknown role.
var ErrInvalidInput = errors.New("invalid invite input")

const msgInvalidInput = "An email and a valid role are required."
