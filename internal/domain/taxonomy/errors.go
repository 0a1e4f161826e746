package taxonomy

import "errors"

// ErrInvalidInput indicates a marker without a value.
var ErrInvalidInput = errors.New("invalid taxonomy input")

const msgValueRequired = "A value is required."
