package term

import "errors"

// ErrInvalidInput indicates a term without a value.
var ErrInvalidInput = errors.New("invalid term input")

const msgValueRequired = "Term value is required."
