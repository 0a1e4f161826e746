package translation

import "errors"

// ErrInvalidInput indicates a missing locale code.
var ErrInvalidInput = errors.New("invalid translation input")

const msgLocaleRequired = "A locale is required."
