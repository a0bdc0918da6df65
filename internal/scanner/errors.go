package scanner

import (
	"errors"
	"fmt"
)

// ErrInvalidKey indicates a key segment that is not terminated by ':'
// before the input ends.
var ErrInvalidKey = errors.New("invalid key")

// ErrInvalidValue indicates a value segment with a missing opening quote,
// a missing closing quote, or an unsupported escape sequence.
var ErrInvalidValue = errors.New("invalid value")

func scanError(sentinel error, format string, args ...any) error {
	return fmt.Errorf("%w: %s", sentinel, fmt.Sprintf(format, args...))
}
