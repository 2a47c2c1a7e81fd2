package radix

import "errors"

// Errors returned by the package.
// They are always wrapped with additional context, use [errors.Is] to test for them.
var (
	ErrDivisionByZero   = errors.New("division by zero")
	ErrInvalidArgument  = errors.New("invalid argument")
	ErrInvalidFormat    = errors.New("invalid format")
	ErrInvalidCharacter = errors.New("invalid character")
	ErrDigitOutOfRange  = errors.New("digit out of range")
	ErrUnsupportedBase  = errors.New("unsupported base")
)

// errInvariant signals a broken internal invariant, not a bad input.
var errInvariant = errors.New("internal invariant violated")
