package ollsolve

import "errors"

// Sentinel errors for the ollsolve package.
var (
	// Parsing errors
	ErrMalformedToken = errors.New("ollsolve: malformed move token")
	ErrUnknownMove    = errors.New("ollsolve: unknown face or axis")
	ErrInvalidState   = errors.New("ollsolve: invalid cube state")
	ErrInvalidPattern = errors.New("ollsolve: invalid OLL pattern")

	// Database errors
	ErrBadTransition = errors.New("ollsolve: disallowed classification transition")

	// Search errors
	ErrSearchExhausted = errors.New("ollsolve: search exhausted within budget")
)
