package tree

import "github.com/cockroachdb/errors"

var (
	// ErrInvalidInput indicates a character outside A-Z and '#'.
	ErrInvalidInput = errors.New("tree: invalid input (only A-Z and '#' are allowed)")

	// ErrMalformedEncoding indicates character-legal input whose structure is
	// incomplete or has characters left over once the root is closed.
	ErrMalformedEncoding = errors.New("tree: malformed encoding")
)
