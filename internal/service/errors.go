package service

import "errors"

// Domain error kinds. Callers distinguish these from store failures, which
// propagate unwrapped: a sentinel match means the input was wrong, anything
// else means the system could not read or save.
var (
	// ErrInvalidInput reports malformed or out-of-range arguments.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNoChange reports a progress update whose value equals the stored one.
	ErrNoChange = errors.New("no change")

	// ErrNotFound reports a lookup by id that matched nothing.
	ErrNotFound = errors.New("not found")
)
