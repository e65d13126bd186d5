package actions

import "errors"

// Validation errors raised by the action layer itself, always before any
// network call is made. Everything an encoder or the submission layer
// returns is propagated unchanged and is not wrapped in these.
var (
	// ErrMissingField is returned when a required parameter field is
	// absent (including a required transaction override like Value).
	ErrMissingField = errors.New("missing required field")
	// ErrNoResolver is returned when an operation needs a resolver, none
	// was supplied and the name has none set in the registry.
	ErrNoResolver = errors.New("name has no resolver")
	// ErrBadTarget is returned when an operation is asked to go through a
	// contract that can't perform it (like reclaiming through the registry).
	ErrBadTarget = errors.New("operation not supported by target contract")
)
