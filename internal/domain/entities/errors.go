package entities

import "errors"

// Engine error taxonomy. Every operation failure wraps exactly one of these
// classes so callers can branch with errors.Is; operation-specific sentinels
// live next to their use cases.
var (
	ErrForbidden    = errors.New("forbidden")     // authorization rule violated
	ErrInvalidState = errors.New("invalid state") // action not legal for the current status
	ErrConflict     = errors.New("conflict")      // asset already encumbered, or a concurrent transition won
	ErrNotFound     = errors.New("not found")     // unknown id reference
	ErrValidation   = errors.New("validation")    // malformed or out-of-range input
)
