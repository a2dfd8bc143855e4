package domain

import (
	"errors"
	"fmt"
)

// Error kinds. Callers may match either the kind or the specific error.
var (
	ErrStateConflict = errors.New("invalid session state")
	ErrValidation    = errors.New("validation failed")
)

var (
	ErrNoActiveSession      = fmt.Errorf("%w: no active session", ErrStateConflict)
	ErrSessionAlreadyActive = fmt.Errorf("%w: day already started", ErrStateConflict)

	ErrConsentRequired = fmt.Errorf("%w: consent required", ErrValidation)
	ErrUnknownPersona  = fmt.Errorf("%w: invalid persona", ErrValidation)
)
