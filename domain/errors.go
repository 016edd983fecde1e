package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInternalServerError will throw if any the Internal Server Error happen
	ErrInternalServerError = errors.New("internal server error")
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("your requested item is not found")
	// ErrForbidden will throw if the user does not own the resource it tries to mutate
	ErrForbidden = errors.New("you are not allowed to access this resource")
	// ErrUnauthorized will throw if the request carries no valid credentials
	ErrUnauthorized = errors.New("missing or invalid authentication")
	// ErrInvariant will throw if storage did not keep one of its invariants, e.g. a failed like insert
	ErrInvariant = errors.New("storage invariant violated")
	// ErrNotImplemented is returned by the Unimplemented* repositories
	ErrNotImplemented = errors.New("method not implemented")

	// ErrMissingProperty means a required property is absent or empty
	ErrMissingProperty = errors.New("payload did not contain needed property")
	// ErrInvalidType means a property is present but does not have the expected type
	ErrInvalidType = errors.New("payload did not meet data type specification")
)

// ValidationError is raised by entity validation, before any storage access.
// Kind is either ErrMissingProperty or ErrInvalidType.
type ValidationError struct {
	Entity string
	Field  string
	Kind   error
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: %v", e.Entity, e.Kind)
	}
	return fmt.Sprintf("%s: %s: %v", e.Entity, e.Field, e.Kind)
}

func (e *ValidationError) Unwrap() error {
	return e.Kind
}

// IsValidationError reports whether err carries a *ValidationError.
func IsValidationError(err error) bool {
	var verr *ValidationError
	return errors.As(err, &verr)
}
