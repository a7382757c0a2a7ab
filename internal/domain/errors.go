package domain

import "errors"

// Domain errors. Services wrap these with fmt.Errorf("%w: ...") to attach
// detail; errors.Is still classifies the wrapped form.
var (
	// Not found
	ErrEventNotFound   = errors.New("event not found")
	ErrRequestNotFound = errors.New("request not found")

	// Validation
	ErrInvalidPartySize = errors.New("party size must be at least 1")
	ErrNoteTooLong      = errors.New("note must be 500 characters or less")
	ErrInvalidExtension = errors.New("extension must be between 5 and 120 minutes")
	ErrInvalidStatus    = errors.New("unknown request status")

	// Forbidden
	ErrNotRequestOwner = errors.New("only the request owner may cancel it")

	// Conflict
	ErrDuplicatePending     = errors.New("already have a pending request")
	ErrInsufficientCapacity = errors.New("insufficient capacity")
	ErrInvalidTransition    = errors.New("invalid status transition")
	ErrHoldExpired          = errors.New("request hold has expired")
)

// IsNotFoundError checks if the error is a not found error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrEventNotFound) ||
		errors.Is(err, ErrRequestNotFound)
}

// IsValidationError checks if the error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidPartySize) ||
		errors.Is(err, ErrNoteTooLong) ||
		errors.Is(err, ErrInvalidExtension) ||
		errors.Is(err, ErrInvalidStatus)
}

// IsForbiddenError checks if the error is an authorization error
func IsForbiddenError(err error) bool {
	return errors.Is(err, ErrNotRequestOwner)
}

// IsConflictError checks if the error is a conflict error
func IsConflictError(err error) bool {
	return errors.Is(err, ErrDuplicatePending) ||
		errors.Is(err, ErrInsufficientCapacity) ||
		errors.Is(err, ErrInvalidTransition) ||
		errors.Is(err, ErrHoldExpired)
}
