package domain

import "errors"

// Error kinds surfaced by the services. The HTTP layer maps each kind to a
// status code; everything else is treated as an internal failure.
var (
	ErrUnauthenticated      = errors.New("unauthenticated")
	ErrForbidden            = errors.New("forbidden")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrEmailTaken           = errors.New("email already exists")
	ErrInvalidOperation     = errors.New("invalid operation")
	ErrDuplicateApplication = errors.New("already applied to this job")
	ErrMissingReason        = errors.New("rejection requires a response note")
	ErrInvalidStatus        = errors.New("invalid status value")
	ErrApplicationNotFound  = errors.New("application not found")
	ErrJobNotFound          = errors.New("job not found")
	ErrUserNotFound         = errors.New("user not found")
	ErrValidation           = errors.New("validation failed")
)
