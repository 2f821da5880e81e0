package errs

import "errors"

// Domain sentinel errors. All are expected outcomes of user input, matched
// with errors.Is by the handler layer and translated to HTTP statuses.
var (
	// Room registry
	ErrRoomNotFound     = errors.New("room not found")
	ErrRoomInUse        = errors.New("room has existing reservations")
	ErrDomainValidation = errors.New("domain validation error")

	// Booking transaction
	ErrInvalidInterval      = errors.New("invalid interval")
	ErrPastDate             = errors.New("booking date is in the past")
	ErrOutsideBusinessHours = errors.New("booking outside business hours")
	ErrSlotUnavailable      = errors.New("slot unavailable")
	ErrReservationNotFound  = errors.New("reservation not found")
	ErrNotAuthorized        = errors.New("not authorized")

	// Auth
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserInactive       = errors.New("user account is inactive")
	ErrTokenGeneration    = errors.New("token generation failed")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
