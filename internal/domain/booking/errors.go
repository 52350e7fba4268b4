package booking

import (
	"errors"
	"fmt"
)

var (
	ErrValidation        = errors.New("booking validation failed")
	ErrDuplicateBooking  = errors.New("overlapping booking already exists")
	ErrNotModifiable     = errors.New("booking cannot be modified in its current status")
	ErrNotCancellable    = errors.New("booking cannot be cancelled in its current status")
	ErrTooEarly          = errors.New("check-in is not allowed before the check-in date")
	ErrInvalidTransition = errors.New("invalid booking status transition")
	ErrInvalidStatus     = errors.New("invalid booking status")
	ErrInvalidPrefix     = errors.New("reference prefix must be uppercase letters")
)

// ValidationError names the first rule a proposal broke.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func invalid(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// DuplicateBookingError carries the reference of the booking already holding the window.
// Cause is the store error that surfaced the conflict, if any.
type DuplicateBookingError struct {
	Reference string
	Cause     error
}

func (e *DuplicateBookingError) Error() string {
	if e.Reference == "" {
		return ErrDuplicateBooking.Error()
	}
	return fmt.Sprintf("%s: %s", ErrDuplicateBooking.Error(), e.Reference)
}

func (e *DuplicateBookingError) Is(target error) bool {
	return target == ErrDuplicateBooking
}

func (e *DuplicateBookingError) Unwrap() error {
	return e.Cause
}

// TransitionError reports a move the state machine does not allow.
type TransitionError struct {
	From Status
	To   Status
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("%s: %s -> %s", ErrInvalidTransition.Error(), e.From, e.To)
}

func (e *TransitionError) Is(target error) bool {
	return target == ErrInvalidTransition
}
