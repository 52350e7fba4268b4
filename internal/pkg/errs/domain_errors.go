package errs

import "errors"

// Sentinel errors shared by the usecase layers and the HTTP adapter
var (
	// Booking errors
	ErrBookingNotFound        = errors.New("booking not found")
	ErrConcurrentModification = errors.New("booking was modified concurrently")
	ErrGenerationExhausted    = errors.New("booking identifier generation exhausted")

	// Search errors
	ErrSearchDocumentNotFound = errors.New("search document not found")
	ErrSyncFailure            = errors.New("search synchronization failed")
	ErrSyncInProgress         = errors.New("search synchronization already running")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
	ErrSearchOperationFailed   = errors.New("search store operation failed")
)
