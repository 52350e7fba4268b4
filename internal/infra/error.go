package infra

import (
	"errors"

	"hotel-booking/internal/pkg/errs"

	"github.com/rs/zerolog"
)

type RepositoryErrorKind string

type RepositoryError struct {
	Kind RepositoryErrorKind
	msg  string
	err  error // wrapped low-level error
}

func (e RepositoryError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e RepositoryError) Unwrap() error {
	return e.err
}

func NewRepoErr(kind RepositoryErrorKind, msg string) error {
	return RepositoryError{Kind: kind, msg: msg}
}

// WrapRepoErr logs failures at error level; expected outcomes (not found,
// conflicts) are left to the caller to report.
func WrapRepoErr(logger zerolog.Logger, kind RepositoryErrorKind, msg string, err error) error {
	if kind == KindDBFailure || kind == KindStoreFailure {
		logger.Error().Err(err).Str("kind", string(kind)).Msg("Repository error: " + msg)
	}

	if err != nil {
		err = errs.Wrap(err, msg)
	}

	return RepositoryError{Kind: kind, msg: msg, err: err}
}

func IsKind(err error, kind RepositoryErrorKind) bool {
	var e RepositoryError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// Infrastructure-specific error kinds
const (
	KindNotFound           RepositoryErrorKind = "NOT_FOUND"
	KindDBFailure          RepositoryErrorKind = "DB_FAILURE"
	KindStoreFailure       RepositoryErrorKind = "STORE_FAILURE"
	KindDuplicateKey       RepositoryErrorKind = "DUPLICATE_KEY"
	KindVersionConflict    RepositoryErrorKind = "VERSION_CONFLICT"
	KindExclusionViolation RepositoryErrorKind = "EXCLUSION_VIOLATION"
)
