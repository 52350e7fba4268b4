package httperr

import (
	"context"
	"errors"
	"net/http"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for the logging middleware
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		err = errors.New(msg)
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// Abort maps a use case error onto its HTTP status.
func Abort(c *gin.Context, err error) {
	var (
		validation *booking.ValidationError
		duplicate  *booking.DuplicateBookingError
		transition *booking.TransitionError
	)
	switch {
	case errors.As(err, &validation):
		AbortWithError(c, http.StatusBadRequest, err, "Invalid request", gin.H{"field": validation.Field, "reason": validation.Message})
	case errors.As(err, &duplicate):
		AbortWithError(c, http.StatusConflict, err, "Overlapping booking exists", gin.H{"reference": duplicate.Reference})
	case errors.As(err, &transition):
		AbortWithError(c, http.StatusConflict, err, "Invalid status transition", gin.H{"from": transition.From.String(), "to": transition.To.String()})
	case errors.Is(err, errs.ErrBookingNotFound):
		AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
	case errors.Is(err, errs.ErrSearchDocumentNotFound):
		AbortWithError(c, http.StatusNotFound, err, "Search document not found", nil)
	case errors.Is(err, booking.ErrNotModifiable):
		AbortWithError(c, http.StatusConflict, err, "Booking cannot be modified", nil)
	case errors.Is(err, booking.ErrNotCancellable):
		AbortWithError(c, http.StatusConflict, err, "Booking cannot be cancelled", nil)
	case errors.Is(err, errs.ErrConcurrentModification):
		AbortWithError(c, http.StatusConflict, err, "Booking was modified concurrently", nil)
	case errors.Is(err, errs.ErrSyncInProgress):
		AbortWithError(c, http.StatusConflict, err, "Search synchronization already running", nil)
	case errors.Is(err, booking.ErrTooEarly):
		AbortWithError(c, http.StatusUnprocessableEntity, err, "Check-in is not open yet", nil)
	case errors.Is(err, errs.ErrSyncFailure),
		errors.Is(err, errs.ErrSearchOperationFailed),
		errors.Is(err, context.DeadlineExceeded):
		AbortWithError(c, http.StatusServiceUnavailable, err, "Service unavailable", nil)
	default:
		AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
	}
}
