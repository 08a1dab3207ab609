package handler

import (
	"context"
	"errors"
	"net/http"

	bookingserrors "roombook/internal/bookings/errors"
	"roombook/internal/bookings/validator"
	apperrors "roombook/pkg/errors"

	"github.com/samber/lo"
)

// toAppError maps booking error kinds to HTTP-facing errors. The cause stays
// wrapped so errors.Is keeps working on the result.
func toAppError(err error) *apperrors.AppError {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		details := lo.SliceToMap(validationErrs, func(v validator.ValidationError) (string, any) {
			return v.Field, v.Message
		})
		return apperrors.Validation("Booking validation failed", details)
	}

	switch {
	case errors.Is(err, bookingserrors.ErrRoomNotFound),
		errors.Is(err, bookingserrors.ErrBookingNotFound):
		return apperrors.Wrap(err, apperrors.CodeNotFound, err.Error(), http.StatusNotFound)
	case errors.Is(err, bookingserrors.ErrStartInPast),
		errors.Is(err, bookingserrors.ErrInvalidOrder),
		errors.Is(err, bookingserrors.ErrTooLong):
		return apperrors.Wrap(err, apperrors.CodeInvalidInput, err.Error(), http.StatusBadRequest)
	case errors.Is(err, bookingserrors.ErrOverlap):
		return apperrors.Wrap(err, apperrors.CodeConflict, err.Error(), http.StatusConflict)
	case errors.Is(err, context.DeadlineExceeded):
		return apperrors.Timeout("Request timed out")
	default:
		return apperrors.Internal("Failed to process booking request", err)
	}
}
