package validator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	bookingserrors "roombook/internal/bookings/errors"
	"roombook/pkg/logger"
	"roombook/pkg/model"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

// DefaultMaxDuration is the longest a single booking may last.
const DefaultMaxDuration = 4 * time.Hour

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (v ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", v.Field, v.Message)
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	if len(v) == 0 {
		return ""
	}
	var messages []string
	for _, err := range v {
		messages = append(messages, err.Error())
	}
	return fmt.Sprintf("validation failed: %d error(s): [%s]", len(v), strings.Join(messages, "; "))
}

type BookingValidator struct {
	validate    *validator.Validate
	maxDuration time.Duration
	logger      *logger.Logger
}

func NewBookingValidator(log *logger.Logger, maxDuration time.Duration) *BookingValidator {
	v := validator.New()
	v.RegisterTagNameFunc(jsonFieldName)

	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		log.Fatal("Failed to register 'notblank' validator",
			"error", err,
		)
	}

	if maxDuration <= 0 {
		maxDuration = DefaultMaxDuration
	}

	log.Info("Booking validator initialized successfully", "max_duration", maxDuration)

	return &BookingValidator{
		validate:    v,
		maxDuration: maxDuration,
		logger:      log,
	}
}

func jsonFieldName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	return name
}

func (v *BookingValidator) MaxDuration() time.Duration {
	return v.maxDuration
}

// ValidateCreate checks the request shape only; time rules are applied by
// ValidateWindow against the store state.
func (v *BookingValidator) ValidateCreate(req *model.BookingCreate) error {
	return v.validateStruct(req)
}

func (v *BookingValidator) ValidateUpdate(req *model.BookingUpdate) error {
	return v.validateStruct(req)
}

// ValidateWindow applies the temporal rules in order: not in the past, start
// before end, within the maximum duration. Starting exactly at now is allowed.
func (v *BookingValidator) ValidateWindow(start, end, now time.Time) error {
	if start.Before(now) {
		return fmt.Errorf("%w: start %s is before %s",
			bookingserrors.ErrStartInPast, start.Format(time.RFC3339), now.Format(time.RFC3339))
	}

	if !start.Before(end) {
		return fmt.Errorf("%w: start %s, end %s",
			bookingserrors.ErrInvalidOrder, start.Format(time.RFC3339), end.Format(time.RFC3339))
	}

	if duration := end.Sub(start); duration > v.maxDuration {
		return fmt.Errorf("%w: %s is longer than %s",
			bookingserrors.ErrTooLong, duration, v.maxDuration)
	}

	return nil
}

func (v *BookingValidator) validateStruct(s any) error {
	if err := v.validate.Struct(s); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return v.translateValidationErrors(validationErrs)
		}
		return err
	}
	return nil
}

func (v *BookingValidator) translateValidationErrors(errs validator.ValidationErrors) ValidationErrors {
	var validationErrors ValidationErrors

	for _, err := range errs {
		message := err.Error()

		switch err.Tag() {
		case "required":
			message = fmt.Sprintf("%s is required", err.Field())
		case "notblank":
			message = fmt.Sprintf("%s cannot be blank", err.Field())
		case "max":
			message = fmt.Sprintf("%s must be at most %s characters", err.Field(), err.Param())
		}

		validationErrors = append(validationErrors, ValidationError{
			Field:   err.Field(),
			Message: message,
		})
	}

	return validationErrors
}
