package validator

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/mkaraslan/cinema-hall-api/internal/domain"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

func NewValidator() *validator.Validate {
	validator := validator.New(validator.WithRequiredStructEnabled())

	validator.RegisterValidation("booking_window", validateBookingWindow)

	return validator
}

// validateBookingWindow checks that a date falls inside the rolling booking
// window, today+1 through today+8, evaluated against the server's current
// date.
func validateBookingWindow(fl validator.FieldLevel) bool {
	date, ok := fl.Field().Interface().(openapi_types.Date)
	if !ok {
		return false
	}

	return domain.InBookingWindow(time.Now(), date.Time)
}

// ValidationMessage converts validator errors into readable messages
func ValidationMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must be at least %s", err.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", err.Param())
	case "url":
		return "must be a valid URL"
	case "booking_window":
		return fmt.Sprintf("must be within the next %d days", domain.BookingWindowDays)
	default:
		return "is invalid"
	}
}
