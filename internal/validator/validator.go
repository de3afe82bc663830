package validator

import (
	"fmt"
	"regexp"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/nafees-s/tiket-api/internal/domain"
)

var (
	hasSpecialRgx = regexp.MustCompile(`[!@#$%^&*]`)
	phoneRgx      = regexp.MustCompile(`^\+[1-9]\d{6,14}$`)
)

func NewValidator() *validator.Validate {
	validator := validator.New(validator.WithRequiredStructEnabled())

	validator.RegisterValidation("password", validatePassword)
	validator.RegisterValidation("phone_e164", validatePhone)
	validator.RegisterValidation("seat_id", validateSeat)
	validator.RegisterValidation("show_time", validateShowTime)
	validator.RegisterValidation("payment_method", validatePaymentMethod)

	return validator
}

func validatePassword(fl validator.FieldLevel) bool {
	password := fl.Field().String()

	if len(password) < 8 || len(password) > 25 {
		return false
	}

	containsUpper, containsLower, containsDigit, containsSpecial := false, false, false, false

	for _, ch := range password {
		switch {
		case unicode.IsUpper(ch):
			containsUpper = true
		case unicode.IsLower(ch):
			containsLower = true
		case unicode.IsDigit(ch):
			containsDigit = true
		case hasSpecialRgx.MatchString(string(ch)):
			containsSpecial = true
		}
	}

	return containsUpper && containsLower && containsDigit && containsSpecial
}

// validatePhone accepts E.164 numbers only, e.g. "+16505550101".
func validatePhone(fl validator.FieldLevel) bool {
	return phoneRgx.MatchString(fl.Field().String())
}

func validateSeat(fl validator.FieldLevel) bool {
	return domain.ValidSeat(fl.Field().String())
}

func validateShowTime(fl validator.FieldLevel) bool {
	return domain.ValidShowTime(fl.Field().String())
}

func validatePaymentMethod(fl validator.FieldLevel) bool {
	return domain.ValidPaymentMethod(fl.Field().String())
}

// Error message constants referenced by handler tests.
const (
	ErrInvalidPassword = "must be at least 8 characters long and include at least one uppercase letter, one lowercase letter, " +
		"one number, and one special character (!@#$%^&*)."
	ErrInvalidPhone   = "must be a phone number in E.164 format, e.g. +16505550101"
	ErrDefaultInvalid = "is invalid"
)

// ValidationMessage converts validator errors into readable messages
func ValidationMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return fmt.Sprintf("must be at least %s characters long", err.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters long", err.Param())
	case "eqfield":
		if err.Param() == "Password" || err.Param() == "New" {
			return "Passwords do not match"
		}
		return fmt.Sprintf("must match %s", err.Param())
	case "password":
		return ErrInvalidPassword
	case "phone_e164":
		return ErrInvalidPhone
	case "seat_id":
		return "must be a seat between A1 and E8"
	case "show_time":
		return "must be one of the scheduled show times"
	case "payment_method":
		return "must be a supported payment method"
	default:
		return ErrDefaultInvalid
	}
}
