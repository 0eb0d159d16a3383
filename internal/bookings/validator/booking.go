package validator

import (
	"errors"

	"github.com/go-playground/validator/v10"

	"lawnmow/pkg/logger"
	"lawnmow/pkg/model"
	"lawnmow/pkg/validation"
)

type BookingValidator struct {
	validate *validator.Validate
	logger   *logger.Logger
}

func NewBookingValidator(log *logger.Logger) *BookingValidator {
	return &BookingValidator{
		validate: validator.New(),
		logger:   log,
	}
}

// Validate checks the customer-supplied booking fields. The datetime
// tag on preferred_date rejects both malformed layouts and impossible
// dates. price_total is range-checked only; it is trusted from the
// caller and not recomputed against the calculator.
func (v *BookingValidator) Validate(booking *model.Booking) error {
	if err := v.validate.Struct(booking); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return validation.Translate(validationErrs)
		}
		return err
	}
	return nil
}
