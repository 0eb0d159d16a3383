package validator

import (
	"errors"

	"github.com/go-playground/validator/v10"

	"lawnmow/pkg/logger"
	"lawnmow/pkg/model"
	"lawnmow/pkg/validation"
)

type QuoteValidator struct {
	validate *validator.Validate
	logger   *logger.Logger
}

func NewQuoteValidator(log *logger.Logger) *QuoteValidator {
	return &QuoteValidator{
		validate: validator.New(),
		logger:   log,
	}
}

// Validate checks the customer-supplied quote fields. Extras are
// deliberately unconstrained here; pricing ignores unknown names.
func (v *QuoteValidator) Validate(quote *model.Quote) error {
	if err := v.validate.Struct(quote); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return validation.Translate(validationErrs)
		}
		return err
	}
	return nil
}
