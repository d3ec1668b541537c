// Package validator adapts go-playground/validator to echo.
package validator

import (
	"strings"

	"bloodbank/internal/domain/entity"

	"github.com/go-playground/validator/v10"
)

// CustomValidator implements echo.Validator.
type CustomValidator struct {
	validate *validator.Validate
}

// New creates a validator that also understands the registry enumerations:
// blood_group, rh_factor and city.
func New() *CustomValidator {
	validate := validator.New(validator.WithRequiredStructEnabled())
	_ = validate.RegisterValidation("blood_group", func(fl validator.FieldLevel) bool {
		return entity.BloodGroup(fl.Field().String()).IsValid()
	})
	_ = validate.RegisterValidation("rh_factor", func(fl validator.FieldLevel) bool {
		return entity.RhFactor(fl.Field().String()).IsValid()
	})
	_ = validate.RegisterValidation("city", func(fl validator.FieldLevel) bool {
		return entity.City(fl.Field().String()).IsValid()
	})

	return &CustomValidator{validate: validate}
}

// Validate validates a struct and flattens field errors into one message.
func (cv *CustomValidator) Validate(i any) error {
	err := cv.validate.Struct(i)
	if err == nil {
		return nil
	}

	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	messages := make([]string, 0, len(fieldErrs))
	for _, fieldErr := range fieldErrs {
		messages = append(messages, fieldErr.Field()+" failed on "+fieldErr.Tag())
	}

	return &ValidationError{Fields: messages}
}

// ValidationError lists the fields that failed validation.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Fields, "; ")
}
