package validation

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func Validate(data interface{}) []ValidationError {
	err := validate.Struct(data)
	if err == nil {
		return nil
	}

	var errs []ValidationError
	for _, err := range err.(validator.ValidationErrors) {
		errs = append(errs, ValidationError{
			Field:   err.Field(),
			Message: fmt.Sprintf("field must satisfy %s constraint", err.Tag()),
		})
	}
	return errs
}

// Custom validators
func ValidateStringRange(s string, min, max int) error {
	if len(s) < min || len(s) > max {
		return fmt.Errorf("string length must be between %d and %d", min, max)
	}
	return nil
}

func ValidateIntRange(value, min, max int) error {
	if value < min || value > max {
		return fmt.Errorf("value must be between %d and %d", min, max)
	}
	return nil
}

// ValidateScore checks a lesson score is within the 0-100 scale.
func ValidateScore(score int) error {
	return ValidateIntRange(score, 0, 100)
}
