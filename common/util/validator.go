package util

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// ValidateStruct validates a struct using validator tags
func ValidateStruct(s any) error {
	return validate.Struct(s)
}

// GetValidationErrors formats validation errors into readable messages
func GetValidationErrors(err error) []string {
	var errs []string
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		for _, fieldError := range validationErrors {
			switch fieldError.Tag() {
			case "required":
				errs = append(errs, fieldError.Field()+" is required")
			case "required_if":
				errs = append(errs, fieldError.Field()+" is required when "+fieldError.Param())
			case "email":
				errs = append(errs, fieldError.Field()+" must be a valid email")
			case "oneof":
				errs = append(errs, fieldError.Field()+" must be one of: "+fieldError.Param())
			case "min":
				errs = append(errs, fieldError.Field()+" must be at least "+fieldError.Param())
			case "max":
				errs = append(errs, fieldError.Field()+" must be at most "+fieldError.Param())
			case "gt":
				errs = append(errs, fieldError.Field()+" must be greater than "+fieldError.Param())
			case "eqfield":
				errs = append(errs, fieldError.Field()+" must match "+fieldError.Param())
			default:
				errs = append(errs, fieldError.Field()+" is invalid")
			}
		}
	}
	return errs
}
