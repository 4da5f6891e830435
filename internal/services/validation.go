package services

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/coursestudio/backend/internal/models"
	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// report JSON field names instead of Go field names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validateStruct runs the struct tag rules and converts failures into *models.ValidationError
func validateStruct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("failed to validate request: %w", err)
	}

	fields := make(map[string]string, len(validationErrors))
	for _, fe := range validationErrors {
		fields[fe.Field()] = fieldMessage(fe)
	}
	return &models.ValidationError{Fields: fields}
}

func fieldMessage(fe validator.FieldError) string {
	tag := fe.Tag()
	switch {
	case tag == "required":
		return "is required"
	case tag == "min" && fe.Kind() == reflect.String:
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case tag == "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case tag == "max" && fe.Kind() == reflect.String:
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case tag == "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case tag == "gte":
		return fmt.Sprintf("must be greater than or equal to %s", fe.Param())
	case tag == "lte":
		return fmt.Sprintf("must be less than or equal to %s", fe.Param())
	case strings.HasSuffix(tag, "url"):
		return "must be a valid URL"
	default:
		return "is invalid"
	}
}

// trimOptional trims surrounding whitespace of an optional string in place
func trimOptional(s *string) {
	if s != nil {
		*s = strings.TrimSpace(*s)
	}
}
