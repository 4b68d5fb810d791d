package utils

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/swiftticket/swiftticket/internal/shared/errors"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	// Use JSON tag names for validation errors
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// ValidateStruct validates a struct and returns a user-friendly error
func ValidateStruct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return errors.NewValidationError("Validation failed", err.Error())
	}
	if len(validationErrors) == 0 {
		return nil
	}

	var errorMessages []string
	for _, fieldError := range validationErrors {
		errorMessages = append(errorMessages, getFieldErrorMessage(fieldError))
	}

	return errors.NewValidationError(
		"Validation failed",
		strings.Join(errorMessages, "; "),
	)
}

func getFieldErrorMessage(fe validator.FieldError) string {
	field := fe.Field()
	tag := fe.Tag()
	param := fe.Param()

	switch tag {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters long", field, param)
		}
		return fmt.Sprintf("%s must be at least %s", field, param)
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at most %s characters long", field, param)
		}
		return fmt.Sprintf("%s must be at most %s", field, param)
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", field, param)
	case "lte":
		return fmt.Sprintf("%s must be less than or equal to %s", field, param)
	case "numeric":
		return fmt.Sprintf("%s must be a valid number", field)
	case "timezone":
		return fmt.Sprintf("%s must be a valid IANA timezone", field)
	default:
		return fmt.Sprintf("%s failed validation for '%s'", field, tag)
	}
}

// ValidateSnowflake checks that id is a non-empty decimal platform ID.
func ValidateSnowflake(field, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return errors.NewValidationError(fmt.Sprintf("%s cannot be empty", field))
	}
	if _, err := strconv.ParseUint(id, 10, 64); err != nil {
		return errors.NewValidationError(fmt.Sprintf("%s must be a numeric ID", field))
	}
	return nil
}

// ParseIntInRange parses s as a base-10 integer within [min, max].
func ParseIntInRange(field, s string, min, max int) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, errors.NewValidationError(fmt.Sprintf("%s must be a number", field))
	}
	if n < min || n > max {
		return 0, errors.NewValidationError(fmt.Sprintf("%s must be between %d and %d", field, min, max), fmt.Sprintf("got %d", n))
	}
	return n, nil
}
