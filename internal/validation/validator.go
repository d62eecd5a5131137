package validation

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// Validator wraps the go-playground validator
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

var (
	instance     *Validator
	instanceOnce sync.Once
)

// GetValidator returns the shared validator instance
func GetValidator() *Validator {
	instanceOnce.Do(func() {
		instance = NewValidator()
	})
	return instance
}

// NewValidator creates the validator. Field names in errors are the json names.
func NewValidator() *Validator {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Struct validates s and returns validator.ValidationErrors on failure
func (v *Validator) Struct(s interface{}) error {
	return v.validate.Struct(s)
}

// FieldErrors flattens validation errors into field -> message
func FieldErrors(err error) map[string]string {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return nil
	}

	fields := make(map[string]string, len(validationErrs))
	for _, fieldErr := range validationErrs {
		fields[fieldErr.Field()] = Describe(fieldErr)
	}
	return fields
}

// Describe renders a single field error as a human readable message
func Describe(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return "is required"
	case "min":
		return "must be at least " + fieldErr.Param()
	case "max":
		return "must be at most " + fieldErr.Param()
	default:
		return "is invalid"
	}
}
