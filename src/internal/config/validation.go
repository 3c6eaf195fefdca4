package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var sectionNameRegexp = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// getValidationMessage returns a human-readable message for a validation error
func getValidationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "field is required"
	case "absolute_path":
		return "must be an absolute path"
	case "section_name":
		return "must be a bare TOML key [A-Za-z0-9_-]"
	default:
		return fmt.Sprintf("validation failed: %s", e.Tag())
	}
}

// ValidationError represents a single validation error with context
type ValidationError struct {
	ItemName  string
	FieldPath string // environment variable or field name, e.g. "PALSERVERDIR"
	Message   string
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface
func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "no validation errors"
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("validation failed with %d error(s):\n", len(ve)))
	for i, err := range ve {
		if err.ItemName != "" {
			sb.WriteString(fmt.Sprintf("  %d. [%s] %s: %s\n", i+1, err.ItemName, err.FieldPath, err.Message))
		} else {
			sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.FieldPath, err.Message))
		}
	}
	return sb.String()
}

var validate *validator.Validate

func init() {
	validate = validator.New()

	if err := validate.RegisterValidation("absolute_path", validateAbsolutePath); err != nil {
		panic(err)
	}
	if err := validate.RegisterValidation("section_name", validateSectionName); err != nil {
		panic(err)
	}

	// Report environment variable names where a field has one
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("env"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})
}

func validateAbsolutePath(fl validator.FieldLevel) bool {
	return filepath.IsAbs(fl.Field().String())
}

func validateSectionName(fl validator.FieldLevel) bool {
	return sectionNameRegexp.MatchString(fl.Field().String())
}

// convertValidatorErrors converts go-playground/validator errors to our ValidationError format
func convertValidatorErrors(err error, fieldPrefix string, itemName string) ValidationErrors {
	var validationErrors ValidationErrors

	var validatorErrs validator.ValidationErrors
	if !errors.As(err, &validatorErrs) {
		return ValidationErrors{{ItemName: itemName, FieldPath: fieldPrefix, Message: err.Error()}}
	}

	for _, e := range validatorErrs {
		fieldPath := e.Field()
		if fieldPrefix != "" {
			fieldPath = fieldPrefix + "." + fieldPath
		}

		validationErrors = append(validationErrors, ValidationError{
			ItemName:  itemName,
			FieldPath: fieldPath,
			Message:   getValidationMessage(e),
		})
	}

	return validationErrors
}
