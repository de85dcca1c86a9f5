// Package validator provides a thin wrapper around the go-playground/validator
// library, enabling declarative struct validation with standardized error
// formatting. Fields are validated through tags (e.g., `validate:"required"`)
// and violations are reported as a combined error chain rooted at
// ErrValidation.
package validator

import (
	"errors"
	"fmt"
	"sync"

	gvalidator "github.com/go-playground/validator/v10"
)

// ErrValidation is returned as the first error in a multi-error chain when
// validation fails. It allows callers to detect validation failures explicitly
// even when multiple field errors are returned.
var ErrValidation = errors.New("struct validation failed")

var (
	// validate is the singleton instance of the go-playground validator.
	validate *gvalidator.Validate

	// initOnce ensures the singleton is only configured a single time.
	initOnce sync.Once
)

// errStringFormat describes an individual field violation.
//
// Example: "'Hash': value '0x' does not meet the requirements for the 'len' validation"
const errStringFormat = "'%s': value '%v' does not meet the requirements for the '%s' validation"

// Init configures the singleton validator. Calling Init multiple times has no
// effect after the first call. It must run before any call to Validate.
func Init() {
	initOnce.Do(func() {
		validate = gvalidator.New(gvalidator.WithRequiredStructEnabled())
	})
}

// formatError transforms a raw validator error into a structured, human-readable multi-error chain.
//
// If the input is a set of validation errors, it returns a combined error with ErrValidation
// as the root, followed by a formatted message for each field error. Otherwise, the original
// error is returned unchanged.
func formatError(err error) error {
	var validationErrors gvalidator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	errs := []error{ErrValidation}
	for _, validationErr := range validationErrors {
		err := fmt.Errorf(errStringFormat,
			validationErr.Field(),
			validationErr.Value(),
			validationErr.Tag(),
		)

		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// Validate checks if the given struct satisfies its validation tags.
//
// It returns nil if all fields pass validation. Otherwise, it returns a combined error that
// includes ErrValidation and one formatted message for each field that failed validation.
//
// Example usage:
//
//	type Input struct {
//	    Hash string `validate:"required"`
//	}
//
//	if err := validator.Validate(input); errors.Is(err, validator.ErrValidation) {
//	    // Handle validation failure
//	}
func Validate(v any) error {
	if err := validate.Struct(v); err != nil {
		return formatError(err)
	}

	return nil
}
