package domain

import (
	"errors"
	"fmt"
)

// ValidationError marks a user-correctable precondition failure. Its message
// is shown verbatim to the initiating user, so it must name the offending
// entity. It is the only error class that crosses the core boundary; every
// other failure is logged and absorbed.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// Validationf builds a ValidationError from a format string.
func Validationf(format string, args ...any) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
