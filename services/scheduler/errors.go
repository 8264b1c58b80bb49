package scheduler

import (
	"errors"
	"fmt"
)

// ValidationError marks malformed scheduling input: bad time strings,
// non-chronological ranges, non-positive durations. It fails the single
// request and never crashes the process.
type ValidationError struct {
	Code    string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewValidationError(format string, args ...any) error {
	return &ValidationError{
		Code:    "validationError",
		Message: fmt.Sprintf(format, args...),
	}
}

// IsValidationError reports whether err is (or wraps) a ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
