package ai

import (
	"errors"
	"fmt"
)

// ExternalServiceError marks a failed or malformed exchange with the
// text-understanding service. It is caught at the boundary and logged; the
// user sees a generic failure message.
type ExternalServiceError struct {
	Op  string
	Err error
}

func (e *ExternalServiceError) Error() string {
	return fmt.Sprintf("externalServiceError: %s: %v", e.Op, e.Err)
}

func (e *ExternalServiceError) Unwrap() error { return e.Err }

func newExternalError(op string, err error) error {
	return &ExternalServiceError{Op: op, Err: err}
}

// IsExternalServiceError reports whether err is (or wraps) an ExternalServiceError.
func IsExternalServiceError(err error) bool {
	var ee *ExternalServiceError
	return errors.As(err, &ee)
}
