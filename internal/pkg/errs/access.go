package errs

import (
	"errors"
	"fmt"
)

var ErrAccessDenied = errors.New("access denied")

// AccessDeniedError is returned when the caller's role or relationship to an
// entity does not permit the operation. ParamName names the missing relation,
// e.g. "mess owner" or "assigned delivery person".
type AccessDeniedError struct {
	ParamName string
	Cause     error
}

func NewAccessDeniedError(paramName string) *AccessDeniedError {
	return &AccessDeniedError{ParamName: paramName}
}

func NewAccessDeniedErrorWithCause(paramName string, cause error) *AccessDeniedError {
	return &AccessDeniedError{ParamName: paramName, Cause: cause}
}

func (e *AccessDeniedError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: caller is not the %s (cause: %v)", ErrAccessDenied, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: caller is not the %s", ErrAccessDenied, e.ParamName)
}

func (e *AccessDeniedError) Unwrap() error {
	return ErrAccessDenied
}
