package errs

import (
	"errors"
	"fmt"
)

var (
	ErrObjectAlreadyExists = errors.New("object already exists")
	ErrAlreadyClaimed      = errors.New("already claimed")
)

// ObjectAlreadyExistsError signals a uniqueness violation, such as a second
// delivery for the same subscription and date.
type ObjectAlreadyExistsError struct {
	ParamName string
	ID        any
	Cause     error
}

func NewObjectAlreadyExistsError(paramName string, id any) *ObjectAlreadyExistsError {
	return &ObjectAlreadyExistsError{ParamName: paramName, ID: id}
}

func NewObjectAlreadyExistsErrorWithCause(paramName string, id any, cause error) *ObjectAlreadyExistsError {
	return &ObjectAlreadyExistsError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectAlreadyExistsError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s %s (cause: %v)", ErrObjectAlreadyExists, e.ParamName, e.ID, e.Cause)
	}
	return fmt.Sprintf("%s: %s %s", ErrObjectAlreadyExists, e.ParamName, e.ID)
}

func (e *ObjectAlreadyExistsError) Unwrap() error {
	return ErrObjectAlreadyExists
}

// AlreadyClaimedError is returned when a conditional claim affected no rows
// because someone else took the entity first.
type AlreadyClaimedError struct {
	ParamName string
	ID        any
}

func NewAlreadyClaimedError(paramName string, id any) *AlreadyClaimedError {
	return &AlreadyClaimedError{ParamName: paramName, ID: id}
}

func (e *AlreadyClaimedError) Error() string {
	return fmt.Sprintf("%s: %s %s was taken by someone else", ErrAlreadyClaimed, e.ParamName, e.ID)
}

func (e *AlreadyClaimedError) Unwrap() error {
	return ErrAlreadyClaimed
}
