package errs

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUpstream = errors.New("upstream failure")

// UpstreamError wraps a failure of a collaborating service. The cause message
// is passed through to the caller as-is.
type UpstreamError struct {
	Service string
	Cause   error
}

func NewUpstreamError(service string, cause error) *UpstreamError {
	return &UpstreamError{Service: service, Cause: cause}
}

func (e *UpstreamError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrUpstream, e.Service, sanitize(e.Cause.Error()))
	}
	return fmt.Sprintf("%s: %s", ErrUpstream, e.Service)
}

func (e *UpstreamError) Unwrap() error {
	return ErrUpstream
}

func sanitize(s string) string {
	return strings.ReplaceAll(strings.ReplaceAll(s, "\r", " "), "\n", " ")
}
