// Package errs provides standardized error types for the mess delivery service.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package groups errors by the kind of failure the caller has to react to:
//   - ValueIsRequiredError, ValueIsInvalidError: malformed or missing input
//   - AccessDeniedError: the caller lacks the role or relationship to the entity
//   - ObjectAlreadyExistsError: a uniqueness rule was violated
//   - AlreadyClaimedError: another delivery person won the pool acceptance race
//   - InvalidTransitionError: an illegal lifecycle move
//   - ObjectNotFoundError: an identifier does not resolve
//   - UpstreamError: the store, blob service or identity provider failed
//
// Each error type follows the same shape:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel, so errors.Is classifies it
package errs
