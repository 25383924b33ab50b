package commands

import (
	"errors"
	"fmt"

	"messdelivery/internal/pkg/errs"
	"messdelivery/internal/pkg/guard"
)

var ErrRelayOutboxCommandIsNotConstructed = errors.New(
	"RelayOutboxCommand must be created via NewRelayOutboxCommand constructor",
)

// RelayOutboxCommand drains one batch of the outbox.
type RelayOutboxCommand struct { //nolint:recvcheck //using for validation
	batchSize   int
	maxAttempts int

	guard guard.ConstructorGuard
}

func NewRelayOutboxCommand(batchSize, maxAttempts int) (RelayOutboxCommand, error) {
	if batchSize <= 0 {
		return RelayOutboxCommand{}, errs.NewValueIsInvalidErrorWithCause("batchSize", fmt.Errorf("%d is not positive", batchSize))
	}
	if maxAttempts <= 0 {
		return RelayOutboxCommand{}, errs.NewValueIsInvalidErrorWithCause("maxAttempts", fmt.Errorf("%d is not positive", maxAttempts))
	}

	return RelayOutboxCommand{
		batchSize:   batchSize,
		maxAttempts: maxAttempts,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c RelayOutboxCommand) Validate() error {
	return c.guard.Validate(ErrRelayOutboxCommandIsNotConstructed)
}

func (c RelayOutboxCommand) BatchSize() int {
	return c.batchSize
}

func (c RelayOutboxCommand) MaxAttempts() int {
	return c.maxAttempts
}
