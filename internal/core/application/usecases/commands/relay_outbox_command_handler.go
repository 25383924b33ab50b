package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"messdelivery/internal/core/domain/model/delivery"
	"messdelivery/internal/core/domain/services"
	"messdelivery/internal/core/ports"
	"messdelivery/internal/pkg/errs"
)

// RelayResult counts what one relay batch did.
type RelayResult struct {
	Processed int
	Failed    int
}

// RelayOutboxCommandHandler publishes pending outbox messages and writes the
// notifications each delivery event produces. A message is marked processed
// only after both succeed; a failed publish bumps its attempt counter and
// leaves it for the next run.
type RelayOutboxCommandHandler struct {
	uowFactory RelayUoWFactory
	publisher  ports.EventPublisher
	composer   services.NotificationComposer
}

func NewRelayOutboxCommandHandler(uowFactory RelayUoWFactory, publisher ports.EventPublisher) RelayOutboxCommandHandler {
	return RelayOutboxCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		composer:   services.NewNotificationComposer(),
	}
}

func (h *RelayOutboxCommandHandler) Handle(ctx context.Context, cmd RelayOutboxCommand) (RelayResult, error) {
	if err := cmd.Validate(); err != nil {
		return RelayResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return RelayResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	outbox := uow.OutboxRepository()
	messages, err := outbox.FetchPending(ctx, cmd.BatchSize(), cmd.MaxAttempts())
	if err != nil {
		return RelayResult{}, err
	}
	if len(messages) == 0 {
		return RelayResult{}, nil
	}

	var result RelayResult
	for _, msg := range messages {
		if cause := h.deliver(ctx, uow, msg); cause != nil {
			if !isRecoverable(cause) {
				return RelayResult{}, cause
			}
			if err = outbox.MarkFailed(ctx, msg.ID, cause); err != nil {
				return RelayResult{}, err
			}
			result.Failed++
			continue
		}

		if err = outbox.MarkProcessed(ctx, msg.ID, time.Now().UTC()); err != nil {
			return RelayResult{}, err
		}
		result.Processed++
	}

	if err = uow.Commit(ctx); err != nil {
		return RelayResult{}, err
	}

	return result, nil
}

// deliver publishes msg and stores its notifications. Errors wrapped in
// relayError leave the transaction usable.
func (h *RelayOutboxCommandHandler) deliver(ctx context.Context, uow RelayUoW, msg ports.OutboxMessage) error {
	if err := h.publisher.Publish(ctx, msg); err != nil {
		return relayError{fmt.Errorf("publish %s: %w", msg.EventName, err)}
	}

	if !strings.HasPrefix(msg.EventName, "delivery.") {
		return nil
	}

	event, err := delivery.DecodeEvent(msg.Payload)
	if err != nil {
		return relayError{err}
	}

	sub, err := uow.SubscriptionRepository().Get(ctx, event.SubscriptionID)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return relayError{err}
		}
		return err
	}

	notifications, err := h.composer.Compose(event, sub.StudentID(), time.Now().UTC())
	if err != nil {
		return relayError{err}
	}

	repo := uow.NotificationRepository()
	for _, n := range notifications {
		if err = repo.Add(ctx, n); err != nil {
			return err
		}
	}
	return nil
}

type relayError struct {
	err error
}

func (e relayError) Error() string {
	return e.err.Error()
}

func (e relayError) Unwrap() error {
	return e.err
}

func isRecoverable(err error) bool {
	var re relayError
	return errors.As(err, &re)
}
