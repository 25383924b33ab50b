package messaging

import (
	"context"

	"messdelivery/internal/core/ports"

	"go.uber.org/zap"
)

// LogPublisher only logs messages. It backs local runs without a broker.
type LogPublisher struct {
	logger *zap.Logger
}

func NewLogPublisher(logger *zap.Logger) *LogPublisher {
	return &LogPublisher{logger: logger.With(zap.String("component", "log_publisher"))}
}

func (p *LogPublisher) Publish(_ context.Context, msg ports.OutboxMessage) error {
	p.logger.Info("event published",
		zap.String("event_id", msg.ID.String()),
		zap.String("event_name", msg.EventName),
		zap.String("aggregate_id", msg.AggregateID.String()),
		zap.ByteString("payload", msg.Payload),
	)
	return nil
}

func (p *LogPublisher) Close(_ context.Context) error {
	return nil
}
