package messaging

import (
	"context"
	"errors"
	"fmt"
	"time"

	"messdelivery/internal/core/ports"

	"github.com/Azure/azure-sdk-for-go/sdk/messaging/azservicebus"
)

type messageSender interface {
	SendMessage(ctx context.Context, message *azservicebus.Message, options *azservicebus.SendMessageOptions) error
	Close(ctx context.Context) error
}

// ServiceBusPublisher sends messages to an Azure Service Bus queue. The
// outbox id becomes the MessageID so duplicate detection on the queue drops
// redeliveries.
type ServiceBusPublisher struct {
	client *azservicebus.Client
	sender messageSender
}

func NewServiceBusPublisher(connectionString, queueName string) (*ServiceBusPublisher, error) {
	if connectionString == "" {
		return nil, errors.New("Azure Service Bus connection string is empty")
	}

	client, err := azservicebus.NewClientFromConnectionString(connectionString, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create Service Bus client: %w", err)
	}

	sender, err := client.NewSender(queueName, nil)
	if err != nil {
		_ = client.Close(context.Background())
		return nil, fmt.Errorf("failed to create Service Bus sender: %w", err)
	}

	return &ServiceBusPublisher{client: client, sender: sender}, nil
}

func (p *ServiceBusPublisher) Publish(ctx context.Context, msg ports.OutboxMessage) error {
	messageID := msg.ID.String()
	contentType := "application/json"
	subject := msg.EventName

	return p.sender.SendMessage(ctx, &azservicebus.Message{
		MessageID:   &messageID,
		ContentType: &contentType,
		Subject:     &subject,
		Body:        msg.Payload,
		ApplicationProperties: map[string]any{
			"aggregate_id": msg.AggregateID.String(),
			"event_name":   msg.EventName,
			"occurred_at":  msg.OccurredAt.UTC().Format(time.RFC3339),
		},
	}, nil)
}

func (p *ServiceBusPublisher) Close(ctx context.Context) error {
	if p.sender != nil {
		if err := p.sender.Close(ctx); err != nil {
			return err
		}
	}
	if p.client != nil {
		return p.client.Close(ctx)
	}
	return nil
}
