// Package outboxrepo stores domain events awaiting publication.
package outboxrepo

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"messdelivery/internal/core/domain/model/kernel"
	"messdelivery/internal/core/ports"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const maxErrorLength = 1000

type MessageDTO struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey"`
	AggregateID uuid.UUID      `gorm:"type:uuid;not null;index"`
	EventName   string         `gorm:"type:text;not null"`
	Payload     datatypes.JSON `gorm:"type:jsonb;not null"`
	OccurredAt  time.Time      `gorm:"not null;index"`
	ProcessedAt *time.Time     `gorm:"index"`
	Attempts    int            `gorm:"not null;default:0"`
	LastError   string         `gorm:"type:text"`
}

func (MessageDTO) TableName() string {
	return "outbox_messages"
}

type GormOutboxRepository struct {
	db *gorm.DB
}

func NewGormOutboxRepository(db *gorm.DB) *GormOutboxRepository {
	return &GormOutboxRepository{db: db}
}

func (r *GormOutboxRepository) Add(ctx context.Context, messages ...ports.OutboxMessage) error {
	if len(messages) == 0 {
		return nil
	}

	dtos := make([]MessageDTO, 0, len(messages))
	for _, m := range messages {
		dtos = append(dtos, MessageDTO{
			ID:          m.ID.Bytes(),
			AggregateID: m.AggregateID.Bytes(),
			EventName:   m.EventName,
			Payload:     datatypes.JSON(m.Payload),
			OccurredAt:  m.OccurredAt,
		})
	}
	return r.db.WithContext(ctx).Create(&dtos).Error
}

// FetchPending must run inside a transaction for the row locks to hold
// until the batch is marked.
func (r *GormOutboxRepository) FetchPending(ctx context.Context, limit, maxAttempts int) ([]ports.OutboxMessage, error) {
	var dtos []MessageDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE", Options: "SKIP LOCKED"}).
		Where("processed_at IS NULL AND attempts < ?", maxAttempts).
		Order("occurred_at").
		Limit(limit).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	messages := make([]ports.OutboxMessage, 0, len(dtos))
	for _, dto := range dtos {
		id, err := kernel.UUIDFromGoogle(dto.ID)
		if err != nil {
			return nil, err
		}
		aggregateID, err := kernel.UUIDFromGoogle(dto.AggregateID)
		if err != nil {
			return nil, err
		}
		messages = append(messages, ports.OutboxMessage{
			ID:          id,
			AggregateID: aggregateID,
			EventName:   dto.EventName,
			Payload:     []byte(dto.Payload),
			OccurredAt:  dto.OccurredAt,
			Attempts:    dto.Attempts,
		})
	}
	return messages, nil
}

func (r *GormOutboxRepository) MarkProcessed(ctx context.Context, id kernel.UUID, at time.Time) error {
	return r.db.WithContext(ctx).Model(&MessageDTO{}).
		Where("id = ?", id.Bytes()).
		Updates(map[string]any{
			"processed_at": at,
			"attempts":     gorm.Expr("attempts + 1"),
			"last_error":   "",
		}).Error
}

func (r *GormOutboxRepository) MarkFailed(ctx context.Context, id kernel.UUID, cause error) error {
	msg := truncateError(cause.Error())
	return r.db.WithContext(ctx).Model(&MessageDTO{}).
		Where("id = ?", id.Bytes()).
		Updates(map[string]any{
			"attempts":   gorm.Expr("attempts + 1"),
			"last_error": msg,
		}).Error
}

// truncateError keeps at most maxErrorLength bytes of valid UTF-8, cutting on
// a rune boundary. Postgres rejects text columns holding broken sequences.
func truncateError(msg string) string {
	msg = strings.ToValidUTF8(msg, "\uFFFD")
	if len(msg) <= maxErrorLength {
		return msg
	}
	cut := maxErrorLength
	for cut > 0 && !utf8.RuneStart(msg[cut]) {
		cut--
	}
	return msg[:cut]
}
