package repository

import (
	"context"

	"wrench/internal/domain/entity"

	"github.com/google/uuid"
)

// MessageRepository persists job chat messages.
type MessageRepository interface {
	// CreateMessage persists a new chat message.
	CreateMessage(ctx context.Context, message *entity.Message) error

	// FindMessagesByJob lists a job's messages in send order.
	FindMessagesByJob(ctx context.Context, jobID uuid.UUID, limit, offset int) ([]*entity.Message, error)
}
