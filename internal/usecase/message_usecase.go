package usecase

import (
	"context"

	"wrench/internal/domain/entity"

	"github.com/google/uuid"
)

// MessageUsecase covers job chat.
type MessageUsecase interface {
	// SendMessage persists a message from a job participant, broadcasts it to
	// the job room, and notifies offline counterparts.
	SendMessage(ctx context.Context, jobID, senderID uuid.UUID, role entity.Role, msgType entity.MessageType, content string) (*entity.Message, error)

	// ListJobMessages returns a job's chat history in send order.
	ListJobMessages(ctx context.Context, jobID, actorID uuid.UUID, role entity.Role, limit, offset int) ([]*entity.Message, error)
}
