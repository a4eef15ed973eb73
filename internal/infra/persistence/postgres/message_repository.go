package postgres

import (
	"context"

	"wrench/internal/domain/entity"
	"wrench/internal/domain/repository"
	"wrench/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// messageRepository implements the domain's MessageRepository interface using GORM.
type messageRepository struct {
	db *gorm.DB
}

// NewMessageRepository is the constructor for messageRepository.
func NewMessageRepository(db *gorm.DB) repository.MessageRepository {
	return &messageRepository{db: db}
}

// CreateMessage persists a new chat message.
func (repo *messageRepository) CreateMessage(ctx context.Context, message *entity.Message) error {
	messageM := model.FromMessageDomain(message)
	if err := repo.db.WithContext(ctx).Create(messageM).Error; err != nil {
		return errors.Wrap(err, "failed to create message")
	}

	return nil
}

// FindMessagesByJob lists a job's messages in send order.
func (repo *messageRepository) FindMessagesByJob(ctx context.Context, jobID uuid.UUID, limit, offset int) ([]*entity.Message, error) {
	var messagesM []*model.MessageModel
	err := repo.db.WithContext(ctx).
		Where("job_id = ?", jobID).
		Order("created_at ASC").
		Limit(limit).
		Offset(offset).
		Find(&messagesM).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list messages")
	}

	messages := make([]*entity.Message, 0, len(messagesM))
	for _, messageM := range messagesM {
		messages = append(messages, model.ToMessageDomain(messageM))
	}

	return messages, nil
}
