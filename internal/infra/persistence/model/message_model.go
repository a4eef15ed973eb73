package model

import (
	"time"

	"github.com/google/uuid"

	"wrench/internal/domain/entity"
)

// MessageModel mirrors the 'messages' table.
type MessageModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key"`
	JobID      uuid.UUID `gorm:"type:uuid;not null;index"`
	SenderID   uuid.UUID `gorm:"type:uuid;not null"`
	SenderRole string    `gorm:"type:varchar(20);not null"`
	Type       string    `gorm:"type:varchar(20);not null"`
	Content    string    `gorm:"type:text;not null"`
	CreatedAt  time.Time `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (MessageModel) TableName() string {
	return "messages"
}

// ToMessageDomain maps the persistence model to a domain entity.
func ToMessageDomain(m *MessageModel) *entity.Message {
	return &entity.Message{
		ID:         m.ID,
		JobID:      m.JobID,
		SenderID:   m.SenderID,
		SenderRole: entity.Role(m.SenderRole),
		Type:       entity.MessageType(m.Type),
		Content:    m.Content,
		CreatedAt:  m.CreatedAt,
	}
}

// FromMessageDomain maps a domain entity to the persistence model.
func FromMessageDomain(msg *entity.Message) *MessageModel {
	return &MessageModel{
		ID:         msg.ID,
		JobID:      msg.JobID,
		SenderID:   msg.SenderID,
		SenderRole: string(msg.SenderRole),
		Type:       string(msg.Type),
		Content:    msg.Content,
		CreatedAt:  msg.CreatedAt,
	}
}
