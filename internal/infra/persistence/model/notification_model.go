package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"wrench/internal/domain/entity"
)

// NotificationModel mirrors the 'notifications' table. Rows are immutable
// except for the read and delivered flags.
type NotificationModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Type      string    `gorm:"type:varchar(30);not null"`
	Title     string    `gorm:"type:varchar(200);not null"`
	Body      string    `gorm:"type:text"`
	Data      []byte    `gorm:"type:jsonb"`
	Read      bool      `gorm:"not null;default:false"`
	Delivered bool      `gorm:"not null;default:false"`
	CreatedAt time.Time `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (NotificationModel) TableName() string {
	return "notifications"
}

// ToNotificationDomain maps the persistence model to a domain entity.
func ToNotificationDomain(m *NotificationModel) *entity.Notification {
	var data map[string]string
	if len(m.Data) > 0 {
		// Rows are only ever written through FromNotificationDomain, so the
		// payload is always a flat string map.
		_ = json.Unmarshal(m.Data, &data)
	}

	return &entity.Notification{
		ID:        m.ID,
		UserID:    m.UserID,
		Type:      entity.NotificationType(m.Type),
		Title:     m.Title,
		Body:      m.Body,
		Data:      data,
		Read:      m.Read,
		Delivered: m.Delivered,
		CreatedAt: m.CreatedAt,
	}
}

// FromNotificationDomain maps a domain entity to the persistence model.
func FromNotificationDomain(n *entity.Notification) *NotificationModel {
	var data []byte
	if len(n.Data) > 0 {
		data, _ = json.Marshal(n.Data)
	}

	return &NotificationModel{
		ID:        n.ID,
		UserID:    n.UserID,
		Type:      string(n.Type),
		Title:     n.Title,
		Body:      n.Body,
		Data:      data,
		Read:      n.Read,
		Delivered: n.Delivered,
		CreatedAt: n.CreatedAt,
	}
}
