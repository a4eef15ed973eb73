package entity

import (
	"time"

	"github.com/google/uuid"
)

// NotificationType enumerates the kinds of persisted notifications.
type NotificationType string

const (
	NotificationTypeJobUpdate     NotificationType = "JOB_UPDATE"
	NotificationTypeChatMessage   NotificationType = "CHAT_MESSAGE"
	NotificationTypePaymentUpdate NotificationType = "PAYMENT_UPDATE"
	NotificationTypeReviewRequest NotificationType = "REVIEW_REQUEST"
	NotificationTypeSystemAlert   NotificationType = "SYSTEM_ALERT"
)

// AlwaysPersisted reports whether notifications of this type must be stored
// even when the recipient is online and already sees the live broadcast.
func (t NotificationType) AlwaysPersisted() bool {
	return t == NotificationTypeReviewRequest || t == NotificationTypePaymentUpdate
}

// Notification is a persisted per-user record of a state change. It is
// immutable except for the read and delivered flags.
type Notification struct {
	ID        uuid.UUID         `json:"id"`
	UserID    uuid.UUID         `json:"user_id"`
	Type      NotificationType  `json:"type"`
	Title     string            `json:"title"`
	Body      string            `json:"body"`
	Data      map[string]string `json:"data"`
	Read      bool              `json:"read"`
	Delivered bool              `json:"delivered"`
	CreatedAt time.Time         `json:"created_at"`
}
