package repository

import (
	"context"
	"errors"

	"wrench/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for notification persistence.
var (
	// ErrNotificationNotFound is returned when a notification is not found.
	ErrNotificationNotFound = errors.New("notification not found")
)

// NotificationRepository persists per-user notification records. Rows are
// immutable except for the read and delivered flags.
type NotificationRepository interface {
	// CreateNotification persists a new notification.
	CreateNotification(ctx context.Context, notification *entity.Notification) error

	// FindNotificationsByUser lists a user's notifications, newest first.
	FindNotificationsByUser(ctx context.Context, userID uuid.UUID, limit, offset int, unreadOnly bool) ([]*entity.Notification, error)

	// MarkNotificationRead flags one notification as read; the user filter
	// prevents marking someone else's notification.
	MarkNotificationRead(ctx context.Context, id, userID uuid.UUID) error

	// MarkAllNotificationsRead flags every unread notification of a user.
	MarkAllNotificationsRead(ctx context.Context, userID uuid.UUID) error

	// MarkNotificationDelivered flags one notification as handed to a push channel.
	MarkNotificationDelivered(ctx context.Context, id uuid.UUID) error

	// CountUnreadByUser returns the user's unread notification count.
	CountUnreadByUser(ctx context.Context, userID uuid.UUID) (int64, error)
}
