package usecase

import (
	"context"

	"wrench/internal/domain/entity"

	"github.com/google/uuid"
)

// NotificationUsecase exposes the recipient-facing notification operations.
type NotificationUsecase interface {
	// ListNotifications returns the user's notifications, newest first.
	ListNotifications(ctx context.Context, userID uuid.UUID, limit, offset int, unreadOnly bool) ([]*entity.Notification, error)

	// MarkRead flags one of the user's notifications as read.
	MarkRead(ctx context.Context, id, userID uuid.UUID) error

	// MarkAllRead flags all of the user's notifications as read.
	MarkAllRead(ctx context.Context, userID uuid.UUID) error

	// UnreadCount returns the user's unread notification count.
	UnreadCount(ctx context.Context, userID uuid.UUID) (int64, error)
}

// Dispatcher decides, per recipient, whether a state change is already covered
// by the live room broadcast or must be persisted and pushed. Dispatch is
// best-effort: failures are logged, never propagated to the transition.
type Dispatcher interface {
	// DispatchJobEvent informs every job participant except the actor.
	// actorID may be uuid.Nil for system-driven events, in which case both
	// participants are informed.
	DispatchJobEvent(ctx context.Context, job *entity.Job, actorID uuid.UUID, ntype entity.NotificationType, title, body string, data map[string]string)
}
