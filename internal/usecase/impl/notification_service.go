package impl

import (
	"context"

	"wrench/internal/domain/entity"
	domainerrors "wrench/internal/domain/errors"
	"wrench/internal/domain/repository"
	"wrench/internal/errors"
	"wrench/internal/usecase"

	"github.com/google/uuid"
)

type notificationService struct {
	notificationRepo repository.NotificationRepository
}

// NewNotificationService creates the recipient-facing notification use case.
func NewNotificationService(notificationRepo repository.NotificationRepository) usecase.NotificationUsecase {
	return &notificationService{notificationRepo: notificationRepo}
}

// ListNotifications returns the user's notifications, newest first.
func (s *notificationService) ListNotifications(ctx context.Context, userID uuid.UUID, limit, offset int, unreadOnly bool) ([]*entity.Notification, error) {
	notifications, err := s.notificationRepo.FindNotificationsByUser(ctx, userID, limit, offset, unreadOnly)
	if err != nil {
		return nil, domainerrors.NewStorageError(err, "failed to list notifications")
	}

	return notifications, nil
}

// MarkRead flags one of the user's notifications as read.
func (s *notificationService) MarkRead(ctx context.Context, id, userID uuid.UUID) error {
	err := s.notificationRepo.MarkNotificationRead(ctx, id, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotificationNotFound) {
			return domainerrors.ErrNotFound.WrapMessage("notification not found")
		}

		return domainerrors.NewStorageError(err, "failed to mark notification read")
	}

	return nil
}

// MarkAllRead flags all of the user's notifications as read.
func (s *notificationService) MarkAllRead(ctx context.Context, userID uuid.UUID) error {
	if err := s.notificationRepo.MarkAllNotificationsRead(ctx, userID); err != nil {
		return domainerrors.NewStorageError(err, "failed to mark notifications read")
	}

	return nil
}

// UnreadCount returns the user's unread notification count.
func (s *notificationService) UnreadCount(ctx context.Context, userID uuid.UUID) (int64, error) {
	count, err := s.notificationRepo.CountUnreadByUser(ctx, userID)
	if err != nil {
		return 0, domainerrors.NewStorageError(err, "failed to count unread notifications")
	}

	return count, nil
}
