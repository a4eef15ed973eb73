package impl

import (
	"context"
	"testing"

	"wrench/internal/domain/entity"
	domainerrors "wrench/internal/domain/errors"
	"wrench/internal/domain/repository"
	mockRepo "wrench/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotificationService_ListNotifications(t *testing.T) {
	notificationRepo := mockRepo.NewMockNotificationRepository(t)
	service := NewNotificationService(notificationRepo)

	ctx := context.Background()
	userID := uuid.New()

	notificationRepo.EXPECT().FindNotificationsByUser(ctx, userID, 20, 0, true).
		Return([]*entity.Notification{{ID: uuid.New(), UserID: userID}}, nil)

	notifications, err := service.ListNotifications(ctx, userID, 20, 0, true)

	require.NoError(t, err)
	assert.Len(t, notifications, 1)
}

func TestNotificationService_MarkRead_UnknownNotification(t *testing.T) {
	notificationRepo := mockRepo.NewMockNotificationRepository(t)
	service := NewNotificationService(notificationRepo)

	ctx := context.Background()
	id := uuid.New()
	userID := uuid.New()

	notificationRepo.EXPECT().MarkNotificationRead(ctx, id, userID).
		Return(repository.ErrNotificationNotFound)

	err := service.MarkRead(ctx, id, userID)

	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestNotificationService_UnreadCount(t *testing.T) {
	notificationRepo := mockRepo.NewMockNotificationRepository(t)
	service := NewNotificationService(notificationRepo)

	ctx := context.Background()
	userID := uuid.New()

	notificationRepo.EXPECT().CountUnreadByUser(ctx, userID).Return(int64(3), nil)

	count, err := service.UnreadCount(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}
