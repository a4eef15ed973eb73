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

// notificationRepository implements the domain's NotificationRepository interface using GORM.
type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository is the constructor for notificationRepository.
func NewNotificationRepository(db *gorm.DB) repository.NotificationRepository {
	return &notificationRepository{db: db}
}

// CreateNotification persists a new notification.
func (repo *notificationRepository) CreateNotification(ctx context.Context, notification *entity.Notification) error {
	notificationM := model.FromNotificationDomain(notification)
	if err := repo.db.WithContext(ctx).Create(notificationM).Error; err != nil {
		return errors.Wrap(err, "failed to create notification")
	}

	return nil
}

// FindNotificationsByUser lists a user's notifications, newest first.
func (repo *notificationRepository) FindNotificationsByUser(ctx context.Context, userID uuid.UUID, limit, offset int, unreadOnly bool) ([]*entity.Notification, error) {
	query := repo.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("user_id = ?", userID)
	if unreadOnly {
		query = query.Where("read = false")
	}

	var notificationsM []*model.NotificationModel
	err := query.
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&notificationsM).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list notifications")
	}

	notifications := make([]*entity.Notification, 0, len(notificationsM))
	for _, notificationM := range notificationsM {
		notifications = append(notifications, model.ToNotificationDomain(notificationM))
	}

	return notifications, nil
}

// MarkNotificationRead flags one notification as read. The user filter makes
// it impossible to mark someone else's notification.
func (repo *notificationRepository) MarkNotificationRead(ctx context.Context, id, userID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("read", true)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to mark notification read")
	}
	if result.RowsAffected == 0 {
		return repository.ErrNotificationNotFound
	}

	return nil
}

// MarkAllNotificationsRead flags every unread notification of a user.
func (repo *notificationRepository) MarkAllNotificationsRead(ctx context.Context, userID uuid.UUID) error {
	err := repo.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("user_id = ? AND read = false", userID).
		Update("read", true).Error
	if err != nil {
		return errors.Wrap(err, "failed to mark notifications read")
	}

	return nil
}

// MarkNotificationDelivered flags one notification as handed to a push channel.
func (repo *notificationRepository) MarkNotificationDelivered(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("id = ?", id).
		Update("delivered", true)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to mark notification delivered")
	}
	if result.RowsAffected == 0 {
		return repository.ErrNotificationNotFound
	}

	return nil
}

// CountUnreadByUser returns the user's unread notification count.
func (repo *notificationRepository) CountUnreadByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("user_id = ? AND read = false", userID).
		Count(&count).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to count unread notifications")
	}

	return count, nil
}
