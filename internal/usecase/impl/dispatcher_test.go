package impl

import (
	"context"
	"testing"

	"wrench/internal/domain/entity"
	mockRepo "wrench/internal/mocks/repository"
	mockSvc "wrench/internal/mocks/service"
	"wrench/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type dispatcherMocks struct {
	notificationRepo *mockRepo.MockNotificationRepository
	userRepo         *mockRepo.MockUserRepository
	presence         *mockSvc.MockPresenceStore
	pushSvc          *mockSvc.MockPushService
}

func createTestDispatcher(t *testing.T) (usecase.Dispatcher, *dispatcherMocks) {
	m := &dispatcherMocks{
		notificationRepo: mockRepo.NewMockNotificationRepository(t),
		userRepo:         mockRepo.NewMockUserRepository(t),
		presence:         mockSvc.NewMockPresenceStore(t),
		pushSvc:          mockSvc.NewMockPushService(t),
	}

	d := NewDispatcher(m.notificationRepo, m.userRepo, m.presence, m.pushSvc, newDiscardLogger())

	return d, m
}

func TestDispatcher_OnlineRecipientIsSkippedForTransientTypes(t *testing.T) {
	d, m := createTestDispatcher(t)

	ctx := context.Background()
	customerID := uuid.New()
	mechanicID := uuid.New()
	job := &entity.Job{ID: uuid.New(), CustomerID: customerID, MechanicID: &mechanicID}

	// The mechanic is the actor; only the customer is informed, and since the
	// customer is online the room broadcast already covers them.
	m.presence.EXPECT().IsOnline(ctx, customerID).Return(true, nil)

	d.DispatchJobEvent(ctx, job, mechanicID, entity.NotificationTypeJobUpdate, "t", "b", nil)
}

func TestDispatcher_OnlineRecipientStillGetsPersistedTypes(t *testing.T) {
	d, m := createTestDispatcher(t)

	ctx := context.Background()
	customerID := uuid.New()
	mechanicID := uuid.New()
	job := &entity.Job{ID: uuid.New(), CustomerID: customerID, MechanicID: &mechanicID}

	m.presence.EXPECT().IsOnline(ctx, customerID).Return(true, nil)
	m.notificationRepo.EXPECT().
		CreateNotification(ctx, mock.Anything).
		Run(func(_ context.Context, n *entity.Notification) {
			assert.Equal(t, customerID, n.UserID)
			assert.Equal(t, entity.NotificationTypeReviewRequest, n.Type)
		}).
		Return(nil)
	// No push: the recipient is online.

	d.DispatchJobEvent(ctx, job, mechanicID, entity.NotificationTypeReviewRequest, "How did it go?", "b", nil)
}

func TestDispatcher_OfflineRecipientGetsStoredNotificationAndPush(t *testing.T) {
	d, m := createTestDispatcher(t)

	ctx := context.Background()
	customerID := uuid.New()
	mechanicID := uuid.New()
	job := &entity.Job{ID: uuid.New(), CustomerID: customerID, MechanicID: &mechanicID}

	m.presence.EXPECT().IsOnline(ctx, customerID).Return(false, nil)
	m.notificationRepo.EXPECT().CreateNotification(ctx, mock.Anything).Return(nil)
	m.userRepo.EXPECT().FindUserByID(ctx, customerID).
		Return(&entity.User{ID: customerID, FCMToken: "fcm-token"}, nil)
	m.pushSvc.EXPECT().SendToToken(ctx, "fcm-token", "t", "b", mock.Anything).Return(nil)
	m.notificationRepo.EXPECT().MarkNotificationDelivered(ctx, mock.Anything).Return(nil)

	d.DispatchJobEvent(ctx, job, mechanicID, entity.NotificationTypeJobUpdate, "t", "b", nil)
}

func TestDispatcher_OfflineRecipientWithoutTokenSkipsPush(t *testing.T) {
	d, m := createTestDispatcher(t)

	ctx := context.Background()
	customerID := uuid.New()
	job := &entity.Job{ID: uuid.New(), CustomerID: customerID}

	m.presence.EXPECT().IsOnline(ctx, customerID).Return(false, nil)
	m.notificationRepo.EXPECT().CreateNotification(ctx, mock.Anything).Return(nil)
	m.userRepo.EXPECT().FindUserByID(ctx, customerID).
		Return(&entity.User{ID: customerID}, nil)

	d.DispatchJobEvent(ctx, job, uuid.New(), entity.NotificationTypeJobUpdate, "t", "b", nil)
}

func TestDispatcher_PresenceFailureDegradesToOffline(t *testing.T) {
	d, m := createTestDispatcher(t)

	ctx := context.Background()
	customerID := uuid.New()
	job := &entity.Job{ID: uuid.New(), CustomerID: customerID}

	m.presence.EXPECT().IsOnline(ctx, customerID).Return(false, errors.New("redis down"))
	m.notificationRepo.EXPECT().CreateNotification(ctx, mock.Anything).Return(nil)
	m.userRepo.EXPECT().FindUserByID(ctx, customerID).
		Return(&entity.User{ID: customerID}, nil)

	d.DispatchJobEvent(ctx, job, uuid.New(), entity.NotificationTypeJobUpdate, "t", "b", nil)
}

func TestDispatcher_SystemEventInformsBothParticipants(t *testing.T) {
	d, m := createTestDispatcher(t)

	ctx := context.Background()
	customerID := uuid.New()
	mechanicID := uuid.New()
	job := &entity.Job{ID: uuid.New(), CustomerID: customerID, MechanicID: &mechanicID}

	m.presence.EXPECT().IsOnline(ctx, customerID).Return(true, nil)
	m.presence.EXPECT().IsOnline(ctx, mechanicID).Return(true, nil)
	m.notificationRepo.EXPECT().
		CreateNotification(ctx, mock.Anything).
		Return(nil).
		Times(2)

	d.DispatchJobEvent(ctx, job, uuid.Nil, entity.NotificationTypePaymentUpdate, "Payment received", "b", nil)
}

func TestDispatcher_PersistFailureStillPushes(t *testing.T) {
	d, m := createTestDispatcher(t)

	ctx := context.Background()
	customerID := uuid.New()
	job := &entity.Job{ID: uuid.New(), CustomerID: customerID}

	m.presence.EXPECT().IsOnline(ctx, customerID).Return(false, nil)
	m.notificationRepo.EXPECT().CreateNotification(ctx, mock.Anything).
		Return(errors.New("db down"))
	m.userRepo.EXPECT().FindUserByID(ctx, customerID).
		Return(&entity.User{ID: customerID, FCMToken: "fcm-token"}, nil)
	m.pushSvc.EXPECT().SendToToken(ctx, "fcm-token", "t", "b", mock.Anything).Return(nil)
	// No delivered mark: there is no stored row to flag.

	d.DispatchJobEvent(ctx, job, uuid.New(), entity.NotificationTypeJobUpdate, "t", "b", nil)
}

func TestDispatcher_PushFailureDoesNotMarkDelivered(t *testing.T) {
	d, m := createTestDispatcher(t)

	ctx := context.Background()
	customerID := uuid.New()
	job := &entity.Job{ID: uuid.New(), CustomerID: customerID}

	m.presence.EXPECT().IsOnline(ctx, customerID).Return(false, nil)
	m.notificationRepo.EXPECT().CreateNotification(ctx, mock.Anything).Return(nil)
	m.userRepo.EXPECT().FindUserByID(ctx, customerID).
		Return(&entity.User{ID: customerID, FCMToken: "fcm-token"}, nil)
	m.pushSvc.EXPECT().SendToToken(ctx, "fcm-token", "t", "b", mock.Anything).
		Return(errors.New("fcm unavailable"))

	d.DispatchJobEvent(ctx, job, uuid.New(), entity.NotificationTypeJobUpdate, "t", "b", nil)
}
