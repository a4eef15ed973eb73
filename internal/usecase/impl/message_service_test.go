package impl

import (
	"context"
	"strings"
	"testing"
	"unicode/utf8"

	"wrench/internal/domain/entity"
	domainerrors "wrench/internal/domain/errors"
	mockRepo "wrench/internal/mocks/repository"
	mockSvc "wrench/internal/mocks/service"
	mockUC "wrench/internal/mocks/usecase"
	"wrench/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestMessageService(t *testing.T) (
	usecase.MessageUsecase,
	*mockRepo.MockMessageRepository,
	*mockRepo.MockJobRepository,
	*mockUC.MockDispatcher,
	*mockSvc.MockRoomBroadcaster,
) {
	messageRepo := mockRepo.NewMockMessageRepository(t)
	jobRepo := mockRepo.NewMockJobRepository(t)
	dispatcher := mockUC.NewMockDispatcher(t)
	broadcaster := mockSvc.NewMockRoomBroadcaster(t)

	service := NewMessageService(messageRepo, jobRepo, dispatcher, broadcaster)

	return service, messageRepo, jobRepo, dispatcher, broadcaster
}

func TestMessageService_SendMessage_BroadcastsAndNotifies(t *testing.T) {
	service, messageRepo, jobRepo, dispatcher, broadcaster := createTestMessageService(t)

	ctx := context.Background()
	customerID := uuid.New()
	mechanicID := uuid.New()
	job := &entity.Job{ID: uuid.New(), Status: entity.JobStatusInProgress, CustomerID: customerID, MechanicID: &mechanicID}

	jobRepo.EXPECT().FindJobByID(ctx, job.ID).Return(job, nil)
	messageRepo.EXPECT().CreateMessage(ctx, mock.Anything).Return(nil)
	broadcaster.EXPECT().Publish("job:"+job.ID.String(), mock.Anything).Return()
	dispatcher.EXPECT().
		DispatchJobEvent(ctx, mock.Anything, customerID, entity.NotificationTypeChatMessage, mock.Anything, mock.Anything, mock.Anything).
		Return()

	msg, err := service.SendMessage(ctx, job.ID, customerID, entity.RoleCustomer, "", "On my way out, be there soon")

	require.NoError(t, err)
	assert.Equal(t, entity.MessageTypeText, msg.Type, "empty type defaults to text")
	assert.Equal(t, customerID, msg.SenderID)
}

func TestMessageService_SendMessage_EmptyAndOversizedContent(t *testing.T) {
	service, _, _, _, _ := createTestMessageService(t)

	_, err := service.SendMessage(context.Background(), uuid.New(), uuid.New(), entity.RoleCustomer, entity.MessageTypeText, "")
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	long := strings.Repeat("x", maxMessageLength+1)
	_, err = service.SendMessage(context.Background(), uuid.New(), uuid.New(), entity.RoleCustomer, entity.MessageTypeText, long)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestMessageService_SendMessage_PreviewKeepsRunesWhole(t *testing.T) {
	service, messageRepo, jobRepo, dispatcher, broadcaster := createTestMessageService(t)

	ctx := context.Background()
	customerID := uuid.New()
	mechanicID := uuid.New()
	job := &entity.Job{ID: uuid.New(), Status: entity.JobStatusInProgress, CustomerID: customerID, MechanicID: &mechanicID}

	// 1 ASCII byte followed by two-byte runes puts the cut mid-rune.
	content := "a" + strings.Repeat("é", 100)

	jobRepo.EXPECT().FindJobByID(ctx, job.ID).Return(job, nil)
	messageRepo.EXPECT().CreateMessage(ctx, mock.Anything).Return(nil)
	broadcaster.EXPECT().Publish(mock.Anything, mock.Anything).Return()

	var body string
	dispatcher.EXPECT().
		DispatchJobEvent(ctx, mock.Anything, customerID, entity.NotificationTypeChatMessage, mock.Anything, mock.Anything, mock.Anything).
		Run(func(_ context.Context, _ *entity.Job, _ uuid.UUID, _ entity.NotificationType, _, b string, _ map[string]string) {
			body = b
		}).
		Return()

	_, err := service.SendMessage(ctx, job.ID, customerID, entity.RoleCustomer, entity.MessageTypeText, content)

	require.NoError(t, err)
	assert.True(t, utf8.ValidString(body))
	assert.Len(t, body, previewMaxBytes-1, "the cut backs off to the previous rune boundary")
	assert.Equal(t, content[:previewMaxBytes-1], body)
}

func TestMessageService_SendMessage_NonParticipant(t *testing.T) {
	service, _, jobRepo, _, _ := createTestMessageService(t)

	ctx := context.Background()
	job := &entity.Job{ID: uuid.New(), Status: entity.JobStatusInProgress, CustomerID: uuid.New()}

	jobRepo.EXPECT().FindJobByID(ctx, job.ID).Return(job, nil)

	_, err := service.SendMessage(ctx, job.ID, uuid.New(), entity.RoleCustomer, entity.MessageTypeText, "hello")

	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestMessageService_SendMessage_ChatClosedOnCanceledJob(t *testing.T) {
	service, _, jobRepo, _, _ := createTestMessageService(t)

	ctx := context.Background()
	customerID := uuid.New()
	job := &entity.Job{ID: uuid.New(), Status: entity.JobStatusCanceled, CustomerID: customerID}

	jobRepo.EXPECT().FindJobByID(ctx, job.ID).Return(job, nil)

	_, err := service.SendMessage(ctx, job.ID, customerID, entity.RoleCustomer, entity.MessageTypeText, "anyone there?")

	assert.ErrorIs(t, err, domainerrors.ErrInvalidTransition)
}

func TestMessageService_SendMessage_ChatStaysOpenAfterCompletion(t *testing.T) {
	service, messageRepo, jobRepo, dispatcher, broadcaster := createTestMessageService(t)

	ctx := context.Background()
	customerID := uuid.New()
	mechanicID := uuid.New()
	job := &entity.Job{ID: uuid.New(), Status: entity.JobStatusCompleted, CustomerID: customerID, MechanicID: &mechanicID}

	jobRepo.EXPECT().FindJobByID(ctx, job.ID).Return(job, nil)
	messageRepo.EXPECT().CreateMessage(ctx, mock.Anything).Return(nil)
	broadcaster.EXPECT().Publish(mock.Anything, mock.Anything).Return()
	dispatcher.EXPECT().
		DispatchJobEvent(ctx, mock.Anything, mechanicID, entity.NotificationTypeChatMessage, mock.Anything, mock.Anything, mock.Anything).
		Return()

	_, err := service.SendMessage(ctx, job.ID, mechanicID, entity.RoleMechanic, entity.MessageTypeText, "thanks again")

	require.NoError(t, err)
}

func TestMessageService_ListJobMessages_ParticipantOnly(t *testing.T) {
	service, messageRepo, jobRepo, _, _ := createTestMessageService(t)

	ctx := context.Background()
	customerID := uuid.New()
	job := &entity.Job{ID: uuid.New(), Status: entity.JobStatusInProgress, CustomerID: customerID}

	jobRepo.EXPECT().FindJobByID(ctx, job.ID).Return(job, nil).Times(2)
	messageRepo.EXPECT().FindMessagesByJob(ctx, job.ID, 20, 0).
		Return([]*entity.Message{{ID: uuid.New(), JobID: job.ID}}, nil)

	messages, err := service.ListJobMessages(ctx, job.ID, customerID, entity.RoleCustomer, 20, 0)
	require.NoError(t, err)
	assert.Len(t, messages, 1)

	_, err = service.ListJobMessages(ctx, job.ID, uuid.New(), entity.RoleCustomer, 20, 0)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}
