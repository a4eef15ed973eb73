package impl

import (
	"context"
	"time"
	"unicode/utf8"

	"wrench/internal/domain/entity"
	domainerrors "wrench/internal/domain/errors"
	"wrench/internal/domain/repository"
	"wrench/internal/domain/service"
	"wrench/internal/errors"
	"wrench/internal/usecase"

	"github.com/google/uuid"
)

const (
	maxMessageLength = 4000
	previewMaxBytes  = 120
)

// preview shortens a message for the push notification body. The cut backs
// off to a rune boundary so a multi-byte character is never split.
func preview(content string) string {
	if len(content) <= previewMaxBytes {
		return content
	}

	cut := previewMaxBytes
	for cut > 0 && !utf8.RuneStart(content[cut]) {
		cut--
	}

	return content[:cut]
}

type messageService struct {
	messageRepo repository.MessageRepository
	jobRepo     repository.JobRepository
	dispatcher  usecase.Dispatcher
	broadcaster service.RoomBroadcaster
}

// NewMessageService creates the job chat use case.
func NewMessageService(
	messageRepo repository.MessageRepository,
	jobRepo repository.JobRepository,
	dispatcher usecase.Dispatcher,
	broadcaster service.RoomBroadcaster,
) usecase.MessageUsecase {
	return &messageService{
		messageRepo: messageRepo,
		jobRepo:     jobRepo,
		dispatcher:  dispatcher,
		broadcaster: broadcaster,
	}
}

// SendMessage persists a message from a job participant, broadcasts it to the
// job room and notifies the offline counterpart.
func (s *messageService) SendMessage(ctx context.Context, jobID, senderID uuid.UUID, role entity.Role, msgType entity.MessageType, content string) (*entity.Message, error) {
	if content == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("message content is required")
	}
	if len(content) > maxMessageLength {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("message content is too long")
	}
	if msgType == "" {
		msgType = entity.MessageTypeText
	}
	if !msgType.Valid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown message type")
	}

	job, err := s.jobRepo.FindJobByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("job not found")
		}

		return nil, domainerrors.NewStorageError(err, "failed to find job")
	}
	if role != entity.RoleAdmin && !job.IsParticipant(senderID) {
		return nil, domainerrors.ErrForbidden.WrapMessage("only job participants may chat on this job")
	}
	if job.Status.Terminal() && job.Status != entity.JobStatusCompleted {
		return nil, domainerrors.ErrInvalidTransition.WrapMessage("the chat for this job is closed")
	}

	message := &entity.Message{
		ID:         uuid.New(),
		JobID:      jobID,
		SenderID:   senderID,
		SenderRole: role,
		Type:       msgType,
		Content:    content,
		CreatedAt:  time.Now(),
	}
	if err := s.messageRepo.CreateMessage(ctx, message); err != nil {
		return nil, domainerrors.NewStorageError(err, "failed to store message")
	}

	s.broadcaster.Publish(service.JobRoom(jobID), &service.Event{
		Type:      service.EventMessageNew,
		Data:      map[string]any{"message": message},
		Timestamp: time.Now(),
	})

	s.dispatcher.DispatchJobEvent(ctx, job, senderID, entity.NotificationTypeChatMessage,
		"New message on \""+job.Title+"\"",
		preview(content),
		map[string]string{"job_id": jobID.String(), "message_id": message.ID.String()},
	)

	return message, nil
}

// ListJobMessages returns a job's chat history in send order.
func (s *messageService) ListJobMessages(ctx context.Context, jobID, actorID uuid.UUID, role entity.Role, limit, offset int) ([]*entity.Message, error) {
	job, err := s.jobRepo.FindJobByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("job not found")
		}

		return nil, domainerrors.NewStorageError(err, "failed to find job")
	}
	if role != entity.RoleAdmin && !job.IsParticipant(actorID) {
		return nil, domainerrors.ErrForbidden.WrapMessage("only job participants may read this chat")
	}

	messages, err := s.messageRepo.FindMessagesByJob(ctx, jobID, limit, offset)
	if err != nil {
		return nil, domainerrors.NewStorageError(err, "failed to list messages")
	}

	return messages, nil
}
