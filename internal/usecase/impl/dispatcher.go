package impl

import (
	"context"
	"log/slog"
	"time"

	"wrench/internal/domain/entity"
	"wrench/internal/domain/repository"
	"wrench/internal/domain/service"
	"wrench/internal/usecase"

	"github.com/google/uuid"
)

type dispatcher struct {
	notificationRepo repository.NotificationRepository
	userRepo         repository.UserRepository
	presence         service.PresenceStore
	pushSvc          service.PushService
	logger           *slog.Logger
}

// NewDispatcher creates the presence-aware notification dispatcher.
func NewDispatcher(
	notificationRepo repository.NotificationRepository,
	userRepo repository.UserRepository,
	presence service.PresenceStore,
	pushSvc service.PushService,
	logger *slog.Logger,
) usecase.Dispatcher {
	return &dispatcher{
		notificationRepo: notificationRepo,
		userRepo:         userRepo,
		presence:         presence,
		pushSvc:          pushSvc,
		logger:           logger,
	}
}

// DispatchJobEvent informs every job participant except the actor. Recipients
// with a live connection are assumed to see the room broadcast; only the
// always-persisted types are stored for them. Offline recipients get a stored
// notification and a best-effort push.
func (d *dispatcher) DispatchJobEvent(ctx context.Context, job *entity.Job, actorID uuid.UUID, ntype entity.NotificationType, title, body string, data map[string]string) {
	for _, recipient := range d.recipients(job, actorID) {
		d.dispatchTo(ctx, recipient, ntype, title, body, data)
	}
}

func (d *dispatcher) recipients(job *entity.Job, actorID uuid.UUID) []uuid.UUID {
	var out []uuid.UUID
	if job.CustomerID != actorID {
		out = append(out, job.CustomerID)
	}
	if job.MechanicID != nil && *job.MechanicID != actorID {
		out = append(out, *job.MechanicID)
	}

	return out
}

func (d *dispatcher) dispatchTo(ctx context.Context, userID uuid.UUID, ntype entity.NotificationType, title, body string, data map[string]string) {
	online, err := d.presence.IsOnline(ctx, userID)
	if err != nil {
		// A broken presence backend degrades to assume-offline, so the
		// notification is never silently dropped.
		d.logger.Warn("Presence lookup failed, assuming offline",
			slog.String("userID", userID.String()),
			slog.Any("error", err),
		)
		online = false
	}

	if online && !ntype.AlwaysPersisted() {
		// The live room broadcast already covers this recipient.
		return
	}

	notification := &entity.Notification{
		ID:        uuid.New(),
		UserID:    userID,
		Type:      ntype,
		Title:     title,
		Body:      body,
		Data:      data,
		CreatedAt: time.Now(),
	}
	// Persisting and pushing are independent failure domains: a storage
	// failure must not cost an offline recipient the push, and a push failure
	// never rolls back the stored row.
	persisted := true
	if err := d.notificationRepo.CreateNotification(ctx, notification); err != nil {
		persisted = false
		d.logger.Error("Failed to persist notification",
			slog.String("userID", userID.String()),
			slog.String("type", string(ntype)),
			slog.Any("error", err),
		)
	}

	if online {
		return
	}

	d.push(ctx, userID, notification, persisted)
}

func (d *dispatcher) push(ctx context.Context, userID uuid.UUID, notification *entity.Notification, persisted bool) {
	user, err := d.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		d.logger.Warn("Failed to load push recipient",
			slog.String("userID", userID.String()),
			slog.Any("error", err),
		)

		return
	}
	if user.FCMToken == "" {
		return
	}

	if err := d.pushSvc.SendToToken(ctx, user.FCMToken, notification.Title, notification.Body, notification.Data); err != nil {
		d.logger.Warn("Failed to send push notification",
			slog.String("userID", userID.String()),
			slog.Any("error", err),
		)

		return
	}

	if !persisted {
		return
	}

	if err := d.notificationRepo.MarkNotificationDelivered(ctx, notification.ID); err != nil {
		d.logger.Warn("Failed to mark notification delivered",
			slog.String("notificationID", notification.ID.String()),
			slog.Any("error", err),
		)
	}
}
