// Package impl contains the concrete use case implementations.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"wrench/config"
	"wrench/internal/domain/entity"
	domainerrors "wrench/internal/domain/errors"
	"wrench/internal/domain/repository"
	"wrench/internal/domain/service"
	"wrench/internal/errors"
	"wrench/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

type jobService struct {
	jobRepo   repository.JobRepository
	quoteRepo repository.QuoteRepository
	txManager repository.TransactionManager

	dispatcher  usecase.Dispatcher
	broadcaster service.RoomBroadcaster
	publisher   service.EventPublisher
	qrSvc       service.QRCodeService
	paymentSvc  service.PaymentService

	cfg    *config.Config
	logger *slog.Logger
}

// NewJobService creates the job transition engine.
func NewJobService(
	jobRepo repository.JobRepository,
	quoteRepo repository.QuoteRepository,
	txManager repository.TransactionManager,
	dispatcher usecase.Dispatcher,
	broadcaster service.RoomBroadcaster,
	publisher service.EventPublisher,
	qrSvc service.QRCodeService,
	paymentSvc service.PaymentService,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.JobUsecase {
	return &jobService{
		jobRepo:     jobRepo,
		quoteRepo:   quoteRepo,
		txManager:   txManager,
		dispatcher:  dispatcher,
		broadcaster: broadcaster,
		publisher:   publisher,
		qrSvc:       qrSvc,
		paymentSvc:  paymentSvc,
		cfg:         cfg,
		logger:      logger,
	}
}

// CreateServiceRequest creates a new PENDING job for the customer.
func (s *jobService) CreateServiceRequest(ctx context.Context, customerID uuid.UUID, input *usecase.CreateJobInput) (*entity.Job, error) {
	if input.Title == "" || input.Address == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("title and address are required")
	}

	urgency := input.Urgency
	if urgency == "" {
		urgency = entity.JobUrgencyNormal
	}

	now := time.Now()
	job := &entity.Job{
		ID:           uuid.New(),
		Title:        input.Title,
		Description:  input.Description,
		Category:     input.Category,
		Status:       entity.JobStatusPending,
		Urgency:      urgency,
		CustomerID:   customerID,
		VehicleInfo:  input.VehicleInfo,
		Address:      input.Address,
		Latitude:     input.Latitude,
		Longitude:    input.Longitude,
		ScheduledFor: input.ScheduledFor,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.jobRepo.CreateJob(ctx, job); err != nil {
		return nil, domainerrors.NewStorageError(err, "failed to create job")
	}

	s.appendTimeline(ctx, s.jobRepo, job.ID, &customerID, "", entity.JobStatusPending, "service request created")
	s.publishLifecycle(ctx, job, "", entity.JobStatusPending)

	return job, nil
}

// GetJob returns a job if the actor is a participant or an admin.
func (s *jobService) GetJob(ctx context.Context, jobID, actorID uuid.UUID, role entity.Role) (*entity.Job, error) {
	job, err := s.findJob(ctx, jobID)
	if err != nil {
		return nil, err
	}

	if err := authorizeJobAccess(job, actorID, role); err != nil {
		return nil, err
	}

	return job, nil
}

// ListJobs returns the actor's jobs, newest first.
func (s *jobService) ListJobs(ctx context.Context, actorID uuid.UUID, role entity.Role, limit, offset int) ([]*entity.Job, error) {
	jobs, err := s.jobRepo.FindJobsByParticipant(ctx, actorID, role, limit, offset)
	if err != nil {
		return nil, domainerrors.NewStorageError(err, "failed to list jobs")
	}

	return jobs, nil
}

// drivableStatuses are the targets updateJobStatus may be asked for directly.
// PENDING->QUOTED is driven by quote creation and QUOTED->ACCEPTED by quote
// acceptance, never by this operation.
func drivable(status entity.JobStatus) bool {
	switch status {
	case entity.JobStatusInProgress, entity.JobStatusCompleted, entity.JobStatusCanceled:
		return true
	}

	return false
}

// UpdateJobStatus validates and applies one status transition.
func (s *jobService) UpdateJobStatus(ctx context.Context, jobID, actorID uuid.UUID, role entity.Role, newStatus entity.JobStatus, notes string) (*entity.Job, error) {
	if !newStatus.Valid() || !drivable(newStatus) {
		return nil, domainerrors.ErrValidationFailed.WrapMessage(fmt.Sprintf("status %s cannot be requested directly", newStatus))
	}

	job, err := s.findJob(ctx, jobID)
	if err != nil {
		return nil, err
	}

	if err := authorizeStatusChange(job, actorID, role, newStatus); err != nil {
		return nil, err
	}

	// Duplicate delivery of the same request: requesting the current status
	// again is a no-op success, with no extra timeline entry.
	if job.Status == newStatus {
		return job, nil
	}

	if !job.Status.CanTransitionTo(newStatus) {
		return nil, domainerrors.ErrInvalidTransition.WrapMessage(
			fmt.Sprintf("cannot move job from %s to %s", job.Status, newStatus))
	}

	updated, err := s.applyStatus(ctx, job, actorID, newStatus, notes)
	if err == nil {
		return updated, nil
	}
	if !errors.Is(err, domainerrors.ErrConflict) {
		return nil, err
	}

	// Lost the optimistic-concurrency race: re-read once and re-apply if the
	// caller's intent is still valid from the new current state.
	fresh, ferr := s.findJob(ctx, jobID)
	if ferr != nil {
		return nil, ferr
	}
	if fresh.Status == newStatus {
		return fresh, nil
	}
	if !fresh.Status.CanTransitionTo(newStatus) {
		return nil, domainerrors.ErrInvalidTransition.WrapMessage(
			fmt.Sprintf("cannot move job from %s to %s", fresh.Status, newStatus))
	}

	return s.applyStatus(ctx, fresh, actorID, newStatus, notes)
}

// applyStatus commits one transition atomically (CAS update + timeline entry)
// and fires the post-commit side effects.
func (s *jobService) applyStatus(ctx context.Context, job *entity.Job, actorID uuid.UUID, newStatus entity.JobStatus, notes string) (*entity.Job, error) {
	now := time.Now()
	fields := map[string]any{}
	switch newStatus {
	case entity.JobStatusInProgress:
		if job.StartedAt == nil {
			fields["started_at"] = now
		}
	case entity.JobStatusCompleted:
		fields["completed_at"] = now
	case entity.JobStatusCanceled:
		// A mechanic reference is only held by ACCEPTED/IN_PROGRESS/COMPLETED
		// jobs; canceling releases the assignment.
		fields["mechanic_id"] = nil
		fields["mechanic_lat"] = nil
		fields["mechanic_lng"] = nil
		fields["eta"] = nil
	}

	from := job.Status
	err := s.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		ok, err := f.JobRepo().UpdateJobStatusCAS(ctx, job.ID, from, newStatus, fields)
		if err != nil {
			return domainerrors.NewStorageError(err, "failed to update job status")
		}
		if !ok {
			return errors.WithStack(domainerrors.ErrConflict)
		}

		return f.JobRepo().AppendTimelineEntry(ctx, &entity.TimelineEntry{
			ID:         uuid.New(),
			JobID:      job.ID,
			ActorID:    &actorID,
			FromStatus: from,
			ToStatus:   newStatus,
			Notes:      notes,
			CreatedAt:  now,
		})
	})
	if err != nil {
		return nil, err
	}

	updated, err := s.findJob(ctx, job.ID)
	if err != nil {
		return nil, err
	}

	s.afterTransition(ctx, updated, actorID, from, newStatus)

	return updated, nil
}

// afterTransition fans a committed transition out to participants, the job
// room and the analytics topic. All of it is best-effort.
func (s *jobService) afterTransition(ctx context.Context, job *entity.Job, actorID uuid.UUID, from, to entity.JobStatus) {
	s.dispatcher.DispatchJobEvent(ctx, job, actorID, entity.NotificationTypeJobUpdate,
		"Job "+job.Title,
		fmt.Sprintf("Job status changed from %s to %s", from, to),
		map[string]string{"job_id": job.ID.String(), "status": string(to)},
	)

	if to == entity.JobStatusCompleted && job.MechanicID != nil {
		// The review prompt is always persisted, online or not.
		s.dispatcher.DispatchJobEvent(ctx, job, *job.MechanicID, entity.NotificationTypeReviewRequest,
			"How did it go?",
			"Your job is complete. Leave a review for your mechanic.",
			map[string]string{"job_id": job.ID.String()},
		)
	}

	s.broadcaster.Publish(service.JobRoom(job.ID), &service.Event{
		Type: service.EventJobStatusUpdated,
		Data: map[string]any{
			"job":        job,
			"updated_by": actorID,
		},
		Timestamp: time.Now(),
	})

	s.publishLifecycle(ctx, job, from, to)
}

// UpdateMechanicLocation stores the mechanic's live position while the job is
// in the active window.
func (s *jobService) UpdateMechanicLocation(ctx context.Context, jobID, actorID uuid.UUID, lat, lng float64, etaMinutes *int) (*entity.Job, error) {
	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("coordinates out of range")
	}

	job, err := s.findJob(ctx, jobID)
	if err != nil {
		return nil, err
	}

	if job.MechanicID == nil || *job.MechanicID != actorID {
		return nil, domainerrors.ErrForbidden.WrapMessage("only the assigned mechanic may report location")
	}
	if !job.Status.AllowsLocationUpdates() {
		return nil, domainerrors.ErrInvalidTransition.WrapMessage(
			fmt.Sprintf("location updates are not accepted while the job is %s", job.Status))
	}

	eta := s.estimateArrival(job, lat, lng, etaMinutes)

	if err := s.jobRepo.UpdateJobLocation(ctx, jobID, lat, lng, eta); err != nil {
		return nil, domainerrors.NewStorageError(err, "failed to update job location")
	}

	job.MechanicLat = &lat
	job.MechanicLng = &lng
	job.ETA = eta

	s.broadcaster.Publish(service.JobRoom(job.ID), &service.Event{
		Type: service.EventJobLocationUpdated,
		Data: map[string]any{
			"location": map[string]float64{"lat": lat, "lng": lng},
			"eta":      eta,
		},
		Timestamp: time.Now(),
	})

	return job, nil
}

// estimateArrival converts mechanic-supplied minutes into a timestamp, falling
// back to a straight-line estimate at the configured average speed when the
// job has coordinates.
func (s *jobService) estimateArrival(job *entity.Job, lat, lng float64, etaMinutes *int) *time.Time {
	if etaMinutes != nil {
		t := time.Now().Add(time.Duration(*etaMinutes) * time.Minute)

		return &t
	}

	if job.Latitude == nil || job.Longitude == nil {
		return nil
	}

	meters := geo.Distance(orb.Point{lng, lat}, orb.Point{*job.Longitude, *job.Latitude})
	metersPerMinute := s.cfg.Business.AverageSpeedKMH * 1000 / 60
	if metersPerMinute <= 0 {
		return nil
	}

	t := time.Now().Add(time.Duration(meters/metersPerMinute) * time.Minute)

	return &t
}

// AddJobPart appends a parts-used line and folds its cost into the totals.
func (s *jobService) AddJobPart(ctx context.Context, jobID, actorID uuid.UUID, input *usecase.JobPartInput) (*entity.Job, error) {
	if input.Name == "" || input.Quantity <= 0 || input.UnitPrice < 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("part requires a name, positive quantity and non-negative unit price")
	}

	job, err := s.findJob(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job.MechanicID == nil || *job.MechanicID != actorID {
		return nil, domainerrors.ErrForbidden.WrapMessage("only the assigned mechanic may add parts")
	}
	if !job.Status.AllowsLocationUpdates() {
		return nil, domainerrors.ErrInvalidTransition.WrapMessage("parts can only be added to an accepted or in-progress job")
	}

	part := &entity.JobPart{
		ID:        uuid.New(),
		JobID:     jobID,
		Name:      input.Name,
		Quantity:  input.Quantity,
		UnitPrice: input.UnitPrice,
		CreatedAt: time.Now(),
	}
	if err := s.jobRepo.AddJobPart(ctx, part); err != nil {
		return nil, domainerrors.NewStorageError(err, "failed to add job part")
	}

	job.Totals.Parts += float64(part.Quantity) * part.UnitPrice
	job.Totals.Recompute()
	if err := s.jobRepo.UpdateJobTotals(ctx, jobID, job.Totals); err != nil {
		return nil, domainerrors.NewStorageError(err, "failed to update job totals")
	}

	s.broadcastJobUpdated(job)

	return job, nil
}

// UpdateJobTotals replaces the cost subtotals. Discounts exceeding the cost
// clamp the grand total to zero; they are not rejected.
func (s *jobService) UpdateJobTotals(ctx context.Context, jobID, actorID uuid.UUID, input *usecase.JobTotalsInput) (*entity.Job, error) {
	if input.Labor < 0 || input.Parts < 0 || input.Fees < 0 || input.Discounts < 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("cost subtotals must be non-negative")
	}

	job, err := s.findJob(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job.MechanicID == nil || *job.MechanicID != actorID {
		return nil, domainerrors.ErrForbidden.WrapMessage("only the assigned mechanic may update totals")
	}

	job.Totals = entity.JobTotals{
		Labor:     input.Labor,
		Parts:     input.Parts,
		Fees:      input.Fees,
		Discounts: input.Discounts,
	}
	job.Totals.Recompute()

	if err := s.jobRepo.UpdateJobTotals(ctx, jobID, job.Totals); err != nil {
		return nil, domainerrors.NewStorageError(err, "failed to update job totals")
	}

	s.broadcastJobUpdated(job)

	return job, nil
}

// ListJobParts returns the job's parts-used list in creation order.
func (s *jobService) ListJobParts(ctx context.Context, jobID, actorID uuid.UUID, role entity.Role) ([]*entity.JobPart, error) {
	job, err := s.findJob(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if err := authorizeJobAccess(job, actorID, role); err != nil {
		return nil, err
	}

	parts, err := s.jobRepo.FindJobParts(ctx, jobID)
	if err != nil {
		return nil, domainerrors.NewStorageError(err, "failed to list job parts")
	}

	return parts, nil
}

// AddTimerEntry appends one work-timer action. Only the assigned mechanic may
// record entries, only while the job is IN_PROGRESS, and the action must
// legally follow the last recorded one.
func (s *jobService) AddTimerEntry(ctx context.Context, jobID, actorID uuid.UUID, action entity.TimerAction) (*entity.TimerEntry, error) {
	if !action.Valid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage(fmt.Sprintf("unknown timer action %q", action))
	}

	job, err := s.findJob(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job.MechanicID == nil || *job.MechanicID != actorID {
		return nil, domainerrors.ErrForbidden.WrapMessage("only the assigned mechanic may record timer entries")
	}
	if job.Status != entity.JobStatusInProgress {
		return nil, domainerrors.ErrInvalidTransition.WrapMessage(
			fmt.Sprintf("the work timer only runs while the job is IN_PROGRESS, not %s", job.Status))
	}

	existing, err := s.jobRepo.FindTimerEntriesByJob(ctx, jobID)
	if err != nil {
		return nil, domainerrors.NewStorageError(err, "failed to load timer entries")
	}

	var last entity.TimerAction
	if len(existing) > 0 {
		last = existing[len(existing)-1].Action
	}
	if !action.CanFollow(last) {
		if last == "" {
			return nil, domainerrors.ErrInvalidTransition.WrapMessage("the timer must be started first")
		}

		return nil, domainerrors.ErrInvalidTransition.WrapMessage(
			fmt.Sprintf("timer action %s cannot follow %s", action, last))
	}

	entry := &entity.TimerEntry{
		ID:        uuid.New(),
		JobID:     jobID,
		ActorID:   actorID,
		Action:    action,
		CreatedAt: time.Now(),
	}
	if err := s.jobRepo.AppendTimerEntry(ctx, entry); err != nil {
		return nil, domainerrors.NewStorageError(err, "failed to append timer entry")
	}

	s.broadcaster.Publish(service.JobRoom(jobID), &service.Event{
		Type:      service.EventJobUpdated,
		Data:      map[string]any{"timer_entry": entry},
		Timestamp: time.Now(),
	})

	return entry, nil
}

// GetTimerEntries returns the job's work-timer history.
func (s *jobService) GetTimerEntries(ctx context.Context, jobID, actorID uuid.UUID, role entity.Role) ([]*entity.TimerEntry, error) {
	job, err := s.findJob(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if err := authorizeJobAccess(job, actorID, role); err != nil {
		return nil, err
	}

	entries, err := s.jobRepo.FindTimerEntriesByJob(ctx, jobID)
	if err != nil {
		return nil, domainerrors.NewStorageError(err, "failed to load timer entries")
	}

	return entries, nil
}

// AddJobPhoto attaches an uploaded photo URL to the job. Any participant may
// attach photos until the job is canceled.
func (s *jobService) AddJobPhoto(ctx context.Context, jobID, actorID uuid.UUID, role entity.Role, url, caption string) (*entity.JobPhoto, error) {
	if url == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("photo URL is required")
	}

	job, err := s.findJob(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if err := authorizeJobAccess(job, actorID, role); err != nil {
		return nil, err
	}
	if job.Status == entity.JobStatusCanceled {
		return nil, domainerrors.ErrInvalidTransition.WrapMessage("photos cannot be added to a canceled job")
	}

	photo := &entity.JobPhoto{
		ID:         uuid.New(),
		JobID:      jobID,
		UploaderID: actorID,
		URL:        url,
		Caption:    caption,
		CreatedAt:  time.Now(),
	}
	if err := s.jobRepo.AddJobPhoto(ctx, photo); err != nil {
		return nil, domainerrors.NewStorageError(err, "failed to add job photo")
	}

	s.broadcaster.Publish(service.JobRoom(jobID), &service.Event{
		Type:      service.EventJobUpdated,
		Data:      map[string]any{"photo": photo},
		Timestamp: time.Now(),
	})

	return photo, nil
}

// ListJobPhotos returns the job's photos in creation order.
func (s *jobService) ListJobPhotos(ctx context.Context, jobID, actorID uuid.UUID, role entity.Role) ([]*entity.JobPhoto, error) {
	job, err := s.findJob(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if err := authorizeJobAccess(job, actorID, role); err != nil {
		return nil, err
	}

	photos, err := s.jobRepo.FindJobPhotos(ctx, jobID)
	if err != nil {
		return nil, domainerrors.NewStorageError(err, "failed to list job photos")
	}

	return photos, nil
}

// GetTimeline returns the job's lifecycle history.
func (s *jobService) GetTimeline(ctx context.Context, jobID, actorID uuid.UUID, role entity.Role) ([]*entity.TimelineEntry, error) {
	job, err := s.findJob(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if err := authorizeJobAccess(job, actorID, role); err != nil {
		return nil, err
	}

	entries, err := s.jobRepo.FindTimelineByJob(ctx, jobID)
	if err != nil {
		return nil, domainerrors.NewStorageError(err, "failed to load job timeline")
	}

	return entries, nil
}

// CheckInQR renders the on-site check-in QR code for a job.
func (s *jobService) CheckInQR(ctx context.Context, jobID, actorID uuid.UUID, role entity.Role) ([]byte, error) {
	job, err := s.findJob(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if err := authorizeJobAccess(job, actorID, role); err != nil {
		return nil, err
	}

	png, err := s.qrSvc.Generate("wrench://jobs/" + job.ID.String() + "/check-in")
	if err != nil {
		return nil, errors.Wrap(err, "failed to render check-in QR code")
	}

	return png, nil
}

// CreateDepositIntent registers the up-front deposit charge for an accepted job.
func (s *jobService) CreateDepositIntent(ctx context.Context, jobID, customerID uuid.UUID) (string, error) {
	job, err := s.findJob(ctx, jobID)
	if err != nil {
		return "", err
	}
	if job.CustomerID != customerID {
		return "", domainerrors.ErrForbidden.WrapMessage("only the job's customer may pay the deposit")
	}
	if job.Status != entity.JobStatusAccepted {
		return "", domainerrors.ErrInvalidTransition.WrapMessage("the deposit is only charged once a quote has been accepted")
	}

	quote, err := s.quoteRepo.FindQuoteByJob(ctx, jobID)
	if err != nil {
		if errors.Is(err, repository.ErrQuoteNotFound) {
			return "", domainerrors.ErrNotFound.WrapMessage("job has no quote")
		}

		return "", domainerrors.NewStorageError(err, "failed to load quote")
	}

	amountCents := int64(math.Round(quote.Amount * s.cfg.Business.DepositFraction * 100))
	currency := quote.Currency
	if currency == "" {
		currency = "usd"
	}

	clientSecret, intentID, err := s.paymentSvc.CreatePaymentIntent(ctx, amountCents, currency, map[string]string{
		"job_id":   job.ID.String(),
		"quote_id": quote.ID.String(),
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to create payment intent")
	}

	s.logger.Info("Deposit intent created",
		slog.String("jobID", job.ID.String()),
		slog.String("intentID", intentID),
		slog.Int64("amountCents", amountCents),
	)

	return clientSecret, nil
}

// ConfirmPayment reacts to the gateway's payment-confirmed webhook signal.
func (s *jobService) ConfirmPayment(ctx context.Context, jobID uuid.UUID) (*entity.Job, error) {
	job, err := s.findJob(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job.PaidAt != nil {
		// The gateway retries webhooks; a second confirmation is a no-op.
		return job, nil
	}

	now := time.Now()
	if err := s.jobRepo.MarkJobPaid(ctx, jobID, now); err != nil {
		return nil, domainerrors.NewStorageError(err, "failed to mark job paid")
	}
	job.PaidAt = &now

	s.dispatcher.DispatchJobEvent(ctx, job, uuid.Nil, entity.NotificationTypePaymentUpdate,
		"Payment received",
		"The deposit for \""+job.Title+"\" has been confirmed.",
		map[string]string{"job_id": job.ID.String()},
	)
	s.broadcastJobUpdated(job)

	return job, nil
}

// --- helpers ---

func (s *jobService) findJob(ctx context.Context, jobID uuid.UUID) (*entity.Job, error) {
	job, err := s.jobRepo.FindJobByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("job not found")
		}

		return nil, domainerrors.NewStorageError(err, "failed to find job")
	}

	return job, nil
}

func (s *jobService) appendTimeline(ctx context.Context, repo repository.JobRepository, jobID uuid.UUID, actorID *uuid.UUID, from, to entity.JobStatus, notes string) {
	err := repo.AppendTimelineEntry(ctx, &entity.TimelineEntry{
		ID:         uuid.New(),
		JobID:      jobID,
		ActorID:    actorID,
		FromStatus: from,
		ToStatus:   to,
		Notes:      notes,
		CreatedAt:  time.Now(),
	})
	if err != nil {
		s.logger.Error("Failed to append timeline entry",
			slog.String("jobID", jobID.String()),
			slog.Any("error", err),
		)
	}
}

func (s *jobService) broadcastJobUpdated(job *entity.Job) {
	s.broadcaster.Publish(service.JobRoom(job.ID), &service.Event{
		Type:      service.EventJobUpdated,
		Data:      map[string]any{"job": job},
		Timestamp: time.Now(),
	})
}

func (s *jobService) publishLifecycle(ctx context.Context, job *entity.Job, from, to entity.JobStatus) {
	event := &service.JobLifecycleEvent{
		JobID:      job.ID.String(),
		CustomerID: job.CustomerID.String(),
		FromStatus: string(from),
		ToStatus:   string(to),
		OccurredAt: time.Now(),
	}
	if job.MechanicID != nil {
		event.MechanicID = job.MechanicID.String()
	}

	if err := s.publisher.PublishJobEvent(ctx, event); err != nil {
		s.logger.Warn("Failed to publish job lifecycle event",
			slog.String("jobID", job.ID.String()),
			slog.Any("error", err),
		)
	}
}

// authorizeJobAccess permits the job's participants and admins.
func authorizeJobAccess(job *entity.Job, actorID uuid.UUID, role entity.Role) error {
	if role == entity.RoleAdmin || job.IsParticipant(actorID) {
		return nil
	}

	return domainerrors.ErrForbidden.WrapMessage("you are not a participant of this job")
}

// authorizeStatusChange enforces who may drive which transition: cancellation
// is open to either party, everything else to the assigned mechanic. Admins
// may always act.
func authorizeStatusChange(job *entity.Job, actorID uuid.UUID, role entity.Role, newStatus entity.JobStatus) error {
	if role == entity.RoleAdmin {
		return nil
	}
	if newStatus == entity.JobStatusCanceled {
		if job.IsParticipant(actorID) {
			return nil
		}

		return domainerrors.ErrForbidden.WrapMessage("only a participant may cancel the job")
	}
	if job.MechanicID != nil && *job.MechanicID == actorID {
		return nil
	}

	return domainerrors.ErrForbidden.WrapMessage("only the assigned mechanic may change the job status")
}
