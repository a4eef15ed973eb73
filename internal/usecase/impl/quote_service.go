package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"wrench/config"
	"wrench/internal/domain/entity"
	domainerrors "wrench/internal/domain/errors"
	"wrench/internal/domain/repository"
	"wrench/internal/domain/service"
	"wrench/internal/errors"
	"wrench/internal/usecase"

	"github.com/google/uuid"
)

type quoteService struct {
	quoteRepo repository.QuoteRepository
	jobRepo   repository.JobRepository
	txManager repository.TransactionManager

	dispatcher  usecase.Dispatcher
	broadcaster service.RoomBroadcaster
	publisher   service.EventPublisher

	cfg    *config.Config
	logger *slog.Logger
}

// NewQuoteService creates the quote transition engine.
func NewQuoteService(
	quoteRepo repository.QuoteRepository,
	jobRepo repository.JobRepository,
	txManager repository.TransactionManager,
	dispatcher usecase.Dispatcher,
	broadcaster service.RoomBroadcaster,
	publisher service.EventPublisher,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.QuoteUsecase {
	return &quoteService{
		quoteRepo:   quoteRepo,
		jobRepo:     jobRepo,
		txManager:   txManager,
		dispatcher:  dispatcher,
		broadcaster: broadcaster,
		publisher:   publisher,
		cfg:         cfg,
		logger:      logger,
	}
}

// CreateQuote creates a PENDING quote bound to a PENDING or QUOTED job. A
// PENDING job moves to QUOTED in the same transaction; a QUOTED job stays
// QUOTED, so a mechanic can revise after a rejection and competing mechanics
// can quote the same request.
func (s *quoteService) CreateQuote(ctx context.Context, mechanicID uuid.UUID, input *usecase.CreateQuoteInput) (*entity.Quote, error) {
	if input.LaborCost < 0 || input.PartsCost < 0 || input.TravelCost < 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("quote costs must be non-negative")
	}
	if input.Total != nil && *input.Total < 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("quote total must be non-negative")
	}

	job, err := s.findJob(ctx, input.JobID)
	if err != nil {
		return nil, err
	}
	if job.CustomerID == mechanicID {
		return nil, domainerrors.ErrForbidden.WrapMessage("you cannot quote your own service request")
	}
	if job.Status != entity.JobStatusPending && job.Status != entity.JobStatusQuoted {
		return nil, domainerrors.ErrInvalidTransition.WrapMessage(
			fmt.Sprintf("job is %s and no longer accepts quotes", job.Status))
	}

	now := time.Now()
	amount := s.quoteAmount(input)
	validUntil := now.Add(s.cfg.Business.QuoteValidity)
	if input.ValidUntil != nil {
		validUntil = *input.ValidUntil
	}
	currency := input.Currency
	if currency == "" {
		currency = "usd"
	}

	quote := &entity.Quote{
		ID:          uuid.New(),
		JobID:       job.ID,
		CustomerID:  job.CustomerID,
		MechanicID:  mechanicID,
		Status:      entity.QuoteStatusPending,
		LaborCost:   input.LaborCost,
		PartsCost:   input.PartsCost,
		TravelCost:  input.TravelCost,
		Amount:      amount,
		Currency:    currency,
		Description: input.Description,
		ValidUntil:  validUntil,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	transitioned := false
	err = s.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		if err := f.QuoteRepo().CreateQuote(ctx, quote); err != nil {
			return domainerrors.NewStorageError(err, "failed to create quote")
		}

		if job.Status == entity.JobStatusQuoted {
			// Revised or competing quote: the job is already QUOTED.
			return nil
		}

		ok, err := f.JobRepo().UpdateJobStatusCAS(ctx, job.ID, entity.JobStatusPending, entity.JobStatusQuoted, nil)
		if err != nil {
			return domainerrors.NewStorageError(err, "failed to move job to quoted")
		}
		if !ok {
			// Another quote may have won the PENDING->QUOTED race; the job
			// still accepts this quote as long as it landed on QUOTED.
			fresh, err := f.JobRepo().FindJobByID(ctx, job.ID)
			if err != nil {
				return domainerrors.NewStorageError(err, "failed to re-read job")
			}
			if fresh.Status != entity.JobStatusQuoted {
				return errors.WithStack(domainerrors.ErrConflict)
			}

			return nil
		}
		transitioned = true

		return f.JobRepo().AppendTimelineEntry(ctx, &entity.TimelineEntry{
			ID:         uuid.New(),
			JobID:      job.ID,
			ActorID:    &mechanicID,
			FromStatus: entity.JobStatusPending,
			ToStatus:   entity.JobStatusQuoted,
			Notes:      "quote submitted",
			CreatedAt:  now,
		})
	})
	if err != nil {
		return nil, err
	}

	job.Status = entity.JobStatusQuoted

	s.dispatcher.DispatchJobEvent(ctx, job, mechanicID, entity.NotificationTypeJobUpdate,
		"New quote received",
		fmt.Sprintf("A mechanic quoted %.2f %s for \"%s\".", quote.Amount, quote.Currency, job.Title),
		map[string]string{"job_id": job.ID.String(), "quote_id": quote.ID.String()},
	)
	s.broadcaster.Publish(service.JobRoom(job.ID), &service.Event{
		Type:      service.EventJobUpdated,
		Data:      map[string]any{"job": job, "quote": quote},
		Timestamp: time.Now(),
	})
	if transitioned {
		s.publishLifecycle(ctx, job, entity.JobStatusPending, entity.JobStatusQuoted)
	}

	return quote, nil
}

// quoteAmount returns the explicit total when provided; otherwise the sum of
// the cost components with the configured tax rate applied.
func (s *quoteService) quoteAmount(input *usecase.CreateQuoteInput) float64 {
	if input.Total != nil {
		return *input.Total
	}

	subtotal := input.LaborCost + input.PartsCost + input.TravelCost

	return subtotal * (1 + s.cfg.Business.TaxRate)
}

// GetQuote returns a quote if the actor participates in the bound job.
func (s *quoteService) GetQuote(ctx context.Context, quoteID, actorID uuid.UUID, role entity.Role) (*entity.Quote, error) {
	quote, err := s.findQuote(ctx, quoteID)
	if err != nil {
		return nil, err
	}

	if role != entity.RoleAdmin && quote.CustomerID != actorID && quote.MechanicID != actorID {
		return nil, domainerrors.ErrForbidden.WrapMessage("you are not a participant of this quote")
	}

	return quote, nil
}

// AcceptQuote accepts a quote on behalf of the job's customer, assigning the
// mechanic and moving the job to ACCEPTED in one transaction.
func (s *quoteService) AcceptQuote(ctx context.Context, quoteID, customerID uuid.UUID) (*usecase.AcceptQuoteResult, error) {
	quote, err := s.findQuote(ctx, quoteID)
	if err != nil {
		return nil, err
	}
	if quote.CustomerID != customerID {
		return nil, domainerrors.ErrForbidden.WrapMessage("only the job's customer may accept the quote")
	}

	// Double-tap or retried request: the quote is already accepted, return
	// the current state without re-running side effects.
	if quote.Status == entity.QuoteStatusAccepted {
		job, err := s.findJob(ctx, quote.JobID)
		if err != nil {
			return nil, err
		}

		return &usecase.AcceptQuoteResult{Quote: quote, Job: job}, nil
	}

	now := time.Now()
	if quote.Status == entity.QuoteStatusRejected {
		return nil, domainerrors.ErrInvalidTransition.WrapMessage("a rejected quote cannot be accepted")
	}
	if quote.Expired(now) {
		return nil, domainerrors.ErrQuoteExpired.WrapMessage("the quote has expired and must be re-issued")
	}

	mechanicID := quote.MechanicID
	err = s.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		ok, err := f.QuoteRepo().UpdateQuoteStatusCAS(ctx, quote.ID,
			[]entity.QuoteStatus{entity.QuoteStatusPending, entity.QuoteStatusApproved},
			entity.QuoteStatusAccepted)
		if err != nil {
			return domainerrors.NewStorageError(err, "failed to accept quote")
		}
		if !ok {
			return errors.WithStack(domainerrors.ErrConflict)
		}

		ok, err = f.JobRepo().UpdateJobStatusCAS(ctx, quote.JobID, entity.JobStatusQuoted, entity.JobStatusAccepted,
			map[string]any{"mechanic_id": mechanicID})
		if err != nil {
			return domainerrors.NewStorageError(err, "failed to assign job")
		}
		if !ok {
			return errors.WithStack(domainerrors.ErrConflict)
		}

		return f.JobRepo().AppendTimelineEntry(ctx, &entity.TimelineEntry{
			ID:         uuid.New(),
			JobID:      quote.JobID,
			ActorID:    &customerID,
			FromStatus: entity.JobStatusQuoted,
			ToStatus:   entity.JobStatusAccepted,
			Notes:      "quote accepted",
			CreatedAt:  now,
		})
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrConflict) {
			// Lost the race; if the winner was this same acceptance the
			// operation still succeeded.
			fresh, ferr := s.findQuote(ctx, quoteID)
			if ferr == nil && fresh.Status == entity.QuoteStatusAccepted {
				job, jerr := s.findJob(ctx, fresh.JobID)
				if jerr != nil {
					return nil, jerr
				}

				return &usecase.AcceptQuoteResult{Quote: fresh, Job: job}, nil
			}
		}

		return nil, err
	}

	quote.Status = entity.QuoteStatusAccepted
	quote.UpdatedAt = now

	job, err := s.findJob(ctx, quote.JobID)
	if err != nil {
		return nil, err
	}

	s.dispatcher.DispatchJobEvent(ctx, job, customerID, entity.NotificationTypeJobUpdate,
		"Quote accepted",
		"Your quote for \""+job.Title+"\" was accepted. You are assigned to the job.",
		map[string]string{"job_id": job.ID.String(), "quote_id": quote.ID.String()},
	)
	s.broadcaster.Publish(service.JobRoom(job.ID), &service.Event{
		Type: service.EventJobStatusUpdated,
		Data: map[string]any{
			"job":        job,
			"updated_by": customerID,
		},
		Timestamp: time.Now(),
	})
	s.publishLifecycle(ctx, job, entity.JobStatusQuoted, entity.JobStatusAccepted)

	return &usecase.AcceptQuoteResult{Quote: quote, Job: job}, nil
}

// RejectQuote rejects a PENDING or APPROVED quote. The job stays QUOTED so
// the mechanic may submit a revised quote.
func (s *quoteService) RejectQuote(ctx context.Context, quoteID, customerID uuid.UUID) (*entity.Quote, error) {
	quote, err := s.findQuote(ctx, quoteID)
	if err != nil {
		return nil, err
	}
	if quote.CustomerID != customerID {
		return nil, domainerrors.ErrForbidden.WrapMessage("only the job's customer may reject the quote")
	}

	if quote.Status == entity.QuoteStatusRejected {
		return quote, nil
	}
	if quote.Status == entity.QuoteStatusAccepted {
		return nil, domainerrors.ErrInvalidTransition.WrapMessage("an accepted quote cannot be rejected")
	}

	ok, err := s.quoteRepo.UpdateQuoteStatusCAS(ctx, quote.ID,
		[]entity.QuoteStatus{entity.QuoteStatusPending, entity.QuoteStatusApproved},
		entity.QuoteStatusRejected)
	if err != nil {
		return nil, domainerrors.NewStorageError(err, "failed to reject quote")
	}
	if !ok {
		return nil, errors.WithStack(domainerrors.ErrConflict)
	}

	quote.Status = entity.QuoteStatusRejected
	quote.UpdatedAt = time.Now()

	if job, jerr := s.findJob(ctx, quote.JobID); jerr == nil {
		s.dispatcher.DispatchJobEvent(ctx, job, customerID, entity.NotificationTypeJobUpdate,
			"Quote declined",
			"Your quote for \""+job.Title+"\" was declined.",
			map[string]string{"job_id": job.ID.String(), "quote_id": quote.ID.String()},
		)
	}

	return quote, nil
}

// ApproveQuote marks a PENDING quote as admin-approved.
func (s *quoteService) ApproveQuote(ctx context.Context, quoteID uuid.UUID) (*entity.Quote, error) {
	quote, err := s.findQuote(ctx, quoteID)
	if err != nil {
		return nil, err
	}

	if quote.Status == entity.QuoteStatusApproved {
		return quote, nil
	}
	if quote.Status != entity.QuoteStatusPending {
		return nil, domainerrors.ErrInvalidTransition.WrapMessage(
			fmt.Sprintf("a %s quote cannot be approved", quote.Status))
	}

	ok, err := s.quoteRepo.UpdateQuoteStatusCAS(ctx, quote.ID,
		[]entity.QuoteStatus{entity.QuoteStatusPending}, entity.QuoteStatusApproved)
	if err != nil {
		return nil, domainerrors.NewStorageError(err, "failed to approve quote")
	}
	if !ok {
		return nil, errors.WithStack(domainerrors.ErrConflict)
	}

	quote.Status = entity.QuoteStatusApproved
	quote.UpdatedAt = time.Now()

	return quote, nil
}

func (s *quoteService) findQuote(ctx context.Context, quoteID uuid.UUID) (*entity.Quote, error) {
	quote, err := s.quoteRepo.FindQuoteByID(ctx, quoteID)
	if err != nil {
		if errors.Is(err, repository.ErrQuoteNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("quote not found")
		}

		return nil, domainerrors.NewStorageError(err, "failed to find quote")
	}

	return quote, nil
}

func (s *quoteService) findJob(ctx context.Context, jobID uuid.UUID) (*entity.Job, error) {
	job, err := s.jobRepo.FindJobByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("job not found")
		}

		return nil, domainerrors.NewStorageError(err, "failed to find job")
	}

	return job, nil
}

func (s *quoteService) publishLifecycle(ctx context.Context, job *entity.Job, from, to entity.JobStatus) {
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
