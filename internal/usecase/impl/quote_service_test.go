package impl

import (
	"context"
	"testing"
	"time"

	"wrench/internal/domain/entity"
	domainerrors "wrench/internal/domain/errors"
	"wrench/internal/domain/repository"
	mockRepo "wrench/internal/mocks/repository"
	mockSvc "wrench/internal/mocks/service"
	mockUC "wrench/internal/mocks/usecase"
	"wrench/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type quoteServiceMocks struct {
	quoteRepo   *mockRepo.MockQuoteRepository
	jobRepo     *mockRepo.MockJobRepository
	txManager   *mockRepo.MockTransactionManager
	factory     *mockRepo.MockRepositoryFactory
	dispatcher  *mockUC.MockDispatcher
	broadcaster *mockSvc.MockRoomBroadcaster
	publisher   *mockSvc.MockEventPublisher
}

func createTestQuoteService(t *testing.T) (usecase.QuoteUsecase, *quoteServiceMocks) {
	m := &quoteServiceMocks{
		quoteRepo:   mockRepo.NewMockQuoteRepository(t),
		jobRepo:     mockRepo.NewMockJobRepository(t),
		txManager:   mockRepo.NewMockTransactionManager(t),
		factory:     mockRepo.NewMockRepositoryFactory(t),
		dispatcher:  mockUC.NewMockDispatcher(t),
		broadcaster: mockSvc.NewMockRoomBroadcaster(t),
		publisher:   mockSvc.NewMockEventPublisher(t),
	}

	service := NewQuoteService(
		m.quoteRepo,
		m.jobRepo,
		m.txManager,
		m.dispatcher,
		m.broadcaster,
		m.publisher,
		newTestConfig(),
		newDiscardLogger(),
	)

	return service, m
}

func (m *quoteServiceMocks) expectTransaction(ctx context.Context) {
	m.factory.EXPECT().JobRepo().Return(m.jobRepo).Maybe()
	m.factory.EXPECT().QuoteRepo().Return(m.quoteRepo).Maybe()
	m.txManager.EXPECT().Execute(ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(m.factory)
		})
}

func pendingQuote(jobID, customerID, mechanicID uuid.UUID) *entity.Quote {
	return &entity.Quote{
		ID:         uuid.New(),
		JobID:      jobID,
		CustomerID: customerID,
		MechanicID: mechanicID,
		Status:     entity.QuoteStatusPending,
		Amount:     86.4,
		Currency:   "usd",
		ValidUntil: time.Now().Add(24 * time.Hour),
	}
}

func TestQuoteService_CreateQuote_AppliesTaxWhenNoExplicitTotal(t *testing.T) {
	service, m := createTestQuoteService(t)

	ctx := context.Background()
	mechanicID := uuid.New()
	job := &entity.Job{
		ID:         uuid.New(),
		Title:      "Dead battery",
		Status:     entity.JobStatusPending,
		CustomerID: uuid.New(),
	}

	m.jobRepo.EXPECT().FindJobByID(ctx, job.ID).Return(job, nil)
	m.expectTransaction(ctx)
	m.quoteRepo.EXPECT().CreateQuote(ctx, mock.Anything).Return(nil)
	m.jobRepo.EXPECT().
		UpdateJobStatusCAS(ctx, job.ID, entity.JobStatusPending, entity.JobStatusQuoted, mock.Anything).
		Return(true, nil)
	m.jobRepo.EXPECT().AppendTimelineEntry(ctx, mock.Anything).Return(nil)
	m.dispatcher.EXPECT().
		DispatchJobEvent(ctx, mock.Anything, mechanicID, entity.NotificationTypeJobUpdate, mock.Anything, mock.Anything, mock.Anything).
		Return()
	m.broadcaster.EXPECT().Publish("job:"+job.ID.String(), mock.Anything).Return()
	m.publisher.EXPECT().PublishJobEvent(ctx, mock.Anything).Return(nil)

	quote, err := service.CreateQuote(ctx, mechanicID, &usecase.CreateQuoteInput{
		JobID:      job.ID,
		LaborCost:  20,
		PartsCost:  50,
		TravelCost: 10,
	})

	require.NoError(t, err)
	// (20 + 50 + 10) * 1.08
	assert.InDelta(t, 86.4, quote.Amount, 0.001)
	assert.Equal(t, entity.QuoteStatusPending, quote.Status)
	assert.Equal(t, "usd", quote.Currency)
	assert.WithinDuration(t, time.Now().Add(48*time.Hour), quote.ValidUntil, 5*time.Second)
}

func TestQuoteService_CreateQuote_ExplicitTotalWins(t *testing.T) {
	service, m := createTestQuoteService(t)

	ctx := context.Background()
	mechanicID := uuid.New()
	job := &entity.Job{
		ID:         uuid.New(),
		Status:     entity.JobStatusPending,
		CustomerID: uuid.New(),
	}
	total := 99.0

	m.jobRepo.EXPECT().FindJobByID(ctx, job.ID).Return(job, nil)
	m.expectTransaction(ctx)
	m.quoteRepo.EXPECT().CreateQuote(ctx, mock.Anything).Return(nil)
	m.jobRepo.EXPECT().
		UpdateJobStatusCAS(ctx, job.ID, entity.JobStatusPending, entity.JobStatusQuoted, mock.Anything).
		Return(true, nil)
	m.jobRepo.EXPECT().AppendTimelineEntry(ctx, mock.Anything).Return(nil)
	m.dispatcher.EXPECT().
		DispatchJobEvent(ctx, mock.Anything, mechanicID, entity.NotificationTypeJobUpdate, mock.Anything, mock.Anything, mock.Anything).
		Return()
	m.broadcaster.EXPECT().Publish(mock.Anything, mock.Anything).Return()
	m.publisher.EXPECT().PublishJobEvent(ctx, mock.Anything).Return(nil)

	quote, err := service.CreateQuote(ctx, mechanicID, &usecase.CreateQuoteInput{
		JobID:     job.ID,
		LaborCost: 20,
		Total:     &total,
	})

	require.NoError(t, err)
	assert.InDelta(t, 99.0, quote.Amount, 0.001)
}

func TestQuoteService_CreateQuote_OwnJobForbidden(t *testing.T) {
	service, m := createTestQuoteService(t)

	ctx := context.Background()
	actorID := uuid.New()
	job := &entity.Job{ID: uuid.New(), Status: entity.JobStatusPending, CustomerID: actorID}

	m.jobRepo.EXPECT().FindJobByID(ctx, job.ID).Return(job, nil)

	_, err := service.CreateQuote(ctx, actorID, &usecase.CreateQuoteInput{JobID: job.ID})

	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestQuoteService_CreateQuote_RevisedQuoteOnQuotedJob(t *testing.T) {
	service, m := createTestQuoteService(t)

	ctx := context.Background()
	mechanicID := uuid.New()
	job := &entity.Job{
		ID:         uuid.New(),
		Title:      "Dead battery",
		Status:     entity.JobStatusQuoted,
		CustomerID: uuid.New(),
	}

	m.jobRepo.EXPECT().FindJobByID(ctx, job.ID).Return(job, nil)
	m.expectTransaction(ctx)
	m.quoteRepo.EXPECT().CreateQuote(ctx, mock.Anything).Return(nil)
	m.dispatcher.EXPECT().
		DispatchJobEvent(ctx, mock.Anything, mechanicID, entity.NotificationTypeJobUpdate, mock.Anything, mock.Anything, mock.Anything).
		Return()
	m.broadcaster.EXPECT().Publish("job:"+job.ID.String(), mock.Anything).Return()

	quote, err := service.CreateQuote(ctx, mechanicID, &usecase.CreateQuoteInput{
		JobID:     job.ID,
		LaborCost: 50,
		PartsCost: 30,
	})

	require.NoError(t, err)
	// (50 + 30) * 1.08; the job stays QUOTED, so no status CAS, timeline
	// entry or lifecycle event was expected.
	assert.InDelta(t, 86.4, quote.Amount, 0.001)
	assert.Equal(t, entity.QuoteStatusPending, quote.Status)
}

func TestQuoteService_CreateQuote_JobNoLongerAcceptsQuotes(t *testing.T) {
	service, m := createTestQuoteService(t)

	ctx := context.Background()
	job := &entity.Job{ID: uuid.New(), Status: entity.JobStatusAccepted, CustomerID: uuid.New()}

	m.jobRepo.EXPECT().FindJobByID(ctx, job.ID).Return(job, nil)

	_, err := service.CreateQuote(ctx, uuid.New(), &usecase.CreateQuoteInput{JobID: job.ID})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidTransition)
}

func TestQuoteService_AcceptQuote_AssignsMechanic(t *testing.T) {
	service, m := createTestQuoteService(t)

	ctx := context.Background()
	customerID := uuid.New()
	mechanicID := uuid.New()
	job := &entity.Job{ID: uuid.New(), Title: "Dead battery", Status: entity.JobStatusQuoted, CustomerID: customerID}
	quote := pendingQuote(job.ID, customerID, mechanicID)

	m.quoteRepo.EXPECT().FindQuoteByID(ctx, quote.ID).Return(quote, nil)
	m.expectTransaction(ctx)
	m.quoteRepo.EXPECT().
		UpdateQuoteStatusCAS(ctx, quote.ID,
			[]entity.QuoteStatus{entity.QuoteStatusPending, entity.QuoteStatusApproved},
			entity.QuoteStatusAccepted).
		Return(true, nil)
	m.jobRepo.EXPECT().
		UpdateJobStatusCAS(ctx, job.ID, entity.JobStatusQuoted, entity.JobStatusAccepted, mock.Anything).
		Run(func(_ context.Context, _ uuid.UUID, _, _ entity.JobStatus, fields map[string]any) {
			assert.Equal(t, mechanicID, fields["mechanic_id"])
		}).
		Return(true, nil)
	m.jobRepo.EXPECT().AppendTimelineEntry(ctx, mock.Anything).Return(nil)

	accepted := *job
	accepted.Status = entity.JobStatusAccepted
	accepted.MechanicID = &mechanicID
	m.jobRepo.EXPECT().FindJobByID(ctx, job.ID).Return(&accepted, nil)

	m.dispatcher.EXPECT().
		DispatchJobEvent(ctx, mock.Anything, customerID, entity.NotificationTypeJobUpdate, mock.Anything, mock.Anything, mock.Anything).
		Return()
	m.broadcaster.EXPECT().Publish("job:"+job.ID.String(), mock.Anything).Return()
	m.publisher.EXPECT().PublishJobEvent(ctx, mock.Anything).Return(nil)

	result, err := service.AcceptQuote(ctx, quote.ID, customerID)

	require.NoError(t, err)
	assert.Equal(t, entity.QuoteStatusAccepted, result.Quote.Status)
	require.NotNil(t, result.Job.MechanicID)
	assert.Equal(t, mechanicID, *result.Job.MechanicID)
}

func TestQuoteService_AcceptQuote_AlreadyAcceptedIsIdempotent(t *testing.T) {
	service, m := createTestQuoteService(t)

	ctx := context.Background()
	customerID := uuid.New()
	mechanicID := uuid.New()
	job := &entity.Job{ID: uuid.New(), Status: entity.JobStatusAccepted, CustomerID: customerID, MechanicID: &mechanicID}
	quote := pendingQuote(job.ID, customerID, mechanicID)
	quote.Status = entity.QuoteStatusAccepted

	m.quoteRepo.EXPECT().FindQuoteByID(ctx, quote.ID).Return(quote, nil)
	m.jobRepo.EXPECT().FindJobByID(ctx, job.ID).Return(job, nil)

	result, err := service.AcceptQuote(ctx, quote.ID, customerID)

	require.NoError(t, err)
	assert.Equal(t, entity.QuoteStatusAccepted, result.Quote.Status)
}

func TestQuoteService_AcceptQuote_NotTheCustomer(t *testing.T) {
	service, m := createTestQuoteService(t)

	ctx := context.Background()
	quote := pendingQuote(uuid.New(), uuid.New(), uuid.New())

	m.quoteRepo.EXPECT().FindQuoteByID(ctx, quote.ID).Return(quote, nil)

	_, err := service.AcceptQuote(ctx, quote.ID, uuid.New())

	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestQuoteService_AcceptQuote_ExpiredQuote(t *testing.T) {
	service, m := createTestQuoteService(t)

	ctx := context.Background()
	customerID := uuid.New()
	quote := pendingQuote(uuid.New(), customerID, uuid.New())
	quote.ValidUntil = time.Now().Add(-time.Minute)

	m.quoteRepo.EXPECT().FindQuoteByID(ctx, quote.ID).Return(quote, nil)

	_, err := service.AcceptQuote(ctx, quote.ID, customerID)

	assert.ErrorIs(t, err, domainerrors.ErrQuoteExpired)
}

func TestQuoteService_AcceptQuote_RejectedQuoteCannotBeAccepted(t *testing.T) {
	service, m := createTestQuoteService(t)

	ctx := context.Background()
	customerID := uuid.New()
	quote := pendingQuote(uuid.New(), customerID, uuid.New())
	quote.Status = entity.QuoteStatusRejected

	m.quoteRepo.EXPECT().FindQuoteByID(ctx, quote.ID).Return(quote, nil)

	_, err := service.AcceptQuote(ctx, quote.ID, customerID)

	assert.ErrorIs(t, err, domainerrors.ErrInvalidTransition)
}

func TestQuoteService_AcceptQuote_RaceWonByIdenticalAcceptance(t *testing.T) {
	service, m := createTestQuoteService(t)

	ctx := context.Background()
	customerID := uuid.New()
	mechanicID := uuid.New()
	job := &entity.Job{ID: uuid.New(), Status: entity.JobStatusAccepted, CustomerID: customerID, MechanicID: &mechanicID}
	quote := pendingQuote(job.ID, customerID, mechanicID)

	m.quoteRepo.EXPECT().FindQuoteByID(ctx, quote.ID).Return(quote, nil).Once()
	m.expectTransaction(ctx)
	m.quoteRepo.EXPECT().
		UpdateQuoteStatusCAS(ctx, quote.ID, mock.Anything, entity.QuoteStatusAccepted).
		Return(false, nil)

	won := *quote
	won.Status = entity.QuoteStatusAccepted
	m.quoteRepo.EXPECT().FindQuoteByID(ctx, quote.ID).Return(&won, nil).Once()
	m.jobRepo.EXPECT().FindJobByID(ctx, job.ID).Return(job, nil)

	result, err := service.AcceptQuote(ctx, quote.ID, customerID)

	require.NoError(t, err)
	assert.Equal(t, entity.QuoteStatusAccepted, result.Quote.Status)
}

func TestQuoteService_RejectQuote_LeavesJobQuoted(t *testing.T) {
	service, m := createTestQuoteService(t)

	ctx := context.Background()
	customerID := uuid.New()
	job := &entity.Job{ID: uuid.New(), Title: "Dead battery", Status: entity.JobStatusQuoted, CustomerID: customerID}
	quote := pendingQuote(job.ID, customerID, uuid.New())

	m.quoteRepo.EXPECT().FindQuoteByID(ctx, quote.ID).Return(quote, nil)
	m.quoteRepo.EXPECT().
		UpdateQuoteStatusCAS(ctx, quote.ID,
			[]entity.QuoteStatus{entity.QuoteStatusPending, entity.QuoteStatusApproved},
			entity.QuoteStatusRejected).
		Return(true, nil)
	m.jobRepo.EXPECT().FindJobByID(ctx, job.ID).Return(job, nil)
	m.dispatcher.EXPECT().
		DispatchJobEvent(ctx, mock.Anything, customerID, entity.NotificationTypeJobUpdate, mock.Anything, mock.Anything, mock.Anything).
		Return()

	got, err := service.RejectQuote(ctx, quote.ID, customerID)

	require.NoError(t, err)
	assert.Equal(t, entity.QuoteStatusRejected, got.Status)
	// No job status CAS was expected: the job stays QUOTED.
}

func TestQuoteService_RejectQuote_AlreadyRejectedIsIdempotent(t *testing.T) {
	service, m := createTestQuoteService(t)

	ctx := context.Background()
	customerID := uuid.New()
	quote := pendingQuote(uuid.New(), customerID, uuid.New())
	quote.Status = entity.QuoteStatusRejected

	m.quoteRepo.EXPECT().FindQuoteByID(ctx, quote.ID).Return(quote, nil)

	got, err := service.RejectQuote(ctx, quote.ID, customerID)

	require.NoError(t, err)
	assert.Equal(t, entity.QuoteStatusRejected, got.Status)
}

func TestQuoteService_ApproveQuote(t *testing.T) {
	service, m := createTestQuoteService(t)

	ctx := context.Background()
	quote := pendingQuote(uuid.New(), uuid.New(), uuid.New())

	m.quoteRepo.EXPECT().FindQuoteByID(ctx, quote.ID).Return(quote, nil)
	m.quoteRepo.EXPECT().
		UpdateQuoteStatusCAS(ctx, quote.ID,
			[]entity.QuoteStatus{entity.QuoteStatusPending}, entity.QuoteStatusApproved).
		Return(true, nil)

	got, err := service.ApproveQuote(ctx, quote.ID)

	require.NoError(t, err)
	assert.Equal(t, entity.QuoteStatusApproved, got.Status)
}

func TestQuoteService_ApproveQuote_AcceptedCannotBeApproved(t *testing.T) {
	service, m := createTestQuoteService(t)

	ctx := context.Background()
	quote := pendingQuote(uuid.New(), uuid.New(), uuid.New())
	quote.Status = entity.QuoteStatusAccepted

	m.quoteRepo.EXPECT().FindQuoteByID(ctx, quote.ID).Return(quote, nil)

	_, err := service.ApproveQuote(ctx, quote.ID)

	assert.ErrorIs(t, err, domainerrors.ErrInvalidTransition)
}
