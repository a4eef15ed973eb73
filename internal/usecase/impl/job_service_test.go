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

type jobServiceMocks struct {
	jobRepo     *mockRepo.MockJobRepository
	quoteRepo   *mockRepo.MockQuoteRepository
	txManager   *mockRepo.MockTransactionManager
	factory     *mockRepo.MockRepositoryFactory
	dispatcher  *mockUC.MockDispatcher
	broadcaster *mockSvc.MockRoomBroadcaster
	publisher   *mockSvc.MockEventPublisher
	qrSvc       *mockSvc.MockQRCodeService
	paymentSvc  *mockSvc.MockPaymentService
}

func createTestJobService(t *testing.T) (usecase.JobUsecase, *jobServiceMocks) {
	m := &jobServiceMocks{
		jobRepo:     mockRepo.NewMockJobRepository(t),
		quoteRepo:   mockRepo.NewMockQuoteRepository(t),
		txManager:   mockRepo.NewMockTransactionManager(t),
		factory:     mockRepo.NewMockRepositoryFactory(t),
		dispatcher:  mockUC.NewMockDispatcher(t),
		broadcaster: mockSvc.NewMockRoomBroadcaster(t),
		publisher:   mockSvc.NewMockEventPublisher(t),
		qrSvc:       mockSvc.NewMockQRCodeService(t),
		paymentSvc:  mockSvc.NewMockPaymentService(t),
	}

	service := NewJobService(
		m.jobRepo,
		m.quoteRepo,
		m.txManager,
		m.dispatcher,
		m.broadcaster,
		m.publisher,
		m.qrSvc,
		m.paymentSvc,
		newTestConfig(),
		newDiscardLogger(),
	)

	return service, m
}

// expectTransaction wires the transaction manager so the function under test
// runs against the mocked repositories.
func (m *jobServiceMocks) expectTransaction(ctx context.Context) {
	m.factory.EXPECT().JobRepo().Return(m.jobRepo).Maybe()
	m.factory.EXPECT().QuoteRepo().Return(m.quoteRepo).Maybe()
	m.txManager.EXPECT().Execute(ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(m.factory)
		})
}

func activeJob(customerID, mechanicID uuid.UUID, status entity.JobStatus) *entity.Job {
	return &entity.Job{
		ID:         uuid.New(),
		Title:      "Dead battery",
		Status:     status,
		CustomerID: customerID,
		MechanicID: &mechanicID,
		Address:    "12 Elm St",
	}
}

func TestJobService_CreateServiceRequest_RequiresTitleAndAddress(t *testing.T) {
	service, _ := createTestJobService(t)

	_, err := service.CreateServiceRequest(context.Background(), uuid.New(), &usecase.CreateJobInput{Title: "Flat tire"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestJobService_CreateServiceRequest_Success(t *testing.T) {
	service, m := createTestJobService(t)

	ctx := context.Background()
	customerID := uuid.New()

	m.jobRepo.EXPECT().CreateJob(ctx, mock.Anything).Return(nil)
	m.jobRepo.EXPECT().AppendTimelineEntry(ctx, mock.Anything).Return(nil)
	m.publisher.EXPECT().PublishJobEvent(ctx, mock.Anything).Return(nil)

	job, err := service.CreateServiceRequest(ctx, customerID, &usecase.CreateJobInput{
		Title:   "Flat tire",
		Address: "12 Elm St",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.JobStatusPending, job.Status)
	assert.Equal(t, entity.JobUrgencyNormal, job.Urgency)
	assert.Equal(t, customerID, job.CustomerID)
	assert.Nil(t, job.MechanicID)
}

func TestJobService_UpdateJobStatus_RejectsNonDrivableTargets(t *testing.T) {
	service, _ := createTestJobService(t)

	for _, target := range []entity.JobStatus{entity.JobStatusPending, entity.JobStatusQuoted, entity.JobStatusAccepted, "BOGUS"} {
		_, err := service.UpdateJobStatus(context.Background(), uuid.New(), uuid.New(), entity.RoleAdmin, target, "")
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed, "target %s", target)
	}
}

func TestJobService_UpdateJobStatus_SameStatusIsNoOp(t *testing.T) {
	service, m := createTestJobService(t)

	ctx := context.Background()
	mechanicID := uuid.New()
	job := activeJob(uuid.New(), mechanicID, entity.JobStatusInProgress)

	m.jobRepo.EXPECT().FindJobByID(ctx, job.ID).Return(job, nil)

	got, err := service.UpdateJobStatus(ctx, job.ID, mechanicID, entity.RoleMechanic, entity.JobStatusInProgress, "")

	require.NoError(t, err)
	assert.Equal(t, job, got)
}

func TestJobService_UpdateJobStatus_CustomerCannotComplete(t *testing.T) {
	service, m := createTestJobService(t)

	ctx := context.Background()
	customerID := uuid.New()
	job := activeJob(customerID, uuid.New(), entity.JobStatusInProgress)

	m.jobRepo.EXPECT().FindJobByID(ctx, job.ID).Return(job, nil)

	_, err := service.UpdateJobStatus(ctx, job.ID, customerID, entity.RoleCustomer, entity.JobStatusCompleted, "")

	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestJobService_UpdateJobStatus_IllegalTransition(t *testing.T) {
	service, m := createTestJobService(t)

	ctx := context.Background()
	mechanicID := uuid.New()
	job := activeJob(uuid.New(), mechanicID, entity.JobStatusAccepted)

	m.jobRepo.EXPECT().FindJobByID(ctx, job.ID).Return(job, nil)

	_, err := service.UpdateJobStatus(ctx, job.ID, mechanicID, entity.RoleMechanic, entity.JobStatusCompleted, "")

	assert.ErrorIs(t, err, domainerrors.ErrInvalidTransition)
}

func TestJobService_UpdateJobStatus_Complete(t *testing.T) {
	service, m := createTestJobService(t)

	ctx := context.Background()
	mechanicID := uuid.New()
	job := activeJob(uuid.New(), mechanicID, entity.JobStatusInProgress)

	m.jobRepo.EXPECT().FindJobByID(ctx, job.ID).Return(job, nil)
	m.expectTransaction(ctx)
	m.jobRepo.EXPECT().
		UpdateJobStatusCAS(ctx, job.ID, entity.JobStatusInProgress, entity.JobStatusCompleted, mock.Anything).
		Run(func(_ context.Context, _ uuid.UUID, _, _ entity.JobStatus, fields map[string]any) {
			assert.Contains(t, fields, "completed_at")
		}).
		Return(true, nil)
	m.jobRepo.EXPECT().AppendTimelineEntry(ctx, mock.Anything).Return(nil)

	m.dispatcher.EXPECT().
		DispatchJobEvent(ctx, mock.Anything, mechanicID, entity.NotificationTypeJobUpdate, mock.Anything, mock.Anything, mock.Anything).
		Return()
	m.dispatcher.EXPECT().
		DispatchJobEvent(ctx, mock.Anything, mechanicID, entity.NotificationTypeReviewRequest, mock.Anything, mock.Anything, mock.Anything).
		Return()
	m.broadcaster.EXPECT().Publish("job:"+job.ID.String(), mock.Anything).Return()
	m.publisher.EXPECT().PublishJobEvent(ctx, mock.Anything).Return(nil)

	got, err := service.UpdateJobStatus(ctx, job.ID, mechanicID, entity.RoleMechanic, entity.JobStatusCompleted, "all done")

	require.NoError(t, err)
	assert.Equal(t, job.ID, got.ID)
}

func TestJobService_UpdateJobStatus_CancelReleasesMechanic(t *testing.T) {
	service, m := createTestJobService(t)

	ctx := context.Background()
	customerID := uuid.New()
	job := activeJob(customerID, uuid.New(), entity.JobStatusAccepted)

	m.jobRepo.EXPECT().FindJobByID(ctx, job.ID).Return(job, nil)
	m.expectTransaction(ctx)
	m.jobRepo.EXPECT().
		UpdateJobStatusCAS(ctx, job.ID, entity.JobStatusAccepted, entity.JobStatusCanceled, mock.Anything).
		Run(func(_ context.Context, _ uuid.UUID, _, _ entity.JobStatus, fields map[string]any) {
			assert.Contains(t, fields, "mechanic_id")
			assert.Nil(t, fields["mechanic_id"])
			assert.Contains(t, fields, "eta")
		}).
		Return(true, nil)
	m.jobRepo.EXPECT().AppendTimelineEntry(ctx, mock.Anything).Return(nil)

	m.dispatcher.EXPECT().
		DispatchJobEvent(ctx, mock.Anything, customerID, entity.NotificationTypeJobUpdate, mock.Anything, mock.Anything, mock.Anything).
		Return()
	m.broadcaster.EXPECT().Publish(mock.Anything, mock.Anything).Return()
	m.publisher.EXPECT().PublishJobEvent(ctx, mock.Anything).Return(nil)

	_, err := service.UpdateJobStatus(ctx, job.ID, customerID, entity.RoleCustomer, entity.JobStatusCanceled, "changed my mind")

	require.NoError(t, err)
}

func TestJobService_UpdateJobStatus_ConflictResolvedByReread(t *testing.T) {
	service, m := createTestJobService(t)

	ctx := context.Background()
	mechanicID := uuid.New()
	job := activeJob(uuid.New(), mechanicID, entity.JobStatusInProgress)

	fresh := *job
	fresh.Status = entity.JobStatusCompleted

	m.jobRepo.EXPECT().FindJobByID(ctx, job.ID).Return(job, nil).Once()
	m.expectTransaction(ctx)
	m.jobRepo.EXPECT().
		UpdateJobStatusCAS(ctx, job.ID, entity.JobStatusInProgress, entity.JobStatusCompleted, mock.Anything).
		Return(false, nil).Once()
	// The concurrent writer already moved the job to the requested status;
	// the retried request reads it back and reports success.
	m.jobRepo.EXPECT().FindJobByID(ctx, job.ID).Return(&fresh, nil).Once()

	got, err := service.UpdateJobStatus(ctx, job.ID, mechanicID, entity.RoleMechanic, entity.JobStatusCompleted, "")

	require.NoError(t, err)
	assert.Equal(t, entity.JobStatusCompleted, got.Status)
}

func TestJobService_UpdateJobStatus_ConflictWithTerminalLoserFails(t *testing.T) {
	service, m := createTestJobService(t)

	ctx := context.Background()
	mechanicID := uuid.New()
	job := activeJob(uuid.New(), mechanicID, entity.JobStatusInProgress)

	fresh := *job
	fresh.Status = entity.JobStatusCanceled

	m.jobRepo.EXPECT().FindJobByID(ctx, job.ID).Return(job, nil).Once()
	m.expectTransaction(ctx)
	m.jobRepo.EXPECT().
		UpdateJobStatusCAS(ctx, job.ID, entity.JobStatusInProgress, entity.JobStatusCompleted, mock.Anything).
		Return(false, nil).Once()
	m.jobRepo.EXPECT().FindJobByID(ctx, job.ID).Return(&fresh, nil).Once()

	_, err := service.UpdateJobStatus(ctx, job.ID, mechanicID, entity.RoleMechanic, entity.JobStatusCompleted, "")

	assert.ErrorIs(t, err, domainerrors.ErrInvalidTransition)
}

func TestJobService_UpdateMechanicLocation_OnlyAssignedMechanic(t *testing.T) {
	service, m := createTestJobService(t)

	ctx := context.Background()
	job := activeJob(uuid.New(), uuid.New(), entity.JobStatusInProgress)

	m.jobRepo.EXPECT().FindJobByID(ctx, job.ID).Return(job, nil)

	_, err := service.UpdateMechanicLocation(ctx, job.ID, uuid.New(), 25.0, 121.5, nil)

	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestJobService_UpdateMechanicLocation_RejectedOutsideActiveWindow(t *testing.T) {
	service, m := createTestJobService(t)

	ctx := context.Background()
	mechanicID := uuid.New()
	job := activeJob(uuid.New(), mechanicID, entity.JobStatusCompleted)

	m.jobRepo.EXPECT().FindJobByID(ctx, job.ID).Return(job, nil)

	_, err := service.UpdateMechanicLocation(ctx, job.ID, mechanicID, 25.0, 121.5, nil)

	assert.ErrorIs(t, err, domainerrors.ErrInvalidTransition)
}

func TestJobService_UpdateMechanicLocation_UsesReportedETA(t *testing.T) {
	service, m := createTestJobService(t)

	ctx := context.Background()
	mechanicID := uuid.New()
	job := activeJob(uuid.New(), mechanicID, entity.JobStatusAccepted)
	etaMinutes := 15

	m.jobRepo.EXPECT().FindJobByID(ctx, job.ID).Return(job, nil)
	m.jobRepo.EXPECT().
		UpdateJobLocation(ctx, job.ID, 25.0, 121.5, mock.Anything).
		Run(func(_ context.Context, _ uuid.UUID, _, _ float64, eta *time.Time) {
			require.NotNil(t, eta)
			assert.WithinDuration(t, time.Now().Add(15*time.Minute), *eta, 5*time.Second)
		}).
		Return(nil)
	m.broadcaster.EXPECT().Publish("job:"+job.ID.String(), mock.Anything).Return()

	got, err := service.UpdateMechanicLocation(ctx, job.ID, mechanicID, 25.0, 121.5, &etaMinutes)

	require.NoError(t, err)
	require.NotNil(t, got.MechanicLat)
	assert.InDelta(t, 25.0, *got.MechanicLat, 0.0001)
}

func TestJobService_AddJobPart_FoldsCostIntoTotals(t *testing.T) {
	service, m := createTestJobService(t)

	ctx := context.Background()
	mechanicID := uuid.New()
	job := activeJob(uuid.New(), mechanicID, entity.JobStatusInProgress)
	job.Totals = entity.JobTotals{Labor: 80}

	m.jobRepo.EXPECT().FindJobByID(ctx, job.ID).Return(job, nil)
	m.jobRepo.EXPECT().AddJobPart(ctx, mock.Anything).Return(nil)
	m.jobRepo.EXPECT().
		UpdateJobTotals(ctx, job.ID, mock.Anything).
		Run(func(_ context.Context, _ uuid.UUID, totals entity.JobTotals) {
			assert.InDelta(t, 50, totals.Parts, 0.001)
			assert.InDelta(t, 130, totals.GrandTotal, 0.001)
		}).
		Return(nil)
	m.broadcaster.EXPECT().Publish(mock.Anything, mock.Anything).Return()

	_, err := service.AddJobPart(ctx, job.ID, mechanicID, &usecase.JobPartInput{
		Name:      "Battery",
		Quantity:  2,
		UnitPrice: 25,
	})

	require.NoError(t, err)
}

func TestJobService_UpdateJobTotals_ClampsNegativeGrandTotal(t *testing.T) {
	service, m := createTestJobService(t)

	ctx := context.Background()
	mechanicID := uuid.New()
	job := activeJob(uuid.New(), mechanicID, entity.JobStatusInProgress)

	m.jobRepo.EXPECT().FindJobByID(ctx, job.ID).Return(job, nil)
	m.jobRepo.EXPECT().
		UpdateJobTotals(ctx, job.ID, mock.Anything).
		Run(func(_ context.Context, _ uuid.UUID, totals entity.JobTotals) {
			assert.Zero(t, totals.GrandTotal)
		}).
		Return(nil)
	m.broadcaster.EXPECT().Publish(mock.Anything, mock.Anything).Return()

	got, err := service.UpdateJobTotals(ctx, job.ID, mechanicID, &usecase.JobTotalsInput{
		Labor:     40,
		Discounts: 100,
	})

	require.NoError(t, err)
	assert.Zero(t, got.Totals.GrandTotal)
}

func TestJobService_ListJobParts_ReturnsPartsForParticipant(t *testing.T) {
	service, m := createTestJobService(t)

	ctx := context.Background()
	customerID := uuid.New()
	job := activeJob(customerID, uuid.New(), entity.JobStatusInProgress)
	parts := []*entity.JobPart{
		{ID: uuid.New(), JobID: job.ID, Name: "Battery", Quantity: 1, UnitPrice: 120},
		{ID: uuid.New(), JobID: job.ID, Name: "Terminal clamp", Quantity: 2, UnitPrice: 8.5},
	}

	m.jobRepo.EXPECT().FindJobByID(ctx, job.ID).Return(job, nil)
	m.jobRepo.EXPECT().FindJobParts(ctx, job.ID).Return(parts, nil)

	got, err := service.ListJobParts(ctx, job.ID, customerID, entity.RoleCustomer)

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Battery", got[0].Name)
}

func TestJobService_ListJobParts_ForbiddenForOutsiders(t *testing.T) {
	service, m := createTestJobService(t)

	ctx := context.Background()
	job := activeJob(uuid.New(), uuid.New(), entity.JobStatusInProgress)

	m.jobRepo.EXPECT().FindJobByID(ctx, job.ID).Return(job, nil)

	_, err := service.ListJobParts(ctx, job.ID, uuid.New(), entity.RoleCustomer)

	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestJobService_AddTimerEntry_Sequencing(t *testing.T) {
	tests := []struct {
		name     string
		existing []entity.TimerAction
		action   entity.TimerAction
		wantErr  bool
	}{
		{name: "start on empty timer", existing: nil, action: entity.TimerActionStart},
		{name: "pause after start", existing: []entity.TimerAction{entity.TimerActionStart}, action: entity.TimerActionPause},
		{name: "resume after pause", existing: []entity.TimerAction{entity.TimerActionStart, entity.TimerActionPause}, action: entity.TimerActionResume},
		{name: "end after resume", existing: []entity.TimerAction{entity.TimerActionStart, entity.TimerActionPause, entity.TimerActionResume}, action: entity.TimerActionEnd},
		{name: "end directly after start", existing: []entity.TimerAction{entity.TimerActionStart}, action: entity.TimerActionEnd},
		{name: "pause before start", existing: nil, action: entity.TimerActionPause, wantErr: true},
		{name: "double start", existing: []entity.TimerAction{entity.TimerActionStart}, action: entity.TimerActionStart, wantErr: true},
		{name: "resume while running", existing: []entity.TimerAction{entity.TimerActionStart}, action: entity.TimerActionResume, wantErr: true},
		{name: "anything after end", existing: []entity.TimerAction{entity.TimerActionStart, entity.TimerActionEnd}, action: entity.TimerActionResume, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := createTestJobService(t)

			ctx := context.Background()
			mechanicID := uuid.New()
			job := activeJob(uuid.New(), mechanicID, entity.JobStatusInProgress)

			existing := make([]*entity.TimerEntry, 0, len(tt.existing))
			for _, action := range tt.existing {
				existing = append(existing, &entity.TimerEntry{
					ID:      uuid.New(),
					JobID:   job.ID,
					ActorID: mechanicID,
					Action:  action,
				})
			}

			m.jobRepo.EXPECT().FindJobByID(ctx, job.ID).Return(job, nil)
			m.jobRepo.EXPECT().FindTimerEntriesByJob(ctx, job.ID).Return(existing, nil)
			if !tt.wantErr {
				m.jobRepo.EXPECT().AppendTimerEntry(ctx, mock.Anything).Return(nil)
				m.broadcaster.EXPECT().Publish("job:"+job.ID.String(), mock.Anything).Return()
			}

			entry, err := service.AddTimerEntry(ctx, job.ID, mechanicID, tt.action)

			if tt.wantErr {
				assert.ErrorIs(t, err, domainerrors.ErrInvalidTransition)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.action, entry.Action)
			assert.Equal(t, mechanicID, entry.ActorID)
		})
	}
}

func TestJobService_AddTimerEntry_OnlyAssignedMechanic(t *testing.T) {
	service, m := createTestJobService(t)

	ctx := context.Background()
	job := activeJob(uuid.New(), uuid.New(), entity.JobStatusInProgress)

	m.jobRepo.EXPECT().FindJobByID(ctx, job.ID).Return(job, nil)

	_, err := service.AddTimerEntry(ctx, job.ID, uuid.New(), entity.TimerActionStart)

	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestJobService_AddTimerEntry_OnlyWhileInProgress(t *testing.T) {
	service, m := createTestJobService(t)

	ctx := context.Background()
	mechanicID := uuid.New()
	job := activeJob(uuid.New(), mechanicID, entity.JobStatusAccepted)

	m.jobRepo.EXPECT().FindJobByID(ctx, job.ID).Return(job, nil)

	_, err := service.AddTimerEntry(ctx, job.ID, mechanicID, entity.TimerActionStart)

	assert.ErrorIs(t, err, domainerrors.ErrInvalidTransition)
}

func TestJobService_AddTimerEntry_RejectsUnknownAction(t *testing.T) {
	service, _ := createTestJobService(t)

	_, err := service.AddTimerEntry(context.Background(), uuid.New(), uuid.New(), "RESTART")

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestJobService_GetTimerEntries_ReturnsHistoryInOrder(t *testing.T) {
	service, m := createTestJobService(t)

	ctx := context.Background()
	mechanicID := uuid.New()
	job := activeJob(uuid.New(), mechanicID, entity.JobStatusInProgress)
	entries := []*entity.TimerEntry{
		{ID: uuid.New(), JobID: job.ID, ActorID: mechanicID, Action: entity.TimerActionStart},
		{ID: uuid.New(), JobID: job.ID, ActorID: mechanicID, Action: entity.TimerActionPause},
	}

	m.jobRepo.EXPECT().FindJobByID(ctx, job.ID).Return(job, nil)
	m.jobRepo.EXPECT().FindTimerEntriesByJob(ctx, job.ID).Return(entries, nil)

	got, err := service.GetTimerEntries(ctx, job.ID, mechanicID, entity.RoleMechanic)

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, entity.TimerActionStart, got[0].Action)
	assert.Equal(t, entity.TimerActionPause, got[1].Action)
}

func TestJobService_AddJobPhoto_AttachesForParticipant(t *testing.T) {
	service, m := createTestJobService(t)

	ctx := context.Background()
	customerID := uuid.New()
	job := activeJob(customerID, uuid.New(), entity.JobStatusInProgress)

	m.jobRepo.EXPECT().
		FindJobByID(ctx, job.ID).Return(job, nil)
	m.jobRepo.EXPECT().
		AddJobPhoto(ctx, mock.Anything).
		Run(func(_ context.Context, photo *entity.JobPhoto) {
			assert.Equal(t, job.ID, photo.JobID)
			assert.Equal(t, customerID, photo.UploaderID)
			assert.Equal(t, "https://cdn.example.com/p/1.jpg", photo.URL)
		}).
		Return(nil)
	m.broadcaster.EXPECT().Publish("job:"+job.ID.String(), mock.Anything).Return()

	photo, err := service.AddJobPhoto(ctx, job.ID, customerID, entity.RoleCustomer, "https://cdn.example.com/p/1.jpg", "before")

	require.NoError(t, err)
	assert.Equal(t, "before", photo.Caption)
}

func TestJobService_AddJobPhoto_RequiresURL(t *testing.T) {
	service, _ := createTestJobService(t)

	_, err := service.AddJobPhoto(context.Background(), uuid.New(), uuid.New(), entity.RoleCustomer, "", "")

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestJobService_AddJobPhoto_RejectedOnCanceledJob(t *testing.T) {
	service, m := createTestJobService(t)

	ctx := context.Background()
	customerID := uuid.New()
	job := activeJob(customerID, uuid.New(), entity.JobStatusCanceled)

	m.jobRepo.EXPECT().FindJobByID(ctx, job.ID).Return(job, nil)

	_, err := service.AddJobPhoto(ctx, job.ID, customerID, entity.RoleCustomer, "https://cdn.example.com/p/1.jpg", "")

	assert.ErrorIs(t, err, domainerrors.ErrInvalidTransition)
}

func TestJobService_ListJobPhotos_ReturnsPhotos(t *testing.T) {
	service, m := createTestJobService(t)

	ctx := context.Background()
	customerID := uuid.New()
	job := activeJob(customerID, uuid.New(), entity.JobStatusCompleted)
	photos := []*entity.JobPhoto{
		{ID: uuid.New(), JobID: job.ID, UploaderID: customerID, URL: "https://cdn.example.com/p/1.jpg"},
	}

	m.jobRepo.EXPECT().FindJobByID(ctx, job.ID).Return(job, nil)
	m.jobRepo.EXPECT().FindJobPhotos(ctx, job.ID).Return(photos, nil)

	got, err := service.ListJobPhotos(ctx, job.ID, customerID, entity.RoleCustomer)

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "https://cdn.example.com/p/1.jpg", got[0].URL)
}

func TestJobService_CreateDepositIntent_ChargesConfiguredFraction(t *testing.T) {
	service, m := createTestJobService(t)

	ctx := context.Background()
	customerID := uuid.New()
	job := activeJob(customerID, uuid.New(), entity.JobStatusAccepted)
	quote := &entity.Quote{
		ID:       uuid.New(),
		JobID:    job.ID,
		Amount:   86.4,
		Currency: "usd",
	}

	m.jobRepo.EXPECT().FindJobByID(ctx, job.ID).Return(job, nil)
	m.quoteRepo.EXPECT().FindQuoteByJob(ctx, job.ID).Return(quote, nil)
	m.paymentSvc.EXPECT().
		CreatePaymentIntent(ctx, int64(1728), "usd", mock.Anything).
		Return("secret_123", "pi_123", nil)

	secret, err := service.CreateDepositIntent(ctx, job.ID, customerID)

	require.NoError(t, err)
	assert.Equal(t, "secret_123", secret)
}

func TestJobService_CreateDepositIntent_RequiresAcceptedJob(t *testing.T) {
	service, m := createTestJobService(t)

	ctx := context.Background()
	customerID := uuid.New()
	job := activeJob(customerID, uuid.New(), entity.JobStatusQuoted)

	m.jobRepo.EXPECT().FindJobByID(ctx, job.ID).Return(job, nil)

	_, err := service.CreateDepositIntent(ctx, job.ID, customerID)

	assert.ErrorIs(t, err, domainerrors.ErrInvalidTransition)
}

func TestJobService_ConfirmPayment_SecondConfirmationIsNoOp(t *testing.T) {
	service, m := createTestJobService(t)

	ctx := context.Background()
	paidAt := time.Now().Add(-time.Hour)
	job := activeJob(uuid.New(), uuid.New(), entity.JobStatusInProgress)
	job.PaidAt = &paidAt

	m.jobRepo.EXPECT().FindJobByID(ctx, job.ID).Return(job, nil)

	got, err := service.ConfirmPayment(ctx, job.ID)

	require.NoError(t, err)
	assert.Equal(t, &paidAt, got.PaidAt)
}

func TestJobService_ConfirmPayment_MarksPaidAndNotifiesBothParties(t *testing.T) {
	service, m := createTestJobService(t)

	ctx := context.Background()
	job := activeJob(uuid.New(), uuid.New(), entity.JobStatusInProgress)

	m.jobRepo.EXPECT().FindJobByID(ctx, job.ID).Return(job, nil)
	m.jobRepo.EXPECT().MarkJobPaid(ctx, job.ID, mock.Anything).Return(nil)
	m.dispatcher.EXPECT().
		DispatchJobEvent(ctx, mock.Anything, uuid.Nil, entity.NotificationTypePaymentUpdate, mock.Anything, mock.Anything, mock.Anything).
		Return()
	m.broadcaster.EXPECT().Publish(mock.Anything, mock.Anything).Return()

	got, err := service.ConfirmPayment(ctx, job.ID)

	require.NoError(t, err)
	assert.NotNil(t, got.PaidAt)
}

func TestJobService_CheckInQR_RendersJobURI(t *testing.T) {
	service, m := createTestJobService(t)

	ctx := context.Background()
	customerID := uuid.New()
	job := activeJob(customerID, uuid.New(), entity.JobStatusAccepted)

	m.jobRepo.EXPECT().FindJobByID(ctx, job.ID).Return(job, nil)
	m.qrSvc.EXPECT().
		Generate("wrench://jobs/"+job.ID.String()+"/check-in").
		Return([]byte{0x89, 0x50}, nil)

	png, err := service.CheckInQR(ctx, job.ID, customerID, entity.RoleCustomer)

	require.NoError(t, err)
	assert.NotEmpty(t, png)
}
