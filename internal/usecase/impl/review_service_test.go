package impl

import (
	"context"
	"testing"

	"wrench/internal/domain/entity"
	domainerrors "wrench/internal/domain/errors"
	"wrench/internal/domain/repository"
	mockRepo "wrench/internal/mocks/repository"
	"wrench/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestReviewService(t *testing.T) (
	usecase.ReviewUsecase,
	*mockRepo.MockReviewRepository,
	*mockRepo.MockJobRepository,
	*mockRepo.MockUserRepository,
) {
	reviewRepo := mockRepo.NewMockReviewRepository(t)
	jobRepo := mockRepo.NewMockJobRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)

	service := NewReviewService(reviewRepo, jobRepo, userRepo, newDiscardLogger())

	return service, reviewRepo, jobRepo, userRepo
}

func completedJob(customerID, mechanicID uuid.UUID) *entity.Job {
	return &entity.Job{
		ID:         uuid.New(),
		Status:     entity.JobStatusCompleted,
		CustomerID: customerID,
		MechanicID: &mechanicID,
	}
}

func TestReviewService_SubmitReview_CustomerReviewsMechanic(t *testing.T) {
	service, reviewRepo, jobRepo, userRepo := createTestReviewService(t)

	ctx := context.Background()
	customerID := uuid.New()
	mechanicID := uuid.New()
	job := completedJob(customerID, mechanicID)

	jobRepo.EXPECT().FindJobByID(ctx, job.ID).Return(job, nil)
	reviewRepo.EXPECT().
		CreateReview(ctx, mock.Anything).
		Run(func(_ context.Context, r *entity.Review) {
			assert.Equal(t, customerID, r.ReviewerID)
			assert.Equal(t, mechanicID, r.RevieweeID)
		}).
		Return(nil)
	reviewRepo.EXPECT().AggregateVisibleByReviewee(ctx, mechanicID).Return(4.5, 2, nil)
	userRepo.EXPECT().UpdateMechanicRating(ctx, mechanicID, 4.5, int64(2)).Return(nil)

	review, err := service.SubmitReview(ctx, job.ID, customerID, &usecase.SubmitReviewInput{
		Rating:  5,
		Comment: "Quick and friendly",
	})

	require.NoError(t, err)
	assert.Equal(t, 5, review.Rating)
}

func TestReviewService_SubmitReview_CarriesPhotos(t *testing.T) {
	service, reviewRepo, jobRepo, userRepo := createTestReviewService(t)

	ctx := context.Background()
	customerID := uuid.New()
	mechanicID := uuid.New()
	job := completedJob(customerID, mechanicID)
	photos := []string{"https://cdn.example.com/r/1.jpg", "https://cdn.example.com/r/2.jpg"}

	jobRepo.EXPECT().FindJobByID(ctx, job.ID).Return(job, nil)
	reviewRepo.EXPECT().
		CreateReview(ctx, mock.Anything).
		Run(func(_ context.Context, r *entity.Review) {
			assert.Equal(t, photos, r.Photos)
		}).
		Return(nil)
	reviewRepo.EXPECT().AggregateVisibleByReviewee(ctx, mechanicID).Return(4.0, 1, nil)
	userRepo.EXPECT().UpdateMechanicRating(ctx, mechanicID, 4.0, int64(1)).Return(nil)

	review, err := service.SubmitReview(ctx, job.ID, customerID, &usecase.SubmitReviewInput{
		Rating: 4,
		Photos: photos,
	})

	require.NoError(t, err)
	assert.Equal(t, photos, review.Photos)
}

func TestReviewService_SubmitReview_RejectsOutOfRangeRating(t *testing.T) {
	service, _, _, _ := createTestReviewService(t)

	for _, rating := range []int{0, -1, 6} {
		_, err := service.SubmitReview(context.Background(), uuid.New(), uuid.New(), &usecase.SubmitReviewInput{Rating: rating})
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed, "rating %d", rating)
	}
}

func TestReviewService_SubmitReview_RejectsOutOfRangeCategory(t *testing.T) {
	service, _, _, _ := createTestReviewService(t)

	_, err := service.SubmitReview(context.Background(), uuid.New(), uuid.New(), &usecase.SubmitReviewInput{
		Rating:     5,
		Categories: entity.CategoryRatings{Punctuality: 9},
	})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestReviewService_SubmitReview_IncompleteJob(t *testing.T) {
	service, _, jobRepo, _ := createTestReviewService(t)

	ctx := context.Background()
	customerID := uuid.New()
	mechanicID := uuid.New()
	job := completedJob(customerID, mechanicID)
	job.Status = entity.JobStatusInProgress

	jobRepo.EXPECT().FindJobByID(ctx, job.ID).Return(job, nil)

	_, err := service.SubmitReview(ctx, job.ID, customerID, &usecase.SubmitReviewInput{Rating: 4})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidTransition)
}

func TestReviewService_SubmitReview_NonParticipant(t *testing.T) {
	service, _, jobRepo, _ := createTestReviewService(t)

	ctx := context.Background()
	job := completedJob(uuid.New(), uuid.New())

	jobRepo.EXPECT().FindJobByID(ctx, job.ID).Return(job, nil)

	_, err := service.SubmitReview(ctx, job.ID, uuid.New(), &usecase.SubmitReviewInput{Rating: 4})

	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestReviewService_SubmitReview_Duplicate(t *testing.T) {
	service, reviewRepo, jobRepo, _ := createTestReviewService(t)

	ctx := context.Background()
	customerID := uuid.New()
	job := completedJob(customerID, uuid.New())

	jobRepo.EXPECT().FindJobByID(ctx, job.ID).Return(job, nil)
	reviewRepo.EXPECT().CreateReview(ctx, mock.Anything).Return(repository.ErrDuplicateReview)

	_, err := service.SubmitReview(ctx, job.ID, customerID, &usecase.SubmitReviewInput{Rating: 4})

	assert.ErrorIs(t, err, domainerrors.ErrAlreadyReviewed)
}

func TestReviewService_SubmitReview_AggregateFailureDoesNotFailSubmission(t *testing.T) {
	service, reviewRepo, jobRepo, _ := createTestReviewService(t)

	ctx := context.Background()
	customerID := uuid.New()
	mechanicID := uuid.New()
	job := completedJob(customerID, mechanicID)

	jobRepo.EXPECT().FindJobByID(ctx, job.ID).Return(job, nil)
	reviewRepo.EXPECT().CreateReview(ctx, mock.Anything).Return(nil)
	reviewRepo.EXPECT().AggregateVisibleByReviewee(ctx, mechanicID).
		Return(0, 0, assert.AnError)

	_, err := service.SubmitReview(ctx, job.ID, customerID, &usecase.SubmitReviewInput{Rating: 4})

	require.NoError(t, err)
}

func TestReviewService_ModerateReview_HidingRefreshesAggregate(t *testing.T) {
	service, reviewRepo, _, userRepo := createTestReviewService(t)

	ctx := context.Background()
	mechanicID := uuid.New()
	review := &entity.Review{ID: uuid.New(), RevieweeID: mechanicID, Rating: 1}

	reviewRepo.EXPECT().FindReviewByID(ctx, review.ID).Return(review, nil)
	reviewRepo.EXPECT().SetReviewHidden(ctx, review.ID, true).Return(nil)
	reviewRepo.EXPECT().AggregateVisibleByReviewee(ctx, mechanicID).Return(5.0, 1, nil)
	userRepo.EXPECT().UpdateMechanicRating(ctx, mechanicID, 5.0, int64(1)).Return(nil)

	got, err := service.ModerateReview(ctx, review.ID, true)

	require.NoError(t, err)
	assert.True(t, got.IsHidden)
}

func TestReviewService_ModerateReview_NoChangeIsNoOp(t *testing.T) {
	service, reviewRepo, _, _ := createTestReviewService(t)

	ctx := context.Background()
	review := &entity.Review{ID: uuid.New(), IsHidden: true}

	reviewRepo.EXPECT().FindReviewByID(ctx, review.ID).Return(review, nil)

	got, err := service.ModerateReview(ctx, review.ID, true)

	require.NoError(t, err)
	assert.True(t, got.IsHidden)
}

func TestReviewService_ReportReview(t *testing.T) {
	service, reviewRepo, _, _ := createTestReviewService(t)

	ctx := context.Background()
	review := &entity.Review{ID: uuid.New()}

	reviewRepo.EXPECT().FindReviewByID(ctx, review.ID).Return(review, nil)
	reviewRepo.EXPECT().IncrementReportCount(ctx, review.ID).Return(nil)

	require.NoError(t, service.ReportReview(ctx, review.ID))
}

func TestReviewService_RecomputeMechanicRating_EmptySetZeroesAggregate(t *testing.T) {
	service, reviewRepo, _, userRepo := createTestReviewService(t)

	ctx := context.Background()
	mechanicID := uuid.New()

	reviewRepo.EXPECT().AggregateVisibleByReviewee(ctx, mechanicID).Return(0, 0, nil)
	userRepo.EXPECT().UpdateMechanicRating(ctx, mechanicID, float64(0), int64(0)).Return(nil)

	require.NoError(t, service.RecomputeMechanicRating(ctx, mechanicID))
}
