package impl

import (
	"context"
	"log/slog"
	"time"

	"wrench/internal/domain/entity"
	domainerrors "wrench/internal/domain/errors"
	"wrench/internal/domain/repository"
	"wrench/internal/errors"
	"wrench/internal/usecase"

	"github.com/google/uuid"
)

type reviewService struct {
	reviewRepo repository.ReviewRepository
	jobRepo    repository.JobRepository
	userRepo   repository.UserRepository
	logger     *slog.Logger
}

// NewReviewService creates the review and rating aggregation use case.
func NewReviewService(
	reviewRepo repository.ReviewRepository,
	jobRepo repository.JobRepository,
	userRepo repository.UserRepository,
	logger *slog.Logger,
) usecase.ReviewUsecase {
	return &reviewService{
		reviewRepo: reviewRepo,
		jobRepo:    jobRepo,
		userRepo:   userRepo,
		logger:     logger,
	}
}

// SubmitReview creates the reviewer's review for a completed job. The
// reviewee is always the job's other participant.
func (s *reviewService) SubmitReview(ctx context.Context, jobID, reviewerID uuid.UUID, input *usecase.SubmitReviewInput) (*entity.Review, error) {
	if !entity.ValidRating(input.Rating) {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("rating must be between 1 and 5")
	}
	for _, c := range []int{input.Categories.Punctuality, input.Categories.Quality, input.Categories.Communication, input.Categories.Value} {
		if c != 0 && !entity.ValidRating(c) {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("category ratings must be between 1 and 5")
		}
	}

	job, err := s.jobRepo.FindJobByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("job not found")
		}

		return nil, domainerrors.NewStorageError(err, "failed to find job")
	}

	if !job.IsParticipant(reviewerID) {
		return nil, domainerrors.ErrForbidden.WrapMessage("only job participants may leave a review")
	}
	if job.Status != entity.JobStatusCompleted {
		return nil, domainerrors.ErrInvalidTransition.WrapMessage("reviews can only be left on completed jobs")
	}

	revieweeID, ok := job.Counterpart(reviewerID)
	if !ok {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("job has no counterpart to review")
	}

	now := time.Now()
	review := &entity.Review{
		ID:         uuid.New(),
		JobID:      jobID,
		ReviewerID: reviewerID,
		RevieweeID: revieweeID,
		Rating:     input.Rating,
		Categories: input.Categories,
		Comment:    input.Comment,
		Photos:     input.Photos,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.reviewRepo.CreateReview(ctx, review); err != nil {
		if errors.Is(err, repository.ErrDuplicateReview) {
			return nil, domainerrors.ErrAlreadyReviewed.WrapMessage("you already reviewed this job")
		}

		return nil, domainerrors.NewStorageError(err, "failed to create review")
	}

	s.refreshAggregate(ctx, revieweeID)

	return review, nil
}

// ModerateReview hides or unhides a review and refreshes the reviewee's
// aggregate, since hidden reviews do not count toward it.
func (s *reviewService) ModerateReview(ctx context.Context, reviewID uuid.UUID, hidden bool) (*entity.Review, error) {
	review, err := s.findReview(ctx, reviewID)
	if err != nil {
		return nil, err
	}

	if review.IsHidden == hidden {
		return review, nil
	}

	if err := s.reviewRepo.SetReviewHidden(ctx, reviewID, hidden); err != nil {
		return nil, domainerrors.NewStorageError(err, "failed to update review visibility")
	}
	review.IsHidden = hidden
	review.UpdatedAt = time.Now()

	s.refreshAggregate(ctx, review.RevieweeID)

	return review, nil
}

// ReportReview increments the abuse-report counter. Reporting never hides the
// review by itself; that stays a moderator decision.
func (s *reviewService) ReportReview(ctx context.Context, reviewID uuid.UUID) error {
	if _, err := s.findReview(ctx, reviewID); err != nil {
		return err
	}

	if err := s.reviewRepo.IncrementReportCount(ctx, reviewID); err != nil {
		return domainerrors.NewStorageError(err, "failed to report review")
	}

	return nil
}

// ListMechanicReviews lists a mechanic's visible reviews, newest first.
func (s *reviewService) ListMechanicReviews(ctx context.Context, mechanicID uuid.UUID, limit, offset int) ([]*entity.Review, error) {
	reviews, err := s.reviewRepo.FindVisibleReviewsByReviewee(ctx, mechanicID, limit, offset)
	if err != nil {
		return nil, domainerrors.NewStorageError(err, "failed to list reviews")
	}

	return reviews, nil
}

// RecomputeMechanicRating recomputes the denormalized aggregate over all
// non-hidden reviews addressed to the mechanic. The recomputation is always a
// full aggregate, never an incremental running average, so moderation and
// concurrent submissions can never leave the stored value drifting.
func (s *reviewService) RecomputeMechanicRating(ctx context.Context, mechanicID uuid.UUID) error {
	average, count, err := s.reviewRepo.AggregateVisibleByReviewee(ctx, mechanicID)
	if err != nil {
		return domainerrors.NewStorageError(err, "failed to aggregate reviews")
	}

	if err := s.userRepo.UpdateMechanicRating(ctx, mechanicID, average, count); err != nil {
		return domainerrors.NewStorageError(err, "failed to store mechanic rating")
	}

	return nil
}

// refreshAggregate recomputes best-effort after a mutation. A failure leaves
// the stored aggregate stale until the next mutation, which is acceptable;
// the review rows remain the source of truth.
func (s *reviewService) refreshAggregate(ctx context.Context, revieweeID uuid.UUID) {
	if err := s.RecomputeMechanicRating(ctx, revieweeID); err != nil {
		s.logger.Warn("Failed to refresh rating aggregate",
			slog.String("revieweeID", revieweeID.String()),
			slog.Any("error", err),
		)
	}
}

func (s *reviewService) findReview(ctx context.Context, reviewID uuid.UUID) (*entity.Review, error) {
	review, err := s.reviewRepo.FindReviewByID(ctx, reviewID)
	if err != nil {
		if errors.Is(err, repository.ErrReviewNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("review not found")
		}

		return nil, domainerrors.NewStorageError(err, "failed to find review")
	}

	return review, nil
}
