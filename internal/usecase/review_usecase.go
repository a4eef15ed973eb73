package usecase

import (
	"context"

	"wrench/internal/domain/entity"

	"github.com/google/uuid"
)

// SubmitReviewInput is one participant's feedback on a completed job.
type SubmitReviewInput struct {
	Rating     int
	Categories entity.CategoryRatings
	Comment    string
	Photos     []string
}

// ReviewUsecase covers review submission, moderation and the mechanic rating
// aggregate that is recomputed from the set of non-hidden reviews.
type ReviewUsecase interface {
	// SubmitReview creates the reviewer's review for a completed job. The
	// reviewee is always the other participant.
	SubmitReview(ctx context.Context, jobID, reviewerID uuid.UUID, input *SubmitReviewInput) (*entity.Review, error)

	// ModerateReview hides or unhides a review (admin only) and refreshes the
	// reviewee's aggregate.
	ModerateReview(ctx context.Context, reviewID uuid.UUID, hidden bool) (*entity.Review, error)

	// ReportReview increments the abuse-report counter.
	ReportReview(ctx context.Context, reviewID uuid.UUID) error

	// ListMechanicReviews lists a mechanic's visible reviews, newest first.
	ListMechanicReviews(ctx context.Context, mechanicID uuid.UUID, limit, offset int) ([]*entity.Review, error)

	// RecomputeMechanicRating recomputes the denormalized aggregate from all
	// non-hidden reviews addressed to the mechanic. Full recomputation is the
	// intended design; do not replace it with an incremental running average.
	RecomputeMechanicRating(ctx context.Context, mechanicID uuid.UUID) error
}
