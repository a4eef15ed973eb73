package repository

import (
	"context"
	"errors"

	"wrench/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for review persistence.
var (
	// ErrReviewNotFound is returned when a review is not found.
	ErrReviewNotFound = errors.New("review not found")
	// ErrDuplicateReview is returned when a (job, reviewer) pair already has a review.
	ErrDuplicateReview = errors.New("review already exists for this job and reviewer")
)

// ReviewRepository persists job reviews and answers the aggregate query used
// to maintain mechanic rating denormalization.
type ReviewRepository interface {
	// CreateReview persists a new review. The (job_id, reviewer_id) pair is
	// unique; violations surface as ErrDuplicateReview.
	CreateReview(ctx context.Context, review *entity.Review) error

	// FindReviewByID retrieves a review by its unique ID.
	FindReviewByID(ctx context.Context, id uuid.UUID) (*entity.Review, error)

	// FindReviewByJobAndReviewer retrieves the review one participant left on a job.
	FindReviewByJobAndReviewer(ctx context.Context, jobID, reviewerID uuid.UUID) (*entity.Review, error)

	// FindVisibleReviewsByReviewee lists non-hidden reviews about a user, newest first.
	FindVisibleReviewsByReviewee(ctx context.Context, revieweeID uuid.UUID, limit, offset int) ([]*entity.Review, error)

	// SetReviewHidden toggles moderation visibility.
	SetReviewHidden(ctx context.Context, id uuid.UUID, hidden bool) error

	// IncrementReportCount bumps the abuse-report counter.
	IncrementReportCount(ctx context.Context, id uuid.UUID) error

	// AggregateVisibleByReviewee computes the arithmetic mean rating and count
	// over all non-hidden reviews about a user. An empty set yields (0, 0).
	AggregateVisibleByReviewee(ctx context.Context, revieweeID uuid.UUID) (average float64, count int64, err error)
}
