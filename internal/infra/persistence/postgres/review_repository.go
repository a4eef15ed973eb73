package postgres

import (
	"context"

	"wrench/internal/domain/entity"
	"wrench/internal/domain/repository"
	"wrench/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// reviewRepository implements the domain's ReviewRepository interface using GORM.
type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository is the constructor for reviewRepository.
func NewReviewRepository(db *gorm.DB) repository.ReviewRepository {
	return &reviewRepository{db: db}
}

// CreateReview persists a new review. The unique (job_id, reviewer_id) index
// is the authority on one-review-per-participant.
func (repo *reviewRepository) CreateReview(ctx context.Context, review *entity.Review) error {
	reviewM := model.FromReviewDomain(review)
	if err := repo.db.WithContext(ctx).Create(reviewM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateReview
		}

		return errors.Wrap(err, "failed to create review")
	}

	return nil
}

// FindReviewByID retrieves a review by its unique ID.
func (repo *reviewRepository) FindReviewByID(ctx context.Context, id uuid.UUID) (*entity.Review, error) {
	var reviewM model.ReviewModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&reviewM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrReviewNotFound
		}

		return nil, errors.Wrap(err, "failed to find review by id")
	}

	return model.ToReviewDomain(&reviewM), nil
}

// FindReviewByJobAndReviewer retrieves the review one participant left on a job.
func (repo *reviewRepository) FindReviewByJobAndReviewer(ctx context.Context, jobID, reviewerID uuid.UUID) (*entity.Review, error) {
	var reviewM model.ReviewModel
	err := repo.db.WithContext(ctx).
		Where("job_id = ? AND reviewer_id = ?", jobID, reviewerID).
		First(&reviewM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrReviewNotFound
		}

		return nil, errors.Wrap(err, "failed to find review by job and reviewer")
	}

	return model.ToReviewDomain(&reviewM), nil
}

// FindVisibleReviewsByReviewee lists non-hidden reviews about a user, newest first.
func (repo *reviewRepository) FindVisibleReviewsByReviewee(ctx context.Context, revieweeID uuid.UUID, limit, offset int) ([]*entity.Review, error) {
	var reviewsM []*model.ReviewModel
	err := repo.db.WithContext(ctx).
		Where("reviewee_id = ? AND is_hidden = false", revieweeID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&reviewsM).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reviews")
	}

	reviews := make([]*entity.Review, 0, len(reviewsM))
	for _, reviewM := range reviewsM {
		reviews = append(reviews, model.ToReviewDomain(reviewM))
	}

	return reviews, nil
}

// SetReviewHidden toggles moderation visibility.
func (repo *reviewRepository) SetReviewHidden(ctx context.Context, id uuid.UUID, hidden bool) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ReviewModel{}).
		Where("id = ?", id).
		Update("is_hidden", hidden)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update review visibility")
	}
	if result.RowsAffected == 0 {
		return repository.ErrReviewNotFound
	}

	return nil
}

// IncrementReportCount bumps the abuse-report counter atomically.
func (repo *reviewRepository) IncrementReportCount(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ReviewModel{}).
		Where("id = ?", id).
		Update("report_count", gorm.Expr("report_count + 1"))
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to increment report count")
	}
	if result.RowsAffected == 0 {
		return repository.ErrReviewNotFound
	}

	return nil
}

// AggregateVisibleByReviewee computes the mean rating and count over all
// non-hidden reviews about a user in a single query.
func (repo *reviewRepository) AggregateVisibleByReviewee(ctx context.Context, revieweeID uuid.UUID) (float64, int64, error) {
	var agg struct {
		Average float64
		Count   int64
	}
	err := repo.db.WithContext(ctx).
		Model(&model.ReviewModel{}).
		Select("COALESCE(AVG(rating), 0) AS average, COUNT(*) AS count").
		Where("reviewee_id = ? AND is_hidden = false", revieweeID).
		Scan(&agg).Error
	if err != nil {
		return 0, 0, errors.Wrap(err, "failed to aggregate reviews")
	}

	return agg.Average, agg.Count, nil
}
