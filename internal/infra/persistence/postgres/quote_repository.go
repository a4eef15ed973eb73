package postgres

import (
	"context"

	"wrench/internal/domain/entity"
	domainerrors "wrench/internal/domain/errors"
	"wrench/internal/domain/repository"
	"wrench/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// quoteRepository implements the domain's QuoteRepository interface using GORM.
type quoteRepository struct {
	db *gorm.DB
}

// NewQuoteRepository is the constructor for quoteRepository.
func NewQuoteRepository(db *gorm.DB) repository.QuoteRepository {
	return &quoteRepository{db: db}
}

// CreateQuote persists a new quote. Each job holds at most one quote.
func (repo *quoteRepository) CreateQuote(ctx context.Context, quote *entity.Quote) error {
	quoteM := model.FromQuoteDomain(quote)
	if err := repo.db.WithContext(ctx).Create(quoteM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("job already has a quote")
		}

		return errors.Wrap(err, "failed to create quote")
	}

	return nil
}

// FindQuoteByID retrieves a quote by its unique ID.
func (repo *quoteRepository) FindQuoteByID(ctx context.Context, id uuid.UUID) (*entity.Quote, error) {
	var quoteM model.QuoteModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&quoteM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrQuoteNotFound
		}

		return nil, errors.Wrap(err, "failed to find quote by id")
	}

	return model.ToQuoteDomain(&quoteM), nil
}

// FindQuoteByJob retrieves the quote bound to a job.
func (repo *quoteRepository) FindQuoteByJob(ctx context.Context, jobID uuid.UUID) (*entity.Quote, error) {
	var quoteM model.QuoteModel
	err := repo.db.WithContext(ctx).
		Where("job_id = ?", jobID).
		First(&quoteM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrQuoteNotFound
		}

		return nil, errors.Wrap(err, "failed to find quote by job")
	}

	return model.ToQuoteDomain(&quoteM), nil
}

// UpdateQuoteStatusCAS applies a compare-and-set status update guarded on the
// current status being one of from. It returns false when the guard did not
// match.
func (repo *quoteRepository) UpdateQuoteStatusCAS(ctx context.Context, id uuid.UUID, from []entity.QuoteStatus, to entity.QuoteStatus) (bool, error) {
	fromStrs := make([]string, 0, len(from))
	for _, s := range from {
		fromStrs = append(fromStrs, string(s))
	}

	result := repo.db.WithContext(ctx).
		Model(&model.QuoteModel{}).
		Where("id = ? AND status IN ?", id, fromStrs).
		Update("status", string(to))
	if result.Error != nil {
		return false, errors.Wrap(result.Error, "failed to update quote status")
	}

	return result.RowsAffected > 0, nil
}
