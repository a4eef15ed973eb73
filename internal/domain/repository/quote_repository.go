package repository

import (
	"context"
	"errors"

	"wrench/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for quote persistence.
var (
	// ErrQuoteNotFound is returned when a quote is not found.
	ErrQuoteNotFound = errors.New("quote not found")
)

// QuoteRepository persists priced proposals bound to jobs.
type QuoteRepository interface {
	// CreateQuote persists a new quote.
	CreateQuote(ctx context.Context, quote *entity.Quote) error

	// FindQuoteByID retrieves a quote by its unique ID.
	FindQuoteByID(ctx context.Context, id uuid.UUID) (*entity.Quote, error)

	// FindQuoteByJob retrieves the latest quote bound to a job.
	FindQuoteByJob(ctx context.Context, jobID uuid.UUID) (*entity.Quote, error)

	// UpdateQuoteStatusCAS atomically moves a quote into the target status if
	// its current status is one of the expected values. It returns false when
	// the optimistic check lost.
	UpdateQuoteStatusCAS(ctx context.Context, id uuid.UUID, from []entity.QuoteStatus, to entity.QuoteStatus) (bool, error)
}
