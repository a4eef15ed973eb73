package usecase

import (
	"context"
	"time"

	"wrench/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateQuoteInput is a mechanic's priced proposal for a job. When Total is
// nil the engine computes labor+parts+travel and applies the configured tax
// rate.
type CreateQuoteInput struct {
	JobID       uuid.UUID
	LaborCost   float64
	PartsCost   float64
	TravelCost  float64
	Total       *float64
	Currency    string
	Description string
	ValidUntil  *time.Time
}

// AcceptQuoteResult carries both entities mutated by a quote acceptance.
type AcceptQuoteResult struct {
	Quote *entity.Quote `json:"quote"`
	Job   *entity.Job   `json:"job"`
}

// QuoteUsecase is the transition engine for quotes.
type QuoteUsecase interface {
	// CreateQuote creates a PENDING quote and moves the bound job to QUOTED.
	CreateQuote(ctx context.Context, mechanicID uuid.UUID, input *CreateQuoteInput) (*entity.Quote, error)

	// GetQuote returns a quote if the actor participates in the bound job.
	GetQuote(ctx context.Context, quoteID, actorID uuid.UUID, role entity.Role) (*entity.Quote, error)

	// AcceptQuote accepts a quote on behalf of the job's customer, assigning
	// the mechanic and moving the job to ACCEPTED. Accepting an already
	// accepted quote is a no-op success.
	AcceptQuote(ctx context.Context, quoteID, customerID uuid.UUID) (*AcceptQuoteResult, error)

	// RejectQuote rejects a PENDING or APPROVED quote.
	RejectQuote(ctx context.Context, quoteID, customerID uuid.UUID) (*entity.Quote, error)

	// ApproveQuote marks a PENDING quote as admin-approved.
	ApproveQuote(ctx context.Context, quoteID uuid.UUID) (*entity.Quote, error)
}
