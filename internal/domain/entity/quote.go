package entity

import (
	"time"

	"github.com/google/uuid"
)

// QuoteStatus is the canonical status enumeration for quotes.
type QuoteStatus string

const (
	QuoteStatusPending  QuoteStatus = "PENDING"
	QuoteStatusApproved QuoteStatus = "APPROVED"
	QuoteStatusAccepted QuoteStatus = "ACCEPTED"
	QuoteStatusRejected QuoteStatus = "REJECTED"
	// QuoteStatusExpired is never persisted; it is the effective status of a
	// PENDING/APPROVED quote whose validity window has passed.
	QuoteStatusExpired QuoteStatus = "EXPIRED"
)

// Quote is a priced proposal bound 1:1 to a job. Accepting it assigns the
// quoting mechanic to the job and moves the job to ACCEPTED.
type Quote struct {
	ID         uuid.UUID `json:"id"`
	JobID      uuid.UUID `json:"job_id"`
	CustomerID uuid.UUID `json:"customer_id"`
	MechanicID uuid.UUID `json:"mechanic_id"`

	LaborCost  float64 `json:"labor_cost"`
	PartsCost  float64 `json:"parts_cost"`
	TravelCost float64 `json:"travel_cost"`
	Amount     float64 `json:"amount"` // grand total including tax
	Currency   string  `json:"currency"`

	Description string      `json:"description"`
	Status      QuoteStatus `json:"status"`
	ValidUntil  time.Time   `json:"valid_until"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Expired reports whether the validity window has passed at the given instant.
func (q *Quote) Expired(now time.Time) bool {
	return now.After(q.ValidUntil)
}

// EffectiveStatus returns the status a reader must act on: a stored
// PENDING/APPROVED past its validity window reads as EXPIRED regardless of the
// persisted value.
func (q *Quote) EffectiveStatus(now time.Time) QuoteStatus {
	if (q.Status == QuoteStatusPending || q.Status == QuoteStatusApproved) && q.Expired(now) {
		return QuoteStatusExpired
	}

	return q.Status
}

// Acceptable reports whether the quote can be accepted at the given instant.
func (q *Quote) Acceptable(now time.Time) bool {
	s := q.EffectiveStatus(now)

	return s == QuoteStatusPending || s == QuoteStatusApproved
}
