package entity

import (
	"time"

	"github.com/google/uuid"
)

// CategoryRatings holds the optional per-category scores of a review.
// A zero value means the category was not rated.
type CategoryRatings struct {
	Punctuality   int `json:"punctuality"`
	Quality       int `json:"quality"`
	Communication int `json:"communication"`
	Value         int `json:"value"`
}

// Review is feedback bound to one completed job, from one participant about
// the other. Exactly one review may exist per (job, reviewer) pair, and it is
// never deleted; moderation only hides it or increments its report count.
type Review struct {
	ID         uuid.UUID `json:"id"`
	JobID      uuid.UUID `json:"job_id"`
	ReviewerID uuid.UUID `json:"reviewer_id"`
	RevieweeID uuid.UUID `json:"reviewee_id"`

	Rating     int             `json:"rating"` // 1..5
	Categories CategoryRatings `json:"categories"`
	Comment    string          `json:"comment"`
	Photos     []string        `json:"photos,omitempty"`

	IsHidden    bool  `json:"is_hidden"`
	ReportCount int64 `json:"report_count"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ValidRating reports whether r is a legal overall or category rating value.
func ValidRating(r int) bool {
	return r >= 1 && r <= 5
}
