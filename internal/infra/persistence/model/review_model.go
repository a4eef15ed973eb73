package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"wrench/internal/domain/entity"
)

// ReviewModel mirrors the 'reviews' table. The (job_id, reviewer_id) pair is
// unique; moderation hides rows instead of deleting them.
type ReviewModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key"`
	JobID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_reviews_job_reviewer"`
	ReviewerID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_reviews_job_reviewer"`
	RevieweeID uuid.UUID `gorm:"type:uuid;not null;index"`

	Rating        int `gorm:"not null"`
	Punctuality   int `gorm:"not null;default:0"`
	Quality       int `gorm:"not null;default:0"`
	Communication int `gorm:"not null;default:0"`
	Value         int `gorm:"not null;default:0"`

	Comment     string `gorm:"type:text"`
	Photos      []byte `gorm:"type:jsonb"`
	IsHidden    bool   `gorm:"not null;default:false"`
	ReportCount int64  `gorm:"not null;default:0"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ReviewModel) TableName() string {
	return "reviews"
}

// ToReviewDomain maps the persistence model to a domain entity.
func ToReviewDomain(m *ReviewModel) *entity.Review {
	var photos []string
	if len(m.Photos) > 0 {
		// Rows are only ever written through FromReviewDomain, so the payload
		// is always a string array.
		_ = json.Unmarshal(m.Photos, &photos)
	}

	return &entity.Review{
		ID:         m.ID,
		JobID:      m.JobID,
		ReviewerID: m.ReviewerID,
		RevieweeID: m.RevieweeID,
		Rating:     m.Rating,
		Categories: entity.CategoryRatings{
			Punctuality:   m.Punctuality,
			Quality:       m.Quality,
			Communication: m.Communication,
			Value:         m.Value,
		},
		Comment:     m.Comment,
		Photos:      photos,
		IsHidden:    m.IsHidden,
		ReportCount: m.ReportCount,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// FromReviewDomain maps a domain entity to the persistence model.
func FromReviewDomain(r *entity.Review) *ReviewModel {
	var photos []byte
	if len(r.Photos) > 0 {
		photos, _ = json.Marshal(r.Photos)
	}

	return &ReviewModel{
		ID:            r.ID,
		JobID:         r.JobID,
		ReviewerID:    r.ReviewerID,
		RevieweeID:    r.RevieweeID,
		Rating:        r.Rating,
		Punctuality:   r.Categories.Punctuality,
		Quality:       r.Categories.Quality,
		Communication: r.Categories.Communication,
		Value:         r.Categories.Value,
		Comment:       r.Comment,
		Photos:        photos,
		IsHidden:      r.IsHidden,
		ReportCount:   r.ReportCount,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}
