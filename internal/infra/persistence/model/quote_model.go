package model

import (
	"time"

	"github.com/google/uuid"

	"wrench/internal/domain/entity"
)

// QuoteModel mirrors the 'quotes' table. EXPIRED is never stored; expiry is
// derived from valid_until at read time.
type QuoteModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key"`
	JobID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	CustomerID uuid.UUID `gorm:"type:uuid;not null;index"`
	MechanicID uuid.UUID `gorm:"type:uuid;not null;index"`

	LaborCost  float64 `gorm:"not null"`
	PartsCost  float64 `gorm:"not null"`
	TravelCost float64 `gorm:"not null"`
	Amount     float64 `gorm:"not null"`
	Currency   string  `gorm:"type:varchar(10);not null"`

	Description string    `gorm:"type:text"`
	Status      string    `gorm:"type:varchar(20);not null"`
	ValidUntil  time.Time `gorm:"not null"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (QuoteModel) TableName() string {
	return "quotes"
}

// ToQuoteDomain maps the persistence model to a domain entity.
func ToQuoteDomain(m *QuoteModel) *entity.Quote {
	return &entity.Quote{
		ID:          m.ID,
		JobID:       m.JobID,
		CustomerID:  m.CustomerID,
		MechanicID:  m.MechanicID,
		LaborCost:   m.LaborCost,
		PartsCost:   m.PartsCost,
		TravelCost:  m.TravelCost,
		Amount:      m.Amount,
		Currency:    m.Currency,
		Description: m.Description,
		Status:      entity.QuoteStatus(m.Status),
		ValidUntil:  m.ValidUntil,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// FromQuoteDomain maps a domain entity to the persistence model.
func FromQuoteDomain(q *entity.Quote) *QuoteModel {
	return &QuoteModel{
		ID:          q.ID,
		JobID:       q.JobID,
		CustomerID:  q.CustomerID,
		MechanicID:  q.MechanicID,
		LaborCost:   q.LaborCost,
		PartsCost:   q.PartsCost,
		TravelCost:  q.TravelCost,
		Amount:      q.Amount,
		Currency:    q.Currency,
		Description: q.Description,
		Status:      string(q.Status),
		ValidUntil:  q.ValidUntil,
		CreatedAt:   q.CreatedAt,
		UpdatedAt:   q.UpdatedAt,
	}
}
