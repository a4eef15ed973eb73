package model

import (
	"time"

	"github.com/google/uuid"

	"wrench/internal/domain/entity"
)

// JobModel mirrors the 'jobs' table. Status transitions are guarded by
// compare-and-set updates on the status column; there is no row locking.
type JobModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key"`
	Title       string    `gorm:"type:varchar(200);not null"`
	Description string    `gorm:"type:text"`
	Category    string    `gorm:"type:varchar(100)"`
	Status      string    `gorm:"type:varchar(20);not null;index"`
	Urgency     string    `gorm:"type:varchar(20);not null"`

	CustomerID uuid.UUID  `gorm:"type:uuid;not null;index"`
	MechanicID *uuid.UUID `gorm:"type:uuid;index"`

	VehicleInfo string `gorm:"type:varchar(255)"`

	Address   string `gorm:"type:varchar(500);not null"`
	Latitude  *float64
	Longitude *float64

	MechanicLat *float64
	MechanicLng *float64
	ETA         *time.Time `gorm:"column:eta"`

	TotalsLabor      float64 `gorm:"not null;default:0"`
	TotalsParts      float64 `gorm:"not null;default:0"`
	TotalsFees       float64 `gorm:"not null;default:0"`
	TotalsDiscounts  float64 `gorm:"not null;default:0"`
	TotalsGrandTotal float64 `gorm:"not null;default:0"`

	ScheduledFor *time.Time
	StartedAt    *time.Time
	CompletedAt  *time.Time
	PaidAt       *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (JobModel) TableName() string {
	return "jobs"
}

// ToJobDomain maps the persistence model to a domain entity.
func ToJobDomain(m *JobModel) *entity.Job {
	return &entity.Job{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		Category:    m.Category,
		Status:      entity.JobStatus(m.Status),
		Urgency:     entity.JobUrgency(m.Urgency),
		CustomerID:  m.CustomerID,
		MechanicID:  m.MechanicID,
		VehicleInfo: m.VehicleInfo,
		Address:     m.Address,
		Latitude:    m.Latitude,
		Longitude:   m.Longitude,
		MechanicLat: m.MechanicLat,
		MechanicLng: m.MechanicLng,
		ETA:         m.ETA,
		Totals: entity.JobTotals{
			Labor:      m.TotalsLabor,
			Parts:      m.TotalsParts,
			Fees:       m.TotalsFees,
			Discounts:  m.TotalsDiscounts,
			GrandTotal: m.TotalsGrandTotal,
		},
		ScheduledFor: m.ScheduledFor,
		StartedAt:    m.StartedAt,
		CompletedAt:  m.CompletedAt,
		PaidAt:       m.PaidAt,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// FromJobDomain maps a domain entity to the persistence model.
func FromJobDomain(j *entity.Job) *JobModel {
	return &JobModel{
		ID:               j.ID,
		Title:            j.Title,
		Description:      j.Description,
		Category:         j.Category,
		Status:           string(j.Status),
		Urgency:          string(j.Urgency),
		CustomerID:       j.CustomerID,
		MechanicID:       j.MechanicID,
		VehicleInfo:      j.VehicleInfo,
		Address:          j.Address,
		Latitude:         j.Latitude,
		Longitude:        j.Longitude,
		MechanicLat:      j.MechanicLat,
		MechanicLng:      j.MechanicLng,
		ETA:              j.ETA,
		TotalsLabor:      j.Totals.Labor,
		TotalsParts:      j.Totals.Parts,
		TotalsFees:       j.Totals.Fees,
		TotalsDiscounts:  j.Totals.Discounts,
		TotalsGrandTotal: j.Totals.GrandTotal,
		ScheduledFor:     j.ScheduledFor,
		StartedAt:        j.StartedAt,
		CompletedAt:      j.CompletedAt,
		PaidAt:           j.PaidAt,
		CreatedAt:        j.CreatedAt,
		UpdatedAt:        j.UpdatedAt,
	}
}

// JobPartModel mirrors the 'job_parts' table.
type JobPartModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	JobID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Name      string    `gorm:"type:varchar(200);not null"`
	Quantity  int       `gorm:"not null"`
	UnitPrice float64   `gorm:"not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (JobPartModel) TableName() string {
	return "job_parts"
}

// ToJobPartDomain maps the persistence model to a domain entity.
func ToJobPartDomain(m *JobPartModel) *entity.JobPart {
	return &entity.JobPart{
		ID:        m.ID,
		JobID:     m.JobID,
		Name:      m.Name,
		Quantity:  m.Quantity,
		UnitPrice: m.UnitPrice,
		CreatedAt: m.CreatedAt,
	}
}

// FromJobPartDomain maps a domain entity to the persistence model.
func FromJobPartDomain(p *entity.JobPart) *JobPartModel {
	return &JobPartModel{
		ID:        p.ID,
		JobID:     p.JobID,
		Name:      p.Name,
		Quantity:  p.Quantity,
		UnitPrice: p.UnitPrice,
		CreatedAt: p.CreatedAt,
	}
}

// TimerEntryModel mirrors the 'job_timer_entries' table. Rows are
// append-only; ordering validation happens in the usecase layer.
type TimerEntryModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	JobID     uuid.UUID `gorm:"type:uuid;not null;index"`
	ActorID   uuid.UUID `gorm:"type:uuid;not null"`
	Action    string    `gorm:"type:varchar(10);not null"`
	CreatedAt time.Time `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (TimerEntryModel) TableName() string {
	return "job_timer_entries"
}

// ToTimerEntryDomain maps the persistence model to a domain entity.
func ToTimerEntryDomain(m *TimerEntryModel) *entity.TimerEntry {
	return &entity.TimerEntry{
		ID:        m.ID,
		JobID:     m.JobID,
		ActorID:   m.ActorID,
		Action:    entity.TimerAction(m.Action),
		CreatedAt: m.CreatedAt,
	}
}

// FromTimerEntryDomain maps a domain entity to the persistence model.
func FromTimerEntryDomain(e *entity.TimerEntry) *TimerEntryModel {
	return &TimerEntryModel{
		ID:        e.ID,
		JobID:     e.JobID,
		ActorID:   e.ActorID,
		Action:    string(e.Action),
		CreatedAt: e.CreatedAt,
	}
}

// JobPhotoModel mirrors the 'job_photos' table.
type JobPhotoModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key"`
	JobID      uuid.UUID `gorm:"type:uuid;not null;index"`
	UploaderID uuid.UUID `gorm:"type:uuid;not null"`
	URL        string    `gorm:"type:varchar(1000);not null"`
	Caption    string    `gorm:"type:varchar(500)"`
	CreatedAt  time.Time `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (JobPhotoModel) TableName() string {
	return "job_photos"
}

// ToJobPhotoDomain maps the persistence model to a domain entity.
func ToJobPhotoDomain(m *JobPhotoModel) *entity.JobPhoto {
	return &entity.JobPhoto{
		ID:         m.ID,
		JobID:      m.JobID,
		UploaderID: m.UploaderID,
		URL:        m.URL,
		Caption:    m.Caption,
		CreatedAt:  m.CreatedAt,
	}
}

// FromJobPhotoDomain maps a domain entity to the persistence model.
func FromJobPhotoDomain(p *entity.JobPhoto) *JobPhotoModel {
	return &JobPhotoModel{
		ID:         p.ID,
		JobID:      p.JobID,
		UploaderID: p.UploaderID,
		URL:        p.URL,
		Caption:    p.Caption,
		CreatedAt:  p.CreatedAt,
	}
}

// TimelineEntryModel mirrors the 'job_timeline_entries' table. Rows are
// append-only.
type TimelineEntryModel struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key"`
	JobID      uuid.UUID  `gorm:"type:uuid;not null;index"`
	ActorID    *uuid.UUID `gorm:"type:uuid"`
	FromStatus string     `gorm:"type:varchar(20)"`
	ToStatus   string     `gorm:"type:varchar(20);not null"`
	Notes      string     `gorm:"type:text"`
	CreatedAt  time.Time  `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (TimelineEntryModel) TableName() string {
	return "job_timeline_entries"
}

// ToTimelineEntryDomain maps the persistence model to a domain entity.
func ToTimelineEntryDomain(m *TimelineEntryModel) *entity.TimelineEntry {
	return &entity.TimelineEntry{
		ID:         m.ID,
		JobID:      m.JobID,
		ActorID:    m.ActorID,
		FromStatus: entity.JobStatus(m.FromStatus),
		ToStatus:   entity.JobStatus(m.ToStatus),
		Notes:      m.Notes,
		CreatedAt:  m.CreatedAt,
	}
}

// FromTimelineEntryDomain maps a domain entity to the persistence model.
func FromTimelineEntryDomain(e *entity.TimelineEntry) *TimelineEntryModel {
	return &TimelineEntryModel{
		ID:         e.ID,
		JobID:      e.JobID,
		ActorID:    e.ActorID,
		FromStatus: string(e.FromStatus),
		ToStatus:   string(e.ToStatus),
		Notes:      e.Notes,
		CreatedAt:  e.CreatedAt,
	}
}
