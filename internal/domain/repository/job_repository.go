// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"
	"time"

	"wrench/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for job persistence.
var (
	// ErrJobNotFound is returned when a job is not found.
	ErrJobNotFound = errors.New("job not found")
)

// JobRepository is the single write path for job rows. Status changes go
// through the compare-and-swap update so concurrent writers cannot both
// succeed against the same prior status.
type JobRepository interface {
	// CreateJob persists a new job.
	CreateJob(ctx context.Context, job *entity.Job) error

	// FindJobByID retrieves a job by its unique ID.
	FindJobByID(ctx context.Context, id uuid.UUID) (*entity.Job, error)

	// FindJobsByParticipant retrieves jobs where the user is the customer or
	// the assigned mechanic, newest first.
	FindJobsByParticipant(ctx context.Context, userID uuid.UUID, role entity.Role, limit, offset int) ([]*entity.Job, error)

	// UpdateJobStatusCAS atomically moves a job from one status to another,
	// applying the extra column updates in the same statement. It returns
	// false when the job was not in the expected prior status (the optimistic
	// concurrency check lost).
	UpdateJobStatusCAS(ctx context.Context, id uuid.UUID, from, to entity.JobStatus, fields map[string]any) (bool, error)

	// UpdateJobLocation stores the mechanic's live position and ETA.
	UpdateJobLocation(ctx context.Context, id uuid.UUID, lat, lng float64, eta *time.Time) error

	// AddJobPart appends one line to the job's parts-used list.
	AddJobPart(ctx context.Context, part *entity.JobPart) error

	// FindJobParts returns the parts-used list in creation order.
	FindJobParts(ctx context.Context, jobID uuid.UUID) ([]*entity.JobPart, error)

	// UpdateJobTotals replaces the cost breakdown of a job.
	UpdateJobTotals(ctx context.Context, id uuid.UUID, totals entity.JobTotals) error

	// MarkJobPaid stamps the payment confirmation time.
	MarkJobPaid(ctx context.Context, id uuid.UUID, paidAt time.Time) error

	// AppendTimerEntry records one work-timer action for the job.
	AppendTimerEntry(ctx context.Context, entry *entity.TimerEntry) error

	// FindTimerEntriesByJob returns the job's timer entries in creation order.
	FindTimerEntriesByJob(ctx context.Context, jobID uuid.UUID) ([]*entity.TimerEntry, error)

	// AddJobPhoto attaches one photo record to the job.
	AddJobPhoto(ctx context.Context, photo *entity.JobPhoto) error

	// FindJobPhotos returns the job's photos in creation order.
	FindJobPhotos(ctx context.Context, jobID uuid.UUID) ([]*entity.JobPhoto, error)

	// AppendTimelineEntry records one lifecycle event for the job.
	AppendTimelineEntry(ctx context.Context, entry *entity.TimelineEntry) error

	// FindTimelineByJob returns the job's timeline in creation order.
	FindTimelineByJob(ctx context.Context, jobID uuid.UUID) ([]*entity.TimelineEntry, error)
}
