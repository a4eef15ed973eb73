// Package usecase defines the application's use case interfaces and their
// input/output DTOs.
package usecase

import (
	"context"
	"time"

	"wrench/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateJobInput is the customer's service request.
type CreateJobInput struct {
	Title        string
	Description  string
	Category     string
	Urgency      entity.JobUrgency
	VehicleInfo  string
	Address      string
	Latitude     *float64
	Longitude    *float64
	ScheduledFor *time.Time
}

// JobPartInput is one line appended to the parts-used list.
type JobPartInput struct {
	Name      string
	Quantity  int
	UnitPrice float64
}

// JobTotalsInput replaces the job's cost subtotals. The grand total is always
// recomputed server-side.
type JobTotalsInput struct {
	Labor     float64
	Parts     float64
	Fees      float64
	Discounts float64
}

// JobUsecase is the transition engine for jobs: the single authority for legal
// job status changes and their direct side effects.
type JobUsecase interface {
	// CreateServiceRequest creates a new PENDING job for the customer.
	CreateServiceRequest(ctx context.Context, customerID uuid.UUID, input *CreateJobInput) (*entity.Job, error)

	// GetJob returns a job if the actor is a participant or an admin.
	GetJob(ctx context.Context, jobID, actorID uuid.UUID, role entity.Role) (*entity.Job, error)

	// ListJobs returns the actor's jobs, newest first.
	ListJobs(ctx context.Context, actorID uuid.UUID, role entity.Role, limit, offset int) ([]*entity.Job, error)

	// UpdateJobStatus validates and applies one status transition. Requesting
	// the current status again is a no-op success.
	UpdateJobStatus(ctx context.Context, jobID, actorID uuid.UUID, role entity.Role, newStatus entity.JobStatus, notes string) (*entity.Job, error)

	// UpdateMechanicLocation stores the mechanic's live position while the job
	// is ACCEPTED or IN_PROGRESS.
	UpdateMechanicLocation(ctx context.Context, jobID, actorID uuid.UUID, lat, lng float64, etaMinutes *int) (*entity.Job, error)

	// AddJobPart appends a parts-used line and folds its cost into the totals.
	AddJobPart(ctx context.Context, jobID, actorID uuid.UUID, input *JobPartInput) (*entity.Job, error)

	// UpdateJobTotals replaces the cost subtotals.
	UpdateJobTotals(ctx context.Context, jobID, actorID uuid.UUID, input *JobTotalsInput) (*entity.Job, error)

	// ListJobParts returns the job's parts-used list in creation order.
	ListJobParts(ctx context.Context, jobID, actorID uuid.UUID, role entity.Role) ([]*entity.JobPart, error)

	// AddTimerEntry appends one work-timer action for the assigned mechanic
	// while the job is IN_PROGRESS. The action must legally follow the last
	// recorded one.
	AddTimerEntry(ctx context.Context, jobID, actorID uuid.UUID, action entity.TimerAction) (*entity.TimerEntry, error)

	// GetTimerEntries returns the job's work-timer history.
	GetTimerEntries(ctx context.Context, jobID, actorID uuid.UUID, role entity.Role) ([]*entity.TimerEntry, error)

	// AddJobPhoto attaches an uploaded photo URL to the job.
	AddJobPhoto(ctx context.Context, jobID, actorID uuid.UUID, role entity.Role, url, caption string) (*entity.JobPhoto, error)

	// ListJobPhotos returns the job's photos in creation order.
	ListJobPhotos(ctx context.Context, jobID, actorID uuid.UUID, role entity.Role) ([]*entity.JobPhoto, error)

	// GetTimeline returns the job's lifecycle history.
	GetTimeline(ctx context.Context, jobID, actorID uuid.UUID, role entity.Role) ([]*entity.TimelineEntry, error)

	// CheckInQR renders the on-site check-in QR code for a job.
	CheckInQR(ctx context.Context, jobID, actorID uuid.UUID, role entity.Role) ([]byte, error)

	// CreateDepositIntent registers the up-front deposit charge for an
	// accepted job and returns the payment client secret.
	CreateDepositIntent(ctx context.Context, jobID, customerID uuid.UUID) (string, error)

	// ConfirmPayment reacts to the gateway's payment-confirmed signal.
	ConfirmPayment(ctx context.Context, jobID uuid.UUID) (*entity.Job, error)
}
