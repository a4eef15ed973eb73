// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"wrench/internal/domain/entity"
	"wrench/internal/domain/repository"
	"wrench/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// jobRepository implements the domain's JobRepository interface using GORM.
type jobRepository struct {
	db *gorm.DB
}

// NewJobRepository is the constructor for jobRepository.
func NewJobRepository(db *gorm.DB) repository.JobRepository {
	return &jobRepository{db: db}
}

// CreateJob persists a new job.
func (repo *jobRepository) CreateJob(ctx context.Context, job *entity.Job) error {
	jobM := model.FromJobDomain(job)
	if err := repo.db.WithContext(ctx).Create(jobM).Error; err != nil {
		return errors.Wrap(err, "failed to create job")
	}

	job.CreatedAt = jobM.CreatedAt
	job.UpdatedAt = jobM.UpdatedAt

	return nil
}

// FindJobByID retrieves a job by its unique ID.
func (repo *jobRepository) FindJobByID(ctx context.Context, id uuid.UUID) (*entity.Job, error) {
	var jobM model.JobModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&jobM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrJobNotFound
		}

		return nil, errors.Wrap(err, "failed to find job by id")
	}

	return model.ToJobDomain(&jobM), nil
}

// FindJobsByParticipant lists jobs where the user is the customer or the
// assigned mechanic, newest first.
func (repo *jobRepository) FindJobsByParticipant(ctx context.Context, userID uuid.UUID, role entity.Role, limit, offset int) ([]*entity.Job, error) {
	query := repo.db.WithContext(ctx).Model(&model.JobModel{})
	switch role {
	case entity.RoleMechanic:
		query = query.Where("mechanic_id = ?", userID)
	case entity.RoleAdmin:
		// Admins see all jobs.
	default:
		query = query.Where("customer_id = ?", userID)
	}

	var jobsM []*model.JobModel
	err := query.
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&jobsM).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list jobs")
	}

	jobs := make([]*entity.Job, 0, len(jobsM))
	for _, jobM := range jobsM {
		jobs = append(jobs, model.ToJobDomain(jobM))
	}

	return jobs, nil
}

// UpdateJobStatusCAS applies a compare-and-set status update: the row is only
// written when its status still equals from. It returns false when the guard
// did not match, which callers treat as a lost race.
func (repo *jobRepository) UpdateJobStatusCAS(ctx context.Context, id uuid.UUID, from, to entity.JobStatus, fields map[string]any) (bool, error) {
	updates := map[string]any{"status": string(to)}
	for column, value := range fields {
		updates[column] = value
	}

	result := repo.db.WithContext(ctx).
		Model(&model.JobModel{}).
		Where("id = ? AND status = ?", id, string(from)).
		Updates(updates)
	if result.Error != nil {
		return false, errors.Wrap(result.Error, "failed to update job status")
	}

	return result.RowsAffected > 0, nil
}

// UpdateJobLocation stores the mechanic's live position and ETA.
func (repo *jobRepository) UpdateJobLocation(ctx context.Context, id uuid.UUID, lat, lng float64, eta *time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.JobModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"mechanic_lat": lat,
			"mechanic_lng": lng,
			"eta":          eta,
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update job location")
	}
	if result.RowsAffected == 0 {
		return repository.ErrJobNotFound
	}

	return nil
}

// AddJobPart appends one parts-used line.
func (repo *jobRepository) AddJobPart(ctx context.Context, part *entity.JobPart) error {
	partM := model.FromJobPartDomain(part)
	if err := repo.db.WithContext(ctx).Create(partM).Error; err != nil {
		return errors.Wrap(err, "failed to create job part")
	}

	return nil
}

// FindJobParts lists a job's parts in creation order.
func (repo *jobRepository) FindJobParts(ctx context.Context, jobID uuid.UUID) ([]*entity.JobPart, error) {
	var partsM []*model.JobPartModel
	err := repo.db.WithContext(ctx).
		Where("job_id = ?", jobID).
		Order("created_at ASC").
		Find(&partsM).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list job parts")
	}

	parts := make([]*entity.JobPart, 0, len(partsM))
	for _, partM := range partsM {
		parts = append(parts, model.ToJobPartDomain(partM))
	}

	return parts, nil
}

// UpdateJobTotals replaces the job's cost breakdown columns.
func (repo *jobRepository) UpdateJobTotals(ctx context.Context, id uuid.UUID, totals entity.JobTotals) error {
	result := repo.db.WithContext(ctx).
		Model(&model.JobModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"totals_labor":       totals.Labor,
			"totals_parts":       totals.Parts,
			"totals_fees":        totals.Fees,
			"totals_discounts":   totals.Discounts,
			"totals_grand_total": totals.GrandTotal,
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update job totals")
	}
	if result.RowsAffected == 0 {
		return repository.ErrJobNotFound
	}

	return nil
}

// MarkJobPaid stamps the payment confirmation time.
func (repo *jobRepository) MarkJobPaid(ctx context.Context, id uuid.UUID, paidAt time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.JobModel{}).
		Where("id = ? AND paid_at IS NULL", id).
		Update("paid_at", paidAt)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to mark job paid")
	}

	return nil
}

// AppendTimerEntry stores one work-timer record. Entries are append-only.
func (repo *jobRepository) AppendTimerEntry(ctx context.Context, entry *entity.TimerEntry) error {
	entryM := model.FromTimerEntryDomain(entry)
	if err := repo.db.WithContext(ctx).Create(entryM).Error; err != nil {
		return errors.Wrap(err, "failed to append timer entry")
	}

	entry.CreatedAt = entryM.CreatedAt

	return nil
}

// FindTimerEntriesByJob lists a job's timer records in event order.
func (repo *jobRepository) FindTimerEntriesByJob(ctx context.Context, jobID uuid.UUID) ([]*entity.TimerEntry, error) {
	var entriesM []*model.TimerEntryModel
	err := repo.db.WithContext(ctx).
		Where("job_id = ?", jobID).
		Order("created_at ASC").
		Find(&entriesM).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list timer entries")
	}

	entries := make([]*entity.TimerEntry, 0, len(entriesM))
	for _, entryM := range entriesM {
		entries = append(entries, model.ToTimerEntryDomain(entryM))
	}

	return entries, nil
}

// AddJobPhoto attaches one photo record to the job.
func (repo *jobRepository) AddJobPhoto(ctx context.Context, photo *entity.JobPhoto) error {
	photoM := model.FromJobPhotoDomain(photo)
	if err := repo.db.WithContext(ctx).Create(photoM).Error; err != nil {
		return errors.Wrap(err, "failed to create job photo")
	}

	photo.CreatedAt = photoM.CreatedAt

	return nil
}

// FindJobPhotos lists a job's photos in creation order.
func (repo *jobRepository) FindJobPhotos(ctx context.Context, jobID uuid.UUID) ([]*entity.JobPhoto, error) {
	var photosM []*model.JobPhotoModel
	err := repo.db.WithContext(ctx).
		Where("job_id = ?", jobID).
		Order("created_at ASC").
		Find(&photosM).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list job photos")
	}

	photos := make([]*entity.JobPhoto, 0, len(photosM))
	for _, photoM := range photosM {
		photos = append(photos, model.ToJobPhotoDomain(photoM))
	}

	return photos, nil
}

// AppendTimelineEntry stores one lifecycle record. Entries are append-only.
func (repo *jobRepository) AppendTimelineEntry(ctx context.Context, entry *entity.TimelineEntry) error {
	entryM := model.FromTimelineEntryDomain(entry)
	if err := repo.db.WithContext(ctx).Create(entryM).Error; err != nil {
		return errors.Wrap(err, "failed to append timeline entry")
	}

	return nil
}

// FindTimelineByJob lists a job's lifecycle records in event order.
func (repo *jobRepository) FindTimelineByJob(ctx context.Context, jobID uuid.UUID) ([]*entity.TimelineEntry, error) {
	var entriesM []*model.TimelineEntryModel
	err := repo.db.WithContext(ctx).
		Where("job_id = ?", jobID).
		Order("created_at ASC").
		Find(&entriesM).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list timeline entries")
	}

	entries := make([]*entity.TimelineEntry, 0, len(entriesM))
	for _, entryM := range entriesM {
		entries = append(entries, model.ToTimelineEntryDomain(entryM))
	}

	return entries, nil
}
