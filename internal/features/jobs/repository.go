package jobs

import (
	"time"

	"seekit/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type JobRepository struct{}

func (r *JobRepository) CreateJob(job *Job) error {
	if job.ID == uuid.Nil {
		job.ID = uuid.New()
	}
	if job.CreatedAt.IsZero() {
		job.CreatedAt = time.Now().UTC()
	}

	return storage.GetDb().Create(job).Error
}

func (r *JobRepository) GetJobByID(jobID uuid.UUID) (*Job, error) {
	var job Job

	if err := storage.GetDb().Where("id = ?", jobID).First(&job).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}

		return nil, err
	}

	return &job, nil
}

func (r *JobRepository) UpdateJob(job *Job) error {
	return storage.GetDb().Save(job).Error
}

func (r *JobRepository) UpdateJobStatus(jobID uuid.UUID, status JobStatus) error {
	return r.UpdateJobStatusInTx(storage.GetDb(), jobID, status)
}

func (r *JobRepository) UpdateJobStatusInTx(tx *gorm.DB, jobID uuid.UUID, status JobStatus) error {
	return tx.Model(&Job{}).
		Where("id = ?", jobID).
		Update("status", status).Error
}

func (r *JobRepository) DeleteJob(jobID uuid.UUID) error {
	return storage.GetDb().Delete(&Job{}, jobID).Error
}

func (r *JobRepository) GetJobs(status *JobStatus, limit, offset int) ([]*Job, int64, error) {
	var jobs []*Job
	var total int64

	countQuery := storage.GetDb().Model(&Job{})
	if status != nil {
		countQuery = countQuery.Where("status = ?", *status)
	}

	if err := countQuery.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query := storage.GetDb().
		Limit(limit).
		Offset(offset).
		Order("created_at DESC")

	if status != nil {
		query = query.Where("status = ?", *status)
	}

	if err := query.Find(&jobs).Error; err != nil {
		return nil, 0, err
	}

	return jobs, total, nil
}

func (r *JobRepository) GetJobsByClient(clientID uuid.UUID) ([]*Job, error) {
	var jobs []*Job

	err := storage.GetDb().
		Where("client_id = ?", clientID).
		Order("created_at DESC").
		Find(&jobs).Error

	return jobs, err
}

// SearchJobs matches open jobs by keyword over title, description and
// skills, and by budget-range overlap.
func (r *JobRepository) SearchJobs(
	keywords string,
	minBudget, maxBudget *float64,
	limit, offset int,
) ([]*Job, int64, error) {
	var jobs []*Job
	var total int64

	buildQuery := func() *gorm.DB {
		query := storage.GetDb().Model(&Job{}).Where("status = ?", JobStatusOpen)

		if keywords != "" {
			pattern := "%" + keywords + "%"
			query = query.Where(
				"title ILIKE ? OR description ILIKE ? OR required_skills_raw ILIKE ?",
				pattern, pattern, pattern,
			)
		}
		if minBudget != nil {
			query = query.Where("budget_max >= ?", *minBudget)
		}
		if maxBudget != nil {
			query = query.Where("budget_min <= ?", *maxBudget)
		}

		return query
	}

	if err := buildQuery().Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := buildQuery().
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&jobs).Error

	return jobs, total, err
}
