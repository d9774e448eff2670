package jobs

import (
	"errors"
	"fmt"
	"time"

	users_models "seekit/internal/features/users/models"
	cache_utils "seekit/internal/util/cache"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
)

type JobService struct {
	jobRepository *JobRepository

	jobCacheUtil *cache_utils.CacheUtil[Job]
	singleflight singleflight.Group // Prevents thundering herd on DB calls
}

func (s *JobService) CreateJob(
	request *CreateJobRequestDTO,
	creator *users_models.User,
) (*CreateJobResponseDTO, error) {
	if !creator.IsClient() {
		return nil, errors.New("only clients can post jobs")
	}

	if request.BudgetMax > 0 && request.BudgetMin > request.BudgetMax {
		return nil, errors.New("minimum budget cannot exceed maximum budget")
	}

	job := &Job{
		ID:             uuid.New(),
		ClientID:       creator.ID,
		Title:          request.Title,
		Description:    request.Description,
		RequiredSkills: request.RequiredSkills,
		BudgetMin:      request.BudgetMin,
		BudgetMax:      request.BudgetMax,
		Deadline:       request.Deadline,
		Status:         JobStatusOpen,
		CreatedAt:      time.Now().UTC(),
	}

	if err := s.jobRepository.CreateJob(job); err != nil {
		return nil, fmt.Errorf("failed to create job: %w", err)
	}

	// Pre-warm cache with new job for immediate availability
	s.jobCacheUtil.Set(job.ID.String(), job)

	return &CreateJobResponseDTO{
		ID:        job.ID,
		Title:     job.Title,
		Status:    job.Status,
		CreatedAt: job.CreatedAt,
	}, nil
}

func (s *JobService) GetJob(jobID uuid.UUID) (*Job, error) {
	return s.jobRepository.GetJobByID(jobID)
}

// GetJobWithCache serves hot job reads (application submission checks)
// from the cache, falling back to the DB behind singleflight.
func (s *JobService) GetJobWithCache(jobID uuid.UUID) (*Job, error) {
	jobIDStr := jobID.String()

	if cachedJob := s.jobCacheUtil.Get(jobIDStr); cachedJob != nil {
		if cachedJob.IsNotExists {
			return nil, errors.New("job not found")
		}

		return cachedJob, nil
	}

	result, err, _ := s.singleflight.Do(jobIDStr, func() (any, error) {
		job, err := s.jobRepository.GetJobByID(jobID)
		if err != nil {
			return nil, err
		}
		if job == nil {
			return nil, errors.New("job not found")
		}

		return job, nil
	})

	if err != nil {
		// Cache the invalid job to prevent future DB hits
		invalidCachedJob := &Job{
			ID:          jobID,
			IsNotExists: true,
		}
		s.jobCacheUtil.Set(jobIDStr, invalidCachedJob)
		return nil, errors.New("job not found")
	}

	job, ok := result.(*Job)
	if !ok {
		return nil, fmt.Errorf("failed to cast result to Job")
	}

	s.jobCacheUtil.Set(jobIDStr, job)

	return job, nil
}

func (s *JobService) UpdateJob(
	jobID uuid.UUID,
	request *UpdateJobRequestDTO,
	user *users_models.User,
) (*Job, error) {
	job, err := s.jobRepository.GetJobByID(jobID)
	if err != nil {
		return nil, fmt.Errorf("failed to get job: %w", err)
	}
	if job == nil {
		return nil, errors.New("job not found")
	}

	if job.ClientID != user.ID {
		return nil, errors.New("only the job owner can update it")
	}

	if !job.IsOpen() {
		return nil, errors.New("only open jobs can be updated")
	}

	if request.Title != nil {
		job.Title = *request.Title
	}
	if request.Description != nil {
		job.Description = *request.Description
	}
	if request.RequiredSkills != nil {
		job.RequiredSkills = request.RequiredSkills
	}
	if request.BudgetMin != nil {
		job.BudgetMin = *request.BudgetMin
	}
	if request.BudgetMax != nil {
		job.BudgetMax = *request.BudgetMax
	}
	if request.Deadline != nil {
		job.Deadline = request.Deadline
	}

	if job.BudgetMax > 0 && job.BudgetMin > job.BudgetMax {
		return nil, errors.New("minimum budget cannot exceed maximum budget")
	}

	if err := s.jobRepository.UpdateJob(job); err != nil {
		return nil, fmt.Errorf("failed to update job: %w", err)
	}

	s.jobCacheUtil.Set(job.ID.String(), job)

	return job, nil
}

func (s *JobService) DeleteJob(jobID uuid.UUID, user *users_models.User) error {
	job, err := s.jobRepository.GetJobByID(jobID)
	if err != nil {
		return fmt.Errorf("failed to get job: %w", err)
	}
	if job == nil {
		return errors.New("job not found")
	}

	if job.ClientID != user.ID {
		return errors.New("only the job owner can delete it")
	}

	if !job.IsOpen() {
		return errors.New("only open jobs can be deleted")
	}

	if err := s.jobRepository.DeleteJob(jobID); err != nil {
		return fmt.Errorf("failed to delete job: %w", err)
	}

	s.jobCacheUtil.Invalidate(jobID.String())

	return nil
}

func (s *JobService) ListJobs(request *ListJobsRequestDTO) (*ListJobsResponseDTO, error) {
	limit := request.Limit
	if limit <= 0 || limit > 1000 {
		limit = 100
	}

	offset := max(request.Offset, 0)

	if request.Status != nil && !request.Status.IsValid() {
		return nil, errors.New("invalid job status")
	}

	jobs, total, err := s.jobRepository.GetJobs(request.Status, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}

	return &ListJobsResponseDTO{Jobs: jobs, Total: total}, nil
}

func (s *JobService) ListClientJobs(clientID uuid.UUID) (*ListJobsResponseDTO, error) {
	jobs, err := s.jobRepository.GetJobsByClient(clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to list client jobs: %w", err)
	}

	return &ListJobsResponseDTO{Jobs: jobs, Total: int64(len(jobs))}, nil
}

func (s *JobService) SearchJobs(request *SearchJobsRequestDTO) (*ListJobsResponseDTO, error) {
	limit := request.Limit
	if limit <= 0 || limit > 1000 {
		limit = 100
	}

	offset := max(request.Offset, 0)

	jobs, total, err := s.jobRepository.SearchJobs(
		request.Keywords,
		request.MinBudget,
		request.MaxBudget,
		limit,
		offset,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to search jobs: %w", err)
	}

	return &ListJobsResponseDTO{Jobs: jobs, Total: total}, nil
}

// InvalidateJobCache drops the cached copy after a status change made
// through another feature's transaction.
func (s *JobService) InvalidateJobCache(jobID uuid.UUID) {
	s.jobCacheUtil.Invalidate(jobID.String())
}
