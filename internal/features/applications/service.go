package applications

import (
	"errors"
	"fmt"
	"time"

	"seekit/internal/features/jobs"
	users_models "seekit/internal/features/users/models"
	workspace_services "seekit/internal/features/workspace/services"
	"seekit/internal/storage"
	"seekit/internal/util/rate_limit"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Submission throttle: one application per 10 seconds,
// bursts of 5, per freelancer.
const (
	submitRatePerSecond = 1
	submitBurst         = 5
)

type ApplicationService struct {
	applicationRepository *ApplicationRepository
	jobService            *jobs.JobService
	workspaceService      *workspace_services.WorkspaceService
	rateLimiter           *rate_limit.RateLimiter
}

func (s *ApplicationService) SubmitApplication(
	jobID uuid.UUID,
	request *SubmitApplicationRequestDTO,
	freelancer *users_models.User,
) (*SubmitApplicationResponseDTO, error) {
	if !freelancer.IsFreelancer() {
		return nil, errors.New("only freelancers can apply to jobs")
	}

	limit, err := s.rateLimiter.CheckRateLimit(freelancer.ID, submitRatePerSecond, submitBurst)
	if err != nil {
		return nil, fmt.Errorf("failed to check rate limit: %w", err)
	}
	if !limit.Allowed {
		return nil, errors.New("too many applications, please try again later")
	}

	job, err := s.jobService.GetJobWithCache(jobID)
	if err != nil {
		return nil, errors.New("job not found")
	}

	if !job.IsOpen() {
		return nil, errors.New("job is not open for applications")
	}

	if job.ClientID == freelancer.ID {
		return nil, errors.New("cannot apply to your own job")
	}

	existing, err := s.applicationRepository.GetExistingApplication(jobID, freelancer.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing application: %w", err)
	}
	if existing != nil {
		return nil, errors.New("you have already applied to this job")
	}

	application := &Application{
		ID:           uuid.New(),
		JobID:        jobID,
		FreelancerID: freelancer.ID,
		CoverLetter:  request.CoverLetter,
		Status:       ApplicationStatusPending,
		AppliedAt:    time.Now().UTC(),
	}

	if err := s.applicationRepository.CreateApplication(application); err != nil {
		return nil, fmt.Errorf("failed to create application: %w", err)
	}

	return &SubmitApplicationResponseDTO{
		ID:        application.ID,
		JobID:     application.JobID,
		Status:    application.Status,
		AppliedAt: application.AppliedAt,
	}, nil
}

func (s *ApplicationService) ListJobApplications(
	jobID uuid.UUID,
	user *users_models.User,
) (*ListApplicationsResponseDTO, error) {
	job, err := s.jobService.GetJob(jobID)
	if err != nil {
		return nil, fmt.Errorf("failed to get job: %w", err)
	}
	if job == nil {
		return nil, errors.New("job not found")
	}

	if job.ClientID != user.ID {
		return nil, errors.New("only the job owner can view its applications")
	}

	applications, err := s.applicationRepository.GetApplicationsByJob(jobID)
	if err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}

	return &ListApplicationsResponseDTO{
		Applications: applications,
		Total:        int64(len(applications)),
	}, nil
}

func (s *ApplicationService) ListFreelancerApplications(
	freelancer *users_models.User,
) (*ListApplicationsResponseDTO, error) {
	applications, err := s.applicationRepository.GetApplicationsByFreelancer(freelancer.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}

	return &ListApplicationsResponseDTO{
		Applications: applications,
		Total:        int64(len(applications)),
	}, nil
}

// AcceptApplication accepts a pending application and spawns its project
// workspace. The status flips, the job close and the workspace creation
// commit or roll back as one unit.
func (s *ApplicationService) AcceptApplication(
	applicationID uuid.UUID,
	client *users_models.User,
) (*AcceptApplicationResponseDTO, error) {
	application, err := s.applicationRepository.GetApplicationByID(applicationID)
	if err != nil {
		return nil, fmt.Errorf("failed to get application: %w", err)
	}
	if application == nil {
		return nil, errors.New("application not found")
	}

	job, err := s.jobService.GetJob(application.JobID)
	if err != nil {
		return nil, fmt.Errorf("failed to get job: %w", err)
	}
	if job == nil {
		return nil, errors.New("job not found")
	}

	if job.ClientID != client.ID {
		return nil, errors.New("only the job owner can accept applications")
	}

	if !application.IsPending() {
		return nil, errors.New("application has already been decided")
	}

	var projectID uuid.UUID

	err = storage.GetDb().Transaction(func(tx *gorm.DB) error {
		if err := s.applicationRepository.UpdateApplicationStatusInTx(
			tx, applicationID, ApplicationStatusAccepted,
		); err != nil {
			return fmt.Errorf("failed to accept application: %w", err)
		}

		jobRepository := &jobs.JobRepository{}
		if err := jobRepository.UpdateJobStatusInTx(tx, job.ID, jobs.JobStatusInProgress); err != nil {
			return fmt.Errorf("failed to close job: %w", err)
		}

		createdProjectID, err := s.workspaceService.CreateWorkspaceInTx(
			tx, applicationID, job.ID, application.FreelancerID, job.ClientID, nil,
		)
		if err != nil {
			return fmt.Errorf("failed to create workspace: %w", err)
		}

		projectID = createdProjectID
		return nil
	})

	if err != nil {
		return nil, err
	}

	s.jobService.InvalidateJobCache(job.ID)

	return &AcceptApplicationResponseDTO{
		ApplicationID: applicationID,
		ProjectID:     projectID,
	}, nil
}

func (s *ApplicationService) RejectApplication(
	applicationID uuid.UUID,
	client *users_models.User,
) error {
	application, err := s.applicationRepository.GetApplicationByID(applicationID)
	if err != nil {
		return fmt.Errorf("failed to get application: %w", err)
	}
	if application == nil {
		return errors.New("application not found")
	}

	job, err := s.jobService.GetJob(application.JobID)
	if err != nil {
		return fmt.Errorf("failed to get job: %w", err)
	}
	if job == nil {
		return errors.New("job not found")
	}

	if job.ClientID != client.ID {
		return errors.New("only the job owner can reject applications")
	}

	if !application.IsPending() {
		return errors.New("application has already been decided")
	}

	return s.applicationRepository.UpdateApplicationStatus(applicationID, ApplicationStatusRejected)
}

// WithdrawApplication deletes the freelancer's own pending application.
func (s *ApplicationService) WithdrawApplication(
	applicationID uuid.UUID,
	freelancer *users_models.User,
) error {
	application, err := s.applicationRepository.GetApplicationByID(applicationID)
	if err != nil {
		return fmt.Errorf("failed to get application: %w", err)
	}
	if application == nil {
		return errors.New("application not found")
	}

	if application.FreelancerID != freelancer.ID {
		return errors.New("only the applicant can withdraw an application")
	}

	if !application.IsPending() {
		return errors.New("only pending applications can be withdrawn")
	}

	return s.applicationRepository.DeleteApplication(applicationID)
}
