package workspace_services

import (
	"errors"
	"fmt"
	"time"

	"seekit/internal/features/activity"
	users_models "seekit/internal/features/users/models"
	workspace_dto "seekit/internal/features/workspace/dto"
	workspace_enums "seekit/internal/features/workspace/enums"
	workspace_models "seekit/internal/features/workspace/models"
	workspace_repositories "seekit/internal/features/workspace/repositories"
	"seekit/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrNotParticipant = errors.New("user is not a participant of this project")

type WorkspaceService struct {
	projectRepository    *workspace_repositories.ProjectRepository
	milestoneRepository  *workspace_repositories.MilestoneRepository
	submissionRepository *workspace_repositories.SubmissionRepository
	activityService      *activity.ActivityService
}

type defaultMilestone struct {
	name        string
	description string
}

var defaultMilestones = []defaultMilestone{
	{"Initial Design", "Design phase and planning"},
	{"Development", "Core development work"},
	{"Testing", "Testing and quality assurance"},
	{"Final Delivery", "Final deliverable submission"},
}

// CreateWorkspaceInTx inserts the project with its milestone set inside
// the caller's transaction. The caller guarantees the application is
// already accepted. Milestones come from the template when given,
// otherwise from the default four-phase set; order numbers run from 1.
func (s *WorkspaceService) CreateWorkspaceInTx(
	tx *gorm.DB,
	applicationID uuid.UUID,
	jobID uuid.UUID,
	freelancerID uuid.UUID,
	clientID uuid.UUID,
	milestoneTemplate []*workspace_dto.MilestoneTemplateDTO,
) (uuid.UUID, error) {
	project := &workspace_models.Project{
		JobID:              jobID,
		FreelancerID:       freelancerID,
		ClientID:           clientID,
		Status:             workspace_enums.ProjectStatusActive,
		ProgressPercentage: 0,
	}

	if err := s.projectRepository.CreateProjectInTx(tx, project); err != nil {
		return uuid.Nil, fmt.Errorf("failed to create project: %w", err)
	}

	var milestones []*workspace_models.Milestone

	if len(milestoneTemplate) > 0 {
		for index, template := range milestoneTemplate {
			milestones = append(milestones, &workspace_models.Milestone{
				ProjectID:   project.ID,
				Name:        template.Name,
				Description: template.Description,
				Status:      workspace_enums.MilestoneStatusPending,
				OrderNumber: index + 1,
				DueDate:     template.DueDate,
			})
		}
	} else {
		for index, def := range defaultMilestones {
			milestones = append(milestones, &workspace_models.Milestone{
				ProjectID:   project.ID,
				Name:        def.name,
				Description: def.description,
				Status:      workspace_enums.MilestoneStatusPending,
				OrderNumber: index + 1,
			})
		}
	}

	if err := s.milestoneRepository.CreateMilestonesInTx(tx, milestones); err != nil {
		return uuid.Nil, fmt.Errorf("failed to create milestones: %w", err)
	}

	err := s.activityService.WriteActivityInTx(
		tx, project.ID, freelancerID,
		activity.TypeWorkspaceCreated,
		fmt.Sprintf("Workspace created for application %s", applicationID),
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to write activity entry: %w", err)
	}

	return project.ID, nil
}

func (s *WorkspaceService) GetWorkspace(
	projectID uuid.UUID,
	user *users_models.User,
) (*workspace_dto.WorkspaceResponseDTO, error) {
	project, err := s.projectRepository.GetProjectByID(projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	if project == nil {
		return nil, nil
	}

	if !project.IsParticipant(user.ID) {
		return nil, ErrNotParticipant
	}

	projectDTO, err := s.projectRepository.GetProjectDTOByID(projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	milestones, err := s.milestoneRepository.GetMilestonesByProject(projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to get milestones: %w", err)
	}

	return &workspace_dto.WorkspaceResponseDTO{
		Project:    projectDTO,
		Milestones: milestones,
	}, nil
}

// SubmitDeliverable records a new deliverable version for the milestone
// and moves it to submitted. An approved milestone keeps its status; the
// version is still recorded.
func (s *WorkspaceService) SubmitDeliverable(
	milestoneID uuid.UUID,
	user *users_models.User,
	request *workspace_dto.SubmitDeliverableRequestDTO,
) (*workspace_dto.SubmitDeliverableResponseDTO, error) {
	milestone, project, err := s.getMilestoneWithProject(milestoneID)
	if err != nil {
		return nil, err
	}
	if milestone == nil {
		return nil, errors.New("milestone not found")
	}

	if project.FreelancerID != user.ID {
		return nil, errors.New("only the project freelancer can submit deliverables")
	}

	submission := &workspace_models.Submission{
		MilestoneID:            milestoneID,
		DeliverableDescription: request.Description,
		FilePath:               request.FilePath,
	}

	resultStatus := milestone.Status

	err = storage.GetDb().Transaction(func(tx *gorm.DB) error {
		if err := s.submissionRepository.CreateSubmissionInTx(tx, submission); err != nil {
			return fmt.Errorf("failed to create submission: %w", err)
		}

		changed, err := s.milestoneRepository.UpdateMilestoneStatusIfNotApprovedInTx(
			tx, milestoneID, workspace_enums.MilestoneStatusSubmitted,
		)
		if err != nil {
			return fmt.Errorf("failed to update milestone status: %w", err)
		}
		if changed {
			resultStatus = workspace_enums.MilestoneStatusSubmitted
		}

		return s.activityService.WriteActivityInTx(
			tx, project.ID, user.ID,
			activity.TypeDeliverableSubmitted,
			fmt.Sprintf("Deliverable v%d submitted for milestone '%s'", submission.VersionNumber, milestone.Name),
		)
	})
	if err != nil {
		return nil, err
	}

	return &workspace_dto.SubmitDeliverableResponseDTO{
		SubmissionID:  submission.ID,
		MilestoneID:   milestoneID,
		VersionNumber: submission.VersionNumber,
		Status:        resultStatus,
	}, nil
}

// ApproveMilestone marks the milestone approved, attaches optional
// feedback to the latest submission and recomputes project progress.
// Re-approving an approved milestone is not an error.
func (s *WorkspaceService) ApproveMilestone(
	milestoneID uuid.UUID,
	user *users_models.User,
	request *workspace_dto.ApproveMilestoneRequestDTO,
) (*workspace_dto.ApproveMilestoneResponseDTO, error) {
	milestone, project, err := s.getMilestoneWithProject(milestoneID)
	if err != nil {
		return nil, err
	}
	if milestone == nil {
		return nil, errors.New("milestone not found")
	}

	if project.ClientID != user.ID {
		return nil, errors.New("only the project client can approve milestones")
	}

	var progress int
	var projectStatus workspace_enums.ProjectStatus

	err = storage.GetDb().Transaction(func(tx *gorm.DB) error {
		err := s.milestoneRepository.UpdateMilestoneStatusInTx(
			tx, milestoneID, workspace_enums.MilestoneStatusApproved,
		)
		if err != nil {
			return fmt.Errorf("failed to approve milestone: %w", err)
		}

		if request.Feedback != nil && *request.Feedback != "" {
			err = s.submissionRepository.SetLatestFeedbackInTx(tx, milestoneID, *request.Feedback)
			if err != nil {
				return fmt.Errorf("failed to attach feedback: %w", err)
			}
		}

		progress, projectStatus, err = s.updateProgressInTx(tx, project.ID)
		if err != nil {
			return err
		}

		return s.activityService.WriteActivityInTx(
			tx, project.ID, user.ID,
			activity.TypeMilestoneApproved,
			fmt.Sprintf("Milestone '%s' approved", milestone.Name),
		)
	})
	if err != nil {
		return nil, err
	}

	return &workspace_dto.ApproveMilestoneResponseDTO{
		MilestoneID:        milestoneID,
		ProgressPercentage: progress,
		ProjectStatus:      projectStatus,
	}, nil
}

// RequestRevision moves the milestone to revision_requested with the
// client's feedback on the latest submission. Progress is untouched;
// only approved milestones count toward it.
func (s *WorkspaceService) RequestRevision(
	milestoneID uuid.UUID,
	user *users_models.User,
	request *workspace_dto.RequestRevisionRequestDTO,
) error {
	milestone, project, err := s.getMilestoneWithProject(milestoneID)
	if err != nil {
		return err
	}
	if milestone == nil {
		return errors.New("milestone not found")
	}

	if project.ClientID != user.ID {
		return errors.New("only the project client can request revisions")
	}

	return storage.GetDb().Transaction(func(tx *gorm.DB) error {
		err := s.milestoneRepository.UpdateMilestoneStatusInTx(
			tx, milestoneID, workspace_enums.MilestoneStatusRevisionRequested,
		)
		if err != nil {
			return fmt.Errorf("failed to update milestone status: %w", err)
		}

		err = s.submissionRepository.SetLatestFeedbackInTx(tx, milestoneID, request.Feedback)
		if err != nil {
			return fmt.Errorf("failed to attach feedback: %w", err)
		}

		return s.activityService.WriteActivityInTx(
			tx, project.ID, user.ID,
			activity.TypeRevisionRequested,
			fmt.Sprintf("Revision requested for milestone '%s'", milestone.Name),
		)
	})
}

// updateProgressInTx is the single source of truth for project progress.
// Progress is floor(100 * approved / total), 0 for a project with no
// milestones. Reaching 100 flips the project to completed and stamps the
// completion time.
func (s *WorkspaceService) updateProgressInTx(
	tx *gorm.DB,
	projectID uuid.UUID,
) (int, workspace_enums.ProjectStatus, error) {
	total, approved, err := s.milestoneRepository.CountMilestonesByProjectInTx(tx, projectID)
	if err != nil {
		return 0, "", fmt.Errorf("failed to count milestones: %w", err)
	}

	progress := 0
	if total > 0 {
		progress = int(approved * 100 / total)
	}

	project, err := s.projectRepository.GetProjectByIDInTx(tx, projectID)
	if err != nil {
		return 0, "", fmt.Errorf("failed to get project: %w", err)
	}
	if project == nil {
		return 0, "", errors.New("project not found")
	}

	status := project.Status
	completedAt := project.CompletedAt

	if progress == 100 {
		status = workspace_enums.ProjectStatusCompleted
		if completedAt == nil {
			now := time.Now().UTC()
			completedAt = &now
		}
	}

	err = s.projectRepository.UpdateProjectProgressInTx(tx, projectID, progress, status, completedAt)
	if err != nil {
		return 0, "", fmt.Errorf("failed to update progress: %w", err)
	}

	return progress, status, nil
}

// MarkDisputed flags the project regardless of its current status. There
// is no transition out of disputed here; resolution happens outside the
// workspace.
func (s *WorkspaceService) MarkDisputed(
	projectID uuid.UUID,
	user *users_models.User,
	reason string,
) error {
	project, err := s.projectRepository.GetProjectByID(projectID)
	if err != nil {
		return fmt.Errorf("failed to get project: %w", err)
	}
	if project == nil {
		return errors.New("project not found")
	}

	if !project.IsParticipant(user.ID) {
		return ErrNotParticipant
	}

	return storage.GetDb().Transaction(func(tx *gorm.DB) error {
		err := s.projectRepository.UpdateProjectStatusInTx(
			tx, projectID, workspace_enums.ProjectStatusDisputed,
		)
		if err != nil {
			return fmt.Errorf("failed to mark project disputed: %w", err)
		}

		return s.activityService.WriteActivityInTx(
			tx, projectID, user.ID,
			activity.TypeProjectDisputed,
			fmt.Sprintf("Project disputed: %s", reason),
		)
	})
}

// ListFreelancerWorkspaces returns the freelancer's active projects.
func (s *WorkspaceService) ListFreelancerWorkspaces(
	user *users_models.User,
) (*workspace_dto.ListWorkspacesResponseDTO, error) {
	activeStatus := workspace_enums.ProjectStatusActive

	projects, err := s.projectRepository.GetProjectDTOsByFreelancer(user.ID, &activeStatus)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}

	return &workspace_dto.ListWorkspacesResponseDTO{
		Projects: projects,
		Total:    int64(len(projects)),
	}, nil
}

// ListClientWorkspaces returns all of the client's projects, any status.
func (s *WorkspaceService) ListClientWorkspaces(
	user *users_models.User,
) (*workspace_dto.ListWorkspacesResponseDTO, error) {
	projects, err := s.projectRepository.GetProjectDTOsByClient(user.ID, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}

	return &workspace_dto.ListWorkspacesResponseDTO{
		Projects: projects,
		Total:    int64(len(projects)),
	}, nil
}

func (s *WorkspaceService) ListMilestoneSubmissions(
	milestoneID uuid.UUID,
	user *users_models.User,
) (*workspace_dto.ListSubmissionsResponseDTO, error) {
	milestone, project, err := s.getMilestoneWithProject(milestoneID)
	if err != nil {
		return nil, err
	}
	if milestone == nil {
		return nil, errors.New("milestone not found")
	}

	if !project.IsParticipant(user.ID) {
		return nil, ErrNotParticipant
	}

	submissions, total, err := s.submissionRepository.GetSubmissionsByMilestone(milestoneID)
	if err != nil {
		return nil, fmt.Errorf("failed to list submissions: %w", err)
	}

	return &workspace_dto.ListSubmissionsResponseDTO{
		Submissions: submissions,
		Total:       total,
	}, nil
}

// GetProjectActivity returns the project trail, newest first, after a
// participant check.
func (s *WorkspaceService) GetProjectActivity(
	projectID uuid.UUID,
	user *users_models.User,
	request *activity.GetActivityRequest,
) (*activity.GetActivityResponse, error) {
	project, err := s.projectRepository.GetProjectByID(projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	if project == nil {
		return nil, errors.New("project not found")
	}

	if !project.IsParticipant(user.ID) {
		return nil, ErrNotParticipant
	}

	return s.activityService.GetProjectActivity(projectID, request)
}

// GetProject exposes the raw project row to other features.
func (s *WorkspaceService) GetProject(projectID uuid.UUID) (*workspace_models.Project, error) {
	return s.projectRepository.GetProjectByID(projectID)
}

// GetCompletedFreelancerProjects lists a freelancer's completed projects
// for portfolio views.
func (s *WorkspaceService) GetCompletedFreelancerProjects(
	freelancerID uuid.UUID,
) ([]*workspace_dto.ProjectDTO, error) {
	return s.projectRepository.GetCompletedProjectDTOsByFreelancer(freelancerID)
}

func (s *WorkspaceService) getMilestoneWithProject(
	milestoneID uuid.UUID,
) (*workspace_models.Milestone, *workspace_models.Project, error) {
	milestone, err := s.milestoneRepository.GetMilestoneByID(milestoneID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get milestone: %w", err)
	}
	if milestone == nil {
		return nil, nil, nil
	}

	project, err := s.projectRepository.GetProjectByID(milestone.ProjectID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get project: %w", err)
	}
	if project == nil {
		return nil, nil, errors.New("project not found for milestone")
	}

	return milestone, project, nil
}
