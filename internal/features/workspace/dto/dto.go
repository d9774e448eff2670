package workspace_dto

import (
	"time"

	workspace_enums "seekit/internal/features/workspace/enums"
	workspace_models "seekit/internal/features/workspace/models"

	"github.com/google/uuid"
)

// MilestoneTemplateDTO lets the caller override the default milestone
// set at workspace creation.
type MilestoneTemplateDTO struct {
	Name        string     `json:"name"        binding:"required"`
	Description string     `json:"description"`
	DueDate     *time.Time `json:"dueDate"`
}

type SubmitDeliverableRequestDTO struct {
	Description string  `json:"description" binding:"required"`
	FilePath    *string `json:"filePath"`
}

type SubmitDeliverableResponseDTO struct {
	SubmissionID  uuid.UUID                       `json:"submissionId"`
	MilestoneID   uuid.UUID                       `json:"milestoneId"`
	VersionNumber int                             `json:"versionNumber"`
	Status        workspace_enums.MilestoneStatus `json:"status"`
}

type ApproveMilestoneRequestDTO struct {
	Feedback *string `json:"feedback"`
}

type ApproveMilestoneResponseDTO struct {
	MilestoneID        uuid.UUID                     `json:"milestoneId"`
	ProgressPercentage int                           `json:"progressPercentage"`
	ProjectStatus      workspace_enums.ProjectStatus `json:"projectStatus"`
}

type RequestRevisionRequestDTO struct {
	Feedback string `json:"feedback" binding:"required"`
}

type MarkDisputedRequestDTO struct {
	Reason string `json:"reason" binding:"required"`
}

// WorkspaceResponseDTO is a project with joined display fields and its
// ordered milestones.
type WorkspaceResponseDTO struct {
	Project    *ProjectDTO                   `json:"project"`
	Milestones []*workspace_models.Milestone `json:"milestones"`
}

type ProjectDTO struct {
	ID                 uuid.UUID                     `json:"id"`
	JobID              uuid.UUID                     `json:"jobId"`
	JobTitle           string                        `json:"jobTitle"`
	FreelancerID       uuid.UUID                     `json:"freelancerId"`
	FreelancerName     string                        `json:"freelancerName"`
	ClientID           uuid.UUID                     `json:"clientId"`
	ClientName         string                        `json:"clientName"`
	Status             workspace_enums.ProjectStatus `json:"status"`
	ProgressPercentage int                           `json:"progressPercentage"`
	CreatedAt          time.Time                     `json:"createdAt"`
	CompletedAt        *time.Time                    `json:"completedAt"`
}

type ListWorkspacesResponseDTO struct {
	Projects []*ProjectDTO `json:"projects"`
	Total    int64         `json:"total"`
}

type ListSubmissionsResponseDTO struct {
	Submissions []*workspace_models.Submission `json:"submissions"`
	Total       int64                          `json:"total"`
}
