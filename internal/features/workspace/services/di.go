package workspace_services

import (
	"seekit/internal/features/activity"
	workspace_repositories "seekit/internal/features/workspace/repositories"
)

var projectRepository = &workspace_repositories.ProjectRepository{}
var milestoneRepository = &workspace_repositories.MilestoneRepository{}
var submissionRepository = &workspace_repositories.SubmissionRepository{}

var workspaceService = &WorkspaceService{
	projectRepository:    projectRepository,
	milestoneRepository:  milestoneRepository,
	submissionRepository: submissionRepository,
	activityService:      activity.GetActivityService(),
}

func GetWorkspaceService() *WorkspaceService {
	return workspaceService
}
