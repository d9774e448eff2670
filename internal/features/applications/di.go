package applications

import (
	"seekit/internal/features/jobs"
	workspace_services "seekit/internal/features/workspace/services"
	"seekit/internal/util/rate_limit"
)

var applicationRepository = &ApplicationRepository{}

var applicationService = &ApplicationService{
	applicationRepository: applicationRepository,
	jobService:            jobs.GetJobService(),
	workspaceService:      workspace_services.GetWorkspaceService(),
	rateLimiter:           rate_limit.NewRateLimiter(),
}

var applicationController = &ApplicationController{
	applicationService: applicationService,
}

func GetApplicationService() *ApplicationService {
	return applicationService
}

func GetApplicationController() *ApplicationController {
	return applicationController
}
