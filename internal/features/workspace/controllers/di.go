package workspace_controllers

import (
	workspace_services "seekit/internal/features/workspace/services"
)

var workspaceController = &WorkspaceController{
	workspaceService: workspace_services.GetWorkspaceService(),
}

func GetWorkspaceController() *WorkspaceController {
	return workspaceController
}
