package workspace_controllers

import (
	"errors"
	"net/http"

	"seekit/internal/features/activity"
	users_middleware "seekit/internal/features/users/middleware"
	workspace_dto "seekit/internal/features/workspace/dto"
	workspace_services "seekit/internal/features/workspace/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type WorkspaceController struct {
	workspaceService *workspace_services.WorkspaceService
}

func (c *WorkspaceController) RegisterRoutes(router *gin.RouterGroup) {
	workspaceRoutes := router.Group("/workspaces")

	workspaceRoutes.GET("/mine", c.ListMyWorkspaces)
	workspaceRoutes.GET("/:projectId", c.GetWorkspace)
	workspaceRoutes.POST("/:projectId/dispute", c.MarkDisputed)
	workspaceRoutes.GET("/:projectId/activity", c.GetActivity)

	milestoneRoutes := router.Group("/milestones")

	milestoneRoutes.POST("/:milestoneId/submissions", c.SubmitDeliverable)
	milestoneRoutes.GET("/:milestoneId/submissions", c.ListSubmissions)
	milestoneRoutes.POST("/:milestoneId/approve", c.ApproveMilestone)
	milestoneRoutes.POST("/:milestoneId/request-revision", c.RequestRevision)
}

// GetWorkspace
// @Summary Get a project workspace
// @Description Project with joined names and its ordered milestones (participants only)
// @Tags workspaces
// @Produce json
// @Security BearerAuth
// @Param projectId path string true "Project ID"
// @Success 200 {object} workspace_dto.WorkspaceResponseDTO
// @Failure 403
// @Failure 404
// @Router /workspaces/{projectId} [get]
func (c *WorkspaceController) GetWorkspace(ctx *gin.Context) {
	user, isOk := users_middleware.GetUserFromContext(ctx)
	if !isOk {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid user context"})
		return
	}

	projectID, err := uuid.Parse(ctx.Param("projectId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project ID"})
		return
	}

	workspace, err := c.workspaceService.GetWorkspace(projectID, user)
	if err != nil {
		if errors.Is(err, workspace_services.ErrNotParticipant) {
			ctx.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get workspace"})
		return
	}
	if workspace == nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		return
	}

	ctx.JSON(http.StatusOK, workspace)
}

// ListMyWorkspaces
// @Summary List the current user's workspaces
// @Description Active projects for freelancers, all projects for clients
// @Tags workspaces
// @Produce json
// @Security BearerAuth
// @Success 200 {object} workspace_dto.ListWorkspacesResponseDTO
// @Router /workspaces/mine [get]
func (c *WorkspaceController) ListMyWorkspaces(ctx *gin.Context) {
	user, isOk := users_middleware.GetUserFromContext(ctx)
	if !isOk {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid user context"})
		return
	}

	var response *workspace_dto.ListWorkspacesResponseDTO
	var err error

	if user.IsFreelancer() {
		response, err = c.workspaceService.ListFreelancerWorkspaces(user)
	} else {
		response, err = c.workspaceService.ListClientWorkspaces(user)
	}
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list workspaces"})
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// SubmitDeliverable
// @Summary Submit a deliverable for a milestone
// @Description Records a new deliverable version (project freelancer only)
// @Tags workspaces
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param milestoneId path string true "Milestone ID"
// @Param request body workspace_dto.SubmitDeliverableRequestDTO true "Deliverable"
// @Success 200 {object} workspace_dto.SubmitDeliverableResponseDTO
// @Failure 400
// @Failure 403
// @Router /milestones/{milestoneId}/submissions [post]
func (c *WorkspaceController) SubmitDeliverable(ctx *gin.Context) {
	user, isOk := users_middleware.GetUserFromContext(ctx)
	if !isOk {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid user context"})
		return
	}

	milestoneID, err := uuid.Parse(ctx.Param("milestoneId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid milestone ID"})
		return
	}

	var request workspace_dto.SubmitDeliverableRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	response, err := c.workspaceService.SubmitDeliverable(milestoneID, user, &request)
	if err != nil {
		if err.Error() == "only the project freelancer can submit deliverables" {
			ctx.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
			return
		}
		if err.Error() == "milestone not found" {
			ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// ListSubmissions
// @Summary List milestone submissions
// @Description All deliverable versions, newest version first (participants only)
// @Tags workspaces
// @Produce json
// @Security BearerAuth
// @Param milestoneId path string true "Milestone ID"
// @Success 200 {object} workspace_dto.ListSubmissionsResponseDTO
// @Failure 403
// @Router /milestones/{milestoneId}/submissions [get]
func (c *WorkspaceController) ListSubmissions(ctx *gin.Context) {
	user, isOk := users_middleware.GetUserFromContext(ctx)
	if !isOk {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid user context"})
		return
	}

	milestoneID, err := uuid.Parse(ctx.Param("milestoneId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid milestone ID"})
		return
	}

	response, err := c.workspaceService.ListMilestoneSubmissions(milestoneID, user)
	if err != nil {
		if errors.Is(err, workspace_services.ErrNotParticipant) {
			ctx.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
			return
		}
		if err.Error() == "milestone not found" {
			ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list submissions"})
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// ApproveMilestone
// @Summary Approve a milestone
// @Description Marks the milestone approved and recomputes project progress (client only)
// @Tags workspaces
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param milestoneId path string true "Milestone ID"
// @Param request body workspace_dto.ApproveMilestoneRequestDTO false "Optional feedback"
// @Success 200 {object} workspace_dto.ApproveMilestoneResponseDTO
// @Failure 403
// @Failure 404
// @Router /milestones/{milestoneId}/approve [post]
func (c *WorkspaceController) ApproveMilestone(ctx *gin.Context) {
	user, isOk := users_middleware.GetUserFromContext(ctx)
	if !isOk {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid user context"})
		return
	}

	milestoneID, err := uuid.Parse(ctx.Param("milestoneId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid milestone ID"})
		return
	}

	request := workspace_dto.ApproveMilestoneRequestDTO{}
	if ctx.Request.ContentLength > 0 {
		if err := ctx.ShouldBindJSON(&request); err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
			return
		}
	}

	response, err := c.workspaceService.ApproveMilestone(milestoneID, user, &request)
	if err != nil {
		if err.Error() == "only the project client can approve milestones" {
			ctx.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
			return
		}
		if err.Error() == "milestone not found" {
			ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// RequestRevision
// @Summary Request a revision for a milestone
// @Description Moves the milestone to revision_requested with feedback (client only)
// @Tags workspaces
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param milestoneId path string true "Milestone ID"
// @Param request body workspace_dto.RequestRevisionRequestDTO true "Feedback"
// @Success 200
// @Failure 400
// @Failure 403
// @Router /milestones/{milestoneId}/request-revision [post]
func (c *WorkspaceController) RequestRevision(ctx *gin.Context) {
	user, isOk := users_middleware.GetUserFromContext(ctx)
	if !isOk {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid user context"})
		return
	}

	milestoneID, err := uuid.Parse(ctx.Param("milestoneId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid milestone ID"})
		return
	}

	var request workspace_dto.RequestRevisionRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := c.workspaceService.RequestRevision(milestoneID, user, &request); err != nil {
		if err.Error() == "only the project client can request revisions" {
			ctx.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
			return
		}
		if err.Error() == "milestone not found" {
			ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Revision requested"})
}

// MarkDisputed
// @Summary Mark a project as disputed
// @Description Flags the project from any state (participants only)
// @Tags workspaces
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param projectId path string true "Project ID"
// @Param request body workspace_dto.MarkDisputedRequestDTO true "Dispute reason"
// @Success 200
// @Failure 403
// @Failure 404
// @Router /workspaces/{projectId}/dispute [post]
func (c *WorkspaceController) MarkDisputed(ctx *gin.Context) {
	user, isOk := users_middleware.GetUserFromContext(ctx)
	if !isOk {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid user context"})
		return
	}

	projectID, err := uuid.Parse(ctx.Param("projectId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project ID"})
		return
	}

	var request workspace_dto.MarkDisputedRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := c.workspaceService.MarkDisputed(projectID, user, request.Reason); err != nil {
		if errors.Is(err, workspace_services.ErrNotParticipant) {
			ctx.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
			return
		}
		if err.Error() == "project not found" {
			ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to mark project disputed"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Project marked as disputed"})
}

// GetActivity
// @Summary Get the project activity trail
// @Description Append-only activity entries, newest first (participants only)
// @Tags workspaces
// @Produce json
// @Security BearerAuth
// @Param projectId path string true "Project ID"
// @Param limit query int false "Limit number of results" default(100)
// @Param offset query int false "Offset for pagination" default(0)
// @Success 200 {object} activity.GetActivityResponse
// @Failure 403
// @Router /workspaces/{projectId}/activity [get]
func (c *WorkspaceController) GetActivity(ctx *gin.Context) {
	user, isOk := users_middleware.GetUserFromContext(ctx)
	if !isOk {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid user context"})
		return
	}

	projectID, err := uuid.Parse(ctx.Param("projectId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project ID"})
		return
	}

	request := &activity.GetActivityRequest{}
	if err := ctx.ShouldBindQuery(request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters"})
		return
	}

	response, err := c.workspaceService.GetProjectActivity(projectID, user, request)
	if err != nil {
		if errors.Is(err, workspace_services.ErrNotParticipant) {
			ctx.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
			return
		}
		if err.Error() == "project not found" {
			ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get activity"})
		return
	}

	ctx.JSON(http.StatusOK, response)
}
