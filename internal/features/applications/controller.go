package applications

import (
	"net/http"

	users_middleware "seekit/internal/features/users/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ApplicationController struct {
	applicationService *ApplicationService
}

func (c *ApplicationController) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/jobs/:jobId/applications", c.SubmitApplication)
	router.GET("/jobs/:jobId/applications", c.ListJobApplications)
	router.GET("/applications/mine", c.ListMyApplications)
	router.POST("/applications/:applicationId/accept", c.AcceptApplication)
	router.POST("/applications/:applicationId/reject", c.RejectApplication)
	router.DELETE("/applications/:applicationId", c.WithdrawApplication)
}

// SubmitApplication
// @Summary Apply to a job
// @Description Submit an application with a cover letter (freelancers only)
// @Tags applications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param jobId path string true "Job ID"
// @Param request body SubmitApplicationRequestDTO true "Application data"
// @Success 200 {object} SubmitApplicationResponseDTO
// @Failure 400
// @Failure 403
// @Failure 429 {object} map[string]string "Rate limit exceeded"
// @Router /jobs/{jobId}/applications [post]
func (c *ApplicationController) SubmitApplication(ctx *gin.Context) {
	user, isOk := users_middleware.GetUserFromContext(ctx)
	if !isOk {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid user context"})
		return
	}

	jobID, err := uuid.Parse(ctx.Param("jobId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid job ID"})
		return
	}

	var request SubmitApplicationRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	response, err := c.applicationService.SubmitApplication(jobID, &request, user)
	if err != nil {
		switch err.Error() {
		case "only freelancers can apply to jobs":
			ctx.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		case "too many applications, please try again later":
			ctx.JSON(http.StatusTooManyRequests, gin.H{"error": err.Error()})
		default:
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		}
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// ListJobApplications
// @Summary List applications for a job
// @Description List applications for a job the current client owns
// @Tags applications
// @Produce json
// @Security BearerAuth
// @Param jobId path string true "Job ID"
// @Success 200 {object} ListApplicationsResponseDTO
// @Failure 403
// @Router /jobs/{jobId}/applications [get]
func (c *ApplicationController) ListJobApplications(ctx *gin.Context) {
	user, isOk := users_middleware.GetUserFromContext(ctx)
	if !isOk {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid user context"})
		return
	}

	jobID, err := uuid.Parse(ctx.Param("jobId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid job ID"})
		return
	}

	response, err := c.applicationService.ListJobApplications(jobID, user)
	if err != nil {
		if err.Error() == "only the job owner can view its applications" {
			ctx.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// ListMyApplications
// @Summary List the current freelancer's applications
// @Tags applications
// @Produce json
// @Security BearerAuth
// @Success 200 {object} ListApplicationsResponseDTO
// @Router /applications/mine [get]
func (c *ApplicationController) ListMyApplications(ctx *gin.Context) {
	user, isOk := users_middleware.GetUserFromContext(ctx)
	if !isOk {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid user context"})
		return
	}

	response, err := c.applicationService.ListFreelancerApplications(user)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list applications"})
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// AcceptApplication
// @Summary Accept an application
// @Description Accept a pending application; closes the job and creates the project workspace
// @Tags applications
// @Produce json
// @Security BearerAuth
// @Param applicationId path string true "Application ID"
// @Success 200 {object} AcceptApplicationResponseDTO
// @Failure 400
// @Failure 403
// @Router /applications/{applicationId}/accept [post]
func (c *ApplicationController) AcceptApplication(ctx *gin.Context) {
	user, isOk := users_middleware.GetUserFromContext(ctx)
	if !isOk {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid user context"})
		return
	}

	applicationID, err := uuid.Parse(ctx.Param("applicationId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid application ID"})
		return
	}

	response, err := c.applicationService.AcceptApplication(applicationID, user)
	if err != nil {
		if err.Error() == "only the job owner can accept applications" {
			ctx.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// RejectApplication
// @Summary Reject an application
// @Tags applications
// @Security BearerAuth
// @Param applicationId path string true "Application ID"
// @Success 200
// @Failure 400
// @Failure 403
// @Router /applications/{applicationId}/reject [post]
func (c *ApplicationController) RejectApplication(ctx *gin.Context) {
	user, isOk := users_middleware.GetUserFromContext(ctx)
	if !isOk {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid user context"})
		return
	}

	applicationID, err := uuid.Parse(ctx.Param("applicationId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid application ID"})
		return
	}

	if err := c.applicationService.RejectApplication(applicationID, user); err != nil {
		if err.Error() == "only the job owner can reject applications" {
			ctx.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Application rejected"})
}

// WithdrawApplication
// @Summary Withdraw a pending application
// @Tags applications
// @Security BearerAuth
// @Param applicationId path string true "Application ID"
// @Success 200
// @Failure 400
// @Failure 403
// @Router /applications/{applicationId} [delete]
func (c *ApplicationController) WithdrawApplication(ctx *gin.Context) {
	user, isOk := users_middleware.GetUserFromContext(ctx)
	if !isOk {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid user context"})
		return
	}

	applicationID, err := uuid.Parse(ctx.Param("applicationId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid application ID"})
		return
	}

	if err := c.applicationService.WithdrawApplication(applicationID, user); err != nil {
		if err.Error() == "only the applicant can withdraw an application" {
			ctx.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Application withdrawn"})
}
