package jobs

import (
	"net/http"

	users_enums "seekit/internal/features/users/enums"
	users_middleware "seekit/internal/features/users/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type JobController struct {
	jobService *JobService
}

func (c *JobController) RegisterRoutes(router *gin.RouterGroup) {
	jobRoutes := router.Group("/jobs")

	jobRoutes.POST("", users_middleware.RequireType(users_enums.UserTypeClient), c.CreateJob)
	jobRoutes.GET("", c.ListJobs)
	jobRoutes.GET("/search", c.SearchJobs)
	jobRoutes.GET("/mine", c.ListMyJobs)
	jobRoutes.GET("/:jobId", c.GetJob)
	jobRoutes.PUT("/:jobId", c.UpdateJob)
	jobRoutes.DELETE("/:jobId", c.DeleteJob)
}

// CreateJob
// @Summary Post a new job
// @Description Create a job posting (clients only)
// @Tags jobs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateJobRequestDTO true "Job data"
// @Success 200 {object} CreateJobResponseDTO
// @Failure 400
// @Router /jobs [post]
func (c *JobController) CreateJob(ctx *gin.Context) {
	user, isOk := users_middleware.GetUserFromContext(ctx)
	if !isOk {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid user context"})
		return
	}

	var request CreateJobRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	response, err := c.jobService.CreateJob(&request, user)
	if err != nil {
		if err.Error() == "only clients can post jobs" {
			ctx.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// ListJobs
// @Summary List jobs
// @Tags jobs
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter by status (open, in_progress, closed)"
// @Param limit query int false "Limit number of results" default(100)
// @Param offset query int false "Offset for pagination" default(0)
// @Success 200 {object} ListJobsResponseDTO
// @Router /jobs [get]
func (c *JobController) ListJobs(ctx *gin.Context) {
	request := &ListJobsRequestDTO{}
	if err := ctx.ShouldBindQuery(request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters"})
		return
	}

	response, err := c.jobService.ListJobs(request)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// SearchJobs
// @Summary Search open jobs
// @Description Keyword search over title/description/skills with budget-range overlap
// @Tags jobs
// @Produce json
// @Security BearerAuth
// @Param keywords query string false "Keyword to match"
// @Param minBudget query number false "Minimum budget"
// @Param maxBudget query number false "Maximum budget"
// @Success 200 {object} ListJobsResponseDTO
// @Router /jobs/search [get]
func (c *JobController) SearchJobs(ctx *gin.Context) {
	request := &SearchJobsRequestDTO{}
	if err := ctx.ShouldBindQuery(request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters"})
		return
	}

	response, err := c.jobService.SearchJobs(request)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to search jobs"})
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// ListMyJobs
// @Summary List jobs posted by the current client
// @Tags jobs
// @Produce json
// @Security BearerAuth
// @Success 200 {object} ListJobsResponseDTO
// @Router /jobs/mine [get]
func (c *JobController) ListMyJobs(ctx *gin.Context) {
	user, isOk := users_middleware.GetUserFromContext(ctx)
	if !isOk {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid user context"})
		return
	}

	response, err := c.jobService.ListClientJobs(user.ID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list jobs"})
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// GetJob
// @Summary Get a job by ID
// @Tags jobs
// @Produce json
// @Security BearerAuth
// @Param jobId path string true "Job ID"
// @Success 200 {object} Job
// @Failure 404
// @Router /jobs/{jobId} [get]
func (c *JobController) GetJob(ctx *gin.Context) {
	jobID, err := uuid.Parse(ctx.Param("jobId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid job ID"})
		return
	}

	job, err := c.jobService.GetJob(jobID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get job"})
		return
	}
	if job == nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Job not found"})
		return
	}

	ctx.JSON(http.StatusOK, job)
}

// UpdateJob
// @Summary Update a job
// @Description Update an open job (owner only)
// @Tags jobs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param jobId path string true "Job ID"
// @Param request body UpdateJobRequestDTO true "Job changes"
// @Success 200 {object} Job
// @Failure 400
// @Failure 403
// @Router /jobs/{jobId} [put]
func (c *JobController) UpdateJob(ctx *gin.Context) {
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

	var request UpdateJobRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	job, err := c.jobService.UpdateJob(jobID, &request, user)
	if err != nil {
		if err.Error() == "only the job owner can update it" {
			ctx.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, job)
}

// DeleteJob
// @Summary Delete a job
// @Description Delete an open job (owner only)
// @Tags jobs
// @Security BearerAuth
// @Param jobId path string true "Job ID"
// @Success 200
// @Failure 400
// @Failure 403
// @Router /jobs/{jobId} [delete]
func (c *JobController) DeleteJob(ctx *gin.Context) {
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

	if err := c.jobService.DeleteJob(jobID, user); err != nil {
		if err.Error() == "only the job owner can delete it" {
			ctx.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Job deleted successfully"})
}
