package workspace_testing

import (
	"seekit/internal/features/jobs"
	users_middleware "seekit/internal/features/users/middleware"
	users_services "seekit/internal/features/users/services"
	workspace_models "seekit/internal/features/workspace/models"
	workspace_repositories "seekit/internal/features/workspace/repositories"
	workspace_services "seekit/internal/features/workspace/services"
	"seekit/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func CreateTestRouter(controllers ...ControllerInterface) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	v1 := router.Group("/api/v1")
	protected := v1.Group("").Use(users_middleware.AuthMiddleware(users_services.GetUserService()))

	for _, controller := range controllers {
		if routerGroup, ok := protected.(*gin.RouterGroup); ok {
			controller.RegisterRoutes(routerGroup)
		}
	}

	return router
}

// CreateTestWorkspace seeds a job owned by the client and spawns a
// workspace for it with the default milestone set.
func CreateTestWorkspace(freelancerID, clientID uuid.UUID) *workspace_models.Project {
	job := &jobs.Job{
		ClientID:    clientID,
		Title:       "Test job " + uuid.NewString()[:8],
		Description: "Test job description",
		BudgetMin:   100,
		BudgetMax:   500,
		Status:      jobs.JobStatusInProgress,
	}

	jobRepository := &jobs.JobRepository{}
	if err := jobRepository.CreateJob(job); err != nil {
		panic(err)
	}

	var projectID uuid.UUID

	err := storage.GetDb().Transaction(func(tx *gorm.DB) error {
		createdProjectID, err := workspace_services.GetWorkspaceService().CreateWorkspaceInTx(
			tx, uuid.New(), job.ID, freelancerID, clientID, nil,
		)
		if err != nil {
			return err
		}

		projectID = createdProjectID
		return nil
	})
	if err != nil {
		panic(err)
	}

	project, err := (&workspace_repositories.ProjectRepository{}).GetProjectByID(projectID)
	if err != nil {
		panic(err)
	}

	return project
}

func GetTestMilestones(projectID uuid.UUID) []*workspace_models.Milestone {
	milestones, err := (&workspace_repositories.MilestoneRepository{}).GetMilestonesByProject(projectID)
	if err != nil {
		panic(err)
	}

	return milestones
}
