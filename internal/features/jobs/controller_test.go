package jobs

import (
	"net/http"
	"testing"

	users_enums "seekit/internal/features/users/enums"
	users_middleware "seekit/internal/features/users/middleware"
	users_services "seekit/internal/features/users/services"
	users_testing "seekit/internal/features/users/testing"
	test_utils "seekit/internal/util/testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_CreateJob_AsClient_JobCreated(t *testing.T) {
	router := createJobTestRouter()
	client := users_testing.CreateTestUser(users_enums.UserTypeClient)

	request := CreateJobRequestDTO{
		Title:          "Build a REST API",
		Description:    "Need a Go backend for an existing frontend",
		RequiredSkills: []string{"go", "postgres"},
		BudgetMin:      500,
		BudgetMax:      1500,
	}

	var response CreateJobResponseDTO
	test_utils.MakePostRequestAndUnmarshal(
		t,
		router,
		"/api/v1/jobs",
		"Bearer "+client.Token,
		request,
		http.StatusOK,
		&response,
	)

	assert.Equal(t, "Build a REST API", response.Title)
	assert.Equal(t, JobStatusOpen, response.Status)
	assert.NotEqual(t, uuid.Nil, response.ID)
}

func Test_CreateJob_AsFreelancer_ReturnsForbidden(t *testing.T) {
	router := createJobTestRouter()
	freelancer := users_testing.CreateTestUser(users_enums.UserTypeFreelancer)

	request := CreateJobRequestDTO{
		Title:       "Freelancer job",
		Description: "Should be rejected",
		BudgetMin:   100,
		BudgetMax:   200,
	}

	resp := test_utils.MakePostRequest(
		t, router, "/api/v1/jobs", "Bearer "+freelancer.Token, request, http.StatusForbidden,
	)
	assert.Contains(t, string(resp.Body), "Insufficient permissions")
}

func Test_CreateJob_WithInvertedBudget_ReturnsBadRequest(t *testing.T) {
	router := createJobTestRouter()
	client := users_testing.CreateTestUser(users_enums.UserTypeClient)

	request := CreateJobRequestDTO{
		Title:       "Inverted budget",
		Description: "Min above max",
		BudgetMin:   1000,
		BudgetMax:   100,
	}

	resp := test_utils.MakePostRequest(
		t, router, "/api/v1/jobs", "Bearer "+client.Token, request, http.StatusBadRequest,
	)
	assert.Contains(t, string(resp.Body), "minimum budget cannot exceed maximum budget")
}

func Test_GetJob_AfterCreate_ReturnsJob(t *testing.T) {
	router := createJobTestRouter()
	client := users_testing.CreateTestUser(users_enums.UserTypeClient)

	created := createTestJobViaAPI(t, router, client.Token, "Readable job")

	var job Job
	test_utils.MakeGetRequestAndUnmarshal(
		t,
		router,
		"/api/v1/jobs/"+created.ID.String(),
		"Bearer "+client.Token,
		http.StatusOK,
		&job,
	)

	assert.Equal(t, created.ID, job.ID)
	assert.Equal(t, "Readable job", job.Title)
}

func Test_GetJob_Unknown_ReturnsNotFound(t *testing.T) {
	router := createJobTestRouter()
	client := users_testing.CreateTestUser(users_enums.UserTypeClient)

	test_utils.MakeGetRequest(
		t,
		router,
		"/api/v1/jobs/"+uuid.NewString(),
		"Bearer "+client.Token,
		http.StatusNotFound,
	)
}

func Test_UpdateJob_ByNonOwner_ReturnsForbidden(t *testing.T) {
	router := createJobTestRouter()
	owner := users_testing.CreateTestUser(users_enums.UserTypeClient)
	other := users_testing.CreateTestUser(users_enums.UserTypeClient)

	created := createTestJobViaAPI(t, router, owner.Token, "Owned job")

	newTitle := "Hijacked title"
	request := UpdateJobRequestDTO{Title: &newTitle}

	test_utils.MakePutRequest(
		t,
		router,
		"/api/v1/jobs/"+created.ID.String(),
		"Bearer "+other.Token,
		request,
		http.StatusForbidden,
	)
}

func Test_SearchJobs_ByKeywordAndBudget_FindsOpenJob(t *testing.T) {
	router := createJobTestRouter()
	client := users_testing.CreateTestUser(users_enums.UserTypeClient)

	marker := uuid.NewString()[:8]
	request := CreateJobRequestDTO{
		Title:          "Search target " + marker,
		Description:    "Searchable description",
		RequiredSkills: []string{"rust"},
		BudgetMin:      300,
		BudgetMax:      900,
	}
	test_utils.MakePostRequest(t, router, "/api/v1/jobs", "Bearer "+client.Token, request, http.StatusOK)

	var response ListJobsResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(
		t,
		router,
		"/api/v1/jobs/search?keywords="+marker+"&minBudget=400&maxBudget=800",
		"Bearer "+client.Token,
		http.StatusOK,
		&response,
	)

	require.Equal(t, int64(1), response.Total)
	assert.Contains(t, response.Jobs[0].Title, marker)
}

func Test_DeleteJob_ByOwner_JobRemoved(t *testing.T) {
	router := createJobTestRouter()
	client := users_testing.CreateTestUser(users_enums.UserTypeClient)

	created := createTestJobViaAPI(t, router, client.Token, "Disposable job")

	test_utils.MakeDeleteRequest(
		t,
		router,
		"/api/v1/jobs/"+created.ID.String(),
		"Bearer "+client.Token,
		http.StatusOK,
	)

	test_utils.MakeGetRequest(
		t,
		router,
		"/api/v1/jobs/"+created.ID.String(),
		"Bearer "+client.Token,
		http.StatusNotFound,
	)
}

func createJobTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	v1 := router.Group("/api/v1")
	protected := v1.Group("").Use(users_middleware.AuthMiddleware(users_services.GetUserService()))
	GetJobController().RegisterRoutes(protected.(*gin.RouterGroup))

	return router
}

func createTestJobViaAPI(t *testing.T, router *gin.Engine, token, title string) *CreateJobResponseDTO {
	t.Helper()

	request := CreateJobRequestDTO{
		Title:       title,
		Description: "Job created for testing",
		BudgetMin:   100,
		BudgetMax:   1000,
	}

	var response CreateJobResponseDTO
	test_utils.MakePostRequestAndUnmarshal(
		t, router, "/api/v1/jobs", "Bearer "+token, request, http.StatusOK, &response,
	)

	return &response
}
