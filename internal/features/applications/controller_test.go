package applications

import (
	"net/http"
	"testing"

	"seekit/internal/features/jobs"
	users_enums "seekit/internal/features/users/enums"
	users_testing "seekit/internal/features/users/testing"
	workspace_enums "seekit/internal/features/workspace/enums"
	workspace_services "seekit/internal/features/workspace/services"
	workspace_testing "seekit/internal/features/workspace/testing"
	test_utils "seekit/internal/util/testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_SubmitApplication_AsFreelancer_ApplicationCreated(t *testing.T) {
	router := workspace_testing.CreateTestRouter(GetApplicationController())

	client := users_testing.CreateTestUser(users_enums.UserTypeClient)
	freelancer := users_testing.CreateTestUser(users_enums.UserTypeFreelancer)
	job := createOpenTestJob(t, client.UserID)

	var response SubmitApplicationResponseDTO
	test_utils.MakePostRequestAndUnmarshal(
		t,
		router,
		"/api/v1/jobs/"+job.ID.String()+"/applications",
		"Bearer "+freelancer.Token,
		SubmitApplicationRequestDTO{CoverLetter: "I have shipped similar systems before."},
		http.StatusOK,
		&response,
	)

	assert.Equal(t, job.ID, response.JobID)
	assert.Equal(t, ApplicationStatusPending, response.Status)
}

func Test_SubmitApplication_AsClient_ReturnsForbidden(t *testing.T) {
	router := workspace_testing.CreateTestRouter(GetApplicationController())

	client := users_testing.CreateTestUser(users_enums.UserTypeClient)
	job := createOpenTestJob(t, client.UserID)

	resp := test_utils.MakePostRequest(
		t,
		router,
		"/api/v1/jobs/"+job.ID.String()+"/applications",
		"Bearer "+client.Token,
		SubmitApplicationRequestDTO{CoverLetter: "Hiring myself"},
		http.StatusForbidden,
	)
	assert.Contains(t, string(resp.Body), "only freelancers can apply")
}

func Test_SubmitApplication_Twice_ReturnsBadRequest(t *testing.T) {
	router := workspace_testing.CreateTestRouter(GetApplicationController())

	client := users_testing.CreateTestUser(users_enums.UserTypeClient)
	freelancer := users_testing.CreateTestUser(users_enums.UserTypeFreelancer)
	job := createOpenTestJob(t, client.UserID)

	test_utils.MakePostRequest(
		t,
		router,
		"/api/v1/jobs/"+job.ID.String()+"/applications",
		"Bearer "+freelancer.Token,
		SubmitApplicationRequestDTO{CoverLetter: "First application"},
		http.StatusOK,
	)

	resp := test_utils.MakePostRequest(
		t,
		router,
		"/api/v1/jobs/"+job.ID.String()+"/applications",
		"Bearer "+freelancer.Token,
		SubmitApplicationRequestDTO{CoverLetter: "Second application"},
		http.StatusBadRequest,
	)
	assert.Contains(t, string(resp.Body), "already applied")
}

func Test_AcceptApplication_SpawnsWorkspaceAndClosesJob(t *testing.T) {
	router := workspace_testing.CreateTestRouter(GetApplicationController())

	client := users_testing.CreateTestUser(users_enums.UserTypeClient)
	freelancer := users_testing.CreateTestUser(users_enums.UserTypeFreelancer)
	job := createOpenTestJob(t, client.UserID)
	application := submitTestApplication(t, router, job.ID, freelancer.Token)

	var response AcceptApplicationResponseDTO
	test_utils.MakePostRequestAndUnmarshal(
		t,
		router,
		"/api/v1/applications/"+application.ID.String()+"/accept",
		"Bearer "+client.Token,
		nil,
		http.StatusOK,
		&response,
	)

	assert.Equal(t, application.ID, response.ApplicationID)
	require.NotEqual(t, uuid.Nil, response.ProjectID)

	project, err := workspace_services.GetWorkspaceService().GetProject(response.ProjectID)
	require.NoError(t, err)
	assert.Equal(t, workspace_enums.ProjectStatusActive, project.Status)
	assert.Equal(t, freelancer.UserID, project.FreelancerID)
	assert.Equal(t, client.UserID, project.ClientID)

	milestones := workspace_testing.GetTestMilestones(response.ProjectID)
	assert.Len(t, milestones, 4)

	storedJob, err := jobs.GetJobService().GetJob(job.ID)
	require.NoError(t, err)
	assert.Equal(t, jobs.JobStatusInProgress, storedJob.Status)
}

func Test_AcceptApplication_ByNonOwner_ReturnsForbidden(t *testing.T) {
	router := workspace_testing.CreateTestRouter(GetApplicationController())

	client := users_testing.CreateTestUser(users_enums.UserTypeClient)
	other := users_testing.CreateTestUser(users_enums.UserTypeClient)
	freelancer := users_testing.CreateTestUser(users_enums.UserTypeFreelancer)
	job := createOpenTestJob(t, client.UserID)
	application := submitTestApplication(t, router, job.ID, freelancer.Token)

	test_utils.MakePostRequest(
		t,
		router,
		"/api/v1/applications/"+application.ID.String()+"/accept",
		"Bearer "+other.Token,
		nil,
		http.StatusForbidden,
	)
}

func Test_RejectApplication_ThenAccept_ReturnsBadRequest(t *testing.T) {
	router := workspace_testing.CreateTestRouter(GetApplicationController())

	client := users_testing.CreateTestUser(users_enums.UserTypeClient)
	freelancer := users_testing.CreateTestUser(users_enums.UserTypeFreelancer)
	job := createOpenTestJob(t, client.UserID)
	application := submitTestApplication(t, router, job.ID, freelancer.Token)

	test_utils.MakePostRequest(
		t,
		router,
		"/api/v1/applications/"+application.ID.String()+"/reject",
		"Bearer "+client.Token,
		nil,
		http.StatusOK,
	)

	resp := test_utils.MakePostRequest(
		t,
		router,
		"/api/v1/applications/"+application.ID.String()+"/accept",
		"Bearer "+client.Token,
		nil,
		http.StatusBadRequest,
	)
	assert.Contains(t, string(resp.Body), "already been decided")
}

func Test_WithdrawApplication_ByApplicant_ApplicationRemoved(t *testing.T) {
	router := workspace_testing.CreateTestRouter(GetApplicationController())

	client := users_testing.CreateTestUser(users_enums.UserTypeClient)
	freelancer := users_testing.CreateTestUser(users_enums.UserTypeFreelancer)
	job := createOpenTestJob(t, client.UserID)
	application := submitTestApplication(t, router, job.ID, freelancer.Token)

	test_utils.MakeDeleteRequest(
		t,
		router,
		"/api/v1/applications/"+application.ID.String(),
		"Bearer "+freelancer.Token,
		http.StatusOK,
	)

	var listing ListApplicationsResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(
		t,
		router,
		"/api/v1/applications/mine",
		"Bearer "+freelancer.Token,
		http.StatusOK,
		&listing,
	)
	assert.Equal(t, int64(0), listing.Total)
}

func Test_ListJobApplications_ByOwner_ReturnsJoinedFields(t *testing.T) {
	router := workspace_testing.CreateTestRouter(GetApplicationController())

	client := users_testing.CreateTestUser(users_enums.UserTypeClient)
	freelancer := users_testing.CreateTestUser(users_enums.UserTypeFreelancer)
	job := createOpenTestJob(t, client.UserID)
	submitTestApplication(t, router, job.ID, freelancer.Token)

	var listing ListApplicationsResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(
		t,
		router,
		"/api/v1/jobs/"+job.ID.String()+"/applications",
		"Bearer "+client.Token,
		http.StatusOK,
		&listing,
	)

	require.Equal(t, int64(1), listing.Total)
	assert.Equal(t, freelancer.UserID, listing.Applications[0].FreelancerID)
	assert.NotEmpty(t, listing.Applications[0].FreelancerName)
	assert.NotEmpty(t, listing.Applications[0].JobTitle)
}

func createOpenTestJob(t *testing.T, clientID uuid.UUID) *jobs.Job {
	t.Helper()

	job := &jobs.Job{
		ClientID:    clientID,
		Title:       "Open job " + uuid.NewString()[:8],
		Description: "Job accepting applications",
		BudgetMin:   200,
		BudgetMax:   2000,
		Status:      jobs.JobStatusOpen,
	}

	err := (&jobs.JobRepository{}).CreateJob(job)
	require.NoError(t, err)

	return job
}

func submitTestApplication(
	t *testing.T,
	router *gin.Engine,
	jobID uuid.UUID,
	freelancerToken string,
) *SubmitApplicationResponseDTO {
	t.Helper()

	var response SubmitApplicationResponseDTO
	test_utils.MakePostRequestAndUnmarshal(
		t,
		router,
		"/api/v1/jobs/"+jobID.String()+"/applications",
		"Bearer "+freelancerToken,
		SubmitApplicationRequestDTO{CoverLetter: "Cover letter"},
		http.StatusOK,
		&response,
	)

	return &response
}
