package reviews

import (
	"net/http"
	"testing"

	users_enums "seekit/internal/features/users/enums"
	users_models "seekit/internal/features/users/models"
	users_services "seekit/internal/features/users/services"
	users_testing "seekit/internal/features/users/testing"
	workspace_dto "seekit/internal/features/workspace/dto"
	workspace_models "seekit/internal/features/workspace/models"
	workspace_services "seekit/internal/features/workspace/services"
	workspace_testing "seekit/internal/features/workspace/testing"
	test_utils "seekit/internal/util/testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_CreateReview_OnCompletedProject_ReviewCreated(t *testing.T) {
	router := workspace_testing.CreateTestRouter(GetReviewController())

	freelancer := users_testing.CreateTestUser(users_enums.UserTypeFreelancer)
	client := users_testing.CreateTestUser(users_enums.UserTypeClient)
	project := workspace_testing.CreateTestWorkspace(freelancer.UserID, client.UserID)
	completeTestProject(t, project)

	var response CreateReviewResponseDTO
	test_utils.MakePostRequestAndUnmarshal(
		t,
		router,
		"/api/v1/workspaces/"+project.ID.String()+"/reviews",
		"Bearer "+client.Token,
		CreateReviewRequestDTO{Rating: 5, Comment: "Excellent delivery"},
		http.StatusOK,
		&response,
	)

	assert.Equal(t, project.ID, response.ProjectID)
	assert.Equal(t, freelancer.UserID, response.RevieweeID)
}

func Test_CreateReview_OnActiveProject_ReturnsBadRequest(t *testing.T) {
	router := workspace_testing.CreateTestRouter(GetReviewController())

	freelancer := users_testing.CreateTestUser(users_enums.UserTypeFreelancer)
	client := users_testing.CreateTestUser(users_enums.UserTypeClient)
	project := workspace_testing.CreateTestWorkspace(freelancer.UserID, client.UserID)

	resp := test_utils.MakePostRequest(
		t,
		router,
		"/api/v1/workspaces/"+project.ID.String()+"/reviews",
		"Bearer "+client.Token,
		CreateReviewRequestDTO{Rating: 5},
		http.StatusBadRequest,
	)
	assert.Contains(t, string(resp.Body), "only completed projects can be reviewed")
}

func Test_CreateReview_Twice_ReturnsBadRequest(t *testing.T) {
	router := workspace_testing.CreateTestRouter(GetReviewController())

	freelancer := users_testing.CreateTestUser(users_enums.UserTypeFreelancer)
	client := users_testing.CreateTestUser(users_enums.UserTypeClient)
	project := workspace_testing.CreateTestWorkspace(freelancer.UserID, client.UserID)
	completeTestProject(t, project)

	test_utils.MakePostRequest(
		t,
		router,
		"/api/v1/workspaces/"+project.ID.String()+"/reviews",
		"Bearer "+client.Token,
		CreateReviewRequestDTO{Rating: 4},
		http.StatusOK,
	)

	resp := test_utils.MakePostRequest(
		t,
		router,
		"/api/v1/workspaces/"+project.ID.String()+"/reviews",
		"Bearer "+client.Token,
		CreateReviewRequestDTO{Rating: 2},
		http.StatusBadRequest,
	)
	assert.Contains(t, string(resp.Body), "already reviewed")
}

func Test_CreateReview_ByOutsider_ReturnsForbidden(t *testing.T) {
	router := workspace_testing.CreateTestRouter(GetReviewController())

	freelancer := users_testing.CreateTestUser(users_enums.UserTypeFreelancer)
	client := users_testing.CreateTestUser(users_enums.UserTypeClient)
	outsider := users_testing.CreateTestUser(users_enums.UserTypeClient)
	project := workspace_testing.CreateTestWorkspace(freelancer.UserID, client.UserID)
	completeTestProject(t, project)

	test_utils.MakePostRequest(
		t,
		router,
		"/api/v1/workspaces/"+project.ID.String()+"/reviews",
		"Bearer "+outsider.Token,
		CreateReviewRequestDTO{Rating: 1},
		http.StatusForbidden,
	)
}

func Test_CreateReview_WithInvalidRating_ReturnsBadRequest(t *testing.T) {
	router := workspace_testing.CreateTestRouter(GetReviewController())

	freelancer := users_testing.CreateTestUser(users_enums.UserTypeFreelancer)
	client := users_testing.CreateTestUser(users_enums.UserTypeClient)
	project := workspace_testing.CreateTestWorkspace(freelancer.UserID, client.UserID)
	completeTestProject(t, project)

	test_utils.MakePostRequest(
		t,
		router,
		"/api/v1/workspaces/"+project.ID.String()+"/reviews",
		"Bearer "+client.Token,
		CreateReviewRequestDTO{Rating: 6},
		http.StatusBadRequest,
	)
}

func Test_GetPortfolio_WithCompletedReviewedProject_ShowsItemAndStats(t *testing.T) {
	router := workspace_testing.CreateTestRouter(GetReviewController())

	freelancer := users_testing.CreateTestUser(users_enums.UserTypeFreelancer)
	client := users_testing.CreateTestUser(users_enums.UserTypeClient)
	project := workspace_testing.CreateTestWorkspace(freelancer.UserID, client.UserID)
	completeTestProject(t, project)

	test_utils.MakePostRequest(
		t,
		router,
		"/api/v1/workspaces/"+project.ID.String()+"/reviews",
		"Bearer "+client.Token,
		CreateReviewRequestDTO{Rating: 4, Comment: "Solid work"},
		http.StatusOK,
	)

	var portfolio PortfolioResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(
		t,
		router,
		"/api/v1/freelancers/"+freelancer.UserID.String()+"/portfolio",
		"Bearer "+client.Token,
		http.StatusOK,
		&portfolio,
	)

	assert.Equal(t, freelancer.UserID, portfolio.FreelancerID)
	require.Len(t, portfolio.Items, 1)
	assert.Equal(t, project.ID, portfolio.Items[0].ProjectID)
	require.NotNil(t, portfolio.Items[0].Rating)
	assert.Equal(t, 4, *portfolio.Items[0].Rating)

	require.NotNil(t, portfolio.Stats)
	assert.Equal(t, int64(1), portfolio.Stats.CompletedProjects)
	assert.Equal(t, int64(1), portfolio.Stats.ReviewCount)
	require.NotNil(t, portfolio.Stats.AverageRating)
	assert.InDelta(t, 4.0, *portfolio.Stats.AverageRating, 0.001)
}

func Test_GetPortfolio_ForClientUser_ReturnsNotFound(t *testing.T) {
	router := workspace_testing.CreateTestRouter(GetReviewController())

	client := users_testing.CreateTestUser(users_enums.UserTypeClient)
	viewer := users_testing.CreateTestUser(users_enums.UserTypeFreelancer)

	test_utils.MakeGetRequest(
		t,
		router,
		"/api/v1/freelancers/"+client.UserID.String()+"/portfolio",
		"Bearer "+viewer.Token,
		http.StatusNotFound,
	)
}

func Test_ListFreelancerReviews_ReturnsReviewerNames(t *testing.T) {
	router := workspace_testing.CreateTestRouter(GetReviewController())

	freelancer := users_testing.CreateTestUser(users_enums.UserTypeFreelancer)
	client := users_testing.CreateTestUser(users_enums.UserTypeClient)
	project := workspace_testing.CreateTestWorkspace(freelancer.UserID, client.UserID)
	completeTestProject(t, project)

	test_utils.MakePostRequest(
		t,
		router,
		"/api/v1/workspaces/"+project.ID.String()+"/reviews",
		"Bearer "+client.Token,
		CreateReviewRequestDTO{Rating: 5, Comment: "Would hire again"},
		http.StatusOK,
	)

	var listing ListReviewsResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(
		t,
		router,
		"/api/v1/freelancers/"+freelancer.UserID.String()+"/reviews",
		"Bearer "+freelancer.Token,
		http.StatusOK,
		&listing,
	)

	require.Equal(t, int64(1), listing.Total)
	assert.Equal(t, 5, listing.Reviews[0].Rating)
	assert.Equal(t, client.UserID, listing.Reviews[0].ReviewerID)
	assert.NotEmpty(t, listing.Reviews[0].ReviewerName)
}

// completeTestProject pushes every milestone through submit + approve so
// the project finishes at 100%.
func completeTestProject(t *testing.T, project *workspace_models.Project) {
	t.Helper()

	freelancer := getUserModel(t, project.FreelancerID)
	client := getUserModel(t, project.ClientID)

	workspaceService := workspace_services.GetWorkspaceService()
	for _, milestone := range workspace_testing.GetTestMilestones(project.ID) {
		_, err := workspaceService.SubmitDeliverable(
			milestone.ID, freelancer,
			&workspace_dto.SubmitDeliverableRequestDTO{Description: "Deliverable"},
		)
		require.NoError(t, err)

		_, err = workspaceService.ApproveMilestone(
			milestone.ID, client, &workspace_dto.ApproveMilestoneRequestDTO{},
		)
		require.NoError(t, err)
	}
}

func getUserModel(t *testing.T, userID uuid.UUID) *users_models.User {
	t.Helper()

	user, err := users_services.GetUserService().GetUserByID(userID)
	require.NoError(t, err)

	return user
}
