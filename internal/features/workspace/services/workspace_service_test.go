package workspace_services

import (
	"testing"

	"seekit/internal/features/activity"
	"seekit/internal/features/jobs"
	users_enums "seekit/internal/features/users/enums"
	users_models "seekit/internal/features/users/models"
	users_services "seekit/internal/features/users/services"
	users_testing "seekit/internal/features/users/testing"
	workspace_dto "seekit/internal/features/workspace/dto"
	workspace_enums "seekit/internal/features/workspace/enums"
	workspace_models "seekit/internal/features/workspace/models"
	"seekit/internal/storage"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func Test_CreateWorkspace_WithDefaults_FourPendingMilestonesInOrder(t *testing.T) {
	project, milestones, _, _ := createTestWorkspace(t)

	assert.Equal(t, workspace_enums.ProjectStatusActive, project.Status)
	assert.Equal(t, 0, project.ProgressPercentage)
	assert.Nil(t, project.CompletedAt)

	require.Len(t, milestones, 4)
	expectedNames := []string{"Initial Design", "Development", "Testing", "Final Delivery"}
	for i, milestone := range milestones {
		assert.Equal(t, workspace_enums.MilestoneStatusPending, milestone.Status)
		assert.Equal(t, i+1, milestone.OrderNumber)
		assert.Equal(t, expectedNames[i], milestone.Name)
	}
}

func Test_CreateWorkspace_WritesWorkspaceCreatedActivity(t *testing.T) {
	project, _, freelancer, _ := createTestWorkspace(t)

	response, err := GetWorkspaceService().GetProjectActivity(
		project.ID, freelancer, &activity.GetActivityRequest{},
	)
	require.NoError(t, err)

	require.Len(t, response.Entries, 1)
	assert.Equal(t, activity.TypeWorkspaceCreated, response.Entries[0].Type)
	assert.Equal(t, freelancer.ID, response.Entries[0].UserID)
}

func Test_CreateWorkspace_WithTemplate_UsesTemplateMilestones(t *testing.T) {
	freelancer := createTestUserModel(t, users_enums.UserTypeFreelancer)
	client := createTestUserModel(t, users_enums.UserTypeClient)
	job := createTestJob(t, client.ID)

	template := []*workspace_dto.MilestoneTemplateDTO{
		{Name: "Discovery", Description: "Requirements gathering"},
		{Name: "Delivery", Description: "Ship it"},
	}

	var projectID uuid.UUID
	err := storage.GetDb().Transaction(func(tx *gorm.DB) error {
		createdProjectID, err := GetWorkspaceService().CreateWorkspaceInTx(
			tx, uuid.New(), job.ID, freelancer.ID, client.ID, template,
		)
		projectID = createdProjectID
		return err
	})
	require.NoError(t, err)

	milestones, err := milestoneRepository.GetMilestonesByProject(projectID)
	require.NoError(t, err)

	require.Len(t, milestones, 2)
	assert.Equal(t, "Discovery", milestones[0].Name)
	assert.Equal(t, 1, milestones[0].OrderNumber)
	assert.Equal(t, "Delivery", milestones[1].Name)
	assert.Equal(t, 2, milestones[1].OrderNumber)
}

func Test_SubmitDeliverable_FirstSubmission_VersionOneAndSubmitted(t *testing.T) {
	_, milestones, freelancer, _ := createTestWorkspace(t)

	response, err := GetWorkspaceService().SubmitDeliverable(
		milestones[0].ID, freelancer,
		&workspace_dto.SubmitDeliverableRequestDTO{Description: "First draft"},
	)
	require.NoError(t, err)

	assert.Equal(t, 1, response.VersionNumber)
	assert.Equal(t, workspace_enums.MilestoneStatusSubmitted, response.Status)
	assert.NotEqual(t, uuid.Nil, response.SubmissionID)
}

func Test_SubmitDeliverable_AfterRevision_VersionsAreGapless(t *testing.T) {
	_, milestones, freelancer, client := createTestWorkspace(t)
	milestone := milestones[0]

	first, err := GetWorkspaceService().SubmitDeliverable(
		milestone.ID, freelancer,
		&workspace_dto.SubmitDeliverableRequestDTO{Description: "First draft"},
	)
	require.NoError(t, err)
	assert.Equal(t, 1, first.VersionNumber)

	err = GetWorkspaceService().RequestRevision(
		milestone.ID, client,
		&workspace_dto.RequestRevisionRequestDTO{Feedback: "Please rework the layout"},
	)
	require.NoError(t, err)

	second, err := GetWorkspaceService().SubmitDeliverable(
		milestone.ID, freelancer,
		&workspace_dto.SubmitDeliverableRequestDTO{Description: "Reworked draft"},
	)
	require.NoError(t, err)
	assert.Equal(t, 2, second.VersionNumber)
	assert.Equal(t, workspace_enums.MilestoneStatusSubmitted, second.Status)

	listing, err := GetWorkspaceService().ListMilestoneSubmissions(milestone.ID, client)
	require.NoError(t, err)
	require.Len(t, listing.Submissions, 2)
	assert.Equal(t, 2, listing.Submissions[0].VersionNumber)
	assert.Equal(t, 1, listing.Submissions[1].VersionNumber)
}

func Test_SubmitDeliverable_ByClient_Rejected(t *testing.T) {
	_, milestones, _, client := createTestWorkspace(t)

	_, err := GetWorkspaceService().SubmitDeliverable(
		milestones[0].ID, client,
		&workspace_dto.SubmitDeliverableRequestDTO{Description: "Client draft"},
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "only the project freelancer")
}

func Test_ApproveMilestones_ProgressClimbsAndProjectCompletes(t *testing.T) {
	project, milestones, freelancer, client := createTestWorkspace(t)

	expectedProgress := []int{25, 50, 75, 100}
	for i, milestone := range milestones {
		_, err := GetWorkspaceService().SubmitDeliverable(
			milestone.ID, freelancer,
			&workspace_dto.SubmitDeliverableRequestDTO{Description: "Deliverable"},
		)
		require.NoError(t, err)

		response, err := GetWorkspaceService().ApproveMilestone(
			milestone.ID, client, &workspace_dto.ApproveMilestoneRequestDTO{},
		)
		require.NoError(t, err)
		assert.Equal(t, expectedProgress[i], response.ProgressPercentage)

		if expectedProgress[i] < 100 {
			assert.Equal(t, workspace_enums.ProjectStatusActive, response.ProjectStatus)
		} else {
			assert.Equal(t, workspace_enums.ProjectStatusCompleted, response.ProjectStatus)
		}
	}

	completed, err := GetWorkspaceService().GetProject(project.ID)
	require.NoError(t, err)
	assert.Equal(t, workspace_enums.ProjectStatusCompleted, completed.Status)
	assert.Equal(t, 100, completed.ProgressPercentage)
	require.NotNil(t, completed.CompletedAt)
}

func Test_ApproveMilestone_WithFeedback_AttachedToLatestSubmission(t *testing.T) {
	_, milestones, freelancer, client := createTestWorkspace(t)
	milestone := milestones[0]

	_, err := GetWorkspaceService().SubmitDeliverable(
		milestone.ID, freelancer,
		&workspace_dto.SubmitDeliverableRequestDTO{Description: "Deliverable"},
	)
	require.NoError(t, err)

	feedback := "Great work"
	_, err = GetWorkspaceService().ApproveMilestone(
		milestone.ID, client, &workspace_dto.ApproveMilestoneRequestDTO{Feedback: &feedback},
	)
	require.NoError(t, err)

	listing, err := GetWorkspaceService().ListMilestoneSubmissions(milestone.ID, client)
	require.NoError(t, err)
	require.Len(t, listing.Submissions, 1)
	require.NotNil(t, listing.Submissions[0].ClientFeedback)
	assert.Equal(t, feedback, *listing.Submissions[0].ClientFeedback)
}

func Test_ApproveMilestone_Twice_NoErrorAndProgressStable(t *testing.T) {
	_, milestones, freelancer, client := createTestWorkspace(t)
	milestone := milestones[0]

	_, err := GetWorkspaceService().SubmitDeliverable(
		milestone.ID, freelancer,
		&workspace_dto.SubmitDeliverableRequestDTO{Description: "Deliverable"},
	)
	require.NoError(t, err)

	first, err := GetWorkspaceService().ApproveMilestone(
		milestone.ID, client, &workspace_dto.ApproveMilestoneRequestDTO{},
	)
	require.NoError(t, err)
	assert.Equal(t, 25, first.ProgressPercentage)

	second, err := GetWorkspaceService().ApproveMilestone(
		milestone.ID, client, &workspace_dto.ApproveMilestoneRequestDTO{},
	)
	require.NoError(t, err)
	assert.Equal(t, 25, second.ProgressPercentage)
}

func Test_SubmitDeliverable_ToApprovedMilestone_StatusStaysApproved(t *testing.T) {
	_, milestones, freelancer, client := createTestWorkspace(t)
	milestone := milestones[0]

	_, err := GetWorkspaceService().SubmitDeliverable(
		milestone.ID, freelancer,
		&workspace_dto.SubmitDeliverableRequestDTO{Description: "Deliverable"},
	)
	require.NoError(t, err)

	_, err = GetWorkspaceService().ApproveMilestone(
		milestone.ID, client, &workspace_dto.ApproveMilestoneRequestDTO{},
	)
	require.NoError(t, err)

	response, err := GetWorkspaceService().SubmitDeliverable(
		milestone.ID, freelancer,
		&workspace_dto.SubmitDeliverableRequestDTO{Description: "Late extra version"},
	)
	require.NoError(t, err)

	assert.Equal(t, 2, response.VersionNumber)
	assert.Equal(t, workspace_enums.MilestoneStatusApproved, response.Status)

	stored, err := milestoneRepository.GetMilestoneByID(milestone.ID)
	require.NoError(t, err)
	assert.Equal(t, workspace_enums.MilestoneStatusApproved, stored.Status)
}

func Test_RequestRevision_LeavesProgressUntouched(t *testing.T) {
	project, milestones, freelancer, client := createTestWorkspace(t)

	_, err := GetWorkspaceService().SubmitDeliverable(
		milestones[0].ID, freelancer,
		&workspace_dto.SubmitDeliverableRequestDTO{Description: "Deliverable"},
	)
	require.NoError(t, err)

	_, err = GetWorkspaceService().ApproveMilestone(
		milestones[0].ID, client, &workspace_dto.ApproveMilestoneRequestDTO{},
	)
	require.NoError(t, err)

	_, err = GetWorkspaceService().SubmitDeliverable(
		milestones[1].ID, freelancer,
		&workspace_dto.SubmitDeliverableRequestDTO{Description: "Second deliverable"},
	)
	require.NoError(t, err)

	err = GetWorkspaceService().RequestRevision(
		milestones[1].ID, client,
		&workspace_dto.RequestRevisionRequestDTO{Feedback: "Needs more tests"},
	)
	require.NoError(t, err)

	stored, err := GetWorkspaceService().GetProject(project.ID)
	require.NoError(t, err)
	assert.Equal(t, 25, stored.ProgressPercentage)
	assert.Equal(t, workspace_enums.ProjectStatusActive, stored.Status)

	milestone, err := milestoneRepository.GetMilestoneByID(milestones[1].ID)
	require.NoError(t, err)
	assert.Equal(t, workspace_enums.MilestoneStatusRevisionRequested, milestone.Status)
}

func Test_MarkDisputed_FromActiveAndCompleted_AlwaysDisputes(t *testing.T) {
	project, _, freelancer, _ := createTestWorkspace(t)

	err := GetWorkspaceService().MarkDisputed(project.ID, freelancer, "Payment disagreement")
	require.NoError(t, err)

	stored, err := GetWorkspaceService().GetProject(project.ID)
	require.NoError(t, err)
	assert.Equal(t, workspace_enums.ProjectStatusDisputed, stored.Status)
	assert.Equal(t, 0, stored.ProgressPercentage)

	// disputing again from disputed is still allowed
	err = GetWorkspaceService().MarkDisputed(project.ID, freelancer, "Still unresolved")
	require.NoError(t, err)
}

func Test_MarkDisputed_ByOutsider_Rejected(t *testing.T) {
	project, _, _, _ := createTestWorkspace(t)
	outsider := createTestUserModel(t, users_enums.UserTypeClient)

	err := GetWorkspaceService().MarkDisputed(project.ID, outsider, "Not my project")
	assert.ErrorIs(t, err, ErrNotParticipant)
}

func Test_GetWorkspace_ByNonParticipant_Rejected(t *testing.T) {
	project, _, _, _ := createTestWorkspace(t)
	outsider := createTestUserModel(t, users_enums.UserTypeFreelancer)

	_, err := GetWorkspaceService().GetWorkspace(project.ID, outsider)
	assert.ErrorIs(t, err, ErrNotParticipant)
}

func Test_ListFreelancerWorkspaces_ReturnsActiveOnly(t *testing.T) {
	project, _, freelancer, _ := createTestWorkspace(t)

	listing, err := GetWorkspaceService().ListFreelancerWorkspaces(freelancer)
	require.NoError(t, err)
	require.Equal(t, int64(1), listing.Total)
	assert.Equal(t, project.ID, listing.Projects[0].ID)

	err = GetWorkspaceService().MarkDisputed(project.ID, freelancer, "Disagreement")
	require.NoError(t, err)

	listing, err = GetWorkspaceService().ListFreelancerWorkspaces(freelancer)
	require.NoError(t, err)
	assert.Equal(t, int64(0), listing.Total)
}

func createTestUserModel(t *testing.T, userType users_enums.UserType) *users_models.User {
	t.Helper()

	auth := users_testing.CreateTestUser(userType)

	user, err := users_services.GetUserService().GetUserByID(auth.UserID)
	require.NoError(t, err)

	return user
}

func createTestJob(t *testing.T, clientID uuid.UUID) *jobs.Job {
	t.Helper()

	job := &jobs.Job{
		ClientID:    clientID,
		Title:       "Workspace test job " + uuid.NewString()[:8],
		Description: "Job backing a workspace under test",
		BudgetMin:   100,
		BudgetMax:   500,
		Status:      jobs.JobStatusInProgress,
	}

	err := (&jobs.JobRepository{}).CreateJob(job)
	require.NoError(t, err)

	return job
}

func createTestWorkspace(
	t *testing.T,
) (*workspace_models.Project, []*workspace_models.Milestone, *users_models.User, *users_models.User) {
	t.Helper()

	freelancer := createTestUserModel(t, users_enums.UserTypeFreelancer)
	client := createTestUserModel(t, users_enums.UserTypeClient)
	job := createTestJob(t, client.ID)

	var projectID uuid.UUID
	err := storage.GetDb().Transaction(func(tx *gorm.DB) error {
		createdProjectID, err := GetWorkspaceService().CreateWorkspaceInTx(
			tx, uuid.New(), job.ID, freelancer.ID, client.ID, nil,
		)
		projectID = createdProjectID
		return err
	})
	require.NoError(t, err)

	project, err := projectRepository.GetProjectByID(projectID)
	require.NoError(t, err)

	milestones, err := milestoneRepository.GetMilestonesByProject(projectID)
	require.NoError(t, err)

	return project, milestones, freelancer, client
}
