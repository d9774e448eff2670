package users_controllers

import (
	"net/http"
	"testing"

	users_dto "seekit/internal/features/users/dto"
	users_enums "seekit/internal/features/users/enums"
	users_middleware "seekit/internal/features/users/middleware"
	users_services "seekit/internal/features/users/services"
	users_testing "seekit/internal/features/users/testing"
	test_utils "seekit/internal/util/testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

func Test_SignUp_WithValidData_UserCreated(t *testing.T) {
	router := createUserTestRouter()

	request := users_dto.SignUpRequestDTO{
		Name:     "Test Client",
		Email:    "client" + uuid.NewString() + "@example.com",
		Password: "testpassword123",
		Type:     users_enums.UserTypeClient,
	}

	test_utils.MakePostRequest(t, router, "/api/v1/users/signup", "", request, http.StatusOK)
}

func Test_SignUp_WithDuplicateEmail_ReturnsBadRequest(t *testing.T) {
	router := createUserTestRouter()

	request := users_dto.SignUpRequestDTO{
		Name:     "Duplicate User",
		Email:    "duplicate" + uuid.NewString() + "@example.com",
		Password: "testpassword123",
		Type:     users_enums.UserTypeFreelancer,
		Skills:   []string{"go"},
	}

	test_utils.MakePostRequest(t, router, "/api/v1/users/signup", "", request, http.StatusOK)

	resp := test_utils.MakePostRequest(t, router, "/api/v1/users/signup", "", request, http.StatusBadRequest)
	assert.Contains(t, string(resp.Body), "already exists")
}

func Test_SignUp_WithInvalidType_ReturnsBadRequest(t *testing.T) {
	router := createUserTestRouter()

	request := users_dto.SignUpRequestDTO{
		Name:     "Bad Type",
		Email:    "badtype" + uuid.NewString() + "@example.com",
		Password: "testpassword123",
		Type:     users_enums.UserType("MANAGER"),
	}

	test_utils.MakePostRequest(t, router, "/api/v1/users/signup", "", request, http.StatusBadRequest)
}

func Test_SignUpAndSignIn_ReturnsWorkingToken(t *testing.T) {
	router := createUserTestRouter()
	email := "signin" + uuid.NewString() + "@example.com"

	signUpRequest := users_dto.SignUpRequestDTO{
		Name:     "Signin User",
		Email:    email,
		Password: "testpassword123",
		Type:     users_enums.UserTypeFreelancer,
		Skills:   []string{"go", "postgres"},
	}
	test_utils.MakePostRequest(t, router, "/api/v1/users/signup", "", signUpRequest, http.StatusOK)

	var signInResponse users_dto.SignInResponseDTO
	test_utils.MakePostRequestAndUnmarshal(
		t,
		router,
		"/api/v1/users/signin",
		"",
		users_dto.SignInRequestDTO{Email: email, Password: "testpassword123"},
		http.StatusOK,
		&signInResponse,
	)
	require.NotEmpty(t, signInResponse.Token)

	var profile users_dto.UserProfileResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(
		t,
		router,
		"/api/v1/users/me",
		"Bearer "+signInResponse.Token,
		http.StatusOK,
		&profile,
	)

	assert.Equal(t, email, profile.Email)
	assert.Equal(t, users_enums.UserTypeFreelancer, profile.Type)
	assert.ElementsMatch(t, []string{"go", "postgres"}, profile.Skills)
}

func Test_SignIn_WithWrongPassword_ReturnsBadRequest(t *testing.T) {
	router := createUserTestRouter()
	email := "wrongpass" + uuid.NewString() + "@example.com"

	signUpRequest := users_dto.SignUpRequestDTO{
		Name:     "Wrong Pass",
		Email:    email,
		Password: "testpassword123",
		Type:     users_enums.UserTypeClient,
	}
	test_utils.MakePostRequest(t, router, "/api/v1/users/signup", "", signUpRequest, http.StatusOK)

	test_utils.MakePostRequest(
		t,
		router,
		"/api/v1/users/signin",
		"",
		users_dto.SignInRequestDTO{Email: email, Password: "not-the-password"},
		http.StatusBadRequest,
	)
}

func Test_UpdateProfile_ChangesNameAndSkills(t *testing.T) {
	router := createUserTestRouter()
	freelancer := users_testing.CreateTestUser(users_enums.UserTypeFreelancer)

	newName := "Renamed Freelancer"
	request := users_dto.UpdateProfileRequestDTO{
		Name:   &newName,
		Skills: []string{"kubernetes"},
	}

	var profile users_dto.UserProfileResponseDTO
	test_utils.MakePutRequestAndUnmarshal(
		t,
		router,
		"/api/v1/users/me",
		"Bearer "+freelancer.Token,
		request,
		http.StatusOK,
		&profile,
	)

	assert.Equal(t, newName, profile.Name)
	assert.Equal(t, []string{"kubernetes"}, profile.Skills)
}

func Test_SearchFreelancers_BySkill_FindsMatchingUser(t *testing.T) {
	router := createUserTestRouter()

	skill := "skill" + uuid.NewString()[:8]
	freelancer := users_testing.CreateTestUserWithSkills(users_enums.UserTypeFreelancer, []string{skill, "go"})
	viewer := users_testing.CreateTestUser(users_enums.UserTypeClient)

	var response users_dto.ListUsersResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(
		t,
		router,
		"/api/v1/freelancers/search?skills="+skill,
		"Bearer "+viewer.Token,
		http.StatusOK,
		&response,
	)

	require.Equal(t, int64(1), response.Total)
	assert.Equal(t, freelancer.UserID, response.Users[0].ID)
}

func Test_GetCurrentUser_WithoutToken_ReturnsUnauthorized(t *testing.T) {
	router := createUserTestRouter()

	test_utils.MakeGetRequest(t, router, "/api/v1/users/me", "", http.StatusUnauthorized)
}

func createUserTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	v1 := router.Group("/api/v1")

	// Register public routes
	GetUserController().RegisterRoutes(v1)

	// Register protected routes with auth middleware
	protected := v1.Group("").Use(users_middleware.AuthMiddleware(users_services.GetUserService()))
	GetUserController().RegisterProtectedRoutes(protected.(*gin.RouterGroup))
	GetUserController().SetSignInLimiter(rate.NewLimiter(rate.Limit(100), 100))

	return router
}
