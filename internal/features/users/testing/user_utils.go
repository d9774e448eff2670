package users_testing

import (
	"fmt"
	"strings"
	"time"

	users_dto "seekit/internal/features/users/dto"
	users_enums "seekit/internal/features/users/enums"
	users_models "seekit/internal/features/users/models"
	users_repositories "seekit/internal/features/users/repositories"
	users_services "seekit/internal/features/users/services"

	"github.com/google/uuid"
)

func CreateTestUser(userType users_enums.UserType) *users_dto.SignInResponseDTO {
	return CreateTestUserWithSkills(userType, nil)
}

func CreateTestUserWithSkills(
	userType users_enums.UserType,
	skills []string,
) *users_dto.SignInResponseDTO {
	userID := uuid.New()
	email := fmt.Sprintf("%s-%s@test.com", strings.ToLower(string(userType)), userID.String()[:8])

	hashedPassword := "$2a$10$test"
	user := &users_models.User{
		ID:                   userID,
		Name:                 "Test " + strings.ToLower(string(userType)),
		Email:                email,
		HashedPassword:       &hashedPassword,
		PasswordCreationTime: time.Now().UTC(),
		Type:                 userType,
		Status:               users_enums.UserStatusActive,
		Skills:               skills,
		CreatedAt:            time.Now().UTC(),
	}

	userRepository := &users_repositories.UserRepository{}
	err := userRepository.CreateUser(user)
	if err != nil {
		panic(err)
	}

	response, err := users_services.GetUserService().GenerateAccessToken(user)
	if err != nil {
		panic(err)
	}

	response.Email = user.Email

	return response
}
