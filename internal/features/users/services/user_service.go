package users_services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	users_dto "seekit/internal/features/users/dto"
	users_enums "seekit/internal/features/users/enums"
	users_models "seekit/internal/features/users/models"
	users_repositories "seekit/internal/features/users/repositories"
)

type UserService struct {
	userRepository      *users_repositories.UserRepository
	secretKeyRepository *users_repositories.SecretKeyRepository
}

func (s *UserService) SignUp(request *users_dto.SignUpRequestDTO) error {
	if !request.Type.IsValid() {
		return errors.New("user type must be CLIENT or FREELANCER")
	}

	existingUser, err := s.userRepository.GetUserByEmail(request.Email)
	if err != nil {
		return fmt.Errorf("failed to check existing user: %w", err)
	}

	if existingUser != nil {
		return errors.New("user with this email already exists")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(request.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	hashedPasswordStr := string(hashedPassword)

	// Skills only make sense for freelancers
	skills := request.Skills
	if request.Type != users_enums.UserTypeFreelancer {
		skills = nil
	}

	user := &users_models.User{
		ID:                   uuid.New(),
		Name:                 strings.TrimSpace(request.Name),
		Email:                strings.ToLower(strings.TrimSpace(request.Email)),
		HashedPassword:       &hashedPasswordStr,
		PasswordCreationTime: time.Now().UTC(),
		Location:             strings.TrimSpace(request.Location),
		Type:                 request.Type,
		Status:               users_enums.UserStatusActive,
		Skills:               skills,
		CreatedAt:            time.Now().UTC(),
	}

	if err := s.userRepository.CreateUser(user); err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

func (s *UserService) SignIn(request *users_dto.SignInRequestDTO) (*users_dto.SignInResponseDTO, error) {
	user, err := s.userRepository.GetUserByEmail(request.Email)
	if err != nil {
		return nil, errors.New("user with this email does not exist")
	}

	if user == nil {
		return nil, errors.New("user with this email does not exist")
	}

	if user.Status != users_enums.UserStatusActive {
		return nil, errors.New("user account is deactivated")
	}

	err = bcrypt.CompareHashAndPassword([]byte(*user.HashedPassword), []byte(request.Password))
	if err != nil {
		return nil, errors.New("password is incorrect")
	}

	return s.GenerateAccessToken(user)
}

func (s *UserService) GetUserFromToken(token string) (*users_models.User, error) {
	secretKey, err := s.secretKeyRepository.GetSecretKey()
	if err != nil {
		return nil, fmt.Errorf("failed to get secret key: %w", err)
	}

	parsedToken, err := jwt.Parse(token, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secretKey), nil
	})

	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	if claims, ok := parsedToken.Claims.(jwt.MapClaims); ok && parsedToken.Valid {
		userIDStr, ok := claims["sub"].(string)
		if !ok {
			return nil, errors.New("invalid token claims")
		}

		userID, err := uuid.Parse(userIDStr)
		if err != nil {
			return nil, errors.New("invalid token claims")
		}

		user, err := s.userRepository.GetUserByID(userID)
		if err != nil {
			return nil, err
		}

		if !user.IsActiveUser() {
			return nil, errors.New("user account is deactivated")
		}

		if passwordCreationTimeUnix, ok := claims["passwordCreationTime"].(float64); ok {
			tokenPasswordTime := time.Unix(int64(passwordCreationTimeUnix), 0)

			tokenTimeSeconds := tokenPasswordTime.Truncate(time.Second)
			userTimeSeconds := user.PasswordCreationTime.Truncate(time.Second)

			if !tokenTimeSeconds.Equal(userTimeSeconds) {
				return nil, errors.New("password has been changed, please sign in again")
			}
		} else {
			return nil, errors.New("invalid token claims: missing password creation time")
		}

		return user, nil
	}

	return nil, errors.New("invalid token")
}

func (s *UserService) GenerateAccessToken(user *users_models.User) (*users_dto.SignInResponseDTO, error) {
	secretKey, err := s.secretKeyRepository.GetSecretKey()
	if err != nil {
		return nil, fmt.Errorf("failed to get secret key: %w", err)
	}

	expiration := time.Now().UTC().Add(time.Hour * 24 * 30)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":                  user.ID.String(),
		"exp":                  expiration.Unix(),
		"iat":                  time.Now().UTC().Unix(),
		"type":                 string(user.Type),
		"passwordCreationTime": user.PasswordCreationTime.Unix(),
	})

	tokenString, err := token.SignedString([]byte(secretKey))
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &users_dto.SignInResponseDTO{
		UserID: user.ID,
		Email:  user.Email,
		Token:  tokenString,
	}, nil
}

func (s *UserService) ChangeUserPassword(userID uuid.UUID, newPassword string) error {
	user, err := s.userRepository.GetUserByID(userID)
	if err != nil {
		return fmt.Errorf("failed to get user: %w", err)
	}

	if !user.HasPassword() {
		return errors.New("user has no password set")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash new password: %w", err)
	}

	if err := s.userRepository.UpdateUserPassword(userID, string(hashedPassword)); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	return nil
}

func (s *UserService) ChangeUserPasswordByEmail(email string, newPassword string) error {
	user, err := s.userRepository.GetUserByEmail(email)
	if err != nil {
		return fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return errors.New("user not found")
	}

	return s.ChangeUserPassword(user.ID, newPassword)
}

func (s *UserService) UpdateProfile(
	user *users_models.User,
	request *users_dto.UpdateProfileRequestDTO,
) (*users_dto.UserProfileResponseDTO, error) {
	name := user.Name
	if request.Name != nil && strings.TrimSpace(*request.Name) != "" {
		name = strings.TrimSpace(*request.Name)
	}

	location := user.Location
	if request.Location != nil {
		location = strings.TrimSpace(*request.Location)
	}

	skills := user.Skills
	if request.Skills != nil {
		if !user.IsFreelancer() {
			return nil, errors.New("only freelancers can set skills")
		}
		skills = normalizeSkills(request.Skills)
	}

	if err := s.userRepository.UpdateProfile(user.ID, name, location, strings.Join(skills, ",")); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	updated, err := s.userRepository.GetUserByID(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload user: %w", err)
	}

	return s.GetCurrentUserProfile(updated), nil
}

func (s *UserService) ListUsers(request *users_dto.ListUsersRequestDTO) (*users_dto.ListUsersResponseDTO, error) {
	limit := request.Limit
	if limit <= 0 || limit > 1000 {
		limit = 100
	}

	offset := max(request.Offset, 0)

	if request.Type != nil && !request.Type.IsValid() {
		return nil, errors.New("user type must be CLIENT or FREELANCER")
	}

	users, total, err := s.userRepository.GetUsers(request.Type, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	profiles := make([]users_dto.UserProfileResponseDTO, len(users))
	for i, user := range users {
		profiles[i] = *s.GetCurrentUserProfile(user)
	}

	return &users_dto.ListUsersResponseDTO{
		Users: profiles,
		Total: total,
	}, nil
}

func (s *UserService) FindFreelancersBySkills(skills []string) (*users_dto.ListUsersResponseDTO, error) {
	freelancers, err := s.userRepository.FindFreelancersBySkills(normalizeSkills(skills))
	if err != nil {
		return nil, fmt.Errorf("failed to search freelancers: %w", err)
	}

	profiles := make([]users_dto.UserProfileResponseDTO, len(freelancers))
	for i, freelancer := range freelancers {
		profiles[i] = *s.GetCurrentUserProfile(freelancer)
	}

	return &users_dto.ListUsersResponseDTO{
		Users: profiles,
		Total: int64(len(profiles)),
	}, nil
}

func (s *UserService) GetUserByID(userID uuid.UUID) (*users_models.User, error) {
	return s.userRepository.GetUserByID(userID)
}

func (s *UserService) GetUserByEmail(email string) (*users_models.User, error) {
	return s.userRepository.GetUserByEmail(email)
}

func (s *UserService) GetCurrentUserProfile(user *users_models.User) *users_dto.UserProfileResponseDTO {
	return &users_dto.UserProfileResponseDTO{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Location:  user.Location,
		Type:      user.Type,
		Skills:    user.Skills,
		CreatedAt: user.CreatedAt,
	}
}

func normalizeSkills(skills []string) []string {
	normalized := make([]string, 0, len(skills))
	for _, skill := range skills {
		skill = strings.TrimSpace(skill)
		if skill != "" {
			normalized = append(normalized, skill)
		}
	}

	return normalized
}
