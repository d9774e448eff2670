package users_dto

import (
	"time"

	users_enums "seekit/internal/features/users/enums"

	"github.com/google/uuid"
)

type SignUpRequestDTO struct {
	Name     string               `json:"name"     binding:"required"`
	Email    string               `json:"email"    binding:"required,email"`
	Password string               `json:"password" binding:"required,min=8"`
	Location string               `json:"location"`
	Type     users_enums.UserType `json:"type"     binding:"required"`
	Skills   []string             `json:"skills"`
}

type SignInRequestDTO struct {
	Email    string `json:"email"    binding:"required"`
	Password string `json:"password" binding:"required"`
}

type SignInResponseDTO struct {
	UserID uuid.UUID `json:"userId"`
	Email  string    `json:"email"`
	Token  string    `json:"token"`
}

type ChangePasswordRequestDTO struct {
	NewPassword string `json:"newPassword" binding:"required,min=8"`
}

type UpdateProfileRequestDTO struct {
	Name     *string  `json:"name"`
	Location *string  `json:"location"`
	Skills   []string `json:"skills"`
}

type UserProfileResponseDTO struct {
	ID        uuid.UUID            `json:"id"`
	Name      string               `json:"name"`
	Email     string               `json:"email"`
	Location  string               `json:"location"`
	Type      users_enums.UserType `json:"type"`
	Skills    []string             `json:"skills"`
	CreatedAt time.Time            `json:"createdAt"`
}

type ListUsersRequestDTO struct {
	Type   *users_enums.UserType `form:"type"   json:"type"`
	Limit  int                   `form:"limit"  json:"limit"`
	Offset int                   `form:"offset" json:"offset"`
}

type ListUsersResponseDTO struct {
	Users []UserProfileResponseDTO `json:"users"`
	Total int64                    `json:"total"`
}

type SearchFreelancersRequestDTO struct {
	Skills string `form:"skills" json:"skills"`
}
