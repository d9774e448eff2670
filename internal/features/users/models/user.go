package users_models

import (
	"strings"
	"time"

	users_enums "seekit/internal/features/users/enums"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID                   uuid.UUID              `json:"id"`
	Name                 string                 `json:"name"`
	Email                string                 `json:"email"`
	HashedPassword       *string                `json:"-"         gorm:"column:hashed_password"`
	PasswordCreationTime time.Time              `json:"-"         gorm:"column:password_creation_time"`
	Location             string                 `json:"location"`
	Type                 users_enums.UserType   `json:"type"      gorm:"column:user_type"`
	Status               users_enums.UserStatus `json:"status"`
	CreatedAt            time.Time              `json:"createdAt"`

	// Freelancer skills, comma-joined in a single column
	SkillsRaw string   `json:"-"      gorm:"column:skills_raw"`
	Skills    []string `json:"skills" gorm:"-"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) BeforeSave(tx *gorm.DB) error {
	if len(u.Skills) > 0 {
		u.SkillsRaw = strings.Join(u.Skills, ",")
	} else {
		u.SkillsRaw = ""
	}

	return nil
}

func (u *User) AfterFind(tx *gorm.DB) error {
	if u.SkillsRaw != "" {
		u.Skills = strings.Split(u.SkillsRaw, ",")
		for i, skill := range u.Skills {
			u.Skills[i] = strings.TrimSpace(skill)
		}
	} else {
		u.Skills = []string{}
	}

	return nil
}

// Permission methods
func (u *User) IsClient() bool {
	return u.Type == users_enums.UserTypeClient
}

func (u *User) IsFreelancer() bool {
	return u.Type == users_enums.UserTypeFreelancer
}

func (u *User) IsActiveUser() bool {
	return u.Status == users_enums.UserStatusActive
}

func (u *User) HasPassword() bool {
	return u.HashedPassword != nil && *u.HashedPassword != ""
}
