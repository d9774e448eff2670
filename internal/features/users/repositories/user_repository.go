package users_repositories

import (
	"strings"
	"time"

	users_enums "seekit/internal/features/users/enums"
	users_models "seekit/internal/features/users/models"
	"seekit/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRepository struct{}

func (r *UserRepository) CreateUser(user *users_models.User) error {
	return storage.GetDb().Create(user).Error
}

func (r *UserRepository) GetUserByEmail(email string) (*users_models.User, error) {
	var user users_models.User

	normalized := strings.ToLower(strings.TrimSpace(email))

	if err := storage.GetDb().Where("email = ?", normalized).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}

		return nil, err
	}

	return &user, nil
}

func (r *UserRepository) GetUserByID(userID uuid.UUID) (*users_models.User, error) {
	var user users_models.User

	if err := storage.GetDb().Where("id = ?", userID).First(&user).Error; err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *UserRepository) UpdateUserPassword(userID uuid.UUID, hashedPassword string) error {
	return storage.GetDb().Model(&users_models.User{}).
		Where("id = ?", userID).
		Updates(map[string]any{
			"hashed_password":        hashedPassword,
			"password_creation_time": time.Now().UTC(),
		}).Error
}

func (r *UserRepository) UpdateProfile(userID uuid.UUID, name, location string, skillsRaw string) error {
	return storage.GetDb().Model(&users_models.User{}).
		Where("id = ?", userID).
		Updates(map[string]any{
			"name":       name,
			"location":   location,
			"skills_raw": skillsRaw,
		}).Error
}

func (r *UserRepository) GetUsers(
	userType *users_enums.UserType,
	limit, offset int,
) ([]*users_models.User, int64, error) {
	var users []*users_models.User
	var total int64

	countQuery := storage.GetDb().Model(&users_models.User{})
	if userType != nil {
		countQuery = countQuery.Where("user_type = ?", *userType)
	}

	if err := countQuery.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query := storage.GetDb().
		Limit(limit).
		Offset(offset).
		Order("created_at DESC")

	if userType != nil {
		query = query.Where("user_type = ?", *userType)
	}

	if err := query.Find(&users).Error; err != nil {
		return nil, 0, err
	}

	return users, total, nil
}

// FindFreelancersBySkills returns freelancers matching any of the given skills.
func (r *UserRepository) FindFreelancersBySkills(skills []string) ([]*users_models.User, error) {
	var users []*users_models.User

	query := storage.GetDb().
		Where("user_type = ?", users_enums.UserTypeFreelancer).
		Order("created_at DESC")

	if len(skills) > 0 {
		skillsQuery := storage.GetDb()
		for _, skill := range skills {
			pattern := "%" + strings.TrimSpace(skill) + "%"
			skillsQuery = skillsQuery.Or("skills_raw ILIKE ?", pattern)
		}
		query = query.Where(skillsQuery)
	}

	if err := query.Find(&users).Error; err != nil {
		return nil, err
	}

	return users, nil
}
