package applications

import (
	"time"

	"seekit/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ApplicationRepository struct{}

func (r *ApplicationRepository) CreateApplication(application *Application) error {
	if application.ID == uuid.Nil {
		application.ID = uuid.New()
	}
	if application.AppliedAt.IsZero() {
		application.AppliedAt = time.Now().UTC()
	}

	return storage.GetDb().Create(application).Error
}

func (r *ApplicationRepository) GetApplicationByID(applicationID uuid.UUID) (*Application, error) {
	var application Application

	if err := storage.GetDb().Where("id = ?", applicationID).First(&application).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}

		return nil, err
	}

	return &application, nil
}

func (r *ApplicationRepository) GetExistingApplication(
	jobID, freelancerID uuid.UUID,
) (*Application, error) {
	var application Application

	err := storage.GetDb().
		Where("job_id = ? AND freelancer_id = ?", jobID, freelancerID).
		First(&application).Error

	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}

		return nil, err
	}

	return &application, nil
}

func (r *ApplicationRepository) UpdateApplicationStatus(
	applicationID uuid.UUID,
	status ApplicationStatus,
) error {
	return r.UpdateApplicationStatusInTx(storage.GetDb(), applicationID, status)
}

func (r *ApplicationRepository) UpdateApplicationStatusInTx(
	tx *gorm.DB,
	applicationID uuid.UUID,
	status ApplicationStatus,
) error {
	return tx.Model(&Application{}).
		Where("id = ?", applicationID).
		Update("status", status).Error
}

func (r *ApplicationRepository) DeleteApplication(applicationID uuid.UUID) error {
	return storage.GetDb().Delete(&Application{}, applicationID).Error
}

func (r *ApplicationRepository) GetApplicationsByJob(jobID uuid.UUID) ([]*ApplicationDTO, error) {
	var results = make([]*ApplicationDTO, 0)

	err := storage.GetDb().
		Table("applications a").
		Select("a.id, a.job_id, j.title as job_title, a.freelancer_id, u.name as freelancer_name, a.cover_letter, a.status, a.applied_at").
		Joins("JOIN jobs j ON a.job_id = j.id").
		Joins("JOIN users u ON a.freelancer_id = u.id").
		Where("a.job_id = ?", jobID).
		Order("a.applied_at DESC").
		Scan(&results).Error

	return results, err
}

func (r *ApplicationRepository) GetApplicationsByFreelancer(
	freelancerID uuid.UUID,
) ([]*ApplicationDTO, error) {
	var results = make([]*ApplicationDTO, 0)

	err := storage.GetDb().
		Table("applications a").
		Select("a.id, a.job_id, j.title as job_title, a.freelancer_id, u.name as freelancer_name, a.cover_letter, a.status, a.applied_at").
		Joins("JOIN jobs j ON a.job_id = j.id").
		Joins("JOIN users u ON a.freelancer_id = u.id").
		Where("a.freelancer_id = ?", freelancerID).
		Order("a.applied_at DESC").
		Scan(&results).Error

	return results, err
}
