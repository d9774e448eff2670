package workspace_repositories

import (
	workspace_enums "seekit/internal/features/workspace/enums"
	workspace_models "seekit/internal/features/workspace/models"
	"seekit/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MilestoneRepository struct{}

func (r *MilestoneRepository) CreateMilestonesInTx(
	tx *gorm.DB,
	milestones []*workspace_models.Milestone,
) error {
	for _, milestone := range milestones {
		if milestone.ID == uuid.Nil {
			milestone.ID = uuid.New()
		}
	}

	return tx.Create(milestones).Error
}

func (r *MilestoneRepository) GetMilestoneByID(milestoneID uuid.UUID) (*workspace_models.Milestone, error) {
	return r.GetMilestoneByIDInTx(storage.GetDb(), milestoneID)
}

func (r *MilestoneRepository) GetMilestoneByIDInTx(
	tx *gorm.DB,
	milestoneID uuid.UUID,
) (*workspace_models.Milestone, error) {
	var milestone workspace_models.Milestone

	if err := tx.Where("id = ?", milestoneID).First(&milestone).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}

		return nil, err
	}

	return &milestone, nil
}

func (r *MilestoneRepository) GetMilestonesByProject(
	projectID uuid.UUID,
) ([]*workspace_models.Milestone, error) {
	var milestones []*workspace_models.Milestone

	err := storage.GetDb().
		Where("project_id = ?", projectID).
		Order("order_number ASC").
		Find(&milestones).Error

	return milestones, err
}

// UpdateMilestoneStatusIfNotApprovedInTx moves a milestone to the given
// status unless it is already approved. Approved milestones never leave
// that state; the returned flag reports whether a row changed.
func (r *MilestoneRepository) UpdateMilestoneStatusIfNotApprovedInTx(
	tx *gorm.DB,
	milestoneID uuid.UUID,
	status workspace_enums.MilestoneStatus,
) (bool, error) {
	result := tx.Model(&workspace_models.Milestone{}).
		Where("id = ? AND status != ?", milestoneID, workspace_enums.MilestoneStatusApproved).
		Update("status", status)

	return result.RowsAffected > 0, result.Error
}

func (r *MilestoneRepository) UpdateMilestoneStatusInTx(
	tx *gorm.DB,
	milestoneID uuid.UUID,
	status workspace_enums.MilestoneStatus,
) error {
	return tx.Model(&workspace_models.Milestone{}).
		Where("id = ?", milestoneID).
		Update("status", status).Error
}

func (r *MilestoneRepository) CountMilestonesByProjectInTx(
	tx *gorm.DB,
	projectID uuid.UUID,
) (total int64, approved int64, err error) {
	err = tx.Model(&workspace_models.Milestone{}).
		Where("project_id = ?", projectID).
		Count(&total).Error
	if err != nil {
		return 0, 0, err
	}

	err = tx.Model(&workspace_models.Milestone{}).
		Where("project_id = ? AND status = ?", projectID, workspace_enums.MilestoneStatusApproved).
		Count(&approved).Error
	if err != nil {
		return 0, 0, err
	}

	return total, approved, nil
}
