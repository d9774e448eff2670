package workspace_repositories

import (
	"time"

	workspace_models "seekit/internal/features/workspace/models"
	"seekit/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SubmissionRepository struct{}

// CreateSubmissionInTx assigns the next version number for the milestone
// and inserts the row. Versions start at 1 and are assigned inside the
// caller's transaction, so they come out gapless under concurrency.
func (r *SubmissionRepository) CreateSubmissionInTx(
	tx *gorm.DB,
	submission *workspace_models.Submission,
) error {
	var maxVersion int

	err := tx.Model(&workspace_models.Submission{}).
		Where("milestone_id = ?", submission.MilestoneID).
		Select("COALESCE(MAX(version_number), 0)").
		Scan(&maxVersion).Error
	if err != nil {
		return err
	}

	if submission.ID == uuid.Nil {
		submission.ID = uuid.New()
	}
	if submission.CreatedAt.IsZero() {
		submission.CreatedAt = time.Now().UTC()
	}
	submission.VersionNumber = maxVersion + 1

	return tx.Create(submission).Error
}

func (r *SubmissionRepository) GetSubmissionsByMilestone(
	milestoneID uuid.UUID,
) ([]*workspace_models.Submission, int64, error) {
	var submissions []*workspace_models.Submission
	var total int64

	err := storage.GetDb().Model(&workspace_models.Submission{}).
		Where("milestone_id = ?", milestoneID).
		Count(&total).Error
	if err != nil {
		return nil, 0, err
	}

	err = storage.GetDb().
		Where("milestone_id = ?", milestoneID).
		Order("version_number DESC").
		Find(&submissions).Error
	if err != nil {
		return nil, 0, err
	}

	return submissions, total, nil
}

// SetLatestFeedbackInTx writes client feedback onto the newest submission
// of the milestone. Older versions keep whatever feedback they carried.
func (r *SubmissionRepository) SetLatestFeedbackInTx(
	tx *gorm.DB,
	milestoneID uuid.UUID,
	feedback string,
) error {
	return tx.Exec(`
		UPDATE submissions SET client_feedback = ?
		WHERE milestone_id = ?
		  AND version_number = (
			SELECT MAX(version_number) FROM submissions WHERE milestone_id = ?
		  )`,
		feedback, milestoneID, milestoneID,
	).Error
}
