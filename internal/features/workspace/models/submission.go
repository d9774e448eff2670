package workspace_models

import (
	"time"

	"github.com/google/uuid"
)

// Submission is one deliverable version for a milestone. Version numbers
// are gapless and strictly increasing from 1 within a milestone; rows are
// immutable once written except for the client feedback field.
type Submission struct {
	ID                     uuid.UUID `json:"id"             gorm:"column:id"`
	MilestoneID            uuid.UUID `json:"milestoneId"    gorm:"column:milestone_id"`
	DeliverableDescription string    `json:"description"    gorm:"column:deliverable_description"`
	FilePath               *string   `json:"filePath"       gorm:"column:file_path"`
	VersionNumber          int       `json:"versionNumber"  gorm:"column:version_number"`
	ClientFeedback         *string   `json:"clientFeedback" gorm:"column:client_feedback"`
	CreatedAt              time.Time `json:"createdAt"      gorm:"column:created_at"`
}

func (Submission) TableName() string {
	return "submissions"
}
