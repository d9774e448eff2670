package workspace_models

import (
	"time"

	workspace_enums "seekit/internal/features/workspace/enums"

	"github.com/google/uuid"
)

// Project is the workspace spawned for one accepted application.
// Progress is always floor(100 * approved milestones / total milestones);
// the project is completed if and only if progress reaches 100.
type Project struct {
	ID                 uuid.UUID                     `json:"id"                 gorm:"column:id"`
	JobID              uuid.UUID                     `json:"jobId"              gorm:"column:job_id"`
	FreelancerID       uuid.UUID                     `json:"freelancerId"       gorm:"column:freelancer_id"`
	ClientID           uuid.UUID                     `json:"clientId"           gorm:"column:client_id"`
	Status             workspace_enums.ProjectStatus `json:"status"             gorm:"column:status"`
	ProgressPercentage int                           `json:"progressPercentage" gorm:"column:progress_percentage"`
	CreatedAt          time.Time                     `json:"createdAt"          gorm:"column:created_at"`
	CompletedAt        *time.Time                    `json:"completedAt"        gorm:"column:completed_at"`
}

func (Project) TableName() string {
	return "projects"
}

func (p *Project) IsActive() bool {
	return p.Status == workspace_enums.ProjectStatusActive
}

func (p *Project) IsParticipant(userID uuid.UUID) bool {
	return p.FreelancerID == userID || p.ClientID == userID
}
