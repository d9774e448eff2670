package activity

import (
	"time"

	"github.com/google/uuid"
)

// Activity type tags written by the workspace engine.
const (
	TypeWorkspaceCreated     = "workspace_created"
	TypeDeliverableSubmitted = "deliverable_submitted"
	TypeMilestoneApproved    = "milestone_approved"
	TypeRevisionRequested    = "revision_requested"
	TypeProjectDisputed      = "project_disputed"
)

// ActivityEntry is append-only: rows are inserted and read,
// never updated or deleted.
type ActivityEntry struct {
	ID          uuid.UUID `json:"id"          gorm:"column:id"`
	ProjectID   uuid.UUID `json:"projectId"   gorm:"column:project_id"`
	UserID      uuid.UUID `json:"userId"      gorm:"column:user_id"`
	Type        string    `json:"type"        gorm:"column:activity_type"`
	Description string    `json:"description" gorm:"column:description"`
	CreatedAt   time.Time `json:"createdAt"   gorm:"column:created_at"`
}

func (ActivityEntry) TableName() string {
	return "activity_log"
}
