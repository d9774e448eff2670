package workspace_models

import (
	"time"

	workspace_enums "seekit/internal/features/workspace/enums"

	"github.com/google/uuid"
)

// Milestone lifecycle: pending -> submitted -> approved | revision_requested;
// revision_requested -> submitted on resubmission; approved is terminal.
type Milestone struct {
	ID          uuid.UUID                       `json:"id"          gorm:"column:id"`
	ProjectID   uuid.UUID                       `json:"projectId"   gorm:"column:project_id"`
	Name        string                          `json:"name"        gorm:"column:milestone_name"`
	Description string                          `json:"description" gorm:"column:description"`
	Status      workspace_enums.MilestoneStatus `json:"status"      gorm:"column:status"`
	OrderNumber int                             `json:"orderNumber" gorm:"column:order_number"`
	DueDate     *time.Time                      `json:"dueDate"     gorm:"column:due_date"`
}

func (Milestone) TableName() string {
	return "milestones"
}

func (m *Milestone) IsApproved() bool {
	return m.Status == workspace_enums.MilestoneStatusApproved
}
