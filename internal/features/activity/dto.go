package activity

import (
	"time"

	"github.com/google/uuid"
)

type GetActivityRequest struct {
	Limit      int        `form:"limit"      json:"limit"`
	Offset     int        `form:"offset"     json:"offset"`
	BeforeDate *time.Time `form:"beforeDate" json:"beforeDate"`
}

type ActivityEntryDTO struct {
	ID          uuid.UUID `json:"id"`
	ProjectID   uuid.UUID `json:"projectId"`
	UserID      uuid.UUID `json:"userId"`
	UserName    string    `json:"userName"`
	Type        string    `json:"type"        gorm:"column:activity_type"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

type GetActivityResponse struct {
	Entries []*ActivityEntryDTO `json:"entries"`
	Total   int64               `json:"total"`
	Limit   int                 `json:"limit"`
	Offset  int                 `json:"offset"`
}
