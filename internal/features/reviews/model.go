package reviews

import (
	"time"

	"github.com/google/uuid"
)

// Review is one rating left for the counterpart of a completed project.
// One review per (project, reviewer).
type Review struct {
	ID         uuid.UUID `json:"id"         gorm:"column:id"`
	ProjectID  uuid.UUID `json:"projectId"  gorm:"column:project_id"`
	ReviewerID uuid.UUID `json:"reviewerId" gorm:"column:reviewer_id"`
	RevieweeID uuid.UUID `json:"revieweeId" gorm:"column:reviewee_id"`
	Rating     int       `json:"rating"     gorm:"column:rating"`
	Comment    string    `json:"comment"    gorm:"column:comment"`
	CreatedAt  time.Time `json:"createdAt"  gorm:"column:created_at"`
}

func (Review) TableName() string {
	return "reviews"
}
