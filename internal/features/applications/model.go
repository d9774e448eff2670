package applications

import (
	"time"

	"github.com/google/uuid"
)

type ApplicationStatus string

const (
	ApplicationStatusPending  ApplicationStatus = "pending"
	ApplicationStatusAccepted ApplicationStatus = "accepted"
	ApplicationStatusRejected ApplicationStatus = "rejected"
)

type Application struct {
	ID           uuid.UUID         `json:"id"           gorm:"column:id"`
	JobID        uuid.UUID         `json:"jobId"        gorm:"column:job_id"`
	FreelancerID uuid.UUID         `json:"freelancerId" gorm:"column:freelancer_id"`
	CoverLetter  string            `json:"coverLetter"  gorm:"column:cover_letter"`
	Status       ApplicationStatus `json:"status"       gorm:"column:status"`
	AppliedAt    time.Time         `json:"appliedAt"    gorm:"column:applied_at"`
}

func (Application) TableName() string {
	return "applications"
}

func (a *Application) IsPending() bool {
	return a.Status == ApplicationStatusPending
}
