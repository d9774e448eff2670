package applications

import (
	"time"

	"github.com/google/uuid"
)

type SubmitApplicationRequestDTO struct {
	CoverLetter string `json:"coverLetter" binding:"required"`
}

type SubmitApplicationResponseDTO struct {
	ID        uuid.UUID         `json:"id"`
	JobID     uuid.UUID         `json:"jobId"`
	Status    ApplicationStatus `json:"status"`
	AppliedAt time.Time         `json:"appliedAt"`
}

// ApplicationDTO is an application joined with display fields.
type ApplicationDTO struct {
	ID             uuid.UUID         `json:"id"`
	JobID          uuid.UUID         `json:"jobId"`
	JobTitle       string            `json:"jobTitle"`
	FreelancerID   uuid.UUID         `json:"freelancerId"`
	FreelancerName string            `json:"freelancerName"`
	CoverLetter    string            `json:"coverLetter"`
	Status         ApplicationStatus `json:"status"`
	AppliedAt      time.Time         `json:"appliedAt"`
}

type ListApplicationsResponseDTO struct {
	Applications []*ApplicationDTO `json:"applications"`
	Total        int64             `json:"total"`
}

type AcceptApplicationResponseDTO struct {
	ApplicationID uuid.UUID `json:"applicationId"`
	ProjectID     uuid.UUID `json:"projectId"`
}
