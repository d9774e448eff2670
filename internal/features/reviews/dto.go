package reviews

import (
	"time"

	"github.com/google/uuid"
)

type CreateReviewRequestDTO struct {
	Rating  int    `json:"rating"  binding:"required,min=1,max=5"`
	Comment string `json:"comment"`
}

type CreateReviewResponseDTO struct {
	ReviewID   uuid.UUID `json:"reviewId"`
	ProjectID  uuid.UUID `json:"projectId"`
	RevieweeID uuid.UUID `json:"revieweeId"`
}

type ReviewDTO struct {
	ID           uuid.UUID `json:"id"           gorm:"column:id"`
	ProjectID    uuid.UUID `json:"projectId"    gorm:"column:project_id"`
	ReviewerID   uuid.UUID `json:"reviewerId"   gorm:"column:reviewer_id"`
	ReviewerName string    `json:"reviewerName" gorm:"column:reviewer_name"`
	Rating       int       `json:"rating"       gorm:"column:rating"`
	Comment      string    `json:"comment"      gorm:"column:comment"`
	CreatedAt    time.Time `json:"createdAt"    gorm:"column:created_at"`
}

type ListReviewsResponseDTO struct {
	Reviews []*ReviewDTO `json:"reviews"`
	Total   int64        `json:"total"`
}

// PortfolioItemDTO is one completed project on a freelancer's portfolio,
// with the rating its client left (nil when unreviewed).
type PortfolioItemDTO struct {
	ProjectID   uuid.UUID  `json:"projectId"   gorm:"column:project_id"`
	JobID       uuid.UUID  `json:"jobId"       gorm:"column:job_id"`
	JobTitle    string     `json:"jobTitle"    gorm:"column:job_title"`
	ClientName  string     `json:"clientName"  gorm:"column:client_name"`
	CompletedAt *time.Time `json:"completedAt" gorm:"column:completed_at"`
	Rating      *int       `json:"rating"      gorm:"column:rating"`
}

type PortfolioStatsDTO struct {
	CompletedProjects int64    `json:"completedProjects"`
	ReviewCount       int64    `json:"reviewCount"`
	AverageRating     *float64 `json:"averageRating"`
}

type PortfolioResponseDTO struct {
	FreelancerID   uuid.UUID           `json:"freelancerId"`
	FreelancerName string              `json:"freelancerName"`
	Items          []*PortfolioItemDTO `json:"items"`
	Stats          *PortfolioStatsDTO  `json:"stats"`
	Skills         []string            `json:"skills"`
}
