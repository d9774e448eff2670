package jobs

import (
	"time"

	"github.com/google/uuid"
)

type CreateJobRequestDTO struct {
	Title          string     `json:"title"          binding:"required"`
	Description    string     `json:"description"    binding:"required"`
	RequiredSkills []string   `json:"requiredSkills"`
	BudgetMin      float64    `json:"budgetMin"      binding:"min=0"`
	BudgetMax      float64    `json:"budgetMax"      binding:"min=0"`
	Deadline       *time.Time `json:"deadline"`
}

type UpdateJobRequestDTO struct {
	Title          *string    `json:"title"`
	Description    *string    `json:"description"`
	RequiredSkills []string   `json:"requiredSkills"`
	BudgetMin      *float64   `json:"budgetMin"`
	BudgetMax      *float64   `json:"budgetMax"`
	Deadline       *time.Time `json:"deadline"`
}

type ListJobsRequestDTO struct {
	Status *JobStatus `form:"status" json:"status"`
	Limit  int        `form:"limit"  json:"limit"`
	Offset int        `form:"offset" json:"offset"`
}

type SearchJobsRequestDTO struct {
	Keywords  string   `form:"keywords"  json:"keywords"`
	MinBudget *float64 `form:"minBudget" json:"minBudget"`
	MaxBudget *float64 `form:"maxBudget" json:"maxBudget"`
	Limit     int      `form:"limit"     json:"limit"`
	Offset    int      `form:"offset"    json:"offset"`
}

type ListJobsResponseDTO struct {
	Jobs  []*Job `json:"jobs"`
	Total int64  `json:"total"`
}

type CreateJobResponseDTO struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Status    JobStatus `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}
