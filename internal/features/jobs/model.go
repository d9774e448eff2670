package jobs

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type JobStatus string

const (
	JobStatusOpen       JobStatus = "open"
	JobStatusInProgress JobStatus = "in_progress"
	JobStatusClosed     JobStatus = "closed"
)

func (s JobStatus) IsValid() bool {
	switch s {
	case JobStatusOpen, JobStatusInProgress, JobStatusClosed:
		return true
	default:
		return false
	}
}

type Job struct {
	ID          uuid.UUID  `json:"id"          gorm:"column:id"`
	ClientID    uuid.UUID  `json:"clientId"    gorm:"column:client_id"`
	Title       string     `json:"title"       gorm:"column:title"`
	Description string     `json:"description" gorm:"column:description"`
	BudgetMin   float64    `json:"budgetMin"   gorm:"column:budget_min"`
	BudgetMax   float64    `json:"budgetMax"   gorm:"column:budget_max"`
	Deadline    *time.Time `json:"deadline"    gorm:"column:deadline"`
	Status      JobStatus  `json:"status"      gorm:"column:status"`
	CreatedAt   time.Time  `json:"createdAt"   gorm:"column:created_at"`

	RequiredSkillsRaw string   `json:"-"              gorm:"column:required_skills_raw"`
	RequiredSkills    []string `json:"requiredSkills" gorm:"-"`

	// Used for caching non-existent jobs
	IsNotExists bool `json:"isNotExists,omitempty" gorm:"-"`
}

func (Job) TableName() string {
	return "jobs"
}

func (j *Job) BeforeSave(tx *gorm.DB) error {
	if len(j.RequiredSkills) > 0 {
		j.RequiredSkillsRaw = strings.Join(j.RequiredSkills, ",")
	} else {
		j.RequiredSkillsRaw = ""
	}

	return nil
}

func (j *Job) AfterFind(tx *gorm.DB) error {
	if j.RequiredSkillsRaw != "" {
		j.RequiredSkills = strings.Split(j.RequiredSkillsRaw, ",")
		for i, skill := range j.RequiredSkills {
			j.RequiredSkills[i] = strings.TrimSpace(skill)
		}
	} else {
		j.RequiredSkills = []string{}
	}

	return nil
}

func (j *Job) IsOpen() bool {
	return j.Status == JobStatusOpen
}
