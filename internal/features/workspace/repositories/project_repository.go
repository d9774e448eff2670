package workspace_repositories

import (
	"time"

	workspace_dto "seekit/internal/features/workspace/dto"
	workspace_enums "seekit/internal/features/workspace/enums"
	workspace_models "seekit/internal/features/workspace/models"
	"seekit/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProjectRepository struct{}

func (r *ProjectRepository) CreateProjectInTx(tx *gorm.DB, project *workspace_models.Project) error {
	if project.ID == uuid.Nil {
		project.ID = uuid.New()
	}
	if project.CreatedAt.IsZero() {
		project.CreatedAt = time.Now().UTC()
	}

	return tx.Create(project).Error
}

func (r *ProjectRepository) GetProjectByID(projectID uuid.UUID) (*workspace_models.Project, error) {
	return r.GetProjectByIDInTx(storage.GetDb(), projectID)
}

func (r *ProjectRepository) GetProjectByIDInTx(
	tx *gorm.DB,
	projectID uuid.UUID,
) (*workspace_models.Project, error) {
	var project workspace_models.Project

	if err := tx.Where("id = ?", projectID).First(&project).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}

		return nil, err
	}

	return &project, nil
}

const projectDTOSelect = `
	SELECT
		p.id, p.job_id, j.title AS job_title,
		p.freelancer_id, f.name AS freelancer_name,
		p.client_id, c.name AS client_name,
		p.status, p.progress_percentage, p.created_at, p.completed_at
	FROM projects p
	LEFT JOIN jobs j ON j.id = p.job_id
	LEFT JOIN users f ON f.id = p.freelancer_id
	LEFT JOIN users c ON c.id = p.client_id`

func (r *ProjectRepository) GetProjectDTOByID(projectID uuid.UUID) (*workspace_dto.ProjectDTO, error) {
	var row projectDTORow

	err := storage.GetDb().
		Raw(projectDTOSelect+" WHERE p.id = ?", projectID).
		Scan(&row).Error
	if err != nil {
		return nil, err
	}
	if row.ID == uuid.Nil {
		return nil, nil
	}

	return row.toDTO(), nil
}

func (r *ProjectRepository) GetProjectDTOsByFreelancer(
	freelancerID uuid.UUID,
	status *workspace_enums.ProjectStatus,
) ([]*workspace_dto.ProjectDTO, error) {
	query := projectDTOSelect + " WHERE p.freelancer_id = ?"
	args := []any{freelancerID}

	if status != nil {
		query += " AND p.status = ?"
		args = append(args, *status)
	}
	query += " ORDER BY p.created_at DESC"

	return r.scanProjectDTOs(query, args...)
}

func (r *ProjectRepository) GetProjectDTOsByClient(
	clientID uuid.UUID,
	status *workspace_enums.ProjectStatus,
) ([]*workspace_dto.ProjectDTO, error) {
	query := projectDTOSelect + " WHERE p.client_id = ?"
	args := []any{clientID}

	if status != nil {
		query += " AND p.status = ?"
		args = append(args, *status)
	}
	query += " ORDER BY p.created_at DESC"

	return r.scanProjectDTOs(query, args...)
}

// GetCompletedProjectDTOsByFreelancer returns the freelancer's completed
// projects, most recently completed first. Used for portfolio views.
func (r *ProjectRepository) GetCompletedProjectDTOsByFreelancer(
	freelancerID uuid.UUID,
) ([]*workspace_dto.ProjectDTO, error) {
	query := projectDTOSelect +
		" WHERE p.freelancer_id = ? AND p.status = ? ORDER BY p.completed_at DESC"

	return r.scanProjectDTOs(query, freelancerID, workspace_enums.ProjectStatusCompleted)
}

func (r *ProjectRepository) scanProjectDTOs(query string, args ...any) ([]*workspace_dto.ProjectDTO, error) {
	var rows []projectDTORow

	if err := storage.GetDb().Raw(query, args...).Scan(&rows).Error; err != nil {
		return nil, err
	}

	projects := make([]*workspace_dto.ProjectDTO, 0, len(rows))
	for i := range rows {
		projects = append(projects, rows[i].toDTO())
	}

	return projects, nil
}

func (r *ProjectRepository) UpdateProjectProgressInTx(
	tx *gorm.DB,
	projectID uuid.UUID,
	progress int,
	status workspace_enums.ProjectStatus,
	completedAt *time.Time,
) error {
	return tx.Model(&workspace_models.Project{}).
		Where("id = ?", projectID).
		Updates(map[string]any{
			"progress_percentage": progress,
			"status":              status,
			"completed_at":        completedAt,
		}).Error
}

func (r *ProjectRepository) UpdateProjectStatusInTx(
	tx *gorm.DB,
	projectID uuid.UUID,
	status workspace_enums.ProjectStatus,
) error {
	return tx.Model(&workspace_models.Project{}).
		Where("id = ?", projectID).
		Update("status", status).Error
}

type projectDTORow struct {
	ID                 uuid.UUID                     `gorm:"column:id"`
	JobID              uuid.UUID                     `gorm:"column:job_id"`
	JobTitle           string                        `gorm:"column:job_title"`
	FreelancerID       uuid.UUID                     `gorm:"column:freelancer_id"`
	FreelancerName     string                        `gorm:"column:freelancer_name"`
	ClientID           uuid.UUID                     `gorm:"column:client_id"`
	ClientName         string                        `gorm:"column:client_name"`
	Status             workspace_enums.ProjectStatus `gorm:"column:status"`
	ProgressPercentage int                           `gorm:"column:progress_percentage"`
	CreatedAt          time.Time                     `gorm:"column:created_at"`
	CompletedAt        *time.Time                    `gorm:"column:completed_at"`
}

func (row *projectDTORow) toDTO() *workspace_dto.ProjectDTO {
	return &workspace_dto.ProjectDTO{
		ID:                 row.ID,
		JobID:              row.JobID,
		JobTitle:           row.JobTitle,
		FreelancerID:       row.FreelancerID,
		FreelancerName:     row.FreelancerName,
		ClientID:           row.ClientID,
		ClientName:         row.ClientName,
		Status:             row.Status,
		ProgressPercentage: row.ProgressPercentage,
		CreatedAt:          row.CreatedAt,
		CompletedAt:        row.CompletedAt,
	}
}
