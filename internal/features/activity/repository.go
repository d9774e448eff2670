package activity

import (
	"time"

	"seekit/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ActivityRepository struct{}

func (r *ActivityRepository) Create(entry *ActivityEntry) error {
	return r.CreateInTx(storage.GetDb(), entry)
}

// CreateInTx writes an entry inside an open transaction so the trail
// stays consistent with the state change it describes.
func (r *ActivityRepository) CreateInTx(tx *gorm.DB, entry *ActivityEntry) error {
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}

	return tx.Create(entry).Error
}

func (r *ActivityRepository) GetByProject(
	projectID uuid.UUID,
	limit, offset int,
	beforeDate *time.Time,
) ([]*ActivityEntryDTO, error) {
	var entries = make([]*ActivityEntryDTO, 0)

	sql := `
		SELECT
			a.id,
			a.project_id,
			a.user_id,
			a.activity_type,
			a.description,
			a.created_at,
			u.name as user_name
		FROM activity_log a
		LEFT JOIN users u ON a.user_id = u.id
		WHERE a.project_id = ?`

	args := []interface{}{projectID}

	if beforeDate != nil {
		sql += " AND a.created_at < ?"
		args = append(args, *beforeDate)
	}

	sql += " ORDER BY a.created_at DESC LIMIT ? OFFSET ?"
	args = append(args, limit, offset)

	err := storage.GetDb().Raw(sql, args...).Scan(&entries).Error

	return entries, err
}

func (r *ActivityRepository) CountByProject(projectID uuid.UUID, beforeDate *time.Time) (int64, error) {
	var count int64
	query := storage.GetDb().Model(&ActivityEntry{}).Where("project_id = ?", projectID)

	if beforeDate != nil {
		query = query.Where("created_at < ?", *beforeDate)
	}

	err := query.Count(&count).Error
	return count, err
}
