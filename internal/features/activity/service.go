package activity

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ActivityService struct {
	activityRepository *ActivityRepository
	logger             *slog.Logger
}

// WriteActivity appends an entry outside of any transaction.
// Failures are logged, not returned: the trail must never block the
// operation it describes.
func (s *ActivityService) WriteActivity(
	projectID uuid.UUID,
	userID uuid.UUID,
	activityType string,
	description string,
) {
	entry := &ActivityEntry{
		ProjectID:   projectID,
		UserID:      userID,
		Type:        activityType,
		Description: description,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.activityRepository.Create(entry); err != nil {
		s.logger.Error("failed to write activity entry", "error", err, "type", activityType)
	}
}

// WriteActivityInTx appends an entry inside the caller's transaction;
// the error is returned so the caller can roll the whole unit back.
func (s *ActivityService) WriteActivityInTx(
	tx *gorm.DB,
	projectID uuid.UUID,
	userID uuid.UUID,
	activityType string,
	description string,
) error {
	entry := &ActivityEntry{
		ProjectID:   projectID,
		UserID:      userID,
		Type:        activityType,
		Description: description,
		CreatedAt:   time.Now().UTC(),
	}

	return s.activityRepository.CreateInTx(tx, entry)
}

func (s *ActivityService) GetProjectActivity(
	projectID uuid.UUID,
	request *GetActivityRequest,
) (*GetActivityResponse, error) {
	limit := request.Limit
	if limit <= 0 || limit > 1000 {
		limit = 100
	}

	offset := max(request.Offset, 0)

	entries, err := s.activityRepository.GetByProject(projectID, limit, offset, request.BeforeDate)
	if err != nil {
		return nil, err
	}

	total, err := s.activityRepository.CountByProject(projectID, request.BeforeDate)
	if err != nil {
		return nil, err
	}

	return &GetActivityResponse{
		Entries: entries,
		Total:   total,
		Limit:   limit,
		Offset:  offset,
	}, nil
}
