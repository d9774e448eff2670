package reviews

import (
	"time"

	"seekit/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ReviewRepository struct{}

func (r *ReviewRepository) CreateReview(review *Review) error {
	if review.ID == uuid.Nil {
		review.ID = uuid.New()
	}
	if review.CreatedAt.IsZero() {
		review.CreatedAt = time.Now().UTC()
	}

	return storage.GetDb().Create(review).Error
}

func (r *ReviewRepository) GetExistingReview(projectID, reviewerID uuid.UUID) (*Review, error) {
	var review Review

	err := storage.GetDb().
		Where("project_id = ? AND reviewer_id = ?", projectID, reviewerID).
		First(&review).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}

		return nil, err
	}

	return &review, nil
}

func (r *ReviewRepository) GetReviewsForUser(revieweeID uuid.UUID) ([]*ReviewDTO, int64, error) {
	var reviews []*ReviewDTO
	var total int64

	err := storage.GetDb().Model(&Review{}).
		Where("reviewee_id = ?", revieweeID).
		Count(&total).Error
	if err != nil {
		return nil, 0, err
	}

	err = storage.GetDb().
		Raw(`
			SELECT r.id, r.project_id, r.reviewer_id, u.name AS reviewer_name,
			       r.rating, r.comment, r.created_at
			FROM reviews r
			LEFT JOIN users u ON u.id = r.reviewer_id
			WHERE r.reviewee_id = ?
			ORDER BY r.created_at DESC`,
			revieweeID,
		).
		Scan(&reviews).Error
	if err != nil {
		return nil, 0, err
	}

	return reviews, total, nil
}

func (r *ReviewRepository) GetRatingStats(revieweeID uuid.UUID) (count int64, average *float64, err error) {
	var row struct {
		ReviewCount   int64    `gorm:"column:review_count"`
		AverageRating *float64 `gorm:"column:average_rating"`
	}

	err = storage.GetDb().
		Raw(`
			SELECT COUNT(*) AS review_count, AVG(rating) AS average_rating
			FROM reviews
			WHERE reviewee_id = ?`,
			revieweeID,
		).
		Scan(&row).Error
	if err != nil {
		return 0, nil, err
	}

	return row.ReviewCount, row.AverageRating, nil
}

// GetPortfolioItems lists the freelancer's completed projects with the
// client's rating where one exists, most recently completed first.
func (r *ReviewRepository) GetPortfolioItems(freelancerID uuid.UUID) ([]*PortfolioItemDTO, error) {
	var items []*PortfolioItemDTO

	err := storage.GetDb().
		Raw(`
			SELECT p.id AS project_id, p.job_id, j.title AS job_title,
			       c.name AS client_name, p.completed_at, r.rating
			FROM projects p
			LEFT JOIN jobs j ON j.id = p.job_id
			LEFT JOIN users c ON c.id = p.client_id
			LEFT JOIN reviews r ON r.project_id = p.id AND r.reviewee_id = p.freelancer_id
			WHERE p.freelancer_id = ? AND p.status = 'completed'
			ORDER BY p.completed_at DESC`,
			freelancerID,
		).
		Scan(&items).Error

	return items, err
}

// GetCompletedJobSkills returns the raw skill strings of the jobs behind
// the freelancer's completed projects.
func (r *ReviewRepository) GetCompletedJobSkills(freelancerID uuid.UUID) ([]string, error) {
	var rawSkills []string

	err := storage.GetDb().
		Raw(`
			SELECT j.required_skills_raw
			FROM projects p
			JOIN jobs j ON j.id = p.job_id
			WHERE p.freelancer_id = ? AND p.status = 'completed'
			  AND j.required_skills_raw IS NOT NULL AND j.required_skills_raw != ''`,
			freelancerID,
		).
		Scan(&rawSkills).Error

	return rawSkills, err
}

func (r *ReviewRepository) CountCompletedProjects(freelancerID uuid.UUID) (int64, error) {
	var total int64

	err := storage.GetDb().
		Raw(`
			SELECT COUNT(*) FROM projects
			WHERE freelancer_id = ? AND status = 'completed'`,
			freelancerID,
		).
		Scan(&total).Error

	return total, err
}
