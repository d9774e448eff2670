package reviews

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	users_models "seekit/internal/features/users/models"
	users_repositories "seekit/internal/features/users/repositories"
	workspace_services "seekit/internal/features/workspace/services"

	"github.com/google/uuid"
)

type ReviewService struct {
	reviewRepository *ReviewRepository
	userRepository   *users_repositories.UserRepository
	workspaceService *workspace_services.WorkspaceService
}

// CreateReview leaves a rating for the other party of a completed
// project. Each participant can review a project once.
func (s *ReviewService) CreateReview(
	projectID uuid.UUID,
	reviewer *users_models.User,
	request *CreateReviewRequestDTO,
) (*CreateReviewResponseDTO, error) {
	project, err := s.workspaceService.GetProject(projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	if project == nil {
		return nil, errors.New("project not found")
	}

	if !project.IsParticipant(reviewer.ID) {
		return nil, errors.New("only project participants can leave reviews")
	}

	if project.CompletedAt == nil {
		return nil, errors.New("only completed projects can be reviewed")
	}

	existing, err := s.reviewRepository.GetExistingReview(projectID, reviewer.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing review: %w", err)
	}
	if existing != nil {
		return nil, errors.New("you have already reviewed this project")
	}

	revieweeID := project.FreelancerID
	if reviewer.ID == project.FreelancerID {
		revieweeID = project.ClientID
	}

	review := &Review{
		ProjectID:  projectID,
		ReviewerID: reviewer.ID,
		RevieweeID: revieweeID,
		Rating:     request.Rating,
		Comment:    request.Comment,
	}

	if err := s.reviewRepository.CreateReview(review); err != nil {
		return nil, fmt.Errorf("failed to create review: %w", err)
	}

	return &CreateReviewResponseDTO{
		ReviewID:   review.ID,
		ProjectID:  projectID,
		RevieweeID: revieweeID,
	}, nil
}

func (s *ReviewService) GetFreelancerReviews(freelancerID uuid.UUID) (*ListReviewsResponseDTO, error) {
	reviews, total, err := s.reviewRepository.GetReviewsForUser(freelancerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}

	return &ListReviewsResponseDTO{
		Reviews: reviews,
		Total:   total,
	}, nil
}

// GetPortfolio assembles a freelancer's public portfolio: completed
// projects with ratings, aggregate stats and the skills exercised
// across those projects.
func (s *ReviewService) GetPortfolio(freelancerID uuid.UUID) (*PortfolioResponseDTO, error) {
	freelancer, err := s.userRepository.GetUserByID(freelancerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if freelancer == nil || !freelancer.IsFreelancer() {
		return nil, nil
	}

	items, err := s.reviewRepository.GetPortfolioItems(freelancerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get portfolio items: %w", err)
	}

	completedCount, err := s.reviewRepository.CountCompletedProjects(freelancerID)
	if err != nil {
		return nil, fmt.Errorf("failed to count completed projects: %w", err)
	}

	reviewCount, averageRating, err := s.reviewRepository.GetRatingStats(freelancerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get rating stats: %w", err)
	}

	rawSkills, err := s.reviewRepository.GetCompletedJobSkills(freelancerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get job skills: %w", err)
	}

	return &PortfolioResponseDTO{
		FreelancerID:   freelancerID,
		FreelancerName: freelancer.Name,
		Items:          items,
		Stats: &PortfolioStatsDTO{
			CompletedProjects: completedCount,
			ReviewCount:       reviewCount,
			AverageRating:     averageRating,
		},
		Skills: mergeSkills(rawSkills),
	}, nil
}

// mergeSkills dedupes comma-joined skill strings case-insensitively,
// keeping the first spelling seen, sorted for stable output.
func mergeSkills(rawSkills []string) []string {
	seen := make(map[string]string)

	for _, raw := range rawSkills {
		for _, skill := range strings.Split(raw, ",") {
			skill = strings.TrimSpace(skill)
			if skill == "" {
				continue
			}

			key := strings.ToLower(skill)
			if _, exists := seen[key]; !exists {
				seen[key] = skill
			}
		}
	}

	skills := make([]string, 0, len(seen))
	for _, skill := range seen {
		skills = append(skills, skill)
	}
	sort.Strings(skills)

	return skills
}
