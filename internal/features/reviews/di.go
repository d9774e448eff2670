package reviews

import (
	users_repositories "seekit/internal/features/users/repositories"
	workspace_services "seekit/internal/features/workspace/services"
)

var reviewRepository = &ReviewRepository{}

var reviewService = &ReviewService{
	reviewRepository: reviewRepository,
	userRepository:   &users_repositories.UserRepository{},
	workspaceService: workspace_services.GetWorkspaceService(),
}

var reviewController = &ReviewController{
	reviewService: reviewService,
}

func GetReviewService() *ReviewService {
	return reviewService
}

func GetReviewController() *ReviewController {
	return reviewController
}
