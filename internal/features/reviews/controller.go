package reviews

import (
	"net/http"

	users_middleware "seekit/internal/features/users/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReviewController struct {
	reviewService *ReviewService
}

func (c *ReviewController) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/workspaces/:projectId/reviews", c.CreateReview)
	router.GET("/freelancers/:userId/portfolio", c.GetPortfolio)
	router.GET("/freelancers/:userId/reviews", c.ListFreelancerReviews)
}

// CreateReview
// @Summary Review a completed project
// @Description Leave a 1-5 rating for the project counterpart (participants only, once per project)
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param projectId path string true "Project ID"
// @Param request body CreateReviewRequestDTO true "Review"
// @Success 200 {object} CreateReviewResponseDTO
// @Failure 400
// @Failure 403
// @Router /workspaces/{projectId}/reviews [post]
func (c *ReviewController) CreateReview(ctx *gin.Context) {
	user, isOk := users_middleware.GetUserFromContext(ctx)
	if !isOk {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid user context"})
		return
	}

	projectID, err := uuid.Parse(ctx.Param("projectId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project ID"})
		return
	}

	var request CreateReviewRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	response, err := c.reviewService.CreateReview(projectID, user, &request)
	if err != nil {
		if err.Error() == "only project participants can leave reviews" {
			ctx.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
			return
		}
		if err.Error() == "project not found" {
			ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// GetPortfolio
// @Summary Get a freelancer's portfolio
// @Description Completed projects with ratings, aggregate stats and exercised skills
// @Tags reviews
// @Produce json
// @Security BearerAuth
// @Param userId path string true "Freelancer user ID"
// @Success 200 {object} PortfolioResponseDTO
// @Failure 404
// @Router /freelancers/{userId}/portfolio [get]
func (c *ReviewController) GetPortfolio(ctx *gin.Context) {
	freelancerID, err := uuid.Parse(ctx.Param("userId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	portfolio, err := c.reviewService.GetPortfolio(freelancerID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get portfolio"})
		return
	}
	if portfolio == nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Freelancer not found"})
		return
	}

	ctx.JSON(http.StatusOK, portfolio)
}

// ListFreelancerReviews
// @Summary List reviews received by a freelancer
// @Tags reviews
// @Produce json
// @Security BearerAuth
// @Param userId path string true "Freelancer user ID"
// @Success 200 {object} ListReviewsResponseDTO
// @Router /freelancers/{userId}/reviews [get]
func (c *ReviewController) ListFreelancerReviews(ctx *gin.Context) {
	freelancerID, err := uuid.Parse(ctx.Param("userId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	response, err := c.reviewService.GetFreelancerReviews(freelancerID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list reviews"})
		return
	}

	ctx.JSON(http.StatusOK, response)
}
