package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mealsnap/backend/internal/service"
)

// RecommendationHandler generates and lists rule-based meal recommendations.
type RecommendationHandler struct {
	recommendations service.IRecommendationService
}

// NewRecommendationHandler creates a RecommendationHandler.
func NewRecommendationHandler(recommendations service.IRecommendationService) *RecommendationHandler {
	return &RecommendationHandler{recommendations: recommendations}
}

// RegisterRoutes registers recommendation routes on an authenticated group.
func (h *RecommendationHandler) RegisterRoutes(router *gin.RouterGroup) {
	recs := router.Group("/recommendations")
	{
		recs.POST("", h.Generate)
		recs.GET("", h.List)
	}
}

// Generate produces the three meal-slot recommendations from the user's
// stored targets. Users without a profile are refused rather than served
// defaults.
func (h *RecommendationHandler) Generate(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	recs, err := h.recommendations.Generate(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrProfileRequired) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Profile required. Save your profile before requesting recommendations."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate recommendations", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"recommendations": recs})
}

// List returns the persisted recommendation history.
func (h *RecommendationHandler) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	recs, err := h.recommendations.List(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch recommendations", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"recommendations": recs})
}
