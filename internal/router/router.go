package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mealsnap/backend/internal/api"
	"github.com/mealsnap/backend/internal/middleware"
)

// Handlers collects the API handlers wired into the router. Nil handlers
// leave their routes unregistered, which keeps tests and reduced deployments
// (no Redis, no S3) working.
type Handlers struct {
	Detection       *api.DetectionHandler
	Drafts          *api.DraftHandler
	Meals           *api.MealHandler
	Profile         *api.ProfileHandler
	Recommendations *api.RecommendationHandler
	Images          *api.ImageHandler
}

// SetupRouter configures the application routes. rateLimit may be nil.
func SetupRouter(h Handlers, validator middleware.TokenValidator, rateLimit *middleware.RateLimiter) *gin.Engine {
	router := gin.Default()

	router.Use(middleware.CORS())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")
	v1.Use(middleware.AuthMiddleware(validator))

	if h.Detection != nil {
		if rateLimit != nil {
			v1.POST("/detect-food", rateLimit.RateLimitMiddleware(), h.Detection.DetectFood)
		} else {
			h.Detection.RegisterRoutes(v1)
		}
	}
	if h.Drafts != nil {
		h.Drafts.RegisterRoutes(v1)
	}
	if h.Meals != nil {
		h.Meals.RegisterRoutes(v1)
	}
	if h.Profile != nil {
		h.Profile.RegisterRoutes(v1)
	}
	if h.Recommendations != nil {
		h.Recommendations.RegisterRoutes(v1)
	}
	if h.Images != nil {
		h.Images.RegisterRoutes(v1)
	}

	return router
}
