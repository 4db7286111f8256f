package api

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mealsnap/backend/internal/service"
	"github.com/mealsnap/backend/internal/types"
)

// Advisory messages returned with an empty result set so the client can
// prompt the user to add foods manually.
const (
	msgNoFoodsDetected = "No foods detected in this image. You can add foods manually."
	msgVisionFailed    = "We couldn't analyze this photo right now. You can add foods manually."
)

// DetectionHandler drives the image → candidates → enriched records flow.
type DetectionHandler struct {
	vision   service.IVisionService
	enricher service.IEnricher
	drafts   service.IDraftService
}

// NewDetectionHandler creates a DetectionHandler. drafts may be nil when no
// Redis is configured; detection still works, results are just not held for
// editing server-side.
func NewDetectionHandler(vision service.IVisionService, enricher service.IEnricher, drafts service.IDraftService) *DetectionHandler {
	return &DetectionHandler{
		vision:   vision,
		enricher: enricher,
		drafts:   drafts,
	}
}

// RegisterRoutes registers the detection route on an authenticated group.
func (h *DetectionHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/detect-food", h.DetectFood)
}

// DetectFood handles POST /detect-food. Upstream inference failures —
// network, auth, quota, timeouts, malformed output — degrade to an empty
// result with an advisory message, never a 5xx.
func (h *DetectionHandler) DetectFood(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req types.DetectFoodRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ImageURL == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Image URL is required"})
		return
	}

	candidates, err := h.vision.DetectFoods(c.Request.Context(), req.ImageURL)
	if err != nil {
		log.Printf("vision inference failed for user %s: %v", userID, err)
		c.JSON(http.StatusOK, types.DetectFoodResponse{
			Foods:   []types.EnrichedFoodRecord{},
			Message: msgVisionFailed,
		})
		return
	}

	if len(candidates) == 0 {
		c.JSON(http.StatusOK, types.DetectFoodResponse{
			Foods:   []types.EnrichedFoodRecord{},
			Message: msgNoFoodsDetected,
		})
		return
	}

	foods, err := h.enricher.Enrich(c.Request.Context(), candidates)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to enrich detected foods",
			"details": err.Error(),
		})
		return
	}

	resp := types.DetectFoodResponse{Foods: foods}

	if h.drafts != nil {
		draft := &service.DetectionDraft{
			UserID:   userID,
			ImageURL: req.ImageURL,
			Foods:    foods,
		}
		if err := h.drafts.SaveDraft(c.Request.Context(), draft); err != nil {
			// Draft storage is best-effort; the detection result still stands.
			log.Printf("failed to save detection draft for user %s: %v", userID, err)
		} else {
			resp.DraftID = draft.ID
		}
	}

	c.JSON(http.StatusOK, resp)
}
