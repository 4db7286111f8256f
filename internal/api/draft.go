package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mealsnap/backend/internal/service"
	"github.com/mealsnap/backend/internal/types"
)

// DraftHandler edits detection drafts between detection and meal save.
type DraftHandler struct {
	drafts service.IDraftService
}

// NewDraftHandler creates a DraftHandler.
func NewDraftHandler(drafts service.IDraftService) *DraftHandler {
	return &DraftHandler{drafts: drafts}
}

// RegisterRoutes registers the draft routes on an authenticated group.
func (h *DraftHandler) RegisterRoutes(router *gin.RouterGroup) {
	drafts := router.Group("/drafts")
	{
		drafts.GET("/:id", h.GetDraft)
		drafts.DELETE("/:id", h.DeleteDraft)
		drafts.POST("/:id/items", h.AddItem)
		drafts.PUT("/:id/items/:itemId/portion", h.UpdatePortion)
		drafts.DELETE("/:id/items/:itemId", h.RemoveItem)
	}
}

// ownedDraft loads a draft and enforces ownership. A nil return means a
// response has already been written.
func (h *DraftHandler) ownedDraft(c *gin.Context) *service.DetectionDraft {
	userID, ok := currentUserID(c)
	if !ok {
		return nil
	}

	draft, err := h.drafts.GetDraft(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Draft not found"})
		return nil
	}
	if draft.UserID != userID {
		c.JSON(http.StatusNotFound, gin.H{"error": "Draft not found"})
		return nil
	}
	return draft
}

// GetDraft returns the editable result set.
func (h *DraftHandler) GetDraft(c *gin.Context) {
	draft := h.ownedDraft(c)
	if draft == nil {
		return
	}
	c.JSON(http.StatusOK, draft)
}

// DeleteDraft discards an abandoned draft. Cleanup only; nothing stored is
// mutated.
func (h *DraftHandler) DeleteDraft(c *gin.Context) {
	draft := h.ownedDraft(c)
	if draft == nil {
		return
	}
	if err := h.drafts.DeleteDraft(c.Request.Context(), draft.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete draft", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Draft deleted"})
}

// AddItem appends a manually entered food.
func (h *DraftHandler) AddItem(c *gin.Context) {
	draft := h.ownedDraft(c)
	if draft == nil {
		return
	}

	var req types.AddFoodRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Food name is required"})
		return
	}

	record, err := h.drafts.AddItem(c.Request.Context(), draft, req.Name, req.PortionGrams)
	if err != nil {
		if errors.Is(err, service.ErrInvalidPortion) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add food", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"food": record, "draft": draft})
}

// UpdatePortion rescales one food to a new portion size.
func (h *DraftHandler) UpdatePortion(c *gin.Context) {
	draft := h.ownedDraft(c)
	if draft == nil {
		return
	}

	var req types.UpdatePortionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.drafts.RescaleItem(c.Request.Context(), draft, c.Param("itemId"), req.PortionGrams)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidPortion):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrDraftItemNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update portion", "details": err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, draft)
}

// RemoveItem drops one food from the draft.
func (h *DraftHandler) RemoveItem(c *gin.Context) {
	draft := h.ownedDraft(c)
	if draft == nil {
		return
	}

	err := h.drafts.RemoveItem(c.Request.Context(), draft, c.Param("itemId"))
	if err != nil {
		if errors.Is(err, service.ErrDraftItemNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove food", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, draft)
}
