package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/mealsnap/backend/internal/service"
	"github.com/mealsnap/backend/internal/types"
)

// MealHandler persists and reads meals and daily summaries.
type MealHandler struct {
	meals  service.IMealService
	drafts service.IDraftService
}

// NewMealHandler creates a MealHandler. drafts may be nil; it is only used
// to discard a draft once its meal has been saved.
func NewMealHandler(meals service.IMealService, drafts service.IDraftService) *MealHandler {
	return &MealHandler{meals: meals, drafts: drafts}
}

// RegisterRoutes registers meal and summary routes on an authenticated group.
func (h *MealHandler) RegisterRoutes(router *gin.RouterGroup) {
	meals := router.Group("/meals")
	{
		meals.POST("", h.SaveMeal)
		meals.GET("", h.ListMeals)
		meals.GET("/:id", h.GetMeal)
		meals.DELETE("/:id", h.DeleteMeal)
	}
	router.GET("/summary", h.GetDailySummary)
}

type saveMealBody struct {
	types.SaveMealRequest
	DraftID string `json:"draft_id"`
}

// SaveMeal finalizes an edited result set into the log. On persistence
// failure the client keeps its edit state and can retry; nothing is retried
// automatically here.
func (h *MealHandler) SaveMeal(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var body saveMealBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	meal, err := h.meals.SaveMeal(c.Request.Context(), userID, body.SaveMealRequest)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidMealType),
			errors.Is(err, service.ErrEmptyMeal),
			errors.Is(err, service.ErrInvalidPortion):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save meal", "details": err.Error()})
		}
		return
	}

	// The draft served its purpose; drop it so it cannot be saved twice.
	if h.drafts != nil && body.DraftID != "" {
		_ = h.drafts.DeleteDraft(c.Request.Context(), body.DraftID)
	}

	c.JSON(http.StatusCreated, gin.H{"meal": meal})
}

// ListMeals returns the user's meals, optionally filtered by ?date=.
func (h *MealHandler) ListMeals(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var err error
	var meals interface{}
	if date := c.Query("date"); date != "" {
		meals, err = h.meals.ListMealsByDate(c.Request.Context(), userID, date)
	} else {
		meals, err = h.meals.ListMeals(c.Request.Context(), userID)
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch meals", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"meals": meals})
}

// GetMeal returns one meal owned by the user.
func (h *MealHandler) GetMeal(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	mealID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid meal id"})
		return
	}

	meal, err := h.meals.GetMeal(c.Request.Context(), userID, mealID)
	if err != nil {
		if errors.Is(err, service.ErrMealNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Meal not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch meal", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, meal)
}

// DeleteMeal removes a meal, cascading to its items and keeping the day's
// summary consistent.
func (h *MealHandler) DeleteMeal(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	mealID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid meal id"})
		return
	}

	if err := h.meals.DeleteMeal(c.Request.Context(), userID, mealID); err != nil {
		if errors.Is(err, service.ErrMealNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Meal not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete meal", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Meal deleted"})
}

// GetDailySummary returns running totals for ?date= (default today).
func (h *MealHandler) GetDailySummary(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	date := c.Query("date")
	if date == "" {
		date = time.Now().Format("2006-01-02")
	} else if _, err := time.Parse("2006-01-02", date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date, expected YYYY-MM-DD"})
		return
	}

	summary, err := h.meals.GetDailySummary(c.Request.Context(), userID, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch summary", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, summary)
}
