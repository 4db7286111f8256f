package service

import (
	"context"
	"io"

	"github.com/google/uuid"

	"github.com/mealsnap/backend/internal/models"
	"github.com/mealsnap/backend/internal/types"
)

// IVisionService defines the vision inference contract.
type IVisionService interface {
	DetectFoods(ctx context.Context, imageURL string) ([]types.DetectedFoodCandidate, error)
}

// IEnricher defines the detection enrichment contract.
type IEnricher interface {
	Enrich(ctx context.Context, candidates []types.DetectedFoodCandidate) ([]types.EnrichedFoodRecord, error)
}

// IDraftService defines the detection draft store contract.
type IDraftService interface {
	SaveDraft(ctx context.Context, draft *DetectionDraft) error
	GetDraft(ctx context.Context, id string) (*DetectionDraft, error)
	UpdateDraft(ctx context.Context, draft *DetectionDraft) error
	DeleteDraft(ctx context.Context, id string) error
	RescaleItem(ctx context.Context, draft *DetectionDraft, foodID string, newPortionGrams float64) error
	RemoveItem(ctx context.Context, draft *DetectionDraft, foodID string) error
	AddItem(ctx context.Context, draft *DetectionDraft, name string, portionGrams float64) (types.EnrichedFoodRecord, error)
}

// IMealService defines the meal persistence contract.
type IMealService interface {
	SaveMeal(ctx context.Context, userID uuid.UUID, req types.SaveMealRequest) (*models.Meal, error)
	ListMeals(ctx context.Context, userID uuid.UUID) ([]models.Meal, error)
	ListMealsByDate(ctx context.Context, userID uuid.UUID, date string) ([]models.Meal, error)
	GetMeal(ctx context.Context, userID, mealID uuid.UUID) (*models.Meal, error)
	DeleteMeal(ctx context.Context, userID, mealID uuid.UUID) error
	GetDailySummary(ctx context.Context, userID uuid.UUID, date string) (*models.DailySummary, error)
}

// IProfileService defines the profile contract.
type IProfileService interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*models.UserProfile, error)
	UpsertProfile(ctx context.Context, userID uuid.UUID, req types.UpdateProfileRequest) (*models.UserProfile, error)
}

// IRecommendationService defines the recommendation generator contract.
type IRecommendationService interface {
	Generate(ctx context.Context, userID uuid.UUID) ([]models.MealRecommendation, error)
	List(ctx context.Context, userID uuid.UUID) ([]models.MealRecommendation, error)
}

// IImageService defines the meal photo storage contract.
type IImageService interface {
	UploadMealPhoto(ctx context.Context, userID uuid.UUID, filename, contentType string, body io.Reader) (string, error)
}
