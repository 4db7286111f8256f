package service

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mealsnap/backend/internal/models"
	"github.com/mealsnap/backend/internal/types"
)

// ErrProfileRequired is returned when recommendations are requested before
// the user has saved a profile. The generator never silently runs with
// defaults in user-facing flows.
var ErrProfileRequired = errors.New("profile required")

// Fallback targets applied per field when a stored target is missing.
const (
	defaultCalorieTarget = 2000
	defaultProteinTarget = 150
	defaultCarbsTarget   = 250
	defaultFatTarget     = 65
)

// mealTemplate is a fixed food list and reasoning string for one meal slot.
// The allotment computed from the user's targets is informational; template
// nutrients do not sum to it.
type mealTemplate struct {
	mealType  string
	foods     models.RecommendedFoodList
	reasoning string
}

var mealTemplates = []mealTemplate{
	{
		mealType: models.MealTypeBreakfast,
		foods: models.RecommendedFoodList{
			{Name: "Oatmeal", PortionGrams: 60, Calories: 233, Protein: 10.1, Carbs: 39.7, Fat: 4.1},
			{Name: "Banana", PortionGrams: 118, Calories: 105, Protein: 1.3, Carbs: 27, Fat: 0.4},
			{Name: "Greek Yogurt", PortionGrams: 170, Calories: 100, Protein: 17.3, Carbs: 6.1, Fat: 0.7},
		},
		reasoning: "Slow-release carbohydrates with protein keep you full through the morning.",
	},
	{
		mealType: models.MealTypeLunch,
		foods: models.RecommendedFoodList{
			{Name: "Chicken Breast", PortionGrams: 150, Calories: 248, Protein: 46.5, Carbs: 0, Fat: 5.4},
			{Name: "Brown Rice", PortionGrams: 150, Calories: 168, Protein: 3.9, Carbs: 35.7, Fat: 1.3},
			{Name: "Broccoli", PortionGrams: 100, Calories: 34, Protein: 2.8, Carbs: 6.6, Fat: 0.4},
		},
		reasoning: "Lean protein with whole grains and vegetables for a balanced midday meal.",
	},
	{
		mealType: models.MealTypeDinner,
		foods: models.RecommendedFoodList{
			{Name: "Salmon", PortionGrams: 150, Calories: 312, Protein: 30.5, Carbs: 0, Fat: 19.5},
			{Name: "Sweet Potato", PortionGrams: 150, Calories: 129, Protein: 2.4, Carbs: 30.2, Fat: 0.2},
			{Name: "Spinach", PortionGrams: 80, Calories: 18, Protein: 2.3, Carbs: 2.9, Fat: 0.3},
		},
		reasoning: "Omega-3 rich fish with complex carbohydrates to round out the day.",
	},
}

// RecommendationService generates and persists rule-based meal
// recommendations from the user's stored daily targets.
type RecommendationService struct {
	db *gorm.DB
}

// NewRecommendationService creates a RecommendationService.
func NewRecommendationService(db *gorm.DB) *RecommendationService {
	return &RecommendationService{db: db}
}

// GenerateFromTargets splits the daily targets across breakfast, lunch and
// dinner: floor(target / 3) for each macro independently, with a fixed food
// template and reasoning per slot. Deterministic for identical targets.
func GenerateFromTargets(userID uuid.UUID, targets types.DailyTargets) []models.MealRecommendation {
	if targets.Calories <= 0 {
		targets.Calories = defaultCalorieTarget
	}
	if targets.Protein <= 0 {
		targets.Protein = defaultProteinTarget
	}
	if targets.Carbs <= 0 {
		targets.Carbs = defaultCarbsTarget
	}
	if targets.Fat <= 0 {
		targets.Fat = defaultFatTarget
	}

	recs := make([]models.MealRecommendation, 0, len(mealTemplates))
	for _, tpl := range mealTemplates {
		recs = append(recs, models.MealRecommendation{
			ID:            uuid.New(),
			UserID:        userID,
			MealType:      tpl.mealType,
			Foods:         tpl.foods,
			TotalCalories: math.Floor(targets.Calories / 3),
			TotalProtein:  math.Floor(targets.Protein / 3),
			TotalCarbs:    math.Floor(targets.Carbs / 3),
			TotalFat:      math.Floor(targets.Fat / 3),
			Reasoning:     tpl.reasoning,
		})
	}
	return recs
}

// Generate loads the user's targets, refuses without a saved profile, and
// persists the generated set as an audit snapshot. The generator never reads
// persisted recommendations back.
func (s *RecommendationService) Generate(ctx context.Context, userID uuid.UUID) ([]models.MealRecommendation, error) {
	var profile models.UserProfile
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileRequired
		}
		return nil, err
	}

	recs := GenerateFromTargets(userID, types.DailyTargets{
		Calories: profile.DailyCalorieTarget,
		Protein:  profile.DailyProteinTarget,
		Carbs:    profile.DailyCarbsTarget,
		Fat:      profile.DailyFatTarget,
	})

	if err := s.db.WithContext(ctx).Create(&recs).Error; err != nil {
		return nil, fmt.Errorf("failed to persist recommendations: %w", err)
	}
	return recs, nil
}

// List returns the user's persisted recommendation history, newest first.
func (s *RecommendationService) List(ctx context.Context, userID uuid.UUID) ([]models.MealRecommendation, error) {
	var recs []models.MealRecommendation
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&recs).Error
	return recs, err
}
