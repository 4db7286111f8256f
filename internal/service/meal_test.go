package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mealsnap/backend/internal/types"
)

func saveRequest(mealType, date string, foods ...types.EnrichedFoodRecord) types.SaveMealRequest {
	return types.SaveMealRequest{
		MealType: mealType,
		Date:     date,
		Time:     "12:30",
		Foods:    foods,
	}
}

func TestSaveMealPersistsMealAndItems(t *testing.T) {
	db := setupTestDB(t)
	svc := NewMealService(db)
	userID := uuid.New()

	meal, err := svc.SaveMeal(context.Background(), userID, saveRequest("lunch", "2025-06-01",
		types.EnrichedFoodRecord{ID: uuid.New().String(), Name: "Chicken Breast", PortionGrams: 150, Calories: 248, Protein: 46.5, Fat: 5.4, Matched: true},
		types.EnrichedFoodRecord{ID: uuid.New().String(), Name: "Mystery Stew", PortionGrams: 100, Matched: false},
	))
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, meal.ID)
	assert.Equal(t, 248.0, meal.TotalCalories)
	assert.Equal(t, 46.5, meal.TotalProtein)
	require.Len(t, meal.Items, 2)
	assert.Equal(t, "Chicken Breast", meal.Items[0].FoodName)
	assert.True(t, meal.Items[0].Matched)
	assert.False(t, meal.Items[1].Matched)

	stored, err := svc.GetMeal(context.Background(), userID, meal.ID)
	require.NoError(t, err)
	assert.Len(t, stored.Items, 2)
}

func TestSaveMealValidation(t *testing.T) {
	db := setupTestDB(t)
	svc := NewMealService(db)
	userID := uuid.New()
	food := types.EnrichedFoodRecord{ID: "a", Name: "Rice", PortionGrams: 100, Calories: 130}

	_, err := svc.SaveMeal(context.Background(), userID, saveRequest("brunch", "2025-06-01", food))
	assert.ErrorIs(t, err, ErrInvalidMealType)

	_, err = svc.SaveMeal(context.Background(), userID, saveRequest("lunch", "2025-06-01"))
	assert.ErrorIs(t, err, ErrEmptyMeal)

	bad := food
	bad.PortionGrams = 0
	_, err = svc.SaveMeal(context.Background(), userID, saveRequest("lunch", "2025-06-01", bad))
	assert.ErrorIs(t, err, ErrInvalidPortion)
}

func TestSaveMealFoldsDailySummary(t *testing.T) {
	db := setupTestDB(t)
	svc := NewMealService(db)
	userID := uuid.New()
	ctx := context.Background()

	_, err := svc.SaveMeal(ctx, userID, saveRequest("breakfast", "2025-06-01",
		types.EnrichedFoodRecord{ID: "a", Name: "Oatmeal", PortionGrams: 60, Calories: 300, Protein: 10, Carbs: 40, Fat: 5}))
	require.NoError(t, err)

	_, err = svc.SaveMeal(ctx, userID, saveRequest("lunch", "2025-06-01",
		types.EnrichedFoodRecord{ID: "b", Name: "Salad", PortionGrams: 200, Calories: 200, Protein: 8, Carbs: 20, Fat: 9}))
	require.NoError(t, err)

	summary, err := svc.GetDailySummary(ctx, userID, "2025-06-01")
	require.NoError(t, err)
	assert.Equal(t, 500.0, summary.TotalCalories)
	assert.Equal(t, 18.0, summary.TotalProtein)
	assert.Equal(t, 60.0, summary.TotalCarbs)
	assert.Equal(t, 14.0, summary.TotalFat)

	// A meal on another date opens its own summary row.
	_, err = svc.SaveMeal(ctx, userID, saveRequest("dinner", "2025-06-02",
		types.EnrichedFoodRecord{ID: "c", Name: "Pasta", PortionGrams: 250, Calories: 400}))
	require.NoError(t, err)

	other, err := svc.GetDailySummary(ctx, userID, "2025-06-02")
	require.NoError(t, err)
	assert.Equal(t, 400.0, other.TotalCalories)

	unchanged, err := svc.GetDailySummary(ctx, userID, "2025-06-01")
	require.NoError(t, err)
	assert.Equal(t, 500.0, unchanged.TotalCalories)
}

func TestGetDailySummaryEmptyDay(t *testing.T) {
	db := setupTestDB(t)
	svc := NewMealService(db)

	summary, err := svc.GetDailySummary(context.Background(), uuid.New(), "2025-06-01")
	require.NoError(t, err)
	assert.Equal(t, 0.0, summary.TotalCalories)
	assert.Equal(t, 0.0, summary.TotalProtein)
	assert.Equal(t, 0.0, summary.TotalCarbs)
	assert.Equal(t, 0.0, summary.TotalFat)
}

func TestListMealsByDate(t *testing.T) {
	db := setupTestDB(t)
	svc := NewMealService(db)
	userID := uuid.New()
	ctx := context.Background()

	_, err := svc.SaveMeal(ctx, userID, saveRequest("breakfast", "2025-06-01",
		types.EnrichedFoodRecord{ID: "a", Name: "Oatmeal", PortionGrams: 60, Calories: 233}))
	require.NoError(t, err)
	_, err = svc.SaveMeal(ctx, userID, saveRequest("dinner", "2025-06-02",
		types.EnrichedFoodRecord{ID: "b", Name: "Salmon", PortionGrams: 150, Calories: 312}))
	require.NoError(t, err)

	meals, err := svc.ListMealsByDate(ctx, userID, "2025-06-01")
	require.NoError(t, err)
	require.Len(t, meals, 1)
	assert.Equal(t, "breakfast", meals[0].MealType)
	assert.Len(t, meals[0].Items, 1)

	all, err := svc.ListMeals(ctx, userID)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestMealOwnership(t *testing.T) {
	db := setupTestDB(t)
	svc := NewMealService(db)
	ctx := context.Background()
	owner := uuid.New()
	stranger := uuid.New()

	meal, err := svc.SaveMeal(ctx, owner, saveRequest("lunch", "2025-06-01",
		types.EnrichedFoodRecord{ID: "a", Name: "Rice", PortionGrams: 100, Calories: 130}))
	require.NoError(t, err)

	_, err = svc.GetMeal(ctx, stranger, meal.ID)
	assert.ErrorIs(t, err, ErrMealNotFound)

	err = svc.DeleteMeal(ctx, stranger, meal.ID)
	assert.ErrorIs(t, err, ErrMealNotFound)
}

func TestDeleteMealSubtractsFromSummary(t *testing.T) {
	db := setupTestDB(t)
	svc := NewMealService(db)
	userID := uuid.New()
	ctx := context.Background()

	first, err := svc.SaveMeal(ctx, userID, saveRequest("breakfast", "2025-06-01",
		types.EnrichedFoodRecord{ID: "a", Name: "Oatmeal", PortionGrams: 60, Calories: 300, Protein: 10}))
	require.NoError(t, err)
	_, err = svc.SaveMeal(ctx, userID, saveRequest("lunch", "2025-06-01",
		types.EnrichedFoodRecord{ID: "b", Name: "Salad", PortionGrams: 200, Calories: 200, Protein: 8}))
	require.NoError(t, err)

	require.NoError(t, svc.DeleteMeal(ctx, userID, first.ID))

	summary, err := svc.GetDailySummary(ctx, userID, "2025-06-01")
	require.NoError(t, err)
	assert.Equal(t, 200.0, summary.TotalCalories)
	assert.Equal(t, 8.0, summary.TotalProtein)

	_, err = svc.GetMeal(ctx, userID, first.ID)
	assert.ErrorIs(t, err, ErrMealNotFound)
}

func TestSaveMealDefaultsDateAndTime(t *testing.T) {
	db := setupTestDB(t)
	svc := NewMealService(db)

	meal, err := svc.SaveMeal(context.Background(), uuid.New(), types.SaveMealRequest{
		MealType: "snack",
		Foods: []types.EnrichedFoodRecord{
			{ID: "a", Name: "Apple", PortionGrams: 150, Calories: 78},
		},
	})
	require.NoError(t, err)
	assert.Regexp(t, `^\d{4}-\d{2}-\d{2}$`, meal.Date)
	assert.Regexp(t, `^\d{2}:\d{2}$`, meal.Time)
}
