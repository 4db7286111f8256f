package service

import (
	"math"

	"github.com/google/uuid"

	"github.com/mealsnap/backend/internal/models"
	"github.com/mealsnap/backend/internal/types"
)

// roundWhole rounds calories to the nearest whole unit.
func roundWhole(v float64) float64 {
	return math.Round(v)
}

// round1 rounds macro grams to one decimal place.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// Aggregate sums a set of enriched food records into per-meal totals. An
// empty set yields all-zero totals.
func Aggregate(records []types.EnrichedFoodRecord) types.NutrientTotals {
	var totals types.NutrientTotals
	for _, r := range records {
		totals.Calories += r.Calories
		totals.Protein += r.Protein
		totals.Carbs += r.Carbs
		totals.Fat += r.Fat
	}
	return totals
}

// FoldIntoDailySummary merges meal totals into the running summary for one
// (user, date). A nil existing summary produces a fresh row equal to the
// totals; otherwise the merge is additive, never a replacement.
func FoldIntoDailySummary(existing *models.DailySummary, userID uuid.UUID, date string, totals types.NutrientTotals) *models.DailySummary {
	if existing == nil {
		return &models.DailySummary{
			ID:            uuid.New(),
			UserID:        userID,
			Date:          date,
			TotalCalories: totals.Calories,
			TotalProtein:  totals.Protein,
			TotalCarbs:    totals.Carbs,
			TotalFat:      totals.Fat,
		}
	}

	existing.TotalCalories += totals.Calories
	existing.TotalProtein += totals.Protein
	existing.TotalCarbs += totals.Carbs
	existing.TotalFat += totals.Fat
	return existing
}
