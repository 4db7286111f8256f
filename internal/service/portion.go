package service

import (
	"errors"

	"github.com/mealsnap/backend/internal/types"
)

// ErrInvalidPortion rejects portion edits that are zero or negative.
var ErrInvalidPortion = errors.New("portion must be greater than zero")

// Rescale recomputes a record's nutrients for a new portion size. The ratio
// is taken against the record's current portion, so portionGrams must always
// reflect the last applied scale. All four nutrient fields and the portion
// update together; the value receiver makes a partial update impossible.
func Rescale(record types.EnrichedFoodRecord, newPortionGrams float64) (types.EnrichedFoodRecord, error) {
	if newPortionGrams <= 0 {
		return record, ErrInvalidPortion
	}
	if record.PortionGrams <= 0 {
		return record, ErrInvalidPortion
	}

	ratio := newPortionGrams / record.PortionGrams
	record.Calories = roundWhole(record.Calories * ratio)
	record.Protein = round1(record.Protein * ratio)
	record.Carbs = round1(record.Carbs * ratio)
	record.Fat = round1(record.Fat * ratio)
	record.PortionGrams = newPortionGrams
	return record, nil
}
