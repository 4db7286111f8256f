package types

// DetectFoodRequest is the body of POST /detect-food.
type DetectFoodRequest struct {
	ImageURL string `json:"imageUrl"`
}

// DetectFoodResponse carries the enriched result set back to the client.
// Message is set when inference yields nothing (or fails recoverably) so the
// client can prompt the user to add foods manually.
type DetectFoodResponse struct {
	Foods   []EnrichedFoodRecord `json:"foods"`
	DraftID string               `json:"draft_id,omitempty"`
	Message string               `json:"message,omitempty"`
}

// SaveMealRequest persists an edited detection result as a meal.
type SaveMealRequest struct {
	MealType string               `json:"meal_type"`
	Date     string               `json:"date"`
	Time     string               `json:"time"`
	ImageURL string               `json:"image_url"`
	Notes    string               `json:"notes"`
	Foods    []EnrichedFoodRecord `json:"foods"`
}

// UpdatePortionRequest edits one food's portion inside a detection draft.
type UpdatePortionRequest struct {
	PortionGrams float64 `json:"portion_grams"`
}

// AddFoodRequest appends a manually entered food to a detection draft.
type AddFoodRequest struct {
	Name         string  `json:"name"`
	PortionGrams float64 `json:"portion_grams"`
}

// UpdateProfileRequest upserts the whole profile row.
type UpdateProfileRequest struct {
	FullName          string  `json:"full_name"`
	Age               int     `json:"age"`
	Gender            string  `json:"gender"`
	HeightCm          float64 `json:"height_cm"`
	WeightKg          float64 `json:"weight_kg"`
	ActivityLevel     string  `json:"activity_level"`
	Goal              string  `json:"goal"`
	DietaryPreference string  `json:"dietary_preference"`
	HealthConditions  string  `json:"health_conditions"`

	DailyCalorieTarget float64 `json:"daily_calorie_target"`
	DailyProteinTarget float64 `json:"daily_protein_target"`
	DailyCarbsTarget   float64 `json:"daily_carbs_target"`
	DailyFatTarget     float64 `json:"daily_fat_target"`
}
