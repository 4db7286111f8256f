package types

// DetectedFoodCandidate is one food hypothesis produced by vision inference,
// before catalog enrichment.
type DetectedFoodCandidate struct {
	Name         string  `json:"name"`
	PortionGrams float64 `json:"portion_grams"`
	Confidence   float64 `json:"confidence"`
}

// EnrichedFoodRecord is a candidate after nutrient lookup and scaling, ready
// to display, edit and save. Unmatched foods are first-class: they carry zero
// nutrients and a synthesized id but remain editable and savable.
type EnrichedFoodRecord struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	PortionGrams float64 `json:"portion_grams"`
	Calories     float64 `json:"calories"`
	Protein      float64 `json:"protein"`
	Carbs        float64 `json:"carbs"`
	Fat          float64 `json:"fat"`
	Matched      bool    `json:"matched"`
}

// NutrientTotals is the sum of a set of enriched food records.
type NutrientTotals struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// DailyTargets are the four per-day targets the recommendation generator
// allocates across meals.
type DailyTargets struct {
	Calories float64 `json:"daily_calorie_target"`
	Protein  float64 `json:"daily_protein_target"`
	Carbs    float64 `json:"daily_carbs_target"`
	Fat      float64 `json:"daily_fat_target"`
}
