package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// RecommendedFood is one template entry attached to a meal slot.
type RecommendedFood struct {
	Name         string  `json:"name"`
	PortionGrams float64 `json:"portion_grams"`
	Calories     float64 `json:"calories"`
	Protein      float64 `json:"protein"`
	Carbs        float64 `json:"carbs"`
	Fat          float64 `json:"fat"`
}

// RecommendedFoodList stores the food template as JSONB.
type RecommendedFoodList []RecommendedFood

// Value implements the driver.Valuer interface
func (l RecommendedFoodList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return "[]", nil
	}
	return json.Marshal(l)
}

// Scan implements the sql.Scanner interface
func (l *RecommendedFoodList) Scan(value interface{}) error {
	if value == nil {
		*l = RecommendedFoodList{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return nil
	}

	return json.Unmarshal(bytes, l)
}

// MealRecommendation is a persisted snapshot of one generated meal slot.
// Write-only audit trail: the generator never reads these back.
type MealRecommendation struct {
	ID            uuid.UUID           `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt     time.Time           `json:"created_at"`
	UserID        uuid.UUID           `gorm:"type:uuid;not null;index" json:"user_id"`
	MealType      string              `gorm:"size:20;not null" json:"meal_type"`
	Foods         RecommendedFoodList `gorm:"type:jsonb;not null;default:'[]'" json:"foods"`
	TotalCalories float64             `json:"total_calories"`
	TotalProtein  float64             `json:"total_protein"`
	TotalCarbs    float64             `json:"total_carbs"`
	TotalFat      float64             `json:"total_fat"`
	Reasoning     string              `gorm:"type:text" json:"reasoning"`
}
