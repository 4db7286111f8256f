package models

import (
	"time"

	"github.com/google/uuid"
)

// DailySummary is the additive running nutrient total for one user on one
// date (YYYY-MM-DD). It is folded into on every meal save inside the same
// transaction as the meal insert; it always equals the sum of that day's
// meal totals.
type DailySummary struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
	UserID        uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_summary_user_date" json:"user_id"`
	Date          string    `gorm:"size:10;not null;uniqueIndex:idx_summary_user_date" json:"date"`
	TotalCalories float64   `json:"total_calories"`
	TotalProtein  float64   `json:"total_protein"`
	TotalCarbs    float64   `json:"total_carbs"`
	TotalFat      float64   `json:"total_fat"`
}
