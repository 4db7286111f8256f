package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserProfile holds biometrics and the four daily nutrient targets. The
// whole row is upserted on every profile save.
//
// DietaryPreference, HealthConditions and Gender exist in the schema but are
// not consulted by the recommendation generator.
type UserProfile struct {
	ID            uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
	UserID        uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	FullName      string         `gorm:"size:255" json:"full_name"`
	Age           int            `json:"age"`
	Gender        string         `gorm:"size:20" json:"gender"`
	HeightCm      float64        `json:"height_cm"`
	WeightKg      float64        `json:"weight_kg"`
	ActivityLevel string         `gorm:"size:30" json:"activity_level"`
	Goal          string         `gorm:"size:30" json:"goal"`

	DietaryPreference string `gorm:"size:50" json:"dietary_preference"`
	HealthConditions  string `gorm:"type:text" json:"health_conditions"`

	DailyCalorieTarget float64 `json:"daily_calorie_target"`
	DailyProteinTarget float64 `json:"daily_protein_target"`
	DailyCarbsTarget   float64 `json:"daily_carbs_target"`
	DailyFatTarget     float64 `json:"daily_fat_target"`
}
