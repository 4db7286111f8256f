package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Meal types accepted on save.
const (
	MealTypeBreakfast = "breakfast"
	MealTypeLunch     = "lunch"
	MealTypeDinner    = "dinner"
	MealTypeSnack     = "snack"
)

// ValidMealType reports whether t is one of the four accepted meal types.
func ValidMealType(t string) bool {
	switch t {
	case MealTypeBreakfast, MealTypeLunch, MealTypeDinner, MealTypeSnack:
		return true
	}
	return false
}

// Meal is one logged meal with its nutrient totals summed over its items.
type Meal struct {
	ID            uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
	UserID        uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	MealType      string         `gorm:"size:20;not null" json:"meal_type"`
	Date          string         `gorm:"size:10;not null;index" json:"date"`
	Time          string         `gorm:"size:5" json:"time"`
	ImageURL      string         `gorm:"size:512" json:"image_url"`
	TotalCalories float64        `json:"total_calories"`
	TotalProtein  float64        `json:"total_protein"`
	TotalCarbs    float64        `json:"total_carbs"`
	TotalFat      float64        `json:"total_fat"`
	Notes         string         `gorm:"type:text" json:"notes"`
	Items         []MealItem     `json:"items"`
}

// MealItem is a denormalized snapshot of one enriched food record at save
// time. It intentionally keeps no reference back to the catalog so logged
// history stays stable even if catalog values are edited later.
type MealItem struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt    time.Time `json:"created_at"`
	MealID       uuid.UUID `gorm:"type:uuid;not null;index" json:"meal_id"`
	FoodName     string    `gorm:"size:255;not null" json:"food_name"`
	PortionGrams float64   `gorm:"not null" json:"portion_grams"`
	Calories     float64   `json:"calories"`
	Protein      float64   `json:"protein"`
	Carbs        float64   `json:"carbs"`
	Fat          float64   `json:"fat"`
	Matched      bool      `json:"matched"`
}
