package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FoodCatalogEntry is an immutable reference food with nutrients per 100g.
// Seeded by cmd/seed_catalog; the detection pipeline only reads it.
type FoodCatalogEntry struct {
	ID             uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
	Name           string         `gorm:"size:255;not null;index" json:"name"`
	CaloriesPer100 float64        `gorm:"not null" json:"calories_per_100g"`
	ProteinPer100  float64        `gorm:"not null" json:"protein_per_100g"`
	CarbsPer100    float64        `gorm:"not null" json:"carbs_per_100g"`
	FatPer100      float64        `gorm:"not null" json:"fat_per_100g"`
	FiberPer100    float64        `json:"fiber_per_100g"`
	Category       string         `gorm:"size:50" json:"category"`
}
