package database

import (
	"fmt"
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/mealsnap/backend/config"
	"github.com/mealsnap/backend/internal/models"
)

// New opens the PostgreSQL connection and migrates the schema.
func New(cfg *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBSSLMode,
	)

	log.Printf("Connecting to database at %s:%s as user %s", cfg.DBHost, cfg.DBPort, cfg.DBUser)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, fmt.Errorf("error migrating database: %w", err)
	}

	log.Printf("Successfully connected to database")
	return db, nil
}

// Migrate applies the schema for all persisted entities.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.FoodCatalogEntry{},
		&models.Meal{},
		&models.MealItem{},
		&models.DailySummary{},
		&models.UserProfile{},
		&models.MealRecommendation{},
	)
}
