package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mealsnap/backend/internal/models"
	"github.com/mealsnap/backend/internal/types"
)

// setupTestDB opens an in-memory SQLite database with the full schema.
func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.FoodCatalogEntry{},
		&models.Meal{},
		&models.MealItem{},
		&models.DailySummary{},
		&models.UserProfile{},
		&models.MealRecommendation{},
	)
	require.NoError(t, err)
	return db
}

func seedCatalog(t *testing.T, db *gorm.DB) {
	entries := []models.FoodCatalogEntry{
		{ID: uuid.New(), Name: "Chicken Breast", CaloriesPer100: 165, ProteinPer100: 31, CarbsPer100: 0, FatPer100: 3.6, Category: "protein"},
		{ID: uuid.New(), Name: "Brown Rice", CaloriesPer100: 112, ProteinPer100: 2.6, CarbsPer100: 23.8, FatPer100: 0.9, Category: "grain"},
		{ID: uuid.New(), Name: "Broccoli", CaloriesPer100: 34, ProteinPer100: 2.8, CarbsPer100: 6.6, FatPer100: 0.4, Category: "vegetable"},
	}
	require.NoError(t, db.Create(&entries).Error)
}

func TestEnrichScalesToPortion(t *testing.T) {
	db := setupTestDB(t)
	seedCatalog(t, db)
	enricher := NewEnricher(db, nil)

	records, err := enricher.Enrich(context.Background(), []types.DetectedFoodCandidate{
		{Name: "Chicken Breast", PortionGrams: 150, Confidence: 0.9},
	})
	require.NoError(t, err)
	require.Len(t, records, 1)

	record := records[0]
	assert.True(t, record.Matched)
	assert.Equal(t, "Chicken Breast", record.Name)
	assert.Equal(t, 150.0, record.PortionGrams)
	assert.Equal(t, 248.0, record.Calories)
	assert.Equal(t, 46.5, record.Protein)
	assert.Equal(t, 0.0, record.Carbs)
	assert.Equal(t, 5.4, record.Fat)
	_, err = uuid.Parse(record.ID)
	assert.NoError(t, err)
}

func TestEnrichMatchIsCaseInsensitiveSubstring(t *testing.T) {
	db := setupTestDB(t)
	seedCatalog(t, db)
	enricher := NewEnricher(db, nil)

	records, err := enricher.Enrich(context.Background(), []types.DetectedFoodCandidate{
		{Name: "chicken", PortionGrams: 100, Confidence: 0.8},
		{Name: "BROCCOLI", PortionGrams: 100, Confidence: 0.8},
	})
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.True(t, records[0].Matched)
	assert.Equal(t, "Chicken Breast", records[0].Name)
	assert.Equal(t, 165.0, records[0].Calories)

	assert.True(t, records[1].Matched)
	assert.Equal(t, "Broccoli", records[1].Name)
}

func TestEnrichUnmatchedIsFirstClass(t *testing.T) {
	db := setupTestDB(t)
	seedCatalog(t, db)
	enricher := NewEnricher(db, nil)

	records, err := enricher.Enrich(context.Background(), []types.DetectedFoodCandidate{
		{Name: "Unicorn Meat", PortionGrams: 200, Confidence: 0.7},
	})
	require.NoError(t, err)
	require.Len(t, records, 1)

	record := records[0]
	assert.False(t, record.Matched)
	assert.Equal(t, "Unicorn Meat", record.Name)
	assert.Equal(t, 200.0, record.PortionGrams)
	assert.Equal(t, 0.0, record.Calories)
	assert.Equal(t, 0.0, record.Protein)
	assert.Equal(t, 0.0, record.Carbs)
	assert.Equal(t, 0.0, record.Fat)

	// Synthesized id so the record is addressable for edits.
	parsed, err := uuid.Parse(record.ID)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, parsed)
}

func TestEnrichMixedCandidatesProcessedIndependently(t *testing.T) {
	db := setupTestDB(t)
	seedCatalog(t, db)
	enricher := NewEnricher(db, nil)

	records, err := enricher.Enrich(context.Background(), []types.DetectedFoodCandidate{
		{Name: "Chicken Breast", PortionGrams: 150},
		{Name: "Unicorn Meat", PortionGrams: 50},
		{Name: "Brown Rice", PortionGrams: 150},
	})
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.True(t, records[0].Matched)
	assert.False(t, records[1].Matched)
	assert.True(t, records[2].Matched)
	assert.Equal(t, 168.0, records[2].Calories)
}

func TestEnrichEmptyCandidates(t *testing.T) {
	db := setupTestDB(t)
	enricher := NewEnricher(db, nil)

	records, err := enricher.Enrich(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestExactMatchRequiresFullName(t *testing.T) {
	db := setupTestDB(t)
	seedCatalog(t, db)
	enricher := NewEnricher(db, ExactMatch{})

	records, err := enricher.Enrich(context.Background(), []types.DetectedFoodCandidate{
		{Name: "chicken", PortionGrams: 100},
		{Name: "chicken breast", PortionGrams: 100},
	})
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.False(t, records[0].Matched)
	assert.True(t, records[1].Matched)
}
