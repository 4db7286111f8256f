package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/mealsnap/backend/internal/models"
	"github.com/mealsnap/backend/internal/types"
)

var (
	// ErrInvalidMealType rejects saves with a meal type outside the four slots.
	ErrInvalidMealType = errors.New("meal_type must be one of breakfast, lunch, dinner, snack")
	// ErrEmptyMeal rejects saves with no foods.
	ErrEmptyMeal = errors.New("a meal needs at least one food")
	// ErrMealNotFound is returned for missing meals or meals owned by another user.
	ErrMealNotFound = errors.New("meal not found")
)

// MealService persists meals and maintains the per-day summaries.
type MealService struct {
	db *gorm.DB
}

// NewMealService creates a MealService.
func NewMealService(db *gorm.DB) *MealService {
	return &MealService{db: db}
}

// SaveMeal stores a meal, its item snapshots and the daily-summary fold in
// one transaction. The fold is an upsert with additive assignments, so
// concurrent saves for the same user and date serialize on the summary row.
func (s *MealService) SaveMeal(ctx context.Context, userID uuid.UUID, req types.SaveMealRequest) (*models.Meal, error) {
	if !models.ValidMealType(req.MealType) {
		return nil, ErrInvalidMealType
	}
	if len(req.Foods) == 0 {
		return nil, ErrEmptyMeal
	}
	for _, f := range req.Foods {
		if f.PortionGrams <= 0 {
			return nil, ErrInvalidPortion
		}
	}

	now := time.Now()
	date := req.Date
	if date == "" {
		date = now.Format("2006-01-02")
	}
	mealTime := req.Time
	if mealTime == "" {
		mealTime = now.Format("15:04")
	}

	totals := Aggregate(req.Foods)

	meal := &models.Meal{
		ID:            uuid.New(),
		UserID:        userID,
		MealType:      req.MealType,
		Date:          date,
		Time:          mealTime,
		ImageURL:      req.ImageURL,
		TotalCalories: totals.Calories,
		TotalProtein:  totals.Protein,
		TotalCarbs:    totals.Carbs,
		TotalFat:      totals.Fat,
		Notes:         req.Notes,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(meal).Error; err != nil {
			return fmt.Errorf("failed to create meal: %w", err)
		}

		items := make([]models.MealItem, 0, len(req.Foods))
		for _, f := range req.Foods {
			items = append(items, models.MealItem{
				ID:           uuid.New(),
				MealID:       meal.ID,
				FoodName:     f.Name,
				PortionGrams: f.PortionGrams,
				Calories:     f.Calories,
				Protein:      f.Protein,
				Carbs:        f.Carbs,
				Fat:          f.Fat,
				Matched:      f.Matched,
			})
		}
		if err := tx.Create(&items).Error; err != nil {
			return fmt.Errorf("failed to create meal items: %w", err)
		}

		// Atomic additive fold: concurrent saves for the same user and
		// date increment the existing row instead of losing an update or
		// racing on the first insert.
		fresh := FoldIntoDailySummary(nil, userID, date, totals)
		err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: "date"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"total_calories": gorm.Expr("total_calories + ?", totals.Calories),
				"total_protein":  gorm.Expr("total_protein + ?", totals.Protein),
				"total_carbs":    gorm.Expr("total_carbs + ?", totals.Carbs),
				"total_fat":      gorm.Expr("total_fat + ?", totals.Fat),
				"updated_at":     now,
			}),
		}).Create(fresh).Error
		if err != nil {
			return fmt.Errorf("failed to fold daily summary: %w", err)
		}

		meal.Items = items
		return nil
	})
	if err != nil {
		return nil, err
	}

	return meal, nil
}

// lockSummary fetches the day's summary row inside the transaction, taking a
// row lock on PostgreSQL. SQLite serializes writers on its own, so the lock
// clause is skipped there.
func (s *MealService) lockSummary(tx *gorm.DB, userID uuid.UUID, date string) (*models.DailySummary, error) {
	query := tx.Where("user_id = ? AND date = ?", userID, date)
	if tx.Dialector.Name() == "postgres" {
		query = query.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var summary models.DailySummary
	if err := query.First(&summary).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read daily summary: %w", err)
	}
	return &summary, nil
}

// ListMeals returns all of a user's meals, newest first, items included.
func (s *MealService) ListMeals(ctx context.Context, userID uuid.UUID) ([]models.Meal, error) {
	var meals []models.Meal
	err := s.db.WithContext(ctx).
		Preload("Items").
		Where("user_id = ?", userID).
		Order("date DESC, time DESC").
		Find(&meals).Error
	return meals, err
}

// ListMealsByDate returns a user's meals for one date.
func (s *MealService) ListMealsByDate(ctx context.Context, userID uuid.UUID, date string) ([]models.Meal, error) {
	var meals []models.Meal
	err := s.db.WithContext(ctx).
		Preload("Items").
		Where("user_id = ? AND date = ?", userID, date).
		Order("time ASC").
		Find(&meals).Error
	return meals, err
}

// GetMeal returns one meal owned by the user.
func (s *MealService) GetMeal(ctx context.Context, userID, mealID uuid.UUID) (*models.Meal, error) {
	var meal models.Meal
	err := s.db.WithContext(ctx).
		Preload("Items").
		Where("id = ? AND user_id = ?", mealID, userID).
		First(&meal).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMealNotFound
		}
		return nil, err
	}
	return &meal, nil
}

// DeleteMeal removes a meal and its items, subtracting the meal's totals
// from that day's summary in the same transaction so the summary keeps
// matching the sum of the day's remaining meals.
func (s *MealService) DeleteMeal(ctx context.Context, userID, mealID uuid.UUID) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var meal models.Meal
		err := tx.Where("id = ? AND user_id = ?", mealID, userID).First(&meal).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrMealNotFound
			}
			return err
		}

		if err := tx.Where("meal_id = ?", meal.ID).Delete(&models.MealItem{}).Error; err != nil {
			return fmt.Errorf("failed to delete meal items: %w", err)
		}
		if err := tx.Delete(&meal).Error; err != nil {
			return fmt.Errorf("failed to delete meal: %w", err)
		}

		summary, err := s.lockSummary(tx, userID, meal.Date)
		if err != nil {
			return err
		}
		if summary == nil {
			return nil
		}
		summary.TotalCalories -= meal.TotalCalories
		summary.TotalProtein -= meal.TotalProtein
		summary.TotalCarbs -= meal.TotalCarbs
		summary.TotalFat -= meal.TotalFat
		if err := tx.Save(summary).Error; err != nil {
			return fmt.Errorf("failed to update daily summary: %w", err)
		}
		return nil
	})
}

// GetDailySummary returns the running totals for one user and date. A day
// with no meals yields a zero summary, not an error.
func (s *MealService) GetDailySummary(ctx context.Context, userID uuid.UUID, date string) (*models.DailySummary, error) {
	var summary models.DailySummary
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, date).
		First(&summary).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &models.DailySummary{UserID: userID, Date: date}, nil
		}
		return nil, err
	}
	return &summary, nil
}
