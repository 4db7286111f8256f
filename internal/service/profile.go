package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mealsnap/backend/internal/models"
	"github.com/mealsnap/backend/internal/types"
)

// ErrProfileNotFound is returned when a user has not saved a profile yet.
var ErrProfileNotFound = errors.New("profile not found")

// ProfileService reads and upserts user profiles.
type ProfileService struct {
	db *gorm.DB
}

// NewProfileService creates a ProfileService.
func NewProfileService(db *gorm.DB) *ProfileService {
	return &ProfileService{db: db}
}

// GetProfile returns the user's profile.
func (s *ProfileService) GetProfile(ctx context.Context, userID uuid.UUID) (*models.UserProfile, error) {
	var profile models.UserProfile
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

// UpsertProfile replaces the user's profile wholesale with the request
// values, creating the row on first save.
func (s *ProfileService) UpsertProfile(ctx context.Context, userID uuid.UUID, req types.UpdateProfileRequest) (*models.UserProfile, error) {
	var profile models.UserProfile
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		profile = models.UserProfile{ID: uuid.New(), UserID: userID}
	}

	profile.FullName = req.FullName
	profile.Age = req.Age
	profile.Gender = req.Gender
	profile.HeightCm = req.HeightCm
	profile.WeightKg = req.WeightKg
	profile.ActivityLevel = req.ActivityLevel
	profile.Goal = req.Goal
	profile.DietaryPreference = req.DietaryPreference
	profile.HealthConditions = req.HealthConditions
	profile.DailyCalorieTarget = req.DailyCalorieTarget
	profile.DailyProteinTarget = req.DailyProteinTarget
	profile.DailyCarbsTarget = req.DailyCarbsTarget
	profile.DailyFatTarget = req.DailyFatTarget

	if err := s.db.WithContext(ctx).Save(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}
