package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mealsnap/backend/internal/models"
	"github.com/mealsnap/backend/internal/types"
)

// MatchStrategy resolves a vision candidate name to a catalog entry. A nil
// entry with a nil error means no match; better matching (token overlap,
// synonym tables) can be layered in without touching callers.
type MatchStrategy interface {
	Match(ctx context.Context, db *gorm.DB, name string) (*models.FoodCatalogEntry, error)
}

// SubstringMatch is the baseline strategy: case-insensitive containment of
// the candidate name within the catalog name. When several entries contain
// the name, the store's first result wins; no ranking is applied.
type SubstringMatch struct{}

func (SubstringMatch) Match(ctx context.Context, db *gorm.DB, name string) (*models.FoodCatalogEntry, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, nil
	}

	var entry models.FoodCatalogEntry
	err := db.WithContext(ctx).
		Where("LOWER(name) LIKE ?", "%"+strings.ToLower(name)+"%").
		First(&entry).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &entry, nil
}

// ExactMatch resolves only full case-insensitive name equality.
type ExactMatch struct{}

func (ExactMatch) Match(ctx context.Context, db *gorm.DB, name string) (*models.FoodCatalogEntry, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, nil
	}

	var entry models.FoodCatalogEntry
	err := db.WithContext(ctx).
		Where("LOWER(name) = ?", strings.ToLower(name)).
		First(&entry).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &entry, nil
}

// Enricher matches vision candidates against the nutrition catalog and
// scales per-100g nutrients to the estimated portion.
type Enricher struct {
	db    *gorm.DB
	match MatchStrategy
}

// NewEnricher creates an Enricher with the given match strategy; a nil
// strategy falls back to substring matching.
func NewEnricher(db *gorm.DB, match MatchStrategy) *Enricher {
	if match == nil {
		match = SubstringMatch{}
	}
	return &Enricher{db: db, match: match}
}

// Enrich converts candidates into enriched food records, one per candidate,
// independently. Unmatched candidates are not errors: they come back with
// zero nutrients, a fresh synthesized id and matched=false, still editable
// and savable. A catalog read failure for one candidate fails the whole pass.
func (e *Enricher) Enrich(ctx context.Context, candidates []types.DetectedFoodCandidate) ([]types.EnrichedFoodRecord, error) {
	records := make([]types.EnrichedFoodRecord, 0, len(candidates))

	for _, c := range candidates {
		entry, err := e.match.Match(ctx, e.db, c.Name)
		if err != nil {
			return nil, err
		}

		if entry == nil {
			records = append(records, types.EnrichedFoodRecord{
				ID:           uuid.New().String(),
				Name:         c.Name,
				PortionGrams: c.PortionGrams,
				Matched:      false,
			})
			continue
		}

		scale := c.PortionGrams / 100
		records = append(records, types.EnrichedFoodRecord{
			ID:           entry.ID.String(),
			Name:         entry.Name,
			PortionGrams: c.PortionGrams,
			Calories:     roundWhole(entry.CaloriesPer100 * scale),
			Protein:      round1(entry.ProteinPer100 * scale),
			Carbs:        round1(entry.CarbsPer100 * scale),
			Fat:          round1(entry.FatPer100 * scale),
			Matched:      true,
		})
	}

	return records, nil
}
