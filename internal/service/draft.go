package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/mealsnap/backend/internal/types"
)

// ErrDraftItemNotFound is returned when a portion edit or removal names a
// food id that is not in the draft.
var ErrDraftItemNotFound = errors.New("food not found in draft")

const draftTTL = 24 * time.Hour

// DetectionDraft is the editable enriched-record set held between detection
// and meal save. Abandoned drafts expire with the TTL; abandoning one never
// mutates a stored record.
type DetectionDraft struct {
	ID        string                     `json:"id"`
	UserID    uuid.UUID                  `json:"user_id"`
	ImageURL  string                     `json:"image_url"`
	Foods     []types.EnrichedFoodRecord `json:"foods"`
	Message   string                     `json:"message,omitempty"`
	CreatedAt time.Time                  `json:"created_at"`
	UpdatedAt time.Time                  `json:"updated_at"`
}

// DraftService stores detection drafts in Redis.
type DraftService struct {
	redis *redis.Client
}

// NewDraftService creates a DraftService.
func NewDraftService(redisClient *redis.Client) *DraftService {
	return &DraftService{redis: redisClient}
}

func draftKey(id string) string {
	return fmt.Sprintf("detection:draft:%s", id)
}

// SaveDraft assigns the draft an id and persists it with the draft TTL.
func (s *DraftService) SaveDraft(ctx context.Context, draft *DetectionDraft) error {
	draft.ID = uuid.New().String()
	draft.CreatedAt = time.Now()
	draft.UpdatedAt = time.Now()
	return s.writeDraft(ctx, draft)
}

// GetDraft retrieves a detection draft from Redis.
func (s *DraftService) GetDraft(ctx context.Context, id string) (*DetectionDraft, error) {
	data, err := s.redis.Get(ctx, draftKey(id)).Bytes()
	if err != nil {
		return nil, fmt.Errorf("failed to get draft from Redis: %w", err)
	}

	var draft DetectionDraft
	if err := json.Unmarshal(data, &draft); err != nil {
		return nil, fmt.Errorf("failed to unmarshal draft: %w", err)
	}
	return &draft, nil
}

// UpdateDraft overwrites an existing draft, refreshing its TTL.
func (s *DraftService) UpdateDraft(ctx context.Context, draft *DetectionDraft) error {
	draft.UpdatedAt = time.Now()
	return s.writeDraft(ctx, draft)
}

// DeleteDraft removes a detection draft from Redis.
func (s *DraftService) DeleteDraft(ctx context.Context, id string) error {
	if err := s.redis.Del(ctx, draftKey(id)).Err(); err != nil {
		return fmt.Errorf("failed to delete draft from Redis: %w", err)
	}
	return nil
}

// RescaleItem applies a portion edit to one food in the draft and persists
// the result. The nutrient fields and portion update together or not at all.
func (s *DraftService) RescaleItem(ctx context.Context, draft *DetectionDraft, foodID string, newPortionGrams float64) error {
	for i, food := range draft.Foods {
		if food.ID != foodID {
			continue
		}
		rescaled, err := Rescale(food, newPortionGrams)
		if err != nil {
			return err
		}
		draft.Foods[i] = rescaled
		return s.UpdateDraft(ctx, draft)
	}
	return ErrDraftItemNotFound
}

// RemoveItem drops one food from the draft and persists the result.
func (s *DraftService) RemoveItem(ctx context.Context, draft *DetectionDraft, foodID string) error {
	for i, food := range draft.Foods {
		if food.ID != foodID {
			continue
		}
		draft.Foods = append(draft.Foods[:i], draft.Foods[i+1:]...)
		return s.UpdateDraft(ctx, draft)
	}
	return ErrDraftItemNotFound
}

// AddItem appends a manually entered, unmatched food to the draft. The
// caller edits nutrients via portion rescaling once real values are known.
func (s *DraftService) AddItem(ctx context.Context, draft *DetectionDraft, name string, portionGrams float64) (types.EnrichedFoodRecord, error) {
	if portionGrams <= 0 {
		return types.EnrichedFoodRecord{}, ErrInvalidPortion
	}

	record := types.EnrichedFoodRecord{
		ID:           uuid.New().String(),
		Name:         name,
		PortionGrams: portionGrams,
		Matched:      false,
	}
	draft.Foods = append(draft.Foods, record)
	if err := s.UpdateDraft(ctx, draft); err != nil {
		return types.EnrichedFoodRecord{}, err
	}
	return record, nil
}

func (s *DraftService) writeDraft(ctx context.Context, draft *DetectionDraft) error {
	data, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("failed to marshal draft: %w", err)
	}
	if err := s.redis.Set(ctx, draftKey(draft.ID), data, draftTTL).Err(); err != nil {
		return fmt.Errorf("failed to save draft to Redis: %w", err)
	}
	return nil
}
