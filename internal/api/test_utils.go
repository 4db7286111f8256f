package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mealsnap/backend/internal/middleware"
	"github.com/mealsnap/backend/internal/models"
	"github.com/mealsnap/backend/internal/service"
	"github.com/mealsnap/backend/internal/types"
)

// StubVisionService returns canned detection results for handler tests.
type StubVisionService struct {
	Candidates []types.DetectedFoodCandidate
	Err        error
}

func (s *StubVisionService) DetectFoods(ctx context.Context, imageURL string) ([]types.DetectedFoodCandidate, error) {
	return s.Candidates, s.Err
}

// MemoryDraftService is an in-memory stand-in for the Redis draft store.
type MemoryDraftService struct {
	drafts map[string]*service.DetectionDraft
}

func NewMemoryDraftService() *MemoryDraftService {
	return &MemoryDraftService{drafts: make(map[string]*service.DetectionDraft)}
}

func (m *MemoryDraftService) SaveDraft(ctx context.Context, draft *service.DetectionDraft) error {
	draft.ID = uuid.New().String()
	m.drafts[draft.ID] = draft
	return nil
}

func (m *MemoryDraftService) GetDraft(ctx context.Context, id string) (*service.DetectionDraft, error) {
	draft, ok := m.drafts[id]
	if !ok {
		return nil, errors.New("draft not found")
	}
	return draft, nil
}

func (m *MemoryDraftService) UpdateDraft(ctx context.Context, draft *service.DetectionDraft) error {
	m.drafts[draft.ID] = draft
	return nil
}

func (m *MemoryDraftService) DeleteDraft(ctx context.Context, id string) error {
	delete(m.drafts, id)
	return nil
}

func (m *MemoryDraftService) RescaleItem(ctx context.Context, draft *service.DetectionDraft, foodID string, newPortionGrams float64) error {
	for i, food := range draft.Foods {
		if food.ID != foodID {
			continue
		}
		rescaled, err := service.Rescale(food, newPortionGrams)
		if err != nil {
			return err
		}
		draft.Foods[i] = rescaled
		return m.UpdateDraft(ctx, draft)
	}
	return service.ErrDraftItemNotFound
}

func (m *MemoryDraftService) RemoveItem(ctx context.Context, draft *service.DetectionDraft, foodID string) error {
	for i, food := range draft.Foods {
		if food.ID != foodID {
			continue
		}
		draft.Foods = append(draft.Foods[:i], draft.Foods[i+1:]...)
		return m.UpdateDraft(ctx, draft)
	}
	return service.ErrDraftItemNotFound
}

func (m *MemoryDraftService) AddItem(ctx context.Context, draft *service.DetectionDraft, name string, portionGrams float64) (types.EnrichedFoodRecord, error) {
	if portionGrams <= 0 {
		return types.EnrichedFoodRecord{}, service.ErrInvalidPortion
	}
	record := types.EnrichedFoodRecord{
		ID:           uuid.New().String(),
		Name:         name,
		PortionGrams: portionGrams,
		Matched:      false,
	}
	draft.Foods = append(draft.Foods, record)
	return record, m.UpdateDraft(ctx, draft)
}

// testEnv bundles the pieces handler tests need.
type testEnv struct {
	Router *gin.Engine
	DB     *gorm.DB
	Drafts *MemoryDraftService
	Tokens *service.TokenService
	UserID uuid.UUID
	Token  string
}

// setupTestEnv wires real services over in-memory SQLite behind the full
// router, with the given vision stub.
func setupTestEnv(t *testing.T, vision service.IVisionService) *testEnv {
	gin.SetMode(gin.TestMode)

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

	catalog := []models.FoodCatalogEntry{
		{ID: uuid.New(), Name: "Chicken Breast", CaloriesPer100: 165, ProteinPer100: 31, CarbsPer100: 0, FatPer100: 3.6},
		{ID: uuid.New(), Name: "Broccoli", CaloriesPer100: 34, ProteinPer100: 2.8, CarbsPer100: 6.6, FatPer100: 0.4},
	}
	require.NoError(t, db.Create(&catalog).Error)

	drafts := NewMemoryDraftService()
	tokens := service.NewTokenService("test-secret")

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(middleware.CORS())
	v1 := engine.Group("/api/v1")
	v1.Use(middleware.AuthMiddleware(tokens))
	NewDetectionHandler(vision, service.NewEnricher(db, nil), drafts).RegisterRoutes(v1)
	NewDraftHandler(drafts).RegisterRoutes(v1)
	NewMealHandler(service.NewMealService(db), drafts).RegisterRoutes(v1)
	NewProfileHandler(service.NewProfileService(db)).RegisterRoutes(v1)
	NewRecommendationHandler(service.NewRecommendationService(db)).RegisterRoutes(v1)

	userID := uuid.New()
	token, err := tokens.GenerateToken(userID)
	require.NoError(t, err)

	return &testEnv{
		Router: engine,
		DB:     db,
		Drafts: drafts,
		Tokens: tokens,
		UserID: userID,
		Token:  token,
	}
}

// performRequest runs one request through the router with the given bearer
// token; an empty token sends no Authorization header.
func performRequest(router *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	var req *http.Request

	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			panic(err)
		}
		req = httptest.NewRequest(method, path, bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	router.ServeHTTP(w, req)
	return w
}
