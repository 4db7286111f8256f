package api

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mealsnap/backend/internal/service"
	"github.com/mealsnap/backend/internal/types"
)

func seedDraft(t *testing.T, env *testEnv, userID uuid.UUID) *service.DetectionDraft {
	draft := &service.DetectionDraft{
		UserID:   userID,
		ImageURL: "https://example.com/meal.jpg",
		Foods: []types.EnrichedFoodRecord{
			{ID: "food-1", Name: "Chicken Breast", PortionGrams: 150, Calories: 248, Protein: 46.5, Fat: 5.4, Matched: true},
			{ID: "food-2", Name: "Broccoli", PortionGrams: 100, Calories: 34, Protein: 2.8, Carbs: 6.6, Fat: 0.4, Matched: true},
		},
	}
	require.NoError(t, env.Drafts.SaveDraft(context.Background(), draft))
	return draft
}

func TestGetDraftEndpoint(t *testing.T) {
	env := setupTestEnv(t, &StubVisionService{})
	draft := seedDraft(t, env, env.UserID)

	w := performRequest(env.Router, http.MethodGet, "/api/v1/drafts/"+draft.ID, env.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var got service.DetectionDraft
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, draft.ID, got.ID)
	assert.Len(t, got.Foods, 2)
}

func TestDraftOwnershipHidden(t *testing.T) {
	env := setupTestEnv(t, &StubVisionService{})
	foreign := seedDraft(t, env, uuid.New())

	w := performRequest(env.Router, http.MethodGet, "/api/v1/drafts/"+foreign.ID, env.Token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = performRequest(env.Router, http.MethodGet, "/api/v1/drafts/nonexistent", env.Token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdatePortionEndpoint(t *testing.T) {
	env := setupTestEnv(t, &StubVisionService{})
	draft := seedDraft(t, env, env.UserID)

	w := performRequest(env.Router, http.MethodPut, "/api/v1/drafts/"+draft.ID+"/items/food-1/portion", env.Token,
		types.UpdatePortionRequest{PortionGrams: 300})
	require.Equal(t, http.StatusOK, w.Code)

	var got service.DetectionDraft
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, 300.0, got.Foods[0].PortionGrams)
	assert.Equal(t, 496.0, got.Foods[0].Calories)
	assert.Equal(t, 93.0, got.Foods[0].Protein)

	// The other food is untouched.
	assert.Equal(t, 100.0, got.Foods[1].PortionGrams)
}

func TestUpdatePortionRejectsBadValues(t *testing.T) {
	env := setupTestEnv(t, &StubVisionService{})
	draft := seedDraft(t, env, env.UserID)

	w := performRequest(env.Router, http.MethodPut, "/api/v1/drafts/"+draft.ID+"/items/food-1/portion", env.Token,
		types.UpdatePortionRequest{PortionGrams: -10})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = performRequest(env.Router, http.MethodPut, "/api/v1/drafts/"+draft.ID+"/items/nope/portion", env.Token,
		types.UpdatePortionRequest{PortionGrams: 200})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAddAndRemoveDraftItem(t *testing.T) {
	env := setupTestEnv(t, &StubVisionService{})
	draft := seedDraft(t, env, env.UserID)

	w := performRequest(env.Router, http.MethodPost, "/api/v1/drafts/"+draft.ID+"/items", env.Token,
		types.AddFoodRequest{Name: "Bread", PortionGrams: 40})
	require.Equal(t, http.StatusOK, w.Code)

	var addResp struct {
		Food  types.EnrichedFoodRecord `json:"food"`
		Draft service.DetectionDraft   `json:"draft"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &addResp))
	assert.False(t, addResp.Food.Matched)
	assert.Equal(t, "Bread", addResp.Food.Name)
	assert.Len(t, addResp.Draft.Foods, 3)

	w = performRequest(env.Router, http.MethodDelete, "/api/v1/drafts/"+draft.ID+"/items/food-2", env.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var got service.DetectionDraft
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Len(t, got.Foods, 2)
	for _, f := range got.Foods {
		assert.NotEqual(t, "food-2", f.ID)
	}
}

func TestAddDraftItemValidation(t *testing.T) {
	env := setupTestEnv(t, &StubVisionService{})
	draft := seedDraft(t, env, env.UserID)

	w := performRequest(env.Router, http.MethodPost, "/api/v1/drafts/"+draft.ID+"/items", env.Token,
		types.AddFoodRequest{Name: "", PortionGrams: 40})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = performRequest(env.Router, http.MethodPost, "/api/v1/drafts/"+draft.ID+"/items", env.Token,
		types.AddFoodRequest{Name: "Bread", PortionGrams: 0})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteDraftEndpoint(t *testing.T) {
	env := setupTestEnv(t, &StubVisionService{})
	draft := seedDraft(t, env, env.UserID)

	w := performRequest(env.Router, http.MethodDelete, "/api/v1/drafts/"+draft.ID, env.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = performRequest(env.Router, http.MethodGet, "/api/v1/drafts/"+draft.ID, env.Token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
