package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"siyapi/dbhelper"
	"siyapi/engine"
	"siyapi/test"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func navyTopRequest() RecommendationIn {
	return RecommendationIn{
		BaseColor:      engine.Color{Hex: "#1E3A5F"},
		BaseFormality:  3,
		BaseAesthetics: []string{"Streetwear"},
		BaseCategory:   engine.Category{L1: "Tops", L2: "Sweater"},
	}
}

func TestGetRecommendationsAllCategories(t *testing.T) {
	db := dbhelper.SetupTestDB()
	cleaner := dbhelper.SetupCleaner(db)
	defer cleaner()
	e := SetupServer(db, nil, engine.NewHarmonyEngine())

	req := test.NewJSONRequest("POST", "/api/recommendations", navyTopRequest())
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, "Expected status code 200 OK, got %d: %s", rec.Code, rec.Body.String())

	var response RecommendationOut
	err := json.Unmarshal(rec.Body.Bytes(), &response)
	require.NoError(t, err)
	require.Len(t, response.Recommendations, 5)

	gotCategories := make([]string, 0, len(response.Recommendations))
	for _, r := range response.Recommendations {
		gotCategories = append(gotCategories, r.CategoryL1)
		assert.NotEmpty(t, r.Colors)
		assert.True(t, r.FormalityRange.Contains(3), "range %+v should contain base formality", r.FormalityRange)
		assert.NotEmpty(t, r.SuggestedL2)
		assert.NotEmpty(t, r.Example)
	}
	assert.Equal(t, []string{"Bottoms", "Shoes", "Accessories", "Outerwear", "Full Body"}, gotCategories)
}

func TestGetRecommendationsSubset(t *testing.T) {
	db := dbhelper.SetupTestDB()
	cleaner := dbhelper.SetupCleaner(db)
	defer cleaner()
	e := SetupServer(db, nil, engine.NewHarmonyEngine())

	reqBody := navyTopRequest()
	reqBody.Categories = []string{"Shoes", "Bottoms"}

	req := test.NewJSONRequest("POST", "/api/recommendations", reqBody)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var response RecommendationOut
	err := json.Unmarshal(rec.Body.Bytes(), &response)
	require.NoError(t, err)
	require.Len(t, response.Recommendations, 2)
	// requested order is preserved
	assert.Equal(t, "Shoes", response.Recommendations[0].CategoryL1)
	assert.Equal(t, "Bottoms", response.Recommendations[1].CategoryL1)
}

func TestGetRecommendationsDerivesColorFromHex(t *testing.T) {
	db := dbhelper.SetupTestDB()
	cleaner := dbhelper.SetupCleaner(db)
	defer cleaner()
	e := SetupServer(db, nil, engine.NewHarmonyEngine())

	// client lies about neutrality, hex wins
	reqBody := navyTopRequest()
	reqBody.BaseColor.IsNeutral = true
	reqBody.Categories = []string{"Bottoms"}

	req := test.NewJSONRequest("POST", "/api/recommendations", reqBody)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var response RecommendationOut
	err := json.Unmarshal(rec.Body.Bytes(), &response)
	require.NoError(t, err)
	require.Len(t, response.Recommendations, 1)

	// a neutral base would have produced curated accents instead of
	// hue rotations, so analogous colors prove the hex was re-derived
	var harmonies []string
	for _, c := range response.Recommendations[0].Colors {
		harmonies = append(harmonies, c.HarmonyType)
	}
	assert.Contains(t, harmonies, engine.HarmonyAnalogous)
}

func TestGetRecommendationsInvalidColor(t *testing.T) {
	db := dbhelper.SetupTestDB()
	cleaner := dbhelper.SetupCleaner(db)
	defer cleaner()
	e := SetupServer(db, nil, engine.NewHarmonyEngine())

	reqBody := navyTopRequest()
	reqBody.BaseColor = engine.Color{Hex: "#1E3A"}

	req := test.NewJSONRequest("POST", "/api/recommendations", reqBody)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var response map[string]string
	err := json.Unmarshal(rec.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Contains(t, response["error"], "color")
}

func TestGetRecommendationsUnknownCategory(t *testing.T) {
	db := dbhelper.SetupTestDB()
	cleaner := dbhelper.SetupCleaner(db)
	defer cleaner()
	e := SetupServer(db, nil, engine.NewHarmonyEngine())

	reqBody := navyTopRequest()
	reqBody.Categories = []string{"Hats"}

	req := test.NewJSONRequest("POST", "/api/recommendations", reqBody)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetRecommendationsMissingFormality(t *testing.T) {
	db := dbhelper.SetupTestDB()
	cleaner := dbhelper.SetupCleaner(db)
	defer cleaner()
	e := SetupServer(db, nil, engine.NewHarmonyEngine())

	reqBody := navyTopRequest()
	reqBody.BaseFormality = 0

	req := test.NewJSONRequest("POST", "/api/recommendations", reqBody)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
