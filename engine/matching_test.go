package engine

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bottomsRecommendation() CategoryRecommendation {
	return CategoryRecommendation{
		CategoryL1: "Bottoms",
		Colors: []RecommendedColor{
			{Hex: "#1E3A5F", Name: "Navy", HarmonyType: HarmonyNeutral},
			{Hex: "#F5F5DC", Name: "Beige", HarmonyType: HarmonyNeutral},
		},
		FormalityRange: FormalityRange{Min: 2, Max: 4},
	}
}

func inventoryItem(id uint, hex, l1 string, formality float64, createdAt time.Time) InventoryItem {
	return InventoryItem{
		ID: id,
		Attributes: ClothingAttributes{
			Color:     Color{Hex: hex},
			Category:  Category{L1: l1, L2: "Jeans"},
			Formality: formality,
		},
		CreatedAt: createdAt,
	}
}

func TestMatchesLimitAndTotal(t *testing.T) {
	now := time.Now()
	items := make([]InventoryItem, 0, 14)
	for i := 0; i < 12; i++ {
		items = append(items, inventoryItem(uint(i+1), "#1E3A5F", "Bottoms", 3, now.Add(time.Duration(i)*time.Minute)))
	}
	// different category, must not count
	items = append(items, inventoryItem(100, "#1E3A5F", "Shoes", 3, now))
	items = append(items, inventoryItem(101, "#1E3A5F", "Tops", 3, now))

	result := NewMatcher().Matches(bottomsRecommendation(), items, 5)

	require.Len(t, result.Items, 5)
	assert.Equal(t, 12, result.TotalInCategory)
}

func TestMatchesRanksByScore(t *testing.T) {
	now := time.Now()
	items := []InventoryItem{
		inventoryItem(1, "#FF0000", "Bottoms", 3, now),  // poor color match
		inventoryItem(2, "#1E3A5F", "Bottoms", 3, now),  // exact color, in range
		inventoryItem(3, "#1E3A5F", "Bottoms", 5, now),  // exact color, one level out
	}

	result := NewMatcher().Matches(bottomsRecommendation(), items, 10)

	require.NotEmpty(t, result.Items)
	assert.Equal(t, uint(2), result.Items[0].Item.ID)
	for i := 1; i < len(result.Items); i++ {
		assert.GreaterOrEqual(t, result.Items[i-1].Score, result.Items[i].Score)
	}
	assert.Equal(t, 3, result.TotalInCategory)
}

func TestMatchesTieBreakByRecency(t *testing.T) {
	now := time.Now()
	older := inventoryItem(1, "#1E3A5F", "Bottoms", 3, now.Add(-48*time.Hour))
	newer := inventoryItem(2, "#1E3A5F", "Bottoms", 3, now)

	result := NewMatcher().Matches(bottomsRecommendation(), []InventoryItem{older, newer}, 10)

	require.Len(t, result.Items, 2)
	assert.Equal(t, uint(2), result.Items[0].Item.ID, "equal scores break toward the most recent item")
	assert.Equal(t, result.Items[0].Score, result.Items[1].Score)
}

func TestMatchesMinScoreCutoff(t *testing.T) {
	// wrong color and far outside the formality range: below the cutoff,
	// but still counted in the category total
	offItem := inventoryItem(1, "#00FF00", "Bottoms", 3, time.Now())
	rec := bottomsRecommendation()
	rec.FormalityRange = FormalityRange{Min: 5, Max: 5}
	rec.Colors = []RecommendedColor{{Hex: "#800020", Name: "Burgundy"}}

	result := NewMatcher().Matches(rec, []InventoryItem{offItem}, 10)

	assert.Empty(t, result.Items)
	assert.Equal(t, 1, result.TotalInCategory)
}

func TestMatchesEmptyInventory(t *testing.T) {
	result := NewMatcher().Matches(bottomsRecommendation(), nil, 5)
	assert.Empty(t, result.Items)
	assert.Equal(t, 0, result.TotalInCategory)
}

func TestMatchesPerfectItemScoresFull(t *testing.T) {
	item := inventoryItem(1, "#1E3A5F", "Bottoms", 3, time.Now())
	result := NewMatcher().Matches(bottomsRecommendation(), []InventoryItem{item}, 5)
	require.Len(t, result.Items, 1)
	assert.InDelta(t, 100, result.Items[0].Score, 1e-9,
		fmt.Sprintf("exact color in range should score full, got %v", result.Items[0].Score))
}
