package engine

import (
	"errors"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func navyTopsBase(t *testing.T) ClothingAttributes {
	t.Helper()
	return ClothingAttributes{
		Color:      navyBase(t),
		Category:   Category{L1: "Tops", L2: "Sweaters"},
		Formality:  3,
		Aesthetics: []string{"Classic"},
	}
}

func TestRecommendBottomsForNavyTop(t *testing.T) {
	rec, err := NewRecommender().ForCategory(navyTopsBase(t), "Bottoms")
	require.NoError(t, err)

	assert.Equal(t, "Bottoms", rec.CategoryL1)
	assert.True(t, rec.FormalityRange.Contains(3), "range %+v must contain the base formality", rec.FormalityRange)

	neutrals := 0
	for _, c := range rec.Colors {
		if c.HarmonyType == HarmonyNeutral {
			neutrals++
		}
	}
	assert.GreaterOrEqual(t, neutrals, 1, "at least one neutral candidate")

	require.NotEmpty(t, rec.SuggestedL2)
	for _, l2 := range rec.SuggestedL2 {
		assert.Contains(t, CategoryTaxonomy["Bottoms"], l2)
	}

	assert.Contains(t, rec.Aesthetics, "Classic")
	assert.NotEmpty(t, rec.Example)
}

func TestRecommendSuggestedL2FiltersByFormality(t *testing.T) {
	base := navyTopsBase(t)

	casual := base
	casual.Formality = 1
	rec, err := NewRecommender().ForCategory(casual, "Shoes")
	require.NoError(t, err)
	assert.Contains(t, rec.SuggestedL2, "Sneakers")
	assert.NotContains(t, rec.SuggestedL2, "Oxfords")

	formal := base
	formal.Formality = 5
	rec, err = NewRecommender().ForCategory(formal, "Shoes")
	require.NoError(t, err)
	assert.Contains(t, rec.SuggestedL2, "Oxfords")
	assert.NotContains(t, rec.SuggestedL2, "Sandals")
}

func TestRecommendCompanionAesthetics(t *testing.T) {
	base := navyTopsBase(t)
	base.Aesthetics = []string{"Streetwear"}

	rec, err := NewRecommender().ForCategory(base, "Shoes")
	require.NoError(t, err)
	assert.Equal(t, []string{"Streetwear", "Athleisure"}, rec.Aesthetics)
}

func TestRecommendUnknownCategory(t *testing.T) {
	_, err := NewRecommender().ForCategory(navyTopsBase(t), "Hats")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownCategory))

	badBase := navyTopsBase(t)
	badBase.Category.L1 = "Garments"
	_, err = NewRecommender().ForCategory(badBase, "Bottoms")
	assert.True(t, errors.Is(err, ErrUnknownCategory))
}

func TestRecommendForAllSkipsBaseAndFilled(t *testing.T) {
	recs, err := NewRecommender().ForAll(navyTopsBase(t), []string{"Shoes"})
	require.NoError(t, err)

	seen := map[string]bool{}
	for _, rec := range recs {
		seen[rec.CategoryL1] = true
	}
	assert.False(t, seen["Tops"], "base category is never recommended")
	assert.False(t, seen["Shoes"], "filled categories are skipped")
	assert.True(t, seen["Bottoms"])
	assert.True(t, seen["Outerwear"])
}

func TestRecommendForFullBodyBase(t *testing.T) {
	base := navyTopsBase(t)
	base.Category = Category{L1: "Full Body", L2: "Dresses"}

	recs, err := NewRecommender().ForAll(base, nil)
	require.NoError(t, err)
	require.Len(t, recs, 3)
	assert.Equal(t, "Shoes", recs[0].CategoryL1)
	assert.Equal(t, "Accessories", recs[1].CategoryL1)
	assert.Equal(t, "Outerwear", recs[2].CategoryL1)
}

func TestRecommendDeterministic(t *testing.T) {
	base := navyTopsBase(t)
	r := NewRecommender()

	first, err := r.ForAll(base, nil)
	require.NoError(t, err)
	second, err := r.ForAll(base, nil)
	require.NoError(t, err)
	assert.True(t, reflect.DeepEqual(first, second), "identical input must yield identical output")
}
