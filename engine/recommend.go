package engine

import "fmt"

// CategoryRecommendation is a full per-category suggestion: which colors,
// formality window, aesthetic tags and sub-categories pair with the base.
// Computed fresh per request, never persisted.
type CategoryRecommendation struct {
	CategoryL1     string             `json:"category_l1"`
	Colors         []RecommendedColor `json:"colors"`
	FormalityRange FormalityRange     `json:"formality_range"`
	Aesthetics     []string           `json:"aesthetics"`
	SuggestedL2    []string           `json:"suggested_l2"`
	Example        string             `json:"example"`
}

// PaletteProvider supplies harmony palettes. HarmonyEngine is the direct
// implementation; callers may wrap it with a cache.
type PaletteProvider interface {
	Palette(base Color) []RecommendedColor
}

// Recommender composes the harmony, formality and aesthetic rule sets into
// per-category recommendations for a base item.
type Recommender struct {
	Palettes PaletteProvider
}

func NewRecommender() *Recommender {
	return &Recommender{Palettes: NewHarmonyEngine()}
}

// ForCategory builds the recommendation for a single target category.
func (r *Recommender) ForCategory(base ClothingAttributes, targetL1 string) (CategoryRecommendation, error) {
	if !KnownCategory(targetL1) {
		return CategoryRecommendation{}, fmt.Errorf("%w: %q", ErrUnknownCategory, targetL1)
	}
	if !KnownCategory(base.Category.L1) {
		return CategoryRecommendation{}, fmt.Errorf("%w: %q", ErrUnknownCategory, base.Category.L1)
	}

	formalityRange, err := FormalityRangeFor(base.Formality, targetL1)
	if err != nil {
		return CategoryRecommendation{}, err
	}

	colors := r.Palettes.Palette(base.Color)
	aesthetics := suggestedAesthetics(base.Aesthetics, targetL1)
	suggestedL2 := suggestedSubCategories(targetL1, formalityRange)

	return CategoryRecommendation{
		CategoryL1:     targetL1,
		Colors:         colors,
		FormalityRange: formalityRange,
		Aesthetics:     aesthetics,
		SuggestedL2:    suggestedL2,
		Example:        exampleSentence(base, targetL1, colors, suggestedL2),
	}, nil
}

// ForAll recommends every category the base leaves open. A full-body base
// only leaves shoes, accessories and outerwear; anything else leaves all
// categories but its own. Already filled categories are skipped.
func (r *Recommender) ForAll(base ClothingAttributes, filled []string) ([]CategoryRecommendation, error) {
	targets := openCategories(base.Category.L1, filled)
	recs := make([]CategoryRecommendation, 0, len(targets))
	for _, l1 := range targets {
		rec, err := r.ForCategory(base, l1)
		if err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}
	return recs, nil
}

func openCategories(baseL1 string, filled []string) []string {
	skip := make(map[string]bool, len(filled)+1)
	skip[baseL1] = true
	for _, l1 := range filled {
		skip[l1] = true
	}

	var candidates []string
	if baseL1 == "Full Body" {
		candidates = []string{"Shoes", "Accessories", "Outerwear"}
	} else {
		candidates = CategoryOrder
	}

	out := make([]string, 0, len(candidates))
	for _, l1 := range candidates {
		if !skip[l1] {
			out = append(out, l1)
		}
	}
	return out
}

// suggestedAesthetics unions the base tags with the companion table entries
// for the target category, preserving input order and dropping duplicates.
func suggestedAesthetics(baseTags []string, targetL1 string) []string {
	out := make([]string, 0, len(baseTags)+2)
	seen := make(map[string]bool, len(baseTags)+2)
	add := func(tag string) {
		if !seen[tag] {
			seen[tag] = true
			out = append(out, tag)
		}
	}
	for _, tag := range baseTags {
		add(tag)
	}
	for _, tag := range baseTags {
		for _, companion := range aestheticCompanions[tag][targetL1] {
			add(companion)
		}
	}
	return out
}

// suggestedSubCategories filters the taxonomy by the formality range. If the
// range excludes everything the whole list comes back, a thin suggestion
// beats an empty one.
func suggestedSubCategories(targetL1 string, r FormalityRange) []string {
	all := CategoryTaxonomy[targetL1]
	out := make([]string, 0, len(all))
	for _, l2 := range all {
		if mid, ok := subCategoryFormality[l2]; ok && r.Contains(mid) {
			out = append(out, l2)
		}
	}
	if len(out) == 0 {
		out = append(out, all...)
	}
	return out
}

func exampleSentence(base ClothingAttributes, targetL1 string, colors []RecommendedColor, suggestedL2 []string) string {
	colorName := "a neutral"
	if len(colors) > 0 {
		colorName = colors[0].Name
	}
	sub := targetL1
	if len(suggestedL2) > 0 {
		sub = suggestedL2[0]
	}
	baseName := base.Color.Name
	if baseName == "" {
		baseName = ColorName(base.Color.HSL)
	}
	basePiece := base.Category.L2
	if basePiece == "" {
		basePiece = base.Category.L1
	}
	return fmt.Sprintf("Try %s %s with your %s %s.", colorName, sub, baseName, basePiece)
}
