package engine

import (
	"math"
	"sort"
	"time"
)

// InventoryItem is the read-only view of a stored closet item the matcher
// ranks. CreatedAt breaks score ties, most recent first.
type InventoryItem struct {
	ID         uint
	Attributes ClothingAttributes
	CreatedAt  time.Time
}

// ScoredItem is an inventory item with its match score, 0-100.
type ScoredItem struct {
	Item  InventoryItem
	Score float64
}

// MatchResult carries the ranked matches plus the full category count so
// callers can render "showing N of M".
type MatchResult struct {
	Items           []ScoredItem
	TotalInCategory int
}

// MatcherConfig tunes inventory ranking. MinScore drops items that
// technically sit in the category but match neither color nor formality.
type MatcherConfig struct {
	MinScore float64
}

func DefaultMatcherConfig() MatcherConfig {
	return MatcherConfig{MinScore: 40}
}

// Matcher ranks stored items against a category recommendation.
type Matcher struct {
	Config MatcherConfig
}

func NewMatcher() *Matcher {
	return &Matcher{Config: DefaultMatcherConfig()}
}

// Matches filters items to the recommendation's category, scores each by
// color and formality fit, and returns the top matches. Empty input is not
// an error: an empty list and a zero count come back.
func (m *Matcher) Matches(rec CategoryRecommendation, items []InventoryItem, limit int) MatchResult {
	if limit <= 0 {
		limit = 5
	}

	inCategory := make([]InventoryItem, 0, len(items))
	for _, item := range items {
		if item.Attributes.Category.L1 == rec.CategoryL1 {
			inCategory = append(inCategory, item)
		}
	}

	scored := make([]ScoredItem, 0, len(inCategory))
	for _, item := range inCategory {
		score := scoreMatch(item.Attributes, rec.Colors, rec.FormalityRange)
		if score >= m.Config.MinScore {
			scored = append(scored, ScoredItem{Item: item, Score: score})
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].Score != scored[j].Score {
			return scored[i].Score > scored[j].Score
		}
		return scored[i].Item.CreatedAt.After(scored[j].Item.CreatedAt)
	})

	if len(scored) > limit {
		scored = scored[:limit]
	}

	return MatchResult{Items: scored, TotalInCategory: len(inCategory)}
}

// scoreMatch splits 100 points evenly between color and formality fit.
func scoreMatch(attrs ClothingAttributes, colors []RecommendedColor, formality FormalityRange) float64 {
	score := 0.0

	// nearest recommended color, 0 distance is worth the full 50 points
	best := math.MaxFloat64
	for _, rc := range colors {
		if d, err := colorDistance(attrs.Color.Hex, rc.Hex); err == nil && d < best {
			best = d
		}
	}
	if best < math.MaxFloat64 {
		score += math.Max(0, 50-best/3)
	}

	if formality.Contains(attrs.Formality) {
		score += 50
	} else {
		var diff float64
		if attrs.Formality < formality.Min {
			diff = formality.Min - attrs.Formality
		} else {
			diff = attrs.Formality - formality.Max
		}
		score += math.Max(0, 50-diff*15)
	}

	return score
}

// colorDistance is a weighted Euclidean distance in RGB space. The eye is
// most sensitive to green, so channels weigh 2/4/3.
func colorDistance(hex1, hex2 string) (float64, error) {
	r1, g1, b1, err := parseHexChannels(hex1)
	if err != nil {
		return 0, err
	}
	r2, g2, b2, err := parseHexChannels(hex2)
	if err != nil {
		return 0, err
	}
	dr := float64(r1 - r2)
	dg := float64(g1 - g2)
	db := float64(b1 - b2)
	return math.Sqrt(2*dr*dr + 4*dg*dg + 3*db*db), nil
}
