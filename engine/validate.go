package engine

import (
	"fmt"
	"math"
)

// Color / pairing statuses share the same two-level scale.
const (
	StatusOK      = "ok"
	StatusWarning = "warning"
)

// ValidationStatus is the per-axis outcome of checking an item (or set of
// items) against the base.
type ValidationStatus struct {
	ColorStatus     string   `json:"color_status"`
	FormalityStatus string   `json:"formality_status"`
	AestheticStatus string   `json:"aesthetic_status"`
	PairingStatus   string   `json:"pairing_status"`
	Warnings        []string `json:"warnings"`
}

// OutfitValidation is the full verdict on a candidate outfit.
type OutfitValidation struct {
	IsComplete    bool     `json:"is_complete"`
	CohesionScore int      `json:"cohesion_score"`
	Verdict       string   `json:"verdict"`
	Warnings      []string `json:"warnings"`
	ColorStrip    []string `json:"color_strip"`
}

// ScoreWeights splits the cohesion penalty across the three axes.
// Must sum to 1.
type ScoreWeights struct {
	Color     float64
	Formality float64
	Aesthetic float64
}

func DefaultScoreWeights() ScoreWeights {
	return ScoreWeights{Color: 0.40, Formality: 0.35, Aesthetic: 0.25}
}

// Hue tolerance around a harmonious hue, and the distance at which the
// color penalty saturates. Gaps between adjacent harmony hues put the
// farthest possible item hue 45 degrees from its nearest candidate.
const (
	hueToleranceDeg  = 15
	huePenaltyMaxDeg = 45
)

// Validator evaluates candidate outfits against a base item.
type Validator struct {
	Harmony *HarmonyEngine
	Weights ScoreWeights
}

func NewValidator() *Validator {
	return &Validator{Harmony: NewHarmonyEngine(), Weights: DefaultScoreWeights()}
}

// colorPenalty is 0 when the item hue sits within tolerance of the nearest
// harmonious hue (or when either side is neutral), scaling linearly to 1 at
// huePenaltyMaxDeg. Neutral colors harmonize with everything.
func (v *Validator) colorPenalty(base, item Color) float64 {
	if base.IsNeutral || item.IsNeutral {
		return 0
	}
	nearest := math.MaxFloat64
	for _, hue := range v.Harmony.HarmonyHues(base) {
		if d := float64(HueDistance(item.HSL.H, hue)); d < nearest {
			nearest = d
		}
	}
	if nearest <= hueToleranceDeg {
		return 0
	}
	return clampFloat((nearest-hueToleranceDeg)/(huePenaltyMaxDeg-hueToleranceDeg), 0, 1)
}

func formalityPenalty(status string) float64 {
	switch status {
	case FormalityWarning:
		return 0.5
	case FormalityMismatch:
		return 1.0
	default:
		return 0
	}
}

// aestheticPenalty scales inversely with tag overlap. Untagged items place
// no constraint, so either side being empty costs nothing.
func aestheticPenalty(a, b []string) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	return 1 - AestheticOverlap(a, b)
}

// pairingIssue checks the shoe/bottom convention table for a pair of items.
// Returns a warning message, or "" when the pair is structurally fine.
func pairingIssue(a, b ClothingAttributes) string {
	var shoe, bottom *ClothingAttributes
	for _, item := range []*ClothingAttributes{&a, &b} {
		switch item.Category.L1 {
		case "Shoes":
			shoe = item
		case "Bottoms", "Full Body":
			bottom = item
		}
	}
	if shoe == nil || bottom == nil {
		return ""
	}
	allowed, ok := shoeBottomPairings[shoe.Category.L2]
	if !ok {
		// unmapped shoe type, stay permissive
		return ""
	}
	for _, l2 := range allowed {
		if l2 == bottom.Category.L2 {
			return ""
		}
	}
	return fmt.Sprintf("%s typically don't pair with %s", shoe.Category.L2, bottom.Category.L2)
}

// ValidateItem checks one candidate item against the base and the current
// outfit draft, without scoring. Used when the user is picking the next piece.
func (v *Validator) ValidateItem(newItem, base ClothingAttributes, currentOutfit []ClothingAttributes) ValidationStatus {
	status := ValidationStatus{
		ColorStatus:     StatusOK,
		FormalityStatus: FormalityOK,
		AestheticStatus: AestheticCohesive,
		PairingStatus:   StatusOK,
		Warnings:        []string{},
	}

	against := append([]ClothingAttributes{base}, currentOutfit...)

	for _, other := range against {
		if v.colorPenalty(other.Color, newItem.Color) > 0 {
			status.ColorStatus = StatusWarning
			status.Warnings = append(status.Warnings,
				fmt.Sprintf("%s clashes with %s", newItem.Color.Name, other.Color.Name))
		}
	}

	for _, other := range against {
		fs := FormalityStatus(newItem.Formality, other.Formality)
		if formalitySeverity(fs) > formalitySeverity(status.FormalityStatus) {
			status.FormalityStatus = fs
		}
		if fs != FormalityOK {
			status.Warnings = append(status.Warnings,
				fmt.Sprintf("Formality gap of %.1f levels with %s", math.Abs(newItem.Formality-other.Formality), describeItem(other)))
		}
	}

	if AestheticStatus(newItem.Aesthetics, base.Aesthetics) == AestheticWarning {
		status.AestheticStatus = AestheticWarning
		status.Warnings = append(status.Warnings, "No shared aesthetic tags with the base item")
	}

	for _, other := range against {
		if msg := pairingIssue(newItem, other); msg != "" {
			status.PairingStatus = StatusWarning
			status.Warnings = append(status.Warnings, msg)
		}
	}

	return status
}

// Validate audits a full candidate outfit against the base item: per-item
// penalties aggregate into the cohesion score, statuses are the worst seen
// per axis, and warnings come out in item-then-axis order.
func (v *Validator) Validate(base ClothingAttributes, outfit []ClothingAttributes) (OutfitValidation, error) {
	if len(outfit) == 0 {
		return OutfitValidation{}, fmt.Errorf("%w: at least the base item must be accompanied", ErrEmptyOutfit)
	}
	if base.Formality < 1 || base.Formality > 5 {
		return OutfitValidation{}, fmt.Errorf("%w: base formality %.2f", ErrOutOfRangeValue, base.Formality)
	}
	for _, item := range outfit {
		if item.Formality < 1 || item.Formality > 5 {
			return OutfitValidation{}, fmt.Errorf("%w: item formality %.2f", ErrOutOfRangeValue, item.Formality)
		}
	}

	warnings := []string{}
	totalPenalty := 0.0

	for i, item := range outfit {
		colorPen := v.colorPenalty(base.Color, item.Color)
		if colorPen > 0 {
			warnings = append(warnings,
				fmt.Sprintf("Item %d (%s): color clashes with the base palette", i+1, describeItem(item)))
		}

		fs := FormalityStatus(base.Formality, item.Formality)
		formPen := formalityPenalty(fs)
		if fs != FormalityOK {
			warnings = append(warnings,
				fmt.Sprintf("Item %d (%s): formality gap of %.1f levels with the base", i+1, describeItem(item), math.Abs(base.Formality-item.Formality)))
		}

		aesPen := aestheticPenalty(base.Aesthetics, item.Aesthetics)
		if AestheticStatus(base.Aesthetics, item.Aesthetics) == AestheticWarning {
			warnings = append(warnings,
				fmt.Sprintf("Item %d (%s): no shared aesthetic tags with the base", i+1, describeItem(item)))
		}

		if msg := pairingIssue(base, item); msg != "" {
			warnings = append(warnings, fmt.Sprintf("Item %d (%s): %s", i+1, describeItem(item), msg))
		}
		for j := 0; j < i; j++ {
			if msg := pairingIssue(outfit[j], item); msg != "" {
				warnings = append(warnings, fmt.Sprintf("Item %d (%s): %s", i+1, describeItem(item), msg))
			}
		}

		totalPenalty += v.Weights.Color*colorPen + v.Weights.Formality*formPen + v.Weights.Aesthetic*aesPen
	}

	warnings = append(warnings, structuralWarnings(base, outfit)...)

	// per-item average keeps a single bad piece from sinking a long outfit
	penalty := totalPenalty / float64(len(outfit)) * 100
	score := 100 - int(math.Round(clampFloat(penalty, 0, 100)))

	strip := make([]string, 0, len(outfit)+1)
	strip = append(strip, base.Color.Hex)
	for _, item := range outfit {
		strip = append(strip, item.Color.Hex)
	}

	return OutfitValidation{
		IsComplete:    isComplete(base, outfit),
		CohesionScore: score,
		Verdict:       verdictFor(score),
		Warnings:      warnings,
		ColorStrip:    strip,
	}, nil
}

// structuralWarnings flags compositions that make no sense in one outfit:
// more pieces than MaxOutfitItems in total, a second pair of shoes, bottoms
// or full-body piece, more than one outerwear layer, more than three
// accessories. The base counts as one of the pieces.
func structuralWarnings(base ClothingAttributes, outfit []ClothingAttributes) []string {
	counts := map[string]int{base.Category.L1: 1}
	for _, item := range outfit {
		counts[item.Category.L1]++
	}
	var out []string
	if total := len(outfit) + 1; total > MaxOutfitItems {
		out = append(out, fmt.Sprintf("Outfit has %d items, keep it to %d", total, MaxOutfitItems))
	}
	for _, l1 := range CategoryOrder {
		n := counts[l1]
		switch l1 {
		case "Shoes", "Bottoms", "Full Body":
			if n > 1 {
				out = append(out, fmt.Sprintf("Outfit has %d %s items", n, l1))
			}
		case "Outerwear":
			if n > maxOuterwear {
				out = append(out, fmt.Sprintf("Outfit has %d Outerwear layers", n))
			}
		case "Accessories":
			if n > maxAccessories {
				out = append(out, fmt.Sprintf("Outfit has %d Accessories, keep it to %d", n, maxAccessories))
			}
		}
	}
	return out
}

// isComplete requires a top or full-body piece, a bottom or full-body
// piece, and shoes. Score and completeness are independent.
func isComplete(base ClothingAttributes, outfit []ClothingAttributes) bool {
	present := map[string]bool{base.Category.L1: true}
	for _, item := range outfit {
		present[item.Category.L1] = true
	}
	hasTop := present["Tops"] || present["Full Body"]
	hasBottom := present["Bottoms"] || present["Full Body"]
	return hasTop && hasBottom && present["Shoes"]
}

// Statuses recomputes the worst per-axis statuses for a validated outfit.
// Split out so callers that want the axis breakdown alongside the score do
// not pay for a second full validation.
func (v *Validator) Statuses(base ClothingAttributes, outfit []ClothingAttributes) ValidationStatus {
	status := ValidationStatus{
		ColorStatus:     StatusOK,
		FormalityStatus: FormalityOK,
		AestheticStatus: AestheticCohesive,
		PairingStatus:   StatusOK,
		Warnings:        []string{},
	}
	for i, item := range outfit {
		if v.colorPenalty(base.Color, item.Color) > 0 {
			status.ColorStatus = StatusWarning
		}
		fs := FormalityStatus(base.Formality, item.Formality)
		if formalitySeverity(fs) > formalitySeverity(status.FormalityStatus) {
			status.FormalityStatus = fs
		}
		if AestheticStatus(base.Aesthetics, item.Aesthetics) == AestheticWarning {
			status.AestheticStatus = AestheticWarning
		}
		if pairingIssue(base, item) != "" {
			status.PairingStatus = StatusWarning
		}
		for j := 0; j < i; j++ {
			if pairingIssue(outfit[j], item) != "" {
				status.PairingStatus = StatusWarning
			}
		}
	}
	if len(structuralWarnings(base, outfit)) > 0 {
		status.PairingStatus = StatusWarning
	}
	return status
}

func formalitySeverity(status string) int {
	switch status {
	case FormalityMismatch:
		return 2
	case FormalityWarning:
		return 1
	default:
		return 0
	}
}

// verdictFor maps the score bracket to a fixed human summary.
func verdictFor(score int) string {
	switch {
	case score >= 85:
		return "Great fit"
	case score >= 60:
		return "Works, with caveats"
	default:
		return "Needs rework"
	}
}

func describeItem(item ClothingAttributes) string {
	if item.Category.L2 != "" {
		return item.Category.L2
	}
	return item.Category.L1
}
