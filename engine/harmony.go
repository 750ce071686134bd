package engine

// Harmony relationship between a recommended color and the base color.
const (
	HarmonyAnalogous     = "analogous"
	HarmonyComplementary = "complementary"
	HarmonyTriadic       = "triadic"
	HarmonyNeutral       = "neutral"
)

// RecommendedColor is one harmonious candidate for the base color.
type RecommendedColor struct {
	Hex         string `json:"hex"`
	Name        string `json:"name"`
	HarmonyType string `json:"harmony_type"`
}

// HarmonyConfig holds the tunable knobs of palette generation. The wearable
// window keeps generated candidates away from neon and near-black extremes
// that read fine on a color wheel but not on fabric.
type HarmonyConfig struct {
	AnalogousOffset int
	TriadicOffset   int
	// wearable saturation/lightness window for generated candidates
	SaturationMin int
	SaturationMax int
	LightnessMin  int
	LightnessMax  int
}

// DefaultHarmonyConfig is the calibration the deployed palette uses.
func DefaultHarmonyConfig() HarmonyConfig {
	return HarmonyConfig{
		AnalogousOffset: 30,
		TriadicOffset:   120,
		SaturationMin:   25,
		SaturationMax:   85,
		LightnessMin:    20,
		LightnessMax:    80,
	}
}

// HarmonyEngine turns a base color into a palette of harmonious candidates.
type HarmonyEngine struct {
	Config HarmonyConfig
}

func NewHarmonyEngine() *HarmonyEngine {
	return &HarmonyEngine{Config: DefaultHarmonyConfig()}
}

// Palette returns the recommended colors for a base, in a fixed order that
// consumers rely on: complementary first, then the two analogous, then the
// two triadic, then the neutral palette.
//
// A neutral base skips the hue rotations entirely (hue is undefined near
// zero saturation) and gets curated accents plus the neutrals instead.
func (h *HarmonyEngine) Palette(base Color) []RecommendedColor {
	out := make([]RecommendedColor, 0, len(neutralBaseAccents)+len(neutralPalette))

	if base.IsNeutral {
		out = append(out, neutralBaseAccents...)
		out = append(out, neutralPalette...)
		return out
	}

	cfg := h.Config
	out = append(out, h.candidate(base.HSL, 180, HarmonyComplementary))
	out = append(out, h.candidate(base.HSL, -cfg.AnalogousOffset, HarmonyAnalogous))
	out = append(out, h.candidate(base.HSL, cfg.AnalogousOffset, HarmonyAnalogous))
	out = append(out, h.candidate(base.HSL, -cfg.TriadicOffset, HarmonyTriadic))
	out = append(out, h.candidate(base.HSL, cfg.TriadicOffset, HarmonyTriadic))
	out = append(out, neutralPalette...)
	return out
}

// HarmonyHues lists the hue angles an item may sit on to count as matching
// the base, including the base hue itself (a monochromatic pair is always
// in harmony). Meaningless for neutral bases, callers check IsNeutral first.
func (h *HarmonyEngine) HarmonyHues(base Color) []int {
	cfg := h.Config
	offsets := []int{0, -cfg.AnalogousOffset, cfg.AnalogousOffset, 180, -cfg.TriadicOffset, cfg.TriadicOffset}
	hues := make([]int, len(offsets))
	for i, off := range offsets {
		hues[i] = normalizeHue(base.HSL.H + off)
	}
	return hues
}

func (h *HarmonyEngine) candidate(base HSL, hueOffset int, harmonyType string) RecommendedColor {
	cfg := h.Config
	hsl := HSL{
		H: normalizeHue(base.H + hueOffset),
		S: clampInt(base.S, cfg.SaturationMin, cfg.SaturationMax),
		L: clampInt(base.L, cfg.LightnessMin, cfg.LightnessMax),
	}
	return RecommendedColor{
		Hex:         HSLToHex(hsl),
		Name:        ColorName(hsl),
		HarmonyType: harmonyType,
	}
}

func normalizeHue(h int) int {
	return ((h % 360) + 360) % 360
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
