package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func navyBase(t *testing.T) Color {
	t.Helper()
	c, err := ParseHexColor("#1E3A5F")
	require.NoError(t, err)
	require.False(t, c.IsNeutral)
	return c
}

func TestPaletteOrderContract(t *testing.T) {
	palette := NewHarmonyEngine().Palette(navyBase(t))
	require.Len(t, palette, 5+len(neutralPalette))

	wantOrder := []string{
		HarmonyComplementary,
		HarmonyAnalogous, HarmonyAnalogous,
		HarmonyTriadic, HarmonyTriadic,
	}
	for i, want := range wantOrder {
		assert.Equal(t, want, palette[i].HarmonyType, "position %d", i)
	}
	for i := len(wantOrder); i < len(palette); i++ {
		assert.Equal(t, HarmonyNeutral, palette[i].HarmonyType, "position %d", i)
	}
}

func TestPaletteHueRotations(t *testing.T) {
	base := navyBase(t)
	palette := NewHarmonyEngine().Palette(base)

	wantOffsets := []int{180, 30, 30, 120, 120}
	for i, want := range wantOffsets {
		hsl, err := HexToHSL(palette[i].Hex)
		require.NoError(t, err)
		assert.LessOrEqual(t, absInt(HueDistance(hsl.H, base.HSL.H)-want), 2,
			"candidate %d should sit %d degrees from the base, got %d", i, want, HueDistance(hsl.H, base.HSL.H))
	}
}

func TestPaletteWearableClamp(t *testing.T) {
	// neon red: full saturation must be pulled into the wearable window
	base := Color{Hex: "#FF0000", HSL: HSL{H: 0, S: 100, L: 50}}
	cfg := DefaultHarmonyConfig()
	palette := NewHarmonyEngine().Palette(base)

	for i := 0; i < 5; i++ {
		hsl, err := HexToHSL(palette[i].Hex)
		require.NoError(t, err)
		assert.LessOrEqual(t, hsl.S, cfg.SaturationMax+1, "candidate %d saturation", i)
		assert.GreaterOrEqual(t, hsl.S, cfg.SaturationMin-1, "candidate %d saturation", i)
		assert.LessOrEqual(t, hsl.L, cfg.LightnessMax+1, "candidate %d lightness", i)
		assert.GreaterOrEqual(t, hsl.L, cfg.LightnessMin-1, "candidate %d lightness", i)
	}
}

func TestPaletteNeutralBaseSkipsHueMath(t *testing.T) {
	gray, err := ParseHexColor("#808080")
	require.NoError(t, err)
	require.True(t, gray.IsNeutral)

	palette := NewHarmonyEngine().Palette(gray)
	require.Len(t, palette, len(neutralBaseAccents)+len(neutralPalette))

	// curated accents plus the neutral palette, nothing derived from the
	// (undefined) gray hue
	for i, accent := range neutralBaseAccents {
		assert.Equal(t, accent, palette[i])
	}
	for _, rc := range palette {
		assert.NotEqual(t, HarmonyAnalogous, rc.HarmonyType)
		assert.NotEqual(t, HarmonyTriadic, rc.HarmonyType)
	}
}

func TestPaletteAlwaysIncludesNeutrals(t *testing.T) {
	for _, hex := range []string{"#1E3A5F", "#FF0000", "#808080", "#228B22"} {
		c, err := ParseHexColor(hex)
		require.NoError(t, err)
		palette := NewHarmonyEngine().Palette(c)

		neutrals := 0
		for _, rc := range palette {
			if rc.HarmonyType == HarmonyNeutral {
				neutrals++
			}
		}
		assert.Equal(t, len(neutralPalette), neutrals, hex)
	}
}

func TestHarmonyHuesIncludeBase(t *testing.T) {
	base := navyBase(t)
	hues := NewHarmonyEngine().HarmonyHues(base)
	assert.Contains(t, hues, base.HSL.H, "a monochromatic item must count as harmonious")
	assert.Contains(t, hues, normalizeHue(base.HSL.H+180))
}
