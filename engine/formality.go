package engine

import "fmt"

// Formality compatibility status between two items.
const (
	FormalityOK       = "ok"
	FormalityWarning  = "warning"
	FormalityMismatch = "mismatch"
)

// FormalityRange is the acceptable formality window for a target category.
type FormalityRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Contains reports whether f sits inside the range.
func (r FormalityRange) Contains(f float64) bool {
	return f >= r.Min && f <= r.Max
}

// FormalityRangeFor computes the acceptable range for targetL1 around a base
// formality, clamped to the 1-5 scale. The spread depends on the category:
// see formalitySpread.
func FormalityRangeFor(baseFormality float64, targetL1 string) (FormalityRange, error) {
	if baseFormality < 1 || baseFormality > 5 {
		return FormalityRange{}, fmt.Errorf("%w: formality %.2f", ErrOutOfRangeValue, baseFormality)
	}
	spread, ok := formalitySpread[targetL1]
	if !ok {
		return FormalityRange{}, fmt.Errorf("%w: %q", ErrUnknownCategory, targetL1)
	}
	return FormalityRange{
		Min: clampFloat(baseFormality-spread, 1, 5),
		Max: clampFloat(baseFormality+spread, 1, 5),
	}, nil
}

// FormalityStatus grades the gap between two formality levels. The
// boundaries are an exact contract: a gap of 1 is still ok, a gap of 2 is
// still a warning, anything beyond is a mismatch.
func FormalityStatus(a, b float64) string {
	diff := a - b
	if diff < 0 {
		diff = -diff
	}
	switch {
	case diff <= 1:
		return FormalityOK
	case diff <= 2:
		return FormalityWarning
	default:
		return FormalityMismatch
	}
}
