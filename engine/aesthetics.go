package engine

// Aesthetic cohesion status between two tag sets.
const (
	AestheticCohesive = "cohesive"
	AestheticWarning  = "warning"
)

// Overlap below this is a cohesion warning, unless a side carries no tags.
const aestheticCohesionThreshold = 0.25

// AestheticOverlap is the Jaccard index of two tag sets, in [0, 1].
// Two untagged items are treated as universally compatible (1.0), not as a
// mismatch: no stated aesthetic places no constraint.
func AestheticOverlap(a, b []string) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 1.0
	}
	seen := make(map[string]bool, len(a))
	for _, tag := range a {
		seen[tag] = true
	}
	union := len(seen)
	shared := 0
	counted := make(map[string]bool, len(b))
	for _, tag := range b {
		if counted[tag] {
			continue
		}
		counted[tag] = true
		if seen[tag] {
			shared++
		} else {
			union++
		}
	}
	if union == 0 {
		return 1.0
	}
	return float64(shared) / float64(union)
}

// AestheticStatus grades two tag sets. Either side being empty is cohesive
// by definition.
func AestheticStatus(a, b []string) string {
	if len(a) == 0 || len(b) == 0 {
		return AestheticCohesive
	}
	if AestheticOverlap(a, b) >= aestheticCohesionThreshold {
		return AestheticCohesive
	}
	return AestheticWarning
}
