package segmenter

import "github.com/jonesrussell/gosegment/pkg/model"

// Feature is one (category, value) lookup key derived from the character
// window around a candidate boundary.
type Feature struct {
	Key   model.FeatureKey
	Value string
}

// windowSpec describes the relative character window one feature category
// samples: offsets are taken from the candidate boundary index. The fixed
// offsets reproduce the pre-existing scoring scheme the vendored weight
// tables were trained against and must not change.
type windowSpec struct {
	key        model.FeatureKey
	start, end int
}

var windowSpecs = [...]windowSpec{
	{model.UW1, -3, -2},
	{model.UW2, -2, -1},
	{model.UW3, -1, 0},
	{model.UW4, 0, 1},
	{model.UW5, 1, 2},
	{model.UW6, 2, 3},
	{model.BW1, -2, 0},
	{model.BW2, -1, 1},
	{model.BW3, 0, 2},
	{model.TW1, -3, 0},
	{model.TW2, -2, 1},
	{model.TW3, -1, 2},
	{model.TW4, 0, 3},
}

// extractFeatures returns the fixed, ordered feature set for the candidate
// boundary between runes[i-1] and runes[i]. Offsets falling outside the
// input map to the empty string sentinel; the constant Base feature is
// always last. Pure function of (runes, i).
func extractFeatures(runes []rune, i int, out []Feature) []Feature {
	out = out[:0]
	for _, spec := range windowSpecs {
		out = append(out, Feature{Key: spec.key, Value: window(runes, i+spec.start, i+spec.end)})
	}
	return append(out, Feature{Key: model.Base, Value: model.BiasValue})
}

// window returns the substring of runes in [start, end), clamped to the
// input bounds. An empty window is the defined out-of-range sentinel.
func window(runes []rune, start, end int) string {
	if start < 0 {
		start = 0
	}
	if end > len(runes) {
		end = len(runes)
	}
	if start >= end {
		return ""
	}
	return string(runes[start:end])
}
