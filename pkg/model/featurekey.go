// Package model defines the weight-table data model for the boundary
// segmenter and loads tables from JSON, including the vendored per-language
// tables bundled with the binary.
package model

import "fmt"

// FeatureKey identifies one of the fixed character-window feature categories
// a weight table is keyed by. The set is closed: six single-character window
// positions, three adjacent-pair positions, four three-character window
// positions, and the constant BASE key.
type FeatureKey int

const (
	// UW1 samples the single character at offset -3 from the boundary.
	UW1 FeatureKey = iota
	// UW2 samples the single character at offset -2.
	UW2
	// UW3 samples the single character at offset -1.
	UW3
	// UW4 samples the single character at offset 0.
	UW4
	// UW5 samples the single character at offset +1.
	UW5
	// UW6 samples the single character at offset +2.
	UW6
	// BW1 samples the character pair at offsets [-2, 0).
	BW1
	// BW2 samples the character pair at offsets [-1, +1).
	BW2
	// BW3 samples the character pair at offsets [0, +2).
	BW3
	// TW1 samples the character triple at offsets [-3, 0).
	TW1
	// TW2 samples the character triple at offsets [-2, +1).
	TW2
	// TW3 samples the character triple at offsets [-1, +2).
	TW3
	// TW4 samples the character triple at offsets [0, +3).
	TW4
	// Base is the constant feature included on every evaluation.
	Base

	// NumFeatureKeys is the number of feature categories.
	NumFeatureKeys = int(Base) + 1
)

// featureKeyNames maps each key to its canonical table name.
var featureKeyNames = [NumFeatureKeys]string{
	UW1:  "UW1",
	UW2:  "UW2",
	UW3:  "UW3",
	UW4:  "UW4",
	UW5:  "UW5",
	UW6:  "UW6",
	BW1:  "BW1",
	BW2:  "BW2",
	BW3:  "BW3",
	TW1:  "TW1",
	TW2:  "TW2",
	TW3:  "TW3",
	TW4:  "TW4",
	Base: "BASE",
}

// featureKeysByName is the reverse lookup used when parsing model JSON.
var featureKeysByName = func() map[string]FeatureKey {
	m := make(map[string]FeatureKey, NumFeatureKeys)
	for key, name := range featureKeyNames {
		m[name] = FeatureKey(key)
	}
	return m
}()

// String returns the canonical table name for the key.
func (k FeatureKey) String() string {
	if k < 0 || int(k) >= NumFeatureKeys {
		return fmt.Sprintf("FeatureKey(%d)", int(k))
	}
	return featureKeyNames[k]
}

// ParseFeatureKey resolves a canonical table name to its FeatureKey.
func ParseFeatureKey(name string) (FeatureKey, bool) {
	key, ok := featureKeysByName[name]
	return key, ok
}

// FeatureKeys returns all feature categories in declaration order.
func FeatureKeys() []FeatureKey {
	keys := make([]FeatureKey, NumFeatureKeys)
	for i := range keys {
		keys[i] = FeatureKey(i)
	}
	return keys
}
