package model

import (
	"encoding/json"
	"fmt"
)

// ParseJSON builds a Model from its JSON representation. The top-level keys
// must be the fixed category names (UW1..UW6, BW1..BW3, TW1..TW4, BASE) and
// each value an object mapping feature strings to signed integer weights.
//
// An unknown category name, a non-object value, or a non-integer weight
// yields an error matching ErrInvalidFormat.
func ParseJSON(data []byte) (*Model, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &FormatError{Err: err}
	}

	m := New()
	for name, value := range raw {
		key, ok := ParseFeatureKey(name)
		if !ok {
			return nil, &FormatError{Category: name, Err: fmt.Errorf("unknown category %q", name)}
		}

		var entries map[string]int
		if err := json.Unmarshal(value, &entries); err != nil {
			return nil, &FormatError{Category: name, Err: err}
		}
		for feature, weight := range entries {
			m.Set(key, feature, weight)
		}
	}
	return m, nil
}
