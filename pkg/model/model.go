package model

// BiasValue is the fixed sentinel value the Base feature is keyed by.
const BiasValue = "BIAS"

// Model is the complete weight table for one language or domain: a mapping
// from feature category to feature-string weights. A Model is built once and
// read-only thereafter, so a single instance may be shared by any number of
// concurrent parse calls. Swapping in new weights means constructing a new
// Model, never mutating one in use.
type Model struct {
	weights [NumFeatureKeys]map[string]int
}

// New creates an empty model. Useful for tests and programmatic construction;
// production tables come from ParseJSON or Load.
func New() *Model {
	return &Model{}
}

// Set records a weight for a (category, value) pair. Set must not be called
// once the model is shared.
func (m *Model) Set(key FeatureKey, value string, weight int) {
	if key < 0 || int(key) >= NumFeatureKeys {
		return
	}
	if m.weights[key] == nil {
		m.weights[key] = make(map[string]int)
	}
	m.weights[key][value] = weight
}

// Weight returns the weight for a (category, value) pair. Absent entries are
// a valid zero-weight state; Weight never fails.
func (m *Model) Weight(key FeatureKey, value string) int {
	if key < 0 || int(key) >= NumFeatureKeys {
		return 0
	}
	return m.weights[key][value]
}

// Entries returns the number of feature values recorded under a category.
func (m *Model) Entries(key FeatureKey) int {
	if key < 0 || int(key) >= NumFeatureKeys {
		return 0
	}
	return len(m.weights[key])
}

// TotalEntries returns the number of feature values across all categories.
func (m *Model) TotalEntries() int {
	total := 0
	for _, values := range m.weights {
		total += len(values)
	}
	return total
}
