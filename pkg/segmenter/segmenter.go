// Package segmenter implements the feature-weighted boundary scorer that
// splits space-less text (Japanese, Chinese, Thai) into renderable chunks.
// Every candidate position between two characters is scored against a weight
// table; positions whose summed feature weights exceed the threshold become
// chunk boundaries.
package segmenter

import "github.com/jonesrussell/gosegment/pkg/model"

// DefaultThreshold is the boundary acceptance threshold. Like the feature
// window offsets it is part of the contract the vendored weight tables were
// trained against; override it only for deliberately retrained models.
const DefaultThreshold = 1000

// Option configures a Parser.
type Option func(*Parser)

// WithThreshold overrides the boundary acceptance threshold.
func WithThreshold(threshold int) Option {
	return func(p *Parser) {
		p.threshold = threshold
	}
}

// Parser scores candidate boundaries against an immutable weight table.
// A Parser holds no mutable state and is safe for concurrent use as long as
// the model is never mutated after construction.
type Parser struct {
	model     *model.Model
	threshold int
}

// New creates a Parser over a model.
func New(m *model.Model, opts ...Option) *Parser {
	p := &Parser{model: m, threshold: DefaultThreshold}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse splits text into chunks. The concatenation of the returned chunks
// reproduces text exactly; no chunk is empty. Empty input returns nil.
// Any scalar content is accepted: out-of-vocabulary substrings simply score
// zero, so a text with no matching weights comes back as a single chunk.
func (p *Parser) Parse(text string) []string {
	if text == "" {
		return nil
	}
	runes := []rune(text)
	boundaries := p.boundaries(runes)

	chunks := make([]string, 0, len(boundaries)+1)
	start := 0
	for _, b := range boundaries {
		chunks = append(chunks, string(runes[start:b]))
		start = b
	}
	return append(chunks, string(runes[start:]))
}

// Boundaries returns the accepted interior boundary positions of text, in
// ascending rune-index order. The implicit boundaries at 0 and len are not
// included.
func (p *Parser) Boundaries(text string) []int {
	if text == "" {
		return nil
	}
	return p.boundaries([]rune(text))
}

// Threshold returns the configured acceptance threshold.
func (p *Parser) Threshold() int {
	return p.threshold
}

func (p *Parser) boundaries(runes []rune) []int {
	var result []int
	var feats []Feature
	for i := 1; i < len(runes); i++ {
		feats = extractFeatures(runes, i, feats)
		score := 0
		for _, f := range feats {
			score += p.model.Weight(f.Key, f.Value)
		}
		// Strictly greater: a tie is not a boundary.
		if score > p.threshold {
			result = append(result, i)
		}
	}
	return result
}
