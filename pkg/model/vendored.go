package model

import (
	"embed"
	"fmt"
	"sync"
)

// Language tags the vendored weight tables bundled with the binary.
type Language string

// Supported vendored model languages.
const (
	Japanese           Language = "ja"
	SimplifiedChinese  Language = "zh-hans"
	TraditionalChinese Language = "zh-hant"
	Thai               Language = "th"
)

//go:embed data/*.json
var vendoredFS embed.FS

// vendoredLoaders parses each bundled table at most once; every loader
// returns the same immutable *Model to all callers.
var vendoredLoaders = map[Language]func() (*Model, error){
	Japanese:           sync.OnceValues(func() (*Model, error) { return loadVendored(Japanese) }),
	SimplifiedChinese:  sync.OnceValues(func() (*Model, error) { return loadVendored(SimplifiedChinese) }),
	TraditionalChinese: sync.OnceValues(func() (*Model, error) { return loadVendored(TraditionalChinese) }),
	Thai:               sync.OnceValues(func() (*Model, error) { return loadVendored(Thai) }),
}

// Load returns the vendored model for a language tag. The returned model is
// shared and must not be mutated. Unknown or unbundled languages yield an
// error matching ErrUnavailable.
func Load(lang Language) (*Model, error) {
	loader, ok := vendoredLoaders[lang]
	if !ok {
		return nil, &UnavailableError{Language: string(lang)}
	}
	return loader()
}

// Languages returns the vendored language tags in a stable order.
func Languages() []Language {
	return []Language{Japanese, SimplifiedChinese, TraditionalChinese, Thai}
}

func loadVendored(lang Language) (*Model, error) {
	data, err := vendoredFS.ReadFile(fmt.Sprintf("data/%s.json", lang))
	if err != nil {
		return nil, &UnavailableError{Language: string(lang)}
	}
	m, err := ParseJSON(data)
	if err != nil {
		return nil, fmt.Errorf("vendored model %s: %w", lang, err)
	}
	return m, nil
}
