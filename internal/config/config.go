// Package config provides configuration management for the gosegment
// application. Values come from an optional config file, GOSEGMENT_*
// environment variables, and command-line flags bound through viper.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/jonesrussell/gosegment/pkg/htmlsplit"
	"github.com/jonesrussell/gosegment/pkg/model"
	"github.com/jonesrussell/gosegment/pkg/segmenter"
)

// AppConfig holds application-level settings.
type AppConfig struct {
	Debug bool `mapstructure:"debug"`
}

// SegmenterConfig holds boundary-scoring settings.
type SegmenterConfig struct {
	// Threshold is the boundary acceptance threshold. It is part of the
	// contract the vendored tables were trained against; override it only
	// together with a retrained custom model.
	Threshold int `mapstructure:"threshold"`
	// DefaultLanguage selects the vendored model used when no --lang or
	// --model flag is given.
	DefaultLanguage string `mapstructure:"default_language"`
}

// HTMLConfig holds HTML rewriting settings.
type HTMLConfig struct {
	// Strategy is the boundary-marking strategy: "zwsp" or "wrap".
	Strategy string `mapstructure:"strategy"`
	// WrapTag is the inline element used by the wrap strategy.
	WrapTag string `mapstructure:"wrap_tag"`
	// WrapClass is an optional class attribute for wrap elements.
	WrapClass string `mapstructure:"wrap_class"`
	// SkipTags overrides the default skip-tag set when non-empty.
	SkipTags []string `mapstructure:"skip_tags"`
}

// LoggerConfig holds logging settings.
type LoggerConfig struct {
	Level    string `mapstructure:"level"`
	Encoding string `mapstructure:"encoding"`
}

// Config is the complete application configuration.
type Config struct {
	App       AppConfig       `mapstructure:"app"`
	Segmenter SegmenterConfig `mapstructure:"segmenter"`
	HTML      HTMLConfig      `mapstructure:"html"`
	Logger    LoggerConfig    `mapstructure:"logger"`
}

// SetDefaults registers default values on viper. Defaults lose to config
// file values, environment variables, and flags.
func SetDefaults() {
	viper.SetDefault("app", map[string]any{
		"debug": false,
	})
	viper.SetDefault("segmenter", map[string]any{
		"threshold":        segmenter.DefaultThreshold,
		"default_language": string(model.Japanese),
	})
	viper.SetDefault("html", map[string]any{
		"strategy":   string(htmlsplit.StrategyZWSP),
		"wrap_tag":   htmlsplit.DefaultWrapTag,
		"wrap_class": "",
		"skip_tags":  []string{},
	})
	viper.SetDefault("logger", map[string]any{
		"level":    "info",
		"encoding": "console",
	})
}

// Load unmarshals the effective viper state into a validated Config.
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, &LoadError{Err: err}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the configuration for values the application cannot run
// with.
func (c *Config) Validate() error {
	switch htmlsplit.Strategy(c.HTML.Strategy) {
	case htmlsplit.StrategyZWSP, htmlsplit.StrategyWrap:
	default:
		return &ValidationError{
			Field:  "html.strategy",
			Value:  c.HTML.Strategy,
			Reason: fmt.Sprintf("must be %q or %q", htmlsplit.StrategyZWSP, htmlsplit.StrategyWrap),
		}
	}

	if c.HTML.Strategy == string(htmlsplit.StrategyWrap) && strings.TrimSpace(c.HTML.WrapTag) == "" {
		return &ValidationError{
			Field:  "html.wrap_tag",
			Value:  c.HTML.WrapTag,
			Reason: "required by the wrap strategy",
		}
	}

	if c.Segmenter.DefaultLanguage != "" {
		known := false
		for _, lang := range model.Languages() {
			if string(lang) == c.Segmenter.DefaultLanguage {
				known = true
				break
			}
		}
		if !known {
			return &ValidationError{
				Field:  "segmenter.default_language",
				Value:  c.Segmenter.DefaultLanguage,
				Reason: fmt.Sprintf("not a vendored model language %v", model.Languages()),
			}
		}
	}

	return nil
}
