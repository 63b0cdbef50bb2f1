package common

import (
	"fmt"
	"os"

	"github.com/jonesrussell/gosegment/pkg/model"
	"github.com/jonesrussell/gosegment/pkg/segmenter"
)

// ResolveParser builds a boundary parser from the --lang / --model flag
// pair, falling back to the configured default language when neither is
// set. Model-load failures surface here, before any text is parsed.
func (d CommandDeps) ResolveParser(lang, modelPath string) (*segmenter.Parser, error) {
	if lang != "" && modelPath != "" {
		return nil, ErrModelFlagConflict
	}

	var (
		m   *model.Model
		err error
	)
	switch {
	case modelPath != "":
		var data []byte
		data, err = os.ReadFile(modelPath)
		if err != nil {
			return nil, fmt.Errorf("read model file: %w", err)
		}
		m, err = model.ParseJSON(data)
		if err != nil {
			return nil, err
		}
		d.Logger.Debug("loaded custom model",
			"path", modelPath,
			"entries", m.TotalEntries())
	default:
		if lang == "" {
			lang = d.Config.Segmenter.DefaultLanguage
		}
		m, err = model.Load(model.Language(lang))
		if err != nil {
			return nil, err
		}
		d.Logger.Debug("loaded vendored model",
			"language", lang,
			"entries", m.TotalEntries())
	}

	var opts []segmenter.Option
	if d.Config.Segmenter.Threshold != segmenter.DefaultThreshold {
		opts = append(opts, segmenter.WithThreshold(d.Config.Segmenter.Threshold))
	}
	return segmenter.New(m, opts...), nil
}
