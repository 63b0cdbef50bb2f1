// Package models implements the models command for inspecting the vendored
// weight tables bundled into the binary.
package models

import (
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/jonesrussell/gosegment/cmd/common"
	"github.com/jonesrussell/gosegment/pkg/model"
)

// Command returns the models command for use in the root command. Each call
// builds a fresh command so flag registration never collides.
func Command() *cobra.Command {
	return &cobra.Command{
		Use:   "models",
		Short: "List the vendored segmentation models",
		RunE:  runModels,
	}
}

// runModels prints one row per vendored language with its table size.
func runModels(cmd *cobra.Command, _ []string) error {
	deps, err := common.NewCommandDeps()
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}
	log := deps.Logger.WithComponent("models")

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"Language", "Categories", "Entries"})

	for _, lang := range model.Languages() {
		m, loadErr := model.Load(lang)
		if loadErr != nil {
			log.Warn("vendored model unavailable", "language", lang, "error", loadErr)
			t.AppendRow(table.Row{string(lang), "-", "unavailable"})
			continue
		}

		categories := 0
		for _, key := range model.FeatureKeys() {
			if m.Entries(key) > 0 {
				categories++
			}
		}
		t.AppendRow(table.Row{string(lang), categories, m.TotalEntries()})
	}

	t.Render()
	return nil
}
