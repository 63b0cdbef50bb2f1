// Package split implements the split command for segmenting plain text.
package split

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/text/unicode/norm"

	"github.com/jonesrussell/gosegment/cmd/common"
)

// Constants for default values
const (
	// DefaultDelimiter separates chunks in plain-text output.
	DefaultDelimiter = "|"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Command returns the split command for use in the root command. Each call
// builds a fresh command so flag registration never collides.
func Command() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "split [TEXT]",
		Short: "Split text into phrase chunks",
		Long: `Split segments text written without inter-word spaces into chunks at
the boundaries the weight table accepts.

Examples:
  # Segment Japanese text with the bundled model
  gosegment split --lang ja "今日は良い天気です"

  # Segment stdin with a custom model file
  cat input.txt | gosegment split --model my-model.json

  # Emit chunks as a JSON array
  gosegment split --lang th --format json "สวัสดีชาวโลก"
`,
		Args: cobra.MaximumNArgs(1),
		RunE: runSplit,
	}
	cmd.Flags().StringP("lang", "l", "", "Vendored model language (ja, zh-hans, zh-hant, th)")
	cmd.Flags().StringP("model", "m", "", "Path to a custom model JSON file")
	cmd.Flags().StringP("delimiter", "d", DefaultDelimiter, "Chunk delimiter for text output")
	cmd.Flags().StringP("format", "f", FormatText, "Output format (text or json)")
	cmd.Flags().Bool("normalize", false, "NFC-normalize input before segmenting")
	return cmd
}

// runSplit executes the split command with the provided parameters.
func runSplit(cmd *cobra.Command, args []string) error {
	deps, err := common.NewCommandDeps()
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}
	log := deps.Logger.WithComponent("split")

	lang := cmd.Flag("lang").Value.String()
	modelPath := cmd.Flag("model").Value.String()
	delimiter := cmd.Flag("delimiter").Value.String()
	format := cmd.Flag("format").Value.String()
	normalize, err := cmd.Flags().GetBool("normalize")
	if err != nil {
		return fmt.Errorf("read normalize flag: %w", err)
	}

	if format != FormatText && format != FormatJSON {
		return fmt.Errorf("unknown format %q: expected %q or %q", format, FormatText, FormatJSON)
	}

	parser, err := deps.ResolveParser(lang, modelPath)
	if err != nil {
		return err
	}

	text, err := common.ReadInput(args, "")
	if err != nil {
		return err
	}
	if normalize {
		// The vendored tables are keyed on NFC forms; decomposed input
		// would otherwise miss its weights.
		text = norm.NFC.String(text)
	}

	start := time.Now()
	chunks := parser.Parse(text)
	log.WithDuration(time.Since(start)).Debug("segmented input",
		"runes", len([]rune(text)),
		"chunks", len(chunks))

	switch format {
	case FormatJSON:
		enc := json.NewEncoder(os.Stdout)
		if err := enc.Encode(chunks); err != nil {
			return fmt.Errorf("encode chunks: %w", err)
		}
	default:
		fmt.Println(strings.Join(chunks, delimiter))
	}
	return nil
}
