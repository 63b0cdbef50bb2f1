// Package htmlcmd implements the html command for rewriting HTML documents
// with soft break hints at phrase boundaries.
package htmlcmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonesrussell/gosegment/cmd/common"
	"github.com/jonesrussell/gosegment/pkg/htmlsplit"
)

// Command returns the html command for use in the root command. Each call
// builds a fresh command so flag registration never collides.
func Command() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "html [HTML]",
		Short: "Rewrite HTML with phrase-boundary markers",
		Long: `Html segments the text content of an HTML document and rewrites it
with either zero-width-space markers or wrapping inline elements at the
detected boundaries. Markup structure, attributes, and skip-tag content
(scripts, styles, preformatted text, ...) pass through unchanged.

Examples:
  # Insert zero-width spaces into Japanese HTML
  gosegment html --lang ja "<p>今日は良い天気です</p>"

  # Wrap chunks in spans with a class, reading from a file
  gosegment html --lang ja --strategy wrap --wrap-class chunk --file page.html
`,
		Args: cobra.MaximumNArgs(1),
		RunE: runHTML,
	}
	cmd.Flags().StringP("lang", "l", "", "Vendored model language (ja, zh-hans, zh-hant, th)")
	cmd.Flags().StringP("model", "m", "", "Path to a custom model JSON file")
	cmd.Flags().StringP("file", "F", "", "Read the HTML document from a file")
	cmd.Flags().StringP("strategy", "s", "", "Boundary marking strategy (zwsp or wrap)")
	cmd.Flags().String("wrap-tag", "", "Inline element for the wrap strategy")
	cmd.Flags().String("wrap-class", "", "Class attribute for wrap elements")
	cmd.Flags().StringSlice("skip-tags", nil, "Override the default skip-tag set")
	return cmd
}

// runHTML executes the html command with the provided parameters.
func runHTML(cmd *cobra.Command, args []string) error {
	deps, err := common.NewCommandDeps()
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}
	log := deps.Logger.WithComponent("html")

	lang := cmd.Flag("lang").Value.String()
	modelPath := cmd.Flag("model").Value.String()
	filePath := cmd.Flag("file").Value.String()

	parser, err := deps.ResolveParser(lang, modelPath)
	if err != nil {
		return err
	}

	opts, err := resolveOptions(cmd, deps)
	if err != nil {
		return err
	}
	processor := htmlsplit.New(parser, opts)

	input, err := common.ReadInput(args, filePath)
	if err != nil {
		return err
	}

	start := time.Now()
	output, err := processor.TranslateHTMLString(input)
	if err != nil {
		return err
	}
	log.WithDuration(time.Since(start)).Debug("rewrote html document",
		"input_bytes", len(input),
		"output_bytes", len(output))

	fmt.Println(output)
	return nil
}

// resolveOptions merges flag values over the configured HTML settings.
// Flags win when set; config supplies the rest.
func resolveOptions(cmd *cobra.Command, deps common.CommandDeps) (htmlsplit.Options, error) {
	cfg := deps.Config.HTML

	opts := htmlsplit.Options{
		Strategy:  htmlsplit.Strategy(cfg.Strategy),
		WrapTag:   cfg.WrapTag,
		WrapClass: cfg.WrapClass,
	}
	if len(cfg.SkipTags) > 0 {
		opts.SkipTags = cfg.SkipTags
	}

	if s := cmd.Flag("strategy").Value.String(); s != "" {
		switch htmlsplit.Strategy(s) {
		case htmlsplit.StrategyZWSP, htmlsplit.StrategyWrap:
			opts.Strategy = htmlsplit.Strategy(s)
		default:
			return htmlsplit.Options{}, fmt.Errorf("unknown strategy %q: expected %q or %q",
				s, htmlsplit.StrategyZWSP, htmlsplit.StrategyWrap)
		}
	}
	if tag := cmd.Flag("wrap-tag").Value.String(); tag != "" {
		opts.WrapTag = tag
	}
	if class := cmd.Flag("wrap-class").Value.String(); class != "" {
		opts.WrapClass = class
	}
	if tags, err := cmd.Flags().GetStringSlice("skip-tags"); err == nil && len(tags) > 0 {
		opts.SkipTags = tags
	}

	return opts, nil
}
