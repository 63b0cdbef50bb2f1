// Package cmd implements the command-line interface for gosegment.
// It provides the root command and subcommands for segmenting text and
// HTML using the bundled or custom weight tables.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jonesrussell/gosegment/cmd/htmlcmd"
	"github.com/jonesrussell/gosegment/cmd/models"
	"github.com/jonesrussell/gosegment/cmd/split"
	"github.com/jonesrussell/gosegment/internal/config"
)

// Version is the application version, overridable at build time.
var Version = "1.0.0"

var (
	// cfgFile holds the path to the configuration file.
	cfgFile string

	// Debug enables debug mode for all commands
	Debug bool

	// rootCmd represents the root command for the gosegment CLI.
	rootCmd = &cobra.Command{
		Use:   "gosegment",
		Short: "Phrase-boundary segmenter for Japanese, Chinese, and Thai text",
		Long: `gosegment splits text written without inter-word spaces into
renderable chunks using per-language weight tables, and can rewrite HTML
documents with soft line-break hints at the detected boundaries.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
)

// Execute runs the root command
func Execute() error {
	// Load .env file early so environment variables are available
	_ = godotenv.Load()

	// Parse flags early to get debug flag before creating the logger
	_ = rootCmd.ParseFlags(os.Args[1:])

	if err := initConfig(); err != nil {
		return fmt.Errorf("failed to initialize configuration: %w", err)
	}

	return rootCmd.ExecuteContext(context.Background())
}

// init initializes the root command and its subcommands.
func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"",
		"config file (default is ./config.yaml)",
	)
	rootCmd.PersistentFlags().BoolVar(&Debug, "debug", false, "enable debug mode")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("gosegment version %s\n", Version)
		},
	})

	rootCmd.AddCommand(split.Command())
	rootCmd.AddCommand(htmlcmd.Command())
	rootCmd.AddCommand(models.Command())
}

// initConfig reads in config file and ENV variables if set.
func initConfig() error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		viper.AddConfigPath("./config")
	}

	// Environment variables win over config-file values: GOSEGMENT_LOGGER_LEVEL
	// maps to logger.level, and so on.
	viper.SetEnvPrefix("gosegment")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	config.SetDefaults()

	// Config file is optional; defaults and environment cover the rest.
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			fmt.Fprintf(os.Stderr, "Warning: config file not read: %v\n", err)
		}
	}

	if err := viper.BindPFlag("app.debug", rootCmd.PersistentFlags().Lookup("debug")); err != nil {
		return fmt.Errorf("failed to bind debug flag: %w", err)
	}

	if Debug || viper.GetBool("app.debug") {
		viper.Set("logger.level", "debug")
		Debug = true
	}

	return nil
}
