package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/updown/updown-shell/internal/config"
	"github.com/updown/updown-shell/internal/logging"
	"github.com/updown/updown-shell/internal/output"
	"github.com/updown/updown-shell/internal/version"
)

// appConfig is the resolved configuration, available to all subcommands
// after PersistentPreRunE.
var appConfig config.Config

var rootCmd = &cobra.Command{
	Use:   "updown-shell",
	Short: "Native-shell backend for the UpDown editor",
	Long: `The native-shell backend of the UpDown markdown editor: tracks recently
opened documents, keeps the Open Recent menu synchronized, bridges OS
file-open events to the frontend, and installs the Quick Look extension.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version.Version, version.Commit, version.BuildDate)
	rootCmd.PersistentFlags().String("config", "", "Path to config file (default <dataDir>/config.yaml)")
	rootCmd.PersistentFlags().String("data-dir", "", "Override the application data directory")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().String("format", "yaml", "Output format: yaml, json")
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		configPath, _ := rootCmd.PersistentFlags().GetString("config")
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}

		if dataDir, _ := rootCmd.PersistentFlags().GetString("data-dir"); dataDir != "" {
			cfg.DataDir = dataDir
		}
		if level, _ := rootCmd.PersistentFlags().GetString("log-level"); level != "" {
			cfg.Log.Level = level
		}
		appConfig = cfg

		// Logs share stderr with nothing else; stdout belongs to command
		// output and the stdio transport.
		if err := logging.Init(logging.Config{
			Level:      cfg.Log.Level,
			Format:     cfg.Log.Format,
			OutputPath: "stderr",
		}); err != nil {
			return fmt.Errorf("init logging: %w", err)
		}

		format, _ := rootCmd.PersistentFlags().GetString("format")
		switch format {
		case "yaml":
			output.OutputFormat = output.FormatYAML
		case "json":
			output.OutputFormat = output.FormatJSON
		default:
			return fmt.Errorf("unsupported format: %s (use yaml or json)", format)
		}
		return nil
	}
}
