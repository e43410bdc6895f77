package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/updown/updown-shell/internal/logging"
	"github.com/updown/updown-shell/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the shell backend for a frontend to connect to",
	Long: `Run the shell backend. The frontend calls the UI commands
(add_recent_file, get_opened_file, install_quicklook) as tools and receives
file-opened, menu-action, and menu-state events as notifications.

Supported transports:
  stdio             Standard I/O (default, for an embedding frontend)
  streamable-http   Streamable HTTP transport

Examples:
  updown-shell serve
  updown-shell serve --transport streamable-http --port 8080`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("transport", "stdio", "Transport: stdio, streamable-http")
	serveCmd.Flags().Int("port", 8080, "HTTP port for streamable-http transport")
}

func runServe(cmd *cobra.Command, args []string) error {
	transport, _ := cmd.Flags().GetString("transport")
	port, _ := cmd.Flags().GetInt("port")

	cfg := server.Config{
		Transport:   transport,
		Port:        port,
		DataDir:     appConfig.DataDir,
		ResourceDir: appConfig.ResourceDir,
	}

	srv := server.New(cfg)
	logging.Info("shell backend starting",
		zap.String("transport", transport),
		zap.String("dataDir", cfg.DataDir))
	defer logging.Sync()

	return srv.Serve(cfg)
}
