package cmd

import (
	"github.com/spf13/cobra"

	"github.com/updown/updown-shell/internal/install"
	"github.com/updown/updown-shell/internal/output"
)

// InstallResult is the output of a completed install attempt.
type InstallResult struct {
	OK      bool   `yaml:"ok"                json:"ok"`
	Message string `yaml:"message,omitempty" json:"message,omitempty"`
	Error   string `yaml:"error,omitempty"   json:"error,omitempty"`
}

var installCmd = &cobra.Command{
	Use:   "install-quicklook",
	Short: "Install the bundled Quick Look extension (macOS only)",
	Long: `Copy the bundled Quick Look app into ~/Applications, register its preview
extension with pluginkit, and launch it once so the OS indexes it.`,
	RunE: runInstall,
}

func init() {
	rootCmd.AddCommand(installCmd)
	installCmd.Flags().String("resource-dir", "", "Override the bundled resource directory")
}

func runInstall(cmd *cobra.Command, args []string) error {
	resourceDir, _ := cmd.Flags().GetString("resource-dir")
	if resourceDir == "" {
		resourceDir = appConfig.ResourceDir
	}

	installer := install.New(install.Config{ResourceDir: resourceDir})
	msg, err := installer.Install()
	if err != nil {
		// Installer failures are user-visible strings, not process failures.
		return output.Print(InstallResult{OK: false, Error: err.Error()})
	}
	return output.Print(InstallResult{OK: true, Message: msg})
}
