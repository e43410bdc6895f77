package install

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/updown/updown-shell/internal/logging"
)

// quickLookInstaller copies the bundled Quick Look app into the user's
// ~/Applications and registers its preview extension with pluginkit.
type quickLookInstaller struct {
	cfg Config
	run func(name string, args ...string) error
}

func runCommand(name string, args ...string) error {
	return exec.Command(name, args...).Run()
}

// Install runs every step in order. Bundle resolution, destination
// directory creation, stale-version removal, and the copy are hard-fail
// points; extension registration and the indexing launch are best-effort.
//
// The registration calls and the launch block without a timeout; callers on
// a dispatch path should run Install on its own goroutine.
func (in *quickLookInstaller) Install() (string, error) {
	src, err := resolveBundle(in.cfg.ResourceDir)
	if err != nil {
		return "", err
	}

	home := in.cfg.HomeDir
	if home == "" {
		home, err = os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot determine home directory: %w", err)
		}
	}
	appsDir := filepath.Join(home, "Applications")
	if _, err := os.Stat(appsDir); err != nil {
		if err := os.MkdirAll(appsDir, 0o755); err != nil {
			return "", fmt.Errorf("failed to create %s: %w", appsDir, err)
		}
	}

	dest := filepath.Join(appsDir, bundleName)
	if _, err := os.Stat(dest); err == nil {
		if err := os.RemoveAll(dest); err != nil {
			return "", fmt.Errorf("failed to remove old Quick Look app: %w", err)
		}
	}

	if err := copyTree(src, dest); err != nil {
		return "", fmt.Errorf("failed to copy Quick Look app: %w", err)
	}

	// Register and enable the preview extension. Best-effort: a failure
	// here does not fail the install.
	appex := filepath.Join(dest, filepath.FromSlash(appexRelPath))
	if _, err := os.Stat(appex); err == nil {
		if err := in.run("pluginkit", "-a", appex); err != nil {
			logging.Warn("install: pluginkit add failed", zap.Error(err))
		}
		if err := in.run("pluginkit", "-e", "use", "-i", extensionID); err != nil {
			logging.Warn("install: pluginkit enable failed", zap.Error(err))
		}
	}

	// Launch once so the OS indexes the new extension.
	if err := in.run("/usr/bin/open", dest); err != nil {
		logging.Debug("install: indexing launch failed", zap.Error(err))
	}

	return fmt.Sprintf("Quick Look extension installed to %s", dest), nil
}
