// Package install installs the bundled Quick Look extension into the user's
// Applications directory and registers it with the OS.
package install

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
)

const (
	// bundleName is the Quick Look host app shipped in the resources.
	bundleName = "UpDownQuickLook.app"

	// appexRelPath locates the preview extension inside the installed bundle.
	appexRelPath = "Contents/PlugIns/UpDownPreview.appex"

	// extensionID is the plugin identifier registered with pluginkit.
	extensionID = "com.noam.updown.quicklook.preview"
)

// ErrUnsupported is returned when the installer runs off its target OS.
var ErrUnsupported = fmt.Errorf("Quick Look is only available on macOS (running on %s)", runtime.GOOS)

// Config locates the bundled resources and the install destination.
type Config struct {
	// ResourceDir is the application's bundled resource directory.
	ResourceDir string

	// HomeDir overrides the user home directory. Empty means os.UserHomeDir.
	HomeDir string
}

// Installer is the platform system-integration capability.
type Installer interface {
	// Install performs the one-shot installation and returns a user-visible
	// success message, or a descriptive error naming the paths involved.
	Install() (string, error)
}

// New returns the installer for the current OS.
func New(cfg Config) Installer {
	if runtime.GOOS == "darwin" {
		return &quickLookInstaller{cfg: cfg, run: runCommand}
	}
	return unsupported{}
}

type unsupported struct{}

func (unsupported) Install() (string, error) {
	return "", ErrUnsupported
}

// resolveBundle checks the two candidate bundle locations in fixed fallback
// order: resources/<bundle> first, then the resource-dir root. The error
// lists both checked locations verbatim.
func resolveBundle(resourceDir string) (string, error) {
	src := filepath.Join(resourceDir, "resources", bundleName)
	if _, err := os.Stat(src); err == nil {
		return src, nil
	}
	alt := filepath.Join(resourceDir, bundleName)
	if _, err := os.Stat(alt); err == nil {
		return alt, nil
	}
	return "", fmt.Errorf("Quick Look app not found in app bundle. Checked:\n  %s\n  %s", src, alt)
}

// copyTree recursively copies the directory tree at src to dst, recreating
// directories and copying files byte-for-byte. Symlinks are followed, so a
// link inside the bundle is materialized as a copy of its target.
func copyTree(src, dst string) error {
	if err := os.MkdirAll(dst, 0o755); err != nil {
		return err
	}
	entries, err := os.ReadDir(src)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		srcPath := filepath.Join(src, entry.Name())
		dstPath := filepath.Join(dst, entry.Name())

		info, err := os.Stat(srcPath)
		if err != nil {
			return err
		}
		if info.IsDir() {
			if err := copyTree(srcPath, dstPath); err != nil {
				return err
			}
			continue
		}
		if err := copyFile(srcPath, dstPath, info.Mode()); err != nil {
			return err
		}
	}
	return nil
}

func copyFile(src, dst string, mode os.FileMode) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, mode.Perm())
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
