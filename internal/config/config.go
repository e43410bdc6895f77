// Package config loads the shell configuration from a YAML file with
// per-OS defaults for the data and resource directories.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// appDirName is the directory name used under the per-user data root.
const appDirName = "UpDown"

// Log configures the logger.
type Log struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Config holds all shell settings.
type Config struct {
	// DataDir is the application's private data directory. The recent-files
	// record lives here.
	DataDir string `yaml:"dataDir"`

	// ResourceDir is where bundled resources (the Quick Look app) are
	// resolved from.
	ResourceDir string `yaml:"resourceDir"`

	Log Log `yaml:"log"`
}

// Default returns the configuration used when no config file is present.
func Default() Config {
	return Config{
		DataDir:     defaultDataDir(),
		ResourceDir: defaultResourceDir(),
		Log:         Log{Level: "info", Format: "json"},
	}
}

// Load reads the YAML config at path over the defaults. An empty path means
// the default location (<dataDir>/config.yaml); a missing file there is not
// an error. An explicit path that cannot be read or parsed is.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if path == "" {
		path = filepath.Join(cfg.DataDir, "config.yaml")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// RecentFilesPath returns the location of the persisted recent-files record.
func (c Config) RecentFilesPath() string {
	return filepath.Join(c.DataDir, "recent-files.json")
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return appDirName
	}
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", appDirName)
	case "windows":
		if d := os.Getenv("APPDATA"); d != "" {
			return filepath.Join(d, appDirName)
		}
		return filepath.Join(home, "AppData", "Roaming", appDirName)
	default:
		if d := os.Getenv("XDG_DATA_HOME"); d != "" {
			return filepath.Join(d, appDirName)
		}
		return filepath.Join(home, ".local", "share", appDirName)
	}
}

// defaultResourceDir mirrors the app-bundle layout: on macOS resources sit in
// Contents/Resources next to Contents/MacOS/<binary>; elsewhere they sit in a
// resources directory beside the binary.
func defaultResourceDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "resources"
	}
	dir := filepath.Dir(exe)
	if runtime.GOOS == "darwin" && filepath.Base(dir) == "MacOS" {
		return filepath.Join(filepath.Dir(dir), "Resources")
	}
	return filepath.Join(dir, "resources")
}
