package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up in every search directory.
const FileName = "config.yaml"

// EnvConfig names an environment variable holding a config file path. It is
// consulted after -config and before the search directories.
const EnvConfig = "ROBOT_WALK_CONFIG"

// Load builds the effective configuration: defaults, then the first config
// file found, then CLI flags. The result is validated.
func Load() (*Config, error) {
	cfg := Default()

	path, err := configFile()
	if err != nil {
		return nil, err
	}
	if path != "" {
		if err := loadFromFile(cfg, path); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", path, err)
		}
	}

	applyFlags(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// configFile picks the file to load. An explicitly named file (flag or
// environment) must exist; otherwise the search directories are tried and
// running without any file is fine.
func configFile() (string, error) {
	for _, explicit := range []string{ConfigPath(), os.Getenv(EnvConfig)} {
		if explicit == "" {
			continue
		}
		path, ok := resolve(explicit)
		if !ok {
			return "", fmt.Errorf("config file %s: %w", explicit, os.ErrNotExist)
		}
		return path, nil
	}
	return findConfigFile(), nil
}

// resolve returns path if it exists. A relative path missing from the
// working directory is retried next to the executable, so the demo can be
// started from anywhere with -config config.yaml.
func resolve(path string) (string, bool) {
	if exists(path) {
		return path, true
	}
	if filepath.IsAbs(path) {
		return "", false
	}
	if dir := executableDir(); dir != "" {
		if p := filepath.Join(dir, path); exists(p) {
			return p, true
		}
	}
	return "", false
}

// searchDirs lists where an unnamed config file may live, highest priority
// first: the working directory, the executable's directory, the user config
// directory.
func searchDirs() []string {
	dirs := []string{"."}
	if dir := executableDir(); dir != "" {
		dirs = append(dirs, dir)
	}
	return append(dirs, ConfigDir())
}

// findConfigFile returns the first FileName in searchDirs, or "".
func findConfigFile() string {
	for _, dir := range searchDirs() {
		if p := filepath.Join(dir, FileName); exists(p) {
			return p
		}
	}
	return ""
}

func exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func executableDir() string {
	exe, err := os.Executable()
	if err != nil {
		return ""
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe)
}

// ConfigDir returns the per-user directory for robot-walk settings.
func ConfigDir() string {
	switch runtime.GOOS {
	case "darwin":
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "Library", "Application Support", "RobotWalk")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "RobotWalk")
	default:
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "robot-walk")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "robot-walk")
	}
}

// loadFromFile overlays the YAML file at path onto cfg. Keys absent from
// the file keep their current values; unknown keys are rejected so a typo
// such as "swing_amplitde" does not silently fall back to the default.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}
