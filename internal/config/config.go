// Package config resolves pomod settings from defaults, a TOML file and the
// environment. CLI flags are applied last by the caller.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

const (
	BackendSQLite = "sqlite"
	BackendFile   = "file"
)

type Config struct {
	StorageBackend       string `toml:"storage_backend"`
	StoragePath          string `toml:"storage_path"`
	DesktopNotifications bool   `toml:"desktop_notifications"`
	WorkMinutes          int    `toml:"work_minutes"`
	BreakMinutes         int    `toml:"break_minutes"`
	LogPath              string `toml:"log_path"`
	LogLevel             string `toml:"log_level"`
	LogFormat            string `toml:"log_format"`
}

func Default() Config {
	return Config{
		StorageBackend:       BackendSQLite,
		StoragePath:          filepath.Join(dataDir(), "pomod.db"),
		DesktopNotifications: true,
		WorkMinutes:          25,
		BreakMinutes:         5,
		LogPath:              filepath.Join(stateDir(), "pomod.log"),
		LogLevel:             "info",
		LogFormat:            "text",
	}
}

// DefaultPath is where Load looks when no explicit file is given.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "pomod", "pomod.toml")
}

// Load layers defaults, the TOML file at path (a missing default file is not
// an error) and POMOD_* environment variables.
func Load(path string) (Config, error) {
	cfg := Default()
	explicit := strings.TrimSpace(path) != ""
	if !explicit {
		path = DefaultPath()
	}
	if path != "" {
		if err := loadFile(&cfg, expandPath(path)); err != nil {
			if !explicit && errors.Is(err, os.ErrNotExist) {
				err = nil
			}
			if err != nil {
				return Config{}, fmt.Errorf("loading config file %s: %w", path, err)
			}
		}
	}
	cfg = FromEnv(cfg)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func loadFile(cfg *Config, path string) error {
	if _, err := os.Stat(path); err != nil {
		return err
	}
	_, err := toml.DecodeFile(path, cfg)
	return err
}

func FromEnv(base Config) Config {
	cfg := base
	if v := strings.TrimSpace(os.Getenv("POMOD_STORAGE_BACKEND")); v != "" {
		cfg.StorageBackend = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv("POMOD_STORAGE_PATH")); v != "" {
		cfg.StoragePath = v
	}
	if v, ok := getEnvBool("POMOD_DESKTOP_NOTIFICATIONS"); ok {
		cfg.DesktopNotifications = v
	}
	if v, ok := getEnvInt("POMOD_WORK_MINUTES"); ok && v > 0 {
		cfg.WorkMinutes = v
	}
	if v, ok := getEnvInt("POMOD_BREAK_MINUTES"); ok && v > 0 {
		cfg.BreakMinutes = v
	}
	if v := strings.TrimSpace(os.Getenv("POMOD_LOG_PATH")); v != "" {
		cfg.LogPath = v
	}
	if v := strings.TrimSpace(os.Getenv("POMOD_LOG_LEVEL")); v != "" {
		cfg.LogLevel = v
	}
	if v := strings.TrimSpace(os.Getenv("POMOD_LOG_FORMAT")); v != "" {
		cfg.LogFormat = v
	}
	return cfg
}

func (c Config) Validate() error {
	switch c.StorageBackend {
	case BackendSQLite, BackendFile:
	default:
		return fmt.Errorf("config: unknown storage backend %q", c.StorageBackend)
	}
	if strings.TrimSpace(c.StoragePath) == "" {
		return errors.New("config: storage path is required")
	}
	if c.WorkMinutes <= 0 || c.BreakMinutes <= 0 {
		return fmt.Errorf("config: durations must be positive (work=%d break=%d)", c.WorkMinutes, c.BreakMinutes)
	}
	return nil
}

// Encode renders c as TOML, used by `pomod config`.
func (c Config) Encode() (string, error) {
	var b strings.Builder
	if err := toml.NewEncoder(&b).Encode(c); err != nil {
		return "", err
	}
	return b.String(), nil
}

func getEnvInt(name string) (int, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}

func getEnvBool(name string) (bool, bool) {
	raw := strings.TrimSpace(strings.ToLower(os.Getenv(name)))
	if raw == "" {
		return false, false
	}
	switch raw {
	case "1", "true", "yes", "y", "on":
		return true, true
	case "0", "false", "no", "n", "off":
		return false, true
	default:
		return false, false
	}
}

func expandPath(p string) string {
	expanded := os.ExpandEnv(p)
	if expanded == "~" || strings.HasPrefix(expanded, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return expanded
		}
		return filepath.Join(home, strings.TrimPrefix(expanded[1:], "/"))
	}
	return expanded
}

func dataDir() string {
	if v := os.Getenv("XDG_DATA_HOME"); v != "" {
		return filepath.Join(v, "pomod")
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".local", "share", "pomod")
	}
	return "."
}

func stateDir() string {
	if v := os.Getenv("XDG_STATE_HOME"); v != "" {
		return filepath.Join(v, "pomod")
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".local", "state", "pomod")
	}
	return "."
}
