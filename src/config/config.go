package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	EnvPathEnvVar = "AUTO_VAT_ENV"

	DisplayModeWindow = "window"
	DisplayModeTray   = "tray"

	BackendNative  = "native"
	BackendCommand = "command"

	DefaultRefreshInterval = time.Second
	minRefreshInterval     = 100 * time.Millisecond
	lockFileName           = "auto-vat.lock"
)

// LoadOptions carries command-line overrides; empty fields are ignored.
type LoadOptions struct {
	DisplayModeOverride       string
	BackendOverride           string
	EnableFileLoggingOverride bool
}

type Config struct {
	EnableFileLogging bool
	ClipboardBackend  string
	DisplayMode       string
	RefreshInterval   time.Duration
	SingleInstance    bool
	LockFile          string
}

func Load() (*Config, error) {
	return LoadWithOptions(LoadOptions{})
}

func LoadWithOptions(opts LoadOptions) (*Config, error) {
	// Load configuration from sources in priority order:
	// 1) .env in the application (executable) directory
	// 2) If not found, use AUTO_VAT_ENV env var as a path to a config file
	envPath := resolveEnvPath()
	dotenvValues := readDotenvValues(envPath)

	get := func(key string) string {
		if v := strings.TrimSpace(dotenvValues[key]); v != "" {
			return v
		}
		return strings.TrimSpace(os.Getenv(key))
	}

	backend := get("CLIPBOARD_BACKEND")
	if override := strings.TrimSpace(opts.BackendOverride); override != "" {
		backend = override
	}
	mode := get("DISPLAY_MODE")
	if override := strings.TrimSpace(opts.DisplayModeOverride); override != "" {
		mode = override
	}

	cfg := &Config{
		EnableFileLogging: opts.EnableFileLoggingOverride || strings.ToLower(get("ENABLE_FILE_LOGGING")) == "true",
		ClipboardBackend:  resolveBackend(backend),
		DisplayMode:       resolveDisplayMode(mode),
		RefreshInterval:   resolveRefreshInterval(get("REFRESH_INTERVAL_MS")),
		SingleInstance:    strings.ToLower(get("SINGLE_INSTANCE")) != "false",
		LockFile:          getWithDefault(get("LOCK_FILE"), filepath.Join(os.TempDir(), lockFileName)),
	}

	return cfg, nil
}

func resolveEnvPath() string {
	execPath, err := os.Executable()
	if err == nil {
		exeEnv := filepath.Join(filepath.Dir(execPath), ".env")
		if _, err := os.Stat(exeEnv); err == nil {
			return exeEnv
		}
	}

	if alt := os.Getenv(EnvPathEnvVar); alt != "" {
		if _, err := os.Stat(alt); err == nil {
			return alt
		}
	}

	return ""
}

func readDotenvValues(envPath string) map[string]string {
	if envPath == "" {
		return map[string]string{}
	}

	values, err := godotenv.Read(envPath)
	if err != nil {
		return map[string]string{}
	}

	return values
}

func resolveBackend(value string) string {
	switch strings.ToLower(value) {
	case BackendCommand:
		return BackendCommand
	default:
		return BackendNative
	}
}

func resolveDisplayMode(value string) string {
	switch strings.ToLower(value) {
	case DisplayModeTray:
		return DisplayModeTray
	default:
		return DisplayModeWindow
	}
}

func resolveRefreshInterval(value string) time.Duration {
	if value == "" {
		return DefaultRefreshInterval
	}
	ms, err := strconv.Atoi(value)
	if err != nil {
		return DefaultRefreshInterval
	}
	d := time.Duration(ms) * time.Millisecond
	if d < minRefreshInterval {
		return DefaultRefreshInterval
	}
	return d
}

func getWithDefault(value, defaultValue string) string {
	if value != "" {
		return value
	}
	return defaultValue
}
