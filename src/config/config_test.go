package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"ENABLE_FILE_LOGGING", "CLIPBOARD_BACKEND", "DISPLAY_MODE", "REFRESH_INTERVAL_MS", "SINGLE_INSTANCE", "LOCK_FILE", EnvPathEnvVar} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Failed to load configuration: %v", err)
	}

	if cfg.EnableFileLogging {
		t.Errorf("Expected EnableFileLogging to be false")
	}
	if cfg.ClipboardBackend != BackendNative {
		t.Errorf("Expected ClipboardBackend to be %q, got %q", BackendNative, cfg.ClipboardBackend)
	}
	if cfg.DisplayMode != DisplayModeWindow {
		t.Errorf("Expected DisplayMode to be %q, got %q", DisplayModeWindow, cfg.DisplayMode)
	}
	if cfg.RefreshInterval != time.Second {
		t.Errorf("Expected RefreshInterval to be 1s, got %v", cfg.RefreshInterval)
	}
	if !cfg.SingleInstance {
		t.Errorf("Expected SingleInstance to be true")
	}
	if cfg.LockFile != filepath.Join(os.TempDir(), "auto-vat.lock") {
		t.Errorf("Unexpected LockFile %q", cfg.LockFile)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("ENABLE_FILE_LOGGING", "TRUE")
	t.Setenv("CLIPBOARD_BACKEND", "command")
	t.Setenv("DISPLAY_MODE", "Tray")
	t.Setenv("REFRESH_INTERVAL_MS", "250")
	t.Setenv("SINGLE_INSTANCE", "false")
	t.Setenv("LOCK_FILE", "/tmp/custom.lock")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Failed to load configuration: %v", err)
	}

	if !cfg.EnableFileLogging {
		t.Errorf("Expected EnableFileLogging to be true")
	}
	if cfg.ClipboardBackend != BackendCommand {
		t.Errorf("Expected ClipboardBackend to be %q, got %q", BackendCommand, cfg.ClipboardBackend)
	}
	if cfg.DisplayMode != DisplayModeTray {
		t.Errorf("Expected DisplayMode to be %q, got %q", DisplayModeTray, cfg.DisplayMode)
	}
	if cfg.RefreshInterval != 250*time.Millisecond {
		t.Errorf("Expected RefreshInterval to be 250ms, got %v", cfg.RefreshInterval)
	}
	if cfg.SingleInstance {
		t.Errorf("Expected SingleInstance to be false")
	}
	if cfg.LockFile != "/tmp/custom.lock" {
		t.Errorf("Expected LockFile to be /tmp/custom.lock, got %q", cfg.LockFile)
	}
}

func TestLoadFromDotenvFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("DISPLAY_MODE", "window")

	envFile := filepath.Join(t.TempDir(), "auto-vat.env")
	if err := os.WriteFile(envFile, []byte("DISPLAY_MODE=tray\nREFRESH_INTERVAL_MS=500\n"), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}
	t.Setenv(EnvPathEnvVar, envFile)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Failed to load configuration: %v", err)
	}
	if cfg.DisplayMode != DisplayModeTray {
		t.Errorf("Expected .env to win over environment, got %q", cfg.DisplayMode)
	}
	if cfg.RefreshInterval != 500*time.Millisecond {
		t.Errorf("Expected RefreshInterval to be 500ms, got %v", cfg.RefreshInterval)
	}
}

func TestLoadWithOptionsOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("DISPLAY_MODE", "window")
	t.Setenv("CLIPBOARD_BACKEND", "native")

	cfg, err := LoadWithOptions(LoadOptions{
		DisplayModeOverride:       "tray",
		BackendOverride:           "command",
		EnableFileLoggingOverride: true,
	})
	if err != nil {
		t.Fatalf("Failed to load configuration: %v", err)
	}
	if cfg.DisplayMode != DisplayModeTray {
		t.Errorf("Expected DisplayMode override, got %q", cfg.DisplayMode)
	}
	if cfg.ClipboardBackend != BackendCommand {
		t.Errorf("Expected ClipboardBackend override, got %q", cfg.ClipboardBackend)
	}
	if !cfg.EnableFileLogging {
		t.Errorf("Expected EnableFileLogging override")
	}
}

func TestResolveRefreshInterval(t *testing.T) {
	tests := []struct {
		in   string
		want time.Duration
	}{
		{"", time.Second},
		{"abc", time.Second},
		{"50", time.Second},
		{"-5", time.Second},
		{"100", 100 * time.Millisecond},
		{"2000", 2 * time.Second},
	}
	for _, tt := range tests {
		if got := resolveRefreshInterval(tt.in); got != tt.want {
			t.Errorf("resolveRefreshInterval(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestResolveFallbacks(t *testing.T) {
	if got := resolveBackend("bogus"); got != BackendNative {
		t.Errorf("Expected unknown backend to fall back to native, got %q", got)
	}
	if got := resolveDisplayMode("bogus"); got != DisplayModeWindow {
		t.Errorf("Expected unknown mode to fall back to window, got %q", got)
	}
}
