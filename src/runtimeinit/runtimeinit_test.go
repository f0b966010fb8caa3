package runtimeinit

import (
	"errors"
	"strings"
	"testing"

	"auto-vat/src/clipboard"
	"auto-vat/src/config"
	"auto-vat/src/eventloop"
)

type staticReader string

func (s staticReader) ReadText() (string, error) { return string(s), nil }

func TestBootstrap(t *testing.T) {
	t.Setenv("CLIPBOARD_BACKEND", "")
	t.Setenv(config.EnvPathEnvVar, "")

	var loggingEnabled *bool
	var openedBackend string

	cfg, reader, err := Bootstrap(Options{
		LoadOptions:  config.LoadOptions{BackendOverride: "command", EnableFileLoggingOverride: true},
		SetupLogging: func(enabled bool) { loggingEnabled = &enabled },
		OpenClipboard: func(backend string) (clipboard.Reader, error) {
			openedBackend = backend
			return staticReader("100"), nil
		},
	})
	if err != nil {
		t.Fatalf("Bootstrap failed: %v", err)
	}
	if loggingEnabled == nil || !*loggingEnabled {
		t.Error("Expected SetupLogging to be called with true")
	}
	if openedBackend != config.BackendCommand || cfg.ClipboardBackend != config.BackendCommand {
		t.Errorf("Expected command backend, opened %q config %q", openedBackend, cfg.ClipboardBackend)
	}
	if text, _ := reader.ReadText(); text != "100" {
		t.Errorf("Expected injected reader, got text %q", text)
	}
}

func TestBootstrapClipboardFailure(t *testing.T) {
	t.Setenv(config.EnvPathEnvVar, "")
	cause := errors.New("no display")

	_, _, err := Bootstrap(Options{
		OpenClipboard: func(string) (clipboard.Reader, error) { return nil, cause },
	})
	if !errors.Is(err, cause) {
		t.Fatalf("Expected wrapped cause, got %v", err)
	}
	if !errors.Is(err, eventloop.ErrClipboardUnavailable) {
		t.Errorf("Expected ErrClipboardUnavailable, got %v", err)
	}
	if !strings.Contains(err.Error(), "failed to initialize") {
		t.Errorf("Unexpected error text %q", err.Error())
	}
}
