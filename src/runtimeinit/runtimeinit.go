package runtimeinit

import (
	"fmt"
	"log"

	"auto-vat/src/clipboard"
	"auto-vat/src/config"
	"auto-vat/src/eventloop"
)

type Options struct {
	LoadOptions  config.LoadOptions
	SetupLogging func(bool)
	// OpenClipboard defaults to clipboard.Open.
	OpenClipboard func(backend string) (clipboard.Reader, error)
}

// Bootstrap loads configuration, sets up logging and opens the clipboard.
// A clipboard that cannot be opened is reported as
// eventloop.ErrClipboardUnavailable, which is fatal for the caller.
func Bootstrap(opts Options) (*config.Config, clipboard.Reader, error) {
	cfg, err := config.LoadWithOptions(opts.LoadOptions)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if opts.SetupLogging != nil {
		opts.SetupLogging(cfg.EnableFileLogging)
	}

	open := opts.OpenClipboard
	if open == nil {
		open = clipboard.Open
	}
	reader, err := open(cfg.ClipboardBackend)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: failed to initialize %s clipboard: %w", eventloop.ErrClipboardUnavailable, cfg.ClipboardBackend, err)
	}

	log.Printf("Auto-VAT initialized: backend=%s mode=%s refresh=%v", cfg.ClipboardBackend, cfg.DisplayMode, cfg.RefreshInterval)
	return cfg, reader, nil
}
