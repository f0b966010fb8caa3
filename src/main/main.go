package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/spf13/cobra"

	"auto-vat/src/clipboard"
	"auto-vat/src/config"
	"auto-vat/src/display"
	"auto-vat/src/eventloop"
	"auto-vat/src/logutil"
	"auto-vat/src/notification"
	"auto-vat/src/runtimeinit"
	"auto-vat/src/singleinstance"
	"auto-vat/src/tray"
)

const appID = "auto-vat"

type mainOptions struct {
	mode    string
	backend string
	logFile bool
}

func main() {
	// Ensure DPI awareness before creating any windows
	enableDPIAwareness()

	// GUI drivers expect to own the main OS thread
	runtime.LockOSThread()

	opts := &mainOptions{}
	if err := newRootCmd(opts).Execute(); err != nil {
		title, message := fatalReport(err)
		notification.ShowBlockingError(title, message)
		os.Exit(1)
	}
}

func newRootCmd(opts *mainOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "auto-vat",
		Short:         "Show the clipboard price with VAT added",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDesktop(*opts)
		},
	}

	cmd.Flags().StringVar(&opts.mode, "mode", "", "Display mode: window or tray (overrides DISPLAY_MODE)")
	cmd.Flags().StringVar(&opts.backend, "backend", "", "Clipboard backend: native or command (overrides CLIPBOARD_BACKEND)")
	cmd.Flags().BoolVar(&opts.logFile, "log-file", false, "Write a rotating debug log (overrides ENABLE_FILE_LOGGING)")

	return cmd
}

// fatalReport turns a fatal error into the dialog shown before exit.
func fatalReport(err error) (title, message string) {
	switch {
	case errors.Is(err, eventloop.ErrClipboardUnavailable):
		return "Clipboard unavailable", fmt.Sprintf("Failed to get text from clipboard: %v", err)
	case errors.Is(err, singleinstance.ErrAlreadyRunning):
		return "Auto-VAT", "Auto-VAT is already running."
	default:
		return "Auto-VAT", err.Error()
	}
}

func runDesktop(opts mainOptions) error {
	cfg, reader, err := runtimeinit.Bootstrap(runtimeinit.Options{
		LoadOptions: config.LoadOptions{
			DisplayModeOverride:       opts.mode,
			BackendOverride:           opts.backend,
			EnableFileLoggingOverride: opts.logFile,
		},
		SetupLogging: logutil.Setup,
	})
	if err != nil {
		log.Printf("Bootstrap failed: %v", err)
		return err
	}

	if cfg.SingleInstance {
		lock, err := singleinstance.Acquire(cfg.LockFile)
		if err != nil {
			return err
		}
		defer lock.Release()
	}

	// Handle SIGINT/SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.DisplayMode == config.DisplayModeTray {
		return runTray(ctx, cfg, reader)
	}
	return runWindow(ctx, cfg, reader)
}

func runWindow(ctx context.Context, cfg *config.Config, reader clipboard.Reader) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	a := app.NewWithID(appID)
	w := display.NewWindow(a)
	w.SetOnClosed(cancel)

	loop := eventloop.New(cfg, reader, w)
	errCh := make(chan error, 1)
	go func() {
		errCh <- loop.Run(ctx)
		fyne.Do(a.Quit)
	}()

	w.ShowAndRun()
	cancel()
	return loopResult(<-errCh)
}

func runTray(ctx context.Context, cfg *config.Config, reader clipboard.Reader) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	t := tray.New(tray.Config{OnExit: cancel})

	loop := eventloop.New(cfg, reader, t)
	errCh := make(chan error, 1)
	go func() {
		errCh <- loop.Run(ctx)
		t.Quit()
	}()

	t.Run()
	cancel()
	return loopResult(<-errCh)
}

// loopResult maps a normal shutdown to nil; anything else is fatal.
func loopResult(err error) error {
	if err == nil || errors.Is(err, context.Canceled) {
		log.Printf("Event loop stopped")
		return nil
	}
	log.Printf("Event loop failed: %v", err)
	return err
}
