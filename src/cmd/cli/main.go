package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"auto-vat/src/clipboard"
	"auto-vat/src/config"
	"auto-vat/src/price"
)

type cliOptions struct {
	jsonOutput bool
	verbose    bool
	backend    string
}

// readerFactory opens the clipboard when no text argument is given.
type readerFactory func(backend string) (clipboard.Reader, error)

func main() {
	if err := runWithArgs(os.Args, os.Stdout, clipboard.Open); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runWithArgs(args []string, out io.Writer, open readerFactory) error {
	if len(args) == 0 {
		args = []string{"auto-vat-cli"}
	}

	opts := &cliOptions{}
	cmd := newRootCmd(opts, out, open)
	cmd.SetArgs(args[1:])
	return cmd.Execute()
}

func newRootCmd(opts *cliOptions, out io.Writer, open readerFactory) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "auto-vat-cli [price]",
		Short:         "Add VAT to a price given as an argument or read from the clipboard",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithOptions(*opts, args, out, open)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output the result as JSON")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Verbose output to stderr")
	cmd.Flags().StringVar(&opts.backend, "backend", "", "Clipboard backend: native or command (overrides CLIPBOARD_BACKEND)")

	return cmd
}

func runWithOptions(opts cliOptions, args []string, out io.Writer, open readerFactory) error {
	// Configure logging BEFORE any other operations.
	if opts.verbose {
		log.SetOutput(os.Stderr)
	} else {
		log.SetOutput(io.Discard)
	}

	var state price.State
	var input string
	if len(args) == 1 {
		input = args[0]
		state = price.Evaluate(input, true)
	} else {
		cfg, err := config.LoadWithOptions(config.LoadOptions{BackendOverride: opts.backend})
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		log.Printf("Reading clipboard with %s backend", cfg.ClipboardBackend)

		reader, err := open(cfg.ClipboardBackend)
		if err != nil {
			return fmt.Errorf("failed to initialize clipboard: %w", err)
		}
		text, err := reader.ReadText()
		switch {
		case errors.Is(err, clipboard.ErrNoText):
			state = price.Evaluate("", false)
		case err != nil:
			return fmt.Errorf("failed to get text from clipboard: %w", err)
		default:
			input = text
			state = price.Evaluate(text, true)
		}
	}
	log.Printf("Evaluated %q as %s", input, state.Kind)

	if opts.jsonOutput {
		return writeJSON(out, input, state)
	}
	if state.Kind != price.Converted {
		return errors.New(state.Message())
	}
	_, err := fmt.Fprintln(out, state.Conversion.String())
	return err
}

type Result struct {
	Input      string `json:"input"`
	State      string `json:"state"`
	Price      string `json:"price,omitempty"`
	Total      string `json:"total,omitempty"`
	VATPercent int    `json:"vat_percent"`
	Message    string `json:"message"`
}

func writeJSON(out io.Writer, input string, state price.State) error {
	result := Result{
		Input:      strings.TrimSpace(input),
		State:      state.Kind.String(),
		VATPercent: price.VATPercent,
		Message:    state.Message(),
	}
	if state.Kind == price.Converted {
		result.Price = state.Conversion.PriceText()
		result.Total = state.Conversion.TotalText()
	}

	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(result); err != nil {
		return fmt.Errorf("failed to encode JSON output: %w", err)
	}
	return nil
}
