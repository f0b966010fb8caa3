package eventloop

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"auto-vat/src/clipboard"
	"auto-vat/src/config"
	"auto-vat/src/logutil"
	"auto-vat/src/price"
)

// ErrClipboardUnavailable wraps any clipboard failure other than "no text".
// It is fatal: Run stops and returns it.
var ErrClipboardUnavailable = errors.New("clipboard unavailable")

// Renderer draws one display state. Implementations marshal onto their own
// UI thread.
type Renderer interface {
	Render(state price.State)
}

// Loop is the single-threaded refresh loop: every tick it reads the
// clipboard, evaluates the price and hands the state to the renderer.
type Loop struct {
	reader   clipboard.Reader
	renderer Renderer
	interval time.Duration

	last     price.State
	rendered bool
}

// New creates a loop. If cfg is nil or cfg.RefreshInterval <= 0, the
// default one second interval is used.
func New(cfg *config.Config, reader clipboard.Reader, renderer Renderer) *Loop {
	interval := config.DefaultRefreshInterval
	if cfg != nil && cfg.RefreshInterval > 0 {
		interval = cfg.RefreshInterval
	}
	return &Loop{
		reader:   reader,
		renderer: renderer,
		interval: interval,
	}
}

// Interval returns the refresh period.
func (l *Loop) Interval() time.Duration { return l.interval }

// Run ticks immediately and then once per interval until ctx is cancelled
// or the clipboard fails.
func (l *Loop) Run(ctx context.Context) error {
	if _, err := l.Tick(); err != nil {
		return err
	}

	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if _, err := l.Tick(); err != nil {
				return err
			}
		}
	}
}

// Tick performs one read-evaluate-render pass. The renderer is only called
// when the state differs from what it last drew.
func (l *Loop) Tick() (price.State, error) {
	text, err := l.reader.ReadText()
	hasText := true
	if err != nil {
		if !errors.Is(err, clipboard.ErrNoText) {
			log.Printf("Tick: clipboard read failed: %v", err)
			return price.State{}, fmt.Errorf("%w: %w", ErrClipboardUnavailable, err)
		}
		hasText = false
	}

	state := price.Evaluate(text, hasText)
	if l.rendered && state.Equal(l.last) {
		return state, nil
	}

	if hasText {
		log.Printf("Tick: %s from %q", state.Kind, logutil.Sanitize(text))
	} else {
		log.Printf("Tick: %s", state.Kind)
	}
	l.renderer.Render(state)
	l.last = state
	l.rendered = true
	return state, nil
}
